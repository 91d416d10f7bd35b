package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gdogra/tennisconnect/internal/app"
	"github.com/gdogra/tennisconnect/internal/config"
	"github.com/gdogra/tennisconnect/internal/platform/logging"
)

func main() {
	root := newRootCmd(loadApp)
	if err := root.Execute(); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintf(os.Stderr, "tennisconnect: %v\n", err)
		}
		os.Exit(exitCode(err))
	}
}

// loadApp builds the service graph from the environment. Logs go to stderr so
// stdout stays machine readable.
func loadApp(ctx context.Context, stderr io.Writer) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.LogFormat, cfg.LogLevel, stderr).With("service", cfg.ServiceName)
	logging.SetDefault(logger)

	return app.New(ctx, cfg, logger)
}
