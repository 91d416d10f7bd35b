package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/gdogra/tennisconnect/internal/app"
)

var cliTracer = otel.Tracer("tennisconnect/cmd/tennisconnect")

type appFactory func(ctx context.Context, stderr io.Writer) (*app.App, error)

// cli carries the lazily built application between cobra hooks.
type cli struct {
	newApp appFactory
	app    *app.App
	span   trace.Span
}

func newRootCmd(newApp appFactory) *cobra.Command {
	c := &cli{newApp: newApp}

	root := &cobra.Command{
		Use:   "tennisconnect",
		Short: "Schedule tennis challenges and matches, record results, and rank players",
		Long: `A command-line front end for the TennisConnect core. Every command prints a
JSON envelope on stdout; logs go to stderr.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.newApp(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			c.app = a

			// Each invocation is one trace; use case spans hang off it.
			ctx, span := cliTracer.Start(cmd.Context(), cmd.CommandPath())
			cmd.SetContext(ctx)
			c.span = span
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return c.close(cmd.Context())
		},
	}

	root.AddCommand(
		newPlayerCmd(c),
		newChallengeCmd(c),
		newMatchCmd(c),
		newStatsCmd(c),
		newLeaderboardCmd(c),
		newSeedCmd(c),
	)
	return root
}

func (c *cli) close(ctx context.Context) error {
	if c.span != nil {
		c.span.End()
		c.span = nil
	}
	if c.app == nil {
		return nil
	}
	err := c.app.Close(ctx)
	c.app = nil
	return err
}

// respond writes the result envelope and closes the app on failure, since
// cobra skips post-run hooks when RunE errors.
func (c *cli) respond(cmd *cobra.Command, data any, err error) error {
	if err != nil {
		writeError(cmd.OutOrStdout(), err)
		_ = c.close(cmd.Context())
		return &reportedError{err: err}
	}
	writeSuccess(cmd.OutOrStdout(), data)
	return nil
}
