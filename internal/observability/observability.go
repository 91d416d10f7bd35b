// Package observability turns on tracing export and continuous profiling.
package observability

import (
	"context"
	"errors"
	"fmt"

	"github.com/grafana/pyroscope-go"
	"github.com/uptrace/uptrace-go/uptrace"

	"github.com/gdogra/tennisconnect/internal/config"
	"github.com/gdogra/tennisconnect/internal/platform/logging"
)

// Shutdown flushes and stops whatever Init started.
type Shutdown func(context.Context) error

// Init starts the Uptrace exporter and the Pyroscope profiler when enabled.
// Both are off by default, in which case the returned Shutdown does nothing.
func Init(cfg config.Config, logger *logging.Logger) (Shutdown, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var stops []Shutdown
	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(stops) - 1; i >= 0; i-- {
			errs = append(errs, stops[i](ctx))
		}
		return errors.Join(errs...)
	}

	if cfg.UptraceEnabled && cfg.UptraceDSN != "" {
		uptrace.ConfigureOpentelemetry(
			uptrace.WithDSN(cfg.UptraceDSN),
			uptrace.WithServiceName(cfg.ServiceName),
			uptrace.WithServiceVersion(cfg.ServiceVersion),
			uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		)
		stops = append(stops, uptrace.Shutdown)
		logger.Info("uptrace enabled", "service_version", cfg.ServiceVersion, "environment", cfg.AppEnv)
	} else {
		logger.Debug("uptrace disabled")
	}

	if cfg.PyroscopeEnabled {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName:   cfg.PyroscopeAppName,
			ServerAddress:     cfg.PyroscopeServerAddress,
			AuthToken:         cfg.PyroscopeAuthToken,
			BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
			BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
			UploadRate:        cfg.PyroscopeUploadRate,
			Tags:              map[string]string{"env": cfg.AppEnv, "service": cfg.ServiceName},
			ProfileTypes: []pyroscope.ProfileType{
				pyroscope.ProfileCPU,
				pyroscope.ProfileAllocSpace,
				pyroscope.ProfileInuseSpace,
				pyroscope.ProfileGoroutines,
			},
		})
		if err != nil {
			_ = shutdown(context.Background())
			return nil, fmt.Errorf("start pyroscope: %w", err)
		}
		stops = append(stops, func(context.Context) error { return profiler.Stop() })
		logger.Info("pyroscope enabled", "server_address", cfg.PyroscopeServerAddress, "application", cfg.PyroscopeAppName)
	} else {
		logger.Debug("pyroscope disabled")
	}

	return shutdown, nil
}
