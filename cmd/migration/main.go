package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"github.com/gdogra/tennisconnect/internal/config"
	"github.com/gdogra/tennisconnect/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "migration: %v\n", err)
		os.Exit(1)
	}
}

type runner struct {
	logger   *logging.Logger
	migrator *migrate.Migrate
}

func newRootCmd() *cobra.Command {
	r := &runner{}

	root := &cobra.Command{
		Use:           "migration",
		Short:         "Apply or inspect TennisConnect schema migrations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return r.open(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			r.close()
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				if err := ignoreNoChange(r.migrator.Up()); err != nil {
					return err
				}
				r.logger.Info("migrations applied")
				return nil
			},
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "Roll back migrations, one step by default",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				steps, err := parseSteps(args)
				if err != nil {
					return err
				}
				if err := ignoreNoChange(r.migrator.Steps(-steps)); err != nil {
					return err
				}
				r.logger.Info("migrations rolled back", "steps", steps)
				return nil
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				version, dirty, err := r.migrator.Version()
				if errors.Is(err, migrate.ErrNilVersion) {
					fmt.Fprintln(cmd.OutOrStdout(), "version: none")
					fmt.Fprintln(cmd.OutOrStdout(), "dirty: false")
					return nil
				}
				if err != nil {
					return fmt.Errorf("read version: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version: %d\n", version)
				fmt.Fprintf(cmd.OutOrStdout(), "dirty: %t\n", dirty)
				return nil
			},
		},
		&cobra.Command{
			Use:   "force <version>",
			Short: "Set the schema version without running migrations",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				version, err := parseVersion(args[0])
				if err != nil {
					return err
				}
				if err := r.migrator.Force(version); err != nil {
					return fmt.Errorf("force version %d: %w", version, err)
				}
				r.logger.Info("forced schema version", "version", version)
				return nil
			},
		},
		&cobra.Command{
			Use:     "goto <version>",
			Aliases: []string{"migrate"},
			Short:   "Migrate up or down to a target version",
			Args:    cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				target, err := parseTarget(args[0])
				if err != nil {
					return err
				}
				if err := ignoreNoChange(r.migrator.Migrate(target)); err != nil {
					return err
				}
				r.logger.Info("migrated", "version", target)
				return nil
			},
		},
	)
	return root
}

func (r *runner) open(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	r.logger = logging.New(cfg.LogFormat, cfg.LogLevel, cmd.ErrOrStderr())

	if strings.TrimSpace(cfg.DBURL) == "" {
		return fmt.Errorf("DB_URL is required")
	}

	migrationsDir, err := resolveMigrationsDir(cfg.MigrationsDir)
	if err != nil {
		return fmt.Errorf("resolve migrations dir: %w", err)
	}

	sourceURL := "file://" + filepath.ToSlash(migrationsDir)
	m, err := migrate.New(sourceURL, cfg.DatabaseDSN())
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	r.migrator = m
	r.logger.Debug("migrator ready", "source", sourceURL)
	return nil
}

func (r *runner) close() {
	if r.migrator == nil {
		return
	}
	srcErr, dbErr := r.migrator.Close()
	if srcErr != nil {
		r.logger.Warn("close migration source", "error", srcErr)
	}
	if dbErr != nil {
		r.logger.Warn("close migration db", "error", dbErr)
	}
	r.migrator = nil
}

func ignoreNoChange(err error) error {
	if err == nil || errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}

	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid down steps %q: %w", args[0], err)
	}
	if steps <= 0 {
		return 0, fmt.Errorf("down steps must be > 0")
	}

	return steps, nil
}

func parseVersion(raw string) (int, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", raw, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("version must be >= 0")
	}
	if value > int64(^uint(0)>>1) {
		return 0, fmt.Errorf("version is too large for this platform")
	}

	return int(value), nil
}

func parseTarget(raw string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid target version %q: %w", raw, err)
	}
	return uint(value), nil
}

func resolveMigrationsDir(configured string) (string, error) {
	candidates := []string{
		strings.TrimSpace(configured),
		"./db/migrations",
		"/app/db/migrations",
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			continue
		}
		return abs, nil
	}

	return "", fmt.Errorf("migration directory not found (checked MIGRATIONS_DIR, ./db/migrations, /app/db/migrations)")
}
