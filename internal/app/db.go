package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/gdogra/tennisconnect/internal/config"
	"github.com/gdogra/tennisconnect/internal/platform/logging"
)

func openPostgres(ctx context.Context, cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", cfg.DatabaseDSN(),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(cfg.DatabaseName()),
		otelsql.WithQueryFormatter(traceQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if cfg.DBAutoMigrate {
		if err := migrateUp(db, cfg.MigrationsDir, logger); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return db, nil
}

// migrateUp applies pending migrations over the already open connection.
// The migrate instance is not closed since that would close db too.
func migrateUp(db *sqlx.DB, dir string, logger *logging.Logger) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve migrations dir %q: %w", dir, err)
	}

	driver, err := migratepg.WithInstance(db.DB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+filepath.ToSlash(abs), "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Debug("no migration changes", "dir", abs)
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}

	logger.Info("migrations applied", "dir", abs)
	return nil
}

const maxTracedQueryLength = 512

// traceQuery collapses whitespace so span names stay on one line, and caps
// the length of long statements.
func traceQuery(query string) string {
	query = strings.Join(strings.Fields(query), " ")
	if len(query) > maxTracedQueryLength {
		return query[:maxTracedQueryLength] + "..."
	}
	return query
}
