package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gdogra/tennisconnect/internal/infrastructure/repository/memory"
	qb "github.com/gdogra/tennisconnect/internal/platform/querybuilder"
)

// BootstrapSeed loads the demo users and match history into an empty
// database. Rows that already exist are left alone.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM matches`); err != nil {
		return fmt.Errorf("count matches for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, u := range memory.SeedUsers() {
		query, args, err := qb.Insert(usersTable, userModelFromDomain(u)).OnConflictDoNothing().ToSQL()
		if err != nil {
			return fmt.Errorf("build seed user %s query: %w", u.ID, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}

	for _, m := range memory.SeedMatches() {
		query, args, err := qb.Insert(matchesTable, matchModelFromDomain(m)).OnConflictDoNothing("id").ToSQL()
		if err != nil {
			return fmt.Errorf("build seed match %s query: %w", m.ID, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("seed match %s: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
