package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gdogra/tennisconnect/internal/domain/match"
	qb "github.com/gdogra/tennisconnect/internal/platform/querybuilder"
)

const matchesTable = "matches"

var matchColumns = qb.ColumnList(matchTableModel{})

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select(matchColumns).From(matchesTable).
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	return insertMatch(ctx, r.db, item)
}

func (r *MatchRepository) Query(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	conditions := make([]qb.Condition, 0, 2)
	if filter.PlayerID != "" {
		conditions = append(conditions, qb.Or(
			qb.Eq("player1_id", filter.PlayerID),
			qb.Eq("player2_id", filter.PlayerID),
		))
	}
	if filter.Status != "" {
		conditions = append(conditions, qb.Eq("status", string(filter.Status)))
	}

	query, args, err := qb.Select(matchColumns).From(matchesTable).
		Where(conditions...).
		OrderBy("match_date DESC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build query matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) CompleteScore(ctx context.Context, matchID string, player1Score, player2Score int, at time.Time) (match.Match, bool, error) {
	update := qb.Update(matchesTable).
		Set("status", string(match.StatusCompleted)).
		Set("player1_score", player1Score).
		Set("player2_score", player2Score).
		Set("updated_at", at.UTC())
	return r.updateScheduled(ctx, matchID, update, "complete match score")
}

func (r *MatchRepository) Reschedule(ctx context.Context, matchID string, date time.Time, location string, at time.Time) (match.Match, bool, error) {
	update := qb.Update(matchesTable).
		Set("match_date", date.UTC()).
		Set("location", location).
		Set("updated_at", at.UTC())
	return r.updateScheduled(ctx, matchID, update, "reschedule match")
}

// updateScheduled applies update only while the match is still scheduled.
func (r *MatchRepository) updateScheduled(ctx context.Context, matchID string, update *qb.UpdateBuilder, op string) (match.Match, bool, error) {
	query, args, err := update.
		Where(
			qb.Eq("id", matchID),
			qb.Eq("status", string(match.StatusScheduled)),
		).
		Returning(matchColumns).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return row.toDomain(), true, nil
}

func insertMatch(ctx context.Context, exec sqlx.ExecerContext, item match.Match) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validate match: %w", err)
	}

	query, args, err := qb.Insert(matchesTable, matchModelFromDomain(item)).ToSQL()
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}
	if _, err := exec.ExecContext(ctx, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert match %s: unknown player: %w", item.ID, err)
		}
		return fmt.Errorf("insert match %s: %w", item.ID, err)
	}
	return nil
}
