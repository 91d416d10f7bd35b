package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gdogra/tennisconnect/internal/domain/challenge"
	"github.com/gdogra/tennisconnect/internal/domain/match"
	qb "github.com/gdogra/tennisconnect/internal/platform/querybuilder"
)

const challengesTable = "challenge_requests"

var challengeColumns = qb.ColumnList(challengeTableModel{})

type ChallengeRepository struct {
	db *sqlx.DB
}

func NewChallengeRepository(db *sqlx.DB) *ChallengeRepository {
	return &ChallengeRepository{db: db}
}

func (r *ChallengeRepository) GetByID(ctx context.Context, challengeID string) (challenge.Challenge, bool, error) {
	query, args, err := qb.Select(challengeColumns).From(challengesTable).
		Where(qb.Eq("id", challengeID)).
		ToSQL()
	if err != nil {
		return challenge.Challenge{}, false, fmt.Errorf("build get challenge by id query: %w", err)
	}

	var row challengeTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return challenge.Challenge{}, false, nil
		}
		return challenge.Challenge{}, false, fmt.Errorf("get challenge by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *ChallengeRepository) Create(ctx context.Context, item challenge.Challenge) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validate challenge: %w", err)
	}

	query, args, err := qb.Insert(challengesTable, challengeModelFromDomain(item)).ToSQL()
	if err != nil {
		return fmt.Errorf("build insert challenge query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert challenge %s: unknown player: %w", item.ID, err)
		}
		return fmt.Errorf("insert challenge %s: %w", item.ID, err)
	}
	return nil
}

func (r *ChallengeRepository) Query(ctx context.Context, filter challenge.Filter) ([]challenge.Challenge, error) {
	conditions := make([]qb.Condition, 0, 2)
	if filter.PlayerID != "" {
		conditions = append(conditions, qb.Or(
			qb.Eq("challenger_id", filter.PlayerID),
			qb.Eq("challenged_id", filter.PlayerID),
		))
	}
	if filter.Status != "" {
		conditions = append(conditions, qb.Eq("status", string(filter.Status)))
	}

	query, args, err := qb.Select(challengeColumns).From(challengesTable).
		Where(conditions...).
		OrderBy("created_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build query challenges query: %w", err)
	}

	var rows []challengeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select challenges: %w", err)
	}

	out := make([]challenge.Challenge, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// AcceptWithMatch locks the challenge row, inserts m and links it in one
// transaction. A challenge that is no longer pending leaves both tables as
// they were.
func (r *ChallengeRepository) AcceptWithMatch(ctx context.Context, challengeID string, m match.Match, at time.Time) (challenge.Challenge, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return challenge.Challenge{}, false, fmt.Errorf("begin tx for challenge accept: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	lockQuery, lockArgs, err := qb.Select("status").From(challengesTable).
		Where(qb.Eq("id", challengeID)).
		ForUpdate().
		ToSQL()
	if err != nil {
		return challenge.Challenge{}, false, fmt.Errorf("build lock challenge query: %w", err)
	}

	var status string
	if err := tx.GetContext(ctx, &status, lockQuery, lockArgs...); err != nil {
		if isNotFound(err) {
			return challenge.Challenge{}, false, nil
		}
		return challenge.Challenge{}, false, fmt.Errorf("lock challenge: %w", err)
	}
	if challenge.Status(status) != challenge.StatusPending {
		return challenge.Challenge{}, false, nil
	}

	if err := insertMatch(ctx, tx, m); err != nil {
		return challenge.Challenge{}, false, err
	}

	updateQuery, updateArgs, err := qb.Update(challengesTable).
		Set("status", string(challenge.StatusAccepted)).
		Set("match_id", m.ID).
		Set("updated_at", at.UTC()).
		Where(
			qb.Eq("id", challengeID),
			qb.Eq("status", string(challenge.StatusPending)),
		).
		Returning(challengeColumns).
		ToSQL()
	if err != nil {
		return challenge.Challenge{}, false, fmt.Errorf("build accept challenge query: %w", err)
	}

	var row challengeTableModel
	if err := tx.GetContext(ctx, &row, updateQuery, updateArgs...); err != nil {
		if isNotFound(err) {
			return challenge.Challenge{}, false, nil
		}
		return challenge.Challenge{}, false, fmt.Errorf("accept challenge: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return challenge.Challenge{}, false, fmt.Errorf("commit challenge accept: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *ChallengeRepository) Decline(ctx context.Context, challengeID string, message *string, at time.Time) (challenge.Challenge, bool, error) {
	query, args, err := qb.Update(challengesTable).
		Set("status", string(challenge.StatusDeclined)).
		Set("message", stringPtrToNullString(message)).
		Set("updated_at", at.UTC()).
		Where(
			qb.Eq("id", challengeID),
			qb.Eq("status", string(challenge.StatusPending)),
		).
		Returning(challengeColumns).
		ToSQL()
	if err != nil {
		return challenge.Challenge{}, false, fmt.Errorf("build decline challenge query: %w", err)
	}

	var row challengeTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return challenge.Challenge{}, false, nil
		}
		return challenge.Challenge{}, false, fmt.Errorf("decline challenge: %w", err)
	}
	return row.toDomain(), true, nil
}
