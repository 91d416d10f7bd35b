package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gdogra/tennisconnect/internal/domain/user"
	qb "github.com/gdogra/tennisconnect/internal/platform/querybuilder"
)

const usersTable = "users"

var userColumns = qb.ColumnList(userTableModel{})

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	query, args, err := qb.Select(userColumns).From(usersTable).
		Where(qb.Eq("id", userID)).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build get user by id query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *UserRepository) GetByIDs(ctx context.Context, userIDs []string) ([]user.User, error) {
	if len(userIDs) == 0 {
		return []user.User{}, nil
	}

	query, args, err := qb.Select(userColumns).From(usersTable).
		Where(qb.In("id", stringsToAny(userIDs))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get users by ids query: %w", err)
	}

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select users by ids: %w", err)
	}

	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	query, args, err := qb.Select(userColumns).From(usersTable).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list users query: %w", err)
	}

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}

	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *UserRepository) Create(ctx context.Context, item user.User) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validate user: %w", err)
	}

	query, args, err := qb.Insert(usersTable, userModelFromDomain(item)).ToSQL()
	if err != nil {
		return fmt.Errorf("build insert user query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert user %s: duplicate id or email: %w", item.ID, err)
		}
		return fmt.Errorf("insert user %s: %w", item.ID, err)
	}
	return nil
}
