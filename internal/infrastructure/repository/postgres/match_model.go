package postgres

import (
	"database/sql"
	"time"

	"github.com/gdogra/tennisconnect/internal/domain/match"
)

type matchTableModel struct {
	ID           string        `db:"id"`
	Player1ID    string        `db:"player1_id"`
	Player2ID    string        `db:"player2_id"`
	Date         time.Time     `db:"match_date"`
	Location     string        `db:"location"`
	Status       string        `db:"status"`
	Player1Score sql.NullInt64 `db:"player1_score"`
	Player2Score sql.NullInt64 `db:"player2_score"`
	CreatedAt    time.Time     `db:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at"`
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:           m.ID,
		Player1ID:    m.Player1ID,
		Player2ID:    m.Player2ID,
		Date:         m.Date.UTC(),
		Location:     m.Location,
		Status:       match.Status(m.Status),
		Player1Score: nullInt64ToIntPtr(m.Player1Score),
		Player2Score: nullInt64ToIntPtr(m.Player2Score),
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

func matchModelFromDomain(m match.Match) matchTableModel {
	return matchTableModel{
		ID:           m.ID,
		Player1ID:    m.Player1ID,
		Player2ID:    m.Player2ID,
		Date:         m.Date.UTC(),
		Location:     m.Location,
		Status:       string(m.Status),
		Player1Score: intPtrToNullInt64(m.Player1Score),
		Player2Score: intPtrToNullInt64(m.Player2Score),
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}
