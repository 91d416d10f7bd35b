package postgres

import (
	"database/sql"
	"time"

	"github.com/gdogra/tennisconnect/internal/domain/challenge"
)

type challengeTableModel struct {
	ID               string         `db:"id"`
	ChallengerID     string         `db:"challenger_id"`
	ChallengedID     string         `db:"challenged_id"`
	ProposedAt       time.Time      `db:"proposed_date"`
	ProposedLocation string         `db:"proposed_location"`
	Message          sql.NullString `db:"message"`
	Status           string         `db:"status"`
	MatchID          sql.NullString `db:"match_id"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

func (m challengeTableModel) toDomain() challenge.Challenge {
	return challenge.Challenge{
		ID:               m.ID,
		ChallengerID:     m.ChallengerID,
		ChallengedID:     m.ChallengedID,
		ProposedAt:       m.ProposedAt.UTC(),
		ProposedLocation: m.ProposedLocation,
		Message:          nullStringToPtr(m.Message),
		Status:           challenge.Status(m.Status),
		MatchID:          nullStringToPtr(m.MatchID),
		CreatedAt:        m.CreatedAt.UTC(),
		UpdatedAt:        m.UpdatedAt.UTC(),
	}
}

func challengeModelFromDomain(c challenge.Challenge) challengeTableModel {
	return challengeTableModel{
		ID:               c.ID,
		ChallengerID:     c.ChallengerID,
		ChallengedID:     c.ChallengedID,
		ProposedAt:       c.ProposedAt.UTC(),
		ProposedLocation: c.ProposedLocation,
		Message:          stringPtrToNullString(c.Message),
		Status:           string(c.Status),
		MatchID:          stringPtrToNullString(c.MatchID),
		CreatedAt:        c.CreatedAt.UTC(),
		UpdatedAt:        c.UpdatedAt.UTC(),
	}
}
