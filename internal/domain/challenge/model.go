package challenge

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
)

// Challenge is a proposal from one player to another to play a match.
// Accepted and declined are terminal.
type Challenge struct {
	ID               string
	ChallengerID     string
	ChallengedID     string
	ProposedAt       time.Time
	ProposedLocation string
	Message          *string
	Status           Status
	MatchID          *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (c Challenge) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("challenge id is required")
	}
	if c.ChallengerID == "" || c.ChallengedID == "" {
		return fmt.Errorf("challenge players are required")
	}
	if c.ChallengerID == c.ChallengedID {
		return fmt.Errorf("players cannot challenge themselves")
	}
	if c.ProposedAt.IsZero() {
		return fmt.Errorf("challenge proposed date is required")
	}
	if c.ProposedLocation == "" {
		return fmt.Errorf("challenge proposed location is required")
	}

	switch c.Status {
	case StatusAccepted:
		if c.MatchID == nil || *c.MatchID == "" {
			return fmt.Errorf("accepted challenge requires a match id")
		}
	case StatusPending, StatusDeclined:
		if c.MatchID != nil {
			return fmt.Errorf("%s challenge cannot reference a match", c.Status)
		}
	default:
		return fmt.Errorf("invalid challenge status: %s", c.Status)
	}

	return nil
}

func (c Challenge) IsParticipant(userID string) bool {
	return userID != "" && (c.ChallengerID == userID || c.ChallengedID == userID)
}

func (c Challenge) IsTerminal() bool {
	return c.Status == StatusAccepted || c.Status == StatusDeclined
}
