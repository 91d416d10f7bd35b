package match

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
)

// Match is a singles fixture between two registered players.
type Match struct {
	ID           string
	Player1ID    string
	Player2ID    string
	Date         time.Time
	Location     string
	Status       Status
	Player1Score *int
	Player2Score *int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.Player1ID == "" || m.Player2ID == "" {
		return fmt.Errorf("match players are required")
	}
	if m.Player1ID == m.Player2ID {
		return fmt.Errorf("match players must be different")
	}
	if m.Date.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if m.Location == "" {
		return fmt.Errorf("match location is required")
	}

	switch m.Status {
	case StatusScheduled:
		if m.Player1Score != nil || m.Player2Score != nil {
			return fmt.Errorf("scheduled match cannot carry scores")
		}
	case StatusCompleted:
		if m.Player1Score == nil || m.Player2Score == nil {
			return fmt.Errorf("completed match requires both scores")
		}
		if err := ValidateScore(*m.Player1Score, *m.Player2Score); err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid match status: %s", m.Status)
	}

	return nil
}

// IsParticipant reports whether userID plays in the match.
func (m Match) IsParticipant(userID string) bool {
	return userID != "" && (m.Player1ID == userID || m.Player2ID == userID)
}

// ScoresFor returns the scores of a completed match from playerID's side.
func (m Match) ScoresFor(playerID string) (own, opponent int, opponentID string) {
	p1, p2 := derefScore(m.Player1Score), derefScore(m.Player2Score)
	if m.Player1ID == playerID {
		return p1, p2, m.Player2ID
	}
	return p2, p1, m.Player1ID
}

// ValidateScore rejects negative and drawn results; tennis has no ties.
func ValidateScore(player1Score, player2Score int) error {
	if player1Score < 0 || player2Score < 0 {
		return fmt.Errorf("scores must be non-negative: %d-%d", player1Score, player2Score)
	}
	if player1Score == player2Score {
		return fmt.Errorf("scores cannot be equal: %d-%d", player1Score, player2Score)
	}
	return nil
}

func derefScore(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
