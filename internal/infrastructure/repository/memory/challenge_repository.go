package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gdogra/tennisconnect/internal/domain/challenge"
	"github.com/gdogra/tennisconnect/internal/domain/match"
)

type ChallengeRepository struct {
	store *Store
}

func (r *ChallengeRepository) GetByID(_ context.Context, challengeID string) (challenge.Challenge, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.challenges[challengeID]
	if !ok {
		return challenge.Challenge{}, false, nil
	}
	return cloneChallenge(item), true, nil
}

func (r *ChallengeRepository) Create(_ context.Context, item challenge.Challenge) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validate challenge: %w", err)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.challenges[item.ID]; exists {
		return fmt.Errorf("%w: challenge id %s", ErrDuplicateKey, item.ID)
	}
	if err := r.store.requireUsers(item.ChallengerID, item.ChallengedID); err != nil {
		return err
	}
	r.store.challenges[item.ID] = cloneChallenge(item)
	return nil
}

func (r *ChallengeRepository) Query(_ context.Context, filter challenge.Filter) ([]challenge.Challenge, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]challenge.Challenge, 0, len(r.store.challenges))
	for _, item := range r.store.challenges {
		if filter.PlayerID != "" && !item.IsParticipant(filter.PlayerID) {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		out = append(out, cloneChallenge(item))
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *ChallengeRepository) AcceptWithMatch(_ context.Context, challengeID string, m match.Match, at time.Time) (challenge.Challenge, bool, error) {
	if err := m.Validate(); err != nil {
		return challenge.Challenge{}, false, fmt.Errorf("validate match: %w", err)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.challenges[challengeID]
	if !ok || item.Status != challenge.StatusPending {
		return challenge.Challenge{}, false, nil
	}

	updated := cloneChallenge(item)
	matchID := m.ID
	updated.Status = challenge.StatusAccepted
	updated.MatchID = &matchID
	updated.UpdatedAt = at
	if err := updated.Validate(); err != nil {
		return challenge.Challenge{}, false, fmt.Errorf("validate challenge: %w", err)
	}

	if err := r.store.insertMatch(m); err != nil {
		return challenge.Challenge{}, false, err
	}
	r.store.challenges[challengeID] = updated
	return cloneChallenge(updated), true, nil
}

func (r *ChallengeRepository) Decline(_ context.Context, challengeID string, message *string, at time.Time) (challenge.Challenge, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.challenges[challengeID]
	if !ok || item.Status != challenge.StatusPending {
		return challenge.Challenge{}, false, nil
	}

	updated := cloneChallenge(item)
	updated.Status = challenge.StatusDeclined
	updated.Message = cloneString(message)
	updated.UpdatedAt = at

	r.store.challenges[challengeID] = updated
	return cloneChallenge(updated), true, nil
}

func cloneChallenge(item challenge.Challenge) challenge.Challenge {
	copied := item
	copied.Message = cloneString(item.Message)
	copied.MatchID = cloneString(item.MatchID)
	return copied
}
