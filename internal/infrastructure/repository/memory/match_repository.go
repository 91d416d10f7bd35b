package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gdogra/tennisconnect/internal/domain/match"
)

type MatchRepository struct {
	store *Store
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.matches[matchID]
	if !ok {
		return match.Match{}, false, nil
	}
	return cloneMatch(item), true, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validate match: %w", err)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.insertMatch(item)
}

func (r *MatchRepository) Query(_ context.Context, filter match.Filter) ([]match.Match, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]match.Match, 0, len(r.store.matches))
	for _, item := range r.store.matches {
		if filter.PlayerID != "" && !item.IsParticipant(filter.PlayerID) {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		out = append(out, cloneMatch(item))
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MatchRepository) CompleteScore(_ context.Context, matchID string, player1Score, player2Score int, at time.Time) (match.Match, bool, error) {
	return r.updateScheduled(matchID, func(item *match.Match) {
		item.Player1Score = &player1Score
		item.Player2Score = &player2Score
		item.Status = match.StatusCompleted
		item.UpdatedAt = at
	})
}

func (r *MatchRepository) Reschedule(_ context.Context, matchID string, date time.Time, location string, at time.Time) (match.Match, bool, error) {
	return r.updateScheduled(matchID, func(item *match.Match) {
		item.Date = date
		item.Location = location
		item.UpdatedAt = at
	})
}

func (r *MatchRepository) updateScheduled(matchID string, apply func(*match.Match)) (match.Match, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.matches[matchID]
	if !ok || item.Status != match.StatusScheduled {
		return match.Match{}, false, nil
	}

	updated := cloneMatch(item)
	apply(&updated)
	if err := updated.Validate(); err != nil {
		return match.Match{}, false, fmt.Errorf("validate match: %w", err)
	}

	r.store.matches[matchID] = updated
	return cloneMatch(updated), true, nil
}

// insertMatch must be called with s.mu held.
func (s *Store) insertMatch(item match.Match) error {
	if _, exists := s.matches[item.ID]; exists {
		return fmt.Errorf("%w: match id %s", ErrDuplicateKey, item.ID)
	}
	if err := s.requireUsers(item.Player1ID, item.Player2ID); err != nil {
		return err
	}
	s.matches[item.ID] = cloneMatch(item)
	return nil
}

func cloneMatch(item match.Match) match.Match {
	copied := item
	copied.Player1Score = cloneInt(item.Player1Score)
	copied.Player2Score = cloneInt(item.Player2Score)
	return copied
}
