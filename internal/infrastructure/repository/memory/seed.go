package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/gdogra/tennisconnect/internal/domain/match"
	"github.com/gdogra/tennisconnect/internal/domain/user"
)

const (
	UserIDAna   = "player-ana"
	UserIDBruno = "player-bruno"
	UserIDChen  = "player-chen"
	UserIDDiya  = "player-diya"
	UserIDAdmin = "admin-club"
)

var seedCreatedAt = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

func SeedUsers() []user.User {
	return []user.User{
		{ID: UserIDAna, DisplayName: "Ana Ribeiro", Email: "ana@tennisconnect.local", Role: user.RolePlayer, CreatedAt: seedCreatedAt},
		{ID: UserIDBruno, DisplayName: "Bruno Keller", Email: "bruno@tennisconnect.local", Role: user.RolePlayer, CreatedAt: seedCreatedAt},
		{ID: UserIDChen, DisplayName: "Chen Wei", Email: "chen@tennisconnect.local", Role: user.RolePlayer, CreatedAt: seedCreatedAt},
		{ID: UserIDDiya, DisplayName: "Diya Patel", Email: "diya@tennisconnect.local", Role: user.RolePlayer, CreatedAt: seedCreatedAt},
		{ID: UserIDAdmin, DisplayName: "Club Admin", Email: "admin@tennisconnect.local", Role: user.RoleAdmin, CreatedAt: seedCreatedAt},
	}
}

// SeedMatches is a small played-out history so statistics and the leaderboard
// have something to show on a fresh store.
func SeedMatches() []match.Match {
	completed := func(id, p1, p2 string, s1, s2 int, day int, location string) match.Match {
		date := time.Date(2025, 3, day, 17, 0, 0, 0, time.UTC)
		return match.Match{
			ID:           id,
			Player1ID:    p1,
			Player2ID:    p2,
			Date:         date,
			Location:     location,
			Status:       match.StatusCompleted,
			Player1Score: &s1,
			Player2Score: &s2,
			CreatedAt:    date,
			UpdatedAt:    date,
		}
	}

	return []match.Match{
		completed("seed-match-01", UserIDAna, UserIDBruno, 6, 3, 2, "Riverside Court 1"),
		completed("seed-match-02", UserIDChen, UserIDAna, 4, 6, 5, "Riverside Court 2"),
		completed("seed-match-03", UserIDBruno, UserIDChen, 7, 5, 9, "Parkview Club"),
		completed("seed-match-04", UserIDDiya, UserIDBruno, 6, 2, 12, "Parkview Club"),
		completed("seed-match-05", UserIDChen, UserIDDiya, 6, 4, 16, "Riverside Court 1"),
		{
			ID:        "seed-match-06",
			Player1ID: UserIDAna,
			Player2ID: UserIDDiya,
			Date:      time.Date(2025, 4, 2, 18, 0, 0, 0, time.UTC),
			Location:  "Riverside Court 2",
			Status:    match.StatusScheduled,
			CreatedAt: seedCreatedAt,
			UpdatedAt: seedCreatedAt,
		},
	}
}

// Seed loads SeedUsers and SeedMatches into an empty store.
func (s *Store) Seed(ctx context.Context) error {
	users := s.Users()
	for _, u := range SeedUsers() {
		if err := users.Create(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}

	matches := s.Matches()
	for _, m := range SeedMatches() {
		if err := matches.Create(ctx, m); err != nil {
			return fmt.Errorf("seed match %s: %w", m.ID, err)
		}
	}
	return nil
}
