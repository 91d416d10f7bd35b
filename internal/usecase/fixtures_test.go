package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/gdogra/tennisconnect/internal/domain/user"
	"github.com/gdogra/tennisconnect/internal/infrastructure/repository/memory"
	"github.com/gdogra/tennisconnect/internal/platform/id"
)

var testNow = time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

type testEnv struct {
	store      *memory.Store
	challenges *ChallengeService
	matches    *MatchService
	stats      *StatisticsService
}

func newTestEnv(t *testing.T, seedMatches bool) testEnv {
	t.Helper()

	store := memory.NewStore()
	if seedMatches {
		if err := store.Seed(context.Background()); err != nil {
			t.Fatalf("seed store: %v", err)
		}
	} else {
		for _, u := range memory.SeedUsers() {
			if err := store.Users().Create(context.Background(), u); err != nil {
				t.Fatalf("seed user %s: %v", u.ID, err)
			}
		}
	}

	challenges := NewChallengeService(store.Challenges(), store.Users(), id.NewSequenceGenerator("challenge"), nil)
	challenges.now = func() time.Time { return testNow }
	matches := NewMatchService(store.Matches(), store.Users(), id.NewSequenceGenerator("match"), nil)
	matches.now = func() time.Time { return testNow }
	stats := NewStatisticsService(store.Matches(), store.Users(), nil, StatisticsServiceConfig{Workers: 2})

	return testEnv{
		store:      store,
		challenges: challenges,
		matches:    matches,
		stats:      stats,
	}
}

func mustCreateUser(t *testing.T, env testEnv, userID, name string) {
	t.Helper()

	err := env.store.Users().Create(context.Background(), user.User{
		ID:          userID,
		DisplayName: name,
		Email:       userID + "@example.com",
		Role:        user.RolePlayer,
		CreatedAt:   testNow,
	})
	if err != nil {
		t.Fatalf("create user %s: %v", userID, err)
	}
}

func mustPlay(t *testing.T, env testEnv, p1, p2 string, s1, s2 int, date time.Time) {
	t.Helper()

	m, err := env.matches.Schedule(context.Background(), ScheduleMatchInput{
		PlayerID:   p1,
		OpponentID: p2,
		Date:       date,
		Location:   "Court A",
	})
	if err != nil {
		t.Fatalf("schedule match: %v", err)
	}
	if _, err := env.matches.RecordScore(context.Background(), m.ID, p1, s1, s2); err != nil {
		t.Fatalf("record score: %v", err)
	}
}

func strPtr(v string) *string { return &v }
