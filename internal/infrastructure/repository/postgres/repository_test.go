package postgres

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdogra/tennisconnect/internal/domain/challenge"
	"github.com/gdogra/tennisconnect/internal/domain/match"
	"github.com/gdogra/tennisconnect/internal/infrastructure/repository/memory"
)

// openTestDB connects to TEST_DB_URL, which must point at a migrated,
// disposable database. Every table is truncated first.
func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_DB_URL"))
	if dsn == "" {
		t.Skip("TEST_DB_URL is not set")
	}

	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`TRUNCATE challenge_requests, matches, users`)
	require.NoError(t, err)
	require.NoError(t, BootstrapSeed(context.Background(), db))
	return db
}

func TestMatchRepository_QueryAndCompare(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewMatchRepository(db)

	items, err := repo.Query(ctx, match.Filter{PlayerID: memory.UserIDAna})
	require.NoError(t, err)

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"seed-match-06", "seed-match-02", "seed-match-01"}, ids)

	completed, err := repo.Query(ctx, match.Filter{Status: match.StatusCompleted})
	require.NoError(t, err)
	assert.Len(t, completed, 5)

	at := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	got, applied, err := repo.CompleteScore(ctx, "seed-match-06", 6, 4, at)
	require.NoError(t, err)
	require.True(t, applied)
	assert.Equal(t, match.StatusCompleted, got.Status)
	assert.Equal(t, 6, *got.Player1Score)

	_, applied, err = repo.CompleteScore(ctx, "seed-match-06", 1, 6, at)
	require.NoError(t, err)
	assert.False(t, applied)

	_, applied, err = repo.Reschedule(ctx, "seed-match-06", at, "Elsewhere", at)
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestChallengeRepository_AcceptIsAtomic(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	challenges := NewChallengeRepository(db)
	matches := NewMatchRepository(db)

	now := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	item := challenge.Challenge{
		ID:               "challenge-pg-1",
		ChallengerID:     memory.UserIDAna,
		ChallengedID:     memory.UserIDBruno,
		ProposedAt:       now.Add(72 * time.Hour),
		ProposedLocation: "Court A",
		Status:           challenge.StatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	require.NoError(t, challenges.Create(ctx, item))

	const callers = 6
	applied := make([]bool, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m := match.Match{
				ID:        "match-pg-" + string(rune('a'+i)),
				Player1ID: item.ChallengerID,
				Player2ID: item.ChallengedID,
				Date:      item.ProposedAt,
				Location:  item.ProposedLocation,
				Status:    match.StatusScheduled,
				CreatedAt: now,
				UpdatedAt: now,
			}
			_, ok, err := challenges.AcceptWithMatch(ctx, item.ID, m, now)
			assert.NoError(t, err)
			applied[i] = ok
		}()
	}
	wg.Wait()

	wins := 0
	for _, ok := range applied {
		if ok {
			wins++
		}
	}
	assert.Equal(t, 1, wins)

	stored, exists, err := challenges.GetByID(ctx, item.ID)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, challenge.StatusAccepted, stored.Status)
	require.NotNil(t, stored.MatchID)

	scheduled, err := matches.Query(ctx, match.Filter{PlayerID: memory.UserIDBruno, Status: match.StatusScheduled})
	require.NoError(t, err)
	require.Len(t, scheduled, 1)
	assert.Equal(t, *stored.MatchID, scheduled[0].ID)

	_, ok, err := challenges.Decline(ctx, item.ID, nil, now)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserRepository_GetByIDs(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	users, err := repo.GetByIDs(context.Background(), []string{memory.UserIDChen, "ghost", memory.UserIDAna})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, memory.UserIDAna, users[0].ID)
	assert.Equal(t, memory.UserIDChen, users[1].ID)

	err = repo.Create(context.Background(), memory.SeedUsers()[0])
	assert.Error(t, err)
}
