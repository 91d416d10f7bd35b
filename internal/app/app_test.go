package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdogra/tennisconnect/internal/config"
	"github.com/gdogra/tennisconnect/internal/domain/challenge"
	"github.com/gdogra/tennisconnect/internal/infrastructure/repository/memory"
	"github.com/gdogra/tennisconnect/internal/platform/logging"
	"github.com/gdogra/tennisconnect/internal/usecase"
)

func memoryConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		ServiceName:        "tennisconnect",
		ServiceVersion:     "test",
		StoreDriver:        config.StoreDriverMemory,
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		StatsWorkers:       2,
		RecentMatchesLimit: 5,
	}
}

func TestNew_MemoryStoreIsSeededAndWired(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, memoryConfig(), logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(ctx) })

	rows, err := a.Statistics.Leaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, memory.UserIDAna, rows[0].PlayerID)
	assert.Equal(t, "Ana Ribeiro", rows[0].DisplayName)

	created, err := a.Challenges.Create(ctx, usecase.CreateChallengeInput{
		ChallengerID:     memory.UserIDChen,
		ChallengedID:     memory.UserIDDiya,
		ProposedAt:       time.Now().Add(24 * time.Hour),
		ProposedLocation: "Court B",
	})
	require.NoError(t, err)

	accepted, m, err := a.Challenges.Accept(ctx, created.ID, memory.UserIDDiya)
	require.NoError(t, err)
	assert.Equal(t, challenge.StatusAccepted, accepted.Status)

	_, err = a.Matches.RecordScore(ctx, m.ID, memory.UserIDChen, 6, 1)
	require.NoError(t, err)

	chen, err := a.Statistics.ComputeForPlayer(ctx, memory.UserIDChen)
	require.NoError(t, err)
	assert.Equal(t, 4, chen.MatchesPlayed)
	assert.Equal(t, 2, chen.Wins)

	require.NoError(t, a.Seed(ctx))
}

func TestNew_RegisteredPlayerVisibleThroughCache(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, memoryConfig(), logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(ctx) })

	before, err := a.Players.List(ctx)
	require.NoError(t, err)

	eve, err := a.Players.Register(ctx, usecase.RegisterPlayerInput{DisplayName: "Eve", Email: "eve@example.com"})
	require.NoError(t, err)

	after, err := a.Players.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)

	got, err := a.Players.Get(ctx, eve.ID)
	require.NoError(t, err)
	assert.Equal(t, "Eve", got.DisplayName)
}

func TestNew_UnknownStoreDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.StoreDriver = "sqlite"

	_, err := New(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
	assert.ErrorContains(t, err, "sqlite")
}
