package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gdogra/tennisconnect/internal/domain/match"
	"github.com/gdogra/tennisconnect/internal/infrastructure/repository/memory"
	matchmock "github.com/gdogra/tennisconnect/internal/mocks/domain/match"
	usermock "github.com/gdogra/tennisconnect/internal/mocks/domain/user"
	"github.com/gdogra/tennisconnect/internal/platform/id"
)

func scheduleAnaVsBruno(t *testing.T, env testEnv) match.Match {
	t.Helper()

	m, err := env.matches.Schedule(context.Background(), ScheduleMatchInput{
		PlayerID:   memory.UserIDAna,
		OpponentID: memory.UserIDBruno,
		Date:       proposedAt,
		Location:   "Court A",
	})
	require.NoError(t, err)
	return m
}

func TestMatchService_RecordScore_CompletesAndCountsInStats(t *testing.T) {
	env := newTestEnv(t, false)
	scheduled := scheduleAnaVsBruno(t, env)

	completed, err := env.matches.RecordScore(context.Background(), scheduled.ID, memory.UserIDBruno, 6, 3)
	require.NoError(t, err)

	assert.Equal(t, match.StatusCompleted, completed.Status)
	require.NotNil(t, completed.Player1Score)
	require.NotNil(t, completed.Player2Score)
	assert.Equal(t, 6, *completed.Player1Score)
	assert.Equal(t, 3, *completed.Player2Score)

	ana, err := env.stats.ComputeForPlayer(context.Background(), memory.UserIDAna)
	require.NoError(t, err)
	assert.Equal(t, 1, ana.MatchesPlayed)
	assert.Equal(t, 1, ana.Wins)
	assert.Equal(t, 0, ana.Losses)
	assert.Equal(t, 100, ana.WinPercentage)
	assert.Equal(t, 6, ana.TotalGamesWon)
	assert.Equal(t, 3, ana.TotalGamesLost)
}

func TestMatchService_RecordScore_RejectsIllegalScores(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 int
	}{
		{name: "tie", p1: 4, p2: 4},
		{name: "zero tie", p1: 0, p2: 0},
		{name: "negative", p1: -1, p2: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, false)
			scheduled := scheduleAnaVsBruno(t, env)

			_, err := env.matches.RecordScore(context.Background(), scheduled.ID, memory.UserIDAna, tt.p1, tt.p2)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}

			stored, err := env.matches.Get(context.Background(), scheduled.ID)
			require.NoError(t, err)
			assert.Equal(t, match.StatusScheduled, stored.Status)
			assert.Nil(t, stored.Player1Score)
		})
	}
}

func TestMatchService_RecordScore_CheckOrder(t *testing.T) {
	env := newTestEnv(t, false)
	scheduled := scheduleAnaVsBruno(t, env)

	_, err := env.matches.RecordScore(context.Background(), "missing", memory.UserIDAna, 6, 3)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = env.matches.RecordScore(context.Background(), scheduled.ID, memory.UserIDChen, 4, 4)
	assert.ErrorIs(t, err, ErrForbidden, "outsider is rejected before the score is looked at")

	_, err = env.matches.RecordScore(context.Background(), scheduled.ID, memory.UserIDAna, 6, 4)
	require.NoError(t, err)

	_, err = env.matches.RecordScore(context.Background(), scheduled.ID, memory.UserIDChen, 6, 1)
	assert.ErrorIs(t, err, ErrForbidden, "outsider is rejected before the status is looked at")

	_, err = env.matches.RecordScore(context.Background(), scheduled.ID, memory.UserIDBruno, 4, 4)
	assert.ErrorIs(t, err, ErrInvalidState, "completed match is rejected before the score is looked at")

	stored, err := env.matches.Get(context.Background(), scheduled.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, *stored.Player1Score)
	assert.Equal(t, 4, *stored.Player2Score)
}

func TestMatchService_RecordScore_LostRaceIsInvalidState(t *testing.T) {
	ctx := context.Background()
	matchRepo := matchmock.NewRepository(t)
	userRepo := usermock.NewRepository(t)
	svc := NewMatchService(matchRepo, userRepo, id.NewSequenceGenerator("m"), nil)
	svc.now = func() time.Time { return testNow }

	scheduled := match.Match{
		ID:        "m1",
		Player1ID: "u1",
		Player2ID: "u2",
		Date:      proposedAt,
		Location:  "Court A",
		Status:    match.StatusScheduled,
	}
	matchRepo.On("GetByID", ctx, "m1").Return(scheduled, true, nil).Once()
	matchRepo.On("CompleteScore", ctx, "m1", 6, 2, testNow).Return(match.Match{}, false, nil).Once()

	_, err := svc.RecordScore(ctx, "m1", "u1", 6, 2)
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestMatchService_RecordScore_StoreFailureIsMarked(t *testing.T) {
	ctx := context.Background()
	matchRepo := matchmock.NewRepository(t)
	userRepo := usermock.NewRepository(t)
	svc := NewMatchService(matchRepo, userRepo, id.NewSequenceGenerator("m"), nil)

	scheduled := match.Match{ID: "m1", Player1ID: "u1", Player2ID: "u2", Status: match.StatusScheduled}
	matchRepo.On("GetByID", ctx, "m1").Return(scheduled, true, nil).Once()
	matchRepo.
		On("CompleteScore", ctx, "m1", 6, 2, mock.AnythingOfType("time.Time")).
		Return(match.Match{}, false, errors.New("deadlock detected")).
		Once()

	_, err := svc.RecordScore(ctx, "m1", "u2", 6, 2)
	require.Error(t, err)
	assert.True(t, IsStoreFailure(err))
	assert.False(t, errors.Is(err, ErrInvalidState))
}

func TestMatchService_Schedule_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input ScheduleMatchInput
		want  error
	}{
		{
			name:  "same player",
			input: ScheduleMatchInput{PlayerID: memory.UserIDAna, OpponentID: memory.UserIDAna, Date: proposedAt, Location: "Court A"},
			want:  ErrInvalidInput,
		},
		{
			name:  "missing location",
			input: ScheduleMatchInput{PlayerID: memory.UserIDAna, OpponentID: memory.UserIDBruno, Date: proposedAt},
			want:  ErrInvalidInput,
		},
		{
			name:  "missing date",
			input: ScheduleMatchInput{PlayerID: memory.UserIDAna, OpponentID: memory.UserIDBruno, Location: "Court A"},
			want:  ErrInvalidInput,
		},
		{
			name:  "unknown opponent",
			input: ScheduleMatchInput{PlayerID: memory.UserIDAna, OpponentID: "ghost", Date: proposedAt, Location: "Court A"},
			want:  ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, false)
			_, err := env.matches.Schedule(context.Background(), tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestMatchService_Reschedule(t *testing.T) {
	env := newTestEnv(t, false)
	scheduled := scheduleAnaVsBruno(t, env)
	newDate := proposedAt.Add(48 * time.Hour)

	_, err := env.matches.Reschedule(context.Background(), RescheduleMatchInput{
		MatchID:      scheduled.ID,
		ActingUserID: memory.UserIDChen,
		Date:         newDate,
		Location:     "Court B",
	})
	assert.ErrorIs(t, err, ErrForbidden)

	moved, err := env.matches.Reschedule(context.Background(), RescheduleMatchInput{
		MatchID:      scheduled.ID,
		ActingUserID: memory.UserIDBruno,
		Date:         newDate,
		Location:     " Court B ",
	})
	require.NoError(t, err)
	assert.True(t, moved.Date.Equal(newDate))
	assert.Equal(t, "Court B", moved.Location)
	assert.Equal(t, match.StatusScheduled, moved.Status)

	_, err = env.matches.RecordScore(context.Background(), scheduled.ID, memory.UserIDAna, 6, 0)
	require.NoError(t, err)

	_, err = env.matches.Reschedule(context.Background(), RescheduleMatchInput{
		MatchID:      scheduled.ID,
		ActingUserID: memory.UserIDAna,
		Date:         newDate,
		Location:     "Court C",
	})
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestMatchService_ListForPlayer(t *testing.T) {
	env := newTestEnv(t, true)

	items, err := env.matches.ListForPlayer(context.Background(), memory.UserIDAna)
	require.NoError(t, err)

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.Match.ID)
		assert.True(t, item.Match.IsParticipant(memory.UserIDAna))
		assert.NotEmpty(t, item.Player1Name)
		assert.NotEmpty(t, item.Player2Name)
	}
	assert.Equal(t, []string{"seed-match-06", "seed-match-02", "seed-match-01"}, ids)

	_, err = env.matches.ListForPlayer(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
