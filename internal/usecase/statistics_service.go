package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/gdogra/tennisconnect/internal/domain/match"
	"github.com/gdogra/tennisconnect/internal/domain/stats"
	"github.com/gdogra/tennisconnect/internal/domain/user"
	"github.com/gdogra/tennisconnect/internal/platform/logging"
)

const defaultStatsWorkers = 4

type PlayerStatistics struct {
	PlayerID          string         `json:"player_id"`
	DisplayName       string         `json:"display_name"`
	MatchesPlayed     int            `json:"matches_played"`
	Wins              int            `json:"wins"`
	Losses            int            `json:"losses"`
	WinPercentage     int            `json:"win_percentage"`
	TotalGamesWon     int            `json:"total_games_won"`
	TotalGamesLost    int            `json:"total_games_lost"`
	RecentMatches     []RecentMatch  `json:"recent_matches"`
	OpponentBreakdown []OpponentStat `json:"opponent_breakdown"`
}

type RecentMatch struct {
	MatchID       string    `json:"match_id"`
	Date          time.Time `json:"date"`
	Location      string    `json:"location"`
	OpponentID    string    `json:"opponent_id"`
	OpponentName  string    `json:"opponent_name"`
	PlayerScore   int       `json:"player_score"`
	OpponentScore int       `json:"opponent_score"`
	Won           bool      `json:"won"`
}

type OpponentStat struct {
	OpponentID   string `json:"opponent_id"`
	OpponentName string `json:"opponent_name"`
	TotalMatches int    `json:"total_matches"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

type LeaderboardEntry struct {
	PlayerID      string `json:"player_id"`
	DisplayName   string `json:"display_name"`
	MatchesPlayed int    `json:"matches_played"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	WinPercentage int    `json:"win_percentage"`
}

type StatisticsServiceConfig struct {
	Workers     int
	RecentLimit int
}

// StatisticsService derives per-player statistics and the leaderboard from
// completed matches. It holds no state between calls.
type StatisticsService struct {
	matchRepo   match.Repository
	userRepo    user.Repository
	logger      *logging.Logger
	workers     int
	recentLimit int
}

func NewStatisticsService(
	matchRepo match.Repository,
	userRepo user.Repository,
	logger *logging.Logger,
	cfg StatisticsServiceConfig,
) *StatisticsService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultStatsWorkers
	}
	if cfg.RecentLimit <= 0 {
		cfg.RecentLimit = stats.DefaultRecentLimit
	}
	return &StatisticsService{
		matchRepo:   matchRepo,
		userRepo:    userRepo,
		logger:      logger,
		workers:     cfg.Workers,
		recentLimit: cfg.RecentLimit,
	}
}

func (s *StatisticsService) ComputeForPlayer(ctx context.Context, playerID string) (result PlayerStatistics, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.ComputeForPlayer",
		attribute.String("player.id", playerID),
	)
	defer func() { endUsecaseSpan(span, err) }()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return PlayerStatistics{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	var (
		player  user.User
		exists  bool
		matches []match.Match
	)
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		player, exists, err = s.userRepo.GetByID(ctx, playerID)
		if err != nil {
			return storeFailure(err, "get player by id")
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		matches, err = s.matchRepo.Query(ctx, match.Filter{PlayerID: playerID, Status: match.StatusCompleted})
		if err != nil {
			return storeFailure(err, "query completed matches for player")
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return PlayerStatistics{}, err
	}
	if !exists {
		return PlayerStatistics{}, fmt.Errorf("%w: player %s", ErrNotFound, playerID)
	}

	summary := stats.ComputePlayer(playerID, matches, s.recentLimit)

	opponentIDs := make([]string, 0, len(summary.Opponents))
	for _, o := range summary.Opponents {
		opponentIDs = append(opponentIDs, o.OpponentID)
	}
	names, err := lookupDisplayNames(ctx, s.userRepo, opponentIDs)
	if err != nil {
		return PlayerStatistics{}, err
	}
	for _, opponentID := range opponentIDs {
		if _, ok := names[opponentID]; !ok {
			s.logger.WarnContext(ctx, "opponent missing from user store", "player_id", playerID, "opponent_id", opponentID)
		}
	}

	return projectStatistics(player, summary, names), nil
}

// ComputeForPlayers computes several players on a bounded worker pool and
// returns results in input order. The first failure by input position wins.
func (s *StatisticsService) ComputeForPlayers(ctx context.Context, playerIDs []string) ([]PlayerStatistics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.ComputeForPlayers",
		attribute.Int("player.count", len(playerIDs)),
	)
	defer span.End()

	if len(playerIDs) == 0 {
		return []PlayerStatistics{}, nil
	}

	workerCount := min(s.workers, len(playerIDs))
	workerPool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	results := make([]PlayerStatistics, len(playerIDs))
	errs := make([]error, len(playerIDs))

	var workers sync.WaitGroup
	for i, playerID := range playerIDs {
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()
			results[i], errs[i] = s.ComputeForPlayer(ctx, playerID)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("compute statistics for %s: %w", playerIDs[i], err)
		}
	}
	return results, nil
}

// ComputeForAllPlayers computes every player with a completed match, ordered
// by player id.
func (s *StatisticsService) ComputeForAllPlayers(ctx context.Context) ([]PlayerStatistics, error) {
	matches, err := s.matchRepo.Query(ctx, match.Filter{Status: match.StatusCompleted})
	if err != nil {
		return nil, storeFailure(err, "query completed matches")
	}
	return s.ComputeForPlayers(ctx, stats.ParticipantIDs(matches))
}

// Leaderboard ranks every player with at least one completed match by win
// percentage. Ties keep the order in which players first appear when walking
// completed matches oldest first.
func (s *StatisticsService) Leaderboard(ctx context.Context) (entries []LeaderboardEntry, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.Leaderboard")
	defer func() { endUsecaseSpan(span, err) }()

	matches, err := s.matchRepo.Query(ctx, match.Filter{Status: match.StatusCompleted})
	if err != nil {
		return nil, storeFailure(err, "query completed matches")
	}

	rows := stats.BuildLeaderboard(matches)
	playerIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		playerIDs = append(playerIDs, row.PlayerID)
	}
	names, err := lookupDisplayNames(ctx, s.userRepo, playerIDs)
	if err != nil {
		return nil, err
	}

	entries = make([]LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, LeaderboardEntry{
			PlayerID:      row.PlayerID,
			DisplayName:   names[row.PlayerID],
			MatchesPlayed: row.MatchesPlayed,
			Wins:          row.Wins,
			Losses:        row.Losses,
			WinPercentage: row.WinPercentage,
		})
	}
	return entries, nil
}

func projectStatistics(player user.User, summary stats.PlayerSummary, names map[string]string) PlayerStatistics {
	out := PlayerStatistics{
		PlayerID:          summary.PlayerID,
		DisplayName:       player.DisplayName,
		MatchesPlayed:     summary.MatchesPlayed,
		Wins:              summary.Wins,
		Losses:            summary.Losses,
		WinPercentage:     summary.WinPercentage,
		TotalGamesWon:     summary.TotalGamesWon,
		TotalGamesLost:    summary.TotalGamesLost,
		RecentMatches:     make([]RecentMatch, 0, len(summary.Recent)),
		OpponentBreakdown: make([]OpponentStat, 0, len(summary.Opponents)),
	}
	for _, r := range summary.Recent {
		out.RecentMatches = append(out.RecentMatches, RecentMatch{
			MatchID:       r.MatchID,
			Date:          r.Date,
			Location:      r.Location,
			OpponentID:    r.OpponentID,
			OpponentName:  names[r.OpponentID],
			PlayerScore:   r.PlayerScore,
			OpponentScore: r.OpponentScore,
			Won:           r.Won,
		})
	}
	for _, o := range summary.Opponents {
		out.OpponentBreakdown = append(out.OpponentBreakdown, OpponentStat{
			OpponentID:   o.OpponentID,
			OpponentName: names[o.OpponentID],
			TotalMatches: o.TotalMatches,
			Wins:         o.Wins,
			Losses:       o.Losses,
		})
	}
	return out
}
