package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gdogra/tennisconnect/internal/config"
	"github.com/gdogra/tennisconnect/internal/domain/challenge"
	"github.com/gdogra/tennisconnect/internal/domain/match"
	"github.com/gdogra/tennisconnect/internal/domain/user"
	"github.com/gdogra/tennisconnect/internal/infrastructure/repository/cache"
	"github.com/gdogra/tennisconnect/internal/infrastructure/repository/memory"
	"github.com/gdogra/tennisconnect/internal/infrastructure/repository/postgres"
	"github.com/gdogra/tennisconnect/internal/observability"
	idgen "github.com/gdogra/tennisconnect/internal/platform/id"
	"github.com/gdogra/tennisconnect/internal/platform/logging"
	"github.com/gdogra/tennisconnect/internal/usecase"
)

// App is the wired service graph used by the command-line tools.
type App struct {
	Players    *usecase.PlayerService
	Challenges *usecase.ChallengeService
	Matches    *usecase.MatchService
	Statistics *usecase.StatisticsService

	logger  *logging.Logger
	seed    func(context.Context) error
	closers []func(context.Context) error
}

type repositories struct {
	users      user.Repository
	matches    match.Repository
	challenges challenge.Repository
	seed       func(context.Context) error
	close      func(context.Context) error
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	a := &App{logger: logger}

	shutdownTelemetry, err := observability.Init(cfg, logger)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, shutdownTelemetry)

	repos, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}
	a.closers = append(a.closers, repos.close)
	a.seed = repos.seed

	users := repos.users
	if cfg.CacheEnabled {
		users = cache.NewUserRepository(users, cfg.CacheTTL)
	}

	ids := idgen.NewUUIDGenerator()
	a.Players = usecase.NewPlayerService(users, ids, logger)
	a.Challenges = usecase.NewChallengeService(repos.challenges, users, ids, logger)
	a.Matches = usecase.NewMatchService(repos.matches, users, ids, logger)
	a.Statistics = usecase.NewStatisticsService(repos.matches, users, logger, usecase.StatisticsServiceConfig{
		Workers:     cfg.StatsWorkers,
		RecentLimit: cfg.RecentMatchesLimit,
	})

	return a, nil
}

// Seed loads the demo users and match history.
func (a *App) Seed(ctx context.Context) error {
	if err := a.seed(ctx); err != nil {
		return fmt.Errorf("seed store: %w", err)
	}
	a.logger.InfoContext(ctx, "store seeded")
	return nil
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		store := memory.NewStore()
		// A memory store lives only as long as the process, so it starts seeded.
		if err := store.Seed(ctx); err != nil {
			return repositories{}, fmt.Errorf("seed memory store: %w", err)
		}
		logger.Debug("using memory store")
		return repositories{
			users:      store.Users(),
			matches:    store.Matches(),
			challenges: store.Challenges(),
			seed:       func(context.Context) error { return nil },
			close:      func(context.Context) error { return nil },
		}, nil
	case config.StoreDriverPostgres:
		db, err := openPostgres(ctx, cfg, logger)
		if err != nil {
			return repositories{}, err
		}
		return repositories{
			users:      postgres.NewUserRepository(db),
			matches:    postgres.NewMatchRepository(db),
			challenges: postgres.NewChallengeRepository(db),
			seed:       func(ctx context.Context) error { return postgres.BootstrapSeed(ctx, db) },
			close:      func(context.Context) error { return closeDB(db) },
		}, nil
	default:
		return repositories{}, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}

func closeDB(db *sqlx.DB) error {
	if err := db.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	return nil
}
