package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/devShamim/match-stats-sub000/internal/config"
	"github.com/devShamim/match-stats-sub000/internal/domain/match"
	"github.com/devShamim/match-stats-sub000/internal/domain/matchevent"
	"github.com/devShamim/match-stats-sub000/internal/domain/matchstat"
	"github.com/devShamim/match-stats-sub000/internal/domain/player"
	"github.com/devShamim/match-stats-sub000/internal/domain/roster"
	"github.com/devShamim/match-stats-sub000/internal/domain/scoring"
	"github.com/devShamim/match-stats-sub000/internal/domain/team"
	"github.com/devShamim/match-stats-sub000/internal/domain/tournament"
	cacherepo "github.com/devShamim/match-stats-sub000/internal/infrastructure/repository/cache"
	"github.com/devShamim/match-stats-sub000/internal/infrastructure/repository/memory"
	"github.com/devShamim/match-stats-sub000/internal/infrastructure/repository/postgres"
	"github.com/devShamim/match-stats-sub000/internal/interfaces/httpapi"
	"github.com/devShamim/match-stats-sub000/internal/platform/cache"
	idgen "github.com/devShamim/match-stats-sub000/internal/platform/id"
	"github.com/devShamim/match-stats-sub000/internal/platform/logging"
	"github.com/devShamim/match-stats-sub000/internal/platform/resilience"
	"github.com/devShamim/match-stats-sub000/internal/usecase"
)

type repositories struct {
	players     player.Repository
	matches     match.Repository
	rosters     roster.Repository
	stats       matchstat.Repository
	events      matchevent.Repository
	teams       team.Repository
	tournaments tournament.Repository
	standings   tournament.StandingRepository
	prizes      tournament.PrizeRepository
	close       func() error
}

// NewHTTPServer wires the store, services and router. The returned cleanup releases the
// store and must run after the server has shut down.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	handler := httpapi.NewHandler(newHandlerDeps(cfg, repos, logger))
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.AdminToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, repos.close, nil
}

func newHandlerDeps(cfg config.Config, repos repositories, logger *logging.Logger) httpapi.HandlerDeps {
	policy := scoring.NewPolicy(scoring.Options{
		OwnGoalPenalty:  cfg.Scoring.OwnGoalPenalty,
		DefenderMatchDM: cfg.Scoring.DefenderMatchDM,
	})
	ids := idgen.NewRandomGenerator()

	var statsCache *cache.Store
	if cfg.CacheEnabled {
		statsCache = cache.NewStore(cfg.CacheTTL)
	}

	leaderboards := usecase.NewLeaderboardService(usecase.LeaderboardDeps{
		Players:      repos.players,
		Rosters:      repos.rosters,
		Matches:      repos.matches,
		Stats:        repos.stats,
		Events:       repos.events,
		Cache:        statsCache,
		DefaultLimit: cfg.LeaderboardDefaultLimit,
		Logger:       logger,
	})

	return httpapi.HandlerDeps{
		MatchStats: usecase.NewMatchStatsService(usecase.MatchStatsDeps{
			Matches:     repos.matches,
			Rosters:     repos.rosters,
			Events:      repos.events,
			Stats:       repos.stats,
			Tournaments: repos.tournaments,
			IDs:         ids,
			Logger:      logger,
			Invalidator: leaderboards,
			MaxWorkers:  cfg.Stats.RecomputeMaxWorker,
		}),
		PlayerStats: usecase.NewPlayerStatsService(usecase.PlayerStatsDeps{
			Players:        repos.players,
			Rosters:        repos.rosters,
			Matches:        repos.matches,
			Stats:          repos.stats,
			Events:         repos.events,
			Policy:         policy,
			AutoCleanSheet: cfg.Stats.AutoCleanSheet,
			Logger:         logger,
		}),
		Leaderboards: leaderboards,
		Standings: usecase.NewStandingsService(usecase.StandingsDeps{
			Tournaments: repos.tournaments,
			Standings:   repos.standings,
			Matches:     repos.matches,
			Teams:       repos.teams,
			IDs:         ids,
			Logger:      logger,
			Invalidator: leaderboards,
		}),
		Prizes: usecase.NewPrizeService(usecase.PrizeDeps{
			Tournaments: repos.tournaments,
			Standings:   repos.standings,
			Prizes:      repos.prizes,
			Matches:     repos.matches,
			Rosters:     repos.rosters,
			Stats:       repos.stats,
			Events:      repos.events,
			Teams:       repos.teams,
			Players:     repos.players,
			Policy:      policy,
			IDs:         ids,
			Logger:      logger,
		}),
		Logger: logger,
	}
}

func newRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	var repos repositories
	switch cfg.StoreBackend {
	case config.StorePostgres:
		x, err := openDB(ctx, cfg)
		if err != nil {
			return repositories{}, err
		}

		var breaker *resilience.CircuitBreaker
		if cfg.DBCircuit.Enabled {
			breaker = resilience.NewCircuitBreakerFromConfig(cfg.DBCircuit)
		}
		db := postgres.NewDB(x, breaker)
		repos = repositories{
			players:     postgres.NewPlayerRepository(db),
			matches:     postgres.NewMatchRepository(db),
			rosters:     postgres.NewRosterRepository(db),
			stats:       postgres.NewStatRepository(db),
			events:      postgres.NewEventRepository(db),
			teams:       postgres.NewTeamRepository(db),
			tournaments: postgres.NewTournamentRepository(db),
			standings:   postgres.NewStandingRepository(db),
			prizes:      postgres.NewPrizeRepository(db),
			close:       x.Close,
		}
		logger.Info("store ready", "backend", config.StorePostgres, "db", dbNameFromURL(cfg.DBURL), "circuit_enabled", cfg.DBCircuit.Enabled)
	default:
		db := memory.NewDB(memory.SeedDataset(time.Now()))
		repos = repositories{
			players:     memory.NewPlayerRepository(db),
			matches:     memory.NewMatchRepository(db),
			rosters:     memory.NewRosterRepository(db),
			stats:       memory.NewStatRepository(db),
			events:      memory.NewEventRepository(db),
			teams:       memory.NewTeamRepository(db),
			tournaments: memory.NewTournamentRepository(db),
			standings:   memory.NewStandingRepository(db),
			prizes:      memory.NewPrizeRepository(db),
			close:       func() error { return nil },
		}
		logger.Info("store ready", "backend", config.StoreMemory, "seed_tournament", memory.SeedTournamentID)
	}

	if cfg.CacheEnabled {
		store := cache.NewStore(cfg.CacheTTL)
		repos.players = cacherepo.NewPlayerRepository(repos.players, store)
		repos.teams = cacherepo.NewTeamRepository(repos.teams, store)
		repos.tournaments = cacherepo.NewTournamentRepository(repos.tournaments, store)
	}

	return repos, nil
}
