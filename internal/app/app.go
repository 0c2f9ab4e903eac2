// Package app wires configuration, storage, services and the HTTP router
// into a runnable server.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"

	"github.com/delilt/football-dashboard/external/footballapi"
	"github.com/delilt/football-dashboard/internal/config"
	"github.com/delilt/football-dashboard/internal/domain/match"
	"github.com/delilt/football-dashboard/internal/domain/team"
	"github.com/delilt/football-dashboard/internal/infrastructure/repository/memory"
	"github.com/delilt/football-dashboard/internal/infrastructure/repository/postgres"
	"github.com/delilt/football-dashboard/internal/interfaces/httpapi"
	"github.com/delilt/football-dashboard/internal/platform/cache"
	idgen "github.com/delilt/football-dashboard/internal/platform/id"
	"github.com/delilt/football-dashboard/internal/platform/logging"
	"github.com/delilt/football-dashboard/internal/platform/resilience"
	"github.com/delilt/football-dashboard/internal/usecase"
)

type App struct {
	Server *http.Server
	Sync   *usecase.SyncService

	cfg    config.Config
	logger *logging.Logger
	db     *sqlx.DB
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{cfg: cfg, logger: logger}

	teamRepo, matchRepo, err := a.buildRepositories()
	if err != nil {
		return nil, err
	}

	var cacheStore *cache.Store
	if cfg.CacheEnabled {
		cacheStore = cache.NewStore(cfg.CacheTTL)
	}

	var fetcher usecase.SnapshotFetcher
	if cfg.UpstreamEnabled {
		fetcher = footballapi.NewClient(footballapi.ClientConfig{
			BaseURL:    cfg.UpstreamBaseURL,
			Timeout:    cfg.UpstreamTimeout,
			MaxRetries: cfg.UpstreamMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.UpstreamCircuitEnabled,
				FailureThreshold: cfg.UpstreamCircuitFailureCount,
				OpenTimeout:      cfg.UpstreamCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.UpstreamCircuitHalfOpenMaxReq,
			},
		})
	}

	generator := idgen.NewRandomGenerator()

	teamService := usecase.NewTeamService(teamRepo, cacheStore)
	matchService := usecase.NewMatchService(teamRepo, matchRepo)
	statsService := usecase.NewStatsService(teamRepo, matchRepo, cacheStore)
	dashboardService := usecase.NewDashboardService(teamService, statsService)
	a.Sync = usecase.NewSyncService(fetcher, teamRepo, matchRepo, cacheStore, generator, cfg.SyncWorkerCount, logger)

	handler := httpapi.NewHandler(teamService, matchService, statsService, dashboardService, a.Sync, logger)
	router := httpapi.NewRouter(handler, logger, generator, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return a, nil
}

func (a *App) buildRepositories() (team.Repository, match.Repository, error) {
	if a.cfg.DBURL == "" {
		if a.cfg.UpstreamEnabled {
			// The startup sync fills these; until then the API serves
			// empty lists rather than stale demo data.
			a.logger.Info("storage: in-memory, awaiting upstream sync")
			return memory.NewTeamRepository(nil), memory.NewMatchRepository(nil), nil
		}
		a.logger.Info("storage: in-memory with bundled seed data")
		return memory.NewTeamRepository(memory.SeedTeams()), memory.NewMatchRepository(memory.SeedMatches()), nil
	}

	dsn := normalizeDBURL(a.cfg.DBURL, a.cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(a.cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}
	db.SetMaxOpenConns(16)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(30 * time.Minute)
	a.db = db

	a.logger.Info("storage: postgres", "db", dbNameFromURL(a.cfg.DBURL))
	return postgres.NewTeamRepository(db), postgres.NewMatchRepository(db), nil
}

// WarmStart runs one snapshot sync so the service does not come up empty.
// Only meaningful when an upstream API is configured.
func (a *App) WarmStart(ctx context.Context) error {
	if !a.cfg.UpstreamEnabled {
		return nil
	}

	result, err := a.Sync.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("startup sync: %w", err)
	}

	a.logger.InfoContext(ctx, "startup sync complete",
		"run_id", result.RunID,
		"teams", result.Teams,
		"matches", result.Matches,
	)
	return nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
