package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/yagizozmericc/bay-tahmin-sub001/external/footballdata"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/config"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/domain/match"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/infrastructure/repository/memory"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/interfaces/httpapi"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/platform/cache"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/platform/logging"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/platform/resilience"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/poller"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/usecase"
)

// Application bundles the HTTP server with the snapshot refresher that
// feeds it. Start launches both; Stop shuts them down in reverse order.
type Application struct {
	Server  *http.Server
	refresh *poller.Poller
	logger  *logging.Logger
}

func New(cfg config.Config, logger *logging.Logger) (*Application, error) {
	if logger == nil {
		logger = logging.Default()
	}

	source := buildSource(cfg, logger)
	snapshots := memory.NewSnapshotStore()
	refresh := poller.New(source, snapshots, logger, cfg.RefreshInterval, cfg.UpcomingWindowDays, cfg.ResultsLimit)

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	dashboardSvc := usecase.NewDashboardService(snapshots)
	matchSvc := usecase.NewMatchService(source, store, cfg.UpcomingWindowDays)

	handler := httpapi.NewHandler(dashboardSvc, matchSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &Application{
		Server:  server,
		refresh: refresh,
		logger:  logger,
	}, nil
}

// Start launches the snapshot refresher. The caller owns the HTTP server
// listen loop so it can decide how to surface listen errors.
func (a *Application) Start(ctx context.Context) {
	a.refresh.Start(ctx)
}

// Stop halts the refresher and gracefully shuts the HTTP server down.
func (a *Application) Stop(ctx context.Context) error {
	a.refresh.Stop()
	return a.Server.Shutdown(ctx)
}

func buildSource(cfg config.Config, logger *logging.Logger) match.Source {
	if !cfg.FootballDataEnabled {
		logger.Info("using seeded in-memory fixture source", "reason", "FOOTBALL_DATA_ENABLED=false")
		return memory.NewFixtureSource(memory.SeedFixtures(time.Now().UTC()))
	}

	return footballdata.NewClient(footballdata.ClientConfig{
		BaseURL:    cfg.FootballDataBaseURL,
		Token:      cfg.FootballDataToken,
		Timeout:    cfg.FootballDataTimeout,
		MaxRetries: cfg.FootballDataMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FootballDataCircuitEnabled,
			FailureThreshold: cfg.FootballDataCircuitFailureCount,
			OpenTimeout:      cfg.FootballDataCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FootballDataCircuitHalfOpenMaxReq,
		},
	})
}
