package app

import (
	"fmt"
	"net/http"

	"github.com/hoopsight/hoopsight/external/dataapi"
	"github.com/hoopsight/hoopsight/external/espn"
	"github.com/hoopsight/hoopsight/internal/config"
	"github.com/hoopsight/hoopsight/internal/interfaces/httpapi"
	"github.com/hoopsight/hoopsight/internal/platform/cache"
	"github.com/hoopsight/hoopsight/internal/platform/logging"
	"github.com/hoopsight/hoopsight/internal/platform/resilience"
	"github.com/hoopsight/hoopsight/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	backend := dataapi.NewClient(dataapi.ClientConfig{
		BaseURL:    cfg.DataAPIBaseURL,
		APIKey:     cfg.DataAPIKey,
		Timeout:    cfg.DataAPITimeout,
		MaxRetries: cfg.DataAPIMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.DataAPICircuitEnabled,
			FailureThreshold: cfg.DataAPICircuitFailureCount,
			OpenTimeout:      cfg.DataAPICircuitOpenTimeout,
			ProbeLimit:       cfg.DataAPICircuitHalfOpenMaxReq,
		},
	})

	var live usecase.LiveStatsProvider
	if cfg.LiveStatsEnabled {
		live = espn.NewClient(espn.ClientConfig{
			BaseURL:    cfg.LiveStatsBaseURL,
			Timeout:    cfg.LiveStatsTimeout,
			MaxRetries: cfg.LiveStatsMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.LiveStatsCircuitEnabled,
				FailureThreshold: cfg.LiveStatsCircuitFailureCount,
				OpenTimeout:      cfg.LiveStatsCircuitOpenTimeout,
				ProbeLimit:       cfg.LiveStatsCircuitHalfOpenMaxReq,
			},
		})
	}

	seasonSvc := usecase.NewSeasonService(backend, store)
	teamViewSvc := usecase.NewTeamViewService(backend, live, seasonSvc, store, logger)
	analyticsSvc := usecase.NewAnalyticsService(backend, store)
	warmSvc := usecase.NewWarmService(teamViewSvc, cfg.WarmMaxWorkers, logger)

	handler := httpapi.NewHandler(teamViewSvc, seasonSvc, analyticsSvc, warmSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
