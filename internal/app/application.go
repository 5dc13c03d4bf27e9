package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-multierror"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"

	"coolassistant.app/internal/adapters/api"
	"coolassistant.app/internal/adapters/external"
	"coolassistant.app/internal/adapters/infrastructure"
	"coolassistant.app/internal/config"
	"coolassistant.app/internal/core/forecast"
	"coolassistant.app/internal/core/heatmap"
	"coolassistant.app/internal/core/place"
	"coolassistant.app/internal/core/survey"
	"coolassistant.app/internal/ports"
	"coolassistant.app/pkg/logger"
)

const healthCheckTimeout = 5 * time.Second

type Application struct {
	config *config.Config

	// Use Cases
	surveyUseCase   *survey.UseCase
	heatmapUseCase  *heatmap.UseCase
	forecastUseCase *forecast.UseCase
	placeUseCase    *place.UseCase

	// Adapters
	httpAdapter *api.HTTPServerAdapter

	// Infrastructure
	container *DependencyContainer
	ports     *ports.ApplicationPorts
	gatherer  prometheus.Gatherer
	clock     clockwork.Clock
	stopChan  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logger.SetDefault(cfg.Log.Level)
	if cfg.Server.GinRelease {
		gin.SetMode(gin.ReleaseMode)
	}

	container, err := NewDependencyContainer(DependencyConfig{}, cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, container, prometheus.DefaultGatherer)
	if err != nil {
		_ = container.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, container *DependencyContainer, gatherer prometheus.Gatherer) (*Application, error) {
	app := &Application{
		config:    cfg,
		container: container,
		ports:     container.ApplicationPorts(),
		gatherer:  gatherer,
		clock:     clockwork.NewRealClock(),
		stopChan:  make(chan struct{}),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	surveyUseCase, err := survey.NewUseCase(survey.UseCaseDependencies{
		Repository: a.ports.SurveyRepository,
		Drafts:     a.ports.DraftStore,
		Config:     a.ports.ConfigProvider,
		Logger:     a.ports.Logger,
		Metrics:    a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create survey use case: %w", err)
	}
	a.surveyUseCase = surveyUseCase

	heatmapUseCase, err := heatmap.NewUseCase(heatmap.UseCaseDependencies{
		Repository: a.ports.SurveyRepository,
		Config:     a.ports.ConfigProvider,
		Logger:     a.ports.Logger,
		Metrics:    a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create heatmap use case: %w", err)
	}
	a.heatmapUseCase = heatmapUseCase

	forecastUseCase, err := forecast.NewUseCase(forecast.UseCaseDependencies{
		AirQuality: a.ports.AirQualityProvider,
		Forecasts:  a.ports.ForecastProvider,
		Cache:      a.ports.ForecastCache,
		Config:     a.ports.ConfigProvider,
		Logger:     a.ports.Logger,
		Metrics:    a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create forecast use case: %w", err)
	}
	a.forecastUseCase = forecastUseCase

	placeUseCase, err := place.NewUseCase(place.UseCaseDependencies{
		Geocoder: a.ports.Geocoder,
		Cache:    a.ports.PlaceCache,
		Config:   a.ports.ConfigProvider,
		Logger:   a.ports.Logger,
		Metrics:  a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create place use case: %w", err)
	}
	a.placeUseCase = placeUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	statsReporter := infrastructure.NewStatsReporter(infrastructure.StatsReporterConfig{
		CacheMetrics: a.ports.CacheMetrics,
		AirQuality:   a.ports.AirQualityProvider,
		Surveys:      a.ports.SurveyRepository,
	})

	systemHealthChecker := infrastructure.NewSystemHealthChecker(healthCheckTimeout,
		infrastructure.NewDatabaseHealthChecker(a.container.Database()),
		infrastructure.NewCacheHealthChecker(a.container.Cache(), a.ports.ConfigProvider.GetCacheConfig().Type),
		infrastructure.NewProvidersHealthChecker(a.ports.AirQualityProvider, a.ports.ForecastProvider),
	)

	serverCfg := a.ports.ConfigProvider.GetServerConfig()
	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:       serverCfg.Port,
			StaticDir:  serverCfg.StaticDir,
			UserHeader: a.ports.ConfigProvider.GetAuthConfig().UserHeader,
		},
		SurveyUseCase:   a.surveyUseCase,
		HeatmapUseCase:  a.heatmapUseCase,
		ForecastUseCase: a.forecastUseCase,
		PlaceUseCase:    a.placeUseCase,
		HealthChecker:   systemHealthChecker,
		StatsReporter:   statsReporter,
		Gatherer:        a.gatherer,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}
	a.httpAdapter = httpAdapter

	slog.Info("Adapters initialized successfully")
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	a.startBackgroundJobs(ctx)

	if err := a.httpAdapter.Start(); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// startBackgroundJobs launches the cleanup scheduler; Shutdown waits for it
func (a *Application) startBackgroundJobs(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.startScheduler(ctx)
	}()
}

// startScheduler runs the duplicate cleanup once at start and then on every
// interval tick, and sweeps expired entries from the in-process cache.
func (a *Application) startScheduler(ctx context.Context) {
	interval := a.ports.ConfigProvider.GetSurveyConfig().CleanupInterval
	slog.Info("Starting cleanup scheduler...", "interval", interval.String())

	ticker := a.clock.NewTicker(interval)
	defer ticker.Stop()

	a.runCleanup(ctx)
	for {
		select {
		case <-ctx.Done():
			slog.Info("Scheduler stopped due to context cancellation")
			return
		case <-a.stopChan:
			slog.Info("Scheduler stopped")
			return
		case <-ticker.Chan():
			a.runCleanup(ctx)
		}
	}
}

func (a *Application) runCleanup(ctx context.Context) {
	deleted, err := a.surveyUseCase.CleanupDuplicates(ctx)
	if err != nil {
		slog.Error("Duplicate cleanup failed", "error", err)
	} else if deleted > 0 {
		slog.Info("Duplicate cleanup finished", "deleted", deleted)
	}

	if memory, ok := a.container.Cache().(*external.MemoryCacheProvider); ok {
		if swept := memory.Sweep(); swept > 0 {
			slog.Debug("Expired cache entries swept", "count", swept)
		}
	}
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	a.stopOnce.Do(func() { close(a.stopChan) })

	var result error
	if err := a.httpAdapter.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		result = multierror.Append(result, fmt.Errorf("shutdown HTTP server: %w", err))
	}

	a.wg.Wait()

	if err := a.container.Cleanup(); err != nil {
		result = multierror.Append(result, err)
	}

	if result != nil {
		return result
	}
	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.httpAdapter.GetRouter()
}

// GetSurveyUseCase returns the survey use case for testing
func (a *Application) GetSurveyUseCase() *survey.UseCase {
	return a.surveyUseCase
}
