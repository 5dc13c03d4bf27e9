package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"coolassistant.app/internal/adapters/database"
	"coolassistant.app/internal/adapters/external"
	"coolassistant.app/internal/adapters/infrastructure"
	"coolassistant.app/internal/config"
	"coolassistant.app/internal/ports"
)

type DependencyContainer struct {
	config     DependencyConfig
	appConfig  *config.Config
	db         *gorm.DB
	ownsDB     bool
	cache      ports.CacheProvider
	fileLogger *infrastructure.FileLoggerAdapter
	ports      *ports.ApplicationPorts
}

type DependencyConfig struct {
	// Registerer receives the Prometheus collectors; prometheus.DefaultRegisterer when nil
	Registerer prometheus.Registerer
	// DB replaces the configured database connection when set. The caller
	// keeps ownership and closes it.
	DB *gorm.DB
}

func NewDependencyContainer(depConfig DependencyConfig, appConfig *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config:    depConfig,
		appConfig: appConfig,
	}

	configProvider := infrastructure.NewConfigProviderAdapter(appConfig)

	if err := container.initializeDatabase(configProvider.GetDatabaseConfig()); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if err := container.initializePorts(configProvider); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func openDialector(cfg ports.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres":
		return postgres.Open(cfg.DSN), nil
	case "sqlite":
		return sqlite.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func (c *DependencyContainer) initializeDatabase(cfg ports.DatabaseConfig) error {
	db := c.config.DB
	if db == nil {
		slog.Info("Initializing database connection...", "driver", cfg.Driver)

		dialector, err := openDialector(cfg)
		if err != nil {
			return err
		}
		db, err = gorm.Open(dialector, &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("get connection pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		c.ownsDB = true
	}

	c.db = db
	slog.Info("Database connection established successfully")
	return nil
}

func (c *DependencyContainer) initializePorts(configProvider ports.ConfigProvider) error {
	slog.Info("Initializing ports...")

	surveyRepo := database.NewSurveyRepositoryAdapter(c.db)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := surveyRepo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	var logger ports.Logger = infrastructure.NewSlogLoggerAdapter(slog.Default())

	registerer := c.config.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	metrics, err := infrastructure.NewPrometheusMetricsAdapter(registerer)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	cacheConfig := configProvider.GetCacheConfig()
	cachePair, err := external.NewCacheProviderFactory().CreateCacheProvider(cacheConfig)
	if err != nil {
		slog.Error("Failed to create cache provider", "error", err)
		return fmt.Errorf("create cache provider: %w", err)
	}
	c.cache = cachePair.Provider
	slog.Info("Cache provider initialized",
		"type", cacheConfig.Type,
		"redis_addr", cacheConfig.Redis.Addr)

	jsonCache := external.NewJSONCacheAdapter(cachePair.Provider)
	draftStore, err := external.NewDraftStoreAdapter(cachePair.Provider, configProvider.GetSurveyConfig().DraftTTL)
	if err != nil {
		return fmt.Errorf("create draft store: %w", err)
	}

	airQuality, forecasts := c.initializeProviders(logger, metrics)

	placeCfg := c.appConfig.Place
	geocoder := external.NewNominatimGeocoderAdapter(external.NominatimGeocoderParams{
		BaseURL:   placeCfg.NominatimBaseURL,
		UserAgent: placeCfg.UserAgent,
		Timeout:   c.httpTimeout(),
		Logger:    logger,
	})

	c.ports = &ports.ApplicationPorts{
		SurveyRepository: surveyRepo,
		DraftStore:       draftStore,

		AirQualityProvider: airQuality,
		ForecastProvider:   forecasts,
		ForecastCache:      jsonCache,

		Geocoder:   geocoder,
		PlaceCache: jsonCache,

		CacheMetrics: cachePair.Metrics,

		ConfigProvider: configProvider,
		Logger:         logger,
		Metrics:        metrics,
		Database:       c.db,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) httpTimeout() time.Duration {
	return time.Duration(c.appConfig.Forecast.HTTPTimeoutSeconds) * time.Second
}

// initializeProviders builds the air quality fallback chain and the forecast provider
func (c *DependencyContainer) initializeProviders(logger ports.Logger, metrics ports.MetricsCollector) (ports.AirQualityProviderManager, ports.ForecastProvider) {
	cfg := c.appConfig.Forecast
	timeout := c.httpTimeout()

	// provider calls also go to a JSON lines file when one is configured
	providerLogger := logger
	if cfg.EnableLogging && cfg.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(cfg.LogFilePath)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			c.fileLogger = fileLogger
			providerLogger = infrastructure.TeeLogger{logger, fileLogger}
			slog.Info("Provider file logging enabled", "path", cfg.LogFilePath)
		}
	}

	openWeather := external.NewOpenWeatherMapProviderAdapter(external.OpenWeatherMapProviderParams{
		APIKey:  cfg.OpenWeatherMapKey,
		BaseURL: cfg.OpenWeatherMapBaseURL,
		Timeout: timeout,
		Logger:  logger,
	})
	openMeteo := external.NewOpenMeteoProviderAdapter(external.OpenMeteoProviderParams{
		BaseURL: cfg.OpenMeteoBaseURL,
		Timeout: timeout,
		Logger:  logger,
	})

	providers := map[string]ports.AirQualityProvider{
		openMeteo.GetProviderName():   openMeteo,
		openWeather.GetProviderName(): openWeather,
	}
	var forecasts ports.ForecastProvider = openWeather
	if cfg.EnableLogging {
		for name, p := range providers {
			providers[name] = external.NewAirQualityProviderLoggingDecorator(p, providerLogger)
		}
		forecasts = external.NewForecastProviderLoggingDecorator(openWeather, providerLogger)
		slog.Info("Forecast provider logging enabled")
	}
	if cfg.OpenWeatherMapKey == "" {
		slog.Warn("OPENWEATHERMAP_API_KEY is not set; dust and heat outlooks will be unavailable")
	}

	manager := external.NewAirQualityProviderManagerAdapter(external.AirQualityManagerConfig{
		Providers:     providers,
		ProviderOrder: cfg.AirQualityOrder,
		Logger:        logger,
		Metrics:       metrics,
	})
	return manager, forecasts
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// Cache returns the backend shared by drafts, forecasts and place labels
func (c *DependencyContainer) Cache() ports.CacheProvider {
	return c.cache
}

// Cleanup releases the connections and files the container opened. An
// injected database is left open.
func (c *DependencyContainer) Cleanup() error {
	var result error

	if closer, ok := c.cache.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("close cache: %w", err))
		}
	}
	if c.fileLogger != nil {
		if err := c.fileLogger.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("close provider log: %w", err))
		}
	}
	if c.db != nil && c.ownsDB {
		if db, err := c.db.DB(); err == nil {
			if err := db.Close(); err != nil {
				result = multierror.Append(result, fmt.Errorf("close database: %w", err))
			}
		}
	}
	return result
}
