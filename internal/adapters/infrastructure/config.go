package infrastructure

import (
	"time"

	"coolassistant.app/internal/config"
	"coolassistant.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port on top of the
// environment backed config.Config
type ConfigProviderAdapter struct {
	config *config.Config
}

func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{config: cfg}
}

func (c *ConfigProviderAdapter) GetSurveyConfig() ports.SurveyConfig {
	s := c.config.Survey
	return ports.SurveyConfig{
		Cooldown:         time.Duration(s.CooldownHours) * time.Hour,
		RejectOnCooldown: s.CooldownPolicy == config.CooldownPolicyReject,
		CleanupInterval:  time.Duration(s.CleanupIntervalMinutes) * time.Minute,
		DraftTTL:         time.Duration(s.DraftTTLMinutes) * time.Minute,
		HistoryLimit:     s.HistoryLimit,
	}
}

func (c *ConfigProviderAdapter) GetHeatmapConfig() ports.HeatmapConfig {
	return ports.HeatmapConfig{
		RowLimit:         c.config.Heatmap.RowLimit,
		DailyAggregation: c.config.Heatmap.DailyAggregation,
	}
}

func (c *ConfigProviderAdapter) GetForecastConfig() ports.ForecastConfig {
	f := c.config.Forecast
	return ports.ForecastConfig{
		CacheTTL:         time.Duration(f.CacheTTLMinutes) * time.Minute,
		DefaultCity:      f.DefaultCity,
		DefaultLatitude:  f.DefaultLatitude,
		DefaultLongitude: f.DefaultLongitude,
	}
}

func (c *ConfigProviderAdapter) GetPlaceConfig() ports.PlaceConfig {
	return ports.PlaceConfig{
		CacheTTL: time.Duration(c.config.Place.CacheTTLHours) * time.Hour,
	}
}

func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port:      c.config.Server.Port,
		StaticDir: c.config.Server.StaticDir,
	}
}

func (c *ConfigProviderAdapter) GetDatabaseConfig() ports.DatabaseConfig {
	db := c.config.Database
	return ports.DatabaseConfig{
		Driver:          db.Driver,
		DSN:             db.GetDSN(),
		MaxOpenConns:    db.MaxOpenConns,
		MaxIdleConns:    db.MaxIdleConns,
		ConnMaxLifetime: time.Duration(db.ConnMaxLifetimeMinutes) * time.Minute,
	}
}

func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	r := c.config.Cache.Redis
	return ports.CacheConfig{
		Type: c.config.Cache.Type.String(),
		Redis: ports.RedisConfig{
			Addr:         r.Addr,
			Password:     r.Password,
			DB:           r.DB,
			DialTimeout:  r.DialTimeout,
			ReadTimeout:  r.ReadTimeout,
			WriteTimeout: r.WriteTimeout,
		},
	}
}

func (c *ConfigProviderAdapter) GetAuthConfig() ports.AuthConfig {
	return ports.AuthConfig{UserHeader: c.config.Auth.UserHeader}
}
