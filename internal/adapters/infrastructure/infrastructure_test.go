package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"coolassistant.app/internal/adapters/external"
	"coolassistant.app/internal/config"
	"coolassistant.app/internal/mocks"
	"coolassistant.app/internal/ports"
	"coolassistant.app/pkg/errors"
)

func TestConfigProviderAdapter(t *testing.T) {
	cfg := &config.Config{
		Server:   config.ServerConfig{Port: 9090, StaticDir: "web"},
		Database: config.DatabaseConfig{Driver: "sqlite", SQLitePath: "/tmp/x.db", MaxOpenConns: 4, MaxIdleConns: 2, ConnMaxLifetimeMinutes: 15},
		Survey: config.SurveyConfig{
			CooldownHours: 24, CooldownPolicy: config.CooldownPolicyReject,
			CleanupIntervalMinutes: 60, DraftTTLMinutes: 120, HistoryLimit: 50,
		},
		Heatmap:  config.HeatmapConfig{RowLimit: 1000, DailyAggregation: true},
		Forecast: config.ForecastConfig{CacheTTLMinutes: 10, DefaultCity: "Erbil,IQ", DefaultLatitude: 36.206, DefaultLongitude: 44.009},
		Place:    config.PlaceConfig{CacheTTLHours: 24},
		Cache:    config.CacheConfig{Type: config.CacheTypeRedis, Redis: config.RedisConfig{Addr: "redis:6379", DB: 2}},
		Auth:     config.AuthConfig{UserHeader: "X-Forwarded-Email"},
	}
	provider := NewConfigProviderAdapter(cfg)

	survey := provider.GetSurveyConfig()
	assert.Equal(t, 24*time.Hour, survey.Cooldown)
	assert.True(t, survey.RejectOnCooldown)
	assert.Equal(t, time.Hour, survey.CleanupInterval)
	assert.Equal(t, 2*time.Hour, survey.DraftTTL)
	assert.Equal(t, 50, survey.HistoryLimit)

	assert.Equal(t, ports.HeatmapConfig{RowLimit: 1000, DailyAggregation: true}, provider.GetHeatmapConfig())
	assert.Equal(t, 10*time.Minute, provider.GetForecastConfig().CacheTTL)
	assert.Equal(t, "Erbil,IQ", provider.GetForecastConfig().DefaultCity)
	assert.Equal(t, 24*time.Hour, provider.GetPlaceConfig().CacheTTL)
	assert.Equal(t, ports.ServerConfig{Port: 9090, StaticDir: "web"}, provider.GetServerConfig())

	db := provider.GetDatabaseConfig()
	assert.Equal(t, "sqlite", db.Driver)
	assert.Equal(t, "/tmp/x.db", db.DSN)
	assert.Equal(t, 15*time.Minute, db.ConnMaxLifetime)

	cache := provider.GetCacheConfig()
	assert.Equal(t, "redis", cache.Type)
	assert.Equal(t, "redis:6379", cache.Redis.Addr)
	assert.Equal(t, 2, cache.Redis.DB)
	assert.Equal(t, "X-Forwarded-Email", provider.GetAuthConfig().UserHeader)
}

func TestSlogLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	log := NewSlogLoggerAdapter(base).With(ports.F("component", "survey"))

	log.Warn("Cooldown active", ports.F("error", fmt.Errorf("too soon")), ports.F("retry_after", 30))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "Cooldown active", entry["msg"])
	assert.Equal(t, "survey", entry["component"])
	assert.Equal(t, "too soon", entry["error"])
	assert.Equal(t, 30.0, entry["retry_after"])
}

func TestPrometheusMetricsAdapter(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := NewPrometheusMetricsAdapter(reg)
	require.NoError(t, err)
	ctx := context.Background()

	metrics.RecordCacheHit(ctx, "forecast")
	metrics.RecordCacheHit(ctx, "forecast")
	metrics.RecordCacheMiss(ctx, "place")
	metrics.RecordProviderCall(ctx, "openmeteo", false)
	metrics.RecordSubmission(ctx, ports.SubmissionAccepted)
	metrics.RecordCleanupRun(ctx, 3, true)
	metrics.RecordCleanupRun(ctx, 0, false)
	metrics.RecordHeatmapPoints(ctx, 12)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.cacheLookups.WithLabelValues("forecast", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.cacheLookups.WithLabelValues("place", "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.providerCalls.WithLabelValues("openmeteo", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.submissions.WithLabelValues("accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.cleanupRuns.WithLabelValues("failure")))
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.deletedRows))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.heatmapPoints))

	_, err = NewPrometheusMetricsAdapter(reg)
	assert.Error(t, err, "registering twice on one registry must fail")
}

func TestStatsReporter(t *testing.T) {
	repo := mocks.NewSurveyRepository(t)
	manager := mocks.NewAirQualityProviderManager(t)
	cache := external.NewMemoryCacheProvider()
	ctx := context.Background()

	repo.EXPECT().Count(ctx).Return(int64(7), nil).Once()
	manager.EXPECT().GetProviderInfo().Return(map[string]interface{}{"total_providers": 2})

	reporter := NewStatsReporter(StatsReporterConfig{CacheMetrics: cache, AirQuality: manager, Surveys: repo})
	out, err := reporter.GetMetrics(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(7), out["survey_responses"])
	assert.Contains(t, out, "cache")
	assert.Equal(t, 2, out["air_quality_providers"].(map[string]interface{})["total_providers"])

	repo.EXPECT().Count(ctx).Return(int64(0), errors.NewDatabaseError("down", nil)).Once()
	_, err = reporter.GetMetrics(ctx)
	assert.True(t, errors.IsDatabaseError(err))
}

func TestHealthCheckers(t *testing.T) {
	ctx := context.Background()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	manager := mocks.NewAirQualityProviderManager(t)
	manager.EXPECT().GetProviderInfo().Return(map[string]interface{}{"total_providers": 0})

	system := NewSystemHealthChecker(time.Second,
		NewDatabaseHealthChecker(db),
		NewCacheHealthChecker(external.NewMemoryCacheProvider(), "memory"),
		NewProvidersHealthChecker(manager, nil),
	)

	results := system.CheckAll(ctx)
	require.Len(t, results, 3)
	assert.Equal(t, statusHealthy, results["database"].Status)
	assert.Equal(t, "sqlite", results["database"].Details["dialect"])
	assert.Equal(t, statusHealthy, results["cache"].Status)
	assert.Equal(t, statusDegraded, results["providers"].Status)
	assert.Equal(t, statusDegraded, ports.OverallHealth(results))

	assert.Equal(t, statusUnhealthy, NewDatabaseHealthChecker(nil).Check(ctx).Status)
	assert.Equal(t, statusUnhealthy, NewCacheHealthChecker(nil, "none").Check(ctx).Status)
	assert.Equal(t, statusUnhealthy, ports.OverallHealth(map[string]ports.HealthStatus{
		"a": {Status: statusDegraded}, "b": {Status: statusUnhealthy},
	}))
}
