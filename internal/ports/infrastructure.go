package ports

import (
	"context"
	"time"
)

// SurveyConfig represents submission and deduplication settings
type SurveyConfig struct {
	Cooldown         time.Duration
	RejectOnCooldown bool
	CleanupInterval  time.Duration
	DraftTTL         time.Duration
	HistoryLimit     int
}

// HeatmapConfig represents heat map aggregation settings
type HeatmapConfig struct {
	RowLimit         int
	DailyAggregation bool
}

// ForecastConfig represents forecast service configuration
type ForecastConfig struct {
	CacheTTL         time.Duration
	DefaultCity      string
	DefaultLatitude  float64
	DefaultLongitude float64
}

// PlaceConfig represents reverse geocoding configuration
type PlaceConfig struct {
	CacheTTL time.Duration
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port      int
	StaticDir string
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// CacheConfig represents cache configuration
type CacheConfig struct {
	Type  string
	Redis RedisConfig
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  int
	ReadTimeout  int
	WriteTimeout int
}

// AuthConfig represents the trusted identity header settings
type AuthConfig struct {
	UserHeader string
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetSurveyConfig() SurveyConfig
	GetHeatmapConfig() HeatmapConfig
	GetForecastConfig() ForecastConfig
	GetPlaceConfig() PlaceConfig
	GetServerConfig() ServerConfig
	GetDatabaseConfig() DatabaseConfig
	GetCacheConfig() CacheConfig
	GetAuthConfig() AuthConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Submission outcomes reported to MetricsCollector
const (
	SubmissionAccepted = "accepted"
	SubmissionRejected = "rejected"
	SubmissionFailed   = "failed"
)

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordCacheHit(ctx context.Context, cache string)
	RecordCacheMiss(ctx context.Context, cache string)
	RecordProviderCall(ctx context.Context, provider string, success bool)
	RecordSubmission(ctx context.Context, outcome string)
	RecordCleanupRun(ctx context.Context, deleted int64, success bool)
	RecordHeatmapPoints(ctx context.Context, points int)
}

// NopMetrics discards every measurement
type NopMetrics struct{}

func (NopMetrics) RecordCacheHit(context.Context, string)           {}
func (NopMetrics) RecordCacheMiss(context.Context, string)          {}
func (NopMetrics) RecordProviderCall(context.Context, string, bool) {}
func (NopMetrics) RecordSubmission(context.Context, string)         {}
func (NopMetrics) RecordCleanupRun(context.Context, int64, bool)    {}
func (NopMetrics) RecordHeatmapPoints(context.Context, int)         {}
