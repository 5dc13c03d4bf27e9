package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"coolassistant.app/pkg/errors"
)

const (
	maxRedisDB              = 15
	maxPortNumber           = 65535
	maxCooldownHours        = 168
	maxHeatmapRows          = 2000
	maxForecastTTLMinutes   = 60
	maxForecastTimeout      = 30
	maxCleanupIntervalMins  = 10080
	maxDraftTTLMinutes      = 1440
	defaultHistoryRowsLimit = 200
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Database DatabaseConfig `split_words:"true"`
	Survey   SurveyConfig   `split_words:"true"`
	Heatmap  HeatmapConfig  `split_words:"true"`
	Forecast ForecastConfig `split_words:"true"`
	Place    PlaceConfig    `split_words:"true"`
	Cache    CacheConfig    `split_words:"true"`
	Auth     AuthConfig     `split_words:"true"`
	Log      LogConfig      `split_words:"true"`
}

type ServerConfig struct {
	Port       int    `envconfig:"SERVER_PORT" default:"8080"`
	StaticDir  string `envconfig:"SERVER_STATIC_DIR" default:"public"`
	GinRelease bool   `envconfig:"GIN_RELEASE_MODE" default:"false"`
}

type DatabaseConfig struct {
	Driver     string `envconfig:"DB_DRIVER" default:"postgres"`
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       int    `envconfig:"DB_PORT" default:"5432"`
	User       string `envconfig:"DB_USER" default:"postgres"`
	Password   string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string `envconfig:"DB_NAME" default:"coolassistant"`
	SSLMode    string `envconfig:"DB_SSL_MODE" default:"disable"`
	SQLitePath string `envconfig:"DB_SQLITE_PATH" default:"coolassistant.db"`

	MaxOpenConns           int `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns           int `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetimeMinutes int `envconfig:"DB_CONN_MAX_LIFETIME_MINUTES" default:"30"`
}

func (c DatabaseConfig) GetDSN() string {
	if c.Driver == "sqlite" {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Cooldown policies: deferred keeps every submission and lets the cleanup job
// remove repeats, reject refuses a submission inside the cooldown window.
const (
	CooldownPolicyDeferred = "deferred"
	CooldownPolicyReject   = "reject"
)

// SurveyConfig holds the submission and deduplication settings
type SurveyConfig struct {
	CooldownHours          int    `envconfig:"SURVEY_COOLDOWN_HOURS" default:"24"`
	CooldownPolicy         string `envconfig:"SURVEY_COOLDOWN_POLICY" default:"deferred"`
	CleanupIntervalMinutes int    `envconfig:"SURVEY_CLEANUP_INTERVAL_MINUTES" default:"60"`
	DraftTTLMinutes        int    `envconfig:"SURVEY_DRAFT_TTL_MINUTES" default:"120"`
	HistoryLimit           int    `envconfig:"SURVEY_HISTORY_LIMIT" default:"200"`
}

type HeatmapConfig struct {
	RowLimit         int  `envconfig:"HEATMAP_ROW_LIMIT" default:"1000"`
	DailyAggregation bool `envconfig:"HEATMAP_DAILY_AGGREGATION" default:"true"`
}

// ForecastConfig configures the air-quality and temperature providers
type ForecastConfig struct {
	OpenMeteoBaseURL      string   `envconfig:"OPENMETEO_AIR_QUALITY_BASE_URL" default:"https://air-quality-api.open-meteo.com/v1"`
	OpenWeatherMapKey     string   `envconfig:"OPENWEATHERMAP_API_KEY"`
	OpenWeatherMapBaseURL string   `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	AirQualityOrder       []string `envconfig:"AIR_QUALITY_PROVIDER_ORDER" default:"openmeteo,openweathermap"`
	DefaultCity           string   `envconfig:"FORECAST_DEFAULT_CITY" default:"Erbil,IQ"`
	DefaultLatitude       float64  `envconfig:"FORECAST_DEFAULT_LAT" default:"36.206"`
	DefaultLongitude      float64  `envconfig:"FORECAST_DEFAULT_LON" default:"44.009"`
	CacheTTLMinutes       int      `envconfig:"FORECAST_CACHE_TTL_MINUTES" default:"10"`
	HTTPTimeoutSeconds    int      `envconfig:"FORECAST_HTTP_TIMEOUT_SECONDS" default:"8"`
	EnableLogging         bool     `envconfig:"FORECAST_ENABLE_LOGGING" default:"true"`
	LogFilePath           string   `envconfig:"FORECAST_LOG_FILE_PATH" default:""`
}

type PlaceConfig struct {
	NominatimBaseURL string `envconfig:"NOMINATIM_BASE_URL" default:"https://nominatim.openstreetmap.org"`
	UserAgent        string `envconfig:"NOMINATIM_USER_AGENT" default:"cool-assistant/1.0"`
	CacheTTLHours    int    `envconfig:"PLACE_CACHE_TTL_HOURS" default:"24"`
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type  CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	Redis RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

// AuthConfig names the header the authenticating proxy fills with the user e-mail
type AuthConfig struct {
	UserHeader string `envconfig:"AUTH_USER_HEADER" default:"X-Auth-Request-Email"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	validators := []func() error{
		c.Server.Validate,
		c.Database.Validate,
		c.Survey.Validate,
		c.Heatmap.Validate,
		c.Forecast.Validate,
		c.Place.Validate,
		c.Cache.Validate,
		c.Auth.Validate,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case "sqlite":
		if d.SQLitePath == "" {
			return errors.NewConfigurationError("DB_SQLITE_PATH cannot be empty when DB_DRIVER=sqlite", nil)
		}
	case "postgres":
		if d.Host == "" {
			return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
		}
		if d.Port < 1 || d.Port > maxPortNumber {
			return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
		}
		if d.User == "" {
			return errors.NewConfigurationError("DB_USER cannot be empty", nil)
		}
		if d.Name == "" {
			return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
		}
		if err := d.ValidateSSLMode(); err != nil {
			return err
		}
	default:
		return errors.NewConfigurationError("DB_DRIVER must be one of: postgres, sqlite", nil)
	}

	if d.MaxOpenConns < 1 {
		return errors.NewConfigurationError("DB_MAX_OPEN_CONNS must be at least 1", nil)
	}
	if d.MaxIdleConns < 0 || d.MaxIdleConns > d.MaxOpenConns {
		return errors.NewConfigurationError("DB_MAX_IDLE_CONNS must be between 0 and DB_MAX_OPEN_CONNS", nil)
	}
	if d.ConnMaxLifetimeMinutes < 0 {
		return errors.NewConfigurationError("DB_CONN_MAX_LIFETIME_MINUTES cannot be negative", nil)
	}
	return nil
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (s *SurveyConfig) Validate() error {
	if s.CooldownHours < 1 || s.CooldownHours > maxCooldownHours {
		return errors.NewConfigurationError("SURVEY_COOLDOWN_HOURS must be between 1 and 168", nil)
	}
	if s.CooldownPolicy != CooldownPolicyDeferred && s.CooldownPolicy != CooldownPolicyReject {
		return errors.NewConfigurationError("SURVEY_COOLDOWN_POLICY must be one of: deferred, reject", nil)
	}
	if s.CleanupIntervalMinutes < 1 || s.CleanupIntervalMinutes > maxCleanupIntervalMins {
		return errors.NewConfigurationError("SURVEY_CLEANUP_INTERVAL_MINUTES must be between 1 and 10080", nil)
	}
	if s.DraftTTLMinutes < 1 || s.DraftTTLMinutes > maxDraftTTLMinutes {
		return errors.NewConfigurationError("SURVEY_DRAFT_TTL_MINUTES must be between 1 and 1440", nil)
	}
	if s.HistoryLimit < 1 {
		s.HistoryLimit = defaultHistoryRowsLimit
	}
	return nil
}

func (h *HeatmapConfig) Validate() error {
	if h.RowLimit < 1 || h.RowLimit > maxHeatmapRows {
		return errors.NewConfigurationError("HEATMAP_ROW_LIMIT must be between 1 and 2000", nil)
	}
	return nil
}

func (f *ForecastConfig) Validate() error {
	if f.OpenMeteoBaseURL != "" && !isHTTPURL(f.OpenMeteoBaseURL) {
		return errors.NewConfigurationError("OPENMETEO_AIR_QUALITY_BASE_URL must start with http:// or https://", nil)
	}
	if f.OpenWeatherMapKey != "" && !isHTTPURL(f.OpenWeatherMapBaseURL) {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_BASE_URL must start with http:// or https://", nil)
	}
	if f.CacheTTLMinutes < 1 || f.CacheTTLMinutes > maxForecastTTLMinutes {
		return errors.NewConfigurationError("FORECAST_CACHE_TTL_MINUTES must be between 1 and 60", nil)
	}
	if f.HTTPTimeoutSeconds < 1 || f.HTTPTimeoutSeconds > maxForecastTimeout {
		return errors.NewConfigurationError("FORECAST_HTTP_TIMEOUT_SECONDS must be between 1 and 30", nil)
	}
	if strings.TrimSpace(f.DefaultCity) == "" {
		return errors.NewConfigurationError("FORECAST_DEFAULT_CITY cannot be empty", nil)
	}

	validProviders := map[string]bool{
		"openmeteo":      true,
		"openweathermap": true,
	}
	for _, provider := range f.AirQualityOrder {
		if !validProviders[provider] {
			return errors.NewConfigurationError(fmt.Sprintf("invalid air quality provider in order: %s", provider), nil)
		}
	}
	return nil
}

func (p *PlaceConfig) Validate() error {
	if !isHTTPURL(p.NominatimBaseURL) {
		return errors.NewConfigurationError("NOMINATIM_BASE_URL must start with http:// or https://", nil)
	}
	if p.UserAgent == "" {
		return errors.NewConfigurationError("NOMINATIM_USER_AGENT cannot be empty", nil)
	}
	if p.CacheTTLHours < 1 {
		return errors.NewConfigurationError("PLACE_CACHE_TTL_HOURS must be at least 1", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (a *AuthConfig) Validate() error {
	if strings.TrimSpace(a.UserHeader) == "" {
		return errors.NewConfigurationError("AUTH_USER_HEADER cannot be empty", nil)
	}
	return nil
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
