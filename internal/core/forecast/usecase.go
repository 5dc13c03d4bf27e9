package forecast

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"

	"coolassistant.app/internal/ports"
	"coolassistant.app/pkg/errors"
)

const cacheName = "forecast"

type UseCase struct {
	airQuality ports.AirQualityProviderManager
	forecasts  ports.ForecastProvider
	cache      ports.JSONCache
	config     ports.ConfigProvider
	logger     ports.Logger
	metrics    ports.MetricsCollector
	clock      clockwork.Clock
}

type UseCaseDependencies struct {
	AirQuality ports.AirQualityProviderManager
	Forecasts  ports.ForecastProvider
	Cache      ports.JSONCache
	Config     ports.ConfigProvider
	Logger     ports.Logger
	Metrics    ports.MetricsCollector
	Clock      clockwork.Clock
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.AirQuality == nil {
		return nil, errors.NewValidationError("air quality provider is required")
	}
	if deps.Forecasts == nil {
		return nil, errors.NewValidationError("forecast provider is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	metrics := deps.Metrics
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	clock := deps.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &UseCase{
		airQuality: deps.AirQuality,
		forecasts:  deps.Forecasts,
		cache:      deps.Cache,
		config:     deps.Config,
		logger:     deps.Logger,
		metrics:    metrics,
		clock:      clock,
	}, nil
}

// DailyTip returns today's comfort advice
func (uc *UseCase) DailyTip() Tip {
	return TipFor(uc.clock.Now())
}

func (uc *UseCase) resolvePoint(req PointRequest) (Coordinates, error) {
	if req.Point == nil {
		cfg := uc.config.GetForecastConfig()
		return Coordinates{Latitude: cfg.DefaultLatitude, Longitude: cfg.DefaultLongitude}, nil
	}
	if err := req.Point.IsValid(); err != nil {
		return Coordinates{}, errors.NewValidationError(err.Error())
	}
	return *req.Point, nil
}

// AirQuality returns the current classified pollutant readings at a point
func (uc *UseCase) AirQuality(ctx context.Context, req PointRequest) (*AirQualityReport, error) {
	point, err := uc.resolvePoint(req)
	if err != nil {
		return nil, err
	}

	var report AirQualityReport
	key := point.cacheKey("air-quality")
	if uc.fromCache(ctx, key, &report) {
		return &report, nil
	}

	data, err := uc.airQuality.GetAirQuality(ctx, point.Latitude, point.Longitude)
	if err != nil {
		uc.logger.Error("Failed to get air quality",
			ports.F("lat", point.Latitude),
			ports.F("lon", point.Longitude),
			ports.F("error", err))
		return nil, fmt.Errorf("air quality at %.4f,%.4f: %w", point.Latitude, point.Longitude, err)
	}

	report = AirQualityReport{
		Location:   point,
		Provider:   data.Provider,
		ObservedAt: data.ObservedAt,
		Readings: []PollutantReading{
			{Key: "european_aqi", Name: "European AQI", Unit: "", Value: data.EuropeanAQI, Level: Classify(data.EuropeanAQI, AQIRanges)},
			{Key: "pm2_5", Name: "PM2.5", Unit: "µg/m³", Value: data.PM25, Level: Classify(data.PM25, PM25Ranges)},
			{Key: "pm10", Name: "PM10", Unit: "µg/m³", Value: data.PM10, Level: Classify(data.PM10, PM10Ranges)},
			{Key: "nitrogen_dioxide", Name: "NO₂", Unit: "µg/m³", Value: data.NO2, Level: Classify(data.NO2, NO2Ranges)},
		},
	}
	uc.toCache(ctx, key, &report)
	return &report, nil
}

// DustOutlook returns the PM10 daily maxima for the next days at a point
func (uc *UseCase) DustOutlook(ctx context.Context, req PointRequest) (*DustOutlook, error) {
	point, err := uc.resolvePoint(req)
	if err != nil {
		return nil, err
	}

	var outlook DustOutlook
	key := point.cacheKey("dust")
	if uc.fromCache(ctx, key, &outlook) {
		return &outlook, nil
	}

	samples, err := uc.forecasts.GetPollutionForecast(ctx, point.Latitude, point.Longitude)
	if err != nil {
		uc.logger.Error("Failed to get pollution forecast",
			ports.F("provider", uc.forecasts.GetProviderName()),
			ports.F("error", err))
		return nil, fmt.Errorf("dust outlook at %.4f,%.4f: %w", point.Latitude, point.Longitude, err)
	}

	outlook = DustOutlook{
		Location: point,
		Unit:     "µg/m³",
		Days:     DailyPM10Max(samples, dustOutlookDays),
	}
	uc.toCache(ctx, key, &outlook)
	return &outlook, nil
}

// HeatOutlook returns the daily temperature maxima for the next days in a city
func (uc *UseCase) HeatOutlook(ctx context.Context, req CityRequest) (*HeatOutlook, error) {
	city := normalizeCity(req.City)
	if city == "" {
		city = uc.config.GetForecastConfig().DefaultCity
	}

	var outlook HeatOutlook
	key := "forecast:heat:" + strings.ToLower(city)
	if uc.fromCache(ctx, key, &outlook) {
		return &outlook, nil
	}

	forecast, err := uc.forecasts.GetTemperatureForecast(ctx, city)
	if err != nil {
		uc.logger.Error("Failed to get temperature forecast",
			ports.F("city", city),
			ports.F("error", err))
		return nil, fmt.Errorf("heat outlook for %s: %w", city, err)
	}

	name := city
	if forecast.City != "" {
		name = forecast.City
	}
	outlook = HeatOutlook{
		City: name,
		Unit: "°C",
		Days: DailyTempMax(forecast, heatOutlookDays),
	}
	uc.toCache(ctx, key, &outlook)
	return &outlook, nil
}

func (uc *UseCase) fromCache(ctx context.Context, key string, target interface{}) bool {
	if err := uc.cache.GetJSON(ctx, key, target); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Warn("Forecast cache read failed", ports.F("key", key), ports.F("error", err))
		}
		uc.metrics.RecordCacheMiss(ctx, cacheName)
		return false
	}
	uc.metrics.RecordCacheHit(ctx, cacheName)
	uc.logger.Debug("Forecast served from cache", ports.F("key", key))
	return true
}

func (uc *UseCase) toCache(ctx context.Context, key string, value interface{}) {
	ttl := uc.config.GetForecastConfig().CacheTTL
	if err := uc.cache.SetJSON(ctx, key, value, ttl); err != nil {
		uc.logger.Warn("Failed to cache forecast", ports.F("key", key), ports.F("error", err))
	}
}
