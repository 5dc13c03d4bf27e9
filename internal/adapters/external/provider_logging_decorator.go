package external

import (
	"context"
	"time"

	"coolassistant.app/internal/ports"
)

// AirQualityProviderLoggingDecorator logs every air quality request and its outcome
type AirQualityProviderLoggingDecorator struct {
	provider ports.AirQualityProvider
	logger   ports.Logger
}

func NewAirQualityProviderLoggingDecorator(provider ports.AirQualityProvider, logger ports.Logger) *AirQualityProviderLoggingDecorator {
	return &AirQualityProviderLoggingDecorator{provider: provider, logger: logger}
}

func (d *AirQualityProviderLoggingDecorator) GetCurrentAirQuality(ctx context.Context, lat, lon float64) (*ports.AirQualityData, error) {
	name := d.provider.GetProviderName()
	d.logger.Info("Air quality request started",
		ports.F("provider", name),
		ports.F("lat", lat),
		ports.F("lon", lon),
		ports.F("event", "request"))

	start := time.Now()
	data, err := d.provider.GetCurrentAirQuality(ctx, lat, lon)
	elapsed := time.Since(start).Milliseconds()

	if err != nil {
		d.logger.Error("Air quality request failed",
			ports.F("provider", name),
			ports.F("event", "error"),
			ports.F("duration_ms", elapsed),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Air quality request completed",
		ports.F("provider", name),
		ports.F("event", "response"),
		ports.F("duration_ms", elapsed),
		ports.F("pm10", valueOrNil(data.PM10)))
	return data, nil
}

// GetProviderName returns the wrapped name so metrics and cache labels stay stable
func (d *AirQualityProviderLoggingDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}

// ForecastProviderLoggingDecorator logs forecast requests and their outcome
type ForecastProviderLoggingDecorator struct {
	provider ports.ForecastProvider
	logger   ports.Logger
}

func NewForecastProviderLoggingDecorator(provider ports.ForecastProvider, logger ports.Logger) *ForecastProviderLoggingDecorator {
	return &ForecastProviderLoggingDecorator{provider: provider, logger: logger}
}

func (d *ForecastProviderLoggingDecorator) GetPollutionForecast(ctx context.Context, lat, lon float64) ([]ports.PollutionSample, error) {
	start := time.Now()
	samples, err := d.provider.GetPollutionForecast(ctx, lat, lon)
	d.logResult("pollution", start, err, ports.F("samples", len(samples)))
	return samples, err
}

func (d *ForecastProviderLoggingDecorator) GetTemperatureForecast(ctx context.Context, city string) (*ports.TemperatureForecast, error) {
	start := time.Now()
	forecast, err := d.provider.GetTemperatureForecast(ctx, city)
	samples := 0
	if forecast != nil {
		samples = len(forecast.Samples)
	}
	d.logResult("temperature", start, err, ports.F("samples", samples))
	return forecast, err
}

func (d *ForecastProviderLoggingDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}

func (d *ForecastProviderLoggingDecorator) logResult(kind string, start time.Time, err error, extra ports.Field) {
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		d.logger.Error("Forecast request failed",
			ports.F("provider", d.provider.GetProviderName()),
			ports.F("kind", kind),
			ports.F("duration_ms", elapsed),
			ports.F("error", err.Error()))
		return
	}
	d.logger.Info("Forecast request completed",
		ports.F("provider", d.provider.GetProviderName()),
		ports.F("kind", kind),
		ports.F("duration_ms", elapsed),
		extra)
}

func valueOrNil(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
