package ports

import (
	"context"
	"time"
)

// AirQualityData holds current pollutant readings; nil means the provider has no value
type AirQualityData struct {
	EuropeanAQI *float64
	PM25        *float64
	PM10        *float64
	NO2         *float64
	Provider    string
	ObservedAt  time.Time
}

// PollutionSample is one point of an hourly pollution forecast
type PollutionSample struct {
	Time time.Time
	PM10 float64
}

// TemperatureSample is one point of a 3-hourly temperature forecast
type TemperatureSample struct {
	Time    time.Time
	TempMax float64
}

// TemperatureForecast is a city forecast with the city's UTC offset
type TemperatureForecast struct {
	City           string
	TimezoneOffset int
	Samples        []TemperatureSample
}

// AirQualityProvider defines the contract for current air quality sources
type AirQualityProvider interface {
	GetCurrentAirQuality(ctx context.Context, lat, lon float64) (*AirQualityData, error)
	GetProviderName() string
}

// AirQualityProviderManager walks the configured air quality providers in order
type AirQualityProviderManager interface {
	GetAirQuality(ctx context.Context, lat, lon float64) (*AirQualityData, error)
	GetProviderInfo() map[string]interface{}
}

// ForecastProvider defines the contract for multi-day forecast sources
type ForecastProvider interface {
	GetPollutionForecast(ctx context.Context, lat, lon float64) ([]PollutionSample, error)
	GetTemperatureForecast(ctx context.Context, city string) (*TemperatureForecast, error)
	GetProviderName() string
}
