package place

import (
	"context"
	"fmt"
	"math"

	"coolassistant.app/internal/ports"
	"coolassistant.app/pkg/errors"
	"coolassistant.app/pkg/validation"
)

const cacheName = "place"

// Label is the place name shown next to a picked point
type Label struct {
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lon"`
	DisplayName string  `json:"display_name"`
	City        string  `json:"city,omitempty"`
	Country     string  `json:"country,omitempty"`
}

type UseCase struct {
	geocoder ports.Geocoder
	cache    ports.JSONCache
	config   ports.ConfigProvider
	logger   ports.Logger
	metrics  ports.MetricsCollector
}

type UseCaseDependencies struct {
	Geocoder ports.Geocoder
	Cache    ports.JSONCache
	Config   ports.ConfigProvider
	Logger   ports.Logger
	Metrics  ports.MetricsCollector
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Geocoder == nil {
		return nil, errors.NewValidationError("geocoder is required")
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

	return &UseCase{
		geocoder: deps.Geocoder,
		cache:    deps.Cache,
		config:   deps.Config,
		logger:   deps.Logger,
		metrics:  metrics,
	}, nil
}

// round4 snaps a coordinate to about 11 m so nearby clicks share a cache entry
func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

// ReverseGeocode labels a coordinate
func (uc *UseCase) ReverseGeocode(ctx context.Context, lat, lon float64) (*Label, error) {
	if !validation.IsValidLatitude(lat) || !validation.IsValidLongitude(lon) {
		return nil, errors.NewValidationError("coordinates are out of range")
	}
	lat, lon = round4(lat), round4(lon)
	key := fmt.Sprintf("place:%.4f:%.4f", lat, lon)

	var label Label
	if err := uc.cache.GetJSON(ctx, key, &label); err == nil {
		uc.metrics.RecordCacheHit(ctx, cacheName)
		return &label, nil
	}
	uc.metrics.RecordCacheMiss(ctx, cacheName)

	place, err := uc.geocoder.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		uc.logger.Warn("Reverse geocoding failed",
			ports.F("lat", lat),
			ports.F("lon", lon),
			ports.F("error", err))
		return nil, fmt.Errorf("reverse geocode %.4f,%.4f: %w", lat, lon, err)
	}

	label = Label{
		Latitude:    lat,
		Longitude:   lon,
		DisplayName: place.DisplayName,
		City:        place.City,
		Country:     place.Country,
	}
	if err := uc.cache.SetJSON(ctx, key, &label, uc.config.GetPlaceConfig().CacheTTL); err != nil {
		uc.logger.Warn("Failed to cache place label", ports.F("key", key), ports.F("error", err))
	}
	return &label, nil
}
