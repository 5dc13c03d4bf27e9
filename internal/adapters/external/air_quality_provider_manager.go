package external

import (
	"context"
	"fmt"

	"coolassistant.app/internal/ports"
	"coolassistant.app/pkg/errors"
)

// AirQualityProviderManagerAdapter tries each air quality provider in order
// until one answers.
type AirQualityProviderManagerAdapter struct {
	providers []ports.AirQualityProvider
	logger    ports.Logger
	metrics   ports.MetricsCollector
}

// AirQualityManagerConfig holds the available providers keyed by name and the
// order to try them in
type AirQualityManagerConfig struct {
	Providers     map[string]ports.AirQualityProvider
	ProviderOrder []string
	Logger        ports.Logger
	Metrics       ports.MetricsCollector
}

func NewAirQualityProviderManagerAdapter(cfg AirQualityManagerConfig) *AirQualityProviderManagerAdapter {
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	manager := &AirQualityProviderManagerAdapter{
		logger:  cfg.Logger,
		metrics: metrics,
	}

	seen := make(map[string]bool)
	for _, name := range cfg.ProviderOrder {
		provider, ok := cfg.Providers[name]
		if !ok || seen[name] {
			if !ok && manager.logger != nil {
				manager.logger.Warn("Unknown air quality provider in order", ports.F("provider", name))
			}
			continue
		}
		seen[name] = true
		manager.providers = append(manager.providers, provider)
	}

	return manager
}

func (m *AirQualityProviderManagerAdapter) GetAirQuality(ctx context.Context, lat, lon float64) (*ports.AirQualityData, error) {
	if len(m.providers) == 0 {
		return nil, errors.NewExternalAPIError("no air quality providers configured", nil)
	}

	var lastErr error
	for i, provider := range m.providers {
		name := provider.GetProviderName()
		if m.logger != nil {
			m.logger.Debug("Trying air quality provider", ports.F("provider", name), ports.F("attempt", i+1))
		}

		data, err := provider.GetCurrentAirQuality(ctx, lat, lon)
		m.metrics.RecordProviderCall(ctx, name, err == nil)
		if err == nil {
			return data, nil
		}

		lastErr = err
		if m.logger != nil {
			m.logger.Warn("Air quality provider failed, trying next",
				ports.F("provider", name),
				ports.F("error", err.Error()))
		}
		if ctx.Err() != nil {
			break
		}
	}

	if m.logger != nil {
		m.logger.Error("All air quality providers failed",
			ports.F("providers_tried", len(m.providers)),
			ports.F("last_error", lastErr.Error()))
	}
	return nil, fmt.Errorf("all air quality providers failed (tried %d): %w", len(m.providers), lastErr)
}

func (m *AirQualityProviderManagerAdapter) GetProviderInfo() map[string]interface{} {
	names := make([]string, len(m.providers))
	for i, provider := range m.providers {
		names[i] = provider.GetProviderName()
	}

	return map[string]interface{}{
		"total_providers":  len(m.providers),
		"provider_order":   names,
		"fallback_enabled": len(m.providers) > 1,
	}
}
