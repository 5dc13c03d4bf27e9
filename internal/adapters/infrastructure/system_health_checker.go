package infrastructure

import (
	"context"
	"time"

	"coolassistant.app/internal/ports"
)

const healthCheckKey = "health:check"

// CacheHealthChecker writes and reads back a check key
type CacheHealthChecker struct {
	cache   ports.CacheProvider
	backend string
}

func NewCacheHealthChecker(cache ports.CacheProvider, backend string) *CacheHealthChecker {
	return &CacheHealthChecker{cache: cache, backend: backend}
}

func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Details:   map[string]interface{}{"backend": c.backend},
	}
	if c.cache == nil {
		status.Status = statusUnhealthy
		status.Error = "cache is not configured"
		return status
	}

	if err := c.cache.Set(ctx, healthCheckKey, []byte("ok"), 30*time.Second); err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
		return status
	}
	if _, err := c.cache.Get(ctx, healthCheckKey); err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
		return status
	}

	status.Status = statusHealthy
	return status
}

// ProvidersHealthChecker reports the configured provider chain without
// calling the remote APIs
type ProvidersHealthChecker struct {
	airQuality ports.AirQualityProviderManager
	forecasts  ports.ForecastProvider
}

func NewProvidersHealthChecker(airQuality ports.AirQualityProviderManager, forecasts ports.ForecastProvider) *ProvidersHealthChecker {
	return &ProvidersHealthChecker{airQuality: airQuality, forecasts: forecasts}
}

func (p *ProvidersHealthChecker) Check(_ context.Context) ports.HealthStatus {
	status := ports.HealthStatus{Component: "providers", Status: statusHealthy, Details: map[string]interface{}{}}

	if p.forecasts != nil {
		status.Details["forecast"] = p.forecasts.GetProviderName()
	}
	if p.airQuality == nil {
		status.Status = statusDegraded
		status.Error = "air quality providers are not configured"
		return status
	}

	info := p.airQuality.GetProviderInfo()
	status.Details["air_quality"] = info
	if total, ok := info["total_providers"].(int); ok && total == 0 {
		status.Status = statusDegraded
		status.Error = "no air quality providers available"
	}
	return status
}

// SystemHealthChecker runs every registered checker
type SystemHealthChecker struct {
	checkers []ports.HealthChecker
	timeout  time.Duration
}

func NewSystemHealthChecker(timeout time.Duration, checkers ...ports.HealthChecker) *SystemHealthChecker {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &SystemHealthChecker{checkers: checkers, timeout: timeout}
}

// CheckAll returns the status of every component keyed by component name
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	results := make(map[string]ports.HealthStatus, len(s.checkers))
	for _, checker := range s.checkers {
		if checker == nil {
			continue
		}
		status := checker.Check(ctx)
		results[status.Component] = status
	}
	return results
}
