package external

import (
	"fmt"

	"coolassistant.app/internal/ports"
	"coolassistant.app/pkg/errors"
)

type CacheProviderFactory struct{}

func NewCacheProviderFactory() *CacheProviderFactory {
	return &CacheProviderFactory{}
}

// CachePair is a cache backend together with its hit/miss counters
type CachePair struct {
	Provider ports.CacheProvider
	Metrics  ports.CacheMetrics
}

func (f *CacheProviderFactory) CreateCacheProvider(cfg ports.CacheConfig) (*CachePair, error) {
	switch cfg.Type {
	case "memory":
		provider := NewMemoryCacheProvider()
		return &CachePair{Provider: provider, Metrics: provider}, nil
	case "redis":
		provider, err := NewRedisCacheProviderAdapter(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &CachePair{Provider: provider, Metrics: provider}, nil
	default:
		return nil, errors.NewConfigurationError(fmt.Sprintf("unsupported cache type: %q", cfg.Type), nil)
	}
}
