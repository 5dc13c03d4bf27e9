package external

import (
	"context"
	"encoding/json"
	"time"

	"coolassistant.app/internal/ports"
	"coolassistant.app/pkg/errors"
)

// JSONCacheAdapter stores typed values on top of a byte oriented CacheProvider
type JSONCacheAdapter struct {
	provider ports.CacheProvider
}

func NewJSONCacheAdapter(provider ports.CacheProvider) *JSONCacheAdapter {
	return &JSONCacheAdapter{provider: provider}
}

// GetJSON decodes the cached value into target. A missing key is a NotFound error.
func (a *JSONCacheAdapter) GetJSON(ctx context.Context, key string, target interface{}) error {
	raw, err := a.provider.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, target); err != nil {
		// a value that no longer decodes is treated as a miss and dropped
		_ = a.provider.Delete(ctx, key)
		return errors.NewNotFoundError("cached value could not be decoded")
	}
	return nil
}

func (a *JSONCacheAdapter) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.NewValidationError("cache value cannot be encoded: " + err.Error())
	}
	return a.provider.Set(ctx, key, raw, ttl)
}
