package external

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"coolassistant.app/pkg/errors"
)

// MemoryCacheProvider keeps cache entries in process. Expired entries are
// invisible to readers and dropped by Sweep.
type MemoryCacheProvider struct {
	cacheCounters

	clock   clockwork.Clock
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func NewMemoryCacheProvider() *MemoryCacheProvider {
	return NewMemoryCacheProviderWithClock(clockwork.NewRealClock())
}

func NewMemoryCacheProviderWithClock(clock clockwork.Clock) *MemoryCacheProvider {
	return &MemoryCacheProvider{
		clock:   clock,
		entries: make(map[string]memoryEntry),
	}
}

func (c *MemoryCacheProvider) lookup(key string) (memoryEntry, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || !c.clock.Now().Before(entry.expiresAt) {
		return memoryEntry{}, false
	}
	return entry, true
}

func (c *MemoryCacheProvider) Get(_ context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	entry, ok := c.lookup(key)
	if !ok {
		c.RecordMiss()
		return nil, errors.NewNotFoundError("cache miss")
	}

	c.RecordHit()
	out := make([]byte, len(entry.value))
	copy(out, entry.value)
	return out, nil
}

func (c *MemoryCacheProvider) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if err := validateSet(key, value, ttl); err != nil {
		return err
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	c.mu.Lock()
	c.entries[key] = memoryEntry{value: stored, expiresAt: c.clock.Now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

func (c *MemoryCacheProvider) SetNX(_ context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	if err := validateSet(key, value, ttl); err != nil {
		return false, err
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.clock.Now()
	if entry, ok := c.entries[key]; ok && now.Before(entry.expiresAt) {
		return false, nil
	}
	c.entries[key] = memoryEntry{value: stored, expiresAt: now.Add(ttl)}
	return true, nil
}

func (c *MemoryCacheProvider) Delete(_ context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

func (c *MemoryCacheProvider) Exists(_ context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}
	_, ok := c.lookup(key)
	return ok, nil
}

func (c *MemoryCacheProvider) Clear(_ context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]memoryEntry)
	c.mu.Unlock()
	c.reset()
	return nil
}

// Sweep removes expired entries and reports how many were dropped
func (c *MemoryCacheProvider) Sweep() int {
	now := c.clock.Now()
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, entry := range c.entries {
		if !now.Before(entry.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored entries, expired ones included
func (c *MemoryCacheProvider) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func validateSet(key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}
	return nil
}
