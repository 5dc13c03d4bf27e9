package external

import (
	"sync"
	"time"

	"coolassistant.app/internal/ports"
)

// cacheCounters implements ports.CacheMetrics for the cache providers
type cacheCounters struct {
	mu         sync.RWMutex
	hits       int64
	misses     int64
	operations int64
	opTime     time.Duration
}

func (c *cacheCounters) GetStats() ports.CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.hits + c.misses
	hitRatio := float64(0)
	if total > 0 {
		hitRatio = float64(c.hits) / float64(total)
	}
	var avg time.Duration
	if c.operations > 0 {
		avg = c.opTime / time.Duration(c.operations)
	}

	return ports.CacheStats{
		Hits:             c.hits,
		Misses:           c.misses,
		TotalOps:         total,
		HitRatio:         hitRatio,
		Operations:       c.operations,
		AvgOperationTime: avg,
		LastUpdated:      time.Now(),
	}
}

func (c *cacheCounters) RecordHit() {
	c.mu.Lock()
	c.hits++
	c.mu.Unlock()
}

func (c *cacheCounters) RecordMiss() {
	c.mu.Lock()
	c.misses++
	c.mu.Unlock()
}

// RecordOperation accumulates the latency of a backend round trip
func (c *cacheCounters) RecordOperation(_ string, duration time.Duration) {
	c.mu.Lock()
	c.operations++
	c.opTime += duration
	c.mu.Unlock()
}

func (c *cacheCounters) reset() {
	c.mu.Lock()
	c.hits, c.misses, c.operations, c.opTime = 0, 0, 0, 0
	c.mu.Unlock()
}
