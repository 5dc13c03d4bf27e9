package ports

import (
	"context"
	"time"
)

// CacheProvider defines the contract for caching operations
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// SetNX stores the value only when the key is absent and reports whether it did
	SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Clear(ctx context.Context) error
}

// CacheStats represents cache performance metrics
type CacheStats struct {
	Hits             int64         `json:"hits"`
	Misses           int64         `json:"misses"`
	TotalOps         int64         `json:"total_ops"`
	HitRatio         float64       `json:"hit_ratio"`
	Operations       int64         `json:"operations"`
	AvgOperationTime time.Duration `json:"avg_operation_ns"`
	LastUpdated      time.Time     `json:"last_updated"`
}

// CacheMetrics defines the contract for cache performance tracking
type CacheMetrics interface {
	GetStats() CacheStats
	RecordHit()
	RecordMiss()
	RecordOperation(operation string, duration time.Duration)
}

// JSONCache stores typed values as JSON on top of a CacheProvider
type JSONCache interface {
	GetJSON(ctx context.Context, key string, target interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}
