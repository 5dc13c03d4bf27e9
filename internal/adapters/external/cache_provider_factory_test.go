package external

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coolassistant.app/internal/ports"
	"coolassistant.app/pkg/errors"
)

func TestCacheProviderFactory_CreateCacheProvider(t *testing.T) {
	factory := NewCacheProviderFactory()
	server := miniredis.RunT(t)

	tests := []struct {
		name        string
		config      ports.CacheConfig
		expectError bool
		assertType  func(t *testing.T, p ports.CacheProvider)
	}{
		{
			name:   "Memory",
			config: ports.CacheConfig{Type: "memory"},
			assertType: func(t *testing.T, p ports.CacheProvider) {
				assert.IsType(t, &MemoryCacheProvider{}, p)
			},
		},
		{
			name: "Redis",
			config: ports.CacheConfig{Type: "redis", Redis: ports.RedisConfig{
				Addr: server.Addr(), DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1,
			}},
			assertType: func(t *testing.T, p ports.CacheProvider) {
				assert.IsType(t, &RedisCacheProviderAdapter{}, p)
			},
		},
		{
			name:        "Unknown",
			config:      ports.CacheConfig{Type: "memcached"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := factory.CreateCacheProvider(tt.config)

			if tt.expectError {
				require.Error(t, err)
				assert.True(t, errors.IsConfigurationError(err))
				assert.Nil(t, pair)
				return
			}
			require.NoError(t, err)
			tt.assertType(t, pair.Provider)
			assert.NotNil(t, pair.Metrics)
		})
	}
}

func TestMemoryCacheProvider_Operations(t *testing.T) {
	clock := clockwork.NewFakeClock()
	provider := NewMemoryCacheProviderWithClock(clock)
	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, provider.Set(ctx, "k", []byte("v"), time.Minute))

		got, err := provider.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), got)
	})

	t.Run("ReturnedBytesAreACopy", func(t *testing.T) {
		require.NoError(t, provider.Set(ctx, "copy", []byte("abc"), time.Minute))
		got, err := provider.Get(ctx, "copy")
		require.NoError(t, err)
		got[0] = 'z'

		again, err := provider.Get(ctx, "copy")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), again)
	})

	t.Run("Miss", func(t *testing.T) {
		got, err := provider.Get(ctx, "absent")
		assert.Nil(t, got)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("DeleteAndExists", func(t *testing.T) {
		require.NoError(t, provider.Set(ctx, "gone", []byte("x"), time.Minute))
		ok, err := provider.Exists(ctx, "gone")
		require.NoError(t, err)
		assert.True(t, ok)

		require.NoError(t, provider.Delete(ctx, "gone"))
		ok, err = provider.Exists(ctx, "gone")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("ExpiryAndSweep", func(t *testing.T) {
		require.NoError(t, provider.Clear(ctx))
		require.NoError(t, provider.Set(ctx, "short", []byte("x"), time.Second))
		require.NoError(t, provider.Set(ctx, "long", []byte("y"), time.Hour))

		clock.Advance(time.Second)

		_, err := provider.Get(ctx, "short")
		assert.True(t, errors.IsNotFoundError(err))
		assert.Equal(t, 2, provider.Len())
		assert.Equal(t, 1, provider.Sweep())
		assert.Equal(t, 1, provider.Len())
	})
}

func TestMemoryCacheProvider_ValidationErrors(t *testing.T) {
	provider := NewMemoryCacheProvider()
	ctx := context.Background()

	tests := []struct {
		name      string
		operation func() error
	}{
		{"GetEmptyKey", func() error { _, err := provider.Get(ctx, ""); return err }},
		{"SetEmptyKey", func() error { return provider.Set(ctx, "", []byte("v"), time.Minute) }},
		{"SetNilValue", func() error { return provider.Set(ctx, "k", nil, time.Minute) }},
		{"SetZeroTTL", func() error { return provider.Set(ctx, "k", []byte("v"), 0) }},
		{"DeleteEmptyKey", func() error { return provider.Delete(ctx, "") }},
		{"ExistsEmptyKey", func() error { _, err := provider.Exists(ctx, ""); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.IsValidationError(tt.operation()))
		})
	}
}

func TestMemoryCacheProvider_Stats(t *testing.T) {
	provider := NewMemoryCacheProvider()
	ctx := context.Background()

	require.NoError(t, provider.Set(ctx, "k", []byte("v"), time.Minute))
	_, _ = provider.Get(ctx, "k")
	_, _ = provider.Get(ctx, "missing")
	_, _ = provider.Get(ctx, "k")
	provider.RecordOperation("get", 4*time.Millisecond)
	provider.RecordOperation("set", 2*time.Millisecond)

	stats := provider.GetStats()
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(3), stats.TotalOps)
	assert.InDelta(t, 2.0/3.0, stats.HitRatio, 1e-9)
	assert.Equal(t, int64(2), stats.Operations)
	assert.Equal(t, 3*time.Millisecond, stats.AvgOperationTime)

	require.NoError(t, provider.Clear(ctx))
	assert.Zero(t, provider.GetStats().TotalOps)

	var _ ports.CacheProvider = provider
	var _ ports.CacheMetrics = provider
}
