package external

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coolassistant.app/internal/ports"
	"coolassistant.app/pkg/errors"
)

func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *RedisCacheProviderAdapter) {
	t.Helper()

	server := miniredis.RunT(t)
	adapter, err := NewRedisCacheProviderAdapter(&ports.RedisConfig{
		Addr:         server.Addr(),
		DialTimeout:  2,
		ReadTimeout:  2,
		WriteTimeout: 2,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = adapter.Close() })

	return server, adapter
}

func TestNewRedisCacheProviderAdapter(t *testing.T) {
	t.Run("NilConfig", func(t *testing.T) {
		adapter, err := NewRedisCacheProviderAdapter(nil)
		assert.Nil(t, adapter)
		assert.True(t, errors.IsConfigurationError(err))
	})

	t.Run("Unreachable", func(t *testing.T) {
		server := miniredis.RunT(t)
		addr := server.Addr()
		server.Close()

		adapter, err := NewRedisCacheProviderAdapter(&ports.RedisConfig{
			Addr: addr, DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1,
		})
		assert.Nil(t, adapter)
		assert.True(t, errors.IsExternalAPIError(err))
	})
}

func TestRedisCacheProviderAdapter_Operations(t *testing.T) {
	server, adapter := setupMockRedis(t)
	ctx := context.Background()

	t.Run("SetAndGetUsesPrefix", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "draft:abc", []byte(`{"id":"abc"}`), time.Minute))

		assert.True(t, server.Exists("coolassistant:draft:abc"))
		got, err := adapter.Get(ctx, "draft:abc")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"id":"abc"}`), got)
	})

	t.Run("Miss", func(t *testing.T) {
		_, err := adapter.Get(ctx, "absent")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("DeleteAndExists", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "k", []byte("v"), time.Minute))
		ok, err := adapter.Exists(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)

		require.NoError(t, adapter.Delete(ctx, "k"))
		ok, err = adapter.Exists(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("TTLExpiration", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "ttl", []byte("v"), 100*time.Millisecond))
		server.FastForward(150 * time.Millisecond)

		_, err := adapter.Get(ctx, "ttl")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("ClearKeepsForeignKeys", func(t *testing.T) {
		require.NoError(t, server.Set("other-app:key", "keep"))
		require.NoError(t, adapter.Set(ctx, "a", []byte("1"), time.Minute))
		require.NoError(t, adapter.Set(ctx, "b", []byte("2"), time.Minute))

		require.NoError(t, adapter.Clear(ctx))

		assert.False(t, server.Exists("coolassistant:a"))
		assert.False(t, server.Exists("coolassistant:b"))
		assert.True(t, server.Exists("other-app:key"))
		assert.Zero(t, adapter.GetStats().TotalOps)
	})

	t.Run("SetNXOnlyWhenAbsent", func(t *testing.T) {
		ok, err := adapter.SetNX(ctx, "draft-lock:abc", []byte("1"), time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = adapter.SetNX(ctx, "draft-lock:abc", []byte("1"), time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.True(t, server.Exists("coolassistant:draft-lock:abc"))

		server.FastForward(2 * time.Minute)
		ok, err = adapter.SetNX(ctx, "draft-lock:abc", []byte("1"), time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("BinaryData", func(t *testing.T) {
		data := []byte{0x00, 0x01, 0xFF, 0x00}
		require.NoError(t, adapter.Set(ctx, "bin", data, time.Minute))
		got, err := adapter.Get(ctx, "bin")
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})
}

func TestRedisCacheProviderAdapter_ValidationErrors(t *testing.T) {
	_, adapter := setupMockRedis(t)
	ctx := context.Background()

	assert.True(t, errors.IsValidationError(adapter.Set(ctx, "", []byte("v"), time.Minute)))
	assert.True(t, errors.IsValidationError(adapter.Set(ctx, "k", nil, time.Minute)))
	assert.True(t, errors.IsValidationError(adapter.Set(ctx, "k", []byte("v"), -time.Minute)))
	assert.True(t, errors.IsValidationError(adapter.Delete(ctx, "")))
	_, err := adapter.Get(ctx, "")
	assert.True(t, errors.IsValidationError(err))
	_, err = adapter.Exists(ctx, "")
	assert.True(t, errors.IsValidationError(err))
}

func TestRedisCacheProviderAdapter_StatsAndPing(t *testing.T) {
	_, adapter := setupMockRedis(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "k", []byte("v"), time.Minute))
	_, _ = adapter.Get(ctx, "k")
	_, _ = adapter.Get(ctx, "missing")

	stats := adapter.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(3), stats.Operations)
	assert.NoError(t, adapter.Ping(ctx))
}

func TestRedisCacheProviderAdapter_CancelledContext(t *testing.T) {
	_, adapter := setupMockRedis(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := adapter.Get(ctx, "k")
	assert.Error(t, err)
	assert.Error(t, adapter.Set(ctx, "k", []byte("v"), time.Minute))
	assert.Error(t, adapter.Clear(ctx))
}
