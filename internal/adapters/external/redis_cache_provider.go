package external

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"coolassistant.app/internal/ports"
	"coolassistant.app/pkg/errors"
)

const (
	redisKeyPrefix = "coolassistant:"
	redisScanCount = 200
)

// RedisCacheProviderAdapter implements the CacheProvider port on Redis.
// Every key is stored under redisKeyPrefix so Clear leaves foreign keys alone.
type RedisCacheProviderAdapter struct {
	cacheCounters

	client *redis.Client
}

// NewRedisCacheProviderAdapter connects to Redis and verifies the connection
func NewRedisCacheProviderAdapter(cfg *ports.RedisConfig) (*RedisCacheProviderAdapter, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.DialTimeout)*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewExternalAPIError("failed to connect to Redis", err)
	}

	return &RedisCacheProviderAdapter{client: client}, nil
}

func (r *RedisCacheProviderAdapter) observe(op string, start time.Time) {
	r.RecordOperation(op, time.Since(start))
}

func (r *RedisCacheProviderAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}
	defer r.observe("get", time.Now())

	val, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err == redis.Nil {
		r.RecordMiss()
		return nil, errors.NewNotFoundError("cache miss")
	}
	if err != nil {
		return nil, errors.NewExternalAPIError("redis get failed", err)
	}

	r.RecordHit()
	return val, nil
}

func (r *RedisCacheProviderAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := validateSet(key, value, ttl); err != nil {
		return err
	}
	defer r.observe("set", time.Now())

	if err := r.client.Set(ctx, redisKeyPrefix+key, value, ttl).Err(); err != nil {
		return errors.NewExternalAPIError("redis set failed", err)
	}
	return nil
}

func (r *RedisCacheProviderAdapter) SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	if err := validateSet(key, value, ttl); err != nil {
		return false, err
	}
	defer r.observe("setnx", time.Now())

	ok, err := r.client.SetNX(ctx, redisKeyPrefix+key, value, ttl).Result()
	if err != nil {
		return false, errors.NewExternalAPIError("redis setnx failed", err)
	}
	return ok, nil
}

func (r *RedisCacheProviderAdapter) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	defer r.observe("delete", time.Now())

	if err := r.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return errors.NewExternalAPIError("redis delete failed", err)
	}
	return nil
}

func (r *RedisCacheProviderAdapter) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	count, err := r.client.Exists(ctx, redisKeyPrefix+key).Result()
	if err != nil {
		return false, errors.NewExternalAPIError("redis exists failed", err)
	}
	return count > 0, nil
}

// Clear deletes every key under the application prefix
func (r *RedisCacheProviderAdapter) Clear(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, redisKeyPrefix+"*", redisScanCount).Iterator()
	batch := make([]string, 0, redisScanCount)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == redisScanCount {
			if err := r.client.Del(ctx, batch...).Err(); err != nil {
				return errors.NewExternalAPIError("redis clear failed", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return errors.NewExternalAPIError("redis scan failed", err)
	}
	if len(batch) > 0 {
		if err := r.client.Del(ctx, batch...).Err(); err != nil {
			return errors.NewExternalAPIError("redis clear failed", err)
		}
	}

	r.reset()
	return nil
}

func (r *RedisCacheProviderAdapter) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewExternalAPIError("failed to close Redis connection", err)
	}
	return nil
}

// Ping checks if the Redis connection is alive
func (r *RedisCacheProviderAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewExternalAPIError("redis ping failed", err)
	}
	return nil
}
