package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

// RedisKeyValueRepository is the session-scoped store: values expire after
// the configured TTL, so the color map lives as long as a browsing session.
type RedisKeyValueRepository struct {
	client *redis.Client
	prefix string
	exp    time.Duration // expiration refreshed on every write
}

// NewRedisKeyValueRepository creates a store whose keys live under prefix.
// A zero expiration keeps keys until they are overwritten.
func NewRedisKeyValueRepository(client *redis.Client, prefix string, expiration time.Duration) *RedisKeyValueRepository {
	return &RedisKeyValueRepository{
		client: client,
		prefix: prefix,
		exp:    expiration,
	}
}

func (r *RedisKeyValueRepository) key(key string) string {
	return fmt.Sprintf("%s:%s", r.prefix, key)
}

// Get fetches the value stored under key.
func (r *RedisKeyValueRepository) Get(ctx context.Context, key string) (string, error) {
	k := r.key(key)

	val, err := r.client.Get(ctx, k).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			logger.Log.Debugw("session key missing", "key", k)
			return "", fmt.Errorf("%s: %w", k, models.ErrNotFound)
		}
		logger.Log.Errorw("session get failed", "key", k, "error", err)
		return "", err
	}

	logger.Log.Debugw("session get", "key", k, "bytes", len(val))
	return val, nil
}

// Set stores value under key and refreshes its expiration.
func (r *RedisKeyValueRepository) Set(ctx context.Context, key, value string) error {
	k := r.key(key)
	err := r.client.Set(ctx, k, value, r.exp).Err()

	logger.Log.Debugw("session set",
		"key", k,
		"bytes", len(value),
		"ttl", r.exp,
		"error", err,
	)

	return err
}
