package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = time.Hour

// Redis caches generated summaries so repeated slides skip the outbound call.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis cache
func NewRedis(redisURL string) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	// Test connection
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &Redis{client: client, ttl: defaultTTL}, nil
}

// Get returns the cached value for key, and whether it was present.
func (r *Redis) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores value under key with the cache TTL. Failures are ignored;
// the cache is best-effort.
func (r *Redis) Set(ctx context.Context, key, value string) {
	r.client.Set(ctx, key, value, r.ttl)
}

// Ping checks the Redis connection
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *Redis) Close() error {
	return r.client.Close()
}
