package cache

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewRedisFromURL creates a redis client from a redis:// URL and verifies the
// connection. Returns nil when the URL cannot be parsed or the server is
// unreachable, so callers can degrade to running without a cache.
func NewRedisFromURL(ctx context.Context, redisURL string) *redis.Client {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, running without cache: %v", err)
		return nil
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis unreachable, running without cache: %v", err)
		return nil
	}
	return rdb
}

// Close closes the redis client, ignoring a nil client.
func Close(rdb *redis.Client) {
	if rdb != nil {
		_ = rdb.Close()
	}
}
