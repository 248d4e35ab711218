// Package cache stores computed recommendation lists. A cache failure is
// logged and treated as a miss; it never fails the caller.
package cache

import (
	"context"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"track-recommender/internal/app/metrics"
	"track-recommender/internal/app/recommender"
)

// KeyPrefix namespaces every cache entry
const KeyPrefix = "recsys:recs:"

// RecommendationCache caches recommendation lists per seed and k
type RecommendationCache interface {
	Get(ctx context.Context, seedID string, k int) ([]recommender.Recommendation, bool)
	Set(ctx context.Context, seedID string, k int, recs []recommender.Recommendation)
	Invalidate(ctx context.Context) error
}

// Key returns the cache key of a recommendation list
func Key(seedID string, k int) string {
	return fmt.Sprintf("%s%s:%d", KeyPrefix, seedID, k)
}

// RedisCache is a RecommendationCache backed by redis
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisCache wraps an existing redis client
func NewRedisCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisCache{client: client, ttl: ttl, logger: logger}
}

// Dial connects to redis at addr and verifies the connection
func Dial(ctx context.Context, addr, password string, db int, ttl time.Duration, logger *zap.Logger) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", addr, err)
	}
	return NewRedisCache(client, ttl, logger), nil
}

func (c *RedisCache) Get(ctx context.Context, seedID string, k int) ([]recommender.Recommendation, bool) {
	data, err := c.client.Get(ctx, Key(seedID, k)).Bytes()
	if err == redis.Nil {
		metrics.CacheRequests.WithLabelValues("miss").Inc()
		return nil, false
	}
	if err != nil {
		metrics.CacheRequests.WithLabelValues("error").Inc()
		c.logger.Warn("recommendation cache read failed", zap.String("seed", seedID), zap.Error(err))
		return nil, false
	}

	var recs []recommender.Recommendation
	if err := json.Unmarshal(data, &recs); err != nil {
		metrics.CacheRequests.WithLabelValues("error").Inc()
		c.logger.Warn("corrupt recommendation cache entry", zap.String("seed", seedID), zap.Error(err))
		return nil, false
	}

	metrics.CacheRequests.WithLabelValues("hit").Inc()
	return recs, true
}

func (c *RedisCache) Set(ctx context.Context, seedID string, k int, recs []recommender.Recommendation) {
	data, err := json.Marshal(recs)
	if err != nil {
		c.logger.Warn("encode recommendation cache entry", zap.String("seed", seedID), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, Key(seedID, k), data, c.ttl).Err(); err != nil {
		c.logger.Warn("recommendation cache write failed", zap.String("seed", seedID), zap.Error(err))
	}
}

// Invalidate removes every cached list; each list depends on the whole catalog
func (c *RedisCache) Invalidate(ctx context.Context) error {
	var cursor uint64
	removed := 0
	for {
		keys, next, err := c.client.Scan(ctx, cursor, KeyPrefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("scan recommendation cache: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("delete recommendation cache keys: %w", err)
			}
			removed += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	c.logger.Debug("recommendation cache invalidated", zap.Int("keys", removed))
	return nil
}

// Close closes the redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// NoopCache never stores anything
type NoopCache struct{}

func (NoopCache) Get(context.Context, string, int) ([]recommender.Recommendation, bool) {
	return nil, false
}

func (NoopCache) Set(context.Context, string, int, []recommender.Recommendation) {}

func (NoopCache) Invalidate(context.Context) error { return nil }
