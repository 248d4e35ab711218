package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"track-recommender/internal/app/model"
	"track-recommender/internal/app/recommender"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "recsys:recs:4uLU6hMCjMI75M1A2tKUQC:5", Key("4uLU6hMCjMI75M1A2tKUQC", 5))
}

func TestNoopCache(t *testing.T) {
	var c RecommendationCache = NoopCache{}
	ctx := context.Background()

	c.Set(ctx, "seed", 5, []recommender.Recommendation{{Score: 1}})
	recs, ok := c.Get(ctx, "seed", 5)

	assert.False(t, ok)
	assert.Nil(t, recs)
	assert.NoError(t, c.Invalidate(ctx))
}

// An unreachable server degrades to misses instead of errors
func TestRedisCacheUnavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	c := NewRedisCache(client, time.Minute, nil)
	defer c.Close()
	ctx := context.Background()

	assert.NotPanics(t, func() {
		c.Set(ctx, "seed", 3, []recommender.Recommendation{{Track: model.Track{ID: "a"}, Score: 0.5}})
	})
	recs, ok := c.Get(ctx, "seed", 3)
	assert.False(t, ok)
	assert.Nil(t, recs)
	assert.Error(t, c.Invalidate(ctx))
}

func TestDialFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := Dial(ctx, "127.0.0.1:1", "", 0, time.Minute, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "127.0.0.1:1")
}

func TestRedisCacheRoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	ctx := context.Background()
	c, err := Dial(ctx, addr, "", 15, time.Minute, nil)
	require.NoError(t, err)
	defer c.Close()
	require.NoError(t, c.Invalidate(ctx))

	recs := []recommender.Recommendation{
		{Track: model.Track{ID: "a", DurationMs: model.IntPtr(200000)}, Score: 0.98},
		{Track: model.Track{ID: "c"}, Score: 0.81},
	}
	c.Set(ctx, "seed", 2, recs)

	got, ok := c.Get(ctx, "seed", 2)
	require.True(t, ok)
	assert.Equal(t, "a", got[0].Track.ID)
	assert.Equal(t, 200000, *got[0].Track.DurationMs)
	assert.Equal(t, 0.81, got[1].Score)

	_, ok = c.Get(ctx, "seed", 3)
	assert.False(t, ok)

	require.NoError(t, c.Invalidate(ctx))
	_, ok = c.Get(ctx, "seed", 2)
	assert.False(t, ok)
}
