package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyNormalizesQuestion(t *testing.T) {
	assert.Equal(t, Key("What are your hours?"), Key("  what ARE   your hours? "))
	assert.NotEqual(t, Key("What are your hours?"), Key("What is your return policy?"))
}

func TestMemoryAnswerCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryAnswerCache(time.Minute)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_, ok, err := c.Get(ctx, "hours?")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "hours?", "9 to 6"))
	got, ok, err := c.Get(ctx, "HOURS?")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "9 to 6", got)

	now = now.Add(2 * time.Minute)
	_, ok, err = c.Get(ctx, "hours?")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisAnswerCacheReportsConnectionErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewRedisAnswerCache(client, time.Minute)
	_, ok, err := c.Get(context.Background(), "hours?")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, c.Set(context.Background(), "hours?", "answer"))
}
