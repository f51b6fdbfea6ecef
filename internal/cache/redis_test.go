package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (PageCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedis(client), mr
}

func TestRedisCacheRoundTrip(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	_, err := c.Get(ctx, "feed")
	require.ErrorIs(t, err, ErrMiss)

	require.NoError(t, c.Set(ctx, "feed", []byte("body"), 20*time.Second))
	data, err := c.Get(ctx, "feed")
	require.NoError(t, err)
	require.Equal(t, []byte("body"), data)
}

func TestRedisCacheExpiry(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "feed", []byte("body"), 20*time.Second))
	mr.FastForward(21 * time.Second)

	_, err := c.Get(ctx, "feed")
	require.ErrorIs(t, err, ErrMiss)
}

func TestRedisCacheClearLeavesOtherKeys(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "feed", []byte("body"), time.Minute))
	require.NoError(t, mr.Set("session:abc", "keep"))

	require.NoError(t, c.Clear(ctx))

	_, err := c.Get(ctx, "feed")
	require.ErrorIs(t, err, ErrMiss)
	v, err := mr.Get("session:abc")
	require.NoError(t, err)
	require.Equal(t, "keep", v)
}
