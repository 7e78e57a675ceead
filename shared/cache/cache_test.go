package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cruisedesk/infras/otel/mocks"
	"cruisedesk/shared/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedCruise struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel()), server
}

func TestRedisCache_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	rc, server := newCache(t)

	require.NoError(t, rc.Save(ctx, "cruisedesk:cruise:a:get:1", cachedCruise{ID: "1", Name: "Aurora"}, 60))

	var got cachedCruise
	require.NoError(t, rc.Get(ctx, "cruisedesk:cruise:a:get:1", &got))
	assert.Equal(t, cachedCruise{ID: "1", Name: "Aurora"}, got)

	ttl := server.TTL("cruisedesk:cruise:a:get:1")
	assert.Equal(t, 60*time.Second, ttl)
}

func TestRedisCache_StringValues(t *testing.T) {
	ctx := context.Background()
	rc, _ := newCache(t)

	require.NoError(t, rc.Save(ctx, "plain", "value", 10))

	var got string
	require.NoError(t, rc.Get(ctx, "plain", &got))
	assert.Equal(t, "value", got)
}

func TestRedisCache_GetMissing(t *testing.T) {
	rc, _ := newCache(t)

	var got cachedCruise
	err := rc.Get(context.Background(), "missing", &got)

	require.Error(t, err)
	assert.True(t, errors.Is(err, cache.Nil))
}

func TestRedisCache_GetCorrupted(t *testing.T) {
	rc, server := newCache(t)
	require.NoError(t, server.Set("broken", "{not json"))

	var got cachedCruise
	err := rc.Get(context.Background(), "broken", &got)

	require.Error(t, err)
	assert.False(t, errors.Is(err, cache.Nil))
}

func TestRedisCache_Delete(t *testing.T) {
	ctx := context.Background()
	rc, server := newCache(t)

	require.NoError(t, rc.Save(ctx, "gone", 1, 10))
	require.NoError(t, rc.Delete(ctx, "gone"))

	assert.False(t, server.Exists("gone"))
}

func TestRedisCache_Clear(t *testing.T) {
	ctx := context.Background()
	rc, server := newCache(t)

	require.NoError(t, rc.Save(ctx, "cruisedesk:cabin:s1:list:a", 1, 10))
	require.NoError(t, rc.Save(ctx, "cruisedesk:cabin:s2:get:9", 1, 10))
	require.NoError(t, rc.Save(ctx, "cruisedesk:cruise:s1:list:a", 1, 10))

	require.NoError(t, rc.Clear(ctx, "cruisedesk:cabin:*"))

	assert.False(t, server.Exists("cruisedesk:cabin:s1:list:a"))
	assert.False(t, server.Exists("cruisedesk:cabin:s2:get:9"))
	assert.True(t, server.Exists("cruisedesk:cruise:s1:list:a"))
}

func TestRedisCache_ServerDown(t *testing.T) {
	rc, server := newCache(t)
	server.Close()

	err := rc.Save(context.Background(), "key", 1, 10)
	assert.Error(t, err)
}

func TestRedisCache_Increment(t *testing.T) {
	ctx := context.Background()
	rc, server := newCache(t)

	for want := int64(1); want <= 3; want++ {
		count, err := rc.Increment(ctx, "cruisedesk:limiter:1.2.3.4", 60)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}

	assert.Equal(t, 60*time.Second, server.TTL("cruisedesk:limiter:1.2.3.4"))

	server.FastForward(30 * time.Second)

	_, err := rc.Increment(ctx, "cruisedesk:limiter:1.2.3.4", 60)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, server.TTL("cruisedesk:limiter:1.2.3.4"))

	count, err := rc.Increment(ctx, "cruisedesk:generation:cabin", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Zero(t, server.TTL("cruisedesk:generation:cabin"))
}
