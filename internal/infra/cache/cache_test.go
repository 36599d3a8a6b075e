package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestRouteCache_Invalidate(t *testing.T) {
	mr, client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, mr.Set(routeKey("/admin/orders"), "<rendered>"))

	sub := client.Subscribe(ctx, InvalidationChannel)
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	routes := NewRouteCache(client, 10*time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err = routes.Invalidate(ctx, "/admin/orders/", "admin/orders", " ", "/account/orders")
	require.NoError(t, err)

	assert.False(t, mr.Exists(routeKey("/admin/orders")))
	assert.True(t, mr.Exists(staleKey("/admin/orders")))
	assert.True(t, mr.Exists(staleKey("/account/orders")))
	assert.Equal(t, 10*time.Minute, mr.TTL(staleKey("/admin/orders")))

	first, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)
	second, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"/admin/orders", "/account/orders"}, []string{first.Payload, second.Payload})
}

func TestRouteCache_InvalidateNothing(t *testing.T) {
	_, client := newTestClient(t)
	routes := NewRouteCache(client, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.NoError(t, routes.Invalidate(context.Background()))
	assert.NoError(t, routes.Invalidate(context.Background(), "", "  "))
}

func TestNormalizePaths(t *testing.T) {
	got := normalizePaths([]string{"/", "orders/", "/orders", "/orders/42/", ""})

	assert.Equal(t, []string{"/", "/orders", "/orders/42"}, got)
}

type cachedStats struct {
	Revenue string `json:"revenue"`
	Count   int    `json:"count"`
}

func TestJSONCache_RoundTrip(t *testing.T) {
	mr, client := newTestClient(t)
	cache := NewJSONCache(client)
	ctx := context.Background()

	var miss cachedStats
	found, err := cache.GetJSON(ctx, "dashboard:monthly", &miss)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.SetJSON(ctx, "dashboard:monthly", cachedStats{Revenue: "35", Count: 2}, time.Minute))
	assert.True(t, mr.Exists("portal:dashboard:monthly"))

	var hit cachedStats
	found, err = cache.GetJSON(ctx, "dashboard:monthly", &hit)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, cachedStats{Revenue: "35", Count: 2}, hit)

	mr.FastForward(2 * time.Minute)
	found, err = cache.GetJSON(ctx, "dashboard:monthly", &hit)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestJSONCache_Delete(t *testing.T) {
	mr, client := newTestClient(t)
	cache := NewJSONCache(client)
	ctx := context.Background()

	require.NoError(t, cache.SetJSON(ctx, "a", 1, 0))
	require.NoError(t, cache.SetJSON(ctx, "b", 2, 0))
	require.NoError(t, cache.Delete(ctx, "a", "b"))
	require.NoError(t, cache.Delete(ctx))

	assert.False(t, mr.Exists("portal:a"))
	assert.False(t, mr.Exists("portal:b"))
}

func TestJSONCache_CorruptValue(t *testing.T) {
	mr, client := newTestClient(t)
	cache := NewJSONCache(client)
	require.NoError(t, mr.Set("portal:broken", "{not json"))

	var dest cachedStats
	found, err := cache.GetJSON(context.Background(), "broken", &dest)

	assert.Error(t, err)
	assert.False(t, found)
}

func TestNoopCaches(t *testing.T) {
	routes := NewRouteCacheFromConfig(nil, nil, nil)
	values := NewCacheFromConfig(nil)

	assert.NoError(t, routes.Invalidate(context.Background(), "/admin"))
	found, err := values.GetJSON(context.Background(), "k", new(int))
	assert.NoError(t, err)
	assert.False(t, found)
}
