package cache

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"portal/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// InvalidationChannel carries invalidated paths to the presentation layer.
const InvalidationChannel = keyPrefix + "route-invalidations"

// routeCache marks presentation routes stale. Each invalidated path gets a
// stale marker that lives for one route TTL, its cached render is dropped and
// the path is announced on InvalidationChannel.
type routeCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRouteCache is the constructor for routeCache.
func NewRouteCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) service.RouteCache {
	return &routeCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Invalidate marks every path stale in one pipeline.
func (c *routeCache) Invalidate(ctx context.Context, paths ...string) error {
	normalized := normalizePaths(paths)
	if len(normalized) == 0 {
		return nil
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := c.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, path := range normalized {
			pipe.Del(ctx, routeKey(path))
			pipe.Set(ctx, staleKey(path), now, c.ttl)
			pipe.Publish(ctx, InvalidationChannel, path)
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to invalidate routes")
	}

	c.logger.DebugContext(ctx, "Routes invalidated", slog.Any("paths", normalized))

	return nil
}

func routeKey(path string) string {
	return keyPrefix + "route:" + path
}

func staleKey(path string) string {
	return keyPrefix + "route-stale:" + path
}

// normalizePaths trims, roots and de-duplicates paths while keeping their order.
func normalizePaths(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	normalized := make([]string, 0, len(paths))
	for _, path := range paths {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		if len(path) > 1 {
			path = strings.TrimRight(path, "/")
		}
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		normalized = append(normalized, path)
	}

	return normalized
}
