package service

import (
	"context"
	"time"
)

// RouteCache tracks cached presentation routes. Invalidating a path tells the
// presentation layer to rebuild it on the next request.
type RouteCache interface {
	Invalidate(ctx context.Context, paths ...string) error
}

// Cache is a small JSON value cache.
type Cache interface {
	// GetJSON decodes the cached value into dest. It reports false on a miss.
	GetJSON(ctx context.Context, key string, dest any) (bool, error)

	// SetJSON stores value for ttl
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error

	// Delete removes keys
	Delete(ctx context.Context, keys ...string) error
}
