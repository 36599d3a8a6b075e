// Package cache implements the route and value caches on Redis.
package cache

import (
	"context"
	"log/slog"

	"portal/config"
	"portal/internal/domain/lifecycle"
	"portal/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "portal:"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Redis client. It returns nil when redis.addr is unset, in
// which case the caches degrade to no-ops.
func New(params Params) (*redis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, caches disabled")

		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// NewRouteCacheFromConfig wires the route cache with the configured TTL.
func NewRouteCacheFromConfig(client *redis.Client, cfg *config.Config, logger *slog.Logger) service.RouteCache {
	if client == nil {
		return noopRouteCache{}
	}

	return NewRouteCache(client, cfg.Redis.RouteTTL, logger)
}

// NewCacheFromConfig wires the JSON cache.
func NewCacheFromConfig(client *redis.Client) service.Cache {
	if client == nil {
		return noopCache{}
	}

	return NewJSONCache(client)
}

type noopRouteCache struct{}

func (noopRouteCache) Invalidate(context.Context, ...string) error { return nil }
