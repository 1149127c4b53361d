package bootstrap

import (
	"context"
	"log/slog"

	"inkslot/internal/infra/cache"
	"inkslot/internal/pkg/config"
	"inkslot/internal/usecase/shared"

	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewAvailabilityCache,
	),
)

// NewAvailabilityCache falls back to a no-op cache when REDIS_ADDR is unset.
func NewAvailabilityCache(lc fx.Lifecycle, cfg config.Config) shared.AvailabilityCache {
	if cfg.Redis.Addr == "" {
		slog.Info("availability cache disabled")
		return shared.NoopAvailabilityCache{}
	}

	rdb := cache.NewRedisClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				// Reads degrade to uncached; the cache is not required to serve.
				slog.Warn("redis not reachable at startup", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return cache.NewAvailabilityCache(rdb, cfg.Redis)
}
