package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"inkslot/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "avail"

// AvailabilityCache keeps serialized availability responses in Redis. Every
// artist has a version counter; entries are keyed by the current version, so
// bumping it orphans all older entries until their TTL runs out.
type AvailabilityCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewAvailabilityCache(rdb redis.Cmdable, cfg config.RedisConfig) *AvailabilityCache {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &AvailabilityCache{rdb: rdb, ttl: ttl}
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func versionKey(artistID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:ver", keyPrefix, artistID)
}

func entryKey(artistID uuid.UUID, version int64, key string) string {
	return fmt.Sprintf("%s:%s:v%d:%s", keyPrefix, artistID, version, key)
}

func (c *AvailabilityCache) version(ctx context.Context, artistID uuid.UUID) (int64, error) {
	raw, err := c.rdb.Get(ctx, versionKey(artistID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(raw, 10, 64)
}

func (c *AvailabilityCache) Get(ctx context.Context, artistID uuid.UUID, key string) ([]byte, int64, bool, error) {
	v, err := c.version(ctx, artistID)
	if err != nil {
		return nil, 0, false, err
	}
	raw, err := c.rdb.Get(ctx, entryKey(artistID, v, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, v, false, nil
	}
	if err != nil {
		return nil, 0, false, err
	}
	return raw, v, true, nil
}

// Set writes under the version the caller read. It does not look the version
// up again: an Invalidate in between must orphan the entry.
func (c *AvailabilityCache) Set(ctx context.Context, artistID uuid.UUID, version int64, key string, value []byte) error {
	return c.rdb.Set(ctx, entryKey(artistID, version, key), value, c.ttl).Err()
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, artistID uuid.UUID) error {
	return c.rdb.Incr(ctx, versionKey(artistID)).Err()
}
