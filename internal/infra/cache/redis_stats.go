package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-booking/internal/domain/reporting"
)

const statsPrefix = "barber:stats:"

// RedisStatsCache stores dashboard snapshots as JSON with a TTL.
type RedisStatsCache struct {
	rdb *redis.Client
}

func NewRedisStatsCache(rdb *redis.Client) *RedisStatsCache {
	return &RedisStatsCache{rdb: rdb}
}

func (c *RedisStatsCache) GetStats(ctx context.Context, key string) (*reporting.Stats, bool, error) {
	raw, err := c.rdb.Get(ctx, statsPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var s reporting.Stats
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false, err
	}
	return &s, true, nil
}

func (c *RedisStatsCache) SetStats(ctx context.Context, key string, s reporting.Stats, ttl time.Duration) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, statsPrefix+key, raw, ttl).Err()
}

var _ reporting.Cache = (*RedisStatsCache)(nil)
