package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	topCachePrefix = "leaderboard:top:"
	topCacheTTL    = 30 * time.Second
)

func topCacheKey(limit int) string {
	return topCachePrefix + strconv.Itoa(limit)
}

// Cache holds ranked pages keyed by limit, each expiring on its own. Postgres stays the source of truth.
type Cache interface {
	Get(ctx context.Context, limit int) ([]Ranking, bool, error)
	Set(ctx context.Context, limit int, rankings []Ranking) error
	Invalidate(ctx context.Context) error
}

type redisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) Cache {
	if client == nil {
		return noopCache{}
	}
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, limit int) ([]Ranking, bool, error) {
	raw, err := c.client.Get(ctx, topCacheKey(limit)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var rankings []Ranking
	if err := json.Unmarshal(raw, &rankings); err != nil {
		return nil, false, err
	}
	return rankings, true, nil
}

func (c *redisCache) Set(ctx context.Context, limit int, rankings []Ranking) error {
	raw, err := json.Marshal(rankings)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, topCacheKey(limit), raw, topCacheTTL).Err()
}

func (c *redisCache) Invalidate(ctx context.Context) error {
	var keys []string
	iter := c.client.Scan(ctx, 0, topCachePrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

type noopCache struct{}

func (noopCache) Get(context.Context, int) ([]Ranking, bool, error) { return nil, false, nil }
func (noopCache) Set(context.Context, int, []Ranking) error         { return nil }
func (noopCache) Invalidate(context.Context) error                  { return nil }
