package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"matchsight/internal/analysis"
)

// ResultCache stores validated analyses by canonical match digest so repeat
// requests for the same fixture do not spend another model call. Entries are
// TTL-bound; this is a cost control, not persistence.
type ResultCache interface {
	Get(ctx context.Context, key string) (*analysis.Result, bool, error)
	Set(ctx context.Context, key string, res *analysis.Result) error
	Close() error
}

type redisResultCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisResultCache builds a cache keyed by the canonical match digest.
func NewRedisResultCache(addr, password string, db int, ttl time.Duration, prefix string) (ResultCache, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis addr is required")
	}
	if ttl <= 0 {
		ttl = 6 * time.Hour
	}
	if prefix == "" {
		prefix = "analysis_result"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &redisResultCache{client: client, ttl: ttl, prefix: prefix}, nil
}

func (c *redisResultCache) key(k string) string {
	return fmt.Sprintf("%s:%s", c.prefix, k)
}

func (c *redisResultCache) Get(ctx context.Context, key string) (*analysis.Result, bool, error) {
	if c == nil || c.client == nil {
		return nil, false, nil
	}
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var res analysis.Result
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, false, err
	}
	return &res, true, nil
}

func (c *redisResultCache) Set(ctx context.Context, key string, res *analysis.Result) error {
	if c == nil || c.client == nil || res == nil {
		return nil
	}
	payload, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(key), payload, c.ttl).Err()
}

func (c *redisResultCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
