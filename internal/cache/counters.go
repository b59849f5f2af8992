package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CounterStore keeps rolling analytics counters (accepted/rejected per sport
// per day). Counters expire so the keyspace stays bounded.
type CounterStore interface {
	Incr(ctx context.Context, name string) (int64, error)
	Get(ctx context.Context, name string) (int64, error)
	Close() error
}

type redisCounterStore struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisCounterStore builds a counter store for the analytics worker.
func NewRedisCounterStore(addr, password string, db int, ttl time.Duration, prefix string) (CounterStore, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis addr is required")
	}
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	if prefix == "" {
		prefix = "analytics_count"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &redisCounterStore{client: client, ttl: ttl, prefix: prefix}, nil
}

func (c *redisCounterStore) key(name string) string {
	return fmt.Sprintf("%s:%s", c.prefix, name)
}

func (c *redisCounterStore) Incr(ctx context.Context, name string) (int64, error) {
	if c == nil || c.client == nil {
		return 0, nil
	}
	key := c.key(name)
	val, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if val == 1 {
		// First hit for this counter; bound its lifetime.
		if err := c.client.Expire(ctx, key, c.ttl).Err(); err != nil {
			return val, err
		}
	}
	return val, nil
}

func (c *redisCounterStore) Get(ctx context.Context, name string) (int64, error) {
	if c == nil || c.client == nil {
		return 0, nil
	}
	val, err := c.client.Get(ctx, c.key(name)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return val, err
}

func (c *redisCounterStore) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
