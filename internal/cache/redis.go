package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "page:"

type redisCache struct {
	client *redis.Client
}

// NewRedis wraps an existing redis client as a PageCache. All entries live
// under the "page:" namespace so Clear does not touch unrelated keys.
func NewRedis(client *redis.Client) PageCache {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	return data, err
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, keyPrefix+key, value, ttl).Err()
}

func (c *redisCache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
