// Package cache keeps serialized levels in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-labyrinth/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "level:"

// RedisLevelCache stores levels as JSON under "level:<id>" with a TTL.
type RedisLevelCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisLevelCache initializes a RedisLevelCache with the provided Redis client and TTL.
func NewRedisLevelCache(client *redis.Client, ttlSeconds int) (*RedisLevelCache, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	if ttlSeconds <= 0 {
		return nil, fmt.Errorf("cache ttl must be positive, got %d", ttlSeconds)
	}
	return &RedisLevelCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}, nil
}

// Get returns the cached level or dmn.ErrLevelNotFound.
func (c *RedisLevelCache) Get(ctx context.Context, id uuid.UUID) (*dmn.Level, error) {
	raw, err := c.client.Get(ctx, levelKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dmn.ErrLevelNotFound
		}
		return nil, err
	}

	var level dmn.Level
	if err := json.Unmarshal(raw, &level); err != nil {
		return nil, fmt.Errorf("decoding cached level %s: %w", id, err)
	}
	return &level, nil
}

// Set caches level, refreshing its TTL.
func (c *RedisLevelCache) Set(ctx context.Context, level *dmn.Level) error {
	raw, err := json.Marshal(level)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, levelKey(level.ID), raw, c.ttl).Err()
}

func levelKey(id uuid.UUID) string {
	return keyPrefix + id.String()
}
