package sortedstorage

import (
	"context"
	"errors"
	"fmt"

	dmn "github.com/beka-birhanu/vinom-labyrinth/domain"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisLevelRanking keeps the longest-path levels in a Redis sorted set
// scored by exit path length.
type RedisLevelRanking struct {
	client *redis.Client
	locker *redsync.Redsync
	key    string
	size   int64
}

// NewRedisLevelRanking initializes a ranking stored under key that keeps at
// most size levels.
func NewRedisLevelRanking(client *redis.Client, key string, size int) (*RedisLevelRanking, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	if size <= 0 {
		return nil, fmt.Errorf("ranking size must be positive, got %d", size)
	}

	ranking := &RedisLevelRanking{
		client: client,
		key:    key,
		size:   int64(size),
	}
	pool := goredis.NewPool(client)
	ranking.locker = redsync.New(pool)
	return ranking, nil
}

// Add records a level and trims the set back to its size.
func (r *RedisLevelRanking) Add(ctx context.Context, id uuid.UUID, pathLength int) error {
	mutex := r.locker.NewMutex(r.key + ":trim_lock")
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	if err := r.client.ZAdd(ctx, r.key, redis.Z{Score: float64(pathLength), Member: id.String()}).Err(); err != nil {
		return err
	}

	// Ranks are ascending, so this drops everything below the top size.
	return r.client.ZRemRangeByRank(ctx, r.key, 0, -r.size-1).Err()
}

// Top returns up to n levels, longest exit path first.
func (r *RedisLevelRanking) Top(ctx context.Context, n int64) ([]dmn.RankedLevel, error) {
	if n <= 0 {
		return []dmn.RankedLevel{}, nil
	}

	entries, err := r.client.ZRevRangeWithScores(ctx, r.key, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	ranked := make([]dmn.RankedLevel, 0, len(entries))
	for _, e := range entries {
		member, _ := e.Member.(string)
		id, err := uuid.Parse(member)
		if err != nil {
			return nil, fmt.Errorf("ranking member %q: %w", member, err)
		}
		ranked = append(ranked, dmn.RankedLevel{LevelID: id, PathLength: int(e.Score)})
	}
	return ranked, nil
}

// Count returns the number of ranked levels.
func (r *RedisLevelRanking) Count(ctx context.Context) int64 {
	return r.client.ZCard(ctx, r.key).Val()
}
