package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisHistoryKey = "training-roi:analyses"

// RedisStore keeps the analysis history in a capped Redis list so it
// survives restarts and can be shared between instances.
type RedisStore struct {
	client   *redis.Client
	key      string
	capacity int64
}

// NewRedisStore connects to the Redis instance at addr and retains at most
// capacity analyses.
func NewRedisStore(addr string, capacity int) *RedisStore {
	if capacity <= 0 {
		capacity = 1
	}
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisStore{
		client:   rdb,
		key:      redisHistoryKey,
		capacity: int64(capacity),
	}
}

// Save pushes the analysis onto the head of the history list and trims the
// list back to capacity.
func (r *RedisStore) Save(ctx context.Context, analysis Analysis) error {
	payload, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, r.key, payload)
	pipe.LTrim(ctx, r.key, 0, r.capacity-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store analysis: %w", err)
	}
	return nil
}

// Recent returns up to limit analyses, newest first.
func (r *RedisStore) Recent(ctx context.Context, limit int) ([]Analysis, error) {
	if limit <= 0 || int64(limit) > r.capacity {
		limit = int(r.capacity)
	}

	values, err := r.client.LRange(ctx, r.key, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis history: %w", err)
	}

	analyses := make([]Analysis, 0, len(values))
	for _, value := range values {
		var analysis Analysis
		if err := json.Unmarshal([]byte(value), &analysis); err != nil {
			return nil, fmt.Errorf("failed to decode analysis history entry: %w", err)
		}
		analyses = append(analyses, analysis)
	}
	return analyses, nil
}

// Ping verifies the Redis connection.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
