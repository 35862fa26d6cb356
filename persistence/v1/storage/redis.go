package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Redis stores blobs as plain redis strings. Entries never expire: this is
// durable note data, not a cache.
type Redis struct {
	client           *redis.Client
	operationTimeout time.Duration
}

func NewRedis(client *redis.Client, operationTimeout time.Duration) *Redis {
	return &Redis{
		client:           client,
		operationTimeout: operationTimeout,
	}
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	opCtx, opCancel := context.WithTimeout(ctx, r.operationTimeout)
	defer opCancel()

	value, err := r.client.Get(opCtx, key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return value, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	opCtx, opCancel := context.WithTimeout(ctx, r.operationTimeout)
	defer opCancel()

	if err := r.client.Set(opCtx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}
