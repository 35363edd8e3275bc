package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/blackivy/onboarding/internal/config"
	"github.com/blackivy/onboarding/internal/survey"
	"github.com/blackivy/onboarding/internal/util/retry"
)

const redisKeyPrefix = "survey:response:"

type redisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Close() error
}

// Redis stores each response as a JSON string that expires after ttl.
type Redis struct {
	client redisClient
	ttl    time.Duration
}

// NewRedis connects to cfg.Addr and checks the connection.
func NewRedis(ctx context.Context, cfg config.RedisConfig) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return &Redis{client: rdb, ttl: cfg.TTL}, nil
}

// RedisKey returns the key a response is stored under.
func RedisKey(id string) string {
	return redisKeyPrefix + id
}

func (r *Redis) Submit(ctx context.Context, resp survey.Response) (string, error) {
	if err := validate(resp); err != nil {
		return "", err
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return "", retry.Fatal(fmt.Errorf("failed to marshal response: %w", err))
	}
	if err := r.client.Set(ctx, RedisKey(resp.ID), data, r.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store response: %w", err)
	}
	return resp.ID, nil
}

func (r *Redis) Name() string { return string(config.BackendRedis) }

func (r *Redis) Close(context.Context) error { return r.client.Close() }
