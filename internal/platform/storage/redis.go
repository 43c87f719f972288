// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

package storage

import (
	stdctx "context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Opiniated default timeouts for Redis operations.
const (
	dialTimeout  = 3 * time.Second
	readTimeout  = 2 * time.Second
	writeTimeout = 2 * time.Second
	pingTimeout  = 2 * time.Second
)

// Redis is an [Adapter] delegating to a Redis instance.
//
// GET/SET/DEL of string values maps one-to-one onto the adapter contract,
// which makes Redis the natural backend when two machines should see the
// same account collection.
type Redis struct {
	client *redis.Client
}

// NewRedis wraps an already-connected client.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Get returns the value stored under key, mapping redis.Nil to [ErrAbsent].
func (r *Redis) Get(context stdctx.Context, key string) (string, error) {
	value, err := r.client.Get(context, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrAbsent
		}
		return "", fmt.Errorf("storage_redis_get_failed: %w", err)
	}
	return value, nil
}

// Set stores value under key without expiration.
func (r *Redis) Set(context stdctx.Context, key string, value string) error {
	if err := r.client.Set(context, key, value, 0).Err(); err != nil {
		return fmt.Errorf("storage_redis_set_failed: %w", err)
	}
	return nil
}

// Remove deletes the value stored under key. Deleting a missing key succeeds.
func (r *Redis) Remove(context stdctx.Context, key string) error {
	if err := r.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("storage_redis_del_failed: %w", err)
	}
	return nil
}

// # Connection Management

// NewRedisClient parses a Redis URL and returns a ready-to-use client.
//
// # Parameters
//   - context: Context for the initial ping.
//   - redisURL: Redis connection URL.
//   - logger: Structured logger for connection events.
func NewRedisClient(context stdctx.Context, redisURL string, logger *slog.Logger) (*redis.Client, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("storage: invalid redis URL: %w", err)
	}

	// Pool configuration Tuning
	options.PoolSize = 10
	options.MinIdleConns = 2
	options.MaxIdleConns = 5

	options.DialTimeout = dialTimeout
	options.ReadTimeout = readTimeout
	options.WriteTimeout = writeTimeout

	client := redis.NewClient(options)

	// Validate connectivity immediately at startup.
	if err := Ping(context, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis client connected",
		slog.String("addr", options.Addr),
		slog.Int("pool_size", options.PoolSize),
	)

	return client, nil
}

// Ping verifies that the Redis client is healthy.
func Ping(context stdctx.Context, client *redis.Client) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("storage: redis ping failed: %w", err)
	}

	return nil
}
