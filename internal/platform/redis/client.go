// Copyright (c) 2026 Planora. All rights reserved.
// Author: dev@planora.app

/*
Package redis provides a managed client for volatile data storage.

It is used to persist the last good entity snapshots with a TTL so that a
restarted instance can serve reads while its first remote fetch is still in
flight.

Core Responsibilities:

  - Volatility: Handles data with TTL (Time-To-Live).
  - Speed: Low-latency access compared to a remote service round-trip.
  - Safety: Manages connection pooling and retry logic automatically.
*/
package redis

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/planora/api/internal/platform/constants"
)

// Opiniated default timeouts for Redis operations.
const (
	dialTimeout  = 3 * time.Second
	readTimeout  = 2 * time.Second
	writeTimeout = 2 * time.Second
	pingTimeout  = 2 * time.Second
)

// NewClient parses a Redis URL and returns a ready-to-use client.
//
// # Parameters
//   - context: Context for the initial ping.
//   - redisURL: Redis connection URL.
//   - logger: Structured logger for connection events.
func NewClient(context stdctx.Context, redisURL string, logger *slog.Logger) (*redis.Client, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
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
		return fmt.Errorf("redis: ping failed: %w", err)
	}

	return nil
}

// # Snapshot Cache

// SnapshotCache persists collection snapshots under a TTL so that restarts
// can warm-start from the last good data. It implements [snapshot.Cache].
type SnapshotCache struct {
	client *redis.Client
}

// NewSnapshotCache wraps a Redis client as a snapshot cache.
func NewSnapshotCache(client *redis.Client) *SnapshotCache {
	return &SnapshotCache{client: client}
}

// Load returns the persisted snapshot payload, or (nil, nil) on a miss.
func (c *SnapshotCache) Load(ctx stdctx.Context, kind string) ([]byte, error) {
	payload, err := c.client.Get(ctx, constants.RedisPrefixSnapshot+kind).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis: snapshot load failed: %w", err)
	}
	return payload, nil
}

// Store persists the snapshot payload with the standard TTL.
func (c *SnapshotCache) Store(ctx stdctx.Context, kind string, payload []byte) error {
	if err := c.client.Set(ctx, constants.RedisPrefixSnapshot+kind, payload, constants.SnapshotCacheTTL).Err(); err != nil {
		return fmt.Errorf("redis: snapshot store failed: %w", err)
	}
	return nil
}
