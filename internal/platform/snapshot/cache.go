// Copyright (c) 2026 Planora. All rights reserved.
// Author: dev@planora.app

package snapshot

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Cache persists the last good snapshot of a collection so a restarted
// instance can serve reads before its first remote fetch completes.
//
// A nil Cache is valid everywhere and disables persistence.
type Cache interface {
	// Load returns the persisted payload for kind, or (nil, nil) on a miss.
	Load(ctx context.Context, kind string) ([]byte, error)
	// Store persists the payload for kind.
	Store(ctx context.Context, kind string, payload []byte) error
}

// Restore populates the collection from the cache if it holds a payload.
// It reports whether a snapshot was restored.
//
// Restore is best-effort: cache faults are logged and ignored so startup
// never depends on the cache being healthy.
func Restore[T any](ctx context.Context, cache Cache, c *Collection[T], log *slog.Logger) bool {
	if cache == nil {
		return false
	}

	payload, err := cache.Load(ctx, c.Kind())
	if err != nil {
		log.Warn("snapshot_cache_load_failed", slog.String("collection", c.Kind()), slog.Any("error", err))
		return false
	}
	if payload == nil {
		return false
	}

	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		log.Warn("snapshot_cache_corrupt", slog.String("collection", c.Kind()), slog.Any("error", err))
		return false
	}

	c.Replace(items)
	log.Info("snapshot_restored_from_cache", slog.String("collection", c.Kind()), slog.Int("count", len(items)))
	return true
}

// Persist writes the current snapshot to the cache. Best-effort: failures are
// logged, never propagated.
func Persist[T any](ctx context.Context, cache Cache, c *Collection[T], log *slog.Logger) {
	if cache == nil {
		return
	}

	payload, err := json.Marshal(c.All())
	if err != nil {
		log.Warn("snapshot_cache_encode_failed", slog.String("collection", c.Kind()), slog.Any("error", err))
		return
	}

	if err := cache.Store(ctx, c.Kind(), payload); err != nil {
		log.Warn("snapshot_cache_store_failed", slog.String("collection", c.Kind()), slog.Any("error", err))
	}
}
