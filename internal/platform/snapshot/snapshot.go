// Copyright (c) 2026 Planora. All rights reserved.
// Author: dev@planora.app

/*
Package snapshot holds the last successfully fetched copy of each entity
collection from the hosted data service.

# Model

A [Collection] is replaced wholesale on every refetch — there is no partial
merging. Replacement is a single atomic pointer swap, so readers observe either
the previous snapshot or the new one, never a mix, and never block. At most one
refresh per collection is in flight at a time; while a refetch runs (or fails),
the last valid snapshot stays readable.

Lookups never fail loudly: a foreign key that does not resolve within the
current snapshot yields an explicit not-found result that callers render as
"Unknown".
*/
package snapshot

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// state is one immutable snapshot generation. It is never mutated after
// publication.
type state[T any] struct {
	items     []T
	index     map[string]int
	fetchedAt time.Time
}

// Collection is an atomically-replaced, read-only snapshot of one entity kind.
type Collection[T any] struct {
	kind string
	idOf func(T) string

	current atomic.Pointer[state[T]]

	// refreshMu serializes refreshes: one outstanding fetch per collection.
	refreshMu sync.Mutex
}

// NewCollection creates an empty collection for the given entity kind.
//
// idOf extracts the unique identifier used for [Collection.Get].
func NewCollection[T any](kind string, idOf func(T) string) *Collection[T] {
	c := &Collection[T]{kind: kind, idOf: idOf}
	c.current.Store(&state[T]{index: map[string]int{}})
	return c
}

// Kind returns the entity kind this collection holds (its wire table name).
func (c *Collection[T]) Kind() string { return c.kind }

// All returns the current snapshot in its original fetch order.
//
// The returned slice is shared with the snapshot and must not be mutated;
// filtering layers return subsequences built from copies.
func (c *Collection[T]) All() []T {
	return c.current.Load().items
}

// Get looks up a single record by id. The second result reports whether the
// id resolved within the current snapshot.
func (c *Collection[T]) Get(id string) (T, bool) {
	s := c.current.Load()
	if i, ok := s.index[id]; ok {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// Len returns the number of records in the current snapshot.
func (c *Collection[T]) Len() int {
	return len(c.current.Load().items)
}

// FetchedAt returns when the current snapshot was published; zero if the
// collection has never been populated.
func (c *Collection[T]) FetchedAt() time.Time {
	return c.current.Load().fetchedAt
}

// Ready reports whether the collection has been populated at least once.
func (c *Collection[T]) Ready() bool {
	return !c.current.Load().fetchedAt.IsZero()
}

// Replace atomically publishes a new snapshot built from items.
//
// Duplicate identifiers keep their first occurrence in the id index; the
// hosted service guarantees uniqueness, so a duplicate indicates upstream
// corruption rather than a case to support.
func (c *Collection[T]) Replace(items []T) {
	index := make(map[string]int, len(items))
	for i, item := range items {
		id := c.idOf(item)
		if _, exists := index[id]; !exists {
			index[id] = i
		}
	}

	c.current.Store(&state[T]{
		items:     items,
		index:     index,
		fetchedAt: time.Now(),
	})
}

// Refresh fetches a fresh copy of the collection and publishes it.
//
// Refreshes are serialized per collection. On fetch failure the previous
// snapshot remains in place and the error is returned to the caller.
func (c *Collection[T]) Refresh(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	items, err := fetch(ctx)
	if err != nil {
		return err
	}

	c.Replace(items)
	return nil
}

// # Relationship Resolution

// Ref is the explicit outcome of resolving one foreign key against a
// snapshot. A reference that does not resolve is a legitimate, displayable
// state — never an error to propagate.
type Ref[T any] struct {
	ID    string
	Value T
	Found bool
}

// Resolve looks up id in the collection and reports the outcome.
func Resolve[T any](c *Collection[T], id string) Ref[T] {
	value, found := c.Get(id)
	return Ref[T]{ID: id, Value: value, Found: found}
}

// ResolveMany resolves a sequence of ids, preserving input order with one
// result slot per id.
func ResolveMany[T any](c *Collection[T], ids []string) []Ref[T] {
	results := make([]Ref[T], len(ids))
	for i, id := range ids {
		results[i] = Resolve(c, id)
	}
	return results
}

// # Ingestion

// Ingest decodes wire rows into domain records, rejecting rows that violate
// domain invariants so they never corrupt the snapshot.
//
// Rejections are logged per row and counted; the remaining rows keep their
// original relative order.
func Ingest[R any, T any](log *slog.Logger, kind string, rows []R, decode func(R) (T, error)) []T {
	items := make([]T, 0, len(rows))
	rejected := 0

	for _, row := range rows {
		item, err := decode(row)
		if err != nil {
			rejected++
			log.Warn("snapshot_row_rejected",
				slog.String("collection", kind),
				slog.Any("error", err),
			)
			continue
		}
		items = append(items, item)
	}

	if rejected > 0 {
		log.Warn("snapshot_ingest_partial",
			slog.String("collection", kind),
			slog.Int("accepted", len(items)),
			slog.Int("rejected", rejected),
		)
	}

	return items
}
