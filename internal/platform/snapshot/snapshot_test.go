// Copyright (c) 2026 Planora. All rights reserved.
// Author: dev@planora.app

package snapshot_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/api/internal/platform/snapshot"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestCollection() *snapshot.Collection[record] {
	return snapshot.NewCollection("records", func(r record) string { return r.ID })
}

/*
TestCollection_Replace verifies wholesale snapshot replacement.
*/
func TestCollection_Replace(t *testing.T) {
	c := newTestCollection()

	assert.False(t, c.Ready())
	assert.Empty(t, c.All())

	c.Replace([]record{{ID: "1", Name: "first"}, {ID: "2", Name: "second"}})

	assert.True(t, c.Ready())
	assert.Equal(t, 2, c.Len())
	assert.False(t, c.FetchedAt().IsZero())

	// A second replacement fully supersedes the first.
	c.Replace([]record{{ID: "3", Name: "third"}})

	assert.Equal(t, 1, c.Len())
	_, found := c.Get("1")
	assert.False(t, found)
}

/*
TestCollection_Get verifies id lookups against the current snapshot.
*/
func TestCollection_Get(t *testing.T) {
	c := newTestCollection()
	c.Replace([]record{{ID: "1", Name: "first"}})

	got, found := c.Get("1")
	assert.True(t, found)
	assert.Equal(t, "first", got.Name)

	_, found = c.Get("unknown")
	assert.False(t, found)
}

/*
TestCollection_PreservesOrder verifies that All returns records in fetch order.
*/
func TestCollection_PreservesOrder(t *testing.T) {
	c := newTestCollection()
	c.Replace([]record{{ID: "b"}, {ID: "a"}, {ID: "c"}})

	all := c.All()
	require.Len(t, all, 3)
	assert.Equal(t, "b", all[0].ID)
	assert.Equal(t, "a", all[1].ID)
	assert.Equal(t, "c", all[2].ID)
}

/*
TestCollection_Refresh verifies fetch success and failure semantics.
*/
func TestCollection_Refresh(t *testing.T) {
	c := newTestCollection()
	ctx := context.Background()

	err := c.Refresh(ctx, func(context.Context) ([]record, error) {
		return []record{{ID: "1"}}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	// A failed fetch keeps the previous snapshot readable.
	err = c.Refresh(ctx, func(context.Context) ([]record, error) {
		return nil, errors.New("remote unavailable")
	})
	require.Error(t, err)
	assert.Equal(t, 1, c.Len())

	got, found := c.Get("1")
	assert.True(t, found)
	assert.Equal(t, "1", got.ID)
}

/*
TestCollection_ConcurrentReaders verifies readers never block or observe a
mixed snapshot while replacements race.
*/
func TestCollection_ConcurrentReaders(t *testing.T) {
	c := newTestCollection()
	c.Replace([]record{{ID: "1", Name: "gen-0"}, {ID: "2", Name: "gen-0"}})

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}

				all := c.All()
				// Every generation is published whole: both records agree.
				if len(all) == 2 {
					assert.Equal(t, all[0].Name, all[1].Name)
				}
			}
		}()
	}

	for gen := 1; gen <= 100; gen++ {
		name := "gen-" + string(rune('0'+gen%10))
		c.Replace([]record{{ID: "1", Name: name}, {ID: "2", Name: name}})
	}

	close(stop)
	wg.Wait()
}

/*
TestResolve verifies single-reference resolution against the snapshot.
*/
func TestResolve(t *testing.T) {
	c := newTestCollection()
	c.Replace([]record{{ID: "1", Name: "first"}})

	ref := snapshot.Resolve(c, "1")
	assert.True(t, ref.Found)
	assert.Equal(t, "first", ref.Value.Name)

	// Unknown ids are a displayable state, not an error.
	ref = snapshot.Resolve(c, "ghost")
	assert.False(t, ref.Found)
	assert.Equal(t, "ghost", ref.ID)
	assert.Zero(t, ref.Value)
}

/*
TestResolveMany verifies order preservation and per-id result slots.
*/
func TestResolveMany(t *testing.T) {
	c := newTestCollection()
	c.Replace([]record{{ID: "1"}, {ID: "2"}})

	refs := snapshot.ResolveMany(c, []string{"2", "ghost", "1"})
	require.Len(t, refs, 3)

	assert.Equal(t, "2", refs[0].ID)
	assert.True(t, refs[0].Found)

	assert.Equal(t, "ghost", refs[1].ID)
	assert.False(t, refs[1].Found)

	assert.Equal(t, "1", refs[2].ID)
	assert.True(t, refs[2].Found)
}

/*
TestIngest verifies that invalid rows are rejected without poisoning the
rest of the batch.
*/
func TestIngest(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	rows := []record{{ID: "1"}, {ID: ""}, {ID: "3"}}
	items := snapshot.Ingest(log, "records", rows, func(r record) (record, error) {
		if r.ID == "" {
			return record{}, errors.New("missing id")
		}
		return r, nil
	})

	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "3", items[1].ID)
}
