// Copyright (c) 2026 Planora. All rights reserved.
// Author: dev@planora.app

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/planora/api/pkg/pagination"
)

/*
TestFromRequest verifies query parsing and clamping.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name          string
		url           string
		expectedPage  int
		expectedLimit int
	}{
		{"defaults", "/clients", 1, 20},
		{"explicit", "/clients?page=3&limit=50", 3, 50},
		{"negative_page", "/clients?page=-1", 1, 20},
		{"limit_over_max", "/clients?limit=500", 1, 20},
		{"garbage", "/clients?page=abc&limit=xyz", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.url, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.expectedPage, params.Page)
			assert.Equal(t, tt.expectedLimit, params.Limit)
		})
	}
}

/*
TestWindow verifies clamped slice bounds for in-memory paging.
*/
func TestWindow(t *testing.T) {
	tests := []struct {
		name          string
		page          int
		limit         int
		length        int
		expectedStart int
		expectedEnd   int
	}{
		{"first_page", 1, 10, 25, 0, 10},
		{"middle_page", 2, 10, 25, 10, 20},
		{"partial_last_page", 3, 10, 25, 20, 25},
		{"page_past_end", 9, 10, 25, 25, 25},
		{"empty_collection", 1, 10, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := pagination.Params{Page: tt.page, Limit: tt.limit}
			start, end := params.Window(tt.length)

			assert.Equal(t, tt.expectedStart, start)
			assert.Equal(t, tt.expectedEnd, end)

			// Bounds are always safe to slice with.
			items := make([]int, tt.length)
			assert.NotPanics(t, func() { _ = items[start:end] })
		})
	}
}
