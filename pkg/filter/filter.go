// Copyright (c) 2026 Planora. All rights reserved.
// Author: dev@planora.app

/*
Package filter implements the two query refinements every listing endpoint
offers: case-insensitive substring search across chosen fields, and exact
category matching with an "all" escape hatch.

Both refinements are pure subsequence selections: they never reorder, so
stacking them composes with AND while keeping the source order intact.
*/
package filter

import (
	"strings"

	"github.com/planora/api/pkg/slice"
)

// All is the category sentinel that disables category filtering.
const All = "all"

// ByText returns the items whose selected fields contain query as a
// case-insensitive substring. An empty query returns the input unchanged.
func ByText[T any](items []T, query string, fields ...func(T) string) []T {
	if query == "" {
		return items
	}

	needle := strings.ToLower(query)
	return slice.Filter(items, func(item T) bool {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(item)), needle) {
				return true
			}
		}
		return false
	})
}

// ByCategory returns the items whose field equals value exactly. An empty
// value or the [All] sentinel returns the input unchanged.
func ByCategory[T any](items []T, value string, field func(T) string) []T {
	if value == "" || value == All {
		return items
	}

	return slice.Filter(items, func(item T) bool {
		return field(item) == value
	})
}
