// Copyright (c) 2026 Planora. All rights reserved.
// Author: dev@planora.app

package filter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/planora/api/pkg/filter"
)

type contact struct {
	Name     string
	Email    string
	Category string
}

var contacts = []contact{
	{Name: "Sarah Johnson", Email: "sarah.johnson@email.com", Category: "photographer"},
	{Name: "Michael Chen", Email: "michael.chen@email.com", Category: "caterer"},
	{Name: "Emily Rodriguez", Email: "emily.rodriguez@email.com", Category: "dj"},
}

func nameOf(c contact) string  { return c.Name }
func emailOf(c contact) string { return c.Email }

/*
TestByText covers substring matching across multiple fields.
*/
func TestByText(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"empty_query_returns_all", "", []string{"Sarah Johnson", "Michael Chen", "Emily Rodriguez"}},
		{"match_by_name", "emily", []string{"Emily Rodriguez"}},
		{"match_case_insensitive", "SARAH", []string{"Sarah Johnson"}},
		{"match_by_email_field", "chen@", []string{"Michael Chen"}},
		{"substring_across_records", "email.com", []string{"Sarah Johnson", "Michael Chen", "Emily Rodriguez"}},
		{"no_match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := filter.ByText(contacts, tt.query, nameOf, emailOf)

			names := make([]string, 0, len(matched))
			for _, c := range matched {
				names = append(names, c.Name)
			}

			if tt.expected == nil {
				assert.Empty(t, names)
			} else {
				assert.Equal(t, tt.expected, names)
			}
		})
	}
}

/*
TestByCategory covers exact matching and the "all" sentinel.
*/
func TestByCategory(t *testing.T) {
	categoryOf := func(c contact) string { return c.Category }

	matched := filter.ByCategory(contacts, "dj", categoryOf)
	require.Len(t, matched, 1)
	assert.Equal(t, "Emily Rodriguez", matched[0].Name)

	// The sentinel and the empty value both disable the filter.
	assert.Len(t, filter.ByCategory(contacts, filter.All, categoryOf), 3)
	assert.Len(t, filter.ByCategory(contacts, "", categoryOf), 3)

	// Category matching is exact, not substring.
	assert.Empty(t, filter.ByCategory(contacts, "d", categoryOf))
}

/*
TestByText_Properties checks the filter laws on generated inputs: the result
is always a subsequence of the input, every kept item matches, and filters
compose with AND regardless of order.
*/
func TestByText_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := rapid.SliceOf(rapid.StringMatching(`[a-zA-Z ]{0,12}`)).Draw(t, "items")
		query := rapid.StringMatching(`[a-zA-Z]{0,4}`).Draw(t, "query")

		identity := func(s string) string { return s }
		matched := filter.ByText(items, query, identity)

		// Every kept item really matches.
		for _, item := range matched {
			assert.Contains(t, strings.ToLower(item), strings.ToLower(query))
		}

		// The result is a subsequence of the input: same relative order.
		i := 0
		for _, item := range items {
			if i < len(matched) && matched[i] == item {
				i++
			}
		}
		assert.Equal(t, len(matched), i, "result must preserve input order")

		// Filtering twice with the same query is a no-op.
		assert.Equal(t, matched, filter.ByText(matched, query, identity))
	})
}

/*
TestByCategory_Properties checks that composing text and category filters is
order-independent.
*/
func TestByCategory_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		categories := []string{"a", "b", "c"}
		items := rapid.SliceOf(rapid.Custom(func(t *rapid.T) contact {
			return contact{
				Name:     rapid.StringMatching(`[a-z]{0,6}`).Draw(t, "name"),
				Category: rapid.SampledFrom(categories).Draw(t, "category"),
			}
		})).Draw(t, "items")

		query := rapid.StringMatching(`[a-z]{0,2}`).Draw(t, "query")
		category := rapid.SampledFrom(append(categories, filter.All)).Draw(t, "filter_category")

		categoryOf := func(c contact) string { return c.Category }

		textFirst := filter.ByCategory(filter.ByText(items, query, nameOf), category, categoryOf)
		categoryFirst := filter.ByText(filter.ByCategory(items, category, categoryOf), query, nameOf)

		assert.Equal(t, textFirst, categoryFirst)
	})
}
