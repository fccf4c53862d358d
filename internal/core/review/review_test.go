package review_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/api/internal/core/review"
	"github.com/planora/api/pkg/pointer"
)

/*
TestRow_Domain verifies rating bounds and exclusive ownership.
*/
func TestRow_Domain(t *testing.T) {
	tests := []struct {
		name    string
		row     review.Row
		isValid bool
	}{
		{
			"provider_review",
			review.Row{ID: "r1", ClientName: "Sarah Johnson", Rating: pointer.To(5.0), ProviderID: pointer.To("sp1")},
			true,
		},
		{
			"venue_review",
			review.Row{ID: "rv1", ClientName: "Sarah Johnson", Rating: pointer.To(5.0), VenueID: pointer.To("v1")},
			true,
		},
		{
			"rating_too_low",
			review.Row{ID: "x", ClientName: "a", Rating: pointer.To(0.0), ProviderID: pointer.To("sp1")},
			false,
		},
		{
			"rating_too_high",
			review.Row{ID: "x", ClientName: "a", Rating: pointer.To(6.0), ProviderID: pointer.To("sp1")},
			false,
		},
		{
			"no_owner",
			review.Row{ID: "x", ClientName: "a", Rating: pointer.To(4.0)},
			false,
		},
		{
			"both_owners",
			review.Row{ID: "x", ClientName: "a", Rating: pointer.To(4.0), ProviderID: pointer.To("sp1"), VenueID: pointer.To("v1")},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := tt.row.Domain()

			if tt.isValid {
				require.NoError(t, err)
				assert.Equal(t, tt.row.ID, r.ID)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

/*
TestForOwner verifies per-owner review selection in snapshot order.
*/
func TestForOwner(t *testing.T) {
	reviews := []review.Review{
		{ID: "r1", ProviderID: "sp1", Rating: 5},
		{ID: "r2", ProviderID: "sp4", Rating: 5},
		{ID: "rv1", VenueID: "v1", Rating: 5},
		{ID: "r3", ProviderID: "sp1", Rating: 3},
	}

	forProvider := review.ForProvider(reviews, "sp1")
	require.Len(t, forProvider, 2)
	assert.Equal(t, "r1", forProvider[0].ID)
	assert.Equal(t, "r3", forProvider[1].ID)

	forVenue := review.ForVenue(reviews, "v1")
	require.Len(t, forVenue, 1)
	assert.Equal(t, "rv1", forVenue[0].ID)
}

/*
TestAverageRating verifies one-decimal rounding and the empty case.
*/
func TestAverageRating(t *testing.T) {
	tests := []struct {
		name     string
		ratings  []int
		expected float64
	}{
		{"empty", nil, 0},
		{"single", []int{4}, 4},
		{"round_down", []int{4, 5, 4}, 4.3},
		{"round_up", []int{5, 4}, 4.5},
		{"all_fives", []int{5, 5, 5}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := make([]review.Review, len(tt.ratings))
			for i, r := range tt.ratings {
				reviews[i] = review.Review{Rating: r}
			}

			assert.Equal(t, tt.expected, review.AverageRating(reviews))
		})
	}
}
