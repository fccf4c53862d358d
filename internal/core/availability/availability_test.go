package availability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/api/internal/core/availability"
	"github.com/planora/api/internal/platform/apperr"
	"github.com/planora/api/pkg/pointer"
)

/*
TestRow_Domain verifies wire row validation, including exclusive ownership.
*/
func TestRow_Domain(t *testing.T) {
	tests := []struct {
		name    string
		row     availability.Row
		isValid bool
	}{
		{
			"provider_slot",
			availability.Row{ID: "as1", Date: "2024-06-15", Available: pointer.To(true), ProviderID: pointer.To("sp1")},
			true,
		},
		{
			"venue_slot",
			availability.Row{ID: "as8", Date: "2024-06-15", VenueID: pointer.To("v1")},
			true,
		},
		{
			"no_owner",
			availability.Row{ID: "x", Date: "2024-06-15"},
			false,
		},
		{
			"both_owners",
			availability.Row{ID: "x", Date: "2024-06-15", ProviderID: pointer.To("sp1"), VenueID: pointer.To("v1")},
			false,
		},
		{
			"bad_date",
			availability.Row{ID: "x", Date: "June 15", ProviderID: pointer.To("sp1")},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, err := tt.row.Domain()

			if tt.isValid {
				require.NoError(t, err)
				assert.Equal(t, tt.row.ID, slot.ID)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

/*
TestForOwner verifies per-owner slot selection with the one-slot-per-date
guarantee.
*/
func TestForOwner(t *testing.T) {
	slots := []availability.Slot{
		{ID: "1", ProviderID: "sp1", Date: "2024-06-15", Available: true},
		{ID: "2", ProviderID: "sp1", Date: "2024-06-22", Available: false},
		{ID: "3", VenueID: "v1", Date: "2024-06-15", Available: true},
		// Duplicated upstream row for the same owner and date.
		{ID: "4", ProviderID: "sp1", Date: "2024-06-15", Available: false},
	}

	forProvider := availability.ForProvider(slots, "sp1")
	require.Len(t, forProvider, 2)
	assert.Equal(t, "1", forProvider[0].ID)
	assert.Equal(t, "2", forProvider[1].ID)

	forVenue := availability.ForVenue(slots, "v1")
	require.Len(t, forVenue, 1)
	assert.Equal(t, "3", forVenue[0].ID)

	assert.Empty(t, availability.ForProvider(slots, "ghost"))
}

/*
TestOnDate verifies date lookups treat unknown dates as explicit not-found.
*/
func TestOnDate(t *testing.T) {
	slots := []availability.Slot{
		{ID: "1", ProviderID: "sp1", Date: "2024-06-15", Available: true},
		{ID: "2", ProviderID: "sp1", Date: "2024-06-22", Available: false},
	}

	open, err := availability.OnDate(slots, "2024-06-15")
	require.NoError(t, err)
	assert.True(t, open)

	open, err = availability.OnDate(slots, "2024-06-22")
	require.NoError(t, err)
	assert.False(t, open)

	_, err = availability.OnDate(slots, "2024-07-01")
	assert.True(t, apperr.IsNotFound(err))
}
