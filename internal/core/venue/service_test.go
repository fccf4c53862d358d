package venue_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/api/internal/core/availability"
	"github.com/planora/api/internal/core/booking"
	"github.com/planora/api/internal/core/review"
	"github.com/planora/api/internal/core/venue"
	"github.com/planora/api/internal/platform/apperr"
	"github.com/planora/api/internal/seed"
	"github.com/planora/api/pkg/pointer"
)

func newTestService(t *testing.T) *venue.Service {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	data := seed.Demo()

	repo := venue.NewRemoteRepository(nil, nil, log)
	repo.Seed(data.Venues)

	reviews := review.NewRemoteRepository(nil, nil, log)
	reviews.Seed(data.Reviews)

	slots := availability.NewRemoteRepository(nil, nil, log)
	slots.Seed(data.Slots)

	bookings := booking.NewRemoteRepository(nil, nil, log)
	bookings.Seed(data.Bookings)

	return venue.NewService(repo, reviews, slots, bookings, log)
}

/*
TestListVenues verifies the text and capacity filters.
*/
func TestListVenues(t *testing.T) {
	service := newTestService(t)

	all := service.ListVenues(venue.Filter{})
	require.Len(t, all, 3)
	assert.Equal(t, "Grand Ballroom Hotel", all[0].Name)

	matched := service.ListVenues(venue.Filter{Search: "rooftop"})
	require.Len(t, matched, 1)
	assert.Equal(t, "Skyline Rooftop", matched[0].Name)

	// Minimum capacity keeps only large enough venues.
	matched = service.ListVenues(venue.Filter{MinCapacity: 150})
	require.Len(t, matched, 2)
	assert.Equal(t, "Grand Ballroom Hotel", matched[0].Name)
	assert.Equal(t, "Garden Paradise", matched[1].Name)

	// Filters compose with AND.
	matched = service.ListVenues(venue.Filter{Search: "garden", MinCapacity: 200})
	assert.Empty(t, matched)

	// Amenity matching is case-insensitive and requires every entry.
	matched = service.ListVenues(venue.Filter{Amenities: []string{"parking"}})
	require.Len(t, matched, 2)

	matched = service.ListVenues(venue.Filter{Amenities: []string{"Parking", "stage"}})
	require.Len(t, matched, 1)
	assert.Equal(t, "Grand Ballroom Hotel", matched[0].Name)
}

/*
TestGetDetail verifies the joined venue view.
*/
func TestGetDetail(t *testing.T) {
	service := newTestService(t)

	detail, err := service.GetDetail("v1")
	require.NoError(t, err)

	assert.Equal(t, "Grand Ballroom Hotel", detail.Venue.Name)
	assert.Equal(t, 300, detail.Venue.Capacity)
	assert.Equal(t, 5000.0, pointer.Val(detail.Venue.Pricing.PerDay))
	assert.Nil(t, detail.Venue.Pricing.PerHour)

	require.Len(t, detail.Reviews, 1)
	assert.Equal(t, "Beautiful venue with excellent service!", detail.Reviews[0].Comment)
	assert.Equal(t, 5.0, detail.AverageRating)

	require.Len(t, detail.Availability, 2)
	assert.Empty(t, detail.Bookings)

	_, err = service.GetDetail("ghost")
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestRow_Domain_RateCard verifies the at-least-one-rate invariant.
*/
func TestRow_Domain_RateCard(t *testing.T) {
	base := venue.Row{ID: "v9", Name: "Test Hall", Capacity: pointer.To(50)}

	_, err := base.Domain()
	assert.Error(t, err, "a venue with no rate must be rejected")

	hourly := base
	hourly.PricingPerHour = pointer.To(250.0)
	v, err := hourly.Domain()
	require.NoError(t, err)
	assert.Equal(t, 250.0, pointer.Val(v.Pricing.PerHour))
	assert.Equal(t, "USD", v.Pricing.Currency)

	daily := base
	daily.PricingPerDay = pointer.To(2000.0)
	_, err = daily.Domain()
	assert.NoError(t, err)
}
