package booking_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/api/internal/core/booking"
	"github.com/planora/api/internal/platform/apperr"
	"github.com/planora/api/pkg/pointer"
)

/*
TestRow_Domain verifies booking wire validation.
*/
func TestRow_Domain(t *testing.T) {
	valid := booking.Row{
		ID:       "b1",
		EventID:  "e1",
		ClientID: "1",
		VenueID:  pointer.To("v1"),
		Date:     "2024-06-15",
		Status:   "confirmed",
		Amount:   pointer.To(5000.0),
	}

	b, err := valid.Domain()
	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, b.Status)
	assert.Equal(t, 5000.0, b.Amount)

	tests := []struct {
		name   string
		mutate func(*booking.Row)
	}{
		{"unknown_status", func(r *booking.Row) { r.Status = "tentative" }},
		{"bad_date", func(r *booking.Row) { r.Date = "15/06/2024" }},
		{"negative_amount", func(r *booking.Row) { r.Amount = pointer.To(-1.0) }},
		{"missing_event", func(r *booking.Row) { r.EventID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := valid
			tt.mutate(&row)

			_, err := row.Domain()
			assert.Error(t, err)
		})
	}
}

/*
TestListBookings verifies the status filter against a seeded snapshot.
*/
func TestListBookings(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo := booking.NewRemoteRepository(nil, nil, log)
	repo.Seed([]booking.Booking{
		{ID: "b1", EventID: "e1", ClientID: "1", Status: booking.StatusConfirmed, Date: "2024-06-15"},
		{ID: "b2", EventID: "e2", ClientID: "2", Status: booking.StatusPending, Date: "2024-07-20"},
		{ID: "b3", EventID: "e1", ClientID: "1", Status: booking.StatusConfirmed, Date: "2024-06-22"},
	})

	service := booking.NewService(repo, log)

	all := service.ListBookings(booking.Filter{})
	require.Len(t, all, 3)

	confirmed := service.ListBookings(booking.Filter{Status: "confirmed"})
	require.Len(t, confirmed, 2)
	assert.Equal(t, "b1", confirmed[0].ID)
	assert.Equal(t, "b3", confirmed[1].ID)

	assert.Len(t, service.ListBookings(booking.Filter{Status: "all"}), 3)
	assert.Empty(t, service.ListBookings(booking.Filter{Status: "cancelled"}))

	b, err := service.GetBooking("b2")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusPending, b.Status)

	_, err = service.GetBooking("ghost")
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestForOwner verifies per-owner booking selection.
*/
func TestForOwner(t *testing.T) {
	bookings := []booking.Booking{
		{ID: "b1", ClientID: "1", VenueID: "v1"},
		{ID: "b2", ClientID: "2", VenueID: "v1"},
		{ID: "b3", ClientID: "1", VenueID: "v3"},
	}

	forClient := booking.ForClient(bookings, "1")
	require.Len(t, forClient, 2)
	assert.Equal(t, "b1", forClient[0].ID)
	assert.Equal(t, "b3", forClient[1].ID)

	forVenue := booking.ForVenue(bookings, "v1")
	require.Len(t, forVenue, 2)
}
