package booking

import (
	"time"

	"github.com/planora/api/internal/platform/validate"
	"github.com/planora/api/pkg/convert"
	"github.com/planora/api/pkg/pointer"
)

// Status is the lifecycle state of a booking. Closed set.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether the status is a known case.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

func statusNames() []string {
	return []string{string(StatusPending), string(StatusConfirmed), string(StatusCancelled)}
}

// Booking ties a client's event to an optionally booked provider or venue
// with an agreed amount.
type Booking struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	ClientID   string    `json:"client_id"`
	ProviderID string    `json:"provider_id,omitempty"`
	VenueID    string    `json:"venue_id,omitempty"`
	Date       string    `json:"date"`
	Status     Status    `json:"status"`
	Amount     float64   `json:"amount"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"-"`
}

const (
	FieldEventID  = "event_id"
	FieldClientID = "client_id"
	FieldDate     = "date"
	FieldStatus   = "status"
	FieldAmount   = "amount"
)

// Row is the flattened wire shape of the bookings table.
type Row struct {
	ID         string   `json:"id"`
	EventID    string   `json:"event_id"`
	ClientID   string   `json:"client_id"`
	ProviderID *string  `json:"provider_id"`
	VenueID    *string  `json:"venue_id"`
	Date       string   `json:"date"`
	Status     string   `json:"status"`
	Amount     *float64 `json:"amount"`
	Notes      *string  `json:"notes"`
	CreatedAt  *string  `json:"created_at"`
}

// Domain validates a wire row and maps it into a [Booking].
func (r Row) Domain() (Booking, error) {
	amount := pointer.Val(r.Amount)

	v := &validate.Validator{}
	v.Required("id", r.ID)
	v.Required(FieldEventID, r.EventID)
	v.Required(FieldClientID, r.ClientID)
	v.Date(FieldDate, r.Date)
	v.OneOf(FieldStatus, r.Status, statusNames()...)
	v.NonNegative(FieldAmount, amount)

	if err := v.Err(); err != nil {
		return Booking{}, err
	}

	return Booking{
		ID:         r.ID,
		EventID:    r.EventID,
		ClientID:   r.ClientID,
		ProviderID: pointer.Val(r.ProviderID),
		VenueID:    pointer.Val(r.VenueID),
		Date:       r.Date,
		Status:     Status(r.Status),
		Amount:     amount,
		Notes:      pointer.Val(r.Notes),
		CreatedAt:  convert.ToTime(pointer.Val(r.CreatedAt)),
	}, nil
}

// InsertRow is the wire shape for creating a booking.
type InsertRow struct {
	EventID    string  `json:"event_id"`
	ClientID   string  `json:"client_id"`
	ProviderID *string `json:"provider_id,omitempty"`
	VenueID    *string `json:"venue_id,omitempty"`
	Date       string  `json:"date"`
	Status     string  `json:"status,omitempty"`
	Amount     float64 `json:"amount"`
	Notes      string  `json:"notes,omitempty"`
}

// UpdateRow is the wire shape for patching a booking. Nil fields are left
// untouched by the remote service.
type UpdateRow struct {
	Date   *string  `json:"date,omitempty"`
	Status *string  `json:"status,omitempty"`
	Amount *float64 `json:"amount,omitempty"`
	Notes  *string  `json:"notes,omitempty"`
}

// ForClient returns the client's bookings in snapshot order.
func ForClient(bookings []Booking, clientID string) []Booking {
	var result []Booking
	for _, b := range bookings {
		if b.ClientID == clientID {
			result = append(result, b)
		}
	}
	return result
}

// ForVenue returns the venue's bookings in snapshot order.
func ForVenue(bookings []Booking, venueID string) []Booking {
	var result []Booking
	for _, b := range bookings {
		if b.VenueID == venueID {
			result = append(result, b)
		}
	}
	return result
}
