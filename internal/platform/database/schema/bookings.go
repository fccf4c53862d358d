package schema

// RefBookingTable represents the 'bookings' table
type RefBookingTable struct {
	Table      string
	ID         string
	EventID    string
	ClientID   string
	ProviderID string
	VenueID    string
	Date       string
	Status     string
	Amount     string
	Notes      string
	CreatedAt  string
	UpdatedAt  string
}

// RefBooking is the schema definition for bookings
var RefBooking = RefBookingTable{
	Table:      "bookings",
	ID:         "id",
	EventID:    "event_id",
	ClientID:   "client_id",
	ProviderID: "provider_id",
	VenueID:    "venue_id",
	Date:       "date",
	Status:     "status",
	Amount:     "amount",
	Notes:      "notes",
	CreatedAt:  "created_at",
	UpdatedAt:  "updated_at",
}
