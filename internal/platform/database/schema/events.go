package schema

// RefEventTable represents the 'events' table
type RefEventTable struct {
	Table      string
	ID         string
	Title      string
	Type       string
	ClientID   string
	VenueID    string
	Date       string
	StartTime  string
	EndTime    string
	GuestCount string
	Budget     string
	Status     string
	Notes      string
	CreatedAt  string
	UpdatedAt  string
}

// RefEvent is the schema definition for events
var RefEvent = RefEventTable{
	Table:      "events",
	ID:         "id",
	Title:      "title",
	Type:       "type",
	ClientID:   "client_id",
	VenueID:    "venue_id",
	Date:       "date",
	StartTime:  "start_time",
	EndTime:    "end_time",
	GuestCount: "guest_count",
	Budget:     "budget",
	Status:     "status",
	Notes:      "notes",
	CreatedAt:  "created_at",
	UpdatedAt:  "updated_at",
}
