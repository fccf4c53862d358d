package schema

// RefAvailabilitySlotTable represents the 'availability_slots' table
type RefAvailabilitySlotTable struct {
	Table      string
	ID         string
	Date       string
	Available  string
	ProviderID string
	VenueID    string
	CreatedAt  string
}

// RefAvailabilitySlot is the schema definition for availability_slots
var RefAvailabilitySlot = RefAvailabilitySlotTable{
	Table:      "availability_slots",
	ID:         "id",
	Date:       "date",
	Available:  "available",
	ProviderID: "provider_id",
	VenueID:    "venue_id",
	CreatedAt:  "created_at",
}
