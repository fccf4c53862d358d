package schema

// RefEventProviderTable represents the 'event_providers' join table
type RefEventProviderTable struct {
	Table       string
	ID          string
	EventID     string
	ProviderID  string
	ServiceType string
	CreatedAt   string
}

// RefEventProvider is the schema definition for event_providers
var RefEventProvider = RefEventProviderTable{
	Table:       "event_providers",
	ID:          "id",
	EventID:     "event_id",
	ProviderID:  "provider_id",
	ServiceType: "service_type",
	CreatedAt:   "created_at",
}
