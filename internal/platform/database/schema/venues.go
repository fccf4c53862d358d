package schema

// RefVenueTable represents the 'venues' table
type RefVenueTable struct {
	Table           string
	ID              string
	Name            string
	Description     string
	Photos          string
	Capacity        string
	PricingPerHour  string
	PricingPerDay   string
	PricingCurrency string
	Location        string
	Amenities       string
	Rating          string
	UserID          string
	CreatedAt       string
	UpdatedAt       string
}

// RefVenue is the schema definition for venues
var RefVenue = RefVenueTable{
	Table:           "venues",
	ID:              "id",
	Name:            "name",
	Description:     "description",
	Photos:          "photos",
	Capacity:        "capacity",
	PricingPerHour:  "pricing_per_hour",
	PricingPerDay:   "pricing_per_day",
	PricingCurrency: "pricing_currency",
	Location:        "location",
	Amenities:       "amenities",
	Rating:          "rating",
	UserID:          "user_id",
	CreatedAt:       "created_at",
	UpdatedAt:       "updated_at",
}
