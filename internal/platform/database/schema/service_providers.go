package schema

// RefServiceProviderTable represents the 'service_providers' table
type RefServiceProviderTable struct {
	Table           string
	ID              string
	Name            string
	ServiceType     string
	Description     string
	Portfolio       string
	PricingMin      string
	PricingMax      string
	PricingCurrency string
	Rating          string
	Phone           string
	Email           string
	Location        string
	UserID          string
	CreatedAt       string
	UpdatedAt       string
}

// RefServiceProvider is the schema definition for service_providers
var RefServiceProvider = RefServiceProviderTable{
	Table:           "service_providers",
	ID:              "id",
	Name:            "name",
	ServiceType:     "service_type",
	Description:     "description",
	Portfolio:       "portfolio",
	PricingMin:      "pricing_min",
	PricingMax:      "pricing_max",
	PricingCurrency: "pricing_currency",
	Rating:          "rating",
	Phone:           "phone",
	Email:           "email",
	Location:        "location",
	UserID:          "user_id",
	CreatedAt:       "created_at",
	UpdatedAt:       "updated_at",
}
