package provider

import (
	"time"

	"github.com/planora/api/internal/platform/validate"
	"github.com/planora/api/pkg/convert"
	"github.com/planora/api/pkg/pointer"
)

// ServiceType classifies what a provider offers.
type ServiceType string

const (
	TypePhotographer  ServiceType = "photographer"
	TypeVideographer  ServiceType = "videographer"
	TypeDroneOperator ServiceType = "drone_operator"
	TypeAudioProvider ServiceType = "audio_provider"
	TypeDJ            ServiceType = "dj"
	TypeCaterer       ServiceType = "caterer"
	TypeDecorator     ServiceType = "decorator"
)

func (t ServiceType) Valid() bool {
	_, ok := ServiceTypeLabels[t]
	return ok
}

// ServiceTypeLabels maps each service type to its display name.
var ServiceTypeLabels = map[ServiceType]string{
	TypePhotographer:  "Photographer",
	TypeVideographer:  "Videographer",
	TypeDroneOperator: "Drone Operator",
	TypeAudioProvider: "Audio Provider",
	TypeDJ:            "DJ",
	TypeCaterer:       "Caterer",
	TypeDecorator:     "Decorator",
}

func serviceTypeNames() []string {
	return []string{
		string(TypePhotographer),
		string(TypeVideographer),
		string(TypeDroneOperator),
		string(TypeAudioProvider),
		string(TypeDJ),
		string(TypeCaterer),
		string(TypeDecorator),
	}
}

// PriceRange is a provider's quoted pricing band.
type PriceRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// ServiceProvider is a vendor that can be assigned to events.
type ServiceProvider struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	ServiceType ServiceType `json:"service_type"`
	Description string      `json:"description"`
	Portfolio   []string    `json:"portfolio"`
	Pricing     PriceRange  `json:"pricing"`
	Rating      float64     `json:"rating"`
	Phone       string      `json:"phone,omitempty"`
	Email       string      `json:"email,omitempty"`
	Location    string      `json:"location,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

const (
	FieldName        = "name"
	FieldServiceType = "service_type"
	FieldDescription = "description"
	FieldPricingMin  = "pricing_min"
	FieldPricingMax  = "pricing_max"
	FieldCurrency    = "pricing_currency"
	FieldRating      = "rating"
	FieldLocation    = "location"
)

// Row is the flattened wire shape of the service_providers table. Pricing
// columns collapse into [PriceRange] on the way in.
type Row struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	ServiceType     string   `json:"service_type"`
	Description     *string  `json:"description"`
	Portfolio       []string `json:"portfolio"`
	PricingMin      *float64 `json:"pricing_min"`
	PricingMax      *float64 `json:"pricing_max"`
	PricingCurrency *string  `json:"pricing_currency"`
	Rating          *float64 `json:"rating"`
	Phone           *string  `json:"phone"`
	Email           *string  `json:"email"`
	Location        *string  `json:"location"`
	UserID          *string  `json:"user_id"`
	CreatedAt       *string  `json:"created_at"`
	UpdatedAt       *string  `json:"updated_at"`
}

// Domain validates a wire row and maps it into a [ServiceProvider].
func (r Row) Domain() (ServiceProvider, error) {
	v := &validate.Validator{}
	v.Required("id", r.ID)
	v.Required(FieldName, r.Name)
	v.OneOf(FieldServiceType, r.ServiceType, serviceTypeNames()...)

	min := pointer.Val(r.PricingMin)
	max := pointer.Val(r.PricingMax)
	rating := pointer.Val(r.Rating)
	v.NonNegative(FieldPricingMin, min)
	v.Custom(FieldPricingMax, max < min, "Must be greater than or equal to pricing_min")
	v.Custom(FieldRating, rating < 0 || rating > 5, "Must be between 0 and 5")

	if err := v.Err(); err != nil {
		return ServiceProvider{}, err
	}

	return ServiceProvider{
		ID:          r.ID,
		Name:        r.Name,
		ServiceType: ServiceType(r.ServiceType),
		Description: pointer.Val(r.Description),
		Portfolio:   r.Portfolio,
		Pricing: PriceRange{
			Min:      min,
			Max:      max,
			Currency: pointer.Fallback(r.PricingCurrency, "USD"),
		},
		Rating:    rating,
		Phone:     pointer.Val(r.Phone),
		Email:     pointer.Val(r.Email),
		Location:  pointer.Val(r.Location),
		CreatedAt: convert.ToTime(pointer.Val(r.CreatedAt)),
	}, nil
}

// InsertRow is the wire shape for creating a provider.
type InsertRow struct {
	Name            string   `json:"name"`
	ServiceType     string   `json:"service_type"`
	Description     string   `json:"description,omitempty"`
	Portfolio       []string `json:"portfolio,omitempty"`
	PricingMin      float64  `json:"pricing_min"`
	PricingMax      float64  `json:"pricing_max"`
	PricingCurrency string   `json:"pricing_currency,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Email           string   `json:"email,omitempty"`
	Location        string   `json:"location,omitempty"`
}

// UpdateRow is the wire shape for patching a provider.
type UpdateRow struct {
	Name            *string   `json:"name,omitempty"`
	ServiceType     *string   `json:"service_type,omitempty"`
	Description     *string   `json:"description,omitempty"`
	Portfolio       *[]string `json:"portfolio,omitempty"`
	PricingMin      *float64  `json:"pricing_min,omitempty"`
	PricingMax      *float64  `json:"pricing_max,omitempty"`
	PricingCurrency *string   `json:"pricing_currency,omitempty"`
	Phone           *string   `json:"phone,omitempty"`
	Email           *string   `json:"email,omitempty"`
	Location        *string   `json:"location,omitempty"`
}
