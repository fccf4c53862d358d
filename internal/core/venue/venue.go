package venue

import (
	"time"

	"github.com/planora/api/internal/platform/validate"
	"github.com/planora/api/pkg/convert"
	"github.com/planora/api/pkg/pointer"
)

// Pricing is a venue's rate card. At least one of the rates is set.
type Pricing struct {
	PerHour  *float64 `json:"per_hour,omitempty"`
	PerDay   *float64 `json:"per_day,omitempty"`
	Currency string   `json:"currency"`
}

// Venue is a bookable location for events.
type Venue struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Photos      []string  `json:"photos"`
	Capacity    int       `json:"capacity"`
	Pricing     Pricing   `json:"pricing"`
	Location    string    `json:"location"`
	Amenities   []string  `json:"amenities"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
}

const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldCapacity    = "capacity"
	FieldPerHour     = "pricing_per_hour"
	FieldPerDay      = "pricing_per_day"
	FieldLocation    = "location"
	FieldRating      = "rating"
)

// Row is the flattened wire shape of the venues table. Rate columns
// collapse into [Pricing] on the way in.
type Row struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     *string  `json:"description"`
	Photos          []string `json:"photos"`
	Capacity        *int     `json:"capacity"`
	PricingPerHour  *float64 `json:"pricing_per_hour"`
	PricingPerDay   *float64 `json:"pricing_per_day"`
	PricingCurrency *string  `json:"pricing_currency"`
	Location        *string  `json:"location"`
	Amenities       []string `json:"amenities"`
	Rating          *float64 `json:"rating"`
	UserID          *string  `json:"user_id"`
	CreatedAt       *string  `json:"created_at"`
	UpdatedAt       *string  `json:"updated_at"`
}

// Domain validates a wire row and maps it into a [Venue].
func (r Row) Domain() (Venue, error) {
	v := &validate.Validator{}
	v.Required("id", r.ID)
	v.Required(FieldName, r.Name)
	v.Custom(FieldPerHour, r.PricingPerHour == nil && r.PricingPerDay == nil,
		"At least one of pricing_per_hour and pricing_per_day is required")
	if r.PricingPerHour != nil {
		v.NonNegative(FieldPerHour, *r.PricingPerHour)
	}
	if r.PricingPerDay != nil {
		v.NonNegative(FieldPerDay, *r.PricingPerDay)
	}

	capacity := pointer.Val(r.Capacity)
	rating := pointer.Val(r.Rating)
	v.Custom(FieldCapacity, capacity < 0, "Must not be negative")
	v.Custom(FieldRating, rating < 0 || rating > 5, "Must be between 0 and 5")

	if err := v.Err(); err != nil {
		return Venue{}, err
	}

	return Venue{
		ID:          r.ID,
		Name:        r.Name,
		Description: pointer.Val(r.Description),
		Photos:      r.Photos,
		Capacity:    capacity,
		Pricing: Pricing{
			PerHour:  r.PricingPerHour,
			PerDay:   r.PricingPerDay,
			Currency: pointer.Fallback(r.PricingCurrency, "USD"),
		},
		Location:  pointer.Val(r.Location),
		Amenities: r.Amenities,
		Rating:    rating,
		CreatedAt: convert.ToTime(pointer.Val(r.CreatedAt)),
	}, nil
}

// InsertRow is the wire shape for creating a venue.
type InsertRow struct {
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Photos          []string `json:"photos,omitempty"`
	Capacity        int      `json:"capacity"`
	PricingPerHour  *float64 `json:"pricing_per_hour,omitempty"`
	PricingPerDay   *float64 `json:"pricing_per_day,omitempty"`
	PricingCurrency string   `json:"pricing_currency,omitempty"`
	Location        string   `json:"location,omitempty"`
	Amenities       []string `json:"amenities,omitempty"`
}

// UpdateRow is the wire shape for patching a venue.
type UpdateRow struct {
	Name            *string   `json:"name,omitempty"`
	Description     *string   `json:"description,omitempty"`
	Photos          *[]string `json:"photos,omitempty"`
	Capacity        *int      `json:"capacity,omitempty"`
	PricingPerHour  *float64  `json:"pricing_per_hour,omitempty"`
	PricingPerDay   *float64  `json:"pricing_per_day,omitempty"`
	PricingCurrency *string   `json:"pricing_currency,omitempty"`
	Location        *string   `json:"location,omitempty"`
	Amenities       *[]string `json:"amenities,omitempty"`
}
