package review

import (
	"time"

	"github.com/planora/api/internal/platform/validate"
	"github.com/planora/api/pkg/convert"
	"github.com/planora/api/pkg/pointer"
)

// Review is a client's rating of a service provider or a venue.
//
// A review belongs to exactly one owner — never both.
type Review struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	Date       string    `json:"date"`
	ProviderID string    `json:"provider_id,omitempty"`
	VenueID    string    `json:"venue_id,omitempty"`
	CreatedAt  time.Time `json:"-"`
}

const (
	FieldClientName = "client_name"
	FieldRating     = "rating"
	FieldComment    = "comment"
	FieldDate       = "date"
	FieldProviderID = "provider_id"
	FieldVenueID    = "venue_id"
)

// Row is the flattened wire shape of the reviews table.
type Row struct {
	ID         string   `json:"id"`
	ClientID   *string  `json:"client_id"`
	ClientName string   `json:"client_name"`
	Rating     *float64 `json:"rating"`
	Comment    *string  `json:"comment"`
	Date       *string  `json:"date"`
	ProviderID *string  `json:"provider_id"`
	VenueID    *string  `json:"venue_id"`
	CreatedAt  *string  `json:"created_at"`
}

// Domain validates a wire row and maps it into a [Review].
func (r Row) Domain() (Review, error) {
	providerID := pointer.Val(r.ProviderID)
	venueID := pointer.Val(r.VenueID)
	rating := int(pointer.Val(r.Rating))

	v := &validate.Validator{}
	v.Required("id", r.ID)
	v.Required(FieldClientName, r.ClientName)
	v.Range(FieldRating, rating, 1, 5)
	v.Custom(FieldProviderID, (providerID == "") == (venueID == ""),
		"Review must belong to exactly one of a provider or a venue")

	if err := v.Err(); err != nil {
		return Review{}, err
	}

	return Review{
		ID:         r.ID,
		ClientName: r.ClientName,
		Rating:     rating,
		Comment:    pointer.Val(r.Comment),
		Date:       pointer.Val(r.Date),
		ProviderID: providerID,
		VenueID:    venueID,
		CreatedAt:  convert.ToTime(pointer.Val(r.CreatedAt)),
	}, nil
}

// InsertRow is the wire shape for creating a review.
type InsertRow struct {
	ClientName string  `json:"client_name"`
	Rating     int     `json:"rating"`
	Comment    string  `json:"comment,omitempty"`
	Date       string  `json:"date,omitempty"`
	ProviderID *string `json:"provider_id,omitempty"`
	VenueID    *string `json:"venue_id,omitempty"`
}

// ForProvider returns the provider's reviews in snapshot order.
func ForProvider(reviews []Review, providerID string) []Review {
	var result []Review
	for _, r := range reviews {
		if r.ProviderID == providerID {
			result = append(result, r)
		}
	}
	return result
}

// ForVenue returns the venue's reviews in snapshot order.
func ForVenue(reviews []Review, venueID string) []Review {
	var result []Review
	for _, r := range reviews {
		if r.VenueID == venueID {
			result = append(result, r)
		}
	}
	return result
}

// AverageRating returns the mean rating rounded to one decimal place, or 0
// for an empty review list.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(int(float64(sum)/float64(len(reviews))*10+0.5)) / 10
}
