package schema

// RefReviewTable represents the 'reviews' table
type RefReviewTable struct {
	Table      string
	ID         string
	ClientID   string
	ClientName string
	Rating     string
	Comment    string
	Date       string
	ProviderID string
	VenueID    string
	CreatedAt  string
}

// RefReview is the schema definition for reviews
var RefReview = RefReviewTable{
	Table:      "reviews",
	ID:         "id",
	ClientID:   "client_id",
	ClientName: "client_name",
	Rating:     "rating",
	Comment:    "comment",
	Date:       "date",
	ProviderID: "provider_id",
	VenueID:    "venue_id",
	CreatedAt:  "created_at",
}
