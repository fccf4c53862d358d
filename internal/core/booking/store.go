package booking

import "context"

// Filter holds the snapshot-side refinements for a booking listing.
type Filter struct {
	// Status filters on exact status; the sentinel "all" (or empty) keeps everything.
	Status string
}

type Repository interface {
	All() []Booking
	Get(id string) (Booking, bool)
	ForClient(clientID string) []Booking
	ForVenue(venueID string) []Booking
	Create(ctx context.Context, input InsertRow) (Booking, error)
	Update(ctx context.Context, id string, input UpdateRow) (Booking, error)
	Delete(ctx context.Context, id string) error
	Refresh(ctx context.Context) error
}
