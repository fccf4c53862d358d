package review

import "context"

type Repository interface {
	All() []Review
	ForProvider(providerID string) []Review
	ForVenue(venueID string) []Review
	Create(ctx context.Context, input InsertRow) (Review, error)
	Refresh(ctx context.Context) error
}
