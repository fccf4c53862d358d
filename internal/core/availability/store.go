package availability

import "context"

// Repository is the read surface over the availability snapshot.
type Repository interface {
	All() []Slot
	ForProvider(providerID string) []Slot
	ForVenue(venueID string) []Slot
	Refresh(ctx context.Context) error
}
