// Copyright (c) 2026 Planora. All rights reserved.
// Author: dev@planora.app

package venue

import "context"

// Filter narrows the venue listing.
type Filter struct {
	Search      string
	MinCapacity int

	// Amenities keeps only venues offering every listed amenity.
	Amenities []string
}

// Repository abstracts venue storage.
type Repository interface {
	All() []Venue
	Get(id string) (Venue, bool)

	Create(ctx context.Context, row InsertRow) (Venue, error)
	Update(ctx context.Context, id string, row UpdateRow) (Venue, error)
	Delete(ctx context.Context, id string) error

	Refresh(ctx context.Context) error
}
