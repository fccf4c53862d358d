// Copyright (c) 2026 Planora. All rights reserved.
// Author: dev@planora.app

package provider

import "context"

// Filter narrows the provider listing.
type Filter struct {
	Search      string
	ServiceType string
}

// Repository abstracts service provider storage.
type Repository interface {
	All() []ServiceProvider
	Get(id string) (ServiceProvider, bool)

	Create(ctx context.Context, row InsertRow) (ServiceProvider, error)
	Update(ctx context.Context, id string, row UpdateRow) (ServiceProvider, error)
	Delete(ctx context.Context, id string) error

	Refresh(ctx context.Context) error
}
