// Copyright (c) 2026 Planora. All rights reserved.
// Author: dev@planora.app

package provider

import (
	"context"
	"log/slog"

	"github.com/planora/api/internal/platform/apperr"
	"github.com/planora/api/internal/platform/validate"
	"github.com/planora/api/pkg/filter"

	"github.com/planora/api/internal/core/availability"
	"github.com/planora/api/internal/core/review"
)

// ReviewDirectory exposes the reviews needed for provider details.
type ReviewDirectory interface {
	ForProvider(providerID string) []review.Review
}

// AvailabilityDirectory exposes the calendar needed for provider details.
type AvailabilityDirectory interface {
	ForProvider(providerID string) []availability.Slot
}

// Detail is a provider joined with its reviews and availability calendar.
type Detail struct {
	Provider      ServiceProvider     `json:"provider"`
	Reviews       []review.Review     `json:"reviews"`
	AverageRating float64             `json:"average_rating"`
	Availability  []availability.Slot `json:"availability"`
}

type Service struct {
	repo    Repository
	reviews ReviewDirectory
	slots   AvailabilityDirectory
	logger  *slog.Logger
}

func NewService(repo Repository, reviews ReviewDirectory, slots AvailabilityDirectory, logger *slog.Logger) *Service {
	return &Service{repo: repo, reviews: reviews, slots: slots, logger: logger}
}

// ListProviders narrows the snapshot by free-text search across name,
// description and location, then by service type. Both filters compose
// with AND and keep snapshot order.
func (service *Service) ListProviders(f Filter) []ServiceProvider {
	providers := filter.ByText(service.repo.All(), f.Search,
		func(p ServiceProvider) string { return p.Name },
		func(p ServiceProvider) string { return p.Description },
		func(p ServiceProvider) string { return p.Location },
	)
	return filter.ByCategory(providers, f.ServiceType, func(p ServiceProvider) string {
		return string(p.ServiceType)
	})
}

// GetProvider resolves a provider by id.
func (service *Service) GetProvider(id string) (ServiceProvider, error) {
	p, found := service.repo.Get(id)
	if !found {
		return ServiceProvider{}, apperr.NotFound("Service provider")
	}
	return p, nil
}

// GetDetail resolves a provider together with its reviews and availability.
// Missing related rows never fail the lookup.
func (service *Service) GetDetail(id string) (Detail, error) {
	p, err := service.GetProvider(id)
	if err != nil {
		return Detail{}, err
	}

	reviews := service.reviews.ForProvider(p.ID)
	return Detail{
		Provider:      p,
		Reviews:       reviews,
		AverageRating: review.AverageRating(reviews),
		Availability:  service.slots.ForProvider(p.ID),
	}, nil
}

// HasProvider reports whether a provider exists in the current snapshot.
func (service *Service) HasProvider(id string) bool {
	_, found := service.repo.Get(id)
	return found
}

// CreateProvider validates and stores a new provider.
func (service *Service) CreateProvider(ctx context.Context, input InsertRow) (ServiceProvider, error) {
	if err := validateInput(input); err != nil {
		return ServiceProvider{}, err
	}

	created, err := service.repo.Create(ctx, input)
	if err != nil {
		return ServiceProvider{}, err
	}

	service.logger.Info("provider_created",
		slog.String("provider_id", created.ID),
		slog.String("service_type", string(created.ServiceType)),
	)
	return created, nil
}

// UpdateProvider validates and applies a partial update.
func (service *Service) UpdateProvider(ctx context.Context, id string, input UpdateRow) (ServiceProvider, error) {
	v := &validate.Validator{}
	if input.Name != nil {
		v.Required(FieldName, *input.Name)
	}
	if input.ServiceType != nil {
		v.OneOf(FieldServiceType, *input.ServiceType, serviceTypeNames()...)
	}
	if input.PricingMin != nil {
		v.NonNegative(FieldPricingMin, *input.PricingMin)
	}
	if input.PricingMin != nil && input.PricingMax != nil {
		v.Custom(FieldPricingMax, *input.PricingMax < *input.PricingMin,
			"Must be greater than or equal to pricing_min")
	}
	if input.Email != nil && *input.Email != "" {
		v.Email("email", *input.Email)
	}
	if err := v.Err(); err != nil {
		return ServiceProvider{}, err
	}

	updated, err := service.repo.Update(ctx, id, input)
	if err != nil {
		return ServiceProvider{}, err
	}

	service.logger.Info("provider_updated", slog.String("provider_id", id))
	return updated, nil
}

// DeleteProvider removes a provider.
func (service *Service) DeleteProvider(ctx context.Context, id string) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("provider_deleted", slog.String("provider_id", id))
	return nil
}

// Refresh refetches the providers snapshot.
func (service *Service) Refresh(ctx context.Context) error {
	return service.repo.Refresh(ctx)
}

func validateInput(input InsertRow) error {
	v := &validate.Validator{}
	v.Required(FieldName, input.Name)
	v.MaxLen(FieldName, input.Name, 200)
	v.OneOf(FieldServiceType, input.ServiceType, serviceTypeNames()...)
	v.NonNegative(FieldPricingMin, input.PricingMin)
	v.Custom(FieldPricingMax, input.PricingMax < input.PricingMin,
		"Must be greater than or equal to pricing_min")
	if input.Email != "" {
		v.Email("email", input.Email)
	}
	return v.Err()
}
