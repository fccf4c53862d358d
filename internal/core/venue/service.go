// Copyright (c) 2026 Planora. All rights reserved.
// Author: dev@planora.app

package venue

import (
	"context"
	"log/slog"
	"strings"

	"github.com/planora/api/internal/platform/apperr"
	"github.com/planora/api/internal/platform/validate"
	"github.com/planora/api/pkg/filter"
	"github.com/planora/api/pkg/slice"

	"github.com/planora/api/internal/core/availability"
	"github.com/planora/api/internal/core/booking"
	"github.com/planora/api/internal/core/review"
)

// ReviewDirectory exposes the reviews needed for venue details.
type ReviewDirectory interface {
	ForVenue(venueID string) []review.Review
}

// AvailabilityDirectory exposes the calendar needed for venue details.
type AvailabilityDirectory interface {
	ForVenue(venueID string) []availability.Slot
}

// BookingDirectory exposes the booking history needed for venue details.
type BookingDirectory interface {
	ForVenue(venueID string) []booking.Booking
}

// Detail is a venue joined with its reviews, availability and bookings.
type Detail struct {
	Venue         Venue               `json:"venue"`
	Reviews       []review.Review     `json:"reviews"`
	AverageRating float64             `json:"average_rating"`
	Availability  []availability.Slot `json:"availability"`
	Bookings      []booking.Booking   `json:"bookings"`
}

type Service struct {
	repo     Repository
	reviews  ReviewDirectory
	slots    AvailabilityDirectory
	bookings BookingDirectory
	logger   *slog.Logger
}

func NewService(repo Repository, reviews ReviewDirectory, slots AvailabilityDirectory, bookings BookingDirectory, logger *slog.Logger) *Service {
	return &Service{repo: repo, reviews: reviews, slots: slots, bookings: bookings, logger: logger}
}

// ListVenues narrows the snapshot by free-text search across name,
// description and location, then by minimum capacity and required
// amenities. All filters compose with AND and keep snapshot order.
func (service *Service) ListVenues(f Filter) []Venue {
	venues := filter.ByText(service.repo.All(), f.Search,
		func(v Venue) string { return v.Name },
		func(v Venue) string { return v.Description },
		func(v Venue) string { return v.Location },
	)
	if f.MinCapacity > 0 {
		venues = slice.Filter(venues, func(v Venue) bool { return v.Capacity >= f.MinCapacity })
	}
	if len(f.Amenities) > 0 {
		venues = slice.Filter(venues, func(v Venue) bool { return hasAmenities(v, f.Amenities) })
	}
	return venues
}

// hasAmenities reports whether the venue offers every wanted amenity,
// compared case-insensitively.
func hasAmenities(v Venue, wanted []string) bool {
	for _, want := range wanted {
		found := false
		for _, have := range v.Amenities {
			if strings.EqualFold(have, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// GetVenue resolves a venue by id.
func (service *Service) GetVenue(id string) (Venue, error) {
	v, found := service.repo.Get(id)
	if !found {
		return Venue{}, apperr.NotFound("Venue")
	}
	return v, nil
}

// GetDetail resolves a venue together with its reviews, availability and
// booking history. Missing related rows never fail the lookup.
func (service *Service) GetDetail(id string) (Detail, error) {
	v, err := service.GetVenue(id)
	if err != nil {
		return Detail{}, err
	}

	reviews := service.reviews.ForVenue(v.ID)
	return Detail{
		Venue:         v,
		Reviews:       reviews,
		AverageRating: review.AverageRating(reviews),
		Availability:  service.slots.ForVenue(v.ID),
		Bookings:      service.bookings.ForVenue(v.ID),
	}, nil
}

// HasVenue reports whether a venue exists in the current snapshot.
func (service *Service) HasVenue(id string) bool {
	_, found := service.repo.Get(id)
	return found
}

// CreateVenue validates and stores a new venue.
func (service *Service) CreateVenue(ctx context.Context, input InsertRow) (Venue, error) {
	v := &validate.Validator{}
	v.Required(FieldName, input.Name)
	v.MaxLen(FieldName, input.Name, 200)
	v.Custom(FieldPerHour, input.PricingPerHour == nil && input.PricingPerDay == nil,
		"At least one of pricing_per_hour and pricing_per_day is required")
	if input.PricingPerHour != nil {
		v.NonNegative(FieldPerHour, *input.PricingPerHour)
	}
	if input.PricingPerDay != nil {
		v.NonNegative(FieldPerDay, *input.PricingPerDay)
	}
	v.Custom(FieldCapacity, input.Capacity < 0, "Must not be negative")
	if err := v.Err(); err != nil {
		return Venue{}, err
	}

	created, err := service.repo.Create(ctx, input)
	if err != nil {
		return Venue{}, err
	}

	service.logger.Info("venue_created", slog.String("venue_id", created.ID))
	return created, nil
}

// UpdateVenue validates and applies a partial update.
func (service *Service) UpdateVenue(ctx context.Context, id string, input UpdateRow) (Venue, error) {
	v := &validate.Validator{}
	if input.Name != nil {
		v.Required(FieldName, *input.Name)
		v.MaxLen(FieldName, *input.Name, 200)
	}
	if input.PricingPerHour != nil {
		v.NonNegative(FieldPerHour, *input.PricingPerHour)
	}
	if input.PricingPerDay != nil {
		v.NonNegative(FieldPerDay, *input.PricingPerDay)
	}
	if input.Capacity != nil {
		v.Custom(FieldCapacity, *input.Capacity < 0, "Must not be negative")
	}
	if err := v.Err(); err != nil {
		return Venue{}, err
	}

	updated, err := service.repo.Update(ctx, id, input)
	if err != nil {
		return Venue{}, err
	}

	service.logger.Info("venue_updated", slog.String("venue_id", id))
	return updated, nil
}

// DeleteVenue removes a venue.
func (service *Service) DeleteVenue(ctx context.Context, id string) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("venue_deleted", slog.String("venue_id", id))
	return nil
}

// Refresh refetches the venues snapshot.
func (service *Service) Refresh(ctx context.Context) error {
	return service.repo.Refresh(ctx)
}
