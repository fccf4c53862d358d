package booking

import (
	"context"
	"log/slog"

	"github.com/planora/api/internal/platform/apperr"
	"github.com/planora/api/internal/platform/validate"
	"github.com/planora/api/pkg/filter"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListBookings returns the snapshot filtered by status, in snapshot order.
func (service *Service) ListBookings(f Filter) []Booking {
	return filter.ByCategory(service.repo.All(), f.Status, func(b Booking) string {
		return string(b.Status)
	})
}

// GetBooking resolves a booking by id.
func (service *Service) GetBooking(id string) (Booking, error) {
	b, found := service.repo.Get(id)
	if !found {
		return Booking{}, apperr.NotFound("Booking")
	}
	return b, nil
}

// CreateBooking validates and stores a new booking.
func (service *Service) CreateBooking(ctx context.Context, input InsertRow) (Booking, error) {
	v := &validate.Validator{}
	v.Required(FieldEventID, input.EventID)
	v.Required(FieldClientID, input.ClientID)
	v.Date(FieldDate, input.Date)
	v.NonNegative(FieldAmount, input.Amount)
	if input.Status != "" {
		v.OneOf(FieldStatus, input.Status, statusNames()...)
	}
	if err := v.Err(); err != nil {
		return Booking{}, err
	}

	created, err := service.repo.Create(ctx, input)
	if err != nil {
		return Booking{}, err
	}

	service.logger.Info("booking_created",
		slog.String("booking_id", created.ID),
		slog.String("event_id", created.EventID),
	)
	return created, nil
}

// UpdateBooking validates and applies a partial update.
func (service *Service) UpdateBooking(ctx context.Context, id string, input UpdateRow) (Booking, error) {
	v := &validate.Validator{}
	if input.Date != nil {
		v.Date(FieldDate, *input.Date)
	}
	if input.Status != nil {
		v.OneOf(FieldStatus, *input.Status, statusNames()...)
	}
	if input.Amount != nil {
		v.NonNegative(FieldAmount, *input.Amount)
	}
	if err := v.Err(); err != nil {
		return Booking{}, err
	}

	updated, err := service.repo.Update(ctx, id, input)
	if err != nil {
		return Booking{}, err
	}

	service.logger.Info("booking_updated", slog.String("booking_id", id))
	return updated, nil
}

// DeleteBooking removes a booking.
func (service *Service) DeleteBooking(ctx context.Context, id string) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("booking_deleted", slog.String("booking_id", id))
	return nil
}

// Refresh refetches the bookings snapshot.
func (service *Service) Refresh(ctx context.Context) error {
	return service.repo.Refresh(ctx)
}
