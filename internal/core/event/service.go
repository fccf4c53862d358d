// Copyright (c) 2026 Planora. All rights reserved.
// Author: dev@planora.app

package event

import (
	"context"
	"log/slog"

	"github.com/planora/api/internal/platform/apperr"
	"github.com/planora/api/internal/platform/validate"
	"github.com/planora/api/pkg/filter"

	"github.com/planora/api/internal/core/client"
	"github.com/planora/api/internal/core/provider"
	"github.com/planora/api/internal/core/venue"
)

// ClientDirectory exposes the client lookups needed for event details.
type ClientDirectory interface {
	Get(id string) (client.Client, bool)
}

// VenueDirectory exposes the venue lookups needed for event details.
type VenueDirectory interface {
	Get(id string) (venue.Venue, bool)
}

// ProviderDirectory exposes the provider lookups needed for event details.
type ProviderDirectory interface {
	Get(id string) (provider.ServiceProvider, bool)
}

type Service struct {
	repo      Repository
	clients   ClientDirectory
	venues    VenueDirectory
	providers ProviderDirectory
	logger    *slog.Logger
}

func NewService(repo Repository, clients ClientDirectory, venues VenueDirectory, providers ProviderDirectory, logger *slog.Logger) *Service {
	return &Service{repo: repo, clients: clients, venues: venues, providers: providers, logger: logger}
}

// ListEvents narrows the snapshot by free-text search across the title,
// then by type and status. All filters compose with AND and keep
// snapshot order.
func (service *Service) ListEvents(f Filter) []Event {
	events := filter.ByText(service.repo.All(), f.Search,
		func(e Event) string { return e.Title },
	)
	events = filter.ByCategory(events, f.Type, func(e Event) string { return string(e.Type) })
	return filter.ByCategory(events, f.Status, func(e Event) string { return string(e.Status) })
}

// GetEvent resolves an event by id.
func (service *Service) GetEvent(id string) (Event, error) {
	e, found := service.repo.Get(id)
	if !found {
		return Event{}, apperr.NotFound("Event")
	}
	return e, nil
}

// GetDetail resolves an event and joins every related entity. Dangling
// references degrade to nil fields or unfound provider slots; only a
// missing event itself is an error.
func (service *Service) GetDetail(id string) (Detail, error) {
	e, err := service.GetEvent(id)
	if err != nil {
		return Detail{}, err
	}

	return BuildDetail(e,
		service.clients.Get,
		service.venues.Get,
		service.providers.Get,
		service.repo.Tasks(),
		service.repo.Timeline(),
	), nil
}

// CreateEvent validates and stores a new event.
func (service *Service) CreateEvent(ctx context.Context, input InsertRow) (Event, error) {
	v := &validate.Validator{}
	v.Required(FieldTitle, input.Title)
	v.MaxLen(FieldTitle, input.Title, 200)
	v.OneOf(FieldType, input.Type, typeNames()...)
	v.Required(FieldClientID, input.ClientID)
	v.Date(FieldDate, input.Date)
	v.Clock(FieldStartTime, input.StartTime)
	v.Clock(FieldEndTime, input.EndTime)
	v.Custom(FieldEndTime, input.EndTime <= input.StartTime, "Must be after start_time")
	v.Custom(FieldGuestCount, input.GuestCount < 0, "Must not be negative")
	v.NonNegative(FieldBudget, input.Budget)
	if input.Status != "" {
		v.OneOf(FieldStatus, input.Status, statusNames()...)
	}
	if err := v.Err(); err != nil {
		return Event{}, err
	}

	if _, found := service.clients.Get(input.ClientID); !found {
		return Event{}, apperr.Unprocessable("Client does not exist")
	}

	created, err := service.repo.Create(ctx, input)
	if err != nil {
		return Event{}, err
	}

	service.logger.Info("event_created",
		slog.String("event_id", created.ID),
		slog.String("type", string(created.Type)),
	)
	return created, nil
}

// UpdateEvent validates and applies a partial update.
func (service *Service) UpdateEvent(ctx context.Context, id string, input UpdateRow) (Event, error) {
	v := &validate.Validator{}
	if input.Title != nil {
		v.Required(FieldTitle, *input.Title)
		v.MaxLen(FieldTitle, *input.Title, 200)
	}
	if input.Type != nil {
		v.OneOf(FieldType, *input.Type, typeNames()...)
	}
	if input.Date != nil {
		v.Date(FieldDate, *input.Date)
	}
	if input.StartTime != nil {
		v.Clock(FieldStartTime, *input.StartTime)
	}
	if input.EndTime != nil {
		v.Clock(FieldEndTime, *input.EndTime)
	}
	if input.StartTime != nil && input.EndTime != nil {
		v.Custom(FieldEndTime, *input.EndTime <= *input.StartTime, "Must be after start_time")
	}
	if input.GuestCount != nil {
		v.Custom(FieldGuestCount, *input.GuestCount < 0, "Must not be negative")
	}
	if input.Budget != nil {
		v.NonNegative(FieldBudget, *input.Budget)
	}
	if input.Status != nil {
		v.OneOf(FieldStatus, *input.Status, statusNames()...)
	}
	if err := v.Err(); err != nil {
		return Event{}, err
	}

	updated, err := service.repo.Update(ctx, id, input)
	if err != nil {
		return Event{}, err
	}

	service.logger.Info("event_updated", slog.String("event_id", id))
	return updated, nil
}

// DeleteEvent removes an event.
func (service *Service) DeleteEvent(ctx context.Context, id string) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("event_deleted", slog.String("event_id", id))
	return nil
}

// AssignProvider attaches a provider to an event. Both sides of the link
// must exist in the current snapshots.
func (service *Service) AssignProvider(ctx context.Context, eventID string, assignment Assignment) error {
	v := &validate.Validator{}
	v.Required("provider_id", assignment.ProviderID)
	v.Required("service_type", assignment.ServiceType)
	if err := v.Err(); err != nil {
		return err
	}

	if _, found := service.repo.Get(eventID); !found {
		return apperr.NotFound("Event")
	}
	if _, found := service.providers.Get(assignment.ProviderID); !found {
		return apperr.Unprocessable("Service provider does not exist")
	}

	if err := service.repo.AssignProvider(ctx, eventID, assignment); err != nil {
		return err
	}

	service.logger.Info("provider_assigned",
		slog.String("event_id", eventID),
		slog.String("provider_id", assignment.ProviderID),
	)
	return nil
}

// RemoveProvider detaches a provider from an event.
func (service *Service) RemoveProvider(ctx context.Context, eventID, providerID string) error {
	if _, found := service.repo.Get(eventID); !found {
		return apperr.NotFound("Event")
	}

	if err := service.repo.RemoveProvider(ctx, eventID, providerID); err != nil {
		return err
	}

	service.logger.Info("provider_removed",
		slog.String("event_id", eventID),
		slog.String("provider_id", providerID),
	)
	return nil
}

// CreateTask validates and stores a task against an existing event.
func (service *Service) CreateTask(ctx context.Context, input InsertTaskRow) (Task, error) {
	v := &validate.Validator{}
	v.Required("event_id", input.EventID)
	v.Required(FieldTitle, input.Title)
	v.Date("due_date", input.DueDate)
	if err := v.Err(); err != nil {
		return Task{}, err
	}

	if _, found := service.repo.Get(input.EventID); !found {
		return Task{}, apperr.Unprocessable("Event does not exist")
	}

	created, err := service.repo.CreateTask(ctx, input)
	if err != nil {
		return Task{}, err
	}

	service.logger.Info("task_created",
		slog.String("task_id", created.ID),
		slog.String("event_id", created.EventID),
	)
	return created, nil
}

// UpdateTask validates and applies a partial update, typically toggling
// completion.
func (service *Service) UpdateTask(ctx context.Context, id string, input UpdateTaskRow) (Task, error) {
	v := &validate.Validator{}
	if input.Title != nil {
		v.Required(FieldTitle, *input.Title)
	}
	if input.DueDate != nil {
		v.Date("due_date", *input.DueDate)
	}
	if err := v.Err(); err != nil {
		return Task{}, err
	}

	updated, err := service.repo.UpdateTask(ctx, id, input)
	if err != nil {
		return Task{}, err
	}

	service.logger.Info("task_updated", slog.String("task_id", id))
	return updated, nil
}

// CreateTimelineItem validates and stores a run sheet entry against an
// existing event.
func (service *Service) CreateTimelineItem(ctx context.Context, input InsertTimelineRow) (TimelineItem, error) {
	v := &validate.Validator{}
	v.Required("event_id", input.EventID)
	v.Required(FieldTitle, input.Title)
	v.Date(FieldDate, input.Date)
	v.Clock("time", input.Time)
	if err := v.Err(); err != nil {
		return TimelineItem{}, err
	}

	if _, found := service.repo.Get(input.EventID); !found {
		return TimelineItem{}, apperr.Unprocessable("Event does not exist")
	}

	created, err := service.repo.CreateTimelineItem(ctx, input)
	if err != nil {
		return TimelineItem{}, err
	}

	service.logger.Info("timeline_item_created",
		slog.String("timeline_item_id", created.ID),
		slog.String("event_id", created.EventID),
	)
	return created, nil
}

// Refresh refetches the event snapshots.
func (service *Service) Refresh(ctx context.Context) error {
	return service.repo.Refresh(ctx)
}
