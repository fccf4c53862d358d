package client

import (
	"context"
	"log/slog"

	"github.com/planora/api/internal/platform/apperr"
	"github.com/planora/api/internal/platform/validate"
	"github.com/planora/api/pkg/filter"

	"github.com/planora/api/internal/core/booking"
)

// BookingDirectory exposes the booking history needed for client details.
type BookingDirectory interface {
	ForClient(clientID string) []booking.Booking
}

// Detail is a client joined with its communication and booking history.
type Detail struct {
	Client   Client             `json:"client"`
	Logs     []CommunicationLog `json:"communication_logs"`
	Bookings []booking.Booking  `json:"bookings"`
}

type Service struct {
	repo     Repository
	bookings BookingDirectory
	logger   *slog.Logger
}

func NewService(repo Repository, bookings BookingDirectory, logger *slog.Logger) *Service {
	return &Service{repo: repo, bookings: bookings, logger: logger}
}

// ListClients returns the snapshot narrowed by a free-text search across
// name and email, in snapshot order.
func (service *Service) ListClients(search string) []Client {
	return filter.ByText(service.repo.All(), search,
		func(c Client) string { return c.Name },
		func(c Client) string { return c.Email },
	)
}

// GetClient resolves a client by id.
func (service *Service) GetClient(id string) (Client, error) {
	c, found := service.repo.Get(id)
	if !found {
		return Client{}, apperr.NotFound("Client")
	}
	return c, nil
}

// GetDetail resolves a client together with its communication logs and
// booking history. Missing related rows never fail the lookup.
func (service *Service) GetDetail(id string) (Detail, error) {
	c, err := service.GetClient(id)
	if err != nil {
		return Detail{}, err
	}

	return Detail{
		Client:   c,
		Logs:     LogsFor(service.repo.Logs(), c.ID),
		Bookings: service.bookings.ForClient(c.ID),
	}, nil
}

// CreateClient validates and stores a new client.
func (service *Service) CreateClient(ctx context.Context, input InsertRow) (Client, error) {
	v := &validate.Validator{}
	v.Required(FieldName, input.Name)
	v.Email(FieldEmail, input.Email)
	v.MaxLen(FieldName, input.Name, 200)
	if err := v.Err(); err != nil {
		return Client{}, err
	}

	created, err := service.repo.Create(ctx, input)
	if err != nil {
		return Client{}, err
	}

	service.logger.Info("client_created", slog.String("client_id", created.ID))
	return created, nil
}

// UpdateClient validates and applies a partial update.
func (service *Service) UpdateClient(ctx context.Context, id string, input UpdateRow) (Client, error) {
	v := &validate.Validator{}
	if input.Name != nil {
		v.Required(FieldName, *input.Name)
		v.MaxLen(FieldName, *input.Name, 200)
	}
	if input.Email != nil {
		v.Email(FieldEmail, *input.Email)
	}
	if err := v.Err(); err != nil {
		return Client{}, err
	}

	updated, err := service.repo.Update(ctx, id, input)
	if err != nil {
		return Client{}, err
	}

	service.logger.Info("client_updated", slog.String("client_id", id))
	return updated, nil
}

// DeleteClient removes a client.
func (service *Service) DeleteClient(ctx context.Context, id string) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("client_deleted", slog.String("client_id", id))
	return nil
}

// RecordCommunication validates and stores a communication log entry. The
// client must exist in the current snapshot.
func (service *Service) RecordCommunication(ctx context.Context, input InsertLogRow) (CommunicationLog, error) {
	v := &validate.Validator{}
	v.Required("client_id", input.ClientID)
	v.Date("date", input.Date)
	v.OneOf("type", input.Type, commTypeNames()...)
	v.Required("summary", input.Summary)
	if err := v.Err(); err != nil {
		return CommunicationLog{}, err
	}

	if _, found := service.repo.Get(input.ClientID); !found {
		return CommunicationLog{}, apperr.Unprocessable("Client does not exist")
	}

	created, err := service.repo.CreateLog(ctx, input)
	if err != nil {
		return CommunicationLog{}, err
	}

	service.logger.Info("communication_recorded",
		slog.String("client_id", created.ClientID),
		slog.String("type", string(created.Type)),
	)
	return created, nil
}

// ListCommunications returns one client's communication history.
func (service *Service) ListCommunications(clientID string) ([]CommunicationLog, error) {
	if _, found := service.repo.Get(clientID); !found {
		return nil, apperr.NotFound("Client")
	}
	return LogsFor(service.repo.Logs(), clientID), nil
}

// Refresh refetches the client snapshots.
func (service *Service) Refresh(ctx context.Context) error {
	return service.repo.Refresh(ctx)
}
