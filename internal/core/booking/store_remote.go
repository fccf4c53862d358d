package booking

import (
	"context"
	"log/slog"

	"github.com/planora/api/internal/platform/apperr"
	"github.com/planora/api/internal/platform/database/schema"
	"github.com/planora/api/internal/platform/remote"
	"github.com/planora/api/internal/platform/snapshot"
)

// RemoteRepository keeps an atomically-replaced snapshot of the bookings
// table and proxies mutations to the hosted data service.
type RemoteRepository struct {
	remote   *remote.Client
	bookings *snapshot.Collection[Booking]
	cache    snapshot.Cache
	log      *slog.Logger
}

func NewRemoteRepository(remoteClient *remote.Client, cache snapshot.Cache, log *slog.Logger) *RemoteRepository {
	return &RemoteRepository{
		remote:   remoteClient,
		bookings: snapshot.NewCollection(schema.RefBooking.Table, func(b Booking) string { return b.ID }),
		cache:    cache,
		log:      log,
	}
}

func (repository *RemoteRepository) All() []Booking { return repository.bookings.All() }

func (repository *RemoteRepository) Get(id string) (Booking, bool) {
	return repository.bookings.Get(id)
}

func (repository *RemoteRepository) ForClient(clientID string) []Booking {
	return ForClient(repository.bookings.All(), clientID)
}

func (repository *RemoteRepository) ForVenue(venueID string) []Booking {
	return ForVenue(repository.bookings.All(), venueID)
}

func (repository *RemoteRepository) Create(ctx context.Context, input InsertRow) (Booking, error) {
	if repository.remote == nil {
		return Booking{}, apperr.ServiceUnavailable("Mutations are disabled in demo mode")
	}

	var created Row
	if err := repository.remote.Insert(ctx, schema.RefBooking.Table, input, &created); err != nil {
		return Booking{}, err
	}

	repository.refreshAfterMutation(ctx)
	return created.Domain()
}

func (repository *RemoteRepository) Update(ctx context.Context, id string, input UpdateRow) (Booking, error) {
	if repository.remote == nil {
		return Booking{}, apperr.ServiceUnavailable("Mutations are disabled in demo mode")
	}

	var updated Row
	if err := repository.remote.Update(ctx, schema.RefBooking.Table, id, input, &updated); err != nil {
		return Booking{}, err
	}

	repository.refreshAfterMutation(ctx)
	return updated.Domain()
}

func (repository *RemoteRepository) Delete(ctx context.Context, id string) error {
	if repository.remote == nil {
		return apperr.ServiceUnavailable("Mutations are disabled in demo mode")
	}

	if err := repository.remote.Delete(ctx, schema.RefBooking.Table, id); err != nil {
		return err
	}

	repository.refreshAfterMutation(ctx)
	return nil
}

func (repository *RemoteRepository) Refresh(ctx context.Context) error {
	if repository.remote == nil {
		return nil
	}

	err := repository.bookings.Refresh(ctx, func(ctx context.Context) ([]Booking, error) {
		var rows []Row
		opts := remote.ListOptions{OrderBy: schema.RefBooking.Date}
		if err := repository.remote.List(ctx, schema.RefBooking.Table, opts, &rows); err != nil {
			return nil, err
		}
		return snapshot.Ingest(repository.log, schema.RefBooking.Table, rows, Row.Domain), nil
	})
	if err != nil {
		return err
	}

	snapshot.Persist(ctx, repository.cache, repository.bookings, repository.log)
	return nil
}

func (repository *RemoteRepository) Restore(ctx context.Context) bool {
	return snapshot.Restore(ctx, repository.cache, repository.bookings, repository.log)
}

func (repository *RemoteRepository) Seed(bookings []Booking) {
	repository.bookings.Replace(bookings)
}

// refreshAfterMutation refetches the snapshot so readers converge on the
// remote state. Failures keep the previous snapshot readable.
func (repository *RemoteRepository) refreshAfterMutation(ctx context.Context) {
	if err := repository.Refresh(ctx); err != nil {
		repository.log.Warn("refresh_after_mutation_failed",
			slog.String("collection", schema.RefBooking.Table), slog.Any("error", err))
	}
}
