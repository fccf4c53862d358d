package venue

import (
	"context"
	"log/slog"

	"github.com/planora/api/internal/platform/apperr"
	"github.com/planora/api/internal/platform/database/schema"
	"github.com/planora/api/internal/platform/remote"
	"github.com/planora/api/internal/platform/snapshot"
)

// RemoteRepository keeps an atomically-replaced snapshot of the venues
// table and proxies mutations to the hosted data service.
type RemoteRepository struct {
	remote *remote.Client
	venues *snapshot.Collection[Venue]
	cache  snapshot.Cache
	log    *slog.Logger
}

func NewRemoteRepository(remoteClient *remote.Client, cache snapshot.Cache, log *slog.Logger) *RemoteRepository {
	return &RemoteRepository{
		remote: remoteClient,
		venues: snapshot.NewCollection(schema.RefVenue.Table, func(v Venue) string { return v.ID }),
		cache:  cache,
		log:    log,
	}
}

func (repository *RemoteRepository) All() []Venue { return repository.venues.All() }

func (repository *RemoteRepository) Get(id string) (Venue, bool) {
	return repository.venues.Get(id)
}

func (repository *RemoteRepository) Create(ctx context.Context, input InsertRow) (Venue, error) {
	if repository.remote == nil {
		return Venue{}, apperr.ServiceUnavailable("Mutations are disabled in demo mode")
	}

	var created Row
	if err := repository.remote.Insert(ctx, schema.RefVenue.Table, input, &created); err != nil {
		return Venue{}, err
	}

	repository.refreshAfterMutation(ctx)
	return created.Domain()
}

func (repository *RemoteRepository) Update(ctx context.Context, id string, input UpdateRow) (Venue, error) {
	if repository.remote == nil {
		return Venue{}, apperr.ServiceUnavailable("Mutations are disabled in demo mode")
	}

	var updated Row
	if err := repository.remote.Update(ctx, schema.RefVenue.Table, id, input, &updated); err != nil {
		return Venue{}, err
	}

	repository.refreshAfterMutation(ctx)
	return updated.Domain()
}

func (repository *RemoteRepository) Delete(ctx context.Context, id string) error {
	if repository.remote == nil {
		return apperr.ServiceUnavailable("Mutations are disabled in demo mode")
	}

	if err := repository.remote.Delete(ctx, schema.RefVenue.Table, id); err != nil {
		return err
	}

	repository.refreshAfterMutation(ctx)
	return nil
}

func (repository *RemoteRepository) Refresh(ctx context.Context) error {
	if repository.remote == nil {
		return nil
	}

	err := repository.venues.Refresh(ctx, func(ctx context.Context) ([]Venue, error) {
		var rows []Row
		opts := remote.ListOptions{OrderBy: schema.RefVenue.Name}
		if err := repository.remote.List(ctx, schema.RefVenue.Table, opts, &rows); err != nil {
			return nil, err
		}
		return snapshot.Ingest(repository.log, schema.RefVenue.Table, rows, Row.Domain), nil
	})
	if err != nil {
		return err
	}

	snapshot.Persist(ctx, repository.cache, repository.venues, repository.log)
	return nil
}

func (repository *RemoteRepository) Restore(ctx context.Context) bool {
	return snapshot.Restore(ctx, repository.cache, repository.venues, repository.log)
}

func (repository *RemoteRepository) Seed(venues []Venue) {
	repository.venues.Replace(venues)
}

func (repository *RemoteRepository) refreshAfterMutation(ctx context.Context) {
	if err := repository.Refresh(ctx); err != nil {
		repository.log.Warn("refresh_after_mutation_failed",
			slog.String("collection", schema.RefVenue.Table), slog.Any("error", err))
	}
}
