package review

import (
	"context"
	"log/slog"

	"github.com/planora/api/internal/platform/apperr"
	"github.com/planora/api/internal/platform/database/schema"
	"github.com/planora/api/internal/platform/remote"
	"github.com/planora/api/internal/platform/snapshot"
)

// RemoteRepository keeps an atomically-replaced snapshot of the reviews table
// and proxies creation to the hosted data service.
type RemoteRepository struct {
	remote  *remote.Client
	reviews *snapshot.Collection[Review]
	cache   snapshot.Cache
	log     *slog.Logger
}

func NewRemoteRepository(remoteClient *remote.Client, cache snapshot.Cache, log *slog.Logger) *RemoteRepository {
	return &RemoteRepository{
		remote:  remoteClient,
		reviews: snapshot.NewCollection(schema.RefReview.Table, func(r Review) string { return r.ID }),
		cache:   cache,
		log:     log,
	}
}

func (repository *RemoteRepository) All() []Review { return repository.reviews.All() }

func (repository *RemoteRepository) ForProvider(providerID string) []Review {
	return ForProvider(repository.reviews.All(), providerID)
}

func (repository *RemoteRepository) ForVenue(venueID string) []Review {
	return ForVenue(repository.reviews.All(), venueID)
}

func (repository *RemoteRepository) Create(ctx context.Context, input InsertRow) (Review, error) {
	if repository.remote == nil {
		return Review{}, apperr.ServiceUnavailable("Mutations are disabled in demo mode")
	}

	var created Row
	if err := repository.remote.Insert(ctx, schema.RefReview.Table, input, &created); err != nil {
		return Review{}, err
	}

	// The snapshot is replaced wholesale; a failed refetch leaves the old
	// snapshot readable and the created row appears on the next cycle.
	if err := repository.Refresh(ctx); err != nil {
		repository.log.Warn("refresh_after_create_failed",
			slog.String("collection", schema.RefReview.Table), slog.Any("error", err))
	}

	return created.Domain()
}

func (repository *RemoteRepository) Refresh(ctx context.Context) error {
	if repository.remote == nil {
		return nil
	}

	err := repository.reviews.Refresh(ctx, func(ctx context.Context) ([]Review, error) {
		var rows []Row
		opts := remote.ListOptions{OrderBy: schema.RefReview.CreatedAt, Descending: true}
		if err := repository.remote.List(ctx, schema.RefReview.Table, opts, &rows); err != nil {
			return nil, err
		}
		return snapshot.Ingest(repository.log, schema.RefReview.Table, rows, Row.Domain), nil
	})
	if err != nil {
		return err
	}

	snapshot.Persist(ctx, repository.cache, repository.reviews, repository.log)
	return nil
}

func (repository *RemoteRepository) Restore(ctx context.Context) bool {
	return snapshot.Restore(ctx, repository.cache, repository.reviews, repository.log)
}

func (repository *RemoteRepository) Seed(reviews []Review) {
	repository.reviews.Replace(reviews)
}
