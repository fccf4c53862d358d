package provider

import (
	"context"
	"log/slog"

	"github.com/planora/api/internal/platform/apperr"
	"github.com/planora/api/internal/platform/database/schema"
	"github.com/planora/api/internal/platform/remote"
	"github.com/planora/api/internal/platform/snapshot"
)

// RemoteRepository keeps an atomically-replaced snapshot of the
// service_providers table and proxies mutations to the hosted data service.
type RemoteRepository struct {
	remote    *remote.Client
	providers *snapshot.Collection[ServiceProvider]
	cache     snapshot.Cache
	log       *slog.Logger
}

func NewRemoteRepository(remoteClient *remote.Client, cache snapshot.Cache, log *slog.Logger) *RemoteRepository {
	return &RemoteRepository{
		remote:    remoteClient,
		providers: snapshot.NewCollection(schema.RefServiceProvider.Table, func(p ServiceProvider) string { return p.ID }),
		cache:     cache,
		log:       log,
	}
}

func (repository *RemoteRepository) All() []ServiceProvider { return repository.providers.All() }

func (repository *RemoteRepository) Get(id string) (ServiceProvider, bool) {
	return repository.providers.Get(id)
}

func (repository *RemoteRepository) Create(ctx context.Context, input InsertRow) (ServiceProvider, error) {
	if repository.remote == nil {
		return ServiceProvider{}, apperr.ServiceUnavailable("Mutations are disabled in demo mode")
	}

	var created Row
	if err := repository.remote.Insert(ctx, schema.RefServiceProvider.Table, input, &created); err != nil {
		return ServiceProvider{}, err
	}

	repository.refreshAfterMutation(ctx)
	return created.Domain()
}

func (repository *RemoteRepository) Update(ctx context.Context, id string, input UpdateRow) (ServiceProvider, error) {
	if repository.remote == nil {
		return ServiceProvider{}, apperr.ServiceUnavailable("Mutations are disabled in demo mode")
	}

	var updated Row
	if err := repository.remote.Update(ctx, schema.RefServiceProvider.Table, id, input, &updated); err != nil {
		return ServiceProvider{}, err
	}

	repository.refreshAfterMutation(ctx)
	return updated.Domain()
}

func (repository *RemoteRepository) Delete(ctx context.Context, id string) error {
	if repository.remote == nil {
		return apperr.ServiceUnavailable("Mutations are disabled in demo mode")
	}

	if err := repository.remote.Delete(ctx, schema.RefServiceProvider.Table, id); err != nil {
		return err
	}

	repository.refreshAfterMutation(ctx)
	return nil
}

func (repository *RemoteRepository) Refresh(ctx context.Context) error {
	if repository.remote == nil {
		return nil
	}

	err := repository.providers.Refresh(ctx, func(ctx context.Context) ([]ServiceProvider, error) {
		var rows []Row
		opts := remote.ListOptions{OrderBy: schema.RefServiceProvider.Name}
		if err := repository.remote.List(ctx, schema.RefServiceProvider.Table, opts, &rows); err != nil {
			return nil, err
		}
		return snapshot.Ingest(repository.log, schema.RefServiceProvider.Table, rows, Row.Domain), nil
	})
	if err != nil {
		return err
	}

	snapshot.Persist(ctx, repository.cache, repository.providers, repository.log)
	return nil
}

func (repository *RemoteRepository) Restore(ctx context.Context) bool {
	return snapshot.Restore(ctx, repository.cache, repository.providers, repository.log)
}

func (repository *RemoteRepository) Seed(providers []ServiceProvider) {
	repository.providers.Replace(providers)
}

func (repository *RemoteRepository) refreshAfterMutation(ctx context.Context) {
	if err := repository.Refresh(ctx); err != nil {
		repository.log.Warn("refresh_after_mutation_failed",
			slog.String("collection", schema.RefServiceProvider.Table), slog.Any("error", err))
	}
}
