package client

import (
	"context"
	"log/slog"

	"github.com/planora/api/internal/platform/apperr"
	"github.com/planora/api/internal/platform/database/schema"
	"github.com/planora/api/internal/platform/remote"
	"github.com/planora/api/internal/platform/snapshot"
)

// RemoteRepository keeps atomically-replaced snapshots of the clients and
// communication_logs tables and proxies mutations to the hosted data service.
type RemoteRepository struct {
	remote  *remote.Client
	clients *snapshot.Collection[Client]
	logs    *snapshot.Collection[CommunicationLog]
	cache   snapshot.Cache
	log     *slog.Logger
}

func NewRemoteRepository(remoteClient *remote.Client, cache snapshot.Cache, log *slog.Logger) *RemoteRepository {
	return &RemoteRepository{
		remote:  remoteClient,
		clients: snapshot.NewCollection(schema.RefClient.Table, func(c Client) string { return c.ID }),
		logs:    snapshot.NewCollection(schema.RefCommunicationLog.Table, func(l CommunicationLog) string { return l.ID }),
		cache:   cache,
		log:     log,
	}
}

func (repository *RemoteRepository) All() []Client { return repository.clients.All() }

func (repository *RemoteRepository) Get(id string) (Client, bool) {
	return repository.clients.Get(id)
}

func (repository *RemoteRepository) Logs() []CommunicationLog { return repository.logs.All() }

func (repository *RemoteRepository) Create(ctx context.Context, input InsertRow) (Client, error) {
	if repository.remote == nil {
		return Client{}, apperr.ServiceUnavailable("Mutations are disabled in demo mode")
	}

	var created Row
	if err := repository.remote.Insert(ctx, schema.RefClient.Table, input, &created); err != nil {
		return Client{}, err
	}

	repository.refreshAfterMutation(ctx)
	return created.Domain()
}

func (repository *RemoteRepository) Update(ctx context.Context, id string, input UpdateRow) (Client, error) {
	if repository.remote == nil {
		return Client{}, apperr.ServiceUnavailable("Mutations are disabled in demo mode")
	}

	var updated Row
	if err := repository.remote.Update(ctx, schema.RefClient.Table, id, input, &updated); err != nil {
		return Client{}, err
	}

	repository.refreshAfterMutation(ctx)
	return updated.Domain()
}

func (repository *RemoteRepository) Delete(ctx context.Context, id string) error {
	if repository.remote == nil {
		return apperr.ServiceUnavailable("Mutations are disabled in demo mode")
	}

	if err := repository.remote.Delete(ctx, schema.RefClient.Table, id); err != nil {
		return err
	}

	repository.refreshAfterMutation(ctx)
	return nil
}

func (repository *RemoteRepository) CreateLog(ctx context.Context, input InsertLogRow) (CommunicationLog, error) {
	if repository.remote == nil {
		return CommunicationLog{}, apperr.ServiceUnavailable("Mutations are disabled in demo mode")
	}

	var created LogRow
	if err := repository.remote.Insert(ctx, schema.RefCommunicationLog.Table, input, &created); err != nil {
		return CommunicationLog{}, err
	}

	repository.refreshAfterMutation(ctx)
	return created.Domain()
}

func (repository *RemoteRepository) Refresh(ctx context.Context) error {
	if repository.remote == nil {
		return nil
	}

	err := repository.clients.Refresh(ctx, func(ctx context.Context) ([]Client, error) {
		var rows []Row
		opts := remote.ListOptions{OrderBy: schema.RefClient.CreatedAt, Descending: true}
		if err := repository.remote.List(ctx, schema.RefClient.Table, opts, &rows); err != nil {
			return nil, err
		}
		return snapshot.Ingest(repository.log, schema.RefClient.Table, rows, Row.Domain), nil
	})
	if err != nil {
		return err
	}

	err = repository.logs.Refresh(ctx, func(ctx context.Context) ([]CommunicationLog, error) {
		var rows []LogRow
		opts := remote.ListOptions{OrderBy: schema.RefCommunicationLog.Date, Descending: true}
		if err := repository.remote.List(ctx, schema.RefCommunicationLog.Table, opts, &rows); err != nil {
			return nil, err
		}
		return snapshot.Ingest(repository.log, schema.RefCommunicationLog.Table, rows, LogRow.Domain), nil
	})
	if err != nil {
		return err
	}

	snapshot.Persist(ctx, repository.cache, repository.clients, repository.log)
	snapshot.Persist(ctx, repository.cache, repository.logs, repository.log)
	return nil
}

func (repository *RemoteRepository) Restore(ctx context.Context) bool {
	restored := snapshot.Restore(ctx, repository.cache, repository.clients, repository.log)
	return snapshot.Restore(ctx, repository.cache, repository.logs, repository.log) && restored
}

func (repository *RemoteRepository) Seed(clients []Client, logs []CommunicationLog) {
	repository.clients.Replace(clients)
	repository.logs.Replace(logs)
}

func (repository *RemoteRepository) refreshAfterMutation(ctx context.Context) {
	if err := repository.Refresh(ctx); err != nil {
		repository.log.Warn("refresh_after_mutation_failed",
			slog.String("collection", schema.RefClient.Table), slog.Any("error", err))
	}
}
