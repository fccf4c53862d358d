package availability

import (
	"context"
	"log/slog"

	"github.com/planora/api/internal/platform/database/schema"
	"github.com/planora/api/internal/platform/remote"
	"github.com/planora/api/internal/platform/snapshot"
)

// RemoteRepository keeps an atomically-replaced snapshot of the
// availability_slots table, refetched wholesale from the hosted data service.
type RemoteRepository struct {
	remote *remote.Client
	slots  *snapshot.Collection[Slot]
	cache  snapshot.Cache
	log    *slog.Logger
}

// NewRemoteRepository builds the repository. remoteClient may be nil in demo
// mode, in which case the snapshot is populated via [RemoteRepository.Seed].
func NewRemoteRepository(remoteClient *remote.Client, cache snapshot.Cache, log *slog.Logger) *RemoteRepository {
	return &RemoteRepository{
		remote: remoteClient,
		slots:  snapshot.NewCollection(schema.RefAvailabilitySlot.Table, func(s Slot) string { return s.ID }),
		cache:  cache,
		log:    log,
	}
}

func (repository *RemoteRepository) All() []Slot { return repository.slots.All() }

func (repository *RemoteRepository) ForProvider(providerID string) []Slot {
	return ForProvider(repository.slots.All(), providerID)
}

func (repository *RemoteRepository) ForVenue(venueID string) []Slot {
	return ForVenue(repository.slots.All(), venueID)
}

// Refresh refetches the whole table and atomically republishes the snapshot.
func (repository *RemoteRepository) Refresh(ctx context.Context) error {
	if repository.remote == nil {
		return nil
	}

	err := repository.slots.Refresh(ctx, func(ctx context.Context) ([]Slot, error) {
		var rows []Row
		opts := remote.ListOptions{OrderBy: schema.RefAvailabilitySlot.Date}
		if err := repository.remote.List(ctx, schema.RefAvailabilitySlot.Table, opts, &rows); err != nil {
			return nil, err
		}
		return snapshot.Ingest(repository.log, schema.RefAvailabilitySlot.Table, rows, Row.Domain), nil
	})
	if err != nil {
		return err
	}

	snapshot.Persist(ctx, repository.cache, repository.slots, repository.log)
	return nil
}

// Restore loads the last persisted snapshot, if any. Used at startup before
// the first remote fetch completes.
func (repository *RemoteRepository) Restore(ctx context.Context) bool {
	return snapshot.Restore(ctx, repository.cache, repository.slots, repository.log)
}

// Seed replaces the snapshot with a fixed dataset (demo mode and tests).
func (repository *RemoteRepository) Seed(slots []Slot) {
	repository.slots.Replace(slots)
}
