package event

import (
	"context"
	"log/slog"

	"github.com/planora/api/internal/platform/apperr"
	"github.com/planora/api/internal/platform/database/schema"
	"github.com/planora/api/internal/platform/remote"
	"github.com/planora/api/internal/platform/snapshot"
)

// RemoteRepository keeps atomically-replaced snapshots of the events,
// tasks and timeline_items tables and proxies mutations to the hosted
// data service. Provider assignments from the event_providers join table
// are folded into the event snapshot on refresh.
type RemoteRepository struct {
	remote   *remote.Client
	events   *snapshot.Collection[Event]
	tasks    *snapshot.Collection[Task]
	timeline *snapshot.Collection[TimelineItem]
	cache    snapshot.Cache
	log      *slog.Logger
}

func NewRemoteRepository(remoteClient *remote.Client, cache snapshot.Cache, log *slog.Logger) *RemoteRepository {
	return &RemoteRepository{
		remote:   remoteClient,
		events:   snapshot.NewCollection(schema.RefEvent.Table, func(e Event) string { return e.ID }),
		tasks:    snapshot.NewCollection(schema.RefTask.Table, func(t Task) string { return t.ID }),
		timeline: snapshot.NewCollection(schema.RefTimelineItem.Table, func(i TimelineItem) string { return i.ID }),
		cache:    cache,
		log:      log,
	}
}

func (repository *RemoteRepository) All() []Event { return repository.events.All() }

func (repository *RemoteRepository) Get(id string) (Event, bool) {
	return repository.events.Get(id)
}

func (repository *RemoteRepository) Tasks() []Task { return repository.tasks.All() }

func (repository *RemoteRepository) Timeline() []TimelineItem { return repository.timeline.All() }

func (repository *RemoteRepository) Create(ctx context.Context, input InsertRow) (Event, error) {
	if repository.remote == nil {
		return Event{}, apperr.ServiceUnavailable("Mutations are disabled in demo mode")
	}

	var created Row
	if err := repository.remote.Insert(ctx, schema.RefEvent.Table, input, &created); err != nil {
		return Event{}, err
	}

	repository.refreshAfterMutation(ctx)
	return created.Domain()
}

func (repository *RemoteRepository) Update(ctx context.Context, id string, input UpdateRow) (Event, error) {
	if repository.remote == nil {
		return Event{}, apperr.ServiceUnavailable("Mutations are disabled in demo mode")
	}

	var updated Row
	if err := repository.remote.Update(ctx, schema.RefEvent.Table, id, input, &updated); err != nil {
		return Event{}, err
	}

	repository.refreshAfterMutation(ctx)
	return updated.Domain()
}

func (repository *RemoteRepository) Delete(ctx context.Context, id string) error {
	if repository.remote == nil {
		return apperr.ServiceUnavailable("Mutations are disabled in demo mode")
	}

	if err := repository.remote.Delete(ctx, schema.RefEvent.Table, id); err != nil {
		return err
	}

	repository.refreshAfterMutation(ctx)
	return nil
}

func (repository *RemoteRepository) AssignProvider(ctx context.Context, eventID string, assignment Assignment) error {
	if repository.remote == nil {
		return apperr.ServiceUnavailable("Mutations are disabled in demo mode")
	}

	record := AssignmentRow{
		EventID:     eventID,
		ProviderID:  assignment.ProviderID,
		ServiceType: assignment.ServiceType,
	}
	var created AssignmentRow
	if err := repository.remote.Insert(ctx, schema.RefEventProvider.Table, record, &created); err != nil {
		return err
	}

	repository.refreshAfterMutation(ctx)
	return nil
}

func (repository *RemoteRepository) RemoveProvider(ctx context.Context, eventID, providerID string) error {
	if repository.remote == nil {
		return apperr.ServiceUnavailable("Mutations are disabled in demo mode")
	}

	err := repository.remote.DeleteWhere(ctx, schema.RefEventProvider.Table, map[string]string{
		schema.RefEventProvider.EventID:    eventID,
		schema.RefEventProvider.ProviderID: providerID,
	})
	if err != nil {
		return err
	}

	repository.refreshAfterMutation(ctx)
	return nil
}

func (repository *RemoteRepository) CreateTask(ctx context.Context, input InsertTaskRow) (Task, error) {
	if repository.remote == nil {
		return Task{}, apperr.ServiceUnavailable("Mutations are disabled in demo mode")
	}

	var created TaskRow
	if err := repository.remote.Insert(ctx, schema.RefTask.Table, input, &created); err != nil {
		return Task{}, err
	}

	repository.refreshAfterMutation(ctx)
	return created.Domain()
}

func (repository *RemoteRepository) UpdateTask(ctx context.Context, id string, input UpdateTaskRow) (Task, error) {
	if repository.remote == nil {
		return Task{}, apperr.ServiceUnavailable("Mutations are disabled in demo mode")
	}

	var updated TaskRow
	if err := repository.remote.Update(ctx, schema.RefTask.Table, id, input, &updated); err != nil {
		return Task{}, err
	}

	repository.refreshAfterMutation(ctx)
	return updated.Domain()
}

func (repository *RemoteRepository) CreateTimelineItem(ctx context.Context, input InsertTimelineRow) (TimelineItem, error) {
	if repository.remote == nil {
		return TimelineItem{}, apperr.ServiceUnavailable("Mutations are disabled in demo mode")
	}

	var created TimelineRow
	if err := repository.remote.Insert(ctx, schema.RefTimelineItem.Table, input, &created); err != nil {
		return TimelineItem{}, err
	}

	repository.refreshAfterMutation(ctx)
	return created.Domain()
}

func (repository *RemoteRepository) Refresh(ctx context.Context) error {
	if repository.remote == nil {
		return nil
	}

	err := repository.events.Refresh(ctx, func(ctx context.Context) ([]Event, error) {
		var rows []Row
		opts := remote.ListOptions{OrderBy: schema.RefEvent.Date}
		if err := repository.remote.List(ctx, schema.RefEvent.Table, opts, &rows); err != nil {
			return nil, err
		}

		var assignmentRows []AssignmentRow
		assignmentOpts := remote.ListOptions{OrderBy: schema.RefEventProvider.CreatedAt}
		if err := repository.remote.List(ctx, schema.RefEventProvider.Table, assignmentOpts, &assignmentRows); err != nil {
			return nil, err
		}

		events := snapshot.Ingest(repository.log, schema.RefEvent.Table, rows, Row.Domain)
		return AttachAssignments(events, assignmentRows), nil
	})
	if err != nil {
		return err
	}

	err = repository.tasks.Refresh(ctx, func(ctx context.Context) ([]Task, error) {
		var rows []TaskRow
		opts := remote.ListOptions{OrderBy: schema.RefTask.DueDate}
		if err := repository.remote.List(ctx, schema.RefTask.Table, opts, &rows); err != nil {
			return nil, err
		}
		return snapshot.Ingest(repository.log, schema.RefTask.Table, rows, TaskRow.Domain), nil
	})
	if err != nil {
		return err
	}

	err = repository.timeline.Refresh(ctx, func(ctx context.Context) ([]TimelineItem, error) {
		var rows []TimelineRow
		opts := remote.ListOptions{OrderBy: schema.RefTimelineItem.Date}
		if err := repository.remote.List(ctx, schema.RefTimelineItem.Table, opts, &rows); err != nil {
			return nil, err
		}
		return snapshot.Ingest(repository.log, schema.RefTimelineItem.Table, rows, TimelineRow.Domain), nil
	})
	if err != nil {
		return err
	}

	snapshot.Persist(ctx, repository.cache, repository.events, repository.log)
	snapshot.Persist(ctx, repository.cache, repository.tasks, repository.log)
	snapshot.Persist(ctx, repository.cache, repository.timeline, repository.log)
	return nil
}

func (repository *RemoteRepository) Restore(ctx context.Context) bool {
	restored := snapshot.Restore(ctx, repository.cache, repository.events, repository.log)
	restored = snapshot.Restore(ctx, repository.cache, repository.tasks, repository.log) && restored
	return snapshot.Restore(ctx, repository.cache, repository.timeline, repository.log) && restored
}

func (repository *RemoteRepository) Seed(events []Event, tasks []Task, timeline []TimelineItem) {
	repository.events.Replace(events)
	repository.tasks.Replace(tasks)
	repository.timeline.Replace(timeline)
}

func (repository *RemoteRepository) refreshAfterMutation(ctx context.Context) {
	if err := repository.Refresh(ctx); err != nil {
		repository.log.Warn("refresh_after_mutation_failed",
			slog.String("collection", schema.RefEvent.Table), slog.Any("error", err))
	}
}
