// Copyright (c) 2026 Planora. All rights reserved.
// Author: dev@planora.app

package event

import "context"

// Filter narrows the event listing.
type Filter struct {
	Search string
	Type   string
	Status string
}

// Repository abstracts event, task and timeline storage.
type Repository interface {
	All() []Event
	Get(id string) (Event, bool)
	Tasks() []Task
	Timeline() []TimelineItem

	Create(ctx context.Context, row InsertRow) (Event, error)
	Update(ctx context.Context, id string, row UpdateRow) (Event, error)
	Delete(ctx context.Context, id string) error

	AssignProvider(ctx context.Context, eventID string, assignment Assignment) error
	RemoveProvider(ctx context.Context, eventID, providerID string) error

	CreateTask(ctx context.Context, row InsertTaskRow) (Task, error)
	UpdateTask(ctx context.Context, id string, row UpdateTaskRow) (Task, error)
	CreateTimelineItem(ctx context.Context, row InsertTimelineRow) (TimelineItem, error)

	Refresh(ctx context.Context) error
}
