// Copyright (c) 2026 Planora. All rights reserved.
// Author: dev@planora.app

package event

import (
	"time"

	"github.com/planora/api/internal/platform/validate"
	"github.com/planora/api/pkg/convert"
	"github.com/planora/api/pkg/pointer"
	"github.com/planora/api/pkg/slice"
)

// Task is a to-do attached to an event.
type Task struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     string    `json:"due_date"`
	Completed   bool      `json:"completed"`
	AssignedTo  string    `json:"assigned_to,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TaskRow is the flattened wire shape of the tasks table.
type TaskRow struct {
	ID          string  `json:"id"`
	EventID     string  `json:"event_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     string  `json:"due_date"`
	Completed   *bool   `json:"completed"`
	AssignedTo  *string `json:"assigned_to"`
	CreatedAt   *string `json:"created_at"`
	UpdatedAt   *string `json:"updated_at"`
}

// Domain validates a wire row and maps it into a [Task].
func (r TaskRow) Domain() (Task, error) {
	v := &validate.Validator{}
	v.Required("id", r.ID)
	v.Required("event_id", r.EventID)
	v.Required(FieldTitle, r.Title)
	v.Date("due_date", r.DueDate)

	if err := v.Err(); err != nil {
		return Task{}, err
	}

	return Task{
		ID:          r.ID,
		EventID:     r.EventID,
		Title:       r.Title,
		Description: pointer.Val(r.Description),
		DueDate:     r.DueDate,
		Completed:   pointer.Val(r.Completed),
		AssignedTo:  pointer.Val(r.AssignedTo),
		CreatedAt:   convert.ToTime(pointer.Val(r.CreatedAt)),
	}, nil
}

// InsertTaskRow is the wire shape for creating a task.
type InsertTaskRow struct {
	EventID     string `json:"event_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"due_date"`
	AssignedTo  string `json:"assigned_to,omitempty"`
}

// UpdateTaskRow is the wire shape for patching a task.
type UpdateTaskRow struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
	AssignedTo  *string `json:"assigned_to,omitempty"`
}

// TasksFor returns the tasks of one event, preserving snapshot order.
func TasksFor(tasks []Task, eventID string) []Task {
	return slice.Filter(tasks, func(t Task) bool { return t.EventID == eventID })
}
