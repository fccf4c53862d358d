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

// TimelineItem is a scheduled moment in an event's run sheet.
type TimelineItem struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TimelineRow is the flattened wire shape of the timeline_items table.
type TimelineRow struct {
	ID          string  `json:"id"`
	EventID     string  `json:"event_id"`
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Description *string `json:"description"`
	CreatedAt   *string `json:"created_at"`
}

// Domain validates a wire row and maps it into a [TimelineItem].
func (r TimelineRow) Domain() (TimelineItem, error) {
	v := &validate.Validator{}
	v.Required("id", r.ID)
	v.Required("event_id", r.EventID)
	v.Required(FieldTitle, r.Title)
	v.Date(FieldDate, r.Date)
	v.Clock("time", r.Time)

	if err := v.Err(); err != nil {
		return TimelineItem{}, err
	}

	return TimelineItem{
		ID:          r.ID,
		EventID:     r.EventID,
		Title:       r.Title,
		Date:        r.Date,
		Time:        r.Time,
		Description: pointer.Val(r.Description),
		CreatedAt:   convert.ToTime(pointer.Val(r.CreatedAt)),
	}, nil
}

// InsertTimelineRow is the wire shape for creating a timeline item.
type InsertTimelineRow struct {
	EventID     string `json:"event_id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description,omitempty"`
}

// TimelineFor returns the run sheet of one event, preserving snapshot
// order.
func TimelineFor(items []TimelineItem, eventID string) []TimelineItem {
	return slice.Filter(items, func(i TimelineItem) bool { return i.EventID == eventID })
}
