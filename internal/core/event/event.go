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

// Type classifies an event.
type Type string

const (
	TypeWedding   Type = "wedding"
	TypeBirthday  Type = "birthday"
	TypeCorporate Type = "corporate"
	TypeOther     Type = "other"
)

func typeNames() []string {
	return []string{
		string(TypeWedding),
		string(TypeBirthday),
		string(TypeCorporate),
		string(TypeOther),
	}
}

// Status tracks an event through its planning lifecycle.
type Status string

const (
	StatusPlanning  Status = "planning"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func statusNames() []string {
	return []string{
		string(StatusPlanning),
		string(StatusConfirmed),
		string(StatusCompleted),
		string(StatusCancelled),
	}
}

// StatusColors maps each status to the hex accent used by clients.
var StatusColors = map[Status]string{
	StatusPlanning:  "#F59E0B",
	StatusConfirmed: "#10B981",
	StatusCompleted: "#6366F1",
	StatusCancelled: "#EF4444",
}

// Assignment links a provider to an event in a given role.
type Assignment struct {
	ProviderID  string `json:"provider_id"`
	ServiceType string `json:"service_type"`
}

// Event is a planned occasion tying together a client, a venue and a set
// of provider assignments.
type Event struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Type       Type         `json:"type"`
	ClientID   string       `json:"client_id"`
	VenueID    string       `json:"venue_id,omitempty"`
	Date       string       `json:"date"`
	StartTime  string       `json:"start_time"`
	EndTime    string       `json:"end_time"`
	GuestCount int          `json:"guest_count"`
	Budget     float64      `json:"budget"`
	Status     Status       `json:"status"`
	Notes      string       `json:"notes,omitempty"`
	Providers  []Assignment `json:"providers"`
	CreatedAt  time.Time    `json:"created_at"`
}

const (
	FieldTitle      = "title"
	FieldType       = "type"
	FieldClientID   = "client_id"
	FieldVenueID    = "venue_id"
	FieldDate       = "date"
	FieldStartTime  = "start_time"
	FieldEndTime    = "end_time"
	FieldGuestCount = "guest_count"
	FieldBudget     = "budget"
	FieldStatus     = "status"
)

// Row is the flattened wire shape of the events table. Provider
// assignments live in the event_providers join table and are attached
// after ingest.
type Row struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Type       string   `json:"type"`
	ClientID   string   `json:"client_id"`
	VenueID    *string  `json:"venue_id"`
	Date       string   `json:"date"`
	StartTime  string   `json:"start_time"`
	EndTime    string   `json:"end_time"`
	GuestCount *int     `json:"guest_count"`
	Budget     *float64 `json:"budget"`
	Status     string   `json:"status"`
	Notes      *string  `json:"notes"`
	CreatedAt  *string  `json:"created_at"`
	UpdatedAt  *string  `json:"updated_at"`
}

// Domain validates a wire row and maps it into an [Event].
func (r Row) Domain() (Event, error) {
	v := &validate.Validator{}
	v.Required("id", r.ID)
	v.Required(FieldTitle, r.Title)
	v.OneOf(FieldType, r.Type, typeNames()...)
	v.Required(FieldClientID, r.ClientID)
	v.Date(FieldDate, r.Date)
	v.Clock(FieldStartTime, r.StartTime)
	v.Clock(FieldEndTime, r.EndTime)
	v.Custom(FieldEndTime, r.EndTime <= r.StartTime, "Must be after start_time")
	v.OneOf(FieldStatus, r.Status, statusNames()...)

	guestCount := pointer.Val(r.GuestCount)
	budget := pointer.Val(r.Budget)
	v.Custom(FieldGuestCount, guestCount < 0, "Must not be negative")
	v.NonNegative(FieldBudget, budget)

	if err := v.Err(); err != nil {
		return Event{}, err
	}

	return Event{
		ID:         r.ID,
		Title:      r.Title,
		Type:       Type(r.Type),
		ClientID:   r.ClientID,
		VenueID:    pointer.Val(r.VenueID),
		Date:       r.Date,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		GuestCount: guestCount,
		Budget:     budget,
		Status:     Status(r.Status),
		Notes:      pointer.Val(r.Notes),
		Providers:  []Assignment{},
		CreatedAt:  convert.ToTime(pointer.Val(r.CreatedAt)),
	}, nil
}

// AssignmentRow is the wire shape of the event_providers join table.
type AssignmentRow struct {
	ID          string `json:"id,omitempty"`
	EventID     string `json:"event_id"`
	ProviderID  string `json:"provider_id"`
	ServiceType string `json:"service_type"`
}

// AttachAssignments distributes join table rows onto their events,
// preserving assignment order. Rows pointing at unknown events are
// dropped.
func AttachAssignments(events []Event, rows []AssignmentRow) []Event {
	byEvent := make(map[string][]Assignment, len(events))
	for _, row := range rows {
		byEvent[row.EventID] = append(byEvent[row.EventID], Assignment{
			ProviderID:  row.ProviderID,
			ServiceType: row.ServiceType,
		})
	}

	return slice.Map(events, func(e Event) Event {
		if assignments, ok := byEvent[e.ID]; ok {
			e.Providers = assignments
		}
		return e
	})
}

// InsertRow is the wire shape for creating an event.
type InsertRow struct {
	Title      string  `json:"title"`
	Type       string  `json:"type"`
	ClientID   string  `json:"client_id"`
	VenueID    *string `json:"venue_id,omitempty"`
	Date       string  `json:"date"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	GuestCount int     `json:"guest_count"`
	Budget     float64 `json:"budget"`
	Status     string  `json:"status,omitempty"`
	Notes      string  `json:"notes,omitempty"`
}

// UpdateRow is the wire shape for patching an event.
type UpdateRow struct {
	Title      *string  `json:"title,omitempty"`
	Type       *string  `json:"type,omitempty"`
	ClientID   *string  `json:"client_id,omitempty"`
	VenueID    *string  `json:"venue_id,omitempty"`
	Date       *string  `json:"date,omitempty"`
	StartTime  *string  `json:"start_time,omitempty"`
	EndTime    *string  `json:"end_time,omitempty"`
	GuestCount *int     `json:"guest_count,omitempty"`
	Budget     *float64 `json:"budget,omitempty"`
	Status     *string  `json:"status,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
}
