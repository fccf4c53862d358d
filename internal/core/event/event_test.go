package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/api/internal/core/event"
	"github.com/planora/api/pkg/pointer"
)

/*
TestRow_Domain verifies event wire validation, notably the time window.
*/
func TestRow_Domain(t *testing.T) {
	valid := event.Row{
		ID:        "e1",
		Title:     "Sarah & John Wedding",
		Type:      "wedding",
		ClientID:  "1",
		Date:      "2024-06-15",
		StartTime: "16:00",
		EndTime:   "23:00",
		Status:    "planning",
		Budget:    pointer.To(25000.0),
	}

	e, err := valid.Domain()
	require.NoError(t, err)
	assert.Equal(t, event.TypeWedding, e.Type)
	assert.Equal(t, 25000.0, e.Budget)

	tests := []struct {
		name   string
		mutate func(*event.Row)
	}{
		{"end_before_start", func(r *event.Row) { r.EndTime = "15:00" }},
		{"end_equals_start", func(r *event.Row) { r.EndTime = r.StartTime }},
		{"unknown_type", func(r *event.Row) { r.Type = "festival" }},
		{"unknown_status", func(r *event.Row) { r.Status = "archived" }},
		{"negative_guest_count", func(r *event.Row) { r.GuestCount = pointer.To(-1) }},
		{"negative_budget", func(r *event.Row) { r.Budget = pointer.To(-100.0) }},
		{"missing_client", func(r *event.Row) { r.ClientID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := valid
			tt.mutate(&row)

			_, err := row.Domain()
			assert.Error(t, err)
		})
	}
}

/*
TestAttachAssignments verifies join rows fold onto their events in order.
*/
func TestAttachAssignments(t *testing.T) {
	events := []event.Event{
		{ID: "e1", Providers: []event.Assignment{}},
		{ID: "e2", Providers: []event.Assignment{}},
	}
	rows := []event.AssignmentRow{
		{EventID: "e1", ProviderID: "sp1", ServiceType: "photographer"},
		{EventID: "e2", ProviderID: "sp5", ServiceType: "dj"},
		{EventID: "e1", ProviderID: "sp4", ServiceType: "caterer"},
		// A row for an event outside the snapshot is dropped.
		{EventID: "ghost", ProviderID: "sp2", ServiceType: "videographer"},
	}

	attached := event.AttachAssignments(events, rows)
	require.Len(t, attached, 2)

	require.Len(t, attached[0].Providers, 2)
	assert.Equal(t, "sp1", attached[0].Providers[0].ProviderID)
	assert.Equal(t, "sp4", attached[0].Providers[1].ProviderID)

	require.Len(t, attached[1].Providers, 1)
	assert.Equal(t, "dj", attached[1].Providers[0].ServiceType)
}

/*
TestStatusColors verifies the closed status palette.
*/
func TestStatusColors(t *testing.T) {
	assert.Len(t, event.StatusColors, 4)
	assert.Equal(t, "#F59E0B", event.StatusColors[event.StatusPlanning])
}
