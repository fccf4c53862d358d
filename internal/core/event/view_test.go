package event_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/api/internal/core/client"
	"github.com/planora/api/internal/core/event"
	"github.com/planora/api/internal/core/provider"
	"github.com/planora/api/internal/core/venue"
	"github.com/planora/api/internal/platform/apperr"
	"github.com/planora/api/internal/seed"
)

func newTestService(t *testing.T) *event.Service {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	data := seed.Demo()

	repo := event.NewRemoteRepository(nil, nil, log)
	repo.Seed(data.Events, data.Tasks, data.Timeline)

	clients := client.NewRemoteRepository(nil, nil, log)
	clients.Seed(data.Clients, data.CommLogs)

	venues := venue.NewRemoteRepository(nil, nil, log)
	venues.Seed(data.Venues)

	providers := provider.NewRemoteRepository(nil, nil, log)
	providers.Seed(data.Providers)

	return event.NewService(repo, clients, venues, providers, log)
}

/*
TestGetDetail_Wedding joins a fully-linked event across every snapshot.
*/
func TestGetDetail_Wedding(t *testing.T) {
	service := newTestService(t)

	detail, err := service.GetDetail("e1")
	require.NoError(t, err)

	assert.Equal(t, "Sarah & John Wedding", detail.Event.Title)

	require.NotNil(t, detail.Client)
	assert.Equal(t, "Sarah Johnson", detail.Client.Name)

	require.NotNil(t, detail.Venue)
	assert.Equal(t, "Grand Ballroom Hotel", detail.Venue.Name)

	// Provider slots keep assignment order.
	require.Len(t, detail.Providers, 2)
	require.True(t, detail.Providers[0].Found)
	assert.Equal(t, "Perfect Moments Photography", detail.Providers[0].Provider.Name)
	assert.Equal(t, "photographer", detail.Providers[0].ServiceType)
	require.True(t, detail.Providers[1].Found)
	assert.Equal(t, "Gourmet Catering Co.", detail.Providers[1].Provider.Name)

	require.Len(t, detail.Tasks, 2)
	assert.Equal(t, "Send invitations", detail.Tasks[0].Title)

	require.Len(t, detail.Timeline, 2)
	assert.Equal(t, "Ceremony", detail.Timeline[0].Title)
	assert.Equal(t, "16:00", detail.Timeline[0].Time)
}

/*
TestGetDetail_DanglingReferences verifies that unresolved references degrade
to explicit not-found results instead of failing the view.
*/
func TestGetDetail_DanglingReferences(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	data := seed.Demo()

	// An event referencing entities no snapshot contains.
	data.Events = append(data.Events, event.Event{
		ID:        "e-orphan",
		Title:     "Orphan Gala",
		Type:      event.TypeCorporate,
		ClientID:  "ghost-client",
		VenueID:   "ghost-venue",
		Date:      "2024-09-01",
		StartTime: "18:00",
		EndTime:   "22:00",
		Status:    event.StatusPlanning,
		Providers: []event.Assignment{
			{ProviderID: "sp1", ServiceType: "photographer"},
			{ProviderID: "ghost-provider", ServiceType: "dj"},
		},
	})

	repo := event.NewRemoteRepository(nil, nil, log)
	repo.Seed(data.Events, data.Tasks, data.Timeline)

	clients := client.NewRemoteRepository(nil, nil, log)
	clients.Seed(data.Clients, data.CommLogs)

	venues := venue.NewRemoteRepository(nil, nil, log)
	venues.Seed(data.Venues)

	providers := provider.NewRemoteRepository(nil, nil, log)
	providers.Seed(data.Providers)

	service := event.NewService(repo, clients, venues, providers, log)

	detail, err := service.GetDetail("e-orphan")
	require.NoError(t, err)

	assert.Nil(t, detail.Client)
	assert.Nil(t, detail.Venue)

	// One slot per assignment, in order, with explicit found flags.
	require.Len(t, detail.Providers, 2)
	assert.True(t, detail.Providers[0].Found)
	assert.False(t, detail.Providers[1].Found)
	assert.Equal(t, "ghost-provider", detail.Providers[1].ProviderID)
	assert.Nil(t, detail.Providers[1].Provider)

	// Only a missing event itself is an error.
	_, err = service.GetDetail("ghost-event")
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestListEvents verifies the stacked text, type and status filters.
*/
func TestListEvents(t *testing.T) {
	service := newTestService(t)

	all := service.ListEvents(event.Filter{})
	require.Len(t, all, 2)

	matched := service.ListEvents(event.Filter{Search: "wedding"})
	require.Len(t, matched, 1)
	assert.Equal(t, "Sarah & John Wedding", matched[0].Title)

	matched = service.ListEvents(event.Filter{Status: "confirmed"})
	require.Len(t, matched, 1)
	assert.Equal(t, "Michael's 40th Birthday", matched[0].Title)

	matched = service.ListEvents(event.Filter{Type: "birthday", Status: "confirmed"})
	require.Len(t, matched, 1)

	assert.Empty(t, service.ListEvents(event.Filter{Type: "birthday", Status: "planning"}))
	assert.Len(t, service.ListEvents(event.Filter{Type: "all", Status: "all"}), 2)
}
