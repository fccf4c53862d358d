// Copyright (c) 2026 Planora. All rights reserved.
// Author: dev@planora.app

package event

import (
	"github.com/planora/api/pkg/slice"

	"github.com/planora/api/internal/core/client"
	"github.com/planora/api/internal/core/provider"
	"github.com/planora/api/internal/core/venue"
)

// ProviderSlot is one provider assignment resolved against the provider
// snapshot. Found is false when the assignment points at an unknown
// provider; the slot is kept so callers can surface the dangling id.
type ProviderSlot struct {
	ProviderID  string                    `json:"provider_id"`
	ServiceType string                    `json:"service_type"`
	Provider    *provider.ServiceProvider `json:"provider,omitempty"`
	Found       bool                      `json:"found"`
}

// Detail is an event joined with every related entity a detail screen
// needs. Missing references surface as nil or not-found slots; building
// a detail never fails once the event itself resolves.
type Detail struct {
	Event  Event          `json:"event"`
	Client *client.Client `json:"client,omitempty"`
	Venue  *venue.Venue   `json:"venue,omitempty"`

	Providers []ProviderSlot `json:"providers"`
	Tasks     []Task         `json:"tasks"`
	Timeline  []TimelineItem `json:"timeline"`
}

// BuildDetail assembles a [Detail] from the current snapshots. Lookups
// that miss produce nil references or unfound slots, never errors, and
// provider slots keep assignment order.
func BuildDetail(
	e Event,
	clientByID func(string) (client.Client, bool),
	venueByID func(string) (venue.Venue, bool),
	providerByID func(string) (provider.ServiceProvider, bool),
	tasks []Task,
	timeline []TimelineItem,
) Detail {
	detail := Detail{
		Event:     e,
		Providers: resolveProviders(e.Providers, providerByID),
		Tasks:     TasksFor(tasks, e.ID),
		Timeline:  TimelineFor(timeline, e.ID),
	}

	if c, found := clientByID(e.ClientID); found {
		detail.Client = &c
	}
	if e.VenueID != "" {
		if v, found := venueByID(e.VenueID); found {
			detail.Venue = &v
		}
	}

	return detail
}

func resolveProviders(assignments []Assignment, providerByID func(string) (provider.ServiceProvider, bool)) []ProviderSlot {
	return slice.Map(assignments, func(a Assignment) ProviderSlot {
		slot := ProviderSlot{ProviderID: a.ProviderID, ServiceType: a.ServiceType}
		if p, found := providerByID(a.ProviderID); found {
			slot.Provider = &p
			slot.Found = true
		}
		return slot
	})
}
