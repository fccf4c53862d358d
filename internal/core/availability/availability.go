package availability

import (
	"github.com/planora/api/internal/platform/apperr"
	"github.com/planora/api/internal/platform/validate"
	"github.com/planora/api/pkg/pointer"
)

// Slot marks one civil date as open or taken for a provider or a venue.
//
// Each slot belongs to exactly one owner, and an owner has at most one slot
// per date.
type Slot struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Available bool   `json:"available"`

	// Owner keys. Exactly one is set.
	ProviderID string `json:"provider_id,omitempty"`
	VenueID    string `json:"venue_id,omitempty"`
}

// Row is the flattened wire shape of the availability_slots table.
type Row struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"`
	Available  *bool   `json:"available"`
	ProviderID *string `json:"provider_id"`
	VenueID    *string `json:"venue_id"`
}

// Domain validates a wire row and maps it into a [Slot].
func (r Row) Domain() (Slot, error) {
	providerID := pointer.Val(r.ProviderID)
	venueID := pointer.Val(r.VenueID)

	v := &validate.Validator{}
	v.Required("id", r.ID)
	v.Date("date", r.Date)
	v.Custom("provider_id", (providerID == "") == (venueID == ""),
		"Slot must belong to exactly one of a provider or a venue")

	if err := v.Err(); err != nil {
		return Slot{}, err
	}

	return Slot{
		ID:         r.ID,
		Date:       r.Date,
		Available:  pointer.Val(r.Available),
		ProviderID: providerID,
		VenueID:    venueID,
	}, nil
}

// ForProvider returns the provider's slots in snapshot order, keeping the
// first slot per date so the one-slot-per-date invariant holds even against
// duplicated upstream rows.
func ForProvider(slots []Slot, providerID string) []Slot {
	return forOwner(slots, func(s Slot) bool { return s.ProviderID == providerID })
}

// ForVenue returns the venue's slots in snapshot order, one per date.
func ForVenue(slots []Slot, venueID string) []Slot {
	return forOwner(slots, func(s Slot) bool { return s.VenueID == venueID })
}

func forOwner(slots []Slot, owns func(Slot) bool) []Slot {
	seen := make(map[string]bool)
	var result []Slot
	for _, s := range slots {
		if !owns(s) || seen[s.Date] {
			continue
		}
		seen[s.Date] = true
		result = append(result, s)
	}
	return result
}

// OnDate reports whether the owner is free on the given date. An owner with
// no slot for the date is treated as unavailable rather than guessed at.
func OnDate(slots []Slot, date string) (bool, error) {
	for _, s := range slots {
		if s.Date == date {
			return s.Available, nil
		}
	}
	return false, apperr.NotFound("Availability slot")
}
