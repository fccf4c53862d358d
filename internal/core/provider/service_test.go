package provider_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/api/internal/core/availability"
	"github.com/planora/api/internal/core/provider"
	"github.com/planora/api/internal/core/review"
	"github.com/planora/api/internal/platform/apperr"
	"github.com/planora/api/internal/seed"
)

func newTestService(t *testing.T) *provider.Service {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	data := seed.Demo()

	repo := provider.NewRemoteRepository(nil, nil, log)
	repo.Seed(data.Providers)

	reviews := review.NewRemoteRepository(nil, nil, log)
	reviews.Seed(data.Reviews)

	slots := availability.NewRemoteRepository(nil, nil, log)
	slots.Seed(data.Slots)

	return provider.NewService(repo, reviews, slots, log)
}

/*
TestListProviders verifies text and category filters compose with AND.
*/
func TestListProviders(t *testing.T) {
	service := newTestService(t)

	all := service.ListProviders(provider.Filter{})
	require.Len(t, all, 6)

	// Category filter matches exactly one provider.
	djs := service.ListProviders(provider.Filter{ServiceType: "dj"})
	require.Len(t, djs, 1)
	assert.Equal(t, "DJ Beats Entertainment", djs[0].Name)

	// The "all" sentinel disables the category filter.
	assert.Len(t, service.ListProviders(provider.Filter{ServiceType: "all"}), 6)

	// Text search spans name, description and location.
	matched := service.ListProviders(provider.Filter{Search: "aerial"})
	require.Len(t, matched, 1)
	assert.Equal(t, "Sky View Drones", matched[0].Name)

	matched = service.ListProviders(provider.Filter{Search: "chicago"})
	require.Len(t, matched, 1)
	assert.Equal(t, "Gourmet Catering Co.", matched[0].Name)

	// Both filters together narrow to the intersection.
	matched = service.ListProviders(provider.Filter{Search: "wedding", ServiceType: "photographer"})
	require.Len(t, matched, 1)
	assert.Equal(t, "Perfect Moments Photography", matched[0].Name)

	assert.Empty(t, service.ListProviders(provider.Filter{Search: "wedding", ServiceType: "drone_operator"}))
}

/*
TestGetDetail verifies the joined provider view.
*/
func TestGetDetail(t *testing.T) {
	service := newTestService(t)

	detail, err := service.GetDetail("sp1")
	require.NoError(t, err)

	assert.Equal(t, "Perfect Moments Photography", detail.Provider.Name)
	require.Len(t, detail.Reviews, 1)
	assert.Equal(t, "Sarah Johnson", detail.Reviews[0].ClientName)
	assert.Equal(t, 5.0, detail.AverageRating)

	require.Len(t, detail.Availability, 2)
	assert.Equal(t, "2024-06-15", detail.Availability[0].Date)
	assert.True(t, detail.Availability[0].Available)
	assert.False(t, detail.Availability[1].Available)

	// Providers without reviews resolve with an empty list.
	detail, err = service.GetDetail("sp5")
	require.NoError(t, err)
	assert.Empty(t, detail.Reviews)
	assert.Zero(t, detail.AverageRating)

	_, err = service.GetDetail("ghost")
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestServiceTypeLabels verifies the closed service type set.
*/
func TestServiceTypeLabels(t *testing.T) {
	assert.Len(t, provider.ServiceTypeLabels, 7)
	assert.Equal(t, "Drone Operator", provider.ServiceTypeLabels[provider.TypeDroneOperator])

	assert.True(t, provider.ServiceType("dj").Valid())
	assert.False(t, provider.ServiceType("magician").Valid())
}
