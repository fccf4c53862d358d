package review_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/api/internal/core/review"
	"github.com/planora/api/internal/platform/apperr"
	"github.com/planora/api/internal/seed"
	"github.com/planora/api/pkg/pointer"
)

type fakeOwners struct {
	providers map[string]bool
	venues    map[string]bool
}

func (f fakeOwners) HasProvider(id string) bool { return f.providers[id] }
func (f fakeOwners) HasVenue(id string) bool    { return f.venues[id] }

func newTestService(t *testing.T) *review.Service {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo := review.NewRemoteRepository(nil, nil, log)
	repo.Seed(seed.Demo().Reviews)

	owners := fakeOwners{
		providers: map[string]bool{"sp1": true, "sp4": true},
		venues:    map[string]bool{"v1": true},
	}
	return review.NewService(repo, owners, log)
}

/*
TestListForOwner verifies owner-scoped listings.
*/
func TestListForOwner(t *testing.T) {
	service := newTestService(t)

	reviews := service.ListForProvider("sp1")
	require.Len(t, reviews, 1)
	assert.Equal(t, "Amazing photographer! Captured every moment perfectly.", reviews[0].Comment)

	reviews = service.ListForVenue("v1")
	require.Len(t, reviews, 1)

	assert.Empty(t, service.ListForProvider("sp2"))
}

/*
TestCreateReview_Validation verifies the input rules and owner checks.
*/
func TestCreateReview_Validation(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name         string
		input        review.InsertRow
		expectedCode string
	}{
		{
			"rating_out_of_range",
			review.InsertRow{ClientName: "A", Rating: 6, ProviderID: pointer.To("sp1")},
			"VALIDATION_ERROR",
		},
		{
			"no_owner",
			review.InsertRow{ClientName: "A", Rating: 4},
			"VALIDATION_ERROR",
		},
		{
			"both_owners",
			review.InsertRow{ClientName: "A", Rating: 4, ProviderID: pointer.To("sp1"), VenueID: pointer.To("v1")},
			"VALIDATION_ERROR",
		},
		{
			"unknown_provider",
			review.InsertRow{ClientName: "A", Rating: 4, ProviderID: pointer.To("ghost")},
			"UNPROCESSABLE",
		},
		{
			"unknown_venue",
			review.InsertRow{ClientName: "A", Rating: 4, VenueID: pointer.To("ghost")},
			"UNPROCESSABLE",
		},
		{
			// Valid input reaches the repository, which has no remote in tests.
			"demo_mode_rejects_write",
			review.InsertRow{ClientName: "A", Rating: 4, ProviderID: pointer.To("sp1")},
			"SERVICE_UNAVAILABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateReview(ctx, tt.input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, tt.expectedCode, ae.Code)
		})
	}
}
