package review

import (
	"context"
	"log/slog"

	"github.com/planora/api/internal/platform/apperr"
	"github.com/planora/api/internal/platform/validate"
)

// OwnerDirectory checks that the reviewed provider or venue exists in the
// current snapshot before a review is accepted.
type OwnerDirectory interface {
	HasProvider(id string) bool
	HasVenue(id string) bool
}

type Service struct {
	repo   Repository
	owners OwnerDirectory
	logger *slog.Logger
}

func NewService(repo Repository, owners OwnerDirectory, logger *slog.Logger) *Service {
	return &Service{repo: repo, owners: owners, logger: logger}
}

// ListForProvider returns the provider's reviews in snapshot order.
func (service *Service) ListForProvider(providerID string) []Review {
	return service.repo.ForProvider(providerID)
}

// ListForVenue returns the venue's reviews in snapshot order.
func (service *Service) ListForVenue(venueID string) []Review {
	return service.repo.ForVenue(venueID)
}

// CreateReview validates and stores a new review against exactly one owner.
func (service *Service) CreateReview(ctx context.Context, input InsertRow) (Review, error) {
	hasProvider := input.ProviderID != nil && *input.ProviderID != ""
	hasVenue := input.VenueID != nil && *input.VenueID != ""

	v := &validate.Validator{}
	v.Required(FieldClientName, input.ClientName).MaxLen(FieldClientName, input.ClientName, 200)
	v.Range(FieldRating, input.Rating, 1, 5)
	v.Custom(FieldProviderID, hasProvider == hasVenue,
		"Review must target exactly one of provider_id or venue_id")
	if input.Date != "" {
		v.Date(FieldDate, input.Date)
	}
	if err := v.Err(); err != nil {
		return Review{}, err
	}

	// A review of an unknown owner would dangle in every detail view.
	if hasProvider && !service.owners.HasProvider(*input.ProviderID) {
		return Review{}, apperr.Unprocessable("Reviewed provider does not exist")
	}
	if hasVenue && !service.owners.HasVenue(*input.VenueID) {
		return Review{}, apperr.Unprocessable("Reviewed venue does not exist")
	}

	created, err := service.repo.Create(ctx, input)
	if err != nil {
		return Review{}, err
	}

	service.logger.Info("review_created", slog.String("review_id", created.ID))
	return created, nil
}

// Refresh refetches the reviews snapshot.
func (service *Service) Refresh(ctx context.Context) error {
	return service.repo.Refresh(ctx)
}
