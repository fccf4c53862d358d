package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/planora/api/internal/platform/apperr"
	"github.com/planora/api/internal/platform/middleware"
	requestutil "github.com/planora/api/internal/platform/request"
	"github.com/planora/api/internal/platform/respond"
)

type Handler struct {
	service      *Service
	authRequired bool
}

func NewHandler(service *Service, authRequired bool) *Handler {
	return &Handler{service: service, authRequired: authRequired}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/", handler.listReviews)

	// Authenticated
	router.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireUser(handler.authRequired))

		authed.Post("/", handler.createReview)
	})

	return router
}

// listReviews serves GET /reviews?provider_id= or ?venue_id=.
func (handler *Handler) listReviews(writer http.ResponseWriter, request *http.Request) {
	providerID := request.URL.Query().Get("provider_id")
	venueID := request.URL.Query().Get("venue_id")

	switch {
	case providerID != "" && venueID == "":
		respond.OK(writer, handler.service.ListForProvider(providerID))
	case venueID != "" && providerID == "":
		respond.OK(writer, handler.service.ListForVenue(venueID))
	default:
		respond.Error(writer, request,
			apperr.ValidationError("Provide exactly one of provider_id or venue_id"))
	}
}

func (handler *Handler) createReview(writer http.ResponseWriter, request *http.Request) {
	var input InsertRow
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateReview(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}
