package venue

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/planora/api/internal/platform/middleware"
	requestutil "github.com/planora/api/internal/platform/request"
	"github.com/planora/api/internal/platform/respond"
	"github.com/planora/api/pkg/convert"
	"github.com/planora/api/pkg/pagination"
	urlquery "github.com/planora/api/pkg/query"
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
	router.Get("/", handler.listVenues)
	router.Get("/{id}", handler.getVenue)
	router.Get("/{id}/detail", handler.getDetail)

	// Authenticated
	router.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireUser(handler.authRequired))

		authed.Post("/", handler.createVenue)
		authed.Patch("/{id}", handler.updateVenue)
		authed.Delete("/{id}", handler.deleteVenue)
	})

	return router
}

func (handler *Handler) listVenues(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	query := request.URL.Query()

	venues := handler.service.ListVenues(Filter{
		Search:      query.Get("search"),
		MinCapacity: convert.ToIntD(query.Get("min_capacity"), 0),
		Amenities:   urlquery.StringSlice(query.Get("amenities")),
	})

	start, end := paginationParams.Window(len(venues))
	respond.Paginated(writer, venues[start:end],
		pagination.NewMeta(paginationParams.Page, paginationParams.Limit, len(venues)))
}

func (handler *Handler) getVenue(writer http.ResponseWriter, request *http.Request) {
	v, err := handler.service.GetVenue(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, v)
}

func (handler *Handler) getDetail(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.service.GetDetail(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

func (handler *Handler) createVenue(writer http.ResponseWriter, request *http.Request) {
	var input InsertRow
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateVenue(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateVenue(writer http.ResponseWriter, request *http.Request) {
	var input UpdateRow
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateVenue(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteVenue(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteVenue(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
