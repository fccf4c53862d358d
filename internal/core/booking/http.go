package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/planora/api/internal/platform/middleware"
	requestutil "github.com/planora/api/internal/platform/request"
	"github.com/planora/api/internal/platform/respond"
	"github.com/planora/api/pkg/pagination"
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
	router.Get("/", handler.listBookings)
	router.Get("/{id}", handler.getBooking)

	// Authenticated
	router.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireUser(handler.authRequired))

		authed.Post("/", handler.createBooking)
		authed.Patch("/{id}", handler.updateBooking)
		authed.Delete("/{id}", handler.deleteBooking)
	})

	return router
}

func (handler *Handler) listBookings(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	bookings := handler.service.ListBookings(Filter{
		Status: request.URL.Query().Get("status"),
	})

	start, end := paginationParams.Window(len(bookings))
	respond.Paginated(writer, bookings[start:end],
		pagination.NewMeta(paginationParams.Page, paginationParams.Limit, len(bookings)))
}

func (handler *Handler) getBooking(writer http.ResponseWriter, request *http.Request) {
	b, err := handler.service.GetBooking(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, b)
}

func (handler *Handler) createBooking(writer http.ResponseWriter, request *http.Request) {
	var input InsertRow
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateBooking(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateBooking(writer http.ResponseWriter, request *http.Request) {
	var input UpdateRow
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateBooking(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteBooking(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteBooking(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
