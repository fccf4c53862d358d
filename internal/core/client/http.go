package client

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
	router.Get("/", handler.listClients)
	router.Get("/{id}", handler.getClient)
	router.Get("/{id}/detail", handler.getDetail)
	router.Get("/{id}/communications", handler.listCommunications)

	// Authenticated
	router.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireUser(handler.authRequired))

		authed.Post("/", handler.createClient)
		authed.Patch("/{id}", handler.updateClient)
		authed.Delete("/{id}", handler.deleteClient)
		authed.Post("/{id}/communications", handler.recordCommunication)
	})

	return router
}

func (handler *Handler) listClients(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	clients := handler.service.ListClients(request.URL.Query().Get("search"))

	start, end := paginationParams.Window(len(clients))
	respond.Paginated(writer, clients[start:end],
		pagination.NewMeta(paginationParams.Page, paginationParams.Limit, len(clients)))
}

func (handler *Handler) getClient(writer http.ResponseWriter, request *http.Request) {
	c, err := handler.service.GetClient(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, c)
}

func (handler *Handler) getDetail(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.service.GetDetail(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

func (handler *Handler) listCommunications(writer http.ResponseWriter, request *http.Request) {
	logs, err := handler.service.ListCommunications(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, logs)
}

func (handler *Handler) createClient(writer http.ResponseWriter, request *http.Request) {
	var input InsertRow
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateClient(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateClient(writer http.ResponseWriter, request *http.Request) {
	var input UpdateRow
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateClient(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteClient(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteClient(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) recordCommunication(writer http.ResponseWriter, request *http.Request) {
	var input InsertLogRow
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.ClientID = requestutil.ID(request, "id")

	created, err := handler.service.RecordCommunication(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}
