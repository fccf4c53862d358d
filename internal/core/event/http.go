// Copyright (c) 2026 Planora. All rights reserved.
// Author: dev@planora.app

package event

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
	router.Get("/", handler.listEvents)
	router.Get("/statuses", handler.listStatuses)
	router.Get("/{id}", handler.getEvent)
	router.Get("/{id}/detail", handler.getDetail)

	// Authenticated
	router.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireUser(handler.authRequired))

		authed.Post("/", handler.createEvent)
		authed.Patch("/{id}", handler.updateEvent)
		authed.Delete("/{id}", handler.deleteEvent)

		authed.Post("/{id}/providers", handler.assignProvider)
		authed.Delete("/{id}/providers/{providerID}", handler.removeProvider)

		authed.Post("/{id}/tasks", handler.createTask)
		authed.Patch("/tasks/{taskID}", handler.updateTask)
		authed.Post("/{id}/timeline", handler.createTimelineItem)
	})

	return router
}

func (handler *Handler) listEvents(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	query := request.URL.Query()

	events := handler.service.ListEvents(Filter{
		Search: query.Get("search"),
		Type:   query.Get("type"),
		Status: query.Get("status"),
	})

	start, end := paginationParams.Window(len(events))
	respond.Paginated(writer, events[start:end],
		pagination.NewMeta(paginationParams.Page, paginationParams.Limit, len(events)))
}

func (handler *Handler) listStatuses(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, StatusColors)
}

func (handler *Handler) getEvent(writer http.ResponseWriter, request *http.Request) {
	e, err := handler.service.GetEvent(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, e)
}

func (handler *Handler) getDetail(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.service.GetDetail(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

func (handler *Handler) createEvent(writer http.ResponseWriter, request *http.Request) {
	var input InsertRow
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateEvent(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateEvent(writer http.ResponseWriter, request *http.Request) {
	var input UpdateRow
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateEvent(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteEvent(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteEvent(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) assignProvider(writer http.ResponseWriter, request *http.Request) {
	var assignment Assignment
	if err := requestutil.DecodeJSON(request, &assignment); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AssignProvider(request.Context(), requestutil.ID(request, "id"), assignment); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, assignment)
}

func (handler *Handler) removeProvider(writer http.ResponseWriter, request *http.Request) {
	err := handler.service.RemoveProvider(request.Context(),
		requestutil.ID(request, "id"), requestutil.ID(request, "providerID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) createTask(writer http.ResponseWriter, request *http.Request) {
	var input InsertTaskRow
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.EventID = requestutil.ID(request, "id")

	created, err := handler.service.CreateTask(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateTask(writer http.ResponseWriter, request *http.Request) {
	var input UpdateTaskRow
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateTask(request.Context(), requestutil.ID(request, "taskID"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) createTimelineItem(writer http.ResponseWriter, request *http.Request) {
	var input InsertTimelineRow
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.EventID = requestutil.ID(request, "id")

	created, err := handler.service.CreateTimelineItem(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}
