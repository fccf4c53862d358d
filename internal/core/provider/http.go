// Copyright (c) 2026 Planora. All rights reserved.
// Author: dev@planora.app

package provider

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
	router.Get("/", handler.listProviders)
	router.Get("/types", handler.listServiceTypes)
	router.Get("/{id}", handler.getProvider)
	router.Get("/{id}/detail", handler.getDetail)

	// Authenticated
	router.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireUser(handler.authRequired))

		authed.Post("/", handler.createProvider)
		authed.Patch("/{id}", handler.updateProvider)
		authed.Delete("/{id}", handler.deleteProvider)
	})

	return router
}

func (handler *Handler) listProviders(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	query := request.URL.Query()

	providers := handler.service.ListProviders(Filter{
		Search:      query.Get("search"),
		ServiceType: query.Get("service_type"),
	})

	start, end := paginationParams.Window(len(providers))
	respond.Paginated(writer, providers[start:end],
		pagination.NewMeta(paginationParams.Page, paginationParams.Limit, len(providers)))
}

func (handler *Handler) listServiceTypes(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, ServiceTypeLabels)
}

func (handler *Handler) getProvider(writer http.ResponseWriter, request *http.Request) {
	p, err := handler.service.GetProvider(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, p)
}

func (handler *Handler) getDetail(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.service.GetDetail(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

func (handler *Handler) createProvider(writer http.ResponseWriter, request *http.Request) {
	var input InsertRow
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateProvider(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateProvider(writer http.ResponseWriter, request *http.Request) {
	var input UpdateRow
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateProvider(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteProvider(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteProvider(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
