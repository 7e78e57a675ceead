package crud

import (
	"encoding/json"
	"fmt"
	"net/http"

	"cruisedesk/infras/otel"
	"cruisedesk/shared/constant"
	gDto "cruisedesk/shared/dto"
	"cruisedesk/shared/failure"
	gRepo "cruisedesk/shared/repository"
	"cruisedesk/shared/validator"
	"cruisedesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const maxBodyBytes = 1 << 20

// Parent describes a nested mount such as /cruises/{cruiseID}/cabins.
type Parent struct {
	URLParam string
	// Field is both the list filter and the body field that receive the parent id.
	Field string
}

type Config struct {
	Name string
}

// Routes are the handlers mounted under one collection prefix.
type Routes struct {
	List   http.HandlerFunc
	Create http.HandlerFunc
	Get    http.HandlerFunc
	Update http.HandlerFunc
	Delete http.HandlerFunc
}

// Mount registers routes on a router already scoped to the collection prefix.
// PUT and PATCH share the update handler.
func Mount(router chi.Router, routes Routes) {
	router.Get("/", routes.List)
	router.Post("/", routes.Create)
	router.Get("/{id}", routes.Get)
	router.Put("/{id}", routes.Update)
	router.Patch("/{id}", routes.Update)
	router.Delete("/{id}", routes.Delete)
}

// normalizer lets a request body fold alternate input shapes before validation.
type normalizer interface {
	Normalize()
}

// Handler serves the list/get/create/update/delete routes of one upstream collection.
// C and U are the create and update request bodies.
type Handler[T, C, U any] struct {
	cfg  Config
	repo gRepo.Repository[T]
	otel otel.Otel
}

func New[T, C, U any](cfg Config, repo gRepo.Repository[T], otel otel.Otel) *Handler[T, C, U] {
	return &Handler[T, C, U]{
		cfg:  cfg,
		repo: repo,
		otel: otel,
	}
}

func (handler *Handler[T, C, U]) scopeName(operation string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelHandlerScopeName, handler.cfg.Name, operation)
}

// List relays a page of the collection. Under a parent mount the parent id becomes a filter.
func (handler *Handler[T, C, U]) List(parent *Parent) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, handler.scopeName("List"))
		defer scope.End()

		query := gDto.QueryParams{}
		query.FromRequest(request, true)
		query.WithFilters(request, handler.repo.Definition().Filters)

		if parent != nil {
			query.SetFilter(parent.Field, chi.URLParam(request, parent.URLParam))
		}

		list, err := handler.repo.List(ctx, query)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("resource", handler.cfg.Name).Msg("failed to list")

			response.WithError(writer, err)

			return
		}

		response.WithList(writer, http.StatusOK, list.Message, list.Items, list.Pagination)
	}
}

func (handler *Handler[T, C, U]) Get(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, handler.scopeName("Get"))
	defer scope.End()

	item, err := handler.repo.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("resource", handler.cfg.Name).Msg("failed to get")

		response.WithError(writer, err)

		return
	}

	response.WithData(writer, statusOr(item.StatusCode, http.StatusOK), item.Message, item.Data)
}

func (handler *Handler[T, C, U]) Create(parent *Parent) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, handler.scopeName("Create"))
		defer scope.End()

		var inject map[string]string
		if parent != nil {
			inject = map[string]string{parent.Field: chi.URLParam(request, parent.URLParam)}
		}

		body, err := decode[C](writer, request, inject)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("resource", handler.cfg.Name).Msg("failed to validate request")

			response.WithError(writer, err)

			return
		}

		item, err := handler.repo.Create(ctx, &body)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("resource", handler.cfg.Name).Msg("failed to create")

			response.WithError(writer, err)

			return
		}

		response.WithData(writer, statusOr(item.StatusCode, http.StatusCreated), item.Message, item.Data)
	}
}

// Update forwards PUT as a full replacement and PATCH as a partial one.
func (handler *Handler[T, C, U]) Update(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, handler.scopeName("Update"))
	defer scope.End()

	body, err := decode[U](writer, request, nil)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("resource", handler.cfg.Name).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	id := chi.URLParam(request, constant.RequestParamID)

	item, err := handler.repo.Update(ctx, id, &body, request.Method == http.MethodPatch)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("resource", handler.cfg.Name).Str("id", id).Msg("failed to update")

		response.WithError(writer, err)

		return
	}

	response.WithData(writer, statusOr(item.StatusCode, http.StatusOK), item.Message, item.Data)
}

func (handler *Handler[T, C, U]) Delete(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, handler.scopeName("Delete"))
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	item, err := handler.repo.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("resource", handler.cfg.Name).Str("id", id).Msg("failed to delete")

		response.WithError(writer, err)

		return
	}

	response.WithData(writer, statusOr(item.StatusCode, http.StatusOK), item.Message, item.Data)
}

// decode reads the body as an object, overlays inject, then decodes and validates it as B.
// Fields B does not declare are dropped.
func decode[B any](writer http.ResponseWriter, request *http.Request, inject map[string]string) (B, error) {
	var body B

	raw := map[string]any{}

	decoder := json.NewDecoder(http.MaxBytesReader(writer, request.Body, maxBodyBytes))
	decoder.UseNumber()

	if err := decoder.Decode(&raw); err != nil {
		return body, failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	for key, value := range inject {
		raw[key] = value
	}

	merged, err := json.Marshal(raw)
	if err != nil {
		return body, failure.BadRequest(err) //nolint:wrapcheck
	}

	if err := json.Unmarshal(merged, &body); err != nil {
		return body, failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	if n, ok := any(&body).(normalizer); ok {
		n.Normalize()
	}

	if err := validator.ValidateStruct(&body); err != nil {
		return body, err //nolint:wrapcheck
	}

	return body, nil
}

func statusOr(code, fallback int) int {
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return code
	}

	return fallback
}
