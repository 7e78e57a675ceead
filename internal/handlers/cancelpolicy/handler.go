package cancelpolicy

import (
	"net/http"

	"cruisedesk/infras/otel"
	"cruisedesk/internal/domains/cancelpolicy/model"
	"cruisedesk/internal/domains/cancelpolicy/model/dto"
	"cruisedesk/internal/domains/cancelpolicy/repository"
	"cruisedesk/internal/handlers/crud"
	"cruisedesk/shared/constant"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	crud *crud.Handler[model.CancelPolicy, dto.CreateCancelPolicyRequest, dto.UpdateCancelPolicyRequest]
}

func New(repo repository.CancelPolicy, otel otel.Otel) Handler {
	return Handler{
		crud: crud.New[model.CancelPolicy, dto.CreateCancelPolicyRequest, dto.UpdateCancelPolicyRequest](crud.Config{Name: constant.EntityCancelPolicy}, repo, otel),
	}
}

func (handler Handler) Router(router chi.Router) {
	router.Route("/cancel-policies", func(routerGroup chi.Router) {
		crud.Mount(routerGroup, crud.Routes{
			List:   handler.List,
			Create: handler.Create,
			Get:    handler.Get,
			Update: handler.Update,
			Delete: handler.Delete,
		})
	})
}

// List relays a page of cancel policies.
// @Summary List cancel policies
// @Tags Cancel Policy
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param sort_by query string false "Sort field"
// @Param sort_dir query string false "Sort direction" Enums(asc, desc)
// @Param search query string false "Search term"
// @Success 200 {object} response.List[model.CancelPolicy]
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/cancel-policies [get]
// @Security CookieAuth
func (handler Handler) List(writer http.ResponseWriter, request *http.Request) {
	handler.crud.List(nil)(writer, request)
}

// Create creates a cancel policy.
// @Summary Create a cancel policy
// @Tags Cancel Policy
// @Accept json
// @Produce json
// @Param request body dto.CreateCancelPolicyRequest true "Cancel policy"
// @Success 201 {object} response.Data[model.CancelPolicy]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/cancel-policies [post]
// @Security CookieAuth
func (handler Handler) Create(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Create(nil)(writer, request)
}

// Get relays one cancel policy.
// @Summary Get a cancel policy
// @Tags Cancel Policy
// @Produce json
// @Param id path string true "Cancel policy ID"
// @Success 200 {object} response.Data[model.CancelPolicy]
// @Failure 404 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/cancel-policies/{id} [get]
// @Security CookieAuth
func (handler Handler) Get(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Get(writer, request)
}

// Update forwards PUT as a replacement and PATCH as a partial update of a cancel policy.
// @Summary Update a cancel policy
// @Tags Cancel Policy
// @Accept json
// @Produce json
// @Param id path string true "Cancel policy ID"
// @Param request body dto.UpdateCancelPolicyRequest true "Fields to change"
// @Success 200 {object} response.Data[model.CancelPolicy]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/cancel-policies/{id} [put]
// @Router /v1/cancel-policies/{id} [patch]
// @Security CookieAuth
func (handler Handler) Update(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Update(writer, request)
}

// Delete removes a cancel policy.
// @Summary Delete a cancel policy
// @Tags Cancel Policy
// @Produce json
// @Param id path string true "Cancel policy ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/cancel-policies/{id} [delete]
// @Security CookieAuth
func (handler Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Delete(writer, request)
}
