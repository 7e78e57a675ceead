package charter

import (
	"net/http"

	"cruisedesk/infras/otel"
	"cruisedesk/internal/domains/charter/model"
	"cruisedesk/internal/domains/charter/model/dto"
	"cruisedesk/internal/domains/charter/repository"
	"cruisedesk/internal/handlers/crud"
	"cruisedesk/shared/constant"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	crud *crud.Handler[model.Charter, dto.CreateCharterRequest, dto.UpdateCharterRequest]
}

func New(repo repository.Charter, otel otel.Otel) Handler {
	return Handler{
		crud: crud.New[model.Charter, dto.CreateCharterRequest, dto.UpdateCharterRequest](crud.Config{Name: constant.EntityCharter}, repo, otel),
	}
}

func (handler Handler) Router(router chi.Router) {
	router.Route("/charters", func(routerGroup chi.Router) {
		crud.Mount(routerGroup, crud.Routes{
			List:   handler.List,
			Create: handler.Create,
			Get:    handler.Get,
			Update: handler.Update,
			Delete: handler.Delete,
		})
	})
}

// List relays a page of charters.
// @Summary List charters
// @Tags Charter
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param sort_by query string false "Sort field"
// @Param sort_dir query string false "Sort direction" Enums(asc, desc)
// @Param cruise_id query string false "Filter by cruise"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.List[model.Charter]
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/charters [get]
// @Security CookieAuth
func (handler Handler) List(writer http.ResponseWriter, request *http.Request) {
	handler.crud.List(nil)(writer, request)
}

// Create creates a charter.
// @Summary Create a charter
// @Tags Charter
// @Accept json
// @Produce json
// @Param request body dto.CreateCharterRequest true "Charter"
// @Success 201 {object} response.Data[model.Charter]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/charters [post]
// @Security CookieAuth
func (handler Handler) Create(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Create(nil)(writer, request)
}

// Get relays one charter.
// @Summary Get a charter
// @Tags Charter
// @Produce json
// @Param id path string true "Charter ID"
// @Success 200 {object} response.Data[model.Charter]
// @Failure 404 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/charters/{id} [get]
// @Security CookieAuth
func (handler Handler) Get(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Get(writer, request)
}

// Update forwards PUT as a replacement and PATCH as a partial update of a charter.
// @Summary Update a charter
// @Tags Charter
// @Accept json
// @Produce json
// @Param id path string true "Charter ID"
// @Param request body dto.UpdateCharterRequest true "Fields to change"
// @Success 200 {object} response.Data[model.Charter]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/charters/{id} [put]
// @Router /v1/charters/{id} [patch]
// @Security CookieAuth
func (handler Handler) Update(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Update(writer, request)
}

// Delete removes a charter.
// @Summary Delete a charter
// @Tags Charter
// @Produce json
// @Param id path string true "Charter ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/charters/{id} [delete]
// @Security CookieAuth
func (handler Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Delete(writer, request)
}
