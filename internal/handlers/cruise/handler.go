package cruise

import (
	"net/http"

	"cruisedesk/infras/otel"
	"cruisedesk/internal/domains/cruise/model"
	"cruisedesk/internal/domains/cruise/model/dto"
	"cruisedesk/internal/domains/cruise/repository"
	"cruisedesk/internal/handlers/crud"
	"cruisedesk/shared/constant"

	"github.com/go-chi/chi/v5"
)

// Handler serves /cruises.
type Handler struct {
	crud *crud.Handler[model.Cruise, dto.CreateCruiseRequest, dto.UpdateCruiseRequest]
}

func New(repo repository.Cruise, otel otel.Otel) Handler {
	return Handler{
		crud: crud.New[model.Cruise, dto.CreateCruiseRequest, dto.UpdateCruiseRequest](crud.Config{Name: constant.EntityCruise}, repo, otel),
	}
}

func (handler Handler) Router(router chi.Router) {
	router.Route("/cruises", func(routerGroup chi.Router) {
		crud.Mount(routerGroup, crud.Routes{
			List:   handler.List,
			Create: handler.Create,
			Get:    handler.Get,
			Update: handler.Update,
			Delete: handler.Delete,
		})
	})
}

// List relays a page of cruises.
// @Summary List cruises
// @Tags Cruise
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param sort_by query string false "Sort field"
// @Param sort_dir query string false "Sort direction" Enums(asc, desc)
// @Param search query string false "Search term"
// @Param active query string false "Filter by active flag"
// @Success 200 {object} response.List[model.Cruise]
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/cruises [get]
// @Security CookieAuth
func (handler Handler) List(writer http.ResponseWriter, request *http.Request) {
	handler.crud.List(nil)(writer, request)
}

// Create creates a cruise.
// @Summary Create a cruise
// @Tags Cruise
// @Accept json
// @Produce json
// @Param request body dto.CreateCruiseRequest true "Cruise"
// @Success 201 {object} response.Data[model.Cruise]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/cruises [post]
// @Security CookieAuth
func (handler Handler) Create(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Create(nil)(writer, request)
}

// Get relays one cruise.
// @Summary Get a cruise
// @Tags Cruise
// @Produce json
// @Param id path string true "Cruise ID"
// @Success 200 {object} response.Data[model.Cruise]
// @Failure 404 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/cruises/{id} [get]
// @Security CookieAuth
func (handler Handler) Get(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Get(writer, request)
}

// Update forwards PUT as a replacement and PATCH as a partial update of a cruise.
// @Summary Update a cruise
// @Tags Cruise
// @Accept json
// @Produce json
// @Param id path string true "Cruise ID"
// @Param request body dto.UpdateCruiseRequest true "Fields to change"
// @Success 200 {object} response.Data[model.Cruise]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/cruises/{id} [put]
// @Router /v1/cruises/{id} [patch]
// @Security CookieAuth
func (handler Handler) Update(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Update(writer, request)
}

// Delete removes a cruise.
// @Summary Delete a cruise
// @Tags Cruise
// @Produce json
// @Param id path string true "Cruise ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/cruises/{id} [delete]
// @Security CookieAuth
func (handler Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Delete(writer, request)
}
