package season

import (
	"net/http"

	"cruisedesk/infras/otel"
	"cruisedesk/internal/domains/season/model"
	"cruisedesk/internal/domains/season/model/dto"
	"cruisedesk/internal/domains/season/repository"
	"cruisedesk/internal/handlers/crud"
	"cruisedesk/shared/constant"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	crud *crud.Handler[model.Season, dto.CreateSeasonRequest, dto.UpdateSeasonRequest]
}

func New(repo repository.Season, otel otel.Otel) Handler {
	return Handler{
		crud: crud.New[model.Season, dto.CreateSeasonRequest, dto.UpdateSeasonRequest](crud.Config{Name: constant.EntitySeason}, repo, otel),
	}
}

func (handler Handler) Router(router chi.Router) {
	router.Route("/seasons", func(routerGroup chi.Router) {
		crud.Mount(routerGroup, crud.Routes{
			List:   handler.List,
			Create: handler.Create,
			Get:    handler.Get,
			Update: handler.Update,
			Delete: handler.Delete,
		})
	})
}

// List relays a page of seasons.
// @Summary List seasons
// @Tags Season
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param sort_by query string false "Sort field"
// @Param sort_dir query string false "Sort direction" Enums(asc, desc)
// @Param search query string false "Search term"
// @Success 200 {object} response.List[model.Season]
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/seasons [get]
// @Security CookieAuth
func (handler Handler) List(writer http.ResponseWriter, request *http.Request) {
	handler.crud.List(nil)(writer, request)
}

// Create creates a season.
// @Summary Create a season
// @Tags Season
// @Accept json
// @Produce json
// @Param request body dto.CreateSeasonRequest true "Season"
// @Success 201 {object} response.Data[model.Season]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/seasons [post]
// @Security CookieAuth
func (handler Handler) Create(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Create(nil)(writer, request)
}

// Get relays one season.
// @Summary Get a season
// @Tags Season
// @Produce json
// @Param id path string true "Season ID"
// @Success 200 {object} response.Data[model.Season]
// @Failure 404 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/seasons/{id} [get]
// @Security CookieAuth
func (handler Handler) Get(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Get(writer, request)
}

// Update forwards PUT as a replacement and PATCH as a partial update of a season.
// @Summary Update a season
// @Tags Season
// @Accept json
// @Produce json
// @Param id path string true "Season ID"
// @Param request body dto.UpdateSeasonRequest true "Fields to change"
// @Success 200 {object} response.Data[model.Season]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/seasons/{id} [put]
// @Router /v1/seasons/{id} [patch]
// @Security CookieAuth
func (handler Handler) Update(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Update(writer, request)
}

// Delete removes a season.
// @Summary Delete a season
// @Tags Season
// @Produce json
// @Param id path string true "Season ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/seasons/{id} [delete]
// @Security CookieAuth
func (handler Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Delete(writer, request)
}
