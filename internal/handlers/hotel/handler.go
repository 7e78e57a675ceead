package hotel

import (
	"net/http"

	"cruisedesk/infras/otel"
	"cruisedesk/internal/domains/hotel/model"
	"cruisedesk/internal/domains/hotel/model/dto"
	"cruisedesk/internal/domains/hotel/repository"
	"cruisedesk/internal/handlers/crud"
	"cruisedesk/shared/constant"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	crud *crud.Handler[model.Hotel, dto.CreateHotelRequest, dto.UpdateHotelRequest]
}

func New(repo repository.Hotel, otel otel.Otel) Handler {
	return Handler{
		crud: crud.New[model.Hotel, dto.CreateHotelRequest, dto.UpdateHotelRequest](crud.Config{Name: constant.EntityHotel}, repo, otel),
	}
}

func (handler Handler) Router(router chi.Router) {
	router.Route("/hotels", func(routerGroup chi.Router) {
		crud.Mount(routerGroup, crud.Routes{
			List:   handler.List,
			Create: handler.Create,
			Get:    handler.Get,
			Update: handler.Update,
			Delete: handler.Delete,
		})
	})
}

// List relays a page of hotels.
// @Summary List hotels
// @Tags Hotel
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param sort_by query string false "Sort field"
// @Param sort_dir query string false "Sort direction" Enums(asc, desc)
// @Param search query string false "Search term"
// @Param city query string false "Filter by city"
// @Param country query string false "Filter by country"
// @Param active query string false "Filter by active flag"
// @Success 200 {object} response.List[model.Hotel]
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/hotels [get]
// @Security CookieAuth
func (handler Handler) List(writer http.ResponseWriter, request *http.Request) {
	handler.crud.List(nil)(writer, request)
}

// Create creates a hotel.
// @Summary Create a hotel
// @Tags Hotel
// @Accept json
// @Produce json
// @Param request body dto.CreateHotelRequest true "Hotel"
// @Success 201 {object} response.Data[model.Hotel]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/hotels [post]
// @Security CookieAuth
func (handler Handler) Create(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Create(nil)(writer, request)
}

// Get relays one hotel.
// @Summary Get a hotel
// @Tags Hotel
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} response.Data[model.Hotel]
// @Failure 404 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/hotels/{id} [get]
// @Security CookieAuth
func (handler Handler) Get(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Get(writer, request)
}

// Update forwards PUT as a replacement and PATCH as a partial update of a hotel.
// @Summary Update a hotel
// @Tags Hotel
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param request body dto.UpdateHotelRequest true "Fields to change"
// @Success 200 {object} response.Data[model.Hotel]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/hotels/{id} [put]
// @Router /v1/hotels/{id} [patch]
// @Security CookieAuth
func (handler Handler) Update(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Update(writer, request)
}

// Delete removes a hotel.
// @Summary Delete a hotel
// @Tags Hotel
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/hotels/{id} [delete]
// @Security CookieAuth
func (handler Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Delete(writer, request)
}
