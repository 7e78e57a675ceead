package price

import (
	"net/http"

	"cruisedesk/infras/otel"
	"cruisedesk/internal/domains/price/model"
	"cruisedesk/internal/domains/price/model/dto"
	"cruisedesk/internal/domains/price/repository"
	"cruisedesk/internal/handlers/crud"
	"cruisedesk/shared/constant"

	"github.com/go-chi/chi/v5"
)

var itineraryParent = crud.Parent{URLParam: "itineraryID", Field: model.FieldItineraryID}

// Handler serves cabin prices. Prices are listed per itinerary and narrowed by cabin or season.
type Handler struct {
	crud *crud.Handler[model.Price, dto.CreatePriceRequest, dto.UpdatePriceRequest]
}

func New(repo repository.Price, otel otel.Otel) Handler {
	return Handler{
		crud: crud.New[model.Price, dto.CreatePriceRequest, dto.UpdatePriceRequest](crud.Config{Name: constant.EntityPrice}, repo, otel),
	}
}

func (handler Handler) Router(router chi.Router) {
	router.Route("/prices", func(routerGroup chi.Router) {
		crud.Mount(routerGroup, crud.Routes{
			List:   handler.List,
			Create: handler.Create,
			Get:    handler.Get,
			Update: handler.Update,
			Delete: handler.Delete,
		})
	})

	router.Route("/itineraries/{itineraryID}/prices", func(routerGroup chi.Router) {
		crud.Mount(routerGroup, crud.Routes{
			List:   handler.ListByItinerary,
			Create: handler.CreateForItinerary,
			Get:    handler.Get,
			Update: handler.Update,
			Delete: handler.Delete,
		})
	})
}

// List relays a page of prices.
// @Summary List prices
// @Tags Price
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param sort_by query string false "Sort field"
// @Param sort_dir query string false "Sort direction" Enums(asc, desc)
// @Param cruise_itinerary_id query string false "Filter by itinerary"
// @Param cabin_id query string false "Filter by cabin"
// @Param season_id query string false "Filter by season"
// @Success 200 {object} response.List[model.Price]
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/prices [get]
// @Security CookieAuth
func (handler Handler) List(writer http.ResponseWriter, request *http.Request) {
	handler.crud.List(nil)(writer, request)
}

// Create creates a price.
// @Summary Create a price
// @Tags Price
// @Accept json
// @Produce json
// @Param request body dto.CreatePriceRequest true "Price"
// @Success 201 {object} response.Data[model.Price]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/prices [post]
// @Security CookieAuth
func (handler Handler) Create(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Create(nil)(writer, request)
}

// ListByItinerary relays a page of the prices of one itinerary.
// @Summary List prices of an itinerary
// @Tags Price
// @Produce json
// @Param itineraryID path string true "Itinerary ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param sort_by query string false "Sort field"
// @Param sort_dir query string false "Sort direction" Enums(asc, desc)
// @Param cabin_id query string false "Filter by cabin"
// @Param season_id query string false "Filter by season"
// @Success 200 {object} response.List[model.Price]
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/itineraries/{itineraryID}/prices [get]
// @Security CookieAuth
func (handler Handler) ListByItinerary(writer http.ResponseWriter, request *http.Request) {
	handler.crud.List(&itineraryParent)(writer, request)
}

// CreateForItinerary creates a price under the itinerary in the path.
// @Summary Create a price for an itinerary
// @Tags Price
// @Accept json
// @Produce json
// @Param itineraryID path string true "Itinerary ID"
// @Param request body dto.CreatePriceRequest true "Price"
// @Success 201 {object} response.Data[model.Price]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/itineraries/{itineraryID}/prices [post]
// @Security CookieAuth
func (handler Handler) CreateForItinerary(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Create(&itineraryParent)(writer, request)
}

// Get relays one price.
// @Summary Get a price
// @Tags Price
// @Produce json
// @Param id path string true "Price ID"
// @Success 200 {object} response.Data[model.Price]
// @Failure 404 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/prices/{id} [get]
// @Security CookieAuth
func (handler Handler) Get(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Get(writer, request)
}

// Update forwards PUT as a replacement and PATCH as a partial update of a price.
// @Summary Update a price
// @Tags Price
// @Accept json
// @Produce json
// @Param id path string true "Price ID"
// @Param request body dto.UpdatePriceRequest true "Fields to change"
// @Success 200 {object} response.Data[model.Price]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/prices/{id} [put]
// @Router /v1/prices/{id} [patch]
// @Security CookieAuth
func (handler Handler) Update(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Update(writer, request)
}

// Delete removes a price.
// @Summary Delete a price
// @Tags Price
// @Produce json
// @Param id path string true "Price ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/prices/{id} [delete]
// @Security CookieAuth
func (handler Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Delete(writer, request)
}
