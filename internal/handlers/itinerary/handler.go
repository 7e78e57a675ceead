package itinerary

import (
	"net/http"

	"cruisedesk/infras/otel"
	"cruisedesk/internal/domains/itinerary/model"
	"cruisedesk/internal/domains/itinerary/model/dto"
	"cruisedesk/internal/domains/itinerary/repository"
	"cruisedesk/internal/handlers/crud"
	"cruisedesk/shared/constant"

	"github.com/go-chi/chi/v5"
)

var cruiseParent = crud.Parent{URLParam: "cruiseID", Field: model.FieldCruiseID}

type Handler struct {
	crud *crud.Handler[model.Itinerary, dto.CreateItineraryRequest, dto.UpdateItineraryRequest]
}

func New(repo repository.Itinerary, otel otel.Otel) Handler {
	return Handler{
		crud: crud.New[model.Itinerary, dto.CreateItineraryRequest, dto.UpdateItineraryRequest](crud.Config{Name: constant.EntityItinerary}, repo, otel),
	}
}

func (handler Handler) Router(router chi.Router) {
	router.Route("/itineraries", func(routerGroup chi.Router) {
		crud.Mount(routerGroup, crud.Routes{
			List:   handler.List,
			Create: handler.Create,
			Get:    handler.Get,
			Update: handler.Update,
			Delete: handler.Delete,
		})
	})

	router.Route("/cruises/{cruiseID}/itineraries", func(routerGroup chi.Router) {
		crud.Mount(routerGroup, crud.Routes{
			List:   handler.ListByCruise,
			Create: handler.CreateForCruise,
			Get:    handler.Get,
			Update: handler.Update,
			Delete: handler.Delete,
		})
	})
}

// List relays a page of itineraries.
// @Summary List itineraries
// @Tags Itinerary
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param sort_by query string false "Sort field"
// @Param sort_dir query string false "Sort direction" Enums(asc, desc)
// @Param cruise_id query string false "Filter by cruise"
// @Success 200 {object} response.List[model.Itinerary]
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/itineraries [get]
// @Security CookieAuth
func (handler Handler) List(writer http.ResponseWriter, request *http.Request) {
	handler.crud.List(nil)(writer, request)
}

// Create creates an itinerary.
// @Summary Create an itinerary
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body dto.CreateItineraryRequest true "Itinerary"
// @Success 201 {object} response.Data[model.Itinerary]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/itineraries [post]
// @Security CookieAuth
func (handler Handler) Create(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Create(nil)(writer, request)
}

// ListByCruise relays a page of the itineraries of one cruise.
// @Summary List itineraries of a cruise
// @Tags Itinerary
// @Produce json
// @Param cruiseID path string true "Cruise ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param sort_by query string false "Sort field"
// @Param sort_dir query string false "Sort direction" Enums(asc, desc)
// @Success 200 {object} response.List[model.Itinerary]
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/cruises/{cruiseID}/itineraries [get]
// @Security CookieAuth
func (handler Handler) ListByCruise(writer http.ResponseWriter, request *http.Request) {
	handler.crud.List(&cruiseParent)(writer, request)
}

// CreateForCruise creates an itinerary under the cruise in the path.
// @Summary Create an itinerary for a cruise
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param cruiseID path string true "Cruise ID"
// @Param request body dto.CreateItineraryRequest true "Itinerary"
// @Success 201 {object} response.Data[model.Itinerary]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/cruises/{cruiseID}/itineraries [post]
// @Security CookieAuth
func (handler Handler) CreateForCruise(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Create(&cruiseParent)(writer, request)
}

// Get relays one itinerary.
// @Summary Get an itinerary
// @Tags Itinerary
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} response.Data[model.Itinerary]
// @Failure 404 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/itineraries/{id} [get]
// @Security CookieAuth
func (handler Handler) Get(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Get(writer, request)
}

// Update forwards PUT as a replacement and PATCH as a partial update of an itinerary.
// @Summary Update an itinerary
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param request body dto.UpdateItineraryRequest true "Fields to change"
// @Success 200 {object} response.Data[model.Itinerary]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/itineraries/{id} [put]
// @Router /v1/itineraries/{id} [patch]
// @Security CookieAuth
func (handler Handler) Update(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Update(writer, request)
}

// Delete removes an itinerary.
// @Summary Delete an itinerary
// @Tags Itinerary
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/itineraries/{id} [delete]
// @Security CookieAuth
func (handler Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Delete(writer, request)
}
