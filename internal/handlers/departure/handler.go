package departure

import (
	"net/http"

	"cruisedesk/infras/otel"
	"cruisedesk/internal/domains/departure/model"
	"cruisedesk/internal/domains/departure/model/dto"
	"cruisedesk/internal/domains/departure/repository"
	"cruisedesk/internal/handlers/crud"
	"cruisedesk/shared/constant"

	"github.com/go-chi/chi/v5"
)

var itineraryParent = crud.Parent{URLParam: "itineraryID", Field: model.FieldItineraryID}

type Handler struct {
	crud *crud.Handler[model.Departure, dto.CreateDepartureRequest, dto.UpdateDepartureRequest]
}

func New(repo repository.Departure, otel otel.Otel) Handler {
	return Handler{
		crud: crud.New[model.Departure, dto.CreateDepartureRequest, dto.UpdateDepartureRequest](crud.Config{Name: constant.EntityDeparture}, repo, otel),
	}
}

func (handler Handler) Router(router chi.Router) {
	router.Route("/departures", func(routerGroup chi.Router) {
		crud.Mount(routerGroup, crud.Routes{
			List:   handler.List,
			Create: handler.Create,
			Get:    handler.Get,
			Update: handler.Update,
			Delete: handler.Delete,
		})
	})

	router.Route("/itineraries/{itineraryID}/departures", func(routerGroup chi.Router) {
		crud.Mount(routerGroup, crud.Routes{
			List:   handler.ListByItinerary,
			Create: handler.CreateForItinerary,
			Get:    handler.Get,
			Update: handler.Update,
			Delete: handler.Delete,
		})
	})
}

// List relays a page of departures.
// @Summary List departures
// @Tags Departure
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param sort_by query string false "Sort field"
// @Param sort_dir query string false "Sort direction" Enums(asc, desc)
// @Param cruise_itinerary_id query string false "Filter by itinerary"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.List[model.Departure]
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/departures [get]
// @Security CookieAuth
func (handler Handler) List(writer http.ResponseWriter, request *http.Request) {
	handler.crud.List(nil)(writer, request)
}

// Create creates a departure.
// @Summary Create a departure
// @Tags Departure
// @Accept json
// @Produce json
// @Param request body dto.CreateDepartureRequest true "Departure"
// @Success 201 {object} response.Data[model.Departure]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/departures [post]
// @Security CookieAuth
func (handler Handler) Create(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Create(nil)(writer, request)
}

// ListByItinerary relays a page of the departures of one itinerary.
// @Summary List departures of an itinerary
// @Tags Departure
// @Produce json
// @Param itineraryID path string true "Itinerary ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param sort_by query string false "Sort field"
// @Param sort_dir query string false "Sort direction" Enums(asc, desc)
// @Param status query string false "Filter by status"
// @Success 200 {object} response.List[model.Departure]
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/itineraries/{itineraryID}/departures [get]
// @Security CookieAuth
func (handler Handler) ListByItinerary(writer http.ResponseWriter, request *http.Request) {
	handler.crud.List(&itineraryParent)(writer, request)
}

// CreateForItinerary creates a departure under the itinerary in the path.
// @Summary Create a departure for an itinerary
// @Tags Departure
// @Accept json
// @Produce json
// @Param itineraryID path string true "Itinerary ID"
// @Param request body dto.CreateDepartureRequest true "Departure"
// @Success 201 {object} response.Data[model.Departure]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/itineraries/{itineraryID}/departures [post]
// @Security CookieAuth
func (handler Handler) CreateForItinerary(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Create(&itineraryParent)(writer, request)
}

// Get relays one departure.
// @Summary Get a departure
// @Tags Departure
// @Produce json
// @Param id path string true "Departure ID"
// @Success 200 {object} response.Data[model.Departure]
// @Failure 404 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/departures/{id} [get]
// @Security CookieAuth
func (handler Handler) Get(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Get(writer, request)
}

// Update forwards PUT as a replacement and PATCH as a partial update of a departure.
// @Summary Update a departure
// @Tags Departure
// @Accept json
// @Produce json
// @Param id path string true "Departure ID"
// @Param request body dto.UpdateDepartureRequest true "Fields to change"
// @Success 200 {object} response.Data[model.Departure]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/departures/{id} [put]
// @Router /v1/departures/{id} [patch]
// @Security CookieAuth
func (handler Handler) Update(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Update(writer, request)
}

// Delete removes a departure.
// @Summary Delete a departure
// @Tags Departure
// @Produce json
// @Param id path string true "Departure ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/departures/{id} [delete]
// @Security CookieAuth
func (handler Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Delete(writer, request)
}
