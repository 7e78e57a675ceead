package room

import (
	"net/http"

	"cruisedesk/infras/otel"
	"cruisedesk/internal/domains/room/model"
	"cruisedesk/internal/domains/room/model/dto"
	"cruisedesk/internal/domains/room/repository"
	"cruisedesk/internal/handlers/crud"
	"cruisedesk/shared/constant"

	"github.com/go-chi/chi/v5"
)

var hotelParent = crud.Parent{URLParam: "hotelID", Field: model.FieldHotelID}

// Handler serves hotel rooms both flat and under their hotel.
type Handler struct {
	crud *crud.Handler[model.HotelRoom, dto.CreateHotelRoomRequest, dto.UpdateHotelRoomRequest]
}

func New(repo repository.HotelRoom, otel otel.Otel) Handler {
	return Handler{
		crud: crud.New[model.HotelRoom, dto.CreateHotelRoomRequest, dto.UpdateHotelRoomRequest](crud.Config{Name: constant.EntityHotelRoom}, repo, otel),
	}
}

func (handler Handler) Router(router chi.Router) {
	router.Route("/hotel-rooms", func(routerGroup chi.Router) {
		crud.Mount(routerGroup, crud.Routes{
			List:   handler.List,
			Create: handler.Create,
			Get:    handler.Get,
			Update: handler.Update,
			Delete: handler.Delete,
		})
	})

	router.Route("/hotels/{hotelID}/rooms", func(routerGroup chi.Router) {
		crud.Mount(routerGroup, crud.Routes{
			List:   handler.ListByHotel,
			Create: handler.CreateForHotel,
			Get:    handler.Get,
			Update: handler.Update,
			Delete: handler.Delete,
		})
	})
}

// List relays a page of hotel rooms.
// @Summary List hotel rooms
// @Tags Hotel Room
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param sort_by query string false "Sort field"
// @Param sort_dir query string false "Sort direction" Enums(asc, desc)
// @Param hotel_id query string false "Filter by hotel"
// @Param room_type query string false "Filter by room type"
// @Success 200 {object} response.List[model.HotelRoom]
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/hotel-rooms [get]
// @Security CookieAuth
func (handler Handler) List(writer http.ResponseWriter, request *http.Request) {
	handler.crud.List(nil)(writer, request)
}

// Create creates a hotel room.
// @Summary Create a hotel room
// @Tags Hotel Room
// @Accept json
// @Produce json
// @Param request body dto.CreateHotelRoomRequest true "Hotel room"
// @Success 201 {object} response.Data[model.HotelRoom]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/hotel-rooms [post]
// @Security CookieAuth
func (handler Handler) Create(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Create(nil)(writer, request)
}

// ListByHotel relays a page of the hotel rooms of one hotel.
// @Summary List hotel rooms of a hotel
// @Tags Hotel Room
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param sort_by query string false "Sort field"
// @Param sort_dir query string false "Sort direction" Enums(asc, desc)
// @Param room_type query string false "Filter by room type"
// @Success 200 {object} response.List[model.HotelRoom]
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/hotels/{hotelID}/rooms [get]
// @Security CookieAuth
func (handler Handler) ListByHotel(writer http.ResponseWriter, request *http.Request) {
	handler.crud.List(&hotelParent)(writer, request)
}

// CreateForHotel creates a hotel room under the hotel in the path.
// @Summary Create a hotel room for a hotel
// @Tags Hotel Room
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param request body dto.CreateHotelRoomRequest true "Hotel room"
// @Success 201 {object} response.Data[model.HotelRoom]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/hotels/{hotelID}/rooms [post]
// @Security CookieAuth
func (handler Handler) CreateForHotel(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Create(&hotelParent)(writer, request)
}

// Get relays one hotel room.
// @Summary Get a hotel room
// @Tags Hotel Room
// @Produce json
// @Param id path string true "Hotel room ID"
// @Success 200 {object} response.Data[model.HotelRoom]
// @Failure 404 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/hotel-rooms/{id} [get]
// @Security CookieAuth
func (handler Handler) Get(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Get(writer, request)
}

// Update forwards PUT as a replacement and PATCH as a partial update of a hotel room.
// @Summary Update a hotel room
// @Tags Hotel Room
// @Accept json
// @Produce json
// @Param id path string true "Hotel room ID"
// @Param request body dto.UpdateHotelRoomRequest true "Fields to change"
// @Success 200 {object} response.Data[model.HotelRoom]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/hotel-rooms/{id} [put]
// @Router /v1/hotel-rooms/{id} [patch]
// @Security CookieAuth
func (handler Handler) Update(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Update(writer, request)
}

// Delete removes a hotel room.
// @Summary Delete a hotel room
// @Tags Hotel Room
// @Produce json
// @Param id path string true "Hotel room ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/hotel-rooms/{id} [delete]
// @Security CookieAuth
func (handler Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	handler.crud.Delete(writer, request)
}
