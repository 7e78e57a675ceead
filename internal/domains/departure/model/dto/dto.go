package dto

import gModel "cruisedesk/shared/model"

type CreateDepartureRequest struct {
	ItineraryID     gModel.ID `json:"cruise_itinerary_id" validate:"required"`
	DepartureDate   string    `json:"departure_date"      validate:"required,timestamp"`
	ReturnDate      string    `json:"return_date"         validate:"required,timestamp"`
	Status          string    `json:"status,omitempty"    validate:"omitempty,oneof=scheduled open closed full cancelled completed"`
	AvailableCabins int       `json:"available_cabins"    validate:"gte=0"`
}

type UpdateDepartureRequest struct {
	ItineraryID     *gModel.ID `json:"cruise_itinerary_id,omitempty" validate:"omitempty"`
	DepartureDate   *string    `json:"departure_date,omitempty"      validate:"omitempty,timestamp"`
	ReturnDate      *string    `json:"return_date,omitempty"         validate:"omitempty,timestamp"`
	Status          *string    `json:"status,omitempty"              validate:"omitempty,oneof=scheduled open closed full cancelled completed"`
	AvailableCabins *int       `json:"available_cabins,omitempty"    validate:"omitempty,gte=0"`
}
