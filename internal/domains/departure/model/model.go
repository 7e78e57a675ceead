package model

import (
	"cruisedesk/shared/constant"
	gModel "cruisedesk/shared/model"
	gRepo "cruisedesk/shared/repository"
)

const (
	Path = "/departures"

	FieldItineraryID = "cruise_itinerary_id"
	FieldStatus      = "status"
)

var Definition = gRepo.Definition{
	Entity:     constant.EntityDeparture,
	Path:       Path,
	Filters:    []string{FieldItineraryID, FieldStatus},
	Dependents: []string{constant.EntityCharter},
}

type Departure struct {
	ID              gModel.ID        `json:"id"`
	ItineraryID     gModel.ID        `json:"cruise_itinerary_id"`
	DepartureDate   gModel.Timestamp `json:"departure_date"`
	ReturnDate      gModel.Timestamp `json:"return_date"`
	Status          string           `json:"status"`
	AvailableCabins int              `json:"available_cabins"`
	gModel.Metadata
}
