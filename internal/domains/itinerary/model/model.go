package model

import (
	"cruisedesk/shared/constant"
	gModel "cruisedesk/shared/model"
	gRepo "cruisedesk/shared/repository"
)

const (
	Path = "/cruise-itineraries"

	FieldCruiseID = "cruise_id"
)

var Definition = gRepo.Definition{
	Entity:     constant.EntityItinerary,
	Path:       Path,
	Filters:    []string{FieldCruiseID},
	Dependents: []string{constant.EntityDeparture, constant.EntityPrice},
}

type Itinerary struct {
	ID          gModel.ID `json:"id"`
	CruiseID    gModel.ID `json:"cruise_id"`
	Name        string    `json:"name"`
	Days        int       `json:"days"`
	Nights      int       `json:"nights"`
	Ports       []string  `json:"ports"`
	Description string    `json:"description"`
	gModel.Metadata
}
