package model

import (
	"cruisedesk/shared/constant"
	gModel "cruisedesk/shared/model"
	gRepo "cruisedesk/shared/repository"
)

const (
	Path = "/cruises"

	FieldID     = "id"
	FieldActive = "active"
)

var Definition = gRepo.Definition{
	Entity:     constant.EntityCruise,
	Path:       Path,
	Filters:    []string{constant.RequestParamSearch, FieldActive},
	Dependents: []string{constant.EntityCabin, constant.EntityItinerary, constant.EntityCharter},
}

type Cruise struct {
	ID           gModel.ID `json:"id"`
	Name         string    `json:"name"`
	ShipName     string    `json:"ship_name"`
	Description  string    `json:"description"`
	Capacity     int       `json:"capacity"`
	DurationDays int       `json:"duration_days"`
	Image        string    `json:"image"`
	Active       bool      `json:"active"`
	gModel.Metadata
}
