package model

import (
	"cruisedesk/shared/constant"
	gModel "cruisedesk/shared/model"
	gRepo "cruisedesk/shared/repository"
)

const (
	Path = "/cabins"

	FieldCruiseID  = "cruise_id"
	FieldCabinType = "cabin_type"
)

var Definition = gRepo.Definition{
	Entity:     constant.EntityCabin,
	Path:       Path,
	Filters:    []string{FieldCruiseID, FieldCabinType},
	Dependents: []string{constant.EntityPrice},
}

type Cabin struct {
	ID          gModel.ID `json:"id"`
	CruiseID    gModel.ID `json:"cruise_id"`
	Name        string    `json:"name"`
	CabinType   string    `json:"cabin_type"`
	Deck        string    `json:"deck"`
	Capacity    int       `json:"capacity"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	gModel.Metadata
}
