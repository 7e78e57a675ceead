package model

import (
	"cruisedesk/shared/constant"
	gModel "cruisedesk/shared/model"
	gRepo "cruisedesk/shared/repository"
)

const (
	Path = "/hotels"

	FieldCity    = "city"
	FieldCountry = "country"
	FieldActive  = "active"
)

var Definition = gRepo.Definition{
	Entity:     constant.EntityHotel,
	Path:       Path,
	Filters:    []string{constant.RequestParamSearch, FieldCity, FieldCountry, FieldActive},
	Dependents: []string{constant.EntityHotelRoom},
}

type Hotel struct {
	ID          gModel.ID `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Stars       int       `json:"stars"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Active      bool      `json:"active"`
	gModel.Metadata
}
