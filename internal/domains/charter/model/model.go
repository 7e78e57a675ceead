package model

import (
	"cruisedesk/shared/constant"
	gModel "cruisedesk/shared/model"
	gRepo "cruisedesk/shared/repository"

	"github.com/shopspring/decimal"
)

const (
	Path = "/charters"

	FieldCruiseID = "cruise_id"
	FieldStatus   = "status"
)

var Definition = gRepo.Definition{
	Entity:  constant.EntityCharter,
	Path:    Path,
	Filters: []string{FieldCruiseID, FieldStatus},
}

// Charter books a whole cruise departure for one client.
type Charter struct {
	ID           gModel.ID        `json:"id"`
	CruiseID     gModel.ID        `json:"cruise_id"`
	DepartureID  gModel.ID        `json:"departure_id"`
	ClientName   string           `json:"client_name"`
	ContactEmail string           `json:"contact_email"`
	ContactPhone string           `json:"contact_phone"`
	StartDate    gModel.Timestamp `json:"start_date"`
	EndDate      gModel.Timestamp `json:"end_date"`
	TotalPrice   decimal.Decimal  `json:"total_price"`
	Status       string           `json:"status"`
	Notes        string           `json:"notes"`
	gModel.Metadata
}
