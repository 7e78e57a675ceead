package model

import (
	"cruisedesk/shared/constant"
	gModel "cruisedesk/shared/model"
	gRepo "cruisedesk/shared/repository"

	"github.com/shopspring/decimal"
)

const Path = "/seasons"

var Definition = gRepo.Definition{
	Entity:     constant.EntitySeason,
	Path:       Path,
	Filters:    []string{constant.RequestParamSearch},
	Dependents: []string{constant.EntityPrice},
}

type Season struct {
	ID               gModel.ID        `json:"id"`
	Name             string           `json:"name"`
	StartDate        gModel.Timestamp `json:"start_date"`
	EndDate          gModel.Timestamp `json:"end_date"`
	MarkupPercentage decimal.Decimal  `json:"markup_percentage"`
	gModel.Metadata
}
