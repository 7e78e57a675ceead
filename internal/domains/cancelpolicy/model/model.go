package model

import (
	"cruisedesk/shared/constant"
	gModel "cruisedesk/shared/model"
	gRepo "cruisedesk/shared/repository"

	"github.com/shopspring/decimal"
)

const Path = "/cancel-policies"

var Definition = gRepo.Definition{
	Entity:  constant.EntityCancelPolicy,
	Path:    Path,
	Filters: []string{constant.RequestParamSearch},
}

type CancelPolicy struct {
	ID               gModel.ID       `json:"id"`
	Name             string          `json:"name"`
	DaysBefore       int             `json:"days_before"`
	RefundPercentage decimal.Decimal `json:"refund_percentage"`
	Description      string          `json:"description"`
	gModel.Metadata
}
