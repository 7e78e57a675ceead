package dto

import "github.com/shopspring/decimal"

type CreateSeasonRequest struct {
	Name             string          `json:"name"              validate:"required,max=100"`
	StartDate        string          `json:"start_date"        validate:"required,timestamp"`
	EndDate          string          `json:"end_date"          validate:"required,timestamp"`
	MarkupPercentage decimal.Decimal `json:"markup_percentage" validate:"decimal_gte=-100,decimal_lte=1000"`
}

type UpdateSeasonRequest struct {
	Name             *string          `json:"name,omitempty"              validate:"omitempty,min=1,max=100"`
	StartDate        *string          `json:"start_date,omitempty"        validate:"omitempty,timestamp"`
	EndDate          *string          `json:"end_date,omitempty"          validate:"omitempty,timestamp"`
	MarkupPercentage *decimal.Decimal `json:"markup_percentage,omitempty" validate:"omitempty,decimal_gte=-100,decimal_lte=1000"`
}
