package dto

import "github.com/shopspring/decimal"

type CreateCancelPolicyRequest struct {
	Name             string          `json:"name"                  validate:"required,max=100"`
	DaysBefore       int             `json:"days_before"           validate:"gte=0"`
	RefundPercentage decimal.Decimal `json:"refund_percentage"     validate:"decimal_gte=0,decimal_lte=100"`
	Description      string          `json:"description,omitempty" validate:"omitempty,max=5000"`
}

type UpdateCancelPolicyRequest struct {
	Name             *string          `json:"name,omitempty"              validate:"omitempty,min=1,max=100"`
	DaysBefore       *int             `json:"days_before,omitempty"       validate:"omitempty,gte=0"`
	RefundPercentage *decimal.Decimal `json:"refund_percentage,omitempty" validate:"omitempty,decimal_gte=0,decimal_lte=100"`
	Description      *string          `json:"description,omitempty"       validate:"omitempty,max=5000"`
}
