package dto

import (
	gModel "cruisedesk/shared/model"

	"github.com/shopspring/decimal"
)

type CreateCharterRequest struct {
	CruiseID     gModel.ID       `json:"cruise_id"               validate:"required"`
	DepartureID  gModel.ID       `json:"departure_id,omitempty"`
	ClientName   string          `json:"client_name"             validate:"required,max=100"`
	ContactEmail string          `json:"contact_email,omitempty" validate:"omitempty,email,max=100"`
	ContactPhone string          `json:"contact_phone,omitempty" validate:"omitempty,max=20"`
	StartDate    string          `json:"start_date"              validate:"required,timestamp"`
	EndDate      string          `json:"end_date"                validate:"required,timestamp"`
	TotalPrice   decimal.Decimal `json:"total_price"             validate:"decimal_gte=0"`
	Status       string          `json:"status,omitempty"        validate:"omitempty,oneof=pending confirmed cancelled completed"`
	Notes        string          `json:"notes,omitempty"         validate:"omitempty,max=5000"`
}

type UpdateCharterRequest struct {
	CruiseID     *gModel.ID       `json:"cruise_id,omitempty"     validate:"omitempty"`
	DepartureID  *gModel.ID       `json:"departure_id,omitempty"  validate:"omitempty"`
	ClientName   *string          `json:"client_name,omitempty"   validate:"omitempty,min=1,max=100"`
	ContactEmail *string          `json:"contact_email,omitempty" validate:"omitempty,email,max=100"`
	ContactPhone *string          `json:"contact_phone,omitempty" validate:"omitempty,max=20"`
	StartDate    *string          `json:"start_date,omitempty"    validate:"omitempty,timestamp"`
	EndDate      *string          `json:"end_date,omitempty"      validate:"omitempty,timestamp"`
	TotalPrice   *decimal.Decimal `json:"total_price,omitempty"   validate:"omitempty,decimal_gte=0"`
	Status       *string          `json:"status,omitempty"        validate:"omitempty,oneof=pending confirmed cancelled completed"`
	Notes        *string          `json:"notes,omitempty"         validate:"omitempty,max=5000"`
}
