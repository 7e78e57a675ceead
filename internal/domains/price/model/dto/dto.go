package dto

import (
	gModel "cruisedesk/shared/model"

	"github.com/shopspring/decimal"
)

type CreatePriceRequest struct {
	ItineraryID gModel.ID       `json:"cruise_itinerary_id" validate:"required"`
	CabinID     gModel.ID       `json:"cabin_id"            validate:"required"`
	SeasonID    gModel.ID       `json:"season_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"              validate:"decimal_gte=0"`
	Currency    string          `json:"currency"            validate:"required,len=3,uppercase"`
}

type UpdatePriceRequest struct {
	ItineraryID *gModel.ID       `json:"cruise_itinerary_id,omitempty" validate:"omitempty"`
	CabinID     *gModel.ID       `json:"cabin_id,omitempty"            validate:"omitempty"`
	SeasonID    *gModel.ID       `json:"season_id,omitempty"           validate:"omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"              validate:"omitempty,decimal_gte=0"`
	Currency    *string          `json:"currency,omitempty"            validate:"omitempty,len=3,uppercase"`
}
