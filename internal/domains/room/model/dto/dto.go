package dto

import (
	gModel "cruisedesk/shared/model"

	"github.com/shopspring/decimal"
)

type CreateHotelRoomRequest struct {
	HotelID     gModel.ID       `json:"hotel_id"              validate:"required"`
	Name        string          `json:"name"                  validate:"required,max=100"`
	RoomType    string          `json:"room_type"             validate:"required,max=50"`
	Capacity    int             `json:"capacity"              validate:"gte=1"`
	Quantity    int             `json:"quantity"              validate:"gte=0"`
	Price       decimal.Decimal `json:"price"                 validate:"decimal_gte=0"`
	Description string          `json:"description,omitempty" validate:"omitempty,max=5000"`
	Image       string          `json:"image,omitempty"       validate:"omitempty,url"`
}

type UpdateHotelRoomRequest struct {
	HotelID     *gModel.ID       `json:"hotel_id,omitempty"    validate:"omitempty"`
	Name        *string          `json:"name,omitempty"        validate:"omitempty,min=1,max=100"`
	RoomType    *string          `json:"room_type,omitempty"   validate:"omitempty,min=1,max=50"`
	Capacity    *int             `json:"capacity,omitempty"    validate:"omitempty,gte=1"`
	Quantity    *int             `json:"quantity,omitempty"    validate:"omitempty,gte=0"`
	Price       *decimal.Decimal `json:"price,omitempty"       validate:"omitempty,decimal_gte=0"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=5000"`
	Image       *string          `json:"image,omitempty"       validate:"omitempty,url"`
}
