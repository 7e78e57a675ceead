package model

import (
	"cruisedesk/shared/constant"
	gModel "cruisedesk/shared/model"
	gRepo "cruisedesk/shared/repository"

	"github.com/shopspring/decimal"
)

const (
	Path = "/hotel-rooms"

	FieldHotelID  = "hotel_id"
	FieldRoomType = "room_type"
)

var Definition = gRepo.Definition{
	Entity:  constant.EntityHotelRoom,
	Path:    Path,
	Filters: []string{FieldHotelID, FieldRoomType},
}

// HotelRoom is a room type offered by a hotel, not a single physical room.
type HotelRoom struct {
	ID          gModel.ID       `json:"id"`
	HotelID     gModel.ID       `json:"hotel_id"`
	Name        string          `json:"name"`
	RoomType    string          `json:"room_type"`
	Capacity    int             `json:"capacity"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	gModel.Metadata
}
