package model

import (
	"cruisedesk/shared/constant"
	gModel "cruisedesk/shared/model"
	gRepo "cruisedesk/shared/repository"

	"github.com/shopspring/decimal"
)

const (
	Path = "/prices"

	FieldItineraryID = "cruise_itinerary_id"
	FieldCabinID     = "cabin_id"
	FieldSeasonID    = "season_id"
)

var Definition = gRepo.Definition{
	Entity:  constant.EntityPrice,
	Path:    Path,
	Filters: []string{FieldItineraryID, FieldCabinID, FieldSeasonID},
}

// Price is the fare of one cabin on one itinerary, optionally bound to a season.
type Price struct {
	ID          gModel.ID       `json:"id"`
	ItineraryID gModel.ID       `json:"cruise_itinerary_id"`
	CabinID     gModel.ID       `json:"cabin_id"`
	SeasonID    gModel.ID       `json:"season_id"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	gModel.Metadata
}
