package dto

import gModel "cruisedesk/shared/model"

type CreateItineraryRequest struct {
	CruiseID    gModel.ID `json:"cruise_id"             validate:"required"`
	Name        string    `json:"name"                  validate:"required,max=150"`
	Days        int       `json:"days"                  validate:"gte=1"`
	Nights      int       `json:"nights"                validate:"gte=0,ltefield=Days"`
	Ports       []string  `json:"ports"                 validate:"omitempty,max=50,dive,required,max=100"`
	Description string    `json:"description,omitempty" validate:"omitempty,max=5000"`
}

type UpdateItineraryRequest struct {
	CruiseID    *gModel.ID `json:"cruise_id,omitempty"   validate:"omitempty"`
	Name        *string    `json:"name,omitempty"        validate:"omitempty,min=1,max=150"`
	Days        *int       `json:"days,omitempty"        validate:"omitempty,gte=1"`
	Nights      *int       `json:"nights,omitempty"      validate:"omitempty,gte=0"`
	Ports       []string   `json:"ports,omitempty"       validate:"omitempty,max=50,dive,required,max=100"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=5000"`
}
