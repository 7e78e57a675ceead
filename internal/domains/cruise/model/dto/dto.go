package dto

type CreateCruiseRequest struct {
	Name         string `json:"name"                  validate:"required,max=150"`
	ShipName     string `json:"ship_name"             validate:"required,max=150"`
	Description  string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Capacity     int    `json:"capacity"              validate:"gte=0"`
	DurationDays int    `json:"duration_days"         validate:"gte=0"`
	Image        string `json:"image,omitempty"       validate:"omitempty,url"`
	Active       *bool  `json:"active,omitempty"`
}

type UpdateCruiseRequest struct {
	Name         *string `json:"name,omitempty"          validate:"omitempty,min=1,max=150"`
	ShipName     *string `json:"ship_name,omitempty"     validate:"omitempty,min=1,max=150"`
	Description  *string `json:"description,omitempty"   validate:"omitempty,max=5000"`
	Capacity     *int    `json:"capacity,omitempty"      validate:"omitempty,gte=0"`
	DurationDays *int    `json:"duration_days,omitempty" validate:"omitempty,gte=0"`
	Image        *string `json:"image,omitempty"         validate:"omitempty,url"`
	Active       *bool   `json:"active,omitempty"`
}
