package dto

type CreateHotelRequest struct {
	Name        string `json:"name"                  validate:"required,max=150"`
	Address     string `json:"address,omitempty"     validate:"omitempty,max=255"`
	City        string `json:"city"                  validate:"required,max=100"`
	Country     string `json:"country"               validate:"required,max=100"`
	Stars       int    `json:"stars,omitempty"       validate:"omitempty,min=1,max=5"`
	Description string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Image       string `json:"image,omitempty"       validate:"omitempty,url"`
	Active      *bool  `json:"active,omitempty"`
}

type UpdateHotelRequest struct {
	Name        *string `json:"name,omitempty"        validate:"omitempty,min=1,max=150"`
	Address     *string `json:"address,omitempty"     validate:"omitempty,max=255"`
	City        *string `json:"city,omitempty"        validate:"omitempty,min=1,max=100"`
	Country     *string `json:"country,omitempty"     validate:"omitempty,min=1,max=100"`
	Stars       *int    `json:"stars,omitempty"       validate:"omitempty,min=1,max=5"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Image       *string `json:"image,omitempty"       validate:"omitempty,url"`
	Active      *bool   `json:"active,omitempty"`
}
