package dto

import (
	"cruisedesk/internal/domains/user/model"
)

type CreateUserRequest struct {
	Name     string      `json:"name"             validate:"required,max=100"`
	Email    string      `json:"email"            validate:"required,email,max=100"`
	Password string      `json:"password"         validate:"required,min=8,max=72"`
	Roles    model.Roles `json:"roles"            validate:"omitempty,max=20,dive,max=50"`
	Role     model.Roles `json:"role,omitempty"   validate:"omitempty,max=20,dive,max=50"`
	Active   *bool       `json:"active,omitempty"`
}

// Normalize folds the singular role into roles, which always goes upstream as an array.
func (r *CreateUserRequest) Normalize() {
	r.Roles = model.NormalizeRoles(append(r.Roles, r.Role...)...)
	r.Role = nil
}

// UpdateUserRequest only forwards what the client sent. Roles is nil when absent and non-nil once
// present, so an explicit empty list still reaches the upstream and clears the roles.
type UpdateUserRequest struct {
	Name     *string     `json:"name,omitempty"     validate:"omitempty,min=1,max=100"`
	Email    *string     `json:"email,omitempty"    validate:"omitempty,email,max=100"`
	Password *string     `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	Roles    model.Roles `json:"roles,omitzero"     validate:"omitempty,max=20,dive,max=50"`
	Role     model.Roles `json:"role,omitzero"      validate:"omitempty,max=20,dive,max=50"`
	Active   *bool       `json:"active,omitempty"`
}

func (r *UpdateUserRequest) Normalize() {
	if r.Roles == nil && r.Role == nil {
		return
	}

	r.Roles = model.NormalizeRoles(append(r.Roles, r.Role...)...)
	r.Role = nil
}
