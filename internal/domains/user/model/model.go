package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"cruisedesk/shared/constant"
	gModel "cruisedesk/shared/model"
	gRepo "cruisedesk/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	Path = "/users"

	FieldRole   = "role"
	FieldRoles  = "roles"
	FieldActive = "active"
)

var Definition = gRepo.Definition{
	Entity:  constant.EntityUser,
	Path:    Path,
	Filters: []string{constant.RequestParamSearch, FieldRole, FieldActive},
	Reshape: NormalizeRecord,
}

type User struct {
	ID     gModel.ID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Roles  Roles     `json:"roles"`
	Active bool      `json:"active"`
	gModel.Metadata
}

// UnmarshalJSON also reads the singular "role" some upstream payloads carry and merges it into Roles.
func (u *User) UnmarshalJSON(data []byte) error {
	type alias User

	aux := struct {
		*alias
		Role json.RawMessage `json:"role"`
	}{alias: (*alias)(u)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("failed to decode user: %w", err)
	}

	if u.Roles == nil {
		u.Roles = Roles{}
	}

	if len(aux.Role) == 0 || bytes.Equal(bytes.TrimSpace(aux.Role), []byte("null")) {
		return nil
	}

	var role Roles
	if err := json.Unmarshal(aux.Role, &role); err != nil {
		return fmt.Errorf("failed to decode user role: %w", err)
	}

	u.Roles = NormalizeRoles(append(u.Roles, role...)...)

	return nil
}

// NormalizeRecord rewrites "roles" of a raw user into the normalized array, folding in a singular
// "role". Every other field stays as the upstream sent it. Non-objects are returned unchanged.
func NormalizeRecord(data json.RawMessage) json.RawMessage {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return data
	}

	values, err := roleValues(fields[FieldRoles])
	if err != nil {
		log.Warn().Err(err).Msg("dropping unreadable user roles")
	}

	if role, err := roleValues(fields[FieldRole]); err == nil {
		values = append(values, role...)
	}

	roles, err := json.Marshal(NormalizeRoles(values...))
	if err != nil {
		return data
	}

	fields[FieldRoles] = roles

	normalized, err := json.Marshal(fields)
	if err != nil {
		return data
	}

	return normalized
}
