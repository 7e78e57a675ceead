package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var errInvalidRoles = errors.New("roles must be a string, an array or an object")

// Roles is the normalized role list of a user: trimmed, lower-cased, without blanks or duplicates.
// The upstream is not consistent about the shape, so decoding accepts a comma separated string,
// a JSON array encoded inside a string, an array of strings or of {"name": ...} objects and a
// single object. It always encodes as an array.
type Roles []string

func NormalizeRoles(values ...string) Roles {
	roles := Roles{}
	seen := make(map[string]bool, len(values))

	for _, value := range values {
		role := strings.ToLower(strings.TrimSpace(value))
		if role == "" || seen[role] {
			continue
		}

		seen[role] = true
		roles = append(roles, role)
	}

	return roles
}

func (r Roles) Has(role string) bool {
	role = strings.ToLower(strings.TrimSpace(role))

	for _, value := range r {
		if value == role {
			return true
		}
	}

	return false
}

func (r Roles) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("[]"), nil
	}

	return json.Marshal([]string(r))
}

func (r *Roles) UnmarshalJSON(data []byte) error {
	values, err := roleValues(data)
	if err != nil {
		return err
	}

	*r = NormalizeRoles(values...)

	return nil
}

func roleValues(data []byte) ([]string, error) {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	switch data[0] {
	case '"':
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return nil, fmt.Errorf("failed to decode roles: %w", err)
		}

		return rolesFromString(value), nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("failed to decode roles: %w", err)
		}

		values := make([]string, 0, len(items))

		for _, item := range items {
			value, err := roleName(item)
			if err != nil {
				return nil, err
			}

			values = append(values, value)
		}

		return values, nil
	case '{':
		value, err := roleName(data)
		if err != nil {
			return nil, err
		}

		return []string{value}, nil
	default:
		return nil, errInvalidRoles
	}
}

func rolesFromString(value string) []string {
	value = strings.TrimSpace(value)

	if strings.HasPrefix(value, "[") {
		if values, err := roleValues([]byte(value)); err == nil {
			return values
		}

		value = strings.Trim(value, "[]")
	}

	return strings.Split(value, ",")
}

func roleName(item json.RawMessage) (string, error) {
	item = bytes.TrimSpace(item)

	if len(item) == 0 || bytes.Equal(item, []byte("null")) {
		return "", nil
	}

	switch item[0] {
	case '"':
		var value string
		if err := json.Unmarshal(item, &value); err != nil {
			return "", fmt.Errorf("failed to decode role: %w", err)
		}

		return value, nil
	case '{':
		var value struct {
			Name string `json:"name"`
		}

		if err := json.Unmarshal(item, &value); err != nil {
			return "", fmt.Errorf("failed to decode role: %w", err)
		}

		return value.Name, nil
	default:
		return "", errInvalidRoles
	}
}
