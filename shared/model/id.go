package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ID is an upstream identifier. The backend is not consistent about sending numbers or strings,
// so both decode into the same string form.
type ID string

func (id ID) String() string {
	return string(id)
}

func (id ID) IsZero() bool {
	return id == ""
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""

		return nil
	}

	if data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return fmt.Errorf("failed to decode id: %w", err)
		}

		*id = ID(strings.TrimSpace(value))

		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}

	*id = ID(number.String())

	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}

	return json.Marshal(string(id))
}
