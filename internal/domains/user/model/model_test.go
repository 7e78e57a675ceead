package model_test

import (
	"encoding/json"
	"testing"

	"cruisedesk/internal/domains/user/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoles_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected model.Roles
		wantErr  bool
	}{
		{name: "null", input: `null`, expected: model.Roles{}},
		{name: "empty string", input: `""`, expected: model.Roles{}},
		{name: "single string", input: `"Admin"`, expected: model.Roles{"admin"}},
		{name: "comma separated", input: `" admin, Editor ,,viewer"`, expected: model.Roles{"admin", "editor", "viewer"}},
		{name: "array inside a string", input: `"[\"admin\",\"Editor\"]"`, expected: model.Roles{"admin", "editor"}},
		{name: "broken array inside a string", input: `"[admin, editor"`, expected: model.Roles{"admin", "editor"}},
		{name: "array of strings", input: `["Admin", " admin ", "editor", ""]`, expected: model.Roles{"admin", "editor"}},
		{name: "array of objects", input: `[{"id":1,"name":"Admin"},{"name":"editor"},{"id":3}]`, expected: model.Roles{"admin", "editor"}},
		{name: "mixed array", input: `["viewer", {"name":"Admin"}, null]`, expected: model.Roles{"viewer", "admin"}},
		{name: "single object", input: `{"name":" Manager "}`, expected: model.Roles{"manager"}},
		{name: "empty array", input: `[]`, expected: model.Roles{}},
		{name: "number", input: `42`, wantErr: true},
		{name: "array of numbers", input: `[1, 2]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var roles model.Roles

			err := json.Unmarshal([]byte(tt.input), &roles)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, roles)
		})
	}
}

func TestRoles_MarshalJSON(t *testing.T) {
	var empty model.Roles

	data, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	data, err = json.Marshal(model.Roles{"admin", "editor"})
	require.NoError(t, err)
	assert.JSONEq(t, `["admin","editor"]`, string(data))
}

func TestNormalizeRoles(t *testing.T) {
	assert.Equal(t, model.Roles{"admin", "editor"}, model.NormalizeRoles("ADMIN", "", " editor", "admin"))
	assert.Equal(t, model.Roles{}, model.NormalizeRoles())
	assert.True(t, model.Roles{"admin"}.Has(" Admin"))
	assert.False(t, model.Roles{"admin"}.Has("editor"))
}

func TestUser_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected model.Roles
	}{
		{name: "roles absent", input: `{"id":1,"email":"a@b.c"}`, expected: model.Roles{}},
		{name: "singular role", input: `{"id":1,"role":"Admin"}`, expected: model.Roles{"admin"}},
		{name: "role merged after roles", input: `{"id":1,"roles":"editor,viewer","role":{"name":"admin"}}`, expected: model.Roles{"editor", "viewer", "admin"}},
		{name: "duplicate role", input: `{"id":1,"roles":["admin"],"role":"ADMIN"}`, expected: model.Roles{"admin"}},
		{name: "null role", input: `{"id":1,"roles":["admin"],"role":null}`, expected: model.Roles{"admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var user model.User

			require.NoError(t, json.Unmarshal([]byte(tt.input), &user))
			assert.Equal(t, "1", user.ID.String())
			assert.Equal(t, tt.expected, user.Roles)
		})
	}
}

func TestUser_MarshalJSON(t *testing.T) {
	var user model.User

	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"name":"Ana","email":"ana@example.com","role":"Admin","active":true,"created_at":"2025-01-02 03:04:05"}`), &user))

	data, err := json.Marshal(user)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, "7", out["id"])
	assert.Equal(t, []any{"admin"}, out["roles"])
	assert.NotContains(t, out, "role")
	assert.NotNil(t, out["created_at"])
	assert.Nil(t, out["updated_at"])
}

func TestNormalizeRecord(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "roles string with singular role",
			input:    `{"id":4,"email":"ana@example.com","roles":"Editor","role":"Admin","active":1}`,
			expected: `{"id":4,"email":"ana@example.com","roles":["editor","admin"],"role":"Admin","active":1}`,
		},
		{
			name:     "missing roles",
			input:    `{"id":"5","created_at":"2025-01-02 10:00:00"}`,
			expected: `{"id":"5","created_at":"2025-01-02 10:00:00","roles":[]}`,
		},
		{
			name:     "unreadable roles",
			input:    `{"id":6,"roles":42}`,
			expected: `{"id":6,"roles":[]}`,
		},
		{name: "not an object", input: `[1,2]`, expected: `[1,2]`},
		{name: "null", input: `null`, expected: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.JSONEq(t, tt.expected, string(model.NormalizeRecord(json.RawMessage(tt.input))))
		})
	}
}
