package dto_test

import (
	"encoding/json"
	"testing"

	"cruisedesk/internal/domains/auth/model/dto"
	userModel "cruisedesk/internal/domains/user/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogin(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantToken string
		wantEmail string
		wantRoles userModel.Roles
		wantErr   error
	}{
		{
			name:      "token with nested user",
			data:      `{"token":"t1","user":{"id":1,"email":"a@example.com","roles":"Admin,Editor"}}`,
			wantToken: "t1",
			wantEmail: "a@example.com",
			wantRoles: userModel.Roles{"admin", "editor"},
		},
		{
			name:      "access_token with inline user",
			data:      `{"access_token":"t2","id":2,"email":"b@example.com","role":"viewer"}`,
			wantToken: "t2",
			wantEmail: "b@example.com",
			wantRoles: userModel.Roles{"viewer"},
		},
		{
			name:      "camel case token",
			data:      `{"accessToken":"t3","user":{"id":3,"email":"c@example.com","roles":[{"name":"Admin"}]}}`,
			wantToken: "t3",
			wantEmail: "c@example.com",
			wantRoles: userModel.Roles{"admin"},
		},
		{
			name:    "no token",
			data:    `{"user":{"id":1}}`,
			wantErr: dto.ErrMissingToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, raw, err := dto.ParseLogin(json.RawMessage(tt.data))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
			assert.NotContains(t, string(raw), tt.wantToken)

			var user userModel.User
			require.NoError(t, json.Unmarshal(raw, &user))
			assert.Equal(t, tt.wantEmail, user.Email)
			assert.Equal(t, tt.wantRoles, user.Roles)
		})
	}
}

func TestParseLogin_InvalidPayload(t *testing.T) {
	_, _, err := dto.ParseLogin(json.RawMessage(`["not","an","object"]`))
	assert.Error(t, err)
}

func TestParseUser(t *testing.T) {
	raw := dto.ParseUser(json.RawMessage(`{"user":{"id":"9","name":"Nia","roles":null}}`))
	assert.JSONEq(t, `{"id":"9","name":"Nia","roles":[]}`, string(raw))

	raw = dto.ParseUser(json.RawMessage(`{"id":9,"name":"Nia","roles":["Admin"],"active":1}`))
	assert.JSONEq(t, `{"id":9,"name":"Nia","roles":["admin"],"active":1}`, string(raw))
}
