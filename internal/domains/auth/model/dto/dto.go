package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	userModel "cruisedesk/internal/domains/user/model"
)

var ErrMissingToken = errors.New("login response carried no token")

var tokenKeys = []string{"token", "access_token", "accessToken"}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Session is a successful login. Token only ever leaves the gateway inside the session cookie.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      json.RawMessage
}

// LoginPayload is the data of an upstream login response. The token key differs between
// upstream versions and the user is either nested or inlined next to the token.
type LoginPayload struct {
	Token       string          `json:"token"`
	AccessToken string          `json:"access_token"`
	CamelToken  string          `json:"accessToken"`
	User        json.RawMessage `json:"user"`
}

func (p LoginPayload) SessionToken() string {
	switch {
	case p.Token != "":
		return p.Token
	case p.AccessToken != "":
		return p.AccessToken
	default:
		return p.CamelToken
	}
}

// ParseLogin extracts the token and the user from the data of a login response.
func ParseLogin(data json.RawMessage) (string, json.RawMessage, error) {
	var payload LoginPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", nil, fmt.Errorf("failed to decode login response: %w", err)
	}

	token := payload.SessionToken()
	if token == "" {
		return "", nil, ErrMissingToken
	}

	if isEmpty(payload.User) {
		return token, userModel.NormalizeRecord(withoutTokens(data)), nil
	}

	return token, ParseUser(payload.User), nil
}

// ParseUser relays a user that is either the data itself or nested under "user", with its roles
// normalized.
func ParseUser(data json.RawMessage) json.RawMessage {
	var wrapper struct {
		User json.RawMessage `json:"user"`
	}

	if err := json.Unmarshal(data, &wrapper); err == nil && !isEmpty(wrapper.User) {
		data = wrapper.User
	}

	return userModel.NormalizeRecord(data)
}

// withoutTokens drops the token keys of an inlined login user.
func withoutTokens(data json.RawMessage) json.RawMessage {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return data
	}

	for _, key := range tokenKeys {
		delete(fields, key)
	}

	trimmed, err := json.Marshal(fields)
	if err != nil {
		return data
	}

	return trimmed
}

func isEmpty(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)

	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
