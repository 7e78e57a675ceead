package upstream_test

import (
	"net/http"
	"testing"

	"cruisedesk/infras/upstream"

	"github.com/stretchr/testify/assert"
)

func TestDecodeEnvelope(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		body            string
		expectedSuccess bool
		expectedMessage string
		expectedData    string
		expectedMeta    string
	}{
		{
			name:            "full envelope",
			status:          http.StatusOK,
			body:            `{"success":true,"message":"Cruises fetched","data":[{"id":1}]}`,
			expectedSuccess: true,
			expectedMessage: "Cruises fetched",
			expectedData:    `[{"id":1}]`,
		},
		{
			name:            "envelope with meta",
			status:          http.StatusOK,
			body:            `{"success":true,"data":[],"meta":{"total":0}}`,
			expectedSuccess: true,
			expectedMessage: "OK",
			expectedData:    `[]`,
			expectedMeta:    `{"total":0}`,
		},
		{
			name:            "envelope with pagination block",
			status:          http.StatusOK,
			body:            `{"data":[],"pagination":{"page":2}}`,
			expectedSuccess: true,
			expectedMessage: "OK",
			expectedData:    `[]`,
			expectedMeta:    `{"page":2}`,
		},
		{
			name:            "bare array",
			status:          http.StatusOK,
			body:            `[{"id":"a"}]`,
			expectedSuccess: true,
			expectedMessage: "OK",
			expectedData:    `[{"id":"a"}]`,
		},
		{
			name:            "bare object keeps the body as data",
			status:          http.StatusCreated,
			body:            `{"id":"a","name":"Aurora"}`,
			expectedSuccess: true,
			expectedMessage: "Created",
			expectedData:    `{"id":"a","name":"Aurora"}`,
		},
		{
			name:            "error field",
			status:          http.StatusUnauthorized,
			body:            `{"error":"Token expired"}`,
			expectedSuccess: false,
			expectedMessage: "Token expired",
			expectedData:    `{"error":"Token expired"}`,
		},
		{
			name:            "errors array",
			status:          http.StatusUnprocessableEntity,
			body:            `{"success":false,"errors":["name is required","capacity is invalid"]}`,
			expectedSuccess: false,
			expectedMessage: "name is required",
			expectedData:    `null`,
		},
		{
			name:            "errors object of lists",
			status:          http.StatusBadRequest,
			body:            `{"success":false,"errors":{"name":["name is required"],"deck":"deck must be positive"}}`,
			expectedSuccess: false,
			expectedMessage: "deck must be positive",
			expectedData:    `null`,
		},
		{
			name:            "success flag cannot override a failing status",
			status:          http.StatusInternalServerError,
			body:            `{"success":true,"data":null}`,
			expectedSuccess: false,
			expectedMessage: "Internal Server Error",
			expectedData:    `null`,
		},
		{
			name:            "unsuccessful envelope on 200",
			status:          http.StatusOK,
			body:            `{"success":false,"message":"Cruise name already taken","data":null}`,
			expectedSuccess: false,
			expectedMessage: "Cruise name already taken",
			expectedData:    `null`,
		},
		{
			name:            "empty body",
			status:          http.StatusNoContent,
			body:            ``,
			expectedSuccess: true,
			expectedMessage: "No Content",
			expectedData:    `null`,
		},
		{
			name:            "html error page",
			status:          http.StatusBadGateway,
			body:            `<html>bad gateway</html>`,
			expectedSuccess: false,
			expectedMessage: "Bad Gateway",
			expectedData:    `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelope := upstream.DecodeEnvelope(tt.status, []byte(tt.body))

			assert.Equal(t, tt.expectedSuccess, envelope.Success)
			assert.Equal(t, tt.expectedMessage, envelope.Message)
			assert.Equal(t, tt.expectedData, string(envelope.Data))
			assert.Equal(t, tt.expectedMeta, string(envelope.Meta))
		})
	}
}
