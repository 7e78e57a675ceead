package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"cruisedesk/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{Code: http.StatusBadRequest, Message: "test error message"}

	assert.Equal(t, "test error message", f.Error())
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
	}{
		{name: "InvalidPageParam", failure: failure.InvalidPageParam, code: http.StatusBadRequest},
		{name: "InvalidLimitParam", failure: failure.InvalidLimitParam, code: http.StatusBadRequest},
		{name: "ForbiddenError", failure: failure.ForbiddenError, code: http.StatusForbidden},
		{name: "MissingSessionError", failure: failure.MissingSessionError, code: http.StatusUnauthorized},
		{name: "ExpiredSessionError", failure: failure.ExpiredSessionError, code: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.failure.Code)
			assert.NotEmpty(t, tt.failure.Message)
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("validation failed")), code: http.StatusBadRequest, message: "validation failed"},
		{name: "bad request from string", err: failure.BadRequestFromString("custom"), code: http.StatusBadRequest, message: "custom"},
		{name: "unauthorized", err: failure.Unauthorized("token expired"), code: http.StatusUnauthorized, message: "token expired"},
		{name: "internal", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError, message: "boom"},
		{name: "not found", err: failure.NotFound("cruise not found"), code: http.StatusNotFound, message: "cruise not found"},
		{name: "conflict", err: failure.Conflict("already exists"), code: http.StatusConflict, message: "already exists"},
		{name: "forbidden", err: failure.Forbidden("denied"), code: http.StatusForbidden, message: "denied"},
		{name: "bad gateway", err: failure.BadGateway("upstream unreachable"), code: http.StatusBadGateway, message: "upstream unreachable"},
		{name: "gateway timeout", err: failure.GatewayTimeout("upstream timed out"), code: http.StatusGatewayTimeout, message: "upstream timed out"},
		{name: "from status with message", err: failure.FromStatus(http.StatusUnprocessableEntity, "name is taken"), code: http.StatusUnprocessableEntity, message: "name is taken"},
		{name: "from status falls back to status text", err: failure.FromStatus(http.StatusTeapot, ""), code: http.StatusTeapot, message: http.StatusText(http.StatusTeapot)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure

			assert.ErrorAs(t, tt.err, &f)
			assert.Equal(t, tt.code, f.Code)
			assert.Equal(t, tt.message, f.Message)
		})
	}
}

func TestNilInputs(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{name: "failure error", input: &failure.Failure{Code: http.StatusBadRequest, Message: "test"}, expected: http.StatusBadRequest},
		{name: "wrapped failure error", input: fmt.Errorf("get cruise: %w", failure.NotFound("missing")), expected: http.StatusNotFound},
		{name: "regular error", input: errors.New("regular error"), expected: http.StatusInternalServerError},
		{name: "nil error", input: nil, expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.input))
		})
	}
}
