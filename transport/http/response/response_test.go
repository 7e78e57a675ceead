package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cruisedesk/shared/dto"
	"cruisedesk/shared/failure"
	"cruisedesk/transport/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	return body
}

func TestWithData(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithData(recorder, http.StatusCreated, "Cruise created", map[string]string{"id": "1"})

	assert.Equal(t, http.StatusCreated, recorder.Code)

	body := decode(t, recorder)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Cruise created", body["message"])
	assert.Equal(t, map[string]any{"id": "1"}, body["data"])
	assert.NotContains(t, body, "pagination")
}

func TestWithJSON_DefaultMessage(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusOK, []int{1})

	body := decode(t, recorder)
	assert.Equal(t, "OK", body["message"])
	assert.Equal(t, []any{float64(1)}, body["data"])
}

func TestWithList(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithList(recorder, http.StatusOK, "", []string{"a"}, dto.Pagination{Page: 2, Limit: 1, Total: 3, TotalPage: 3})

	body := decode(t, recorder)
	assert.Equal(t, "OK", body["message"])
	assert.Equal(t, []any{"a"}, body["data"])
	assert.Equal(t, map[string]any{"page": float64(2), "limit": float64(1), "total": float64(3), "total_page": float64(3)}, body["pagination"])
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{name: "failure", err: failure.FromStatus(http.StatusConflict, "Cabin already exists"), wantCode: http.StatusConflict, wantMessage: "Cabin already exists"},
		{name: "plain error", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantMessage: "boom"},
		{name: "empty message", err: failure.FromStatus(http.StatusNotFound, ""), wantCode: http.StatusNotFound, wantMessage: "Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.wantCode, recorder.Code)

			body := decode(t, recorder)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantMessage, body["message"])
			assert.Nil(t, body["data"])
		})
	}
}

func TestWithErrorData(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithErrorData(recorder, failure.FromStatus(http.StatusUnprocessableEntity, "invalid"), map[string]int{"done": 1})

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	body := decode(t, recorder)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, map[string]any{"done": float64(1)}, body["data"])
}

func TestDefaultResponses(t *testing.T) {
	recorder := httptest.NewRecorder()
	response.WithRequestLimitExceeded(recorder)
	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Equal(t, false, decode(t, recorder)["success"])

	recorder = httptest.NewRecorder()
	response.WithPreparingShutdown(recorder)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	recorder = httptest.NewRecorder()
	response.WithUnhealthy(recorder)
	assert.Equal(t, "SERVER UNHEALTHY", decode(t, recorder)["message"])
}
