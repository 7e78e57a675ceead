package cabin_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cruisedesk/config"
	otelMocks "cruisedesk/infras/otel/mocks"
	"cruisedesk/infras/upstream"
	"cruisedesk/internal/domains/cabin/repository"
	"cruisedesk/internal/domains/cabin/service"
	"cruisedesk/internal/handlers/cabin"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Results []struct {
			Op      string `json:"op"`
			ID      string `json:"id"`
			TempID  string `json:"temp_id"`
			Status  string `json:"status"`
			Success bool   `json:"success"`
		} `json:"results"`
	} `json:"data"`
}

func newRouter(t *testing.T, reply http.HandlerFunc) chi.Router {
	t.Helper()

	server := httptest.NewServer(reply)
	t.Cleanup(server.Close)

	ot := otelMocks.NewOtel()
	client := upstream.NewWithOptions(upstream.Options{BaseURL: server.URL}, ot)
	repo := repository.New(client, nil, ot, &config.Config{})
	handler := cabin.New(repo, service.New(repo, ot), ot)

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func postSync(router http.Handler, body string) (*httptest.ResponseRecorder, syncResponse) {
	request := httptest.NewRequest(http.MethodPost, "/cruises/c1/cabins/sync", strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	var res syncResponse
	_ = json.Unmarshal(recorder.Body.Bytes(), &res)

	return recorder, res
}

func TestSync_Success(t *testing.T) {
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"success":true,"message":"created","data":{"id":"11","cruise_id":"c1"}}`))

			return
		}

		_, _ = w.Write([]byte(`{"success":true,"message":"deleted"}`))
	})

	recorder, res := postSync(router, `{"cabins":[{"temp_id":"t1","name":"Suite","cabin_type":"suite","capacity":2}],"deleted":["9"]}`)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, res.Success)
	require.Len(t, res.Data.Results, 2)
	assert.Equal(t, "delete", res.Data.Results[0].Op)
	assert.Equal(t, "create", res.Data.Results[1].Op)
	assert.Equal(t, "11", res.Data.Results[1].ID)
	assert.Equal(t, "t1", res.Data.Results[1].TempID)
}

func TestSync_FailureCarriesResults(t *testing.T) {
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"success":false,"message":"Cabin is booked"}`))

			return
		}

		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"2"}}`))
	})

	recorder, res := postSync(router, `{"cabins":[{"id":"2","name":"Suite","cabin_type":"suite","capacity":2}],"deleted":["9"]}`)

	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	assert.False(t, res.Success)
	assert.Equal(t, "Cabin is booked", res.Message)
	require.Len(t, res.Data.Results, 2)
	assert.Equal(t, "failed", res.Data.Results[0].Status)
	assert.Equal(t, "skipped", res.Data.Results[1].Status)
}

func TestSync_InvalidDraft(t *testing.T) {
	router := newRouter(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("upstream must not be called")
	})

	recorder, res := postSync(router, `{"cabins":[{"temp_id":"t1","cabin_type":"suite","capacity":2}]}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.False(t, res.Success)
	assert.Empty(t, res.Data.Results)
}
