package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cruisedesk/infras/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T) string {
	t.Helper()

	recorder := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	body, err := io.ReadAll(recorder.Body)
	require.NoError(t, err)

	return string(body)
}

func TestHandler_ExposesRecordedSeries(t *testing.T) {
	metrics.ObserveHTTP("/v1/cruises", http.MethodGet, http.StatusOK, 15*time.Millisecond)
	metrics.ObserveUpstream("/cabins", http.MethodPost, http.StatusCreated, time.Millisecond)
	metrics.ObserveCache("redis", metrics.CacheEventHit)

	out := scrape(t)

	assert.Contains(t, out, `cruisedesk_http_requests_total{method="GET",route="/v1/cruises",status="200"}`)
	assert.Contains(t, out, "cruisedesk_http_request_duration_seconds")
	assert.Contains(t, out, `cruisedesk_upstream_requests_total{endpoint="/cabins",method="POST",status="201"}`)
	assert.Contains(t, out, "cruisedesk_upstream_request_duration_seconds")
	assert.Contains(t, out, `cruisedesk_cache_events_total{cache="redis",event="hit"}`)
}

func TestRegistry_IsShared(t *testing.T) {
	assert.Same(t, metrics.Registry(), metrics.Registry())
}
