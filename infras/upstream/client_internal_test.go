package upstream

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryAfter(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{name: "absent", value: "", expected: 0},
		{name: "seconds", value: "3", expected: 3 * time.Second},
		{name: "negative", value: "-1", expected: 0},
		{name: "garbage", value: "soon", expected: 0},
		{name: "date in the past", value: "Mon, 02 Jan 2006 15:04:05 GMT", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.value != "" {
				header.Set("Retry-After", tt.value)
			}

			assert.Equal(t, tt.expected, retryAfter(header))
		})
	}
}

func TestRetryAfter_FutureDate(t *testing.T) {
	header := http.Header{}
	header.Set("Retry-After", time.Now().Add(10*time.Second).UTC().Format(http.TimeFormat))

	wait := retryAfter(header)

	assert.Greater(t, wait, 5*time.Second)
	assert.LessOrEqual(t, wait, 10*time.Second)
}

func TestBackoff(t *testing.T) {
	for attempt := range 4 {
		base := time.Duration(1<<attempt) * backoffBase
		wait := backoff(attempt)

		assert.GreaterOrEqual(t, wait, base)
		assert.LessOrEqual(t, wait, base+base/2)
	}
}

func TestSleepCtx(t *testing.T) {
	assert.True(t, sleepCtx(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, sleepCtx(ctx, time.Second))
	assert.False(t, sleepCtx(ctx, 0))
}

func TestEndpointLabel(t *testing.T) {
	assert.Equal(t, "/cabins", endpointLabel("/cabins/42"))
	assert.Equal(t, "/cruise-itineraries", endpointLabel("cruise-itineraries"))
	assert.Equal(t, "/auth", endpointLabel("/auth/login"))
	assert.Equal(t, "/", endpointLabel(""))
}

func TestRetryable(t *testing.T) {
	assert.True(t, retryable(http.StatusTooManyRequests))
	assert.True(t, retryable(http.StatusGatewayTimeout))
	assert.False(t, retryable(http.StatusInternalServerError))
	assert.False(t, retryable(http.StatusNotFound))
}
