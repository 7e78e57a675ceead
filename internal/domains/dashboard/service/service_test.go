package service_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"cruisedesk/config"
	otelMocks "cruisedesk/infras/otel/mocks"
	"cruisedesk/infras/upstream"
	charterRepo "cruisedesk/internal/domains/charter/repository"
	cruiseRepo "cruisedesk/internal/domains/cruise/repository"
	"cruisedesk/internal/domains/dashboard/model/dto"
	"cruisedesk/internal/domains/dashboard/service"
	departureRepo "cruisedesk/internal/domains/departure/repository"
	hotelRepo "cruisedesk/internal/domains/hotel/repository"
	userRepo "cruisedesk/internal/domains/user/repository"
	"cruisedesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, handler http.HandlerFunc) service.Dashboard {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	ot := otelMocks.NewOtel()
	client := upstream.NewWithOptions(upstream.Options{BaseURL: server.URL}, ot)

	return service.New(
		cruiseRepo.New(client, nil, ot, cfg),
		hotelRepo.New(client, nil, ot, cfg),
		charterRepo.New(client, nil, ot, cfg),
		departureRepo.New(client, nil, ot, cfg),
		userRepo.New(client, nil, ot, cfg),
		ot,
	)
}

func TestDashboardService_Summary(t *testing.T) {
	totals := map[string]int{
		"/cruises":    12,
		"/hotels":     4,
		"/charters":   7,
		"/departures": 30,
		"/users":      3,
	}

	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"success":true,"message":"OK","data":{"items":[],"total":%d}}`, totals[r.URL.Path])
	})

	res, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.SummaryResponse{Cruises: 12, Hotels: 4, Charters: 7, Departures: 30, Users: 3}, res)
}

func TestDashboardService_SummaryFailure(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.URL.Path == "/users" {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"success":false,"message":"Forbidden resource"}`))

			return
		}

		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	})

	res, err := svc.Summary(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	assert.Equal(t, "Forbidden resource", err.Error())
	assert.Equal(t, dto.SummaryResponse{}, res)
}
