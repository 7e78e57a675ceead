package router_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"cruisedesk/config"
	"cruisedesk/infras/jwt"
	otelMocks "cruisedesk/infras/otel/mocks"
	"cruisedesk/infras/upstream"
	authService "cruisedesk/internal/domains/auth/service"
	cabinRepo "cruisedesk/internal/domains/cabin/repository"
	cabinService "cruisedesk/internal/domains/cabin/service"
	cancelPolicyRepo "cruisedesk/internal/domains/cancelpolicy/repository"
	charterRepo "cruisedesk/internal/domains/charter/repository"
	cruiseRepo "cruisedesk/internal/domains/cruise/repository"
	dashboardService "cruisedesk/internal/domains/dashboard/service"
	departureRepo "cruisedesk/internal/domains/departure/repository"
	hotelRepo "cruisedesk/internal/domains/hotel/repository"
	itineraryRepo "cruisedesk/internal/domains/itinerary/repository"
	mediaService "cruisedesk/internal/domains/media/service"
	priceRepo "cruisedesk/internal/domains/price/repository"
	roomRepo "cruisedesk/internal/domains/room/repository"
	seasonRepo "cruisedesk/internal/domains/season/repository"
	userRepo "cruisedesk/internal/domains/user/repository"
	"cruisedesk/internal/handlers/auth"
	"cruisedesk/internal/handlers/cabin"
	"cruisedesk/internal/handlers/cancelpolicy"
	"cruisedesk/internal/handlers/charter"
	"cruisedesk/internal/handlers/cruise"
	"cruisedesk/internal/handlers/dashboard"
	"cruisedesk/internal/handlers/departure"
	"cruisedesk/internal/handlers/hotel"
	"cruisedesk/internal/handlers/itinerary"
	"cruisedesk/internal/handlers/media"
	"cruisedesk/internal/handlers/price"
	"cruisedesk/internal/handlers/room"
	"cruisedesk/internal/handlers/season"
	"cruisedesk/internal/handlers/user"
	"cruisedesk/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	method string
	path   string
	query  url.Values
}

type fakeUpstream struct {
	mu    sync.Mutex
	calls []call
}

func (f *fakeUpstream) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = nil
}

func (f *fakeUpstream) recorded() []call {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]call(nil), f.calls...)
}

func newRouter(t *testing.T) (chi.Router, *fakeUpstream) {
	t.Helper()

	fake := &fakeUpstream{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fake.mu.Lock()
		fake.calls = append(fake.calls, call{method: r.Method, path: r.URL.Path, query: r.URL.Query()})
		fake.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"ok","data":{"id":"1"}}`))
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.App.Session.CookieName = "desk_session"

	ot := otelMocks.NewOtel()
	client := upstream.NewWithOptions(upstream.Options{BaseURL: server.URL}, ot)

	cruises := cruiseRepo.New(client, nil, ot, cfg)
	hotels := hotelRepo.New(client, nil, ot, cfg)
	cabins := cabinRepo.New(client, nil, ot, cfg)
	departures := departureRepo.New(client, nil, ot, cfg)
	charters := charterRepo.New(client, nil, ot, cfg)
	users := userRepo.New(client, nil, ot, cfg)

	r := router.New(router.DomainHandlers{
		Auth:         auth.New(authService.New(client, jwt.New(), cfg, ot), ot, cfg),
		Cruise:       cruise.New(cruises, ot),
		Hotel:        hotel.New(hotels, ot),
		HotelRoom:    room.New(roomRepo.New(client, nil, ot, cfg), ot),
		Cabin:        cabin.New(cabins, cabinService.New(cabins, ot), ot),
		Itinerary:    itinerary.New(itineraryRepo.New(client, nil, ot, cfg), ot),
		Departure:    departure.New(departures, ot),
		Price:        price.New(priceRepo.New(client, nil, ot, cfg), ot),
		Season:       season.New(seasonRepo.New(client, nil, ot, cfg), ot),
		CancelPolicy: cancelpolicy.New(cancelPolicyRepo.New(client, nil, ot, cfg), ot),
		Charter:      charter.New(charters, ot),
		User:         user.New(users, ot),
		Media:        media.New(mediaService.New(client, nil, cfg, ot), ot, cfg),
		Dashboard:    dashboard.New(dashboardService.New(cruises, hotels, charters, departures, users, ot), ot),
	})

	mux := chi.NewRouter()
	r.SetupRoutes(mux)

	return mux, fake
}

func TestSetupRoutes_OverlappingMounts(t *testing.T) {
	mux, fake := newRouter(t)

	tests := []struct {
		method       string
		target       string
		body         string
		wantMethod   string
		wantPath     string
		wantFilter   string
		wantFilterID string
	}{
		{method: http.MethodGet, target: "/v1/cruises", wantMethod: http.MethodGet, wantPath: "/cruises"},
		{method: http.MethodGet, target: "/v1/cruises/c1", wantMethod: http.MethodGet, wantPath: "/cruises/c1"},
		{method: http.MethodGet, target: "/v1/cruises/c1/cabins", wantMethod: http.MethodGet, wantPath: "/cabins", wantFilter: "cruise_id", wantFilterID: "c1"},
		{method: http.MethodGet, target: "/v1/cruises/c1/itineraries", wantMethod: http.MethodGet, wantPath: "/cruise-itineraries", wantFilter: "cruise_id", wantFilterID: "c1"},
		{method: http.MethodPatch, target: "/v1/cruises/c1/cabins/7", body: `{"name":"Deck 7"}`, wantMethod: http.MethodPatch, wantPath: "/cabins/7"},
		{method: http.MethodPost, target: "/v1/cruises/c1/cabins/sync", body: `{"deleted":["9"]}`, wantMethod: http.MethodDelete, wantPath: "/cabins/9"},
		{method: http.MethodGet, target: "/v1/cabins/7", wantMethod: http.MethodGet, wantPath: "/cabins/7"},
		{method: http.MethodGet, target: "/v1/hotels/h1/rooms", wantMethod: http.MethodGet, wantPath: "/hotel-rooms", wantFilter: "hotel_id", wantFilterID: "h1"},
		{method: http.MethodGet, target: "/v1/itineraries/i1", wantMethod: http.MethodGet, wantPath: "/cruise-itineraries/i1"},
		{method: http.MethodGet, target: "/v1/itineraries/i1/departures", wantMethod: http.MethodGet, wantPath: "/departures", wantFilter: "cruise_itinerary_id", wantFilterID: "i1"},
		{method: http.MethodGet, target: "/v1/itineraries/i1/prices", wantMethod: http.MethodGet, wantPath: "/prices", wantFilter: "cruise_itinerary_id", wantFilterID: "i1"},
		{method: http.MethodDelete, target: "/v1/cancel-policies/3", wantMethod: http.MethodDelete, wantPath: "/cancel-policies/3"},
		{method: http.MethodGet, target: "/v1/auth/me", wantMethod: http.MethodGet, wantPath: "/auth/me"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			fake.reset()

			request := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			request.Header.Set("Content-Type", "application/json")

			recorder := httptest.NewRecorder()
			mux.ServeHTTP(recorder, request)

			require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

			calls := fake.recorded()
			require.Len(t, calls, 1)
			assert.Equal(t, tt.wantMethod, calls[0].method)
			assert.Equal(t, tt.wantPath, calls[0].path)

			if tt.wantFilter != "" {
				assert.Equal(t, tt.wantFilterID, calls[0].query.Get(tt.wantFilter))
			}
		})
	}
}

func TestSetupRoutes_DashboardAndUnknown(t *testing.T) {
	mux, fake := newRouter(t)

	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/dashboard/summary", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Len(t, fake.recorded(), 5)

	fake.reset()

	recorder = httptest.NewRecorder()
	mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/boats", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Empty(t, fake.recorded())

	recorder = httptest.NewRecorder()
	mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/cruises", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
