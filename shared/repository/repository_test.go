package repository_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cruisedesk/config"
	otelMocks "cruisedesk/infras/otel/mocks"
	"cruisedesk/infras/upstream"
	"cruisedesk/shared/cache"
	"cruisedesk/shared/constant"
	"cruisedesk/shared/dto"
	"cruisedesk/shared/failure"
	"cruisedesk/shared/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cabin struct{}

var cabinDefinition = repository.Definition{
	Entity:     "cabin",
	Path:       "/cabins",
	Filters:    []string{"cruise_id", "cabin_type"},
	Dependents: []string{"price"},
}

type fixture struct {
	repo     repository.Repository[cabin]
	redis    *miniredis.Miniredis
	calls    atomic.Int32
	mu       sync.Mutex
	requests []*http.Request
	bodies   []string
	handler  http.HandlerFunc
}

func newFixture(t *testing.T, cacheEnabled bool, handler http.HandlerFunc) *fixture {
	t.Helper()

	f := &fixture{handler: handler}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		f.mu.Lock()
		f.requests = append(f.requests, r)
		f.bodies = append(f.bodies, string(body))
		f.mu.Unlock()

		f.calls.Add(1)
		f.handler(w, r)
	}))
	t.Cleanup(server.Close)

	f.redis = miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: f.redis.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Cache.Enable = cacheEnabled
	cfg.Cache.TTL = 60

	ot := otelMocks.NewOtel()
	upstreamClient := upstream.NewWithOptions(upstream.Options{BaseURL: server.URL}, ot)

	f.repo = repository.New[cabin](cabinDefinition, upstreamClient, cache.NewRedisCache(client, ot), ot, cfg)

	return f
}

func (f *fixture) lastRequest() (*http.Request, string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.requests[len(f.requests)-1], f.bodies[len(f.bodies)-1]
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func sessionContext(token string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeySessionToken, token)
}

func TestRepository_List(t *testing.T) {
	f := newFixture(t, true, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"message":"Cabins fetched","data":{"items":[{"id":"1","cruise_id":"7","name":"Suite"}],"total":21}}`)
	})

	query := dto.QueryParams{Page: 2, Limit: 10, Search: "suite", Filters: map[string]string{"cruise_id": "7", "deck": "3"}}

	list, err := f.repo.List(sessionContext("token-a"), query)
	require.NoError(t, err)

	assert.Equal(t, "Cabins fetched", list.Message)
	require.Len(t, list.Items, 1)
	assert.JSONEq(t, `{"id":"1","cruise_id":"7","name":"Suite"}`, string(list.Items[0]))
	assert.Equal(t, dto.Pagination{Page: 2, Limit: 10, Total: 21, TotalPage: 3}, list.Pagination)

	req, _ := f.lastRequest()
	assert.Equal(t, "/cabins", req.URL.Path)
	assert.Equal(t, "7", req.URL.Query().Get("cruise_id"))
	assert.Empty(t, req.URL.Query().Get("deck"))
	assert.Empty(t, req.URL.Query().Get("search"))
	assert.Equal(t, "Bearer token-a", req.Header.Get(constant.RequestHeaderAuthorization))
}

func TestRepository_List_CachedPerSession(t *testing.T) {
	f := newFixture(t, true, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":[{"id":"1"}]}`)
	})

	query := dto.QueryParams{Page: 1, Limit: 10}

	_, err := f.repo.List(sessionContext("token-a"), query)
	require.NoError(t, err)

	assert.Len(t, f.redis.Keys(), 1)

	_, err = f.repo.List(sessionContext("token-a"), query)
	require.NoError(t, err)
	assert.Equal(t, int32(1), f.calls.Load())

	_, err = f.repo.List(sessionContext("token-b"), query)
	require.NoError(t, err)
	assert.Equal(t, int32(2), f.calls.Load())
}

func TestRepository_List_CacheDisabled(t *testing.T) {
	f := newFixture(t, false, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	})

	for range 2 {
		_, err := f.repo.List(sessionContext("token"), dto.QueryParams{Page: 1, Limit: 10})
		require.NoError(t, err)
	}

	assert.Equal(t, int32(2), f.calls.Load())
	assert.Empty(t, f.redis.Keys())
}

func TestRepository_List_CacheDownStillServes(t *testing.T) {
	f := newFixture(t, true, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	})
	f.redis.Close()

	_, err := f.repo.List(sessionContext("token"), dto.QueryParams{Page: 1, Limit: 10})
	require.NoError(t, err)
}

func TestRepository_List_UpstreamFailure(t *testing.T) {
	f := newFixture(t, true, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusForbidden, `{"success":false,"message":"Not allowed"}`)
	})

	_, err := f.repo.List(sessionContext("token"), dto.QueryParams{})

	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	assert.Equal(t, "Not allowed", err.Error())
}

func TestRepository_List_UnexpectedShapeIsEmptyPage(t *testing.T) {
	f := newFixture(t, false, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":"oops"}`)
	})

	list, err := f.repo.List(sessionContext("token"), dto.QueryParams{})
	require.NoError(t, err)

	assert.Empty(t, list.Items)
	assert.Equal(t, dto.Pagination{Page: 1, Limit: 10, Total: 0, TotalPage: 1}, list.Pagination)
}

func TestRepository_List_RecordsRelayedVerbatim(t *testing.T) {
	record := `{"id":3,"departure_date":"2025-06-01T09:00:00","active":1,"base_price":"120.00","tags":null}`

	f := newFixture(t, false, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":[`+record+`]}`)
	})

	list, err := f.repo.List(sessionContext("token"), dto.QueryParams{})
	require.NoError(t, err)

	require.Len(t, list.Items, 1)
	assert.JSONEq(t, record, string(list.Items[0]))
}

func TestRepository_List_Reshape(t *testing.T) {
	def := cabinDefinition
	def.Reshape = func(raw json.RawMessage) json.RawMessage {
		return json.RawMessage(`{"wrapped":` + string(raw) + `}`)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":[{"id":1},null]}`)
	}))
	t.Cleanup(server.Close)

	ot := otelMocks.NewOtel()
	repo := repository.New[cabin](def, upstream.NewWithOptions(upstream.Options{BaseURL: server.URL}, ot), nil, ot, &config.Config{})

	list, err := repo.List(sessionContext("token"), dto.QueryParams{})
	require.NoError(t, err)

	require.Len(t, list.Items, 2)
	assert.JSONEq(t, `{"wrapped":{"id":1}}`, string(list.Items[0]))
	assert.Equal(t, "null", string(list.Items[1]))
}

func TestRepository_List_ConcurrentReadsShareOneCall(t *testing.T) {
	release := make(chan struct{})

	f := newFixture(t, true, func(w http.ResponseWriter, _ *http.Request) {
		<-release
		writeJSON(w, http.StatusOK, `{"success":true,"data":[{"id":"1"}]}`)
	})

	const readers = 5

	var wg sync.WaitGroup

	results := make([]repository.List[cabin], readers)
	errs := make([]error, readers)

	for i := range readers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			results[i], errs[i] = f.repo.List(sessionContext("token"), dto.QueryParams{Page: 1, Limit: 10})
		}()
	}

	assert.Eventually(t, func() bool { return f.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), f.calls.Load())

	for i := range readers {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0], results[i])
	}
}

func TestRepository_Get(t *testing.T) {
	f := newFixture(t, true, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"message":"Cabin found","data":{"id":"c/1","name":"Suite"}}`)
	})

	item, err := f.repo.Get(sessionContext("token"), "c/1")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, item.StatusCode)
	assert.Equal(t, "Cabin found", item.Message)
	assert.JSONEq(t, `{"id":"c/1","name":"Suite"}`, string(item.Data))
	assert.Equal(t, "c/1", item.ID())

	req, _ := f.lastRequest()
	assert.Equal(t, "/cabins/c%2F1", req.URL.EscapedPath())

	assert.Len(t, f.redis.Keys(), 1)

	cached, err := f.repo.Get(sessionContext("token"), "c/1")
	require.NoError(t, err)
	assert.Equal(t, item, cached)
	assert.Equal(t, int32(1), f.calls.Load())
}

func TestRepository_Get_NotFound(t *testing.T) {
	f := newFixture(t, true, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"success":false,"message":"Cabin not found"}`)
	})

	_, err := f.repo.Get(sessionContext("token"), "404")

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.Equal(t, "Cabin not found", err.Error())
}

func TestRepository_Get_TracesFailureStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"success":false,"message":"Cabin not found"}`)
	}))
	t.Cleanup(server.Close)

	recorder := otelMocks.NewRecorder()
	repo := repository.New[cabin](cabinDefinition, upstream.NewWithOptions(upstream.Options{BaseURL: server.URL}, recorder), nil, recorder, &config.Config{})

	_, err := repo.Get(sessionContext("token"), "404")
	require.Error(t, err)

	scope, ok := recorder.Scope(constant.OtelRepositoryScopeName + ".cabin.Get")
	require.True(t, ok)
	assert.True(t, scope.Ended())

	status, ok := scope.Attribute("error.status_code")
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, status)
	require.Len(t, scope.Errors(), 1)
}

func TestRepository_Create_InvalidatesEntityAndDependents(t *testing.T) {
	f := newFixture(t, true, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusCreated, `{"success":true,"message":"Cabin created","data":{"id":"9","name":"Balcony"}}`)
	})

	require.NoError(t, f.redis.Set("cruisedesk:cabin:abc:list:page=1", "{}"))
	require.NoError(t, f.redis.Set("cruisedesk:price:abc:list:page=1", "{}"))
	require.NoError(t, f.redis.Set("cruisedesk:cruise:abc:list:page=1", "{}"))

	item, err := f.repo.Create(sessionContext("token"), map[string]any{"name": "Balcony"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, item.StatusCode)
	assert.Equal(t, "9", item.ID())

	req, body := f.lastRequest()
	assert.Equal(t, http.MethodPost, req.Method)
	assert.JSONEq(t, `{"name":"Balcony"}`, body)

	assert.False(t, f.redis.Exists("cruisedesk:cabin:abc:list:page=1"))
	assert.False(t, f.redis.Exists("cruisedesk:price:abc:list:page=1"))
	assert.True(t, f.redis.Exists("cruisedesk:cruise:abc:list:page=1"))

	generation, err := f.redis.Get("cruisedesk:generation:cabin")
	require.NoError(t, err)
	assert.Equal(t, "1", generation)
	assert.True(t, f.redis.Exists("cruisedesk:generation:price"))
}

func TestRepository_ReadAfterWriteIsFresh(t *testing.T) {
	var name atomic.Value
	name.Store("Suite")

	f := newFixture(t, true, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			name.Store("Grand Suite")
		}

		writeJSON(w, http.StatusOK, `{"success":true,"data":{"id":"9","name":"`+name.Load().(string)+`"}}`)
	})

	ctx := sessionContext("token")

	item, err := f.repo.Get(ctx, "9")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"9","name":"Suite"}`, string(item.Data))

	_, err = f.repo.Update(ctx, "9", map[string]any{"name": "Grand Suite"}, true)
	require.NoError(t, err)

	item, err = f.repo.Get(ctx, "9")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"9","name":"Grand Suite"}`, string(item.Data))
	assert.Equal(t, int32(3), f.calls.Load())
}

func TestRepository_ReadInFlightDuringWriteIsNotServedAfterIt(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	var gets atomic.Int32

	f := newFixture(t, true, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeJSON(w, http.StatusOK, `{"success":true,"data":{"id":"9"}}`)

			return
		}

		if gets.Add(1) == 1 {
			close(started)
			<-release
			writeJSON(w, http.StatusOK, `{"success":true,"data":[{"id":"9","name":"old"}]}`)

			return
		}

		writeJSON(w, http.StatusOK, `{"success":true,"data":[{"id":"9","name":"new"}]}`)
	})

	ctx := sessionContext("token")
	query := dto.QueryParams{Page: 1, Limit: 10}
	done := make(chan struct{})

	go func() {
		defer close(done)

		_, _ = f.repo.List(ctx, query)
	}()

	<-started

	_, err := f.repo.Update(ctx, "9", map[string]any{"name": "new"}, true)
	require.NoError(t, err)

	close(release)
	<-done

	list, err := f.repo.List(ctx, query)
	require.NoError(t, err)

	require.Len(t, list.Items, 1)
	assert.JSONEq(t, `{"id":"9","name":"new"}`, string(list.Items[0]))
	assert.Equal(t, int32(2), gets.Load())
}

func TestRepository_Update_MirrorsMethod(t *testing.T) {
	f := newFixture(t, false, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"id":"9"}}`)
	})

	_, err := f.repo.Update(sessionContext("token"), "9", map[string]any{"name": "x"}, true)
	require.NoError(t, err)

	req, _ := f.lastRequest()
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, "/cabins/9", req.URL.Path)

	_, err = f.repo.Update(sessionContext("token"), "9", map[string]any{"name": "x"}, false)
	require.NoError(t, err)

	req, _ = f.lastRequest()
	assert.Equal(t, http.MethodPut, req.Method)
}

func TestRepository_Delete_TolerantPayload(t *testing.T) {
	f := newFixture(t, false, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"message":"Cabin deleted","data":true}`)
	})

	item, err := f.repo.Delete(sessionContext("token"), "9")
	require.NoError(t, err)

	assert.Equal(t, "Cabin deleted", item.Message)
	assert.Equal(t, "true", string(item.Data))
	assert.Empty(t, item.ID())

	req, _ := f.lastRequest()
	assert.Equal(t, http.MethodDelete, req.Method)
}

func TestRepository_Create_NonObjectPayloadRelayed(t *testing.T) {
	f := newFixture(t, false, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusCreated, `{"success":true,"data":["not","an","object"]}`)
	})

	item, err := f.repo.Create(sessionContext("token"), json.RawMessage(`{}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, item.StatusCode)
	assert.JSONEq(t, `["not","an","object"]`, string(item.Data))
}

func TestRepository_Definition(t *testing.T) {
	f := newFixture(t, false, func(w http.ResponseWriter, _ *http.Request) {})

	assert.Equal(t, cabinDefinition, f.repo.Definition())
}
