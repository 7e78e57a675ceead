package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"cruisedesk/config"
	"cruisedesk/infras/otel"
	"cruisedesk/infras/upstream"
	"cruisedesk/shared"
	"cruisedesk/shared/cache"
	"cruisedesk/shared/constant"
	"cruisedesk/shared/dto"
	gModel "cruisedesk/shared/model"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const (
	cacheKindList = "list"
	cacheKindGet  = "get"

	otelAttrEntity   = "repository.entity"
	otelAttrCacheHit = "repository.cache_hit"
)

// Definition describes one upstream collection.
type Definition struct {
	// Entity names the cache namespace and shows up in logs and spans.
	Entity string
	// Path is the upstream collection path, e.g. "/cruise-itineraries".
	Path string
	// Filters lists the query parameters forwarded on list calls.
	Filters []string
	// Dependents are entities whose cached reads embed this one.
	Dependents []string
	// Reshape, when set, rewrites every record relayed from the upstream.
	Reshape func(json.RawMessage) json.RawMessage
}

func (def Definition) reshape(raw json.RawMessage) json.RawMessage {
	if def.Reshape == nil || len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return raw
	}

	return def.Reshape(raw)
}

type List[T any] struct {
	Message    string            `json:"message"`
	Items      []json.RawMessage `json:"items"`
	Pagination dto.Pagination    `json:"pagination"`
}

type Item[T any] struct {
	StatusCode int             `json:"status_code"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

func (item Item[T]) HasData() bool {
	return len(item.Data) > 0 && !bytes.Equal(item.Data, []byte("null"))
}

// ID reads the "id" of Data, sent by the upstream as either a string or a number.
func (item Item[T]) ID() string {
	var record struct {
		ID gModel.ID `json:"id"`
	}

	if err := json.Unmarshal(item.Data, &record); err != nil {
		return ""
	}

	return record.ID.String()
}

// Repository proxies one upstream collection with cache-aside reads. T names the resource the
// collection serves. Records are relayed as the upstream sent them, after Definition.Reshape.
type Repository[T any] interface {
	Definition() Definition
	List(ctx context.Context, query dto.QueryParams) (List[T], error)
	Get(ctx context.Context, id string) (Item[T], error)
	Create(ctx context.Context, body any) (Item[T], error)
	Update(ctx context.Context, id string, body any, partial bool) (Item[T], error)
	Delete(ctx context.Context, id string) (Item[T], error)
}

type repositoryImpl[T any] struct {
	def    Definition
	client upstream.Client
	cache  cache.RedisCache
	otel   otel.Otel
	ttl    int
	group  singleflight.Group
}

func New[T any](def Definition, client upstream.Client, redisCache cache.RedisCache, otl otel.Otel, cfg *config.Config) Repository[T] {
	repo := &repositoryImpl[T]{
		def:    def,
		client: client,
		otel:   otl,
		ttl:    cfg.Cache.TTL,
	}

	if cfg.Cache.Enable && cfg.Cache.TTL > 0 {
		repo.cache = redisCache
	}

	return repo
}

func (repo *repositoryImpl[T]) Definition() Definition {
	return repo.def
}

func (repo *repositoryImpl[T]) List(ctx context.Context, query dto.QueryParams) (res List[T], err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.List", constant.OtelRepositoryScopeName, repo.def.Entity))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query = repo.allowedQuery(query)
	cacheKey, cacheable := repo.cacheKey(ctx, cacheKindList, query.Canonical())

	scope.SetAttribute(otelAttrEntity, repo.def.Entity)

	if cacheable && repo.load(ctx, cacheKey, &res) {
		scope.SetAttribute(otelAttrCacheHit, true)

		return res, nil
	}

	value, err, _ := repo.group.Do(cacheKey, func() (any, error) {
		resp, err := repo.client.Do(ctx, upstream.Request{
			Method: http.MethodGet,
			Path:   repo.def.Path,
			Query:  query.Values(),
		})
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		page := dto.ParsePage(resp.Data, resp.Meta, query)
		for i, item := range page.Items {
			page.Items[i] = repo.def.reshape(item)
		}

		list := List[T]{
			Message:    resp.Message,
			Items:      page.Items,
			Pagination: page.Pagination,
		}

		if cacheable {
			repo.store(ctx, cacheKey, list)
		}

		return list, nil
	})
	if err != nil {
		log.Error().Err(err).Str("entity", repo.def.Entity).Msg("failed to list from upstream")

		return res, err //nolint:wrapcheck
	}

	return value.(List[T]), nil //nolint:forcetypeassert
}

func (repo *repositoryImpl[T]) Get(ctx context.Context, id string) (res Item[T], err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, repo.def.Entity))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey, cacheable := repo.cacheKey(ctx, cacheKindGet, id)

	if cacheable && repo.load(ctx, cacheKey, &res) {
		scope.SetAttribute(otelAttrCacheHit, true)

		return res, nil
	}

	value, err, _ := repo.group.Do(cacheKey, func() (any, error) {
		item, err := repo.send(ctx, upstream.Request{Method: http.MethodGet, Path: repo.itemPath(id)})
		if err != nil {
			return nil, err
		}

		if cacheable {
			repo.store(ctx, cacheKey, item)
		}

		return item, nil
	})
	if err != nil {
		log.Error().Err(err).Str("entity", repo.def.Entity).Str("id", id).Msg("failed to get from upstream")

		return res, err //nolint:wrapcheck
	}

	return value.(Item[T]), nil //nolint:forcetypeassert
}

func (repo *repositoryImpl[T]) Create(ctx context.Context, body any) (res Item[T], err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Create", constant.OtelRepositoryScopeName, repo.def.Entity))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = repo.send(ctx, upstream.Request{Method: http.MethodPost, Path: repo.def.Path, Body: body})
	if err != nil {
		log.Error().Err(err).Str("entity", repo.def.Entity).Msg("failed to create in upstream")

		return res, err
	}

	repo.invalidate(ctx)

	return res, nil
}

func (repo *repositoryImpl[T]) Update(ctx context.Context, id string, body any, partial bool) (res Item[T], err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, repo.def.Entity))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	method := http.MethodPut
	if partial {
		method = http.MethodPatch
	}

	res, err = repo.send(ctx, upstream.Request{Method: method, Path: repo.itemPath(id), Body: body})
	if err != nil {
		log.Error().Err(err).Str("entity", repo.def.Entity).Str("id", id).Msg("failed to update in upstream")

		return res, err
	}

	repo.invalidate(ctx)

	return res, nil
}

func (repo *repositoryImpl[T]) Delete(ctx context.Context, id string) (res Item[T], err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelRepositoryScopeName, repo.def.Entity))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = repo.send(ctx, upstream.Request{Method: http.MethodDelete, Path: repo.itemPath(id)})
	if err != nil {
		log.Error().Err(err).Str("entity", repo.def.Entity).Str("id", id).Msg("failed to delete in upstream")

		return res, err
	}

	repo.invalidate(ctx)

	return res, nil
}

func (repo *repositoryImpl[T]) send(ctx context.Context, req upstream.Request) (Item[T], error) {
	resp, err := repo.client.Do(ctx, req)
	if err != nil {
		return Item[T]{}, err //nolint:wrapcheck
	}

	return Item[T]{
		StatusCode: resp.StatusCode,
		Message:    resp.Message,
		Data:       repo.def.reshape(resp.Data),
	}, nil
}

func (repo *repositoryImpl[T]) allowedQuery(query dto.QueryParams) dto.QueryParams {
	allowed := dto.QueryParams{
		Page:    query.Page,
		Limit:   query.Limit,
		SortBy:  query.SortBy,
		SortDir: query.SortDir,
	}

	if slices.Contains(repo.def.Filters, constant.RequestParamSearch) {
		allowed.Search = query.Search
	}

	for name, value := range query.Filters {
		if slices.Contains(repo.def.Filters, name) {
			allowed.SetFilter(name, value)
		}
	}

	return allowed
}

func (repo *repositoryImpl[T]) itemPath(id string) string {
	return repo.def.Path + "/" + url.PathEscape(id)
}

// cacheKey embeds the current generation of the entity, so reads stored before an invalidation
// are never served after it. The key also joins concurrent identical reads; cacheable is false
// when the generation could not be read.
func (repo *repositoryImpl[T]) cacheKey(ctx context.Context, kind, part string) (key string, cacheable bool) {
	if repo.cache == nil {
		return shared.BuildCacheKey(repo.def.Entity, fingerprint(ctx), kind, part), false
	}

	var generation int64

	err := repo.cache.Get(ctx, shared.GenerationKey(repo.def.Entity), &generation)
	if err != nil && !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Str("entity", repo.def.Entity).Msg("cache generation unavailable, skipping cache")

		return shared.BuildCacheKey(repo.def.Entity, fingerprint(ctx), kind, part), false
	}

	return shared.BuildCacheKey(repo.def.Entity, "g"+strconv.FormatInt(generation, 10), fingerprint(ctx), kind, part), true
}

func (repo *repositoryImpl[T]) load(ctx context.Context, key string, value any) bool {
	if repo.cache == nil {
		return false
	}

	err := repo.cache.Get(ctx, key, value)
	if err == nil {
		log.Debug().Str("cacheKey", key).Msg("cache hit")

		return true
	}

	if !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Str("cacheKey", key).Msg("cache read failed, falling back to upstream")
	}

	return false
}

func (repo *repositoryImpl[T]) store(ctx context.Context, key string, value any) {
	if repo.cache == nil {
		return
	}

	if err := repo.cache.Save(context.WithoutCancel(ctx), key, value, repo.ttl); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save upstream read to cache")
	}
}

// invalidate runs before the write returns, so the next read of the same session sees it.
func (repo *repositoryImpl[T]) invalidate(ctx context.Context) {
	if repo.cache == nil {
		return
	}

	entities := append([]string{repo.def.Entity}, repo.def.Dependents...)

	shared.InvalidateCaches(context.WithoutCancel(ctx), repo.cache, entities...)
}

func fingerprint(ctx context.Context) string {
	token, _ := ctx.Value(constant.ContextKeySessionToken).(string)

	return shared.SessionFingerprint(token)
}
