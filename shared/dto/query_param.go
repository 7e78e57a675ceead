package dto

import (
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"cruisedesk/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int               `json:"page"     validate:"omitempty"`
	Limit   int               `json:"limit"    validate:"omitempty,lte=100"`
	SortBy  string            `json:"sort_by"  validate:"omitempty"`
	SortDir string            `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
	Search  string            `json:"search"   validate:"omitempty"`
	Filters map[string]string `json:"filters"  validate:"omitempty"`
}

// FromRequest populates QueryParams from the HTTP request.
// With defaultRequest set, missing page and limit fall back to the defaults. The limit is always capped.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = min(limitInt, constant.MaxValueLimit)
		}
	}

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := strings.ToUpper(queryParams.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}

	if search := strings.TrimSpace(queryParams.Get(constant.RequestParamSearch)); search != "" {
		q.Search = search
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// WithFilters copies the allowed, non-empty query parameters of r into Filters.
// search is handled by FromRequest and never lands in Filters.
func (q *QueryParams) WithFilters(r *http.Request, allowed []string) {
	queryParams := r.URL.Query()

	for _, name := range allowed {
		if name == constant.RequestParamSearch {
			continue
		}

		if value := strings.TrimSpace(queryParams.Get(name)); value != "" {
			q.SetFilter(name, value)
		}
	}
}

func (q *QueryParams) SetFilter(name, value string) {
	if q.Filters == nil {
		q.Filters = map[string]string{}
	}

	q.Filters[name] = value
}

// Values renders the parameters the way the upstream expects them.
func (q QueryParams) Values() url.Values {
	values := url.Values{}

	if q.Page > 0 {
		values.Set(constant.RequestParamPage, strconv.Itoa(q.Page))
	}

	if q.Limit > 0 {
		values.Set(constant.RequestParamLimit, strconv.Itoa(q.Limit))
	}

	if q.SortBy != "" {
		values.Set(constant.RequestParamSortBy, q.SortBy)
	}

	if q.SortDir != "" {
		values.Set(constant.RequestParamSortDir, q.SortDir)
	}

	if q.Search != "" {
		values.Set(constant.RequestParamSearch, q.Search)
	}

	for _, name := range slices.Sorted(maps.Keys(q.Filters)) {
		values.Set(name, q.Filters[name])
	}

	return values
}

// Canonical is a stable encoding of the parameters, used in cache keys.
func (q QueryParams) Canonical() string {
	return q.Values().Encode()
}
