package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"cruisedesk/shared"
)

var (
	itemKeys      = []string{"items", "data", "rows", "results"}
	totalKeys     = []string{"total", "count", "total_data"}
	pageKeys      = []string{"page", "current_page"}
	limitKeys     = []string{"limit", "per_page"}
	totalPageKeys = []string{"total_page", "total_pages", "last_page"}
)

type Pagination struct {
	Page      int `json:"page"`
	Limit     int `json:"limit"`
	Total     int `json:"total"`
	TotalPage int `json:"total_page"`
}

// Page holds the items exactly as the upstream sent them.
type Page struct {
	Items      []json.RawMessage `json:"items"`
	Pagination Pagination        `json:"pagination"`
}

// ParsePage assembles list state from an upstream list payload.
//
// data is either the item array or an object holding the items under one of items, data, rows
// or results next to its counters. Counters missing from data are looked up in meta, then
// derived from the request and the items themselves. Items are never decoded, and payloads of
// any other shape give an empty page.
func ParsePage(data, meta json.RawMessage, query QueryParams) Page {
	page := Page{Items: []json.RawMessage{}}
	counters := map[string]json.RawMessage{}

	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0:
	case data[0] == '[':
		_ = json.Unmarshal(data, &page.Items)
	case data[0] == '{':
		_ = json.Unmarshal(data, &counters)

		if raw, ok := firstArray(counters, itemKeys); ok {
			_ = json.Unmarshal(raw, &page.Items)
		}
	}

	if page.Items == nil {
		page.Items = []json.RawMessage{}
	}

	metaCounters := map[string]json.RawMessage{}
	if meta = bytes.TrimSpace(meta); len(meta) > 0 && meta[0] == '{' {
		_ = json.Unmarshal(meta, &metaCounters)
	}

	lookup := func(keys []string) (int, bool) {
		if value, ok := firstInt(counters, keys); ok {
			return value, true
		}

		return firstInt(metaCounters, keys)
	}

	p := Pagination{}

	if value, ok := lookup(pageKeys); ok && value > 0 {
		p.Page = value
	} else {
		p.Page = max(query.Page, 1)
	}

	if value, ok := lookup(limitKeys); ok {
		p.Limit = value
	} else {
		p.Limit = query.Limit
	}

	if value, ok := lookup(totalKeys); ok {
		p.Total = value
	} else {
		p.Total = len(page.Items)
	}

	if value, ok := lookup(totalPageKeys); ok && value > 0 {
		p.TotalPage = value
	} else {
		p.TotalPage = shared.CalculateTotalPage(p.Total, p.Limit)
	}

	page.Pagination = p

	return page
}

func firstArray(object map[string]json.RawMessage, keys []string) (json.RawMessage, bool) {
	for _, key := range keys {
		raw, ok := object[key]
		if !ok {
			continue
		}

		if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
			return trimmed, true
		}
	}

	return nil, false
}

func firstInt(object map[string]json.RawMessage, keys []string) (int, bool) {
	for _, key := range keys {
		raw, ok := object[key]
		if !ok {
			continue
		}

		if value, ok := flexibleInt(raw); ok {
			return value, true
		}
	}

	return 0, false
}

// flexibleInt accepts 12, 12.0 and "12".
func flexibleInt(raw json.RawMessage) (int, bool) {
	var number json.Number
	if err := json.Unmarshal(raw, &number); err == nil {
		if value, err := number.Float64(); err == nil {
			return int(value), true
		}

		return 0, false
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return 0, false
	}

	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, false
	}

	return value, true
}
