package lead

import (
	"net/url"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	filterAll    = "all"
)

// LeadsQuery mirrors the list endpoint's query args. Zero values fall back
// to defaults; "all" or empty omits a filter.
type LeadsQuery struct {
	Page   int
	Limit  int
	Status string
	Source string
}

func (q LeadsQuery) ToValues() url.Values {
	v := url.Values{}

	page := q.Page
	if page <= 0 {
		page = DefaultPage
	}
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	v.Set("page", strconv.Itoa(page))
	v.Set("limit", strconv.Itoa(limit))

	if q.Status != "" && q.Status != filterAll {
		v.Set("status", q.Status)
	}
	if q.Source != "" && q.Source != filterAll {
		v.Set("source", q.Source)
	}
	return v
}
