// Package directory holds the search, filter, sort and paging options shared by the
// employee and talent pool listings.
package directory

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100

	// FilterAll disables the filter, like an absent value.
	FilterAll = "all"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Options describe one listing: which query parameter filters, which sort fields exist and
// which column each maps to.
type Options struct {
	FilterParam  string
	SortFields   map[string]string
	DefaultSort  string
	DefaultLimit int
	MaxLimit     int
}

// Query is resolved once at the edge; everything downstream trusts its fields.
type Query struct {
	Search        string        `json:"search,omitempty"`
	Filter        string        `json:"filter,omitempty"`
	SortField     string        `json:"sortBy"`
	SortDirection SortDirection `json:"sortOrder"`
	Page          int           `json:"page"`
	Limit         int           `json:"limit"`
}

// Offset saturates instead of overflowing for queries that skipped ParseQuery.
func (q Query) Offset() int {
	if q.Page <= 1 || q.Limit < 1 {
		return 0
	}
	if q.Page-1 > math.MaxInt/q.Limit {
		return math.MaxInt
	}
	return (q.Page - 1) * q.Limit
}

// ClampPage bounds page so that (page-1)*limit fits in an int.
func ClampPage(page, limit int) int {
	if page < 1 {
		return DefaultPage
	}
	if limit < 1 {
		return page
	}
	if maxPage := math.MaxInt / limit; page > maxPage {
		return maxPage
	}
	return page
}

// ParseQuery never fails: malformed paging and unknown sort values fall back to defaults.
func ParseQuery(values url.Values, opts Options) Query {
	defaultLimit := opts.DefaultLimit
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	maxLimit := opts.MaxLimit
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}

	q := Query{
		Search:        strings.TrimSpace(values.Get("search")),
		SortField:     resolveSortField(values.Get("sortBy"), opts),
		SortDirection: ParseDirection(values.Get("sortOrder")),
		Page:          PositiveIntOr(values.Get("page"), DefaultPage),
		Limit:         PositiveIntOr(values.Get("limit"), defaultLimit),
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	q.Page = ClampPage(q.Page, q.Limit)

	if opts.FilterParam != "" {
		filter := strings.TrimSpace(values.Get(opts.FilterParam))
		if !strings.EqualFold(filter, FilterAll) {
			q.Filter = filter
		}
	}
	return q
}

func resolveSortField(raw string, opts Options) string {
	raw = strings.TrimSpace(raw)
	if _, ok := opts.SortFields[raw]; ok {
		return raw
	}
	return opts.DefaultSort
}

func ParseDirection(raw string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(raw), string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}

// PositiveIntOr parses raw and returns def for anything that is not an integer >= 1.
func PositiveIntOr(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return def
	}
	return n
}

// Page is one window of a listing plus the pre-pagination count.
type Page[T any] struct {
	Records    []T   `json:"records"`
	TotalCount int64 `json:"totalCount"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	HasMore    bool  `json:"hasMore"`
}

func NewPage[T any](records []T, total int64, q Query) Page[T] {
	if records == nil {
		records = []T{}
	}
	return Page[T]{
		Records:    records,
		TotalCount: total,
		Page:       q.Page,
		Limit:      q.Limit,
		HasMore:    int64(len(records)) < total-int64(q.Offset()),
	}
}
