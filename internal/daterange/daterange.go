// Package daterange turns the optional date, startDate and endDate query values into an
// inclusive calendar range evaluated in the organisation's timezone.
package daterange

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/frahmantamala/ops-dashboard/internal"
)

const Layout = "2006-01-02"

type Range struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type Resolver struct {
	loc *time.Location
	now func() time.Time
}

type Option func(*Resolver)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		r.now = now
	}
}

func NewResolver(timezone string, opts ...Option) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	r := &Resolver{loc: loc, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *Resolver) Location() *time.Location {
	return r.loc
}

// Today is the current calendar date in the organisation's timezone, independent of TZ on the host.
func (r *Resolver) Today() string {
	return r.now().In(r.loc).Format(Layout)
}

// Resolve applies date > (startDate and endDate) > today. A lone startDate or endDate is ignored.
// startDate after endDate is passed through; the query simply matches nothing.
func (r *Resolver) Resolve(date, startDate, endDate string) (Range, error) {
	date = strings.TrimSpace(date)
	startDate = strings.TrimSpace(startDate)
	endDate = strings.TrimSpace(endDate)

	var rng Range
	switch {
	case date != "":
		rng = Range{StartDate: date, EndDate: date}
	case startDate != "" && endDate != "":
		rng = Range{StartDate: startDate, EndDate: endDate}
	default:
		today := r.Today()
		return Range{StartDate: today, EndDate: today}, nil
	}

	if !validDate(rng.StartDate) || !validDate(rng.EndDate) {
		return Range{}, internal.ErrInvalidDate
	}
	return rng, nil
}

// Bounds converts the range to the half-open instant window [start 00:00, end+1d 00:00) in loc.
func (r *Resolver) Bounds(rng Range) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(Layout, rng.StartDate, r.loc)
	if err != nil {
		return time.Time{}, time.Time{}, internal.ErrInvalidDate.WithCause(err)
	}
	end, err := time.ParseInLocation(Layout, rng.EndDate, r.loc)
	if err != nil {
		return time.Time{}, time.Time{}, internal.ErrInvalidDate.WithCause(err)
	}
	return start, end.AddDate(0, 0, 1), nil
}

func validDate(s string) bool {
	_, err := time.Parse(Layout, s)
	return err == nil
}
