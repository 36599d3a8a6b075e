// Package analytics folds already-fetched records into dashboard figures.
// Every function is pure: the clock is passed in and inputs are never mutated.
package analytics

import (
	"strings"
	"time"
)

// Granularity is the bucket width of a time series.
type Granularity string

const (
	Daily   Granularity = "daily"
	Monthly Granularity = "monthly"
	Yearly  Granularity = "yearly"
)

// ParseGranularity maps user input to a Granularity. Unknown values fall back to Monthly.
func ParseGranularity(s string) Granularity {
	switch g := Granularity(strings.ToLower(strings.TrimSpace(s))); g {
	case Daily, Monthly, Yearly:
		return g
	default:
		return Monthly
	}
}

// Buckets is the number of buckets a series of this granularity holds.
func (g Granularity) Buckets() int {
	switch g {
	case Daily:
		return 30
	case Yearly:
		return 5
	default:
		return 12
	}
}

// Layout is the time format producing a bucket label.
func (g Granularity) Layout() string {
	switch g {
	case Daily:
		return "2006-01-02"
	case Yearly:
		return "2006"
	default:
		return "2006-01"
	}
}

// Label returns the bucket label of t, evaluated in loc.
func (g Granularity) Label(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(g.Layout())
}

// Start returns the first instant covered by a series anchored at now.
func (g Granularity) Start(now time.Time) time.Time {
	n := g.Buckets() - 1
	y, m, d := now.Date()
	loc := now.Location()

	switch g {
	case Daily:
		return time.Date(y, m, d-n, 0, 0, 0, 0, loc)
	case Yearly:
		return time.Date(y-n, time.January, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(y, m-time.Month(n), 1, 0, 0, 0, 0, loc)
	}
}

// bucketStarts lists the first instant of every bucket in chronological order.
func (g Granularity) bucketStarts(now time.Time) []time.Time {
	start := g.Start(now)
	starts := make([]time.Time, g.Buckets())
	for i := range starts {
		switch g {
		case Daily:
			starts[i] = start.AddDate(0, 0, i)
		case Yearly:
			starts[i] = start.AddDate(i, 0, 0)
		default:
			starts[i] = start.AddDate(0, i, 0)
		}
	}

	return starts
}
