package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Sum adds value over every record matching predicate. A nil predicate keeps every record.
func Sum[T any](records []T, predicate func(T) bool, value func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if predicate != nil && !predicate(r) {
			continue
		}
		total = total.Add(value(r))
	}

	return total
}

// Count counts the records matching predicate. A nil predicate counts every record.
func Count[T any](records []T, predicate func(T) bool) int {
	if predicate == nil {
		return len(records)
	}

	n := 0
	for _, r := range records {
		if predicate(r) {
			n++
		}
	}

	return n
}

// Trend formats the percentage change from previous to current with one
// decimal place and an explicit sign. A zero previous value never divides:
// it yields "+100%" when current is positive and "0%" otherwise.
func Trend(current, previous decimal.Decimal) string {
	if previous.IsZero() {
		if current.IsPositive() {
			return "+100%"
		}

		return "0%"
	}

	// Sign follows the rounded value so a tiny decline prints "+0.0%".
	change := current.Sub(previous).Div(previous).Mul(hundred).Round(1)
	if change.IsNegative() {
		return change.StringFixed(1) + "%"
	}

	return "+" + change.StringFixed(1) + "%"
}

// Window compares two adjacent periods of equal length.
type Window struct {
	Current  decimal.Decimal `json:"current"`
	Previous decimal.Decimal `json:"previous"`
	Trend    string          `json:"trend"`
}

// WindowTotals sums value over the last days days before now and over the days before that.
// Records at or after now are ignored.
func WindowTotals[T any](records []T, at func(T) time.Time, value func(T) decimal.Decimal, now time.Time, days int) Window {
	currentStart := now.AddDate(0, 0, -days)
	previousStart := now.AddDate(0, 0, -2*days)

	current, previous := decimal.Zero, decimal.Zero
	for _, r := range records {
		t := at(r)
		switch {
		case !t.Before(now):
			continue
		case !t.Before(currentStart):
			current = current.Add(value(r))
		case !t.Before(previousStart):
			previous = previous.Add(value(r))
		}
	}

	return Window{Current: current, Previous: previous, Trend: Trend(current, previous)}
}

// Bucket is one slot of a time series.
type Bucket struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
	Count int             `json:"count"`
}

// Series folds records into the pre-seeded buckets of g anchored at now.
// Buckets are chronological and present even when empty. Records whose label
// matches no bucket are dropped.
func Series[T any](records []T, at func(T) time.Time, value func(T) decimal.Decimal, g Granularity, now time.Time) []Bucket {
	starts := g.bucketStarts(now)
	buckets := make([]Bucket, len(starts))
	index := make(map[string]int, len(starts))
	for i, start := range starts {
		label := g.Label(start, now.Location())
		buckets[i] = Bucket{Label: label, Value: decimal.Zero}
		index[label] = i
	}

	for _, r := range records {
		i, ok := index[g.Label(at(r), now.Location())]
		if !ok {
			continue
		}
		buckets[i].Value = buckets[i].Value.Add(value(r))
		buckets[i].Count++
	}

	return buckets
}
