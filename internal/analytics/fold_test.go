package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type amountRecord struct {
	at     time.Time
	amount decimal.Decimal
	paid   bool
}

func recordAt(r amountRecord) time.Time { return r.at }

func recordAmount(r amountRecord) decimal.Decimal { return r.amount }

func TestTrend(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		previous int64
		want     string
	}{
		{name: "both zero", current: 0, previous: 0, want: "0%"},
		{name: "from zero", current: 50, previous: 0, want: "+100%"},
		{name: "growth", current: 150, previous: 100, want: "+50.0%"},
		{name: "decline", current: 50, previous: 100, want: "-50.0%"},
		{name: "flat", current: 100, previous: 100, want: "+0.0%"},
		{name: "one decimal", current: 1, previous: 3, want: "-66.7%"},
		{name: "decline rounding to zero", current: 99999, previous: 100000, want: "+0.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Trend(decimal.NewFromInt(tt.current), decimal.NewFromInt(tt.previous))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSum_PaidOnly(t *testing.T) {
	records := []amountRecord{
		{amount: decimal.NewFromInt(10), paid: true},
		{amount: decimal.NewFromInt(25), paid: true},
		{amount: decimal.NewFromInt(5), paid: false},
	}

	got := Sum(records, func(r amountRecord) bool { return r.paid }, recordAmount)

	assert.True(t, decimal.NewFromInt(35).Equal(got), "got %s", got)
}

func TestSum_ExactDecimal(t *testing.T) {
	records := []amountRecord{
		{amount: decimal.RequireFromString("0.1")},
		{amount: decimal.RequireFromString("0.2")},
	}

	got := Sum(records, nil, recordAmount)

	assert.Equal(t, "0.3", got.String())
}

func TestCount(t *testing.T) {
	records := []amountRecord{{paid: true}, {paid: false}, {paid: true}}

	assert.Equal(t, 2, Count(records, func(r amountRecord) bool { return r.paid }))
	assert.Equal(t, 3, Count(records, nil))
}

func TestWindowTotals(t *testing.T) {
	now := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)
	records := []amountRecord{
		{at: now.AddDate(0, 0, -1), amount: decimal.NewFromInt(100)},
		{at: now.AddDate(0, 0, -29), amount: decimal.NewFromInt(50)},
		{at: now.AddDate(0, 0, -31), amount: decimal.NewFromInt(100)},
		{at: now.AddDate(0, 0, -90), amount: decimal.NewFromInt(1000)},
		{at: now.Add(time.Hour), amount: decimal.NewFromInt(1000)},
	}

	got := WindowTotals(records, recordAt, recordAmount, now, 30)

	assert.Equal(t, "150", got.Current.String())
	assert.Equal(t, "100", got.Previous.String())
	assert.Equal(t, "+50.0%", got.Trend)
}

func TestSeries_BucketCompleteness(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		granularity Granularity
		want        int
		first       string
		last        string
	}{
		{granularity: Daily, want: 30, first: "2026-02-14", last: "2026-03-15"},
		{granularity: Monthly, want: 12, first: "2025-04", last: "2026-03"},
		{granularity: Yearly, want: 5, first: "2022", last: "2026"},
	}

	for _, tt := range tests {
		t.Run(string(tt.granularity), func(t *testing.T) {
			buckets := Series[amountRecord](nil, recordAt, recordAmount, tt.granularity, now)

			require.Len(t, buckets, tt.want)
			assert.Equal(t, tt.first, buckets[0].Label)
			assert.Equal(t, tt.last, buckets[len(buckets)-1].Label)
			for i := 1; i < len(buckets); i++ {
				assert.Less(t, buckets[i-1].Label, buckets[i].Label, "buckets must be chronological")
			}
			for _, b := range buckets {
				assert.True(t, b.Value.IsZero())
				assert.Zero(t, b.Count)
			}
		})
	}
}

func TestSeries_FoldsAndDropsOutOfRange(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)
	records := []amountRecord{
		{at: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), amount: decimal.NewFromInt(10)},
		{at: time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), amount: decimal.NewFromInt(7)},
		{at: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), amount: decimal.NewFromInt(5)},
		{at: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), amount: decimal.NewFromInt(99)},
	}

	buckets := Series(records, recordAt, recordAmount, Monthly, now)

	require.Len(t, buckets, 12)
	assert.Equal(t, "7", buckets[0].Value.String())
	assert.Equal(t, "15", buckets[11].Value.String())
	assert.Equal(t, 2, buckets[11].Count)
}

func TestParseGranularity(t *testing.T) {
	assert.Equal(t, Daily, ParseGranularity("daily"))
	assert.Equal(t, Yearly, ParseGranularity(" YEARLY "))
	assert.Equal(t, Monthly, ParseGranularity("weekly"))
	assert.Equal(t, Monthly, ParseGranularity(""))
}
