package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestNewSeries_SortsAndRounds(t *testing.T) {
	s := NewSeries(map[time.Time]decimal.Decimal{
		day(2024, 6, 17): decimal.RequireFromString("1175"),
		day(2024, 6, 15): decimal.RequireFromString("0.1").Add(decimal.RequireFromString("0.2")),
		day(2024, 6, 16): decimal.RequireFromString("35.005"),
	})

	require.Len(t, s, 3)
	assert.True(t, s.IsAscending())
	assert.Equal(t, []time.Time{day(2024, 6, 15), day(2024, 6, 16), day(2024, 6, 17)}, s.Dates())
	assert.Equal(t, "0.30", s[0].Amount.StringFixed(2))
	assert.Equal(t, "35.01", s[1].Amount.StringFixed(2))
}

func TestNewSeries_NormalizesTimeOfDay(t *testing.T) {
	s := NewSeries(map[time.Time]decimal.Decimal{
		time.Date(2024, 1, 2, 13, 45, 0, 0, time.UTC): decimal.NewFromInt(5),
	})
	require.Len(t, s, 1)
	assert.Equal(t, day(2024, 1, 2), s[0].Date)
}

func TestSeriesGet(t *testing.T) {
	s := Series{
		{Date: day(2024, 1, 1), Amount: decimal.NewFromInt(10)},
		{Date: day(2024, 1, 3), Amount: decimal.NewFromInt(-4)},
	}

	v, ok := s.Get(day(2024, 1, 3))
	require.True(t, ok)
	assert.True(t, v.Equal(decimal.NewFromInt(-4)))

	_, ok = s.Get(day(2024, 1, 2))
	assert.False(t, ok)

	m := s.Map()
	assert.Len(t, m, 2)
	assert.True(t, m[day(2024, 1, 1)].Equal(decimal.NewFromInt(10)))
}

func TestSeriesIsAscending(t *testing.T) {
	assert.True(t, Series{}.IsAscending())
	assert.False(t, Series{
		{Date: day(2024, 1, 2)},
		{Date: day(2024, 1, 1)},
	}.IsAscending())
	assert.False(t, Series{
		{Date: day(2024, 1, 1)},
		{Date: day(2024, 1, 1)},
	}.IsAscending())
}

func TestDiscrepancyDelta(t *testing.T) {
	d := Discrepancy{
		Date:      day(2024, 1, 1),
		Source:    decimal.NewNullDecimal(decimal.NewFromInt(10)),
		Reference: decimal.NewNullDecimal(decimal.NewFromInt(12)),
	}
	delta, ok := d.Delta()
	require.True(t, ok)
	assert.Equal(t, "2.00", delta.StringFixed(2))

	_, ok = Discrepancy{Reference: decimal.NewNullDecimal(decimal.NewFromInt(5))}.Delta()
	assert.False(t, ok)
}

func TestFilterEnabled(t *testing.T) {
	var nilFilter *Filter
	assert.False(t, nilFilter.Enabled())
	assert.False(t, (&Filter{Column: Column{Label: "account"}}).Enabled())
	assert.False(t, (&Filter{Value: "cash"}).Enabled())
	assert.True(t, (&Filter{Column: Column{Label: "account"}, Value: "cash"}).Enabled())
}

func TestColumnAt(t *testing.T) {
	c := Column{Label: "date"}
	r := c.At(2)
	assert.False(t, c.Resolved, "At must not mutate the receiver")
	assert.True(t, r.Resolved)
	assert.Equal(t, 2, r.Index)
	assert.Equal(t, "date", r.Label)
}
