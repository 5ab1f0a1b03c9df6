package model

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Precision is the number of decimal places every stored amount is rounded to.
const Precision = 2

// Movement is the net amount of one calendar date.
type Movement struct {
	Date   time.Time
	Amount decimal.Decimal
}

// Series is a date-keyed sequence of amounts. Dates are unique; the
// aggregator hands it out in ascending order.
type Series []Movement

// Day truncates t to its calendar date at midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Round rounds an amount to Precision decimal places.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Precision)
}

// NewSeries builds an ascending Series from per-date sums, rounding every
// amount. Keys are normalized with Day.
func NewSeries(sums map[time.Time]decimal.Decimal) Series {
	s := make(Series, 0, len(sums))
	for d, amt := range sums {
		s = append(s, Movement{Date: Day(d), Amount: Round(amt)})
	}
	sort.Slice(s, func(i, j int) bool { return s[i].Date.Before(s[j].Date) })
	return s
}

// Get returns the amount recorded for date d.
func (s Series) Get(d time.Time) (decimal.Decimal, bool) {
	d = Day(d)
	for _, m := range s {
		if m.Date.Equal(d) {
			return m.Amount, true
		}
	}
	return decimal.Decimal{}, false
}

// Map indexes the series by date.
func (s Series) Map() map[time.Time]decimal.Decimal {
	m := make(map[time.Time]decimal.Decimal, len(s))
	for _, mv := range s {
		m[mv.Date] = mv.Amount
	}
	return m
}

// Dates returns the series dates in series order.
func (s Series) Dates() []time.Time {
	dates := make([]time.Time, len(s))
	for i, m := range s {
		dates[i] = m.Date
	}
	return dates
}

// IsAscending reports whether dates are strictly increasing.
func (s Series) IsAscending() bool {
	for i := 1; i < len(s); i++ {
		if !s[i-1].Date.Before(s[i].Date) {
			return false
		}
	}
	return true
}
