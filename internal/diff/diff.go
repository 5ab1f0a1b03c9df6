// Package diff compares two independently recorded movement series for the
// same activity and reports the dates where they disagree.
package diff

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneyovertime/mot/internal/model"
)

// Compare returns one discrepancy per date that is missing from either
// side or whose amounts differ. Amounts are compared exactly: both series
// are already rounded. The report is sorted most recent first.
func Compare(source, reference model.Series) model.Report {
	ref := reference.Map()
	src := source.Map()

	var report model.Report
	for _, m := range source {
		r, ok := ref[m.Date]
		switch {
		case !ok:
			report = append(report, model.Discrepancy{
				Date:   m.Date,
				Source: decimal.NewNullDecimal(m.Amount),
			})
		case !m.Amount.Equal(r):
			report = append(report, model.Discrepancy{
				Date:      m.Date,
				Source:    decimal.NewNullDecimal(m.Amount),
				Reference: decimal.NewNullDecimal(r),
			})
		}
	}
	for _, m := range reference {
		if _, ok := src[m.Date]; !ok {
			report = append(report, model.Discrepancy{
				Date:      m.Date,
				Reference: decimal.NewNullDecimal(m.Amount),
			})
		}
	}

	sort.Slice(report, func(i, j int) bool { return report[i].Date.After(report[j].Date) })
	return report
}

// Dates returns the dates of a report in report order.
func Dates(r model.Report) []time.Time {
	dates := make([]time.Time, len(r))
	for i, d := range r {
		dates[i] = d.Date
	}
	return dates
}
