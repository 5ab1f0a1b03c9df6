package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/moneyovertime/mot/internal/model"
)

// CSV writes machine-readable output. Amounts carry two decimals and no
// plus sign; a missing side is an empty field.
type CSV struct{}

// RenderBalance writes date,balance rows.
func (CSV) RenderBalance(w io.Writer, s model.Series, dateFormat string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "balance"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, m := range s {
		if err := cw.Write([]string{formatDate(m.Date, dateFormat), m.Amount.StringFixed(model.Precision)}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// RenderDiff writes date,source,reference,delta rows.
func (CSV) RenderDiff(w io.Writer, r model.Report, dateFormat string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "source", "reference", "delta"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, d := range r {
		delta := ""
		if v, ok := d.Delta(); ok {
			delta = v.StringFixed(model.Precision)
		}
		row := []string{formatDate(d.Date, dateFormat), plain(d.Source), plain(d.Reference), delta}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func plain(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.StringFixed(model.Precision)
}
