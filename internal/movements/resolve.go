package movements

import (
	"fmt"
	"strings"

	"github.com/moneyovertime/mot/internal/model"
)

// IndexOf returns the position of the first header field equal to label,
// ignoring case. An empty label never matches, so an empty column left by
// a trailing delimiter cannot be picked up.
func IndexOf(label string, header []string) (int, bool) {
	if label == "" {
		return 0, false
	}
	want := strings.ToLower(label)
	for i, field := range header {
		if strings.ToLower(field) == want {
			return i, true
		}
	}
	return 0, false
}

// Resolve locates a required column.
func Resolve(c model.Column, header []string) (model.Column, error) {
	i, ok := IndexOf(c.Label, header)
	if !ok {
		return c, &LabelError{Label: c.Label, Header: header}
	}
	return c.At(i), nil
}

// ResolveOptional locates a column that may be absent. The returned column
// stays unresolved when the label is missing.
func ResolveOptional(c model.Column, header []string) model.Column {
	if i, ok := IndexOf(c.Label, header); ok {
		return c.At(i)
	}
	return c
}

// Columns holds the resolved positions used by aggregation.
type Columns struct {
	Date   model.DateColumn
	Amount model.Column
	Filter *model.Filter // nil or unresolved when filtering is off
}

// ResolveColumns resolves the date, amount and (when enabled) filter
// columns against header. Date and amount must be distinct columns.
func ResolveColumns(header []string, date model.DateColumn, amount model.Column, filter *model.Filter) (Columns, error) {
	dc, err := Resolve(date.Column, header)
	if err != nil {
		return Columns{}, fmt.Errorf("date column: %w", err)
	}
	ac, err := Resolve(amount, header)
	if err != nil {
		return Columns{}, fmt.Errorf("amount column: %w", err)
	}
	if dc.Index == ac.Index {
		return Columns{}, fmt.Errorf("%w: date label %q and amount label %q both select column %d",
			ErrFormat, date.Label, amount.Label, dc.Index+1)
	}

	cols := Columns{
		Date:   model.DateColumn{Column: dc, Format: date.Format},
		Amount: ac,
	}
	if filter.Enabled() {
		f := *filter
		f.Column = ResolveOptional(filter.Column, header)
		cols.Filter = &f
	}
	return cols, nil
}
