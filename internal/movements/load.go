// Package movements turns a records file into a per-date series of net
// amounts: columns are found by header label, rows are optionally filtered
// on one column's value and amounts are summed per date.
package movements

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/moneyovertime/mot/internal/dateformat"
	"github.com/moneyovertime/mot/internal/model"
	"github.com/moneyovertime/mot/internal/tabular"
)

const (
	// DefaultDateLabel is the date column label when none is configured.
	DefaultDateLabel = "date"
	// DefaultAmountLabel is the amount column label when none is configured.
	DefaultAmountLabel = "amount"
)

// Options describes how to read one records file.
type Options struct {
	Delimiter rune
	Date      model.DateColumn
	Amount    model.Column
	Filter    *model.Filter // optional

	// Registry picks the reader by extension; nil uses tabular.DefaultRegistry.
	Registry *tabular.Registry
}

// DefaultOptions returns comma-delimited, "date" in %d/%m/%Y, "amount".
func DefaultOptions() Options {
	return Options{}.withDefaults()
}

func (o Options) withDefaults() Options {
	if o.Delimiter == 0 {
		o.Delimiter = tabular.DefaultDelimiter
	}
	if o.Date.Label == "" {
		o.Date.Label = DefaultDateLabel
	}
	if o.Date.Format == "" {
		o.Date.Format = dateformat.Default
	}
	if o.Amount.Label == "" {
		o.Amount.Label = DefaultAmountLabel
	}
	if o.Registry == nil {
		o.Registry = tabular.DefaultRegistry()
	}
	return o
}

// Load reads path and returns its raw series: the net amount of each date,
// ascending.
func Load(path string, opts Options) (model.Series, error) {
	opts = opts.withDefaults()

	table, err := opts.Registry.ReadFile(path)
	if err != nil {
		return nil, err
	}

	delim := opts.Delimiter
	if table.Delimiter != 0 {
		delim = table.Delimiter
	}
	date := opts.Date
	if table.DateFormat != "" && table.DateFormat != date.Format {
		if date.Format != dateformat.Default {
			log.Warn("spreadsheet dates are read as ISO, ignoring configured date format",
				"file", path, "format", date.Format)
		}
		date.Format = table.DateFormat
	}
	if err := dateformat.Validate(date.Format); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	headerRow, ok := table.Header()
	if !ok {
		return nil, fmt.Errorf("%w: %s has no header row", ErrFormat, path)
	}
	header, err := tabular.Tokenize(headerRow, delim)
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	cols, err := ResolveColumns(header, date, opts.Amount, opts.Filter)
	if err != nil {
		return nil, err
	}
	log.Debug("resolved columns", "file", path,
		"date", cols.Date.Index, "amount", cols.Amount.Index)

	rows := NumberRows(table.Data())
	if cols.Filter != nil {
		if !cols.Filter.Resolved {
			log.Warn("filter column not found, filtering disabled",
				"file", path, "label", cols.Filter.Label)
		}
		before := len(rows)
		rows, err = FilterRows(rows, delim, cols.Filter)
		if err != nil {
			return nil, err
		}
		log.Debug("filtered rows", "file", path, "mode", cols.Filter.Mode,
			"value", cols.Filter.Value, "kept", len(rows), "of", before)
	}

	series, err := Aggregate(rows, delim, cols.Date, cols.Amount)
	if err != nil {
		return nil, err
	}
	log.Debug("aggregated movements", "file", path, "rows", len(rows), "dates", len(series))
	return series, nil
}
