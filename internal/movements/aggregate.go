package movements

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneyovertime/mot/internal/dateformat"
	"github.com/moneyovertime/mot/internal/model"
	"github.com/moneyovertime/mot/internal/tabular"
)

// Aggregate sums the amount of every row per calendar date. The first row
// that cannot be parsed aborts the whole aggregation and is named by its
// Line. Rows without any field are skipped. The result is ascending by
// date and rounded.
func Aggregate(rows []Row, delim rune, date model.DateColumn, amount model.Column) (model.Series, error) {
	if !date.Resolved || !amount.Resolved {
		return nil, errors.New("aggregate: date and amount columns must be resolved")
	}

	sums := make(map[time.Time]decimal.Decimal)
	for _, row := range rows {
		fields, err := tabular.Tokenize(row.Text, delim)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row.Line, err)
		}
		if len(fields) == 0 {
			continue
		}

		d, err := parseDate(fields, date)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row.Line, err)
		}
		amt, err := parseAmount(fields, amount)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row.Line, err)
		}

		key := model.Day(d)
		sums[key] = sums[key].Add(amt)
	}
	return model.NewSeries(sums), nil
}

func field(fields []string, c model.Column) (string, error) {
	if c.Index >= len(fields) {
		return "", fmt.Errorf("%w: row has %d fields, column %q is number %d",
			ErrFormat, len(fields), c.Label, c.Index+1)
	}
	return fields[c.Index], nil
}

func parseDate(fields []string, c model.DateColumn) (time.Time, error) {
	raw, err := field(fields, c.Column)
	if err != nil {
		return time.Time{}, err
	}
	t, err := dateformat.Parse(raw, c.Format)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return t, nil
}

func parseAmount(fields []string, c model.Column) (decimal.Decimal, error) {
	raw, err := field(fields, c)
	if err != nil {
		return decimal.Decimal{}, err
	}
	amt, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: parsing amount %q: %w", ErrFormat, raw, err)
	}
	return amt, nil
}
