// Package balance projects a raw movement series into a running balance.
package balance

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/moneyovertime/mot/internal/model"
)

// ErrNotAscending is returned when the input series is not sorted by date.
var ErrNotAscending = errors.New("balance: series is not in ascending date order")

// Project returns a new series whose value at each date is the sum of all
// raw amounts up to and including that date, rounded.
func Project(raw model.Series) (model.Series, error) {
	if !raw.IsAscending() {
		return nil, ErrNotAscending
	}

	out := make(model.Series, len(raw))
	total := decimal.Zero
	for i, m := range raw {
		total = total.Add(m.Amount)
		out[i] = model.Movement{Date: m.Date, Amount: model.Round(total)}
	}
	return out, nil
}
