package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Discrepancy is one date where a source and a reference series disagree.
// A side without an entry for the date is left invalid.
type Discrepancy struct {
	Date      time.Time
	Source    decimal.NullDecimal
	Reference decimal.NullDecimal
}

// Delta returns reference minus source when both sides are present.
func (d Discrepancy) Delta() (decimal.Decimal, bool) {
	if !d.Source.Valid || !d.Reference.Valid {
		return decimal.Decimal{}, false
	}
	return d.Reference.Decimal.Sub(d.Source.Decimal), true
}

// Report lists discrepancies, most recent first.
type Report []Discrepancy
