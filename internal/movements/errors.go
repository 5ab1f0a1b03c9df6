package movements

import (
	"fmt"

	"github.com/moneyovertime/mot/internal/tabular"
)

var (
	// ErrNotFound reports an input path that cannot be read.
	ErrNotFound = tabular.ErrNotFound
	// ErrFormat reports a label, date or amount the configuration cannot
	// make sense of.
	ErrFormat = tabular.ErrFormat
)

// LabelError reports a required column label missing from the header.
type LabelError struct {
	Label  string
	Header []string
}

func (e *LabelError) Error() string {
	return fmt.Sprintf("could not find a column labelled %q in header %q; check that the label matches the records file", e.Label, e.Header)
}

// Unwrap makes LabelError match ErrFormat.
func (e *LabelError) Unwrap() error { return ErrFormat }
