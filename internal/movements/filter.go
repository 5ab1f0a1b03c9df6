package movements

import (
	"fmt"
	"strings"

	"github.com/moneyovertime/mot/internal/model"
	"github.com/moneyovertime/mot/internal/tabular"
)

// FilterRows returns the data rows the filter lets through. A nil, disabled
// or unresolved filter passes every row. Rows too short to hold the filter
// column never match.
func FilterRows(rows []Row, delim rune, filter *model.Filter) ([]Row, error) {
	if !filter.Enabled() || !filter.Resolved {
		return rows, nil
	}

	want := strings.ToLower(filter.Value)
	kept := make([]Row, 0, len(rows))
	for _, row := range rows {
		fields, err := tabular.Tokenize(row.Text, delim)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row.Line, err)
		}
		match := filter.Index < len(fields) && strings.ToLower(fields[filter.Index]) == want

		switch filter.Mode {
		case model.KeepMatching:
			if match {
				kept = append(kept, row)
			}
		case model.DropMatching:
			if !match {
				kept = append(kept, row)
			}
		default:
			return nil, fmt.Errorf("%w: unknown filter mode %q", ErrFormat, filter.Mode)
		}
	}
	return kept, nil
}
