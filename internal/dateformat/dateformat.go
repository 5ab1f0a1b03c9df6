// Package dateformat parses and formats dates with strftime-style patterns
// such as "%d/%m/%Y", the notation users write on the command line and in
// mot.yaml.
package dateformat

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/itchyny/timefmt-go"
)

const (
	// Default is the pattern used when none is configured.
	Default = "%d/%m/%Y"
	// ISO is the pattern spreadsheet dates are normalized to.
	ISO = "%Y-%m-%d"
)

// probe is formatted and parsed back by Validate.
var probe = time.Date(2024, time.November, 23, 0, 0, 0, 0, time.UTC)

// Parse reads value with pattern. The value must be exactly what Format
// prints for the parsed date, so a short year under %Y or stray text is
// rejected.
func Parse(value, pattern string) (time.Time, error) {
	t, err := timefmt.Parse(value, pattern)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q with format %q: %w", value, pattern, err)
	}
	if back := Format(t, pattern); back != value {
		return time.Time{}, fmt.Errorf("date %q does not match format %q (reads as %q)", value, pattern, back)
	}
	return t, nil
}

// Format renders t with pattern.
func Format(t time.Time, pattern string) string {
	return timefmt.Format(t, pattern)
}

// Validate checks that pattern has at least one directive and that a date
// printed with it reads back to the same text: the pattern is used both to
// read input and to print reports.
func Validate(pattern string) error {
	if !strings.Contains(pattern, "%") {
		return errors.New("date format has no % directives")
	}
	if _, err := Parse(Format(probe, pattern), pattern); err != nil {
		return fmt.Errorf("date format %q does not round-trip: %w", pattern, err)
	}
	return nil
}
