package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// DefaultDelimiter separates fields when nothing else is configured.
const DefaultDelimiter = ','

// ParseDelimiter converts a configured delimiter string to a rune. It must
// be exactly one character that CSV grammar allows as a separator.
func ParseDelimiter(s string) (rune, error) {
	if s == "" {
		return DefaultDelimiter, nil
	}
	d, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return 0, fmt.Errorf("%w: delimiter %q must be a single character", ErrFormat, s)
	}
	if err := checkDelimiter(d); err != nil {
		return 0, err
	}
	return d, nil
}

func checkDelimiter(d rune) error {
	if d == '"' || d == '\r' || d == '\n' || d == utf8.RuneError || !utf8.ValidRune(d) {
		return fmt.Errorf("%w: %q cannot be used as a delimiter", ErrFormat, d)
	}
	return nil
}

// Tokenize splits one row into fields. Quoted fields may contain the
// delimiter, "" inside quotes is a literal quote and an unterminated quote
// runs to the end of the row. An empty row yields no fields.
func Tokenize(row string, delim rune) ([]string, error) {
	if err := checkDelimiter(delim); err != nil {
		return nil, err
	}

	cr := csv.NewReader(strings.NewReader(row))
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = false

	fields, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: tokenizing row: %w", ErrFormat, err)
	}
	return fields, nil
}
