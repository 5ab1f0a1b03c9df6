package tabular

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// TextReader reads delimited text files. Rows are returned verbatim.
type TextReader struct{}

// Format returns the reader name.
func (TextReader) Format() string { return "text" }

// Read reads all of r, drops a leading byte-order mark (decoding UTF-16
// when the mark says so) and splits on \r\n, \r or \n.
func (TextReader) Read(r io.Reader) (Table, error) {
	dec := transform.NewReader(r, unicode.BOMOverride(encoding.Nop.NewDecoder()))
	data, err := io.ReadAll(dec)
	if err != nil {
		return Table{}, fmt.Errorf("reading text: %w", err)
	}
	return Table{Rows: SplitLines(string(data))}, nil
}

// SplitLines splits s on universal newlines. A final line terminator does
// not produce an empty last row.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
