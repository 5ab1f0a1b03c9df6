// Package report renders balance series and discrepancy reports for people
// and for other tools.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneyovertime/mot/internal/dateformat"
	"github.com/moneyovertime/mot/internal/model"
)

// Renderer writes finished series and reports. Dates are printed with
// dateFormat, a strftime pattern.
type Renderer interface {
	RenderBalance(w io.Writer, s model.Series, dateFormat string) error
	RenderDiff(w io.Writer, r model.Report, dateFormat string) error
}

// Output formats accepted by New.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
)

// Formats lists the names accepted by New.
var Formats = []string{FormatText, FormatMarkdown, FormatCSV}

// StyleRaw makes the markdown renderer print markdown source.
const StyleRaw = "raw"

// Options tune renderers that support them. Style and Width only apply to
// markdown.
type Options struct {
	Style string // glamour standard style name, StyleRaw, or empty for auto
	Width int    // word-wrap width, 0 for glamour's default
}

// New returns the renderer for a format name.
func New(format string, opts Options) (Renderer, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return Text{}, nil
	case FormatMarkdown, "md":
		if strings.EqualFold(opts.Style, StyleRaw) {
			return Markdown{Raw: true}, nil
		}
		return Markdown{Style: opts.Style, Width: opts.Width}, nil
	case FormatCSV:
		return CSV{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q (want one of %s)", format, strings.Join(Formats, ", "))
}

// NoDifferences is printed when a diff finds nothing.
const NoDifferences = "No differences found!"

const notAvailable = "Not available"

// signed formats an amount with an explicit sign and two decimals.
func signed(d decimal.Decimal) string {
	s := d.StringFixed(model.Precision)
	if !d.IsNegative() {
		return "+" + s
	}
	return s
}

func formatDate(t time.Time, pattern string) string {
	if pattern == "" {
		pattern = dateformat.Default
	}
	return dateformat.Format(t, pattern)
}

func nullable(d decimal.NullDecimal) string {
	if !d.Valid {
		return notAvailable
	}
	return signed(d.Decimal)
}
