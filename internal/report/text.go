package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/moneyovertime/mot/internal/model"
)

// barWidth is the widest trend bar drawn by Text.RenderBalance.
const barWidth = 40

// Text is the plain terminal layout.
type Text struct{}

// RenderBalance prints one line per date with the balance and a bar
// proportional to its size; negative balances use a different glyph.
func (Text) RenderBalance(w io.Writer, s model.Series, dateFormat string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Money over time:")

	peak := decimal.Zero
	for _, m := range s {
		if a := m.Amount.Abs(); a.GreaterThan(peak) {
			peak = a
		}
	}
	for _, m := range s {
		fmt.Fprintf(bw, "%s %12s  %s\n", formatDate(m.Date, dateFormat), signed(m.Amount), bar(m.Amount, peak))
	}
	return bw.Flush()
}

func bar(amount, peak decimal.Decimal) string {
	if peak.IsZero() {
		return ""
	}
	n := int(amount.Abs().Div(peak).Mul(decimal.NewFromInt(barWidth)).Round(0).IntPart())
	glyph := "#"
	if amount.IsNegative() {
		glyph = "-"
	}
	return strings.Repeat(glyph, n)
}

// RenderDiff prints each discrepancy as a small block, newest first.
func (Text) RenderDiff(w io.Writer, r model.Report, dateFormat string) error {
	bw := bufio.NewWriter(w)
	if len(r) == 0 {
		fmt.Fprintln(bw, NoDifferences)
		return bw.Flush()
	}

	fmt.Fprintln(bw, "Differences found:")
	for _, d := range r {
		fmt.Fprintf(bw, "> %s\n", formatDate(d.Date, dateFormat))
		fmt.Fprintf(bw, "   Source: %s\n", nullable(d.Source))
		fmt.Fprintf(bw, "   Reference: %s\n", nullable(d.Reference))
		if delta, ok := d.Delta(); ok {
			fmt.Fprintf(bw, "   Diff. (ref - src): %s\n", signed(delta))
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}
