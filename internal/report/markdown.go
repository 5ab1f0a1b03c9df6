package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	md "github.com/nao1215/markdown"

	"github.com/moneyovertime/mot/internal/model"
)

// Markdown builds a markdown document and renders it for the terminal with
// glamour. Style is a glamour standard style name; empty picks one from the
// terminal background. Raw skips glamour and writes the markdown source.
type Markdown struct {
	Style string
	Width int
	Raw   bool
}

// BalanceMarkdown returns the markdown source of a balance table.
func BalanceMarkdown(s model.Series, dateFormat string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Money over time")

	rows := make([][]string, 0, len(s))
	for _, m := range s {
		rows = append(rows, []string{formatDate(m.Date, dateFormat), signed(m.Amount)})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Date"), md.Bold("Balance")},
		Rows:      rows,
	})
	return doc.String()
}

// DiffMarkdown returns the markdown source of a discrepancy report.
func DiffMarkdown(r model.Report, dateFormat string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Differences")

	if len(r) == 0 {
		doc.PlainText(NoDifferences)
		return doc.String()
	}

	rows := make([][]string, 0, len(r))
	for _, d := range r {
		delta := ""
		if v, ok := d.Delta(); ok {
			delta = signed(v)
		}
		rows = append(rows, []string{
			formatDate(d.Date, dateFormat),
			nullable(d.Source),
			nullable(d.Reference),
			delta,
		})
	}
	doc.PlainText(fmt.Sprintf("%d dates disagree, most recent first.", len(r)))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{md.Bold("Date"), md.Bold("Source"), md.Bold("Reference"), md.Bold("Diff. (ref - src)")},
		Rows:      rows,
	})
	return doc.String()
}

// RenderBalance writes the balance table.
func (m Markdown) RenderBalance(w io.Writer, s model.Series, dateFormat string) error {
	return m.write(w, BalanceMarkdown(s, dateFormat))
}

// RenderDiff writes the discrepancy table.
func (m Markdown) RenderDiff(w io.Writer, r model.Report, dateFormat string) error {
	return m.write(w, DiffMarkdown(r, dateFormat))
}

func (m Markdown) write(w io.Writer, source string) error {
	if m.Raw {
		_, err := io.WriteString(w, source)
		return err
	}

	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if m.Style != "" {
		opts = []glamour.TermRendererOption{glamour.WithStandardStyle(m.Style)}
	}
	if m.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(m.Width))
	}
	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := tr.Render(source)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
