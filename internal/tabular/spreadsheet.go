package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/moneyovertime/mot/internal/dateformat"
)

// SpreadsheetReader reads the first sheet of an xlsx workbook and
// re-encodes it as comma-delimited rows.
//
// Date-formatted cells are always written as YYYY-MM-DD, whatever date
// format the caller configured; the returned Table says so through its
// DateFormat field.
type SpreadsheetReader struct{}

const (
	sheetDelimiter = ','
	isoLayout      = "2006-01-02"
)

// Format returns the reader name.
func (SpreadsheetReader) Format() string { return "spreadsheet" }

// Read loads the workbook and flattens its first sheet.
func (SpreadsheetReader) Read(r io.Reader) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("%w: opening workbook: %w", ErrFormat, err)
	}
	defer f.Close()

	table := Table{Delimiter: sheetDelimiter, DateFormat: dateformat.ISO}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return table, nil
	}
	sheet := sheets[0]

	grid, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return Table{}, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(grid) == 0 {
		return table, nil
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}
	styles := &dateStyles{f: f, sheet: sheet, known: make(map[int]bool)}

	width := len(grid[0])
	for i, row := range grid {
		if isBlank(row) {
			continue
		}
		cells := make([]string, max(width, len(row)))
		for j, v := range row {
			cells[j] = flatten(v)
			if i == 0 || v == "" {
				continue
			}
			iso, err := styles.render(j+1, i+1, v, date1904)
			if err != nil {
				return Table{}, err
			}
			if iso != "" {
				cells[j] = iso
			}
		}
		line, err := encodeRow(cells)
		if err != nil {
			return Table{}, fmt.Errorf("encoding sheet row %d: %w", i+1, err)
		}
		table.Rows = append(table.Rows, line)
	}
	return table, nil
}

// dateStyles answers whether a cell carries a date number format, caching
// the answer per style ID.
type dateStyles struct {
	f     *excelize.File
	sheet string
	known map[int]bool
}

// render returns the ISO date for a date-formatted numeric cell and "" for
// every other cell.
func (d *dateStyles) render(col, row int, raw string, date1904 bool) (string, error) {
	isDate, err := d.isDate(col, row)
	if err != nil || !isDate {
		return "", err
	}
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		// Text typed into a date-formatted cell is left alone.
		return "", nil
	}
	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return "", fmt.Errorf("%w: converting date serial %q: %w", ErrFormat, raw, err)
	}
	return t.Format(isoLayout), nil
}

func (d *dateStyles) isDate(col, row int) (bool, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return false, fmt.Errorf("cell name for %d,%d: %w", col, row, err)
	}
	id, err := d.f.GetCellStyle(d.sheet, cell)
	if err != nil {
		return false, fmt.Errorf("style of %s: %w", cell, err)
	}
	if v, ok := d.known[id]; ok {
		return v, nil
	}

	style, err := d.f.GetStyle(id)
	if err != nil {
		return false, fmt.Errorf("style %d: %w", id, err)
	}
	v := false
	if style != nil {
		v = isDateNumFmt(style.NumFmt)
		if style.CustomNumFmt != nil {
			v = isDateFormatCode(*style.CustomNumFmt)
		}
	}
	d.known[id] = v
	return v, nil
}

// isDateNumFmt reports whether a built-in number format ID shows a date.
// Time-only formats (18-21, 45-47) are not dates.
func isDateNumFmt(id int) bool {
	switch {
	case id >= 14 && id <= 17, id == 22:
		return true
	case id >= 27 && id <= 36, id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode reports whether a custom number format code contains
// year or day tokens. Quoted literals, escapes and [..] sections are
// ignored; only the first section counts. A lone "m" is ambiguous with
// minutes and does not make a date.
func isDateFormatCode(code string) bool {
	var b strings.Builder
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case inQuote:
			if c == '"' {
				inQuote = false
			}
		case inBracket:
			if c == ']' {
				inBracket = false
			}
		case c == '"':
			inQuote = true
		case c == '[':
			inBracket = true
		case c == '\\' || c == '_' || c == '*':
			i++
		case c == ';':
			i = len(code)
		default:
			b.WriteByte(c)
		}
	}
	return strings.ContainsAny(strings.ToLower(b.String()), "yd")
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// flatten keeps multi-line cell text on one row.
func flatten(v string) string {
	return strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(v)
}

func encodeRow(cells []string) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = sheetDelimiter
	if err := w.Write(cells); err != nil {
		return "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
