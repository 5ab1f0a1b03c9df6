package movements

// Row is one data row and its 1-based position in the table, header
// included. The position survives filtering so errors point at the row
// the user has to fix.
type Row struct {
	Line int
	Text string
}

// NumberRows pairs data rows with their positions; the first data row is
// row 2, after the header.
func NumberRows(data []string) []Row {
	rows := make([]Row, len(data))
	for i, text := range data {
		rows[i] = Row{Line: i + 2, Text: text}
	}
	return rows
}
