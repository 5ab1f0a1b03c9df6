package model

// FilterMode selects what a Filter does with matching rows.
type FilterMode string

const (
	// KeepMatching keeps only rows whose filter field equals the value.
	KeepMatching FilterMode = "keep"
	// DropMatching drops rows whose filter field equals the value.
	DropMatching FilterMode = "drop"
)

// Column locates a field by its header label.
type Column struct {
	Label    string
	Index    int // meaningful only when Resolved
	Resolved bool
}

// At returns a copy of c resolved to index.
func (c Column) At(index int) Column {
	c.Index = index
	c.Resolved = true
	return c
}

// DateColumn is the date column plus the strftime pattern of its values.
type DateColumn struct {
	Column
	Format string
}

// Filter narrows the rows fed to aggregation by one column's value.
type Filter struct {
	Column
	Value string
	Mode  FilterMode
}

// Enabled reports whether the filter has both a label and a value.
// A half-configured filter disables filtering instead of failing.
func (f *Filter) Enabled() bool {
	return f != nil && f.Label != "" && f.Value != ""
}
