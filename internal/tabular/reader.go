// Package tabular turns record files into raw row strings and splits rows
// into fields. Delimited text and spreadsheet workbooks come out in the same
// shape so the rest of the pipeline never knows which one it was given.
package tabular

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNotFound reports a path that does not resolve to a readable file.
	ErrNotFound = errors.New("file not found")
	// ErrFormat reports input or configuration the pipeline cannot interpret.
	ErrFormat = errors.New("invalid format")
)

// Table is the raw content of one records file. Rows[0] is the header.
//
// Readers that rewrite cell text fill the override fields; zero values mean
// the caller's own settings apply.
type Table struct {
	Rows       []string
	Delimiter  rune   // delimiter the rows were re-encoded with
	DateFormat string // strftime pattern date cells were rendered with
}

// Header returns the header row.
func (t Table) Header() (string, bool) {
	if len(t.Rows) == 0 {
		return "", false
	}
	return t.Rows[0], true
}

// Data returns the rows after the header.
func (t Table) Data() []string {
	if len(t.Rows) <= 1 {
		return nil
	}
	return t.Rows[1:]
}

// Reader converts a records file into a Table.
type Reader interface {
	Read(r io.Reader) (Table, error)
	Format() string
}

// Registry maps file extensions to readers.
type Registry struct {
	readers  map[string]Reader
	fallback Reader
}

// NewRegistry creates a registry that hands unknown extensions to fallback.
func NewRegistry(fallback Reader) *Registry {
	return &Registry{readers: make(map[string]Reader), fallback: fallback}
}

// Register binds an extension (with or without the leading dot) to a
// reader. Panics on duplicate extension.
func (r *Registry) Register(ext string, rd Reader) {
	key := normalizeExt(ext)
	if _, ok := r.readers[key]; ok {
		panic("duplicate reader extension: " + key)
	}
	r.readers[key] = rd
}

// Get returns the reader for ext, or the fallback.
func (r *Registry) Get(ext string) Reader {
	if rd, ok := r.readers[normalizeExt(ext)]; ok {
		return rd
	}
	return r.fallback
}

// DefaultRegistry reads workbooks with SpreadsheetReader and everything
// else as delimited text.
func DefaultRegistry() *Registry {
	r := NewRegistry(TextReader{})
	r.Register(".xlsx", SpreadsheetReader{})
	r.Register(".xlsm", SpreadsheetReader{})
	return r
}

// ReadFile opens path and reads it with the reader registered for its
// extension.
func (r *Registry) ReadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return Table{}, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return Table{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Table{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return Table{}, fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}

	rd := r.Get(filepath.Ext(path))
	t, err := rd.Read(f)
	if err != nil {
		return Table{}, fmt.Errorf("reading %s as %s: %w", path, rd.Format(), err)
	}
	return t, nil
}

// ReadFile reads path with the DefaultRegistry.
func ReadFile(path string) (Table, error) {
	return DefaultRegistry().ReadFile(path)
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
