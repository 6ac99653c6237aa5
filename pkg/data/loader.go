package data

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ErrEmptyInput is returned when the input has no header row.
var ErrEmptyInput = errors.New("empty input")

// Table is a read-only in-memory table with named, type-inferred columns.
type Table struct {
	df dataframe.DataFrame
}

// Options controls how delimited text is parsed.
type Options struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune
}

// Load reads a comma-delimited file into a Table. The file is closed before Load returns.
func Load(path string) (*Table, error) {
	return LoadWithOptions(path, Options{})
}

// LoadWithOptions is Load with a custom delimiter.
func LoadWithOptions(path string, opts Options) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	t, err := ReadWithOptions(bufio.NewReader(file), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return t, nil
}

// Read parses comma-delimited text from r into a Table.
func Read(r io.Reader) (*Table, error) {
	return ReadWithOptions(r, Options{})
}

// ReadWithOptions parses delimited text from r into a Table. The first
// record is the header; column types are inferred from the remaining records.
func ReadWithOptions(r io.Reader, opts Options) (*Table, error) {
	reader := csv.NewReader(r)
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	// gota refuses a header without rows, so build empty float columns directly.
	if len(records) == 1 {
		cols := make([]series.Series, len(records[0]))
		for i, name := range records[0] {
			cols[i] = series.New([]float64{}, series.Float, name)
		}
		df := dataframe.New(cols...)
		if df.Err != nil {
			return nil, fmt.Errorf("failed to build table: %w", df.Err)
		}
		return &Table{df: df}, nil
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to build table: %w", df.Err)
	}
	return &Table{df: df}, nil
}

// Names returns the column names in file order.
func (t *Table) Names() []string { return t.df.Names() }

// Types returns the inferred type name of each column, in file order.
func (t *Table) Types() []string {
	types := t.df.Types()
	out := make([]string, len(types))
	for i, typ := range types {
		out[i] = string(typ)
	}
	return out
}

// Nrow returns the number of data rows.
func (t *Table) Nrow() int { return t.df.Nrow() }

// Ncol returns the number of columns.
func (t *Table) Ncol() int { return t.df.Ncol() }

func (t *Table) column(name string) (series.Series, bool) {
	for _, n := range t.df.Names() {
		if n == name {
			return t.df.Col(name), true
		}
	}
	return series.Series{}, false
}
