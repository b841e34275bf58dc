// Package csvfile normalizes rows of the recipe dataset: it reads the
// delimited input, matches columns by header name, and decodes each row into
// a types.Recipe. It is a pure transformation layer with no store knowledge.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dukaforge/ladle/pkg/types"
)

// requiredColumns are the header names every input file must carry. Column
// order in the file is irrelevant; extra columns are ignored.
var requiredColumns = []string{
	"id", "name", "description", "ingredients", "minutes", "steps", "nutrition",
}

// Reader iterates the rows of one recipe file.
type Reader struct {
	f    *os.File
	csv  *csv.Reader
	cols map[string]int
	row  int // 1-based data row number, for error context
}

// Open opens the file at path and reads its header row. It returns
// ErrMissingColumn (wrapped) if any required column is absent.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	cr := csv.NewReader(f)
	header, err := cr.Read()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			f.Close()
			return nil, fmt.Errorf("%w: %q in %s", types.ErrMissingColumn, name, path)
		}
	}

	return &Reader{f: f, csv: cr, cols: cols}, nil
}

// Read returns the next normalized record. It returns io.EOF after the last
// row. Decode failures wrap ErrMalformedRow or ErrMalformedNumber with the
// row number and offending content.
func (r *Reader) Read() (*types.Recipe, error) {
	fields, err := r.csv.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("%w: row %d: %v", types.ErrMalformedRow, r.row+1, err)
	}
	r.row++

	id, err := strconv.Atoi(fields[r.cols["id"]])
	if err != nil {
		return nil, fmt.Errorf("%w: row %d: id %q is not an integer", types.ErrMalformedRow, r.row, fields[r.cols["id"]])
	}

	minutes, err := strconv.Atoi(fields[r.cols["minutes"]])
	if err != nil {
		return nil, fmt.Errorf("%w: row %d: minutes %q is not an integer", types.ErrMalformedRow, r.row, fields[r.cols["minutes"]])
	}

	nutrition, err := DecodeFloatList(fields[r.cols["nutrition"]])
	if err != nil {
		return nil, fmt.Errorf("row %d: nutrition: %w", r.row, err)
	}

	return &types.Recipe{
		ID:          id,
		Name:        fields[r.cols["name"]],
		Description: fields[r.cols["description"]],
		Ingredients: DecodeStringList(fields[r.cols["ingredients"]]),
		Minutes:     minutes,
		Steps:       DecodeStringList(fields[r.cols["steps"]]),
		Nutrition:   nutrition,
	}, nil
}

// Row returns the number of data rows read so far.
func (r *Reader) Row() int {
	return r.row
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.f.Close()
}
