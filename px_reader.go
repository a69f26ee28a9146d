package pxreader

import (
	"io"
	"os"
)

// A PXReader reads a PC-AXIS file.  The whole file is parsed when the
// reader is created; Read then returns the flat table in chunks.
type PXReader struct {

	// Values that denote missing cells, e.g. "..", "...".  Cells
	// holding one of these values are marked as missing and do not
	// prevent a column from being numeric.  Must be set before the
	// first call to Read or ColumnTypes.
	MissingValues []string

	// The parsed file
	cube *Cube

	// The flat table, built on first use.
	table SeriesArray

	// The number of rows of data that have been read.
	rowsRead int
}

// NewPXReader returns a PXReader for the PC-AXIS data read from r.
// The whole of r is consumed.
func NewPXReader(r io.Reader) (*PXReader, error) {

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cube, err := Parse(string(b))
	if err != nil {
		return nil, err
	}

	return &PXReader{cube: cube}, nil
}

// ReadFile returns a PXReader for the named PC-AXIS file.
func ReadFile(fname string) (*PXReader, error) {

	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return NewPXReader(f)
}

// Cube returns the parsed PC-AXIS table.
func (rdr *PXReader) Cube() *Cube {
	return rdr.cube
}

// Meta returns the value of the named directive with quotes removed,
// e.g. Meta("TITLE") or Meta("UNITS").
func (rdr *PXReader) Meta(name string) (string, bool) {
	return rdr.cube.Meta.Unquoted(name)
}

// RowCount returns the number of rows in the data set.
func (rdr *PXReader) RowCount() int {
	return rdr.cube.RowCount()
}

// ColumnNames returns the names of the columns of the flat table:
// one per dimension followed by one per heading category.
func (rdr *PXReader) ColumnNames() []string {
	return rdr.cube.ColumnNames()
}

// ColumnTypes returns the type that each column was converted to.
func (rdr *PXReader) ColumnTypes() []ColumnType {

	table := rdr.flat()
	types := make([]ColumnType, len(table))
	for j, s := range table {
		types[j] = s.Type()
	}
	return types
}

func (rdr *PXReader) flat() SeriesArray {
	if rdr.table == nil {
		rdr.table = rdr.cube.Table(rdr.MissingValues)
	}
	return rdr.table
}

// Read returns up to rows rows of data, starting after the rows
// returned by previous calls.  If rows is not positive, all remaining
// rows are returned.  When no rows remain, Read returns nil, io.EOF.
func (rdr *PXReader) Read(rows int) ([]*Series, error) {

	table := rdr.flat()
	n := rdr.cube.RowCount()

	if rdr.rowsRead >= n {
		return nil, io.EOF
	}

	last := n
	if rows > 0 && rdr.rowsRead+rows < n {
		last = rdr.rowsRead + rows
	}

	chunk := make([]*Series, len(table))
	for j, s := range table {
		chunk[j] = s.Slice(rdr.rowsRead, last)
	}
	rdr.rowsRead = last

	return chunk, nil
}
