package pxreader

import (
	"encoding/csv"
	"fmt"
	"io"
)

// A CSVReader specifies how a flat data set in CSV format can be read
// from a text file.  Column types are converted in the same way as
// the columns of a PC-AXIS table.
type CSVReader struct {

	// Skip this number of rows before reading the header.
	SkipRows int

	// If true, there is a header to read, otherwise default column names are used
	HasHeader bool

	// The column names, in the order that they appear in the
	// file.  Can be set by caller.
	ColumnNamesList []string

	// Values that denote missing cells.  Empty cells are always
	// missing.
	MissingValues []string

	// The field delimiter, ',' by default.
	Comma rune

	// The reader object provided by the caller.
	reader io.Reader

	// The columns, built by init.
	table SeriesArray

	// The error returned by init, if any.
	initErr error

	// The number of rows of data that have been read.
	rowsRead int
}

// NewCSVReader returns a CSVReader that reads CSV data from the given io.reader,
// with type inference and chunking.
func NewCSVReader(r io.Reader) *CSVReader {

	rdr := new(CSVReader)
	rdr.HasHeader = true
	rdr.Comma = ','
	rdr.reader = r

	return rdr
}

func (rdr *CSVReader) getColumnNames(lines [][]string) [][]string {

	if rdr.ColumnNamesList != nil {
		if rdr.HasHeader {
			return lines[1:]
		}
		return lines
	}

	if rdr.HasHeader {
		rdr.ColumnNamesList = lines[0]
		return lines[1:]
	}

	// Default names
	m := len(lines[0])
	rdr.ColumnNamesList = make([]string, m)
	for k := 0; k < m; k++ {
		rdr.ColumnNamesList[k] = fmt.Sprintf("Column %d", k+1)
	}

	return lines
}

// rectifyLines pads short records with empty (missing) cells, and
// extends the column names to cover the longest record.
func (rdr *CSVReader) rectifyLines(lines [][]string) {

	mx := len(rdr.ColumnNamesList)
	for _, line := range lines {
		if len(line) > mx {
			mx = len(line)
		}
	}

	for k := len(rdr.ColumnNamesList); k < mx; k++ {
		rdr.ColumnNamesList = append(rdr.ColumnNamesList, fmt.Sprintf("Column %d", k+1))
	}

	for i, line := range lines {
		for len(line) < mx {
			line = append(line, "")
		}
		lines[i] = line
	}
}

// init reads the whole file, so that column types are determined
// from all of the values in each column.
func (rdr *CSVReader) init() error {

	cr := csv.NewReader(rdr.reader)
	cr.Comma = rdr.Comma
	cr.FieldsPerRecord = -1

	var lines [][]string
	for k := 0; ; k++ {
		v, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		if k >= rdr.SkipRows {
			lines = append(lines, v)
		}
	}

	if len(lines) == 0 {
		return fmt.Errorf("file appears to be empty")
	}

	lines = rdr.getColumnNames(lines)
	rdr.rectifyLines(lines)

	miss := missingSet(rdr.MissingValues)
	rdr.table = make(SeriesArray, len(rdr.ColumnNamesList))
	col := make([]string, len(lines))
	for j, name := range rdr.ColumnNamesList {
		for i, line := range lines {
			col[i] = line[j]
		}
		rdr.table[j] = coerceColumn(name, col, miss)
	}

	return nil
}

func (rdr *CSVReader) ensureInit() error {
	if rdr.table == nil && rdr.initErr == nil {
		rdr.initErr = rdr.init()
	}
	return rdr.initErr
}

// ColumnNames returns the column names, reading the file if necessary.
func (rdr *CSVReader) ColumnNames() []string {
	if err := rdr.ensureInit(); err != nil {
		return nil
	}
	return rdr.ColumnNamesList
}

// ColumnTypes returns the type that each column was converted to.
func (rdr *CSVReader) ColumnTypes() []ColumnType {

	if err := rdr.ensureInit(); err != nil {
		return nil
	}

	types := make([]ColumnType, len(rdr.table))
	for j, s := range rdr.table {
		types[j] = s.Type()
	}
	return types
}

// Read reads up lines rows of data and returns the results as an
// array of Series objects.  If lines is not positive the rest of the
// file is read.  When no rows remain, Read returns nil, io.EOF.
func (rdr *CSVReader) Read(lines int) ([]*Series, error) {

	if err := rdr.ensureInit(); err != nil {
		return nil, err
	}

	n := rdr.table.Rows()
	if rdr.rowsRead >= n {
		return nil, io.EOF
	}

	last := n
	if lines > 0 && rdr.rowsRead+lines < n {
		last = rdr.rowsRead + lines
	}

	chunk := make([]*Series, len(rdr.table))
	for j, s := range rdr.table {
		chunk[j] = s.Slice(rdr.rowsRead, last)
	}
	rdr.rowsRead = last

	return chunk, nil
}
