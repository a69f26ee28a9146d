package pxreader

import (
	"fmt"
)

// A Dimension is one row dimension of a cube, with its categories in
// the order they are listed in the file.
type Dimension struct {
	Name   string
	Values []string
}

// A Cube is a parsed PC-AXIS table.  Row i of the cube holds the cells
// Rows[i], one for each of the Headers, and is identified by the tuple
// of dimension categories Index[i].  Index enumerates the Cartesian
// product of the dimension categories with the last dimension varying
// fastest.
type Cube struct {

	// The name of the heading dimension.
	Heading string

	// The categories of the heading dimension, these become the
	// value columns of the flat table.
	Headers []string

	// The row dimensions, in STUB order.
	Dimensions []Dimension

	// One tuple of dimension categories per row.
	Index [][]string

	// The cells, one slice of len(Headers) per row.
	Rows [][]string

	// All directives of the file, including those not used to
	// build the table (TITLE, UNITS, SOURCE, ...).
	Meta Directives
}

// Parse parses the text of a PC-AXIS file into a Cube.
func Parse(text string) (*Cube, error) {

	dirs, err := SplitDirectives(text)
	if err != nil {
		return nil, err
	}

	return BuildCube(dirs)
}

// BuildCube assembles a Cube from the directives of a PC-AXIS file.
// No partial cube is returned: any inconsistency between the
// directives results in a *ParseError.
func BuildCube(dirs Directives) (*Cube, error) {

	head, ok := dirs.Unquoted(headingKey)
	if !ok {
		return nil, newParseError(headingKey, ErrMissingDimension)
	}
	headers, err := dirs.tokens(valuesKey(head), FieldDialect, ErrMissingDimension)
	if err != nil {
		return nil, err
	}

	levels, err := dirs.tokens(stubKey, FieldDialect, ErrMissingDimension)
	if err != nil {
		return nil, err
	}

	dims := make([]Dimension, len(levels))
	for j, name := range levels {
		vals, err := dirs.tokens(valuesKey(name), FieldDialect, ErrMissingDimension)
		if err != nil {
			return nil, err
		}
		dims[j] = Dimension{Name: name, Values: vals}
	}

	data, err := dirs.tokens(dataKey, DataDialect, ErrMissingDirective)
	if err != nil {
		return nil, err
	}

	rows, err := reshape(data, len(headers))
	if err != nil {
		return nil, err
	}

	index := product(dims)
	if len(index) != len(rows) {
		msg := fmt.Errorf("%w: %d data rows for %d category combinations",
			ErrCardinality, len(rows), len(index))
		return nil, newParseError(dataKey, msg)
	}

	cube := &Cube{
		Heading:    head,
		Headers:    headers,
		Dimensions: dims,
		Index:      index,
		Rows:       rows,
		Meta:       dirs,
	}

	return cube, nil
}

// tokens looks up and tokenizes the named directive.  If the directive
// is absent, a *ParseError wrapping notFound is returned.
func (dirs Directives) tokens(name string, d Dialect, notFound error) ([]string, error) {

	v, ok := dirs[name]
	if !ok {
		return nil, newParseError(name, notFound)
	}

	toks, err := Tokenize(v, d)
	if err != nil {
		return nil, newParseError(name, err)
	}

	return toks, nil
}

// reshape slices the data cells into rows of the given width,
// preserving their order.
func reshape(data []string, width int) ([][]string, error) {

	if width == 0 {
		if len(data) == 0 {
			return nil, nil
		}
		msg := fmt.Errorf("%w: %d data cells but no heading categories", ErrDataShape, len(data))
		return nil, newParseError(dataKey, msg)
	}

	if len(data)%width != 0 {
		msg := fmt.Errorf("%w: %d data cells is not a multiple of %d heading categories",
			ErrDataShape, len(data), width)
		return nil, newParseError(dataKey, msg)
	}

	rows := make([][]string, 0, len(data)/width)
	for i := 0; i < len(data); i += width {
		rows = append(rows, data[i:i+width:i+width])
	}

	return rows, nil
}

// product returns the Cartesian product of the dimension categories,
// with the last dimension varying fastest.
func product(dims []Dimension) [][]string {

	n := 1
	for _, d := range dims {
		n *= len(d.Values)
	}
	if n == 0 {
		return nil
	}

	index := make([][]string, n)
	pos := make([]int, len(dims))
	for i := 0; i < n; i++ {
		tup := make([]string, len(dims))
		for j, d := range dims {
			tup[j] = d.Values[pos[j]]
		}
		index[i] = tup

		// Advance the odometer.
		for j := len(dims) - 1; j >= 0; j-- {
			pos[j]++
			if pos[j] < len(dims[j].Values) {
				break
			}
			pos[j] = 0
		}
	}

	return index
}

// RowCount returns the number of rows of the cube.
func (c *Cube) RowCount() int {
	return len(c.Rows)
}

// ColumnNames returns the names of the columns of the flat table:
// the dimension names followed by the headers.
func (c *Cube) ColumnNames() []string {

	names := make([]string, 0, len(c.Dimensions)+len(c.Headers))
	for _, d := range c.Dimensions {
		names = append(names, d.Name)
	}
	return append(names, c.Headers...)
}

// Column returns the raw text values of column j of the flat table.
func (c *Cube) Column(j int) []string {

	col := make([]string, len(c.Rows))
	nd := len(c.Dimensions)
	for i := range c.Rows {
		if j < nd {
			col[i] = c.Index[i][j]
		} else {
			col[i] = c.Rows[i][j-nd]
		}
	}

	return col
}

// Table flattens the cube into one Series per column.  Values listed
// in missing are marked as missing and do not prevent a column from
// being converted to a numeric type.
func (c *Cube) Table(missing []string) SeriesArray {

	miss := missingSet(missing)
	names := c.ColumnNames()

	table := make(SeriesArray, len(names))
	for j, name := range names {
		table[j] = coerceColumn(name, c.Column(j), miss)
	}

	return table
}
