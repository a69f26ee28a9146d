package pxreader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Dialect selects the delimiter used to tokenize a directive value.
type Dialect int

const (
	// FieldDialect is used for lists such as STUB and VALUES, where
	// quoted items are separated by commas.
	FieldDialect Dialect = iota

	// DataDialect is used for the DATA block, where quoted or bare
	// cells are separated by spaces.
	DataDialect
)

func (d Dialect) String() string {
	switch d {
	case FieldDialect:
		return "field"
	case DataDialect:
		return "data"
	default:
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
}

func (d Dialect) delimiter() rune {
	if d == DataDialect {
		return ' '
	}
	return ','
}

// Tokenize splits a directive value into its items.  Double quotes
// delimit items and are not part of them.  Empty items, which arise
// from line breaks within the value, are dropped.  Malformed quoting
// results in an error wrapping ErrTokenize.
func Tokenize(value string, d Dialect) ([]string, error) {

	r := csv.NewReader(strings.NewReader(value))
	r.Comma = d.delimiter()
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.ReuseRecord = true

	var out []string
	for {
		line, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("%w: %s dialect: %w", ErrTokenize, d, err)
		}

		for _, item := range line {
			if item != "" {
				out = append(out, item)
			}
		}
	}

	return out, nil
}
