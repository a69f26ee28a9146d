package pxreader

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/apd"
)

// ColumnType is the data type of a column after conversion.
type ColumnType int

const (
	StringType ColumnType = iota
	IntegerType
	FloatType
)

func (t ColumnType) String() string {
	switch t {
	case IntegerType:
		return "int64"
	case FloatType:
		return "float64"
	default:
		return "string"
	}
}

// columnType returns the type of a Series produced by coerceColumn.
func columnType(ser *Series) ColumnType {
	switch ser.data.(type) {
	case []int64:
		return IntegerType
	case []float64:
		return FloatType
	default:
		return StringType
	}
}

func missingSet(values []string) map[string]bool {

	if len(values) == 0 {
		return nil
	}

	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}

// parseInt returns the value of an integer literal.
func parseInt(s string) (int64, bool) {
	x, err := strconv.ParseInt(s, 10, 64)
	return x, err == nil
}

// parseDecimal returns the value of a finite decimal literal.  Forms
// such as "NaN" or "Inf" that strconv would accept are rejected.
func parseDecimal(s string) (float64, bool) {

	d, _, err := apd.NewFromString(s)
	if err != nil || d.Form != apd.Finite {
		return 0, false
	}

	x, err := d.Float64()
	if err != nil {
		return 0, false
	}
	return x, true
}

// coerceColumn converts the text values of a column into the most
// specific type that all non-missing values can be parsed as: int64,
// then float64, otherwise string.  A value is missing if it is in
// miss, or if it is blank.
func coerceColumn(name string, vals []string, miss map[string]bool) *Series {

	n := len(vals)
	mask := make([]bool, n)
	nmiss := 0
	for i, v := range vals {
		if miss[v] || strings.TrimSpace(v) == "" {
			mask[i] = true
			nmiss++
		}
	}
	if nmiss == 0 {
		mask = nil
	}

	isMissing := func(i int) bool {
		return mask != nil && mask[i]
	}

	// An all-missing column carries no type information.
	if nmiss < n {
		ints := make([]int64, n)
		ok := true
		for i, v := range vals {
			if isMissing(i) {
				continue
			}
			if ints[i], ok = parseInt(strings.TrimSpace(v)); !ok {
				break
			}
		}
		if ok {
			s, _ := NewSeries(name, ints, mask)
			return s
		}

		floats := make([]float64, n)
		ok = true
		for i, v := range vals {
			if isMissing(i) {
				continue
			}
			if floats[i], ok = parseDecimal(strings.TrimSpace(v)); !ok {
				break
			}
		}
		if ok {
			s, _ := NewSeries(name, floats, mask)
			return s
		}
	}

	strs := make([]string, n)
	copy(strs, vals)
	s, _ := NewSeries(name, strs, mask)
	return s
}
