package pxreader

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// A Series is a fixed-type one-dimensional sequence of data
// values, with an optional mask for missing values.
type Series struct {

	// A name describing what is in this series.
	Name string

	// The length of the series.
	length int

	// The data, one of []int64, []float64 or []string.
	data interface{}

	// Indicators that data values are missing.  If nil, there are
	// no missing values.
	missing []bool
}

// ilen returns the length of a slice, held in an interface value.
// If the interface does not hold a slice of a known type, an error
// is returned.
func ilen(data interface{}) (int, error) {

	switch data := data.(type) {
	case []float64:
		return len(data), nil
	case []int64:
		return len(data), nil
	case []string:
		return len(data), nil
	default:
		return 0, fmt.Errorf("unknown data type %T", data)
	}
}

// NewSeries returns a new Series value with the given name and data
// contents.  The data slice parameter is not copied.
func NewSeries(name string, data interface{}, missing []bool) (*Series, error) {

	length, err := ilen(data)
	if err != nil {
		return nil, err
	}

	if missing != nil && len(missing) != length {
		return nil, fmt.Errorf("series %q: missing mask has length %d, data has length %d",
			name, len(missing), length)
	}

	ser := Series{
		Name:    name,
		length:  length,
		data:    data,
		missing: missing,
	}

	return &ser, nil
}

// format returns the text form of element j, or "" if it is missing.
func (ser *Series) format(j int) string {

	if ser.missing != nil && ser.missing[j] {
		return ""
	}

	switch data := ser.data.(type) {
	case []float64:
		return strconv.FormatFloat(data[j], 'f', -1, 64)
	case []int64:
		return strconv.FormatInt(data[j], 10)
	case []string:
		return data[j]
	default:
		panic(fmt.Sprintf("unknown data type %T in Series", ser.data))
	}
}

// Write writes the entire Series to the given writer.
func (ser *Series) Write(w io.Writer) error {
	return ser.WriteRange(w, 0, ser.length)
}

// WriteRange writes the given subinterval of the Series to the given writer.
func (ser *Series) WriteRange(w io.Writer, first, last int) error {

	ty := fmt.Sprintf("%T", ser.data)
	if _, err := fmt.Fprintf(w, "Name: %s\nType: %s\n", ser.Name, ty[2:]); err != nil {
		return err
	}

	for j := first; j < last; j++ {
		var err error
		if ser.missing != nil && ser.missing[j] {
			_, err = fmt.Fprintf(w, "%d:\n", j)
		} else {
			_, err = fmt.Fprintf(w, "%d:  %s\n", j, ser.format(j))
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// Print prints the entire Series to the standard output.
func (ser *Series) Print() {
	if err := ser.Write(os.Stdout); err != nil {
		panic(err)
	}
}

// Data returns the data component of the Series.
func (ser *Series) Data() interface{} {
	return ser.data
}

// Missing returns the array of missing value indicators.
func (ser *Series) Missing() []bool {
	return ser.missing
}

// Length returns the number of elements in a Series.
func (ser *Series) Length() int {
	return ser.length
}

// Type returns the data type of the Series.
func (ser *Series) Type() ColumnType {
	return columnType(ser)
}

// IsMissing returns true if element j is missing.
func (ser *Series) IsMissing(j int) bool {
	return ser.missing != nil && ser.missing[j]
}

// Slice returns a Series holding elements first through last-1.  The
// data are not copied.
func (ser *Series) Slice(first, last int) *Series {

	var miss []bool
	if ser.missing != nil {
		miss = ser.missing[first:last]
	}

	var s *Series
	switch data := ser.data.(type) {
	case []float64:
		s, _ = NewSeries(ser.Name, data[first:last], miss)
	case []int64:
		s, _ = NewSeries(ser.Name, data[first:last], miss)
	case []string:
		s, _ = NewSeries(ser.Name, data[first:last], miss)
	default:
		panic(fmt.Sprintf("unknown data type %T in Slice", ser.data))
	}

	return s
}

// AllClose returns true, 0 if the Series is within tol of the other
// series.  If the Series have different lengths, AllClose returns
// false, -1.  If the Series have different types, AllClose returns
// false, -2.  If the Series have the same type and the same length
// but are not equal, AllClose returns false, j, where j is the index
// of the first position where the two series differ.
func (ser *Series) AllClose(other *Series, tol float64) (bool, int) {

	if ser.length != other.length {
		return false, -1
	}

	for j := 0; j < ser.length; j++ {
		if ser.IsMissing(j) != other.IsMissing(j) {
			return false, j
		}
	}

	switch u := ser.data.(type) {
	default:
		panic(fmt.Sprintf("Unknown type %T in Series.AllClose", ser.data))
	case []float64:
		v, ok := other.data.([]float64)
		if !ok {
			return false, -2
		}
		for i := 0; i < ser.length; i++ {
			if !ser.IsMissing(i) && math.Abs(u[i]-v[i]) > tol {
				return false, i
			}
		}
	case []int64:
		v, ok := other.data.([]int64)
		if !ok {
			return false, -2
		}
		for i := 0; i < ser.length; i++ {
			if !ser.IsMissing(i) && u[i] != v[i] {
				return false, i
			}
		}
	case []string:
		v, ok := other.data.([]string)
		if !ok {
			return false, -2
		}
		for i := 0; i < ser.length; i++ {
			if !ser.IsMissing(i) && u[i] != v[i] {
				return false, i
			}
		}
	}
	return true, 0
}

// AllEqual is equivalent to AllClose with tol=0.
func (ser *Series) AllEqual(other *Series) (bool, int) {
	return ser.AllClose(other, 0.0)
}

// UpcastNumeric returns a copy of an int64 series with float64
// values.  Other series are returned unchanged.
func (ser *Series) UpcastNumeric() *Series {

	d, ok := ser.data.([]int64)
	if !ok {
		return ser
	}

	a := make([]float64, len(d))
	for i, x := range d {
		a[i] = float64(x)
	}

	var cmiss []bool
	if ser.missing != nil {
		cmiss = make([]bool, ser.length)
		copy(cmiss, ser.missing)
	}

	s, _ := NewSeries(ser.Name, a, cmiss)
	return s
}

// IsNumeric returns true if the series holds int64 or float64 values.
func (ser *Series) IsNumeric() bool {
	switch ser.data.(type) {
	case []int64, []float64:
		return true
	default:
		return false
	}
}

// CountMissing returns the number of missing values in the Series.
func (ser *Series) CountMissing() int {

	m := 0
	for _, b := range ser.missing {
		if b {
			m++
		}
	}

	return m
}

// ToString returns a Series with string values, derived
// from the given series.  Missing values become empty strings.
func (ser *Series) ToString() *Series {

	if _, ok := ser.data.([]string); ok {
		return ser
	}

	x := make([]string, ser.length)
	for i := range x {
		x[i] = ser.format(i)
	}

	var cmiss []bool
	if ser.missing != nil {
		cmiss = make([]bool, ser.length)
		copy(cmiss, ser.missing)
	}

	s, _ := NewSeries(ser.Name, x, cmiss)
	return s
}

// AsFloat64Slice returns the data of the series as a float64 slice,
// and a boolean slice for the missing value indicators.
func (ser *Series) AsFloat64Slice() ([]float64, []bool, error) {

	v, ok := ser.data.([]float64)
	if !ok {
		return nil, nil, fmt.Errorf("can't convert %T to []float64", ser.data)
	}

	return v, ser.missing, nil
}

// AsInt64Slice returns the data of the series as an int64 slice,
// and a boolean slice for the missing value indicators.
func (ser *Series) AsInt64Slice() ([]int64, []bool, error) {

	v, ok := ser.data.([]int64)
	if !ok {
		return nil, nil, fmt.Errorf("can't convert %T to []int64", ser.data)
	}

	return v, ser.missing, nil
}

// AsStringSlice returns the series data as slices for the values,
// and the missing data indicators.
func (ser *Series) AsStringSlice() ([]string, []bool, error) {

	v, ok := ser.data.([]string)
	if !ok {
		return nil, nil, fmt.Errorf("can't convert %T to []string", ser.data)
	}

	return v, ser.missing, nil
}

// Value returns element j as an int64, float64 or string, or nil if
// it is missing.
func (ser *Series) Value(j int) interface{} {

	if ser.IsMissing(j) {
		return nil
	}

	switch data := ser.data.(type) {
	case []float64:
		return data[j]
	case []int64:
		return data[j]
	case []string:
		return data[j]
	default:
		panic(fmt.Sprintf("unknown data type %T in Value", ser.data))
	}
}

// SeriesArray is an array of pointers to Series objects.  It can represent
// a dataset consisting of several variables.
type SeriesArray []*Series

// Names returns the names of the series.
func (ser SeriesArray) Names() []string {

	names := make([]string, len(ser))
	for j, s := range ser {
		names[j] = s.Name
	}
	return names
}

// Column returns the series with the given name, or nil if there is
// no such series.
func (ser SeriesArray) Column(name string) *Series {

	for _, s := range ser {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Rows returns the number of rows, the length of the first series.
func (ser SeriesArray) Rows() int {

	if len(ser) == 0 {
		return 0
	}
	return ser[0].Length()
}

// AllClose returns (true, 0, 0) if all numeric values in
// corresponding columns of the two arrays of Series objects are
// within the given tolerance.  If any corresponding columns are not
// identically equal, returns (false, j, i), where j is the index of a
// column and i is the index of a row where the two Series are not
// identical.  If the two SeriesArray objects have different numbers
// of columns, returns (false, -1, -1).  If column j of the two
// SeriesArray objects have different lengths, returns (false, j, -1).
// If column j of the two SeriesArray objects have different types,
// returns (false, j, -2)
func (ser SeriesArray) AllClose(other []*Series, tol float64) (bool, int, int) {

	if len(ser) != len(other) {
		return false, -1, -1
	}

	for j := 0; j < len(ser); j++ {
		f, i := ser[j].AllClose(other[j], tol)
		if !f {
			return false, j, i
		}
	}

	return true, 0, 0
}

// AllEqual is equivalent to AllClose with tol = 0.
func (ser SeriesArray) AllEqual(other []*Series) (bool, int, int) {
	return ser.AllClose(other, 0.0)
}
