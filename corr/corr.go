// Package corr computes correlation matrices of the numeric columns of
// a flat table, conditional on the values of grouping columns.
package corr

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/kshedden/pxreader"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ErrNoColumn indicates that a grouping column is not in the table.
var ErrNoColumn = errors.New("no such column")

// ErrTooFewColumns indicates that there are fewer than two numeric
// columns to correlate.
var ErrTooFewColumns = errors.New("need at least two numeric columns")

// A Matrix is a correlation matrix of named variables.
type Matrix struct {
	Names []string
	Corr  *mat.SymDense
}

// At returns the correlation of variables i and j.
func (m *Matrix) At(i, j int) float64 {
	return m.Corr.At(i, j)
}

// A Triple is one off-diagonal entry of a correlation matrix.
type Triple struct {
	Var1  string
	Var2  string
	Value float64
}

// Flatten returns the entries below the diagonal of the matrix, row
// by row.
func (m *Matrix) Flatten() []Triple {

	var out []Triple
	for i := 1; i < len(m.Names); i++ {
		for j := 0; j < i; j++ {
			out = append(out, Triple{Var1: m.Names[i], Var2: m.Names[j], Value: m.At(i, j)})
		}
	}
	return out
}

// A Group is the correlation matrix of the rows that share one value
// of a grouping column.
type Group struct {

	// The grouping column.
	Column string

	// The value of the grouping column, as text.
	Value string

	// The number of rows in the group.
	Size int

	// The correlations of the numeric columns within the group.
	Matrix *Matrix
}

// numericColumns returns the numeric columns of data, other than
// exclude, as float64 series.
func numericColumns(data []*pxreader.Series, exclude string) []*pxreader.Series {

	var cols []*pxreader.Series
	for _, s := range data {
		if s.Name == exclude || !s.IsNumeric() {
			continue
		}
		cols = append(cols, s.UpcastNumeric())
	}
	return cols
}

// groupKey is one distinct value of a grouping column.
type groupKey struct {
	text string
	num  float64
	rows []int
}

// groupRows partitions the non-missing rows of s by value.  Groups
// are ordered by value, numerically for numeric series.
func groupRows(s *pxreader.Series) []*groupKey {

	numeric := s.IsNumeric()
	num, _, _ := s.UpcastNumeric().AsFloat64Slice()
	text, _, _ := s.ToString().AsStringSlice()

	groups := make(map[string]*groupKey)
	var keys []*groupKey
	for i := 0; i < s.Length(); i++ {
		if s.IsMissing(i) {
			continue
		}
		g, ok := groups[text[i]]
		if !ok {
			g = &groupKey{text: text[i]}
			if numeric {
				g.num = num[i]
			}
			groups[text[i]] = g
			keys = append(keys, g)
		}
		g.rows = append(g.rows, i)
	}

	sort.SliceStable(keys, func(a, b int) bool {
		if numeric {
			return keys[a].num < keys[b].num
		}
		return keys[a].text < keys[b].text
	})

	return keys
}

// pairCorr returns the Pearson correlation of two columns over the
// given rows, using only rows where neither value is missing.  NaN is
// returned if fewer than two such rows exist.
func pairCorr(a, b *pxreader.Series, rows []int) float64 {

	x, xm, _ := a.AsFloat64Slice()
	y, ym, _ := b.AsFloat64Slice()

	u := make([]float64, 0, len(rows))
	v := make([]float64, 0, len(rows))
	for _, i := range rows {
		if (xm != nil && xm[i]) || (ym != nil && ym[i]) {
			continue
		}
		u = append(u, x[i])
		v = append(v, y[i])
	}

	if len(u) < 2 {
		return math.NaN()
	}
	return stat.Correlation(u, v, nil)
}

func correlate(cols []*pxreader.Series, rows []int) *Matrix {

	n := len(cols)
	names := make([]string, n)
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		names[i] = cols[i].Name
		for j := 0; j <= i; j++ {
			sym.SetSym(i, j, pairCorr(cols[i], cols[j], rows))
		}
	}

	return &Matrix{Names: names, Corr: sym}
}

func allRows(n int) []int {
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return rows
}

// Correlate returns the correlation matrix of the numeric columns of
// data, using pairwise complete observations.
func Correlate(data []*pxreader.Series) (*Matrix, error) {

	cols := numericColumns(data, "")
	if len(cols) < 2 {
		return nil, ErrTooFewColumns
	}

	return correlate(cols, allRows(pxreader.SeriesArray(data).Rows())), nil
}

// Conditional returns, for each grouping column in turn and each of
// its distinct values, the correlation matrix of the numeric columns
// (other than the grouping column) over the rows holding that value.
// Rows where the grouping column is missing are not used.
func Conditional(data []*pxreader.Series, groupCols []string) ([]*Group, error) {

	table := pxreader.SeriesArray(data)

	var out []*Group
	for _, col := range groupCols {
		gs := table.Column(col)
		if gs == nil {
			return nil, fmt.Errorf("%w: %q", ErrNoColumn, col)
		}

		cols := numericColumns(data, col)
		if len(cols) < 2 {
			return nil, fmt.Errorf("grouping by %q: %w", col, ErrTooFewColumns)
		}

		for _, g := range groupRows(gs) {
			out = append(out, &Group{
				Column: col,
				Value:  g.text,
				Size:   len(g.rows),
				Matrix: correlate(cols, g.rows),
			})
		}
	}

	return out, nil
}
