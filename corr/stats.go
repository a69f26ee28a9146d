package corr

import (
	"math"

	"github.com/kshedden/pxreader"
	"gonum.org/v1/gonum/stat"
)

// PairStats summarizes the correlation of one pair of variables
// across the groups of a grouping column.
type PairStats struct {
	Var1 string
	Var2 string

	// The number of groups where the correlation is defined.
	N int

	Mean     float64
	Variance float64
	StdDev   float64
}

// GroupCount holds, for one group, the number of non-missing values
// in each column other than the grouping column.
type GroupCount struct {
	Value   string
	Columns []string
	Counts  []int
}

// A Summary describes how the correlations vary across the groups of
// one grouping column.
type Summary struct {
	Column string

	// Statistics for every ordered pair of numeric variables, row by
	// row of the correlation matrix.
	Pairs []PairStats

	Counts []GroupCount
}

// ConditionalStats computes, for each grouping column, the mean,
// sample variance and sample standard deviation of each correlation
// across the groups, ignoring groups where the correlation is not
// defined, together with the per-group counts of non-missing values.
func ConditionalStats(data []*pxreader.Series, groupCols []string) ([]*Summary, error) {

	groups, err := Conditional(data, groupCols)
	if err != nil {
		return nil, err
	}

	var out []*Summary
	for _, col := range groupCols {
		var gs []*Group
		for _, g := range groups {
			if g.Column == col {
				gs = append(gs, g)
			}
		}

		sm := &Summary{Column: col}
		if len(gs) > 0 {
			sm.Pairs = pairStats(gs)
		}
		sm.Counts = groupCounts(data, col)
		out = append(out, sm)
	}

	return out, nil
}

func pairStats(gs []*Group) []PairStats {

	names := gs[0].Matrix.Names
	var out []PairStats
	vals := make([]float64, 0, len(gs))
	for i := range names {
		for j := range names {
			vals = vals[:0]
			for _, g := range gs {
				if v := g.Matrix.At(i, j); !math.IsNaN(v) {
					vals = append(vals, v)
				}
			}

			ps := PairStats{Var1: names[i], Var2: names[j], N: len(vals)}
			switch len(vals) {
			case 0:
				ps.Mean, ps.Variance, ps.StdDev = math.NaN(), math.NaN(), math.NaN()
			case 1:
				ps.Mean, ps.Variance, ps.StdDev = vals[0], math.NaN(), math.NaN()
			default:
				ps.Mean, ps.Variance = stat.MeanVariance(vals, nil)
				ps.StdDev = math.Sqrt(ps.Variance)
			}
			out = append(out, ps)
		}
	}

	return out
}

func groupCounts(data []*pxreader.Series, col string) []GroupCount {

	table := pxreader.SeriesArray(data)

	var others []*pxreader.Series
	for _, s := range data {
		if s.Name != col {
			others = append(others, s)
		}
	}
	names := pxreader.SeriesArray(others).Names()

	var out []GroupCount
	for _, g := range groupRows(table.Column(col)) {
		gc := GroupCount{Value: g.text, Columns: names, Counts: make([]int, len(others))}
		for j, s := range others {
			for _, i := range g.rows {
				if !s.IsMissing(i) {
					gc.Counts[j]++
				}
			}
		}
		out = append(out, gc)
	}

	return out
}
