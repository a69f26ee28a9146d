package corr

import (
	"errors"
	"math"
	"testing"

	"github.com/kshedden/pxreader"
)

func testData() []*pxreader.Series {

	data := make([]*pxreader.Series, 4)
	data[0], _ = pxreader.NewSeries("Region", []string{"B", "B", "B", "A", "A", "A", "A"}, nil)
	data[1], _ = pxreader.NewSeries("x", []float64{1, 2, 3, 1, 2, 3, 4}, nil)
	data[2], _ = pxreader.NewSeries("y", []int64{3, 2, 1, 2, 4, 6, 0},
		[]bool{false, false, false, false, false, false, true})
	data[3], _ = pxreader.NewSeries("Sex", []string{"M", "F", "M", "F", "M", "F", "M"}, nil)
	return data
}

func TestConditional(t *testing.T) {

	groups, err := Conditional(testData(), []string{"Region"})
	if err != nil {
		t.Fatalf("Conditional: %v", err)
	}

	if len(groups) != 2 {
		t.Fatalf("got %d groups", len(groups))
	}

	// Groups are sorted by value.
	a, b := groups[0], groups[1]
	if a.Value != "A" || b.Value != "B" || a.Size != 4 || b.Size != 3 {
		t.Errorf("got groups %s/%d and %s/%d", a.Value, a.Size, b.Value, b.Size)
	}

	if len(a.Matrix.Names) != 2 || a.Matrix.Names[0] != "x" || a.Matrix.Names[1] != "y" {
		t.Errorf("got names %q", a.Matrix.Names)
	}

	// The missing y value in group A is skipped.
	if math.Abs(a.Matrix.At(0, 1)-1) > 1e-12 {
		t.Errorf("got corr %v for group A", a.Matrix.At(0, 1))
	}
	if math.Abs(b.Matrix.At(1, 0)+1) > 1e-12 {
		t.Errorf("got corr %v for group B", b.Matrix.At(1, 0))
	}
	if math.Abs(a.Matrix.At(0, 0)-1) > 1e-12 {
		t.Errorf("got diagonal %v", a.Matrix.At(0, 0))
	}
}

func TestFlatten(t *testing.T) {

	data := testData()
	data[3], _ = pxreader.NewSeries("z", []int64{1, 1, 2, 3, 5, 8, 13}, nil)

	m, err := Correlate(data)
	if err != nil {
		t.Fatalf("Correlate: %v", err)
	}

	flat := m.Flatten()
	expected := [][2]string{{"y", "x"}, {"z", "x"}, {"z", "y"}}
	if len(flat) != len(expected) {
		t.Fatalf("got %d triples", len(flat))
	}
	for k, tr := range flat {
		if tr.Var1 != expected[k][0] || tr.Var2 != expected[k][1] {
			t.Errorf("triple %d: got (%s, %s)", k, tr.Var1, tr.Var2)
		}
		if tr.Value < -1 || tr.Value > 1 {
			t.Errorf("triple %d: correlation %v out of range", k, tr.Value)
		}
	}
}

func TestConditionalErrors(t *testing.T) {

	if _, err := Conditional(testData(), []string{"Age"}); !errors.Is(err, ErrNoColumn) {
		t.Errorf("got %v, expected ErrNoColumn", err)
	}

	// Grouping by x leaves only y to correlate.
	if _, err := Conditional(testData(), []string{"x"}); !errors.Is(err, ErrTooFewColumns) {
		t.Errorf("got %v, expected ErrTooFewColumns", err)
	}
}

func TestConditionalStats(t *testing.T) {

	sums, err := ConditionalStats(testData(), []string{"Region", "Sex"})
	if err != nil {
		t.Fatalf("ConditionalStats: %v", err)
	}
	if len(sums) != 2 || sums[0].Column != "Region" || sums[1].Column != "Sex" {
		t.Fatalf("got %d summaries", len(sums))
	}

	sm := sums[0]
	if len(sm.Pairs) != 4 {
		t.Fatalf("got %d pairs", len(sm.Pairs))
	}

	// Correlations of x and y are 1 and -1 in the two regions.
	p := sm.Pairs[1]
	if p.Var1 != "x" || p.Var2 != "y" || p.N != 2 {
		t.Errorf("got pair %+v", p)
	}
	if math.Abs(p.Mean) > 1e-12 || math.Abs(p.Variance-2) > 1e-12 || math.Abs(p.StdDev-math.Sqrt2) > 1e-12 {
		t.Errorf("got mean %v, variance %v, std %v", p.Mean, p.Variance, p.StdDev)
	}

	if len(sm.Counts) != 2 {
		t.Fatalf("got %d group counts", len(sm.Counts))
	}
	a := sm.Counts[0]
	if a.Value != "A" || len(a.Columns) != 3 || a.Columns[1] != "y" || a.Counts[0] != 4 || a.Counts[1] != 3 {
		t.Errorf("got counts %+v", a)
	}
}
