package pxreader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCSV1(t *testing.T) {

	file, err := os.Open(filepath.Join("test_files", "data", "flat.csv"))
	if err != nil {
		t.Fatalf("%v", err)
	}
	defer file.Close()

	rdr := NewCSVReader(file)
	data, err := rdr.Read(-1)
	if err != nil {
		t.Fatalf("%v", err)
	}

	expected := make([]*Series, 4)
	expected[0], _ = NewSeries("Region", []string{"North", "North", "South"}, nil)
	expected[1], _ = NewSeries("Sex", []string{"Male", "Female", "Male"}, nil)
	expected[2], _ = NewSeries("2019", []int64{10, 9, 20}, nil)
	expected[3], _ = NewSeries("2020", []float64{11.5, 0, 21}, []bool{false, true, false})

	if ok, j, i := SeriesArray(data).AllEqual(expected); !ok {
		t.Errorf("differ at column %d, row %d", j, i)
	}
	if SeriesArray(data).Names()[3] != "2020" {
		t.Errorf("got names %q", SeriesArray(data).Names())
	}
}

func TestCSV2(t *testing.T) {

	rdr := NewCSVReader(strings.NewReader("a,b,c\n1,2,3\n4,5,6\n7,8,9\n"))
	rdr.HasHeader = false
	data, err := rdr.Read(-1)
	if err != nil {
		t.Fatalf("%v", err)
	}

	expected := make([]*Series, 3)
	expected[0], _ = NewSeries("Column 1", []string{"a", "1", "4", "7"}, nil)
	expected[1], _ = NewSeries("Column 2", []string{"b", "2", "5", "8"}, nil)
	expected[2], _ = NewSeries("Column 3", []string{"c", "3", "6", "9"}, nil)

	if ok, j, i := SeriesArray(data).AllEqual(expected); !ok {
		t.Errorf("differ at column %d, row %d", j, i)
	}
}

func TestCSV3(t *testing.T) {

	rdr := NewCSVReader(strings.NewReader("a,b,c\n1,2,3\n4,5,6\n7,8,9\n"))
	rdr.HasHeader = false
	rdr.SkipRows = 2
	data, err := rdr.Read(1)
	if err != nil {
		t.Fatalf("%v", err)
	}

	expected := make([]*Series, 3)
	expected[0], _ = NewSeries("", []int64{4}, nil)
	expected[1], _ = NewSeries("", []int64{5}, nil)
	expected[2], _ = NewSeries("", []int64{6}, nil)

	if ok, j, i := SeriesArray(data).AllEqual(expected); !ok {
		t.Errorf("differ at column %d, row %d", j, i)
	}

	data, err = rdr.Read(1)
	if err != nil || data[0].Data().([]int64)[0] != 7 {
		t.Errorf("second chunk: %v %v", data, err)
	}
}

func TestCSV4(t *testing.T) {

	rdr := NewCSVReader(strings.NewReader("x;y\n1;2;3\n4\n"))
	rdr.Comma = ';'
	rdr.MissingValues = []string{".."}

	names := rdr.ColumnNames()
	if len(names) != 3 || names[2] != "Column 3" {
		t.Errorf("got names %q", names)
	}

	data, err := rdr.Read(-1)
	if err != nil {
		t.Fatalf("%v", err)
	}

	expected := make([]*Series, 3)
	expected[0], _ = NewSeries("x", []int64{1, 4}, nil)
	expected[1], _ = NewSeries("y", []int64{2, 0}, []bool{false, true})
	expected[2], _ = NewSeries("Column 3", []int64{3, 0}, []bool{false, true})

	if ok, j, i := SeriesArray(data).AllEqual(expected); !ok {
		t.Errorf("differ at column %d, row %d", j, i)
	}
}

func TestCSVEmpty(t *testing.T) {

	rdr := NewCSVReader(strings.NewReader(""))
	if _, err := rdr.Read(-1); err == nil {
		t.Errorf("expected an error for an empty file")
	}
	if rdr.ColumnNames() != nil {
		t.Errorf("expected no column names")
	}
}
