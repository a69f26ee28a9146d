package pxreader

import (
	"io"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestPXReader(t *testing.T) {

	rdr, err := ReadFile(filepath.Join("test_files", "data", "population.px"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	rdr.MissingValues = []string{"..", "..."}

	if title, ok := rdr.Meta("TITLE"); !ok || title != "Population by region, sex and year" {
		t.Errorf("got TITLE %q", title)
	}

	names := []string{"Region", "Sex", "2019", "2020", "2021"}
	if !reflect.DeepEqual(rdr.ColumnNames(), names) {
		t.Errorf("got column names %q", rdr.ColumnNames())
	}

	types := []ColumnType{StringType, StringType, FloatType, FloatType, FloatType}
	if !reflect.DeepEqual(rdr.ColumnTypes(), types) {
		t.Errorf("got column types %v", rdr.ColumnTypes())
	}

	if rdr.RowCount() != 6 {
		t.Errorf("got %d rows", rdr.RowCount())
	}

	// Read in chunks of 4 rows.
	var sizes []int
	var regions []string
	for {
		chunk, err := rdr.Read(4)
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("Read: %v", err)
		}
		if len(chunk) != len(names) {
			t.Fatalf("got %d columns", len(chunk))
		}
		sizes = append(sizes, chunk[0].Length())
		r, _, _ := chunk[0].AsStringSlice()
		regions = append(regions, r...)

		if chunk[0].Length() == 4 {
			v, miss, _ := chunk[4].AsFloat64Slice()
			if !miss[1] || v[2] != 22 {
				t.Errorf("unexpected first chunk of 2021: %v %v", v, miss)
			}
		}
	}

	if !reflect.DeepEqual(sizes, []int{4, 2}) {
		t.Errorf("got chunk sizes %v", sizes)
	}
	expected := []string{"North", "North", "South", "South", "East", "East"}
	if !reflect.DeepEqual(regions, expected) {
		t.Errorf("got regions %q", regions)
	}

	if _, err := rdr.Read(4); err != io.EOF {
		t.Errorf("got %v, expected io.EOF", err)
	}
}

func TestPXReaderReadAll(t *testing.T) {

	rdr, err := NewPXReader(strings.NewReader(readFixture(t, "scenario1.px")))
	if err != nil {
		t.Fatalf("NewPXReader: %v", err)
	}

	data, err := ReadAll(rdr)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if data.Rows() != 2 || len(data) != 3 {
		t.Errorf("got %d rows and %d columns", data.Rows(), len(data))
	}

	// Nothing remains, so the columns are empty.
	data, err = ReadAll(rdr)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if data.Rows() != 0 || len(data) != 3 || data[1].Type() != IntegerType {
		t.Errorf("got %d rows and %d columns", data.Rows(), len(data))
	}
}

func TestPXReaderError(t *testing.T) {

	_, err := ReadFile(filepath.Join("test_files", "data", "truncated.px"))
	if err == nil {
		t.Fatalf("expected an error")
	}

	if _, err := ReadFile(filepath.Join("test_files", "data", "nonexistent.px")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestOpen(t *testing.T) {

	for _, name := range []string{"population.px", "flat.csv"} {
		rdr, err := Open(filepath.Join("test_files", "data", name), nil)
		if err != nil {
			t.Errorf("Open(%s): %v", name, err)
			continue
		}
		if rdr.ColumnNames()[0] != "Region" {
			t.Errorf("Open(%s): got columns %q", name, rdr.ColumnNames())
		}
	}

	if _, err := Open("table.sas7bdat", nil); err == nil {
		t.Errorf("expected an error for an unknown extension")
	}
}
