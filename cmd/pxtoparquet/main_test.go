package main

import (
	"path/filepath"
	"testing"

	"github.com/kshedden/pxreader"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"
)

func TestSchema(t *testing.T) {

	md := schema([]string{"Region", "2019", "a,b"},
		[]pxreader.ColumnType{pxreader.StringType, pxreader.IntegerType, pxreader.FloatType})

	expected := []string{
		"name=Region, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL",
		"name=2019, type=INT64, repetitiontype=OPTIONAL",
		"name=a_b, type=DOUBLE, repetitiontype=OPTIONAL",
	}
	for j := range expected {
		if md[j] != expected[j] {
			t.Errorf("got %q, expected %q", md[j], expected[j])
		}
	}
}

func TestWriteParquet(t *testing.T) {

	rdr, err := pxreader.Open(filepath.Join("..", "..", "test_files", "data", "population.px"), []string{".."})
	if err != nil {
		t.Fatalf("%v", err)
	}

	outfile := filepath.Join(t.TempDir(), "population.parquet")
	if err := writeParquet(rdr, outfile); err != nil {
		t.Fatalf("writeParquet: %v", err)
	}

	fr, err := local.NewLocalFileReader(outfile)
	if err != nil {
		t.Fatalf("%v", err)
	}
	defer fr.Close()

	pr, err := reader.NewParquetColumnReader(fr, 1)
	if err != nil {
		t.Fatalf("can't create parquet reader: %v", err)
	}
	defer pr.ReadStop()

	if n := pr.GetNumRows(); n != 6 {
		t.Errorf("got %d rows", n)
	}

	vals, _, _, err := pr.ReadColumnByIndex(0, 6)
	if err != nil {
		t.Fatalf("ReadColumnByIndex: %v", err)
	}
	if len(vals) != 6 || vals[0] != "North" || vals[5] != "East" {
		t.Errorf("got Region column %v", vals)
	}
}
