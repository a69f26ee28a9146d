package pxreader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// A StatfileReader reads a data set as an array of Series, in chunks
// of consecutive rows.
type StatfileReader interface {
	ColumnNames() []string
	ColumnTypes() []ColumnType
	Read(int) ([]*Series, error)
}

// Open returns a reader for the named file, a PC-AXIS reader for
// files ending in .px and a CSV reader for files ending in .csv.  The
// file is read completely and closed before Open returns.  Cells equal
// to one of the missing values are treated as missing.
func Open(fname string, missing []string) (StatfileReader, error) {

	switch strings.ToLower(filepath.Ext(fname)) {
	case ".px":
		rdr, err := ReadFile(fname)
		if err != nil {
			return nil, err
		}
		rdr.MissingValues = missing
		return rdr, nil
	case ".csv":
		f, err := os.Open(fname)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		rdr := NewCSVReader(f)
		rdr.MissingValues = missing
		if err := rdr.ensureInit(); err != nil {
			return nil, err
		}
		return rdr, nil
	default:
		return nil, fmt.Errorf("%s file cannot be read", fname)
	}
}

// ReadAll returns all of the remaining rows of rdr as one array of
// Series.
func ReadAll(rdr StatfileReader) (SeriesArray, error) {

	data, err := rdr.Read(-1)
	if err == io.EOF {
		// No rows remain, return empty columns.
		return emptyColumns(rdr), nil
	} else if err != nil {
		return nil, err
	}

	return data, nil
}

func emptyColumns(rdr StatfileReader) SeriesArray {

	names := rdr.ColumnNames()
	types := rdr.ColumnTypes()
	data := make(SeriesArray, len(names))
	for j, name := range names {
		switch types[j] {
		case IntegerType:
			data[j], _ = NewSeries(name, []int64{}, nil)
		case FloatType:
			data[j], _ = NewSeries(name, []float64{}, nil)
		default:
			data[j], _ = NewSeries(name, []string{}, nil)
		}
	}
	return data
}
