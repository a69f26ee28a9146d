// pxtoparquet converts a PC-AXIS (.px) file, or a CSV file holding a
// flat table, to a parquet file.  Integer columns are stored as INT64,
// decimal columns as DOUBLE and text columns as UTF8 byte arrays.  All
// columns are optional so that missing cells are preserved.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/kshedden/pxreader"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

// parquetName removes the characters that cannot appear in a parquet
// schema tag.
func parquetName(name string) string {
	r := strings.NewReplacer(",", "_", "=", "_", "\n", " ")
	return r.Replace(name)
}

// schema returns the CSV writer metadata for the given columns.
func schema(names []string, types []pxreader.ColumnType) []string {

	md := make([]string, len(names))
	for j, name := range names {
		var ty string
		switch types[j] {
		case pxreader.IntegerType:
			ty = "type=INT64"
		case pxreader.FloatType:
			ty = "type=DOUBLE"
		default:
			ty = "type=BYTE_ARRAY, convertedtype=UTF8"
		}
		md[j] = fmt.Sprintf("name=%s, %s, repetitiontype=OPTIONAL", parquetName(name), ty)
	}

	return md
}

func writeParquet(rdr pxreader.StatfileReader, outfile string) error {

	fw, err := local.NewLocalFileWriter(outfile)
	if err != nil {
		return fmt.Errorf("can't create local file: %w", err)
	}
	defer fw.Close()

	names := rdr.ColumnNames()
	pw, err := writer.NewCSVWriter(schema(names, rdr.ColumnTypes()), fw, 4)
	if err != nil {
		return fmt.Errorf("can't create parquet writer: %w", err)
	}

	pw.RowGroupSize = 128 * 1024 * 1024 //128M
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	rec := make([]interface{}, len(names))
	ntot := 0
	for {
		chunk, err := rdr.Read(1024 * 1024)
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		nrow := chunk[0].Length()
		for i := 0; i < nrow; i++ {
			for j := range chunk {
				rec[j] = chunk[j].Value(i)
			}
			if err := pw.Write(rec); err != nil {
				return fmt.Errorf("write error: %w", err)
			}
		}
		ntot += nrow
	}

	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("WriteStop error: %w", err)
	}
	log.Printf("wrote %d records to %s", ntot, outfile)

	return nil
}

func main() {

	log.SetFlags(0)
	log.SetPrefix("pxtoparquet: ")

	infile := flag.String("in", "", "Path to the PC-AXIS or CSV file")
	outfile := flag.String("out", "", "Path of the parquet file to write, defaults to the input name with a .parquet extension")
	missing := flag.String("missing", "", "Comma separated list of values denoting missing cells")
	flag.Parse()

	if *infile == "" {
		io.WriteString(os.Stderr, "'in' is a required argument\n")
		os.Exit(1)
	}

	if *outfile == "" {
		e := filepath.Ext(*infile)
		*outfile = strings.TrimSuffix(*infile, e) + ".parquet"
	}

	var miss []string
	if *missing != "" {
		miss = strings.Split(*missing, ",")
	}

	rdr, err := pxreader.Open(*infile, miss)
	if err != nil {
		log.Fatal(err)
	}

	if err := writeParquet(rdr, *outfile); err != nil {
		log.Fatal(err)
	}
}
