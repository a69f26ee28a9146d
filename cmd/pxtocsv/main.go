package main

// Convert a PC-AXIS (.px) file, or a CSV file holding a flat table,
// to a flat CSV file.  The CSV contents are sent to standard output.
// The leading columns hold the dimension categories of each row, the
// remaining columns the cells for each heading category.

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/kshedden/pxreader"
)

func doConversion(rdr pxreader.StatfileReader, out io.Writer) error {

	w := csv.NewWriter(out)

	ncol := len(rdr.ColumnNames())
	if err := w.Write(rdr.ColumnNames()); err != nil {
		return err
	}

	row := make([]string, ncol)

	for {
		chunk, err := rdr.Read(1000)
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		for j := range chunk {
			chunk[j] = chunk[j].ToString()
		}

		nrow := chunk[0].Length()
		for i := 0; i < nrow; i++ {
			for j := 0; j < ncol; j++ {
				if chunk[j].IsMissing(i) {
					row[j] = ""
				} else {
					row[j] = chunk[j].Data().([]string)[i]
				}
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func main() {

	log.SetFlags(0)
	log.SetPrefix("pxtocsv: ")

	missing := flag.String("missing", "", "Comma separated list of values denoting missing cells, e.g. '..,...'")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-missing=list] filename\n", os.Args[0])
		os.Exit(2)
	}

	rdr, err := pxreader.Open(flag.Arg(0), splitList(*missing))
	if err != nil {
		log.Fatal(err)
	}

	if err := doConversion(rdr, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
