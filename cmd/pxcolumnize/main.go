package main

// pxcolumnize takes a PC-AXIS (.px) file, or a CSV file holding a flat
// table, and saves the data from each column into a separate file.
// Text data is stored in raw format, with values separated by newline
// characters.  Numeric data can be stored either in text or binary
// format; in binary format every value is a little-endian float64 and
// missing values are NaN.  A text file containing the column names is
// also generated.

import (
	"bufio"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/kshedden/pxreader"
)

// closeAll closes every file and returns the first error.
func closeAll(files []io.Closer) error {
	var first error
	for _, f := range files {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func doSplit(rdr pxreader.StatfileReader, colDir string, mode string) (err error) {

	names := rdr.ColumnNames()

	var files []io.Closer
	defer func() {
		if err != nil {
			closeAll(files)
		}
	}()

	cf, err := os.Create(filepath.Join(colDir, "columns.txt"))
	if err != nil {
		return fmt.Errorf("unable to create file in %s: %w", colDir, err)
	}
	files = append(files, cf)
	for i, c := range names {
		if _, err := fmt.Fprintf(cf, "%d,%s\n", i+1, c); err != nil {
			return err
		}
	}

	columns := make([]*bufio.Writer, len(names))
	for j := range names {
		f, err := os.Create(filepath.Join(colDir, fmt.Sprintf("%d", j)))
		if err != nil {
			return fmt.Errorf("unable to create file for column %d: %w", j+1, err)
		}
		files = append(files, f)
		columns[j] = bufio.NewWriter(f)
	}

	for {
		chunk, err := rdr.Read(10000)
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		for j, s := range chunk {
			if err := writeColumn(columns[j], s.UpcastNumeric(), mode); err != nil {
				return err
			}
		}
	}

	for _, w := range columns {
		if err := w.Flush(); err != nil {
			return err
		}
	}

	toClose := files
	files = nil
	return closeAll(toClose)
}

func writeColumn(w io.Writer, s *pxreader.Series, mode string) error {

	switch ds := s.Data().(type) {
	case []float64:
		for i, x := range ds {
			if s.IsMissing(i) {
				x = math.NaN()
			}
			var err error
			if mode == "binary" {
				err = binary.Write(w, binary.LittleEndian, x)
			} else if s.IsMissing(i) {
				_, err = io.WriteString(w, "\n")
			} else {
				_, err = fmt.Fprintf(w, "%v\n", x)
			}
			if err != nil {
				return err
			}
		}
	case []string:
		for _, x := range ds {
			if _, err := io.WriteString(w, x+"\n"); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown type: %T", ds)
	}

	return nil
}

func main() {

	log.SetFlags(0)
	log.SetPrefix("pxcolumnize: ")

	infile := flag.String("in", "", "A PC-AXIS or CSV file name")
	colDir := flag.String("out", "", "A directory for writing the columns")
	mode := flag.String("mode", "text", "Write numeric data as 'text' or 'binary'")
	missing := flag.String("missing", "", "Comma separated list of values denoting missing cells")
	flag.Parse()

	if *infile == "" || *colDir == "" {
		fmt.Fprintf(os.Stderr, "usage: %s -in=file -out=directory -mode=mode\n", os.Args[0])
		os.Exit(2)
	}

	if (*mode != "text") && (*mode != "binary") {
		log.Fatal("mode must be either 'text' or 'binary'")
	}

	var miss []string
	if *missing != "" {
		miss = strings.Split(*missing, ",")
	}

	rdr, err := pxreader.Open(*infile, miss)
	if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(*colDir, 0755); err != nil {
		log.Fatal(err)
	}

	if err := doSplit(rdr, *colDir, *mode); err != nil {
		log.Fatal(err)
	}
}
