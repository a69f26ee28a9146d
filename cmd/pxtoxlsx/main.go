// pxtoxlsx converts a PC-AXIS (.px) file, or a CSV file holding a flat
// table, to an Excel workbook with one sheet.

package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/kshedden/pxreader"
)

// sheetName makes a valid Excel sheet name from a title: at most 31
// characters, none of which are in :\/?*[], not starting or ending
// with an apostrophe.
func sheetName(title string) string {

	r := strings.NewReplacer(":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", "(", "]", ")")
	title = strings.Join(strings.Fields(r.Replace(title)), " ")

	rs := []rune(title)
	if len(rs) > 31 {
		rs = rs[:31]
	}
	return strings.TrimFunc(string(rs), func(r rune) bool {
		return r == '\'' || unicode.IsSpace(r)
	})
}

func convert(infile, outfile, sheet string, missing []string) error {

	rdr, err := pxreader.Open(infile, missing)
	if err != nil {
		return err
	}

	data, err := pxreader.ReadAll(rdr)
	if err != nil {
		return err
	}

	if sheet == "" {
		if px, ok := rdr.(*pxreader.PXReader); ok {
			title, _ := px.Meta("TITLE")
			sheet = sheetName(title)
		}
	}

	out, err := os.Create(outfile)
	if err != nil {
		return err
	}

	if err := pxreader.WriteXLSX(out, data, sheet); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

func main() {

	log.SetFlags(0)
	log.SetPrefix("pxtoxlsx: ")

	infile := flag.String("in", "", "Path to the PC-AXIS or CSV file")
	outfile := flag.String("out", "", "Path of the xlsx file to write, defaults to the input name with a .xlsx extension")
	sheet := flag.String("sheet", "", "Name of the sheet, defaults to the TITLE of a PC-AXIS file")
	missing := flag.String("missing", "", "Comma separated list of values denoting missing cells")
	flag.Parse()

	if *infile == "" {
		io.WriteString(os.Stderr, "'in' is a required argument\n")
		os.Exit(1)
	}

	if *outfile == "" {
		*outfile = strings.TrimSuffix(*infile, filepath.Ext(*infile)) + ".xlsx"
	}

	var miss []string
	if *missing != "" {
		miss = strings.Split(*missing, ",")
	}

	if err := convert(*infile, *outfile, *sheet, miss); err != nil {
		log.Fatal(err)
	}
}
