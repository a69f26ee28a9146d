package pxreader

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes a flat table to w as an Excel workbook with a
// single sheet.  The first row holds the column names; missing values
// are left as empty cells.
func WriteXLSX(w io.Writer, data []*Series, sheet string) error {

	if sheet == "" {
		sheet = "Sheet1"
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	header := make([]interface{}, len(data))
	for j, s := range data {
		header[j] = s.Name
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	nrow := SeriesArray(data).Rows()
	row := make([]interface{}, len(data))
	for i := 0; i < nrow; i++ {
		for j, s := range data {
			row[j] = s.Value(i)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}
