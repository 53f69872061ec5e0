package report

import (
	"io"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Orders"

// WriteWorkbook serializes the export rows into a single-sheet xlsx
// workbook with ExportColumns as the header row.
func WriteWorkbook(w io.Writer, rows []ExportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err = f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	for col, header := range ExportColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err = f.SetCellValue(sheetName, cell, header); err != nil {
			return err
		}
	}

	for rowIdx, row := range rows {
		for col, value := range row.values() {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err = f.SetCellValue(sheetName, cell, value); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}
