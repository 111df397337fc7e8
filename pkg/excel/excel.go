package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet describes one worksheet to build: a header row, optional
// per-column widths and data rows.
type Sheet struct {
	Name    string
	Headers []string
	Widths  []float64
	Rows    [][]interface{}
}

// Build renders the sheets into a single workbook and returns the
// xlsx bytes.
func Build(sheets ...Sheet) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets to build")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		name := sheet.Name
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, err
			}
		}

		header := make([]interface{}, len(sheet.Headers))
		for j, h := range sheet.Headers {
			header[j] = h
		}
		if err := f.SetSheetRow(name, "A1", &header); err != nil {
			return nil, err
		}

		for j, w := range sheet.Widths {
			col, err := excelize.ColumnNumberToName(j + 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetColWidth(name, col, col, w); err != nil {
				return nil, err
			}
		}

		for j, row := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, j+2)
			if err != nil {
				return nil, err
			}
			r := row
			if err := f.SetSheetRow(name, cell, &r); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
