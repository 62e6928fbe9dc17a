package tests

import (
	"bytes"
	"io"

	"github.com/xuri/excelize/v2"
)

func bytesReader(data []byte) io.Reader {
	return bytes.NewReader(data)
}

// appendRowsToSheet adds data rows under the header of a template spreadsheet
func appendRowsToSheet(template []byte, rows [][]string) ([]byte, error) {
	f, err := excelize.OpenReader(bytes.NewReader(template))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for rowIdx, row := range rows {
		for colIdx, v := range row {
			if v == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
