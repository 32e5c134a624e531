package helper

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SheetColumn maps a spreadsheet header onto a document field.
type SheetColumn struct {
	Header   string
	Field    string
	DataType string
}

// SheetRow is one parsed data row; Line is the 1-based spreadsheet row number.
type SheetRow struct {
	Line   int
	Values map[string]interface{}
	Errors []string
}

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReadSheet parses the first sheet of an xlsx workbook. Headers are matched case-insensitively
// against columns; unknown headers are ignored and blank rows skipped.
func ReadSheet(r io.Reader, columns []SheetColumn) ([]SheetRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, fmt.Errorf("no sheets found in the workbook")
	}
	rows, err := f.GetRows(sheetList[0])
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("no data found in sheet %s", sheetList[0])
	}

	byHeader := make(map[string]SheetColumn, len(columns))
	for _, col := range columns {
		byHeader[strings.ToLower(strings.TrimSpace(col.Header))] = col
	}
	headers := make([]*SheetColumn, len(rows[0]))
	for i, h := range rows[0] {
		if col, ok := byHeader[strings.ToLower(strings.TrimSpace(h))]; ok {
			c := col
			headers[i] = &c
		}
	}

	var result []SheetRow
	for idx, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		parsed := SheetRow{Line: idx + 2, Values: map[string]interface{}{}}
		for i, cell := range row {
			if i >= len(headers) || headers[i] == nil || strings.TrimSpace(cell) == "" {
				continue
			}
			v, err := ConvertToDataType(headers[i].DataType, cell)
			if err != nil {
				parsed.Errors = append(parsed.Errors, fmt.Sprintf("%s: invalid %s %q", headers[i].Header, headers[i].DataType, cell))
				continue
			}
			parsed.Values[headers[i].Field] = v
		}
		result = append(result, parsed)
	}
	return result, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// WriteSheet renders a single-sheet workbook with a header row.
func WriteSheet(sheet string, headers []string, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return nil, err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return nil, err
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
