package export

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

var ErrSheetNotFound = errors.New("export: worksheet not found")

const (
	minColumnWidth = 10
	maxColumnWidth = 60
)

// WriteExcel writes t to a single-sheet workbook named after its title
func WriteExcel(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := t.Title
	if sheet == "" {
		sheet = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	if err := writeRow(f, sheet, 1, t.Headers); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if len(t.Headers) > 0 {
		bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(len(t.Headers), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
			return err
		}
		if err := fitColumns(f, sheet, t); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return f.SetSheetRow(sheet, cell, &row)
}

func fitColumns(f *excelize.File, sheet string, t Table) error {
	for col := range t.Headers {
		width := utf8.RuneCountInString(t.Headers[col])
		for _, row := range t.Rows {
			if col < len(row) {
				width = max(width, utf8.RuneCountInString(row[col]))
			}
		}
		width = min(max(width+2, minColumnWidth), maxColumnWidth)

		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, float64(width)); err != nil {
			return err
		}
	}
	return nil
}

// ReadColumn returns the non-blank values of the first column of sheet, skipping headerRows
func ReadColumn(r io.Reader, sheet string, headerRows int) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	found := false
	for _, name := range f.GetSheetList() {
		if name == sheet {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrSheetNotFound
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	var values []string
	for i, row := range rows {
		if i < headerRows || len(row) == 0 {
			continue
		}
		if v := strings.TrimSpace(row[0]); v != "" {
			values = append(values, v)
		}
	}
	return values, nil
}
