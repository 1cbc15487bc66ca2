package tabular

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadExcelFile reads the first sheet of an XLSX/XLS workbook into a
// Table. The first row is taken as the header row.
func ReadExcelFile(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	table := New(rows[0])
	for _, record := range rows[1:] {
		row := make(Row, len(table.Columns))
		for i, col := range table.Columns {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		table.Append(row)
	}

	return table, nil
}

// WriteExcelFile writes a table to an XLSX workbook with a single
// sheet named "Products".
func WriteExcelFile(path string, t *Table) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Products"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for j, col := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return fmt.Errorf("header cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return fmt.Errorf("write header cell %s: %w", cell, err)
		}
	}

	for i, row := range t.Rows {
		for j, col := range t.Columns {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, row[col]); err != nil {
				return fmt.Errorf("write cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// ReadFile reads a tabular file, dispatching on the extension.
func ReadFile(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSVFile(path)
	case ".xlsx", ".xls":
		return ReadExcelFile(path)
	default:
		return nil, fmt.Errorf("unsupported file extension %q", filepath.Ext(path))
	}
}

// WriteFile writes a tabular file, dispatching on the extension.
func WriteFile(path string, t *Table) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return WriteCSVFile(path, t)
	case ".xlsx":
		return WriteExcelFile(path, t)
	default:
		return fmt.Errorf("unsupported file extension %q", filepath.Ext(path))
	}
}
