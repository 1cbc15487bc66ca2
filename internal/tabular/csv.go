package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ReadCSV parses CSV content into a Table. The first record is taken
// as the header row.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv input is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	table := New(header)
	if err := readRecords(reader, table); err != nil {
		return nil, err
	}
	return table, nil
}

// ReadHeaderlessCSV parses CSV content that carries no header row,
// assigning the supplied column names positionally. The reference
// taxonomy exports use this layout.
func ReadHeaderlessCSV(r io.Reader, columns []string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	table := New(columns)
	if err := readRecords(reader, table); err != nil {
		return nil, err
	}
	return table, nil
}

// ReadCSVFile reads a CSV file from disk.
func ReadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadHeaderlessCSVFile reads a headerless CSV file from disk.
func ReadHeaderlessCSVFile(path string, columns []string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()
	return ReadHeaderlessCSV(f, columns)
}

// WriteCSV serializes a table as CSV, header row first.
func WriteCSV(w io.Writer, t *Table) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(t.Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, len(t.Columns))
	for i, row := range t.Rows {
		for j, col := range t.Columns {
			record[j] = row[col]
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteCSVFile writes a table to a CSV file on disk.
func WriteCSVFile(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()
	return WriteCSV(f, t)
}

func readRecords(reader *csv.Reader, table *Table) error {
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read csv row %d: %w", line, err)
		}
		line++

		row := make(Row, len(table.Columns))
		for i, col := range table.Columns {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		table.Append(row)
	}
}
