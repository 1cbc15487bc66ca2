// Package tabular provides the in-memory table representation produced
// by the file parsers and consumed by the conversion pipeline.
package tabular

// Row maps a column name to its raw cell value. Missing and empty
// cells are both represented as the empty string.
type Row map[string]string

// Table is an ordered set of columns plus an ordered sequence of rows.
type Table struct {
	Columns []string
	Rows    []Row
}

// New returns an empty table with the given column order.
func New(columns []string) *Table {
	return &Table{Columns: columns}
}

// Append adds a row to the table.
func (t *Table) Append(row Row) {
	t.Rows = append(t.Rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
