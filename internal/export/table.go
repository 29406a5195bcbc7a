package export

// Column projects one value of T into a cell
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Table is a header row plus data rows, ready for any writer
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// NewTable renders items through columns, preserving item order
func NewTable[T any](title string, columns []Column[T], items []T) Table {
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}

	rows := make([][]string, len(items))
	for i, item := range items {
		row := make([]string, len(columns))
		for j, col := range columns {
			row[j] = col.Value(item)
		}
		rows[i] = row
	}

	return Table{Title: title, Headers: headers, Rows: rows}
}
