package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// TableRenderer is implemented by types that can render themselves as a table.
type TableRenderer interface {
	// Headers returns the column headers for the table.
	Headers() []string
	// Rows returns the data rows for the table.
	Rows() [][]string
}

// Column alignments understood by PrintTable.
const (
	AlignLeft  = tablewriter.ALIGN_LEFT
	AlignRight = tablewriter.ALIGN_RIGHT
)

// ColumnAligner is optionally implemented by a TableRenderer to align
// columns individually, e.g. offsets to the right.
type ColumnAligner interface {
	Alignments() []int
}

// PrintTable writes data as a borderless table. Cells are never wrapped so
// long hex values stay on one line.
func PrintTable(w io.Writer, data TableRenderer) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader(data.Headers())
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

	if aligner, ok := data.(ColumnAligner); ok {
		table.SetColumnAlignment(aligner.Alignments())
	} else {
		table.SetAlignment(tablewriter.ALIGN_LEFT)
	}

	table.AppendBulk(data.Rows())
	table.Render()
	return nil
}

// TableData is an ad-hoc TableRenderer.
type TableData struct {
	headers []string
	rows    [][]string
}

// NewTableData creates a new TableData with the given headers.
func NewTableData(headers ...string) *TableData {
	return &TableData{headers: headers, rows: make([][]string, 0)}
}

// AddRow adds a row to the table.
func (t *TableData) AddRow(row ...string) {
	t.rows = append(t.rows, row)
}

// Headers implements TableRenderer.
func (t *TableData) Headers() []string {
	return t.headers
}

// Rows implements TableRenderer.
func (t *TableData) Rows() [][]string {
	return t.rows
}
