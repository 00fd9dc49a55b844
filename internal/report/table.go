// Package report builds the console reports matome derives from an
// aggregated plan summary.
package report

// Alignment controls horizontal cell placement within a column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Table is a renderable report: a title, column headers, data rows, and
// an optional footer row that renderers set off from the data rows.
// Cells may span multiple lines; cell text may carry ANSI color codes.
type Table struct {
	Title      string
	Columns    []string
	Alignments []Alignment // per column; missing entries mean AlignLeft
	Rows       [][]string
	Footer     []string
}

// RowCount returns the number of data rows, the footer not included.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Alignment returns the alignment for column i.
func (t *Table) Alignment(i int) Alignment {
	if i < len(t.Alignments) {
		return t.Alignments[i]
	}
	return AlignLeft
}
