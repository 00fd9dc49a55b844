// Package render draws report tables as bordered console output.
//
// The renderer is deliberately mechanical: it measures, pads, and frames
// whatever cell text it is given. Color is the table builder's concern;
// cells may carry ANSI escape sequences and widths are measured with
// lipgloss so colored and plain cells align in the same column.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/terassyi/matome/internal/report"
)

var border = lipgloss.NormalBorder()

// Render writes the table to w: a centered title line, a box-drawn frame
// with the header set off by a rule, one line per row (multi-line cells
// expand the row), and the footer set off by another rule. Write errors
// are ignored; a broken pipe on stdout is not actionable here.
func Render(w io.Writer, t *report.Table) {
	widths := columnWidths(t)

	var b strings.Builder

	writeTitle(&b, t.Title, tableWidth(widths))
	writeRule(&b, widths, border.TopLeft, border.MiddleTop, border.TopRight)
	writeRow(&b, t, t.Columns, widths)
	writeRule(&b, widths, border.MiddleLeft, border.Middle, border.MiddleRight)
	for _, row := range t.Rows {
		writeRow(&b, t, row, widths)
	}
	if len(t.Footer) > 0 {
		writeRule(&b, widths, border.MiddleLeft, border.Middle, border.MiddleRight)
		writeRow(&b, t, t.Footer, widths)
	}
	writeRule(&b, widths, border.BottomLeft, border.MiddleBottom, border.BottomRight)

	fmt.Fprint(w, b.String())
}

// columnWidths returns the visible width of each column: the widest of the
// header and every line of every cell, footer included.
func columnWidths(t *report.Table) []int {
	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = lipgloss.Width(col)
	}
	measure := func(row []string) {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			for _, line := range strings.Split(cell, "\n") {
				if w := lipgloss.Width(line); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	for _, row := range t.Rows {
		measure(row)
	}
	measure(t.Footer)
	return widths
}

// tableWidth is the full frame width: each column padded by one space on
// either side, plus the vertical border between and around the columns.
func tableWidth(widths []int) int {
	total := len(widths) + 1
	for _, w := range widths {
		total += w + 2
	}
	return total
}

func writeTitle(b *strings.Builder, title string, width int) {
	if title == "" {
		return
	}
	if pad := (width - lipgloss.Width(title)) / 2; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(title)
	b.WriteByte('\n')
}

func writeRule(b *strings.Builder, widths []int, left, junction, right string) {
	b.WriteString(left)
	for i, w := range widths {
		if i > 0 {
			b.WriteString(junction)
		}
		b.WriteString(strings.Repeat(border.Top, w+2))
	}
	b.WriteString(right)
	b.WriteByte('\n')
}

// writeRow emits one table row. A cell containing newlines spreads over as
// many lines as it has; the other cells pad with blanks below their text.
func writeRow(b *strings.Builder, t *report.Table, row []string, widths []int) {
	cells := make([][]string, len(widths))
	height := 1
	for i := range widths {
		var cell string
		if i < len(row) {
			cell = row[i]
		}
		cells[i] = strings.Split(cell, "\n")
		if len(cells[i]) > height {
			height = len(cells[i])
		}
	}

	for line := 0; line < height; line++ {
		b.WriteString(border.Left)
		for i, w := range widths {
			if i > 0 {
				b.WriteString(border.Left)
			}
			var s string
			if line < len(cells[i]) {
				s = cells[i][line]
			}
			b.WriteByte(' ')
			b.WriteString(pad(s, w, t.Alignment(i)))
			b.WriteByte(' ')
		}
		b.WriteString(border.Right)
		b.WriteByte('\n')
	}
}

// pad grows s to the column width with spaces, measuring ANSI-aware so a
// colored cell takes the same room as its plain counterpart.
func pad(s string, width int, align report.Alignment) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	filler := strings.Repeat(" ", gap)
	if align == report.AlignRight {
		return filler + s
	}
	return s + filler
}
