package report

import (
	"strconv"

	"github.com/terassyi/matome/internal/summary"
)

// Column header and label constants shared by the report builders.
const (
	StatisticsTitle = "Action Statistics"
	ChangesTitle    = "Resource Changes"

	colAction    = "Action"
	colCount     = "Count"
	colAddresses = "Addresses"

	totalLabel = "Total"
)

// BuildStatistics builds the per-action count table. Rows are ordered
// lexicographically by action and empty groups are skipped. When
// anything was counted, a Total footer row closes the table.
func BuildStatistics(s summary.Summary, colorize bool) *Table {
	t := &Table{
		Title:      StatisticsTitle,
		Columns:    []string{colAction, colCount},
		Alignments: []Alignment{AlignLeft, AlignRight},
	}

	total := 0
	for _, action := range s.Actions() {
		count := len(s[action])
		if count == 0 {
			continue
		}
		total += count

		actionCell, countCell := string(action), strconv.Itoa(count)
		if colorize {
			c := ActionColor(action)
			actionCell = c.Sprint(actionCell)
			countCell = c.Sprint(countCell)
		}
		t.Rows = append(t.Rows, []string{actionCell, countCell})
	}

	if total > 0 {
		totalCell, countCell := totalLabel, strconv.Itoa(total)
		if colorize {
			totalCell = TotalColor().Sprint(totalCell)
			countCell = TotalColor().Sprint(countCell)
		}
		t.Footer = []string{totalCell, countCell}
	}

	return t
}
