package report

import (
	"sort"
	"strings"

	"github.com/terassyi/matome/internal/summary"
)

// BuildChanges builds the per-action address listing. Rows are ordered
// lexicographically by action; the no-op group and empty groups are
// skipped. Addresses are sorted into a copy, colored per line when
// colorize is set, and joined with newlines into a single cell.
func BuildChanges(s summary.Summary, colorize bool) *Table {
	t := &Table{
		Title:   ChangesTitle,
		Columns: []string{colAction, colAddresses},
	}

	for _, action := range s.Actions() {
		if action == summary.ActionNoOp || len(s[action]) == 0 {
			continue
		}

		sorted := make([]string, len(s[action]))
		copy(sorted, s[action])
		sort.Strings(sorted)

		actionCell := string(action)
		if colorize {
			c := ActionColor(action)
			actionCell = c.Sprint(actionCell)
			for i, addr := range sorted {
				sorted[i] = c.Sprint(addr)
			}
		}

		t.Rows = append(t.Rows, []string{actionCell, strings.Join(sorted, "\n")})
	}

	return t
}
