package report

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terassyi/matome/internal/summary"
)

// paint returns s wrapped in the ANSI sequence for attrs, bypassing TTY
// detection the same way the palette does.
func paint(s string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}

func TestBuildStatistics(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		summary    summary.Summary
		wantRows   [][]string
		wantFooter []string
	}{
		{
			name: "counts per action with total",
			summary: summary.Summary{
				summary.ActionCreate: {"aws_instance.web"},
				summary.ActionDelete: {"aws_s3_bucket.a", "aws_s3_bucket.b"},
			},
			wantRows: [][]string{
				{"create", "1"},
				{"delete", "2"},
			},
			wantFooter: []string{"Total", "3"},
		},
		{
			name: "rows in lexicographic action order",
			summary: summary.Summary{
				summary.ActionUpdate:   {"a"},
				summary.Action("read"): {"b"},
				summary.ActionCreate:   {"c"},
				summary.ActionNoOp:     {"d"},
				summary.ActionReplace:  {"e"},
			},
			wantRows: [][]string{
				{"create", "1"},
				{"no-op", "1"},
				{"read", "1"},
				{"replace", "1"},
				{"update", "1"},
			},
			wantFooter: []string{"Total", "5"},
		},
		{
			name: "empty groups are skipped",
			summary: summary.Summary{
				summary.ActionCreate: {},
				summary.ActionDelete: {"aws_s3_bucket.old"},
			},
			wantRows: [][]string{
				{"delete", "1"},
			},
			wantFooter: []string{"Total", "1"},
		},
		{
			name:       "empty summary has no rows and no footer",
			summary:    summary.Summary{},
			wantRows:   nil,
			wantFooter: nil,
		},
		{
			name: "only empty groups has no footer",
			summary: summary.Summary{
				summary.ActionCreate: {},
			},
			wantRows:   nil,
			wantFooter: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := BuildStatistics(tt.summary, false)

			assert.Equal(t, StatisticsTitle, got.Title)
			assert.Equal(t, []string{"Action", "Count"}, got.Columns)
			assert.Equal(t, []Alignment{AlignLeft, AlignRight}, got.Alignments)
			assert.Equal(t, tt.wantRows, got.Rows)
			assert.Equal(t, tt.wantFooter, got.Footer)
		})
	}
}

func TestBuildStatistics_Colorized(t *testing.T) {
	t.Parallel()

	s := summary.Summary{
		summary.ActionCreate:   {"a"},
		summary.ActionDelete:   {"b"},
		summary.ActionUpdate:   {"c"},
		summary.ActionReplace:  {"d"},
		summary.ActionNoOp:     {"e"},
		summary.Action("read"): {"f"},
	}

	got := BuildStatistics(s, true)

	require.Len(t, got.Rows, 6)
	assert.Equal(t, []string{paint("create", color.FgGreen), paint("1", color.FgGreen)}, got.Rows[0])
	assert.Equal(t, []string{paint("delete", color.FgRed), paint("1", color.FgRed)}, got.Rows[1])
	assert.Equal(t, []string{paint("no-op", color.FgCyan), paint("1", color.FgCyan)}, got.Rows[2])
	// Actions outside the palette fall back to the default color.
	assert.Equal(t, []string{paint("read", color.FgWhite), paint("1", color.FgWhite)}, got.Rows[3])
	assert.Equal(t, []string{paint("replace", color.FgHiRed), paint("1", color.FgHiRed)}, got.Rows[4])
	assert.Equal(t, []string{paint("update", color.FgYellow), paint("1", color.FgYellow)}, got.Rows[5])

	assert.Equal(t, []string{paint("Total", color.FgWhite, color.Bold), paint("6", color.FgWhite, color.Bold)}, got.Footer)
}

func TestBuildStatistics_Idempotent(t *testing.T) {
	t.Parallel()

	s := summary.Summary{
		summary.ActionCreate: {"b", "a"},
		summary.ActionDelete: {"c"},
	}

	first := BuildStatistics(s, false)
	second := BuildStatistics(s, false)

	assert.Equal(t, first, second)
	// The input summary is never mutated.
	assert.Equal(t, summary.Summary{
		summary.ActionCreate: {"b", "a"},
		summary.ActionDelete: {"c"},
	}, s)
}
