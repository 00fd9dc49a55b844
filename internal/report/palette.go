package report

import (
	"github.com/fatih/color"

	"github.com/terassyi/matome/internal/summary"
)

// actionColors is the fixed display palette for effective actions.
// Colors are force-enabled so builder output does not depend on TTY
// detection; callers opt in by building reports with colorize set.
var actionColors = map[summary.Action]*color.Color{
	summary.ActionCreate:  enabled(color.FgGreen),
	summary.ActionDelete:  enabled(color.FgRed),
	summary.ActionUpdate:  enabled(color.FgYellow),
	summary.ActionReplace: enabled(color.FgHiRed),
	summary.ActionNoOp:    enabled(color.FgCyan),
}

var (
	defaultColor = enabled(color.FgWhite)
	totalColor   = enabled(color.FgWhite, color.Bold)
)

// ActionColor returns the display color for an action. Actions outside
// the fixed palette (joined fallbacks, passthrough tokens, unknown) get
// the default color.
func ActionColor(a summary.Action) *color.Color {
	if c, ok := actionColors[a]; ok {
		return c
	}
	return defaultColor
}

// TotalColor returns the color for the statistics footer row.
func TotalColor() *color.Color {
	return totalColor
}

func enabled(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}
