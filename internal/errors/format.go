//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

import (
	"errors"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Formatter formats errors for CLI output.
type Formatter struct {
	NoColor bool
	Writer  io.Writer

	// Colors
	errorColor *color.Color
	codeColor  *color.Color
	pathColor  *color.Color
	hintColor  *color.Color
	dimColor   *color.Color
}

// NewFormatter creates a new Formatter.
func NewFormatter(w io.Writer, noColor bool) *Formatter {
	if noColor {
		color.NoColor = true
	}

	return &Formatter{
		NoColor:    noColor,
		Writer:     w,
		errorColor: color.New(color.FgRed, color.Bold),
		codeColor:  color.New(color.FgRed),
		pathColor:  color.New(color.FgCyan),
		hintColor:  color.New(color.FgGreen),
		dimColor:   color.New(color.FgHiBlack),
	}
}

// formatErrorHeader writes the error header with code.
// Format: "Error [E101]: message" or "Error: message" if no code.
func (f *Formatter) formatErrorHeader(sb *strings.Builder, code Code, message string) {
	sb.WriteString(f.errorColor.Sprint("Error"))
	if code != "" {
		sb.WriteString(" ")
		sb.WriteString(f.codeColor.Sprintf("[%s]", code))
	}
	sb.WriteString(f.errorColor.Sprint(": "))
	sb.WriteString(message)
	sb.WriteString("\n")
}

// Format formats an error for CLI display.
func (f *Formatter) Format(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	// Try to match specific error types
	var planErr *PlanError
	var configErr *ConfigError
	var baseErr *Error

	switch {
	case errors.As(err, &planErr):
		f.formatPlanError(&sb, planErr)
	case errors.As(err, &configErr):
		f.formatConfigError(&sb, configErr)
	case errors.As(err, &baseErr):
		f.formatBaseError(&sb, baseErr)
	default:
		// Fallback for non-matome errors
		sb.WriteString(f.errorColor.Sprint("Error: "))
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}

	return sb.String()
}

func (f *Formatter) formatPlanError(sb *strings.Builder, err *PlanError) {
	f.formatErrorHeader(sb, err.Base.Code, err.Base.Message)
	sb.WriteString("\n")

	if err.Path != "" {
		sb.WriteString("  ")
		sb.WriteString(f.dimColor.Sprint("File: "))
		sb.WriteString(f.pathColor.Sprint(err.Path))
		sb.WriteString("\n")
	}

	if err.Base.Cause != nil {
		sb.WriteString("\n  ")
		sb.WriteString(f.dimColor.Sprint("Cause: "))
		sb.WriteString(err.Base.Cause.Error())
		sb.WriteString("\n")
	}

	f.formatHint(sb, &err.Base)
}

func (f *Formatter) formatConfigError(sb *strings.Builder, err *ConfigError) {
	f.formatErrorHeader(sb, err.Base.Code, err.Base.Message)
	sb.WriteString("\n")

	if err.Path != "" {
		sb.WriteString("  ")
		sb.WriteString(f.dimColor.Sprint("File: "))
		sb.WriteString(f.pathColor.Sprint(err.Path))
		sb.WriteString("\n")
	}

	if err.Base.Cause != nil {
		sb.WriteString("\n  ")
		sb.WriteString(f.dimColor.Sprint("Cause: "))
		sb.WriteString(err.Base.Cause.Error())
		sb.WriteString("\n")
	}

	f.formatHint(sb, &err.Base)
}

func (f *Formatter) formatBaseError(sb *strings.Builder, err *Error) {
	f.formatErrorHeader(sb, err.Code, err.Message)

	if err.Cause != nil {
		sb.WriteString("\n  ")
		sb.WriteString(f.dimColor.Sprint("Cause: "))
		sb.WriteString(err.Cause.Error())
		sb.WriteString("\n")
	}

	f.formatHint(sb, err)
}

func (f *Formatter) formatHint(sb *strings.Builder, err *Error) {
	if err.Hint == "" {
		return
	}

	sb.WriteString("\n")
	sb.WriteString(f.hintColor.Sprint("Hint: "))
	// Handle multi-line hints
	lines := strings.Split(err.Hint, "\n")
	sb.WriteString(lines[0])
	sb.WriteString("\n")
	for _, line := range lines[1:] {
		sb.WriteString("      ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}
