package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/terassyi/matome/internal/config"
	"github.com/terassyi/matome/internal/plan"
	"github.com/terassyi/matome/internal/render"
	"github.com/terassyi/matome/internal/report"
	"github.com/terassyi/matome/internal/summary"
)

// Wording matches terraform's own empty-plan output.
const (
	noChangesLead = "No changes."
	noChangesTail = " Your infrastructure matches the configuration."
)

func runSummarize(cmd *cobra.Command, _ []string) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(summarizeCfg.logLevel),
	})))

	cfg := loadSettings(summarizeCfg.configPath)
	colorize := cfg.Colorize(summarizeCfg.colorize, os.Stdout)
	showStats, showResources := selectReports(cfg, summarizeCfg.statistics, summarizeCfg.resources)

	p, err := plan.Load(summarizeCfg.path)
	if err != nil {
		return err
	}

	s := summary.Aggregate(p.ResourceChanges)
	writeReports(cmd.OutOrStdout(), s, colorize, showStats, showResources)
	return nil
}

// loadSettings resolves and loads the settings file. Settings never abort a
// run: failures degrade to the defaults with a warning.
func loadSettings(path string) *config.Config {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			slog.Warn("could not resolve the default settings path", "error", err)
			return config.DefaultConfig()
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		slog.Warn("falling back to default settings", "error", err)
	}
	return cfg
}

// selectReports decides which reports to print. Explicit flags win; with no
// flags the settings file decides, defaulting to both.
func selectReports(cfg *config.Config, statsFlag, resourcesFlag bool) (stats, resources bool) {
	if statsFlag || resourcesFlag {
		return statsFlag, resourcesFlag
	}
	return cfg.ShowStatistics(), cfg.ShowResources()
}

// writeReports renders the selected reports. The statistics table always
// prints when selected, even for an empty plan; the changes table prints
// only when it has rows. A resources-only run with nothing to show prints
// terraform's no-changes line instead.
func writeReports(w io.Writer, s summary.Summary, colorize, stats, resources bool) {
	if stats {
		render.Render(w, report.BuildStatistics(s, colorize))
	}
	if !resources {
		return
	}

	changes := report.BuildChanges(s, colorize)
	if changes.RowCount() > 0 {
		if stats {
			fmt.Fprintln(w)
		}
		render.Render(w, changes)
		return
	}
	if !stats {
		writeNoChanges(w, colorize)
	}
}

func writeNoChanges(w io.Writer, colorize bool) {
	lead := noChangesLead
	if colorize {
		green := color.New(color.FgGreen)
		green.EnableColor()
		lead = green.Sprint(lead)
	}
	fmt.Fprintln(w, lead+noChangesTail)
}

// parseLogLevel converts a string log level to slog.Level.
// Accepted values: "debug", "info", "warn", "error" (case-insensitive).
// Defaults to slog.LevelWarn for unrecognized values.
func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
