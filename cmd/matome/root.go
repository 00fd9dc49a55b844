package main

import (
	"github.com/spf13/cobra"
)

// summarizeConfig holds flag values for the root command.
type summarizeConfig struct {
	path       string
	colorize   bool
	statistics bool
	resources  bool
	configPath string
	logLevel   string
}

var summarizeCfg summarizeConfig

var rootCmd = &cobra.Command{
	Use:   "matome",
	Short: "Summarize the resource changes in a Terraform plan",
	Long: `Matome summarizes the resource changes recorded in a Terraform plan.

Export the plan in JSON form first, then point matome at it:
  terraform plan -out=plan.tfplan
  terraform show -json plan.tfplan > plan.json
  matome --path plan.json

By default both reports are shown; --statistics and --resources narrow
the output to one of them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSummarize,
}

func init() {
	rootCmd.Flags().StringVarP(&summarizeCfg.path, "path", "p", "", "Path to the Terraform plan JSON file")
	rootCmd.Flags().BoolVarP(&summarizeCfg.colorize, "color", "c", false, "Colorize report output")
	rootCmd.Flags().BoolVarP(&summarizeCfg.statistics, "statistics", "s", false, "Show the action statistics report only")
	rootCmd.Flags().BoolVarP(&summarizeCfg.resources, "resources", "r", false, "Show the resource changes report only")
	rootCmd.Flags().StringVar(&summarizeCfg.configPath, "config", "", "Settings file (default: ~/.config/matome/config.yaml)")
	rootCmd.Flags().StringVar(&summarizeCfg.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	_ = rootCmd.MarkFlagRequired("path")

	rootCmd.AddCommand(
		versionCmd,
		completionCmd,
	)
}
