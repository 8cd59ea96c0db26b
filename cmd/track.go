// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github-tracker/internal/config"
	"github-tracker/internal/gateway"
	"github-tracker/internal/report"
	"github-tracker/internal/usecase"
	"github-tracker/internal/visual"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Fetches, analyzes, visualizes, and saves GitHub contribution activity",
	Long: `Fetches the configured user's public activity events over the requested
window, computes summary statistics, renders a per-day bar chart, and writes
timestamped CSV and analysis files to the output directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// Get the verbose flag from the root command to set up the logger.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
		if verbose {
			logger.SetOutput(os.Stderr) // If verbose, log to standard error.
		}

		days, _ := cmd.Flags().GetInt("days")
		outputDir, _ := cmd.Flags().GetString("output-dir")
		chartPath, _ := cmd.Flags().GetString("chart")
		if chartPath == "" {
			chartPath = filepath.Join(outputDir, "contribution_graph.png")
		}

		// Credentials come from the environment (or a .env file); missing
		// variables abort before any request is made.
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		// Inject dependencies and run the pipeline.
		githubGateway, err := gateway.NewGitHubGateway(cfg.Token, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create GitHub gateway: %v\n", err)
			os.Exit(1)
		}
		tracker := usecase.NewTracker(
			githubGateway,
			visual.NewRenderer(logger),
			report.NewWriter(outputDir, logger),
			logger,
		)

		summary, err := tracker.Run(ctx, cfg.Username, days, chartPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to track contributions: %v\n", err)
			os.Exit(1)
		}

		// Print the final summary to standard output.
		fmt.Println("\nSummary:")
		for _, line := range report.SummaryLines(summary) {
			fmt.Println(line)
		}
	},
}

func init() {
	rootCmd.AddCommand(trackCmd)
	trackCmd.Flags().Int("days", 365, "Number of days of history to fetch")
	trackCmd.Flags().String("output-dir", "data", "Directory for CSV, analysis, and chart output")
	trackCmd.Flags().String("chart", "", "Chart image path (default: <output-dir>/contribution_graph.png)")
}
