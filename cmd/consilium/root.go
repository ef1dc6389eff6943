package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "consilium",
	Short: "Multidisciplinary medical report analysis",
	Long: `Consilium runs a panel of specialist LLM reviews over a medical report
and synthesizes them into a ranked differential diagnosis.

A report is dispatched to three specialists (cardiologist, psychologist,
pulmonologist) concurrently. Their findings are merged by a single
synthesis call whose output is validated against a fixed schema:
three diagnoses, exactly one marked primary.

Core capabilities:
- Parallel specialist fan-out with per-role failure isolation
- Schema-validated synthesis into a structured final analysis
- Formatted report and run log written per invocation`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
