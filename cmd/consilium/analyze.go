package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/consilium/internal/api"
	"github.com/ShayCichocki/consilium/internal/config"
	"github.com/ShayCichocki/consilium/internal/orchestrator"
	"github.com/ShayCichocki/consilium/internal/report"
	"github.com/ShayCichocki/consilium/internal/runlog"
	"github.com/ShayCichocki/consilium/internal/specialist"
	"github.com/ShayCichocki/consilium/internal/synthesis"
	"github.com/ShayCichocki/consilium/pkg/models"
)

var (
	analyzeOutputDir string
	analyzeModel     string
	analyzeDegraded  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <report-file>",
	Short: "Run a multidisciplinary analysis on a medical report",
	Long: `Analyze a medical report with a panel of specialist LLM reviews.

The report is dispatched to the cardiologist, psychologist, and
pulmonologist specialists concurrently. Every specialist settles
independently: one failing never cancels the others. The collected
findings are then merged by a single synthesis call into a final
analysis of 3 diagnoses with exactly one marked primary.

By default the run aborts before synthesis if any specialist failed.
With --degraded, a placeholder noting the failure is passed to
synthesis in place of the missing report instead.

Output: one formatted report (analysis_<input-name>) and one run log
(analysis.log) in the output directory.

Examples:
  consilium analyze ./reports/patient-042.txt
  consilium analyze ./reports/patient-042.txt -o ./results --degraded`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOutputDir, "output", "o", "", "Directory for the report and run log (default ./results)")
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "", "Override the configured Claude model")
	analyzeCmd.Flags().BoolVar(&analyzeDegraded, "degraded", false, "Proceed to synthesis with placeholders for failed specialists")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	reportPath := args[0]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if analyzeOutputDir != "" {
		cfg.Output.Dir = analyzeOutputDir
	}
	if analyzeModel != "" {
		cfg.Anthropic.Model = analyzeModel
	}

	// Credential precondition: fail before any task or client exists.
	if err := cfg.Validate(); err != nil {
		return err
	}

	reportText, err := os.ReadFile(reportPath)
	if err != nil {
		return fmt.Errorf("read report %s: %w", reportPath, err)
	}

	log, err := runlog.ForOutputDir(cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer log.Close()

	runID := uuid.New().String()[:8]
	log.Log("run %s: loaded report %s (%d bytes)", runID, filepath.Base(reportPath), len(reportText))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			fmt.Println("\nReceived interrupt, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	client, err := api.NewClient(api.ClientConfig{
		Model:         anthropic.Model(cfg.Anthropic.Model),
		APIKey:        cfg.Anthropic.APIKey,
		UseAWSBedrock: cfg.AWS.UseBedrock,
		AWSRegion:     cfg.AWS.Region,
		AWSProfile:    cfg.AWS.Profile,
	})
	if err != nil {
		return fmt.Errorf("create API client: %w", err)
	}

	tasks := make([]*specialist.Task, 0, len(models.AllRoles()))
	for _, role := range models.AllRoles() {
		tasks = append(tasks, specialist.NewTask(role, client, cfg.Timeouts.Specialist))
	}

	fmt.Printf("Dispatching report to %d specialists...\n", len(tasks))
	coord := orchestrator.New(tasks, log)
	results := coord.Run(ctx, string(reportText))

	for _, role := range models.AllRoles() {
		res := results[role]
		if res.Failed() {
			color.Yellow("✗ %s failed: %v", role.Title(), res.Err)
		} else {
			color.Green("✓ %s report received", role.Title())
		}
	}

	if failed := results.Failed(); len(failed) > 0 && !analyzeDegraded {
		log.Log("run %s: aborting before synthesis, %d specialist(s) failed", runID, len(failed))
		return fmt.Errorf("specialist stage incomplete: %d of %d roles failed (rerun with --degraded to synthesize anyway)",
			len(failed), len(tasks))
	}

	fmt.Println("Running multidisciplinary synthesis...")
	log.Log("run %s: starting synthesis", runID)

	synth := synthesis.New(client, cfg.Timeouts.Synthesis)
	analysis, err := synth.Run(ctx,
		results.Text(models.RoleCardiologist),
		results.Text(models.RolePsychologist),
		results.Text(models.RolePulmonologist),
	)
	if err != nil {
		log.Log("run %s: synthesis failed: %v", runID, err)
		return fmt.Errorf("synthesis stage: %w", err)
	}

	outPath, err := report.Write(cfg.Output.Dir, reportPath, report.Format(analysis))
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	log.Log("run %s: report saved to %s", runID, outPath)

	input, output := client.Tracker().Total()
	color.Green("\nAnalysis complete!")
	fmt.Printf("  Report:  %s\n", outPath)
	fmt.Printf("  Run log: %s\n", log.Path())
	fmt.Printf("  Tokens:  %d in / %d out (~$%.4f)\n", input, output, client.Tracker().Cost())

	return nil
}
