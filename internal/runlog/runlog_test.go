package runlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesTimestampedEntries(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "analysis.log")

	logger, err := New(logPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer logger.Close()

	logger.Log("report received from %s", "Cardiologist")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "Analysis run started") {
		t.Error("missing run header")
	}
	if !strings.Contains(content, "report received from Cardiologist") {
		t.Errorf("missing logged entry, got:\n%s", content)
	}
}

func TestForOutputDir(t *testing.T) {
	outDir := t.TempDir()

	logger, err := ForOutputDir(outDir)
	if err != nil {
		t.Fatalf("ForOutputDir failed: %v", err)
	}
	defer logger.Close()

	if got := logger.Path(); got != filepath.Join(outDir, "analysis.log") {
		t.Errorf("Path() = %q, want analysis.log in output dir", got)
	}
}

func TestNop(t *testing.T) {
	logger := Nop()

	// Must not panic and must not create files.
	logger.Log("ignored %d", 1)
	if logger.Path() != "" {
		t.Errorf("Nop logger should have empty path, got %q", logger.Path())
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close on nop logger: %v", err)
	}

	var nilLogger *Logger
	nilLogger.Log("also ignored")
	if err := nilLogger.Close(); err != nil {
		t.Errorf("Close on nil logger: %v", err)
	}
}
