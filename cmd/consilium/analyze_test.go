package main

import (
	"context"
	"errors"
	"testing"

	"github.com/ShayCichocki/consilium/internal/config"
)

// A missing credential must abort the run before the input file is read or
// any task is constructed: the input path here does not exist, and the error
// must still be the credential precondition, not a file error.
func TestRunAnalyze_MissingCredentialFailsFirst(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	analyzeCmd.SetContext(context.Background())
	err := runAnalyze(analyzeCmd, []string{"/nonexistent/report.txt"})

	if !errors.Is(err, config.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey before any file access, got %v", err)
	}
}

func TestRunAnalyze_MissingInputFile(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	analyzeCmd.SetContext(context.Background())
	err := runAnalyze(analyzeCmd, []string{"/nonexistent/report.txt"})

	if err == nil {
		t.Fatal("expected error for missing input file")
	}
	if errors.Is(err, config.ErrMissingAPIKey) {
		t.Fatal("credential precondition should have passed")
	}
}
