package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// outputPrefix is prepended to the input filename to derive the report name.
const outputPrefix = "analysis_"

// OutputPath derives the report path for an input file: the input's basename
// with the fixed prefix, inside the output directory.
func OutputPath(outputDir, inputPath string) string {
	return filepath.Join(outputDir, outputPrefix+filepath.Base(inputPath))
}

// Write saves the formatted report next to the run log, creating the output
// directory if needed. Returns the written path.
func Write(outputDir, inputPath, text string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	outPath := OutputPath(outputDir, inputPath)
	if err := os.WriteFile(outPath, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return outPath, nil
}
