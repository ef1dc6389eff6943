// Package synthesis merges the specialist outputs into one validated analysis.
package synthesis

import (
	"context"
	"fmt"
	"time"

	"github.com/ShayCichocki/consilium/internal/specialist"
	"github.com/ShayCichocki/consilium/pkg/models"
)

// Synthesizer performs the single downstream synthesis call over the
// collected specialist texts.
type Synthesizer struct {
	gen     specialist.Generator
	timeout time.Duration
}

// New creates a Synthesizer over the given generator.
// A zero timeout disables the per-call deadline.
func New(gen specialist.Generator, timeout time.Duration) *Synthesizer {
	return &Synthesizer{gen: gen, timeout: timeout}
}

// Run renders the synthesis prompt with the three specialist texts (real or
// degraded placeholders), performs one generation call, and parses and
// validates the response. The analysis is constructed atomically: either the
// full schema and its invariants hold, or an error is returned. No retry.
func (s *Synthesizer) Run(ctx context.Context, cardiologist, psychologist, pulmonologist string) (*models.FinalAnalysis, error) {
	prompt := fmt.Sprintf(synthesisPrompt, cardiologist, psychologist, pulmonologist)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	response, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("synthesis call: %w", err)
	}

	analysis, err := ParseResponse(response)
	if err != nil {
		return nil, fmt.Errorf("parse synthesis response: %w", err)
	}

	if err := analysis.Validate(); err != nil {
		return nil, fmt.Errorf("validate synthesis response: %w", err)
	}

	return analysis, nil
}
