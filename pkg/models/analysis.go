package models

import (
	"errors"
	"fmt"
)

// ExpectedDiagnoses is the number of entries a complete analysis carries:
// one primary diagnosis and two differentials.
const ExpectedDiagnoses = 3

// Invariant violations reported by FinalAnalysis.Validate.
var (
	// ErrDiagnosisCount indicates the analysis does not carry exactly three entries.
	ErrDiagnosisCount = errors.New("analysis must contain exactly 3 diagnoses")
	// ErrPrimaryCount indicates the number of primary-marked entries is not exactly one.
	ErrPrimaryCount = errors.New("analysis must mark exactly one primary diagnosis")
	// ErrEmptyDiagnosis indicates an entry with an empty diagnosis name.
	ErrEmptyDiagnosis = errors.New("diagnosis must not be empty")
	// ErrEmptyRationale indicates an entry with an empty rationale.
	ErrEmptyRationale = errors.New("rationale must not be empty")
)

// DiagnosisEntry is a single candidate diagnosis with its supporting rationale.
type DiagnosisEntry struct {
	Diagnosis string `json:"diagnosis"`
	Rationale string `json:"rationale"`
	IsPrimary bool   `json:"is_primary"`
}

// FinalAnalysis is the synthesized verdict of the specialist panel.
// It is constructed atomically from a single validated synthesis response
// and never partially built.
type FinalAnalysis struct {
	Entries []DiagnosisEntry `json:"analysis"`
}

// Validate checks the analysis invariants: exactly three entries, exactly one
// marked primary, and no empty diagnosis or rationale. It is deliberately
// separate from deserialization so shape failures and invariant failures are
// distinguishable to callers.
func (fa *FinalAnalysis) Validate() error {
	if len(fa.Entries) != ExpectedDiagnoses {
		return fmt.Errorf("%w: got %d", ErrDiagnosisCount, len(fa.Entries))
	}

	primaries := 0
	for i, entry := range fa.Entries {
		if entry.Diagnosis == "" {
			return fmt.Errorf("entry %d: %w", i, ErrEmptyDiagnosis)
		}
		if entry.Rationale == "" {
			return fmt.Errorf("entry %d: %w", i, ErrEmptyRationale)
		}
		if entry.IsPrimary {
			primaries++
		}
	}

	if primaries != 1 {
		return fmt.Errorf("%w: got %d", ErrPrimaryCount, primaries)
	}
	return nil
}

// Primary returns the primary-marked entry. Call Validate first; on an
// unvalidated analysis with no primary this returns false.
func (fa *FinalAnalysis) Primary() (DiagnosisEntry, bool) {
	for _, entry := range fa.Entries {
		if entry.IsPrimary {
			return entry, true
		}
	}
	return DiagnosisEntry{}, false
}
