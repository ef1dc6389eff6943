package synthesis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ShayCichocki/consilium/pkg/models"
)

// Shape failures reported by ParseResponse. Invariant failures (entry count,
// primary count) are reported separately by models.FinalAnalysis.Validate.
var (
	// ErrNoJSON indicates no JSON object was found in the response.
	ErrNoJSON = errors.New("no JSON object found in response")
	// ErrMalformedResponse indicates the JSON could not be decoded into the schema.
	ErrMalformedResponse = errors.New("malformed synthesis response")
	// ErrMissingField indicates a required field was absent.
	ErrMissingField = errors.New("missing required field")
	// ErrUnknownField indicates the response carried a field outside the schema.
	ErrUnknownField = errors.New("unknown field in response")
)

// diagnosisEntry mirrors models.DiagnosisEntry with pointer fields so that
// absent keys are distinguishable from zero values.
type diagnosisEntry struct {
	Diagnosis *string `json:"diagnosis"`
	Rationale *string `json:"rationale"`
	IsPrimary *bool   `json:"is_primary"`
}

// analysisResponse is the JSON structure the synthesis call must return.
type analysisResponse struct {
	Analysis *[]diagnosisEntry `json:"analysis"`
}

// ParseResponse extracts the JSON object from the raw model response and
// strictly decodes it into a FinalAnalysis. Missing, extra, or wrong-typed
// fields are hard failures; there is no best-effort acceptance. The returned
// analysis has not had its invariants validated yet.
func ParseResponse(response string) (*models.FinalAnalysis, error) {
	jsonStart := strings.Index(response, "{")
	jsonEnd := strings.LastIndex(response, "}")
	if jsonStart == -1 || jsonEnd == -1 || jsonEnd <= jsonStart {
		preview := response
		if len(preview) > 200 {
			preview = preview[:200] + "... (truncated)"
		}
		return nil, fmt.Errorf("%w (got %d chars): %q", ErrNoJSON, len(response), preview)
	}
	jsonStr := response[jsonStart : jsonEnd+1]

	dec := json.NewDecoder(strings.NewReader(jsonStr))
	dec.DisallowUnknownFields()

	var resp analysisResponse
	if err := dec.Decode(&resp); err != nil {
		if strings.Contains(err.Error(), "unknown field") {
			return nil, fmt.Errorf("%w: %v", ErrUnknownField, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if resp.Analysis == nil {
		return nil, fmt.Errorf("%w: analysis", ErrMissingField)
	}

	fa := &models.FinalAnalysis{
		Entries: make([]models.DiagnosisEntry, len(*resp.Analysis)),
	}
	for i, entry := range *resp.Analysis {
		if entry.Diagnosis == nil {
			return nil, fmt.Errorf("entry %d: %w: diagnosis", i, ErrMissingField)
		}
		if entry.Rationale == nil {
			return nil, fmt.Errorf("entry %d: %w: rationale", i, ErrMissingField)
		}
		if entry.IsPrimary == nil {
			return nil, fmt.Errorf("entry %d: %w: is_primary", i, ErrMissingField)
		}
		fa.Entries[i] = models.DiagnosisEntry{
			Diagnosis: *entry.Diagnosis,
			Rationale: *entry.Rationale,
			IsPrimary: *entry.IsPrimary,
		}
	}

	return fa, nil
}
