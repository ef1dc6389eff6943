package report

import (
	"strings"
	"testing"

	"github.com/ShayCichocki/consilium/pkg/models"
)

func analysisWithPrimaryLast() *models.FinalAnalysis {
	return &models.FinalAnalysis{
		Entries: []models.DiagnosisEntry{
			{Diagnosis: "SVT", Rationale: "Palpitations", IsPrimary: false},
			{Diagnosis: "Asthma", Rationale: "Dyspnea", IsPrimary: false},
			{Diagnosis: "Panic disorder", Rationale: "Anxiety history", IsPrimary: true},
		},
	}
}

func TestFormat_PrimaryFirst(t *testing.T) {
	out := Format(analysisWithPrimaryLast())

	if !strings.HasPrefix(out, "### Final Multidisciplinary Team Analysis ###") {
		t.Errorf("missing report header, got %q", out[:50])
	}

	primaryIdx := strings.Index(out, "**Primary Diagnosis: Panic disorder**")
	if primaryIdx == -1 {
		t.Fatal("missing primary diagnosis line")
	}
	firstDiff := strings.Index(out, "Differential Diagnosis:")
	if firstDiff == -1 {
		t.Fatal("missing differential diagnosis lines")
	}
	if firstDiff < primaryIdx {
		t.Error("primary must be ordered before differentials")
	}
}

func TestFormat_StableTieOrder(t *testing.T) {
	out := Format(analysisWithPrimaryLast())

	// The two differentials keep their input order after the stable sort.
	svtIdx := strings.Index(out, "Differential Diagnosis: SVT")
	asthmaIdx := strings.Index(out, "Differential Diagnosis: Asthma")
	if svtIdx == -1 || asthmaIdx == -1 {
		t.Fatalf("missing differential entries in output:\n%s", out)
	}
	if svtIdx > asthmaIdx {
		t.Error("differential order must preserve input order")
	}
}

func TestFormat_PureAndIdempotent(t *testing.T) {
	fa := analysisWithPrimaryLast()

	first := Format(fa)
	second := Format(fa)
	if first != second {
		t.Error("Format must be byte-identical across calls")
	}

	// Input order untouched: Format works on a copy.
	if !fa.Entries[2].IsPrimary {
		t.Error("Format must not mutate its input")
	}
}

func TestFormat_IncludesRationale(t *testing.T) {
	out := Format(analysisWithPrimaryLast())

	if !strings.Contains(out, "- **Rationale:** Anxiety history") {
		t.Errorf("missing rationale line in output:\n%s", out)
	}
}
