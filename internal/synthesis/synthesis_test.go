package synthesis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ShayCichocki/consilium/pkg/models"
)

type fakeGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

const goodResponse = `{
	"analysis": [
		{"diagnosis": "Panic disorder", "rationale": "Anxiety history with clean workups", "is_primary": true},
		{"diagnosis": "SVT", "rationale": "Transient palpitations", "is_primary": false},
		{"diagnosis": "Asthma", "rationale": "Intermittent dyspnea", "is_primary": false}
	]
}`

func TestRun_Success(t *testing.T) {
	gen := &fakeGenerator{response: goodResponse}
	synth := New(gen, 0)

	fa, err := synth.Run(context.Background(), "cardiac text", "psych text", "pulmo text")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(fa.Entries) != models.ExpectedDiagnoses {
		t.Errorf("expected %d entries, got %d", models.ExpectedDiagnoses, len(fa.Entries))
	}
	primary, ok := fa.Primary()
	if !ok || primary.Diagnosis != "Panic disorder" {
		t.Errorf("unexpected primary: %+v (ok=%v)", primary, ok)
	}

	// All three specialist texts must appear in the rendered prompt.
	for _, text := range []string{"cardiac text", "psych text", "pulmo text"} {
		if !strings.Contains(gen.lastPrompt, text) {
			t.Errorf("synthesis prompt missing %q", text)
		}
	}
}

func TestRun_RemoteFailure(t *testing.T) {
	cause := errors.New("connection reset")
	synth := New(&fakeGenerator{err: cause}, 0)

	_, err := synth.Run(context.Background(), "a", "b", "c")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected wrapped remote error, got %v", err)
	}
	if !strings.Contains(err.Error(), "synthesis call") {
		t.Errorf("error %q should name the failing stage", err.Error())
	}
}

func TestRun_ParseFailureDistinctFromValidation(t *testing.T) {
	// Shape failure: no JSON at all.
	synth := New(&fakeGenerator{response: "no structured output"}, 0)
	_, err := synth.Run(context.Background(), "a", "b", "c")
	if !errors.Is(err, ErrNoJSON) {
		t.Errorf("expected ErrNoJSON, got %v", err)
	}

	// Invariant failure: well-shaped but two primaries.
	twoPrimaries := `{
		"analysis": [
			{"diagnosis": "A", "rationale": "r1", "is_primary": true},
			{"diagnosis": "B", "rationale": "r2", "is_primary": true},
			{"diagnosis": "C", "rationale": "r3", "is_primary": false}
		]
	}`
	synth = New(&fakeGenerator{response: twoPrimaries}, 0)
	_, err = synth.Run(context.Background(), "a", "b", "c")
	if !errors.Is(err, models.ErrPrimaryCount) {
		t.Errorf("expected ErrPrimaryCount, got %v", err)
	}
}

func TestRun_RejectsWrongEntryCount(t *testing.T) {
	twoEntries := `{
		"analysis": [
			{"diagnosis": "A", "rationale": "r1", "is_primary": true},
			{"diagnosis": "B", "rationale": "r2", "is_primary": false}
		]
	}`
	synth := New(&fakeGenerator{response: twoEntries}, 0)

	_, err := synth.Run(context.Background(), "a", "b", "c")
	if !errors.Is(err, models.ErrDiagnosisCount) {
		t.Errorf("expected ErrDiagnosisCount, got %v", err)
	}
}
