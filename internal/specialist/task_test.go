package specialist

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ShayCichocki/consilium/pkg/models"
)

// fakeGenerator returns a canned response or error, optionally after a delay.
type fakeGenerator struct {
	response string
	err      error
	delay    time.Duration
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestTaskRun_Success(t *testing.T) {
	gen := &fakeGenerator{response: "Cardiac workup is unremarkable."}
	task := NewTask(models.RoleCardiologist, gen, 0)

	text, err := task.Run(context.Background(), "chest pain")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if text != "Cardiac workup is unremarkable." {
		t.Errorf("unexpected text %q", text)
	}
}

func TestTaskRun_EmptyReport(t *testing.T) {
	task := NewTask(models.RoleCardiologist, &fakeGenerator{response: "x"}, 0)

	_, err := task.Run(context.Background(), "   \n")
	if !errors.Is(err, ErrEmptyReport) {
		t.Errorf("expected ErrEmptyReport, got %v", err)
	}
}

func TestTaskRun_FailureCarriesRole(t *testing.T) {
	cause := errors.New("service unavailable")
	task := NewTask(models.RolePulmonologist, &fakeGenerator{err: cause}, 0)

	_, err := task.Run(context.Background(), "report")
	if err == nil {
		t.Fatal("expected error")
	}

	var roleErr *RoleError
	if !errors.As(err, &roleErr) {
		t.Fatalf("expected *RoleError, got %T", err)
	}
	if roleErr.Role != models.RolePulmonologist {
		t.Errorf("RoleError.Role = %q, want %q", roleErr.Role, models.RolePulmonologist)
	}
	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause to be preserved")
	}
	if !strings.Contains(err.Error(), "Pulmonologist") {
		t.Errorf("error message %q should name the role", err.Error())
	}
}

func TestTaskRun_Timeout(t *testing.T) {
	gen := &fakeGenerator{response: "too late", delay: 200 * time.Millisecond}
	task := NewTask(models.RolePsychologist, gen, 10*time.Millisecond)

	_, err := task.Run(context.Background(), "report")
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected DeadlineExceeded, got %v", err)
	}
}
