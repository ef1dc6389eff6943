// Package specialist runs single-role analysis calls against the model.
package specialist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ShayCichocki/consilium/pkg/models"
)

// ErrEmptyReport indicates the input report text was empty.
var ErrEmptyReport = errors.New("report text is empty")

// Generator is the remote text-generation capability a task depends on.
// *api.Client satisfies it; tests substitute fakes.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// RoleError wraps a failure with the role it belongs to, so the coordinator
// can attribute failures without parsing messages.
type RoleError struct {
	Role models.Role
	Err  error
}

func (e *RoleError) Error() string {
	return fmt.Sprintf("%s: %v", e.Role.Title(), e.Err)
}

func (e *RoleError) Unwrap() error {
	return e.Err
}

// Task wraps one (role, prompt template) pair over a shared generator.
type Task struct {
	role    models.Role
	gen     Generator
	timeout time.Duration
}

// NewTask creates a specialist task for the given role.
// A zero timeout disables the per-call deadline.
func NewTask(role models.Role, gen Generator, timeout time.Duration) *Task {
	return &Task{role: role, gen: gen, timeout: timeout}
}

// Role returns the task's role.
func (t *Task) Role() models.Role {
	return t.role
}

// Run renders the role prompt with the report text and performs one
// generation call. Failures are returned as *RoleError and never panic;
// sibling tasks are unaffected.
func (t *Task) Run(ctx context.Context, report string) (string, error) {
	if strings.TrimSpace(report) == "" {
		return "", &RoleError{Role: t.role, Err: ErrEmptyReport}
	}

	prompt, err := Prompt(t.role, report)
	if err != nil {
		return "", &RoleError{Role: t.role, Err: err}
	}

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	text, err := t.gen.Generate(ctx, prompt)
	if err != nil {
		return "", &RoleError{Role: t.role, Err: err}
	}
	return text, nil
}
