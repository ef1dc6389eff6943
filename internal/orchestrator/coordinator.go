// Package orchestrator coordinates the parallel specialist fan-out.
package orchestrator

import (
	"context"
	"sync"

	"github.com/ShayCichocki/consilium/internal/runlog"
	"github.com/ShayCichocki/consilium/internal/specialist"
	"github.com/ShayCichocki/consilium/pkg/models"
)

// Coordinator runs a set of specialist tasks concurrently and collects
// every outcome. Tasks are causally independent: one failure never cancels
// or blocks a sibling, and the join point waits for all of them to settle.
type Coordinator struct {
	tasks []*specialist.Task
	log   *runlog.Logger
}

// New creates a Coordinator over the given tasks.
// A nil logger disables run logging.
func New(tasks []*specialist.Task, log *runlog.Logger) *Coordinator {
	if log == nil {
		log = runlog.Nop()
	}
	return &Coordinator{tasks: tasks, log: log}
}

// Roles returns the roles of the coordinated tasks in task order.
func (c *Coordinator) Roles() []models.Role {
	roles := make([]models.Role, len(c.tasks))
	for i, task := range c.tasks {
		roles[i] = task.Role()
	}
	return roles
}

// Run launches one worker per task against the shared report text and blocks
// until every task has settled. The returned ResultSet has exactly one entry
// per task: the generated text on success, the error on failure. Worker count
// equals task count; nothing here is specific to three roles.
func (c *Coordinator) Run(ctx context.Context, report string) ResultSet {
	c.log.Log("dispatching %d specialist tasks", len(c.tasks))

	results := make(ResultSet, len(c.tasks))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, task := range c.tasks {
		wg.Add(1)
		go func(task *specialist.Task) {
			defer wg.Done()

			text, err := task.Run(ctx, report)

			// One write per worker, each under its own key.
			mu.Lock()
			results[task.Role()] = Result{Role: task.Role(), Text: text, Err: err}
			mu.Unlock()

			if err != nil {
				c.log.Log("✗ %s task failed: %v", task.Role().Title(), err)
			} else {
				c.log.Log("✓ report received from %s", task.Role().Title())
			}
		}(task)
	}
	wg.Wait()

	return results
}
