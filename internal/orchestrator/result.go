package orchestrator

import (
	"fmt"
	"sort"

	"github.com/ShayCichocki/consilium/pkg/models"
)

// Result is the settled outcome of one specialist task. Exactly one of
// Text or Err is meaningful. Results are never mutated after creation.
type Result struct {
	Role models.Role
	Text string
	Err  error
}

// Failed reports whether the task settled with an error.
func (r Result) Failed() bool {
	return r.Err != nil
}

// ResultSet maps each requested role to its settled result.
// It is frozen once the coordinator's join point returns.
type ResultSet map[models.Role]Result

// Complete reports whether every requested role has an entry.
func (rs ResultSet) Complete(roles []models.Role) bool {
	for _, role := range roles {
		if _, ok := rs[role]; !ok {
			return false
		}
	}
	return true
}

// Failed returns the roles whose tasks settled with an error, in stable order.
func (rs ResultSet) Failed() []models.Role {
	var failed []models.Role
	for role, res := range rs {
		if res.Failed() {
			failed = append(failed, role)
		}
	}
	sort.Slice(failed, func(i, j int) bool { return failed[i] < failed[j] })
	return failed
}

// Text returns the specialist text for a role, substituting the degraded
// placeholder for failed or missing entries so downstream stages are never
// starved of a mapping entry.
func (rs ResultSet) Text(role models.Role) string {
	res, ok := rs[role]
	if !ok {
		return fmt.Sprintf("SPECIALIST FAILED TO PRODUCE REPORT. REASON: no result recorded for %s", role.Title())
	}
	if res.Failed() {
		return fmt.Sprintf("SPECIALIST FAILED TO PRODUCE REPORT. REASON: %v", res.Err)
	}
	return res.Text
}
