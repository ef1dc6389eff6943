// Package report renders and writes the final analysis.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ShayCichocki/consilium/pkg/models"
)

// Format renders a validated analysis as human-readable text. It is a pure
// transform: entries are ordered primary-first (stable, ties keep input
// order) and each is tagged as the primary or a differential diagnosis.
func Format(fa *models.FinalAnalysis) string {
	entries := make([]models.DiagnosisEntry, len(fa.Entries))
	copy(entries, fa.Entries)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].IsPrimary && !entries[j].IsPrimary
	})

	var b strings.Builder
	b.WriteString("### Final Multidisciplinary Team Analysis ###\n\n")
	for _, entry := range entries {
		tag := "Differential Diagnosis"
		if entry.IsPrimary {
			tag = "Primary Diagnosis"
		}
		fmt.Fprintf(&b, "**%s: %s**\n", tag, entry.Diagnosis)
		fmt.Fprintf(&b, "   - **Rationale:** %s\n\n", entry.Rationale)
	}
	return b.String()
}
