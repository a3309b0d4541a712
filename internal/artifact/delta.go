// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package artifact

import (
	"fmt"
	"strings"

	"github.com/SamirRachidZaim/scholar-metrics/pkg/types"
)

// FieldChange records one metric moving between two snapshots.
type FieldChange struct {
	Field string
	Old   int
	New   int
}

// Diff returns the per-field changes from old to new, in artifact field
// order. Unchanged fields are omitted.
func Diff(old, new types.Metrics) []FieldChange {
	var changes []FieldChange
	for _, f := range []struct {
		name     string
		old, new int
	}{
		{"citations", old.Citations, new.Citations},
		{"hindex", old.HIndex, new.HIndex},
		{"i10", old.I10, new.I10},
	} {
		if f.old != f.new {
			changes = append(changes, FieldChange{Field: f.name, Old: f.old, New: f.new})
		}
	}
	return changes
}

// FormatDiff renders changes as a one-line summary, e.g.
// "citations 204 -> 207 (+3), i10 9 -> 10 (+1)". An empty diff renders
// as "no changes".
func FormatDiff(changes []FieldChange) string {
	if len(changes) == 0 {
		return "no changes"
	}
	parts := make([]string, 0, len(changes))
	for _, c := range changes {
		parts = append(parts, fmt.Sprintf("%s %d -> %d (%+d)", c.Field, c.Old, c.New, c.New-c.Old))
	}
	return strings.Join(parts, ", ")
}
