// Package transform implements the notefield transform algebra (spec.md
// §4.H): hold/roll body synthesis, row filtering, mini-long-note
// collapse, row-sequence windows, permutation groups, and the density,
// uniformity, and complexity measures computed over a resolved chart.
package transform

import "github.com/Conceptual-Machines/simfile-core/internal/notefield"

// rowCarrier is satisfied by every enriched row type in internal/notefield
// (GlobalRow, GlobalTimedRow, GlobalDeltaRow): each wraps a PureRow and
// can be rebuilt with a different one. Transforms that only touch lane
// content — hold/roll synthesis, filtering, decorative suppression,
// permutation — are written once against this constraint instead of once
// per enriched row type, the same way the notefield types themselves
// compose rather than subclass (spec.md Design Notes §9).
type rowCarrier[T any] interface {
	RowValue() notefield.Row
	WithRow(notefield.Row) T
}

// ExtractRows discards every enrichment field, recovering the plain
// PureRow sequence underneath rows.
func ExtractRows[T rowCarrier[T]](rows []T) []notefield.Row {
	out := make([]notefield.Row, len(rows))
	for i, r := range rows {
		out[i] = r.RowValue()
	}
	return out
}
