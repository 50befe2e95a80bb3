package transform

import "github.com/Conceptual-Machines/simfile-core/internal/notefield"

// FilterEmptyRows drops every row for which Row.IsEmpty is true, preserving
// relative order.
func FilterEmptyRows[T rowCarrier[T]](rows []T) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if !r.RowValue().IsEmpty() {
			out = append(out, r)
		}
	}
	return out
}

// SuppressDecorative replaces every DECORATIVE lane (MINE, FAKE, and
// optionally LIFT) with EMPTY_LANE in place, without dropping the row
// itself — a decorative-only row becomes an empty one, which a caller can
// then remove with FilterEmptyRows if desired.
func SuppressDecorative[T rowCarrier[T]](rows []T, suppressLift bool) []T {
	from := []notefield.NoteObject{notefield.Mine, notefield.Fake}
	if suppressLift {
		from = append(from, notefield.Lift)
	}

	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = r.WithRow(r.RowValue().ReplaceObjects(from, notefield.EmptyLane))
	}
	return out
}
