package transform

import "github.com/Conceptual-Machines/simfile-core/internal/notefield"

// Alphabet returns the set of distinct NoteObjects actually used across
// rows, which may be a strict subset of every NoteObject the format
// defines (e.g. a chart with no mines never uses MINE).
func Alphabet(rows []notefield.Row) map[notefield.NoteObject]struct{} {
	out := make(map[notefield.NoteObject]struct{})
	for _, r := range rows {
		for _, obj := range r.Lanes() {
			out[obj] = struct{}{}
		}
	}
	return out
}

// RowComplexity is |unique rows| / |alphabet|^width — the fraction of the
// theoretically possible row space a chart actually exercises (spec.md
// §4.H). An empty rows slice has complexity 0.
func RowComplexity(rows []notefield.Row) float64 {
	if len(rows) == 0 {
		return 0
	}
	width := rows[0].Width()
	alphabet := Alphabet(rows)

	unique := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		unique[r.String()] = struct{}{}
	}

	possible := 1.0
	for i := 0; i < width; i++ {
		possible *= float64(len(alphabet))
	}
	if possible == 0 {
		return 0
	}
	return float64(len(unique)) / possible
}
