package notefield

import (
	"fmt"
	"strings"
)

// Row is a fixed-width, immutable sequence of lane contents (spec.md §3
// PureRow). All methods return fresh rows; a Row is value-equal to
// another when their lane contents match exactly.
type Row struct {
	lanes []NoteObject
}

// NewRow copies lanes into a fresh Row.
func NewRow(lanes []NoteObject) Row {
	cp := make([]NoteObject, len(lanes))
	copy(cp, lanes)
	return Row{lanes: cp}
}

// ParseRow builds a Row from one character per lane. Only the eight
// characters a simfile may legally contain are accepted; width is simply
// len(s), generalizing over the 4/6/8-lane cases spec.md §4.F requires.
func ParseRow(s string) (Row, error) {
	lanes := make([]NoteObject, len(s))
	for i := 0; i < len(s); i++ {
		obj, err := ParseNoteObject(s[i])
		if err != nil {
			return Row{}, fmt.Errorf("notefield: row %q: %w", s, err)
		}
		lanes[i] = obj
	}
	return Row{lanes: lanes}, nil
}

// Width is the lane count.
func (r Row) Width() int { return len(r.lanes) }

// At returns the lane content at index i.
func (r Row) At(i int) NoteObject { return r.lanes[i] }

// Lanes returns a defensive copy of the underlying lane slice.
func (r Row) Lanes() []NoteObject {
	cp := make([]NoteObject, len(r.lanes))
	copy(cp, r.lanes)
	return cp
}

// String renders the canonical one-character-per-lane export.
func (r Row) String() string {
	var b strings.Builder
	b.Grow(len(r.lanes))
	for _, obj := range r.lanes {
		b.WriteByte(obj.Code())
	}
	return b.String()
}

// Equal reports lane-wise equality.
func (r Row) Equal(other Row) bool {
	if len(r.lanes) != len(other.lanes) {
		return false
	}
	for i := range r.lanes {
		if r.lanes[i] != other.lanes[i] {
			return false
		}
	}
	return true
}

// IsEmpty reports whether every lane is EMPTY_LANE.
func (r Row) IsEmpty() bool {
	for _, obj := range r.lanes {
		if obj != EmptyLane {
			return false
		}
	}
	return true
}

// IsDecorative reports whether every lane's object is in DECORATIVE.
// EMPTY_LANE ∈ DECORATIVE, so an all-empty row is vacuously decorative.
func (r Row) IsDecorative() bool {
	for _, obj := range r.lanes {
		if !obj.IsDecorative() {
			return false
		}
	}
	return true
}

// IsJudgeNonImportant reports whether every lane's object is in
// JUDGE_NON_IMPORTANT (a row with no judge-important lane content).
func (r Row) IsJudgeNonImportant() bool {
	for _, obj := range r.lanes {
		if !obj.IsJudgeNonImportant() {
			return false
		}
	}
	return true
}

// IsPureHoldRollBody reports whether every non-empty lane is HOLD_BODY or
// ROLL_BODY.
func (r Row) IsPureHoldRollBody() bool {
	for _, obj := range r.lanes {
		if obj != EmptyLane && !obj.IsLongBody() {
			return false
		}
	}
	return true
}

// FindLanes returns the indices of lanes whose object is any of objs.
func (r Row) FindLanes(objs ...NoteObject) []int {
	want := make(map[NoteObject]struct{}, len(objs))
	for _, o := range objs {
		want[o] = struct{}{}
	}
	var found []int
	for i, obj := range r.lanes {
		if _, ok := want[obj]; ok {
			found = append(found, i)
		}
	}
	return found
}

// Mirror returns a fresh row with lane order reversed.
func (r Row) Mirror() Row {
	cp := make([]NoteObject, len(r.lanes))
	for i, obj := range r.lanes {
		cp[len(r.lanes)-1-i] = obj
	}
	return Row{lanes: cp}
}

// ReplaceObjects returns a fresh row where every lane whose object is one
// of from is replaced with to.
func (r Row) ReplaceObjects(from []NoteObject, to NoteObject) Row {
	set := make(map[NoteObject]struct{}, len(from))
	for _, o := range from {
		set[o] = struct{}{}
	}
	cp := make([]NoteObject, len(r.lanes))
	for i, obj := range r.lanes {
		if _, ok := set[obj]; ok {
			cp[i] = to
		} else {
			cp[i] = obj
		}
	}
	return Row{lanes: cp}
}

// SwitchLanes applies a lane index permutation: the result's lane i holds
// the source row's lane perm[i]. perm must be a permutation of
// [0, Width()); SwitchLanes panics otherwise, matching the library's
// value-type contract that malformed internal arguments are a bug, not
// recoverable input.
func (r Row) SwitchLanes(perm []int) Row {
	if len(perm) != len(r.lanes) {
		panic("notefield: permutation length does not match row width")
	}
	cp := make([]NoteObject, len(r.lanes))
	seen := make([]bool, len(r.lanes))
	for i, src := range perm {
		if src < 0 || src >= len(r.lanes) || seen[src] {
			panic("notefield: invalid lane permutation")
		}
		seen[src] = true
		cp[i] = r.lanes[src]
	}
	return Row{lanes: cp}
}

// PermutationGroup computes every lane ordering of r: for a W-lane row
// there are W! permutations, deduplicated by content while preserving
// insertion order (spec.md §4.B, §4.H). The returned slice always
// contains r itself (the identity permutation).
func (r Row) PermutationGroup() []Row {
	seen := make(map[string]struct{})
	var out []Row
	for _, perm := range AllLanePermutations(len(r.lanes)) {
		row := r.SwitchLanes(perm)
		key := row.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, row)
	}
	return out
}

// AllLanePermutations returns every permutation of [0, width), generated
// by recursive swapping, in deterministic generation order. Shared by Row's own
// PermutationGroup and transform.PermutationGroupOfSequence, which needs
// the same W! permutations applied across a whole row sequence rather
// than a single row.
func AllLanePermutations(width int) [][]int {
	indices := make([]int, width)
	for i := range indices {
		indices[i] = i
	}
	var out [][]int
	permute(indices, 0, func(perm []int) {
		cp := make([]int, len(perm))
		copy(cp, perm)
		out = append(out, cp)
	})
	return out
}

// permute generates permutations of indices[k:] by swapping each
// candidate into position k, recursing, and swapping back, invoking emit once per
// distinct permutation (in lexicographically-unordered but deterministic
// generation order).
func permute(indices []int, k int, emit func([]int)) {
	if k == len(indices) {
		cp := make([]int, len(indices))
		copy(cp, indices)
		emit(cp)
		return
	}
	for i := k; i < len(indices); i++ {
		indices[k], indices[i] = indices[i], indices[k]
		permute(indices, k+1, emit)
		indices[k], indices[i] = indices[i], indices[k]
	}
}
