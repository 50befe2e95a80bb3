package transform

import "github.com/Conceptual-Machines/simfile-core/internal/notefield"

// SynthesizeHoldRollBodies fills the lanes between a HOLD_START/ROLL_START
// and its matching HOLD_ROLL_END with HOLD_BODY/ROLL_BODY (spec.md §4.H).
// The walk is a single left-to-right pass tracking which lanes currently
// hold an open hold or roll, generalizing the grid-walk idiom the teacher
// uses to count drum hits one character at a time. Applying this twice in
// a row is a no-op: a lane already carrying HOLD_BODY/ROLL_BODY is never
// EMPTY_LANE, so the body-fill branch never refires on it.
func SynthesizeHoldRollBodies[T rowCarrier[T]](rows []T) []T {
	activeHolds := make(map[int]struct{})
	activeRolls := make(map[int]struct{})

	out := make([]T, len(rows))
	for i, r := range rows {
		row := r.RowValue()
		for _, lane := range row.FindLanes(notefield.HoldRollEnd) {
			delete(activeHolds, lane)
			delete(activeRolls, lane)
		}

		lanes := row.Lanes()
		for lane, obj := range lanes {
			if obj != notefield.EmptyLane {
				continue
			}
			if _, ok := activeHolds[lane]; ok {
				lanes[lane] = notefield.HoldBody
			} else if _, ok := activeRolls[lane]; ok {
				lanes[lane] = notefield.RollBody
			}
		}

		for _, lane := range row.FindLanes(notefield.HoldStart) {
			activeHolds[lane] = struct{}{}
		}
		for _, lane := range row.FindLanes(notefield.RollStart) {
			activeRolls[lane] = struct{}{}
		}

		out[i] = r.WithRow(notefield.NewRow(lanes))
	}
	return out
}
