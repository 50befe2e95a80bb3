package transform

import (
	"github.com/Conceptual-Machines/simfile-core/internal/notefield"
	"github.com/Conceptual-Machines/simfile-core/internal/rational"
	"github.com/Conceptual-Machines/simfile-core/internal/simerrors"
)

// openLongNote tracks, per lane, the index of the row that opened a hold
// or roll not yet closed by a matching HOLD_ROLL_END.
type openLongNote struct {
	startIndex int
	isRoll     bool
}

// CollapseMiniLongNotes replaces any hold or roll whose duration is at or
// under its threshold with a single TAP, per the "intended design" fix to
// the mini-roll collapse list bug (spec.md §9 Open Question, resolved in
// DESIGN.md): rollThresholdMS must gate rolls and holdThresholdMS holds,
// each keyed off the long note's own kind rather than a shared list.
// Collapsed long notes lose their matching HOLD_ROLL_END — the lane
// becomes EMPTY at that row. rows must already have matched starts/ends
// (internal/parser validates this); an unmatched HOLD_ROLL_END is reported
// as a structural error rather than silently ignored.
func CollapseMiniLongNotes(rows []notefield.GlobalTimedRow, holdThresholdMS, rollThresholdMS int64) ([]notefield.GlobalTimedRow, error) {
	open := make(map[int]openLongNote)
	out := make([]notefield.GlobalTimedRow, len(rows))
	for i, r := range rows {
		lanes := r.Row.Lanes()
		for lane, obj := range lanes {
			switch obj {
			case notefield.HoldStart:
				open[lane] = openLongNote{startIndex: i, isRoll: false}
			case notefield.RollStart:
				open[lane] = openLongNote{startIndex: i, isRoll: true}
			case notefield.HoldRollEnd:
				start, ok := open[lane]
				if !ok {
					return nil, simerrors.NewStructural("unmatched HOLD_ROLL_END at lane %d, row %d", lane, i)
				}
				delete(open, lane)

				threshold := holdThresholdMS
				if start.isRoll {
					threshold = rollThresholdMS
				}
				if millisBetween(rows[start.startIndex].Time, r.Time) <= threshold {
					collapseLongNote(out, start.startIndex, lane)
					lanes[lane] = notefield.EmptyLane
				}
			}
		}
		out[i] = r.WithRow(notefield.NewRow(lanes))
	}
	return out, nil
}

// collapseLongNote rewrites the already-emitted start row in out, turning
// its HOLD_START/ROLL_START at lane into a TAP. out[startIndex] has
// already been written by a prior iteration of the main loop by the time
// any HOLD_ROLL_END is seen, since starts always precede their ends.
func collapseLongNote(out []notefield.GlobalTimedRow, startIndex, lane int) {
	row := out[startIndex].Row
	lanes := row.Lanes()
	lanes[lane] = notefield.Tap
	out[startIndex] = out[startIndex].WithRow(notefield.NewRow(lanes))
}

// millisBetween rounds (end - start) to the nearest millisecond and
// returns it as an integer, for comparison against the mini-long-note
// thresholds.
func millisBetween(start, end rational.Time) int64 {
	delta := end.Sub(start).LimitedPrecision()
	scaled := delta.R.Mul(rational.New(1000, 1))
	return scaled.Floor()
}
