// Package timing implements the timing resolver (spec.md §4.G, component
// G): converting a musical-position-indexed notefield into a
// time-indexed one under a piecewise BPM schedule with pointwise stops
// and a scalar offset, using exact rational arithmetic throughout.
package timing

import (
	"github.com/Conceptual-Machines/simfile-core/internal/notefield"
	"github.com/Conceptual-Machines/simfile-core/internal/rational"
	"github.com/Conceptual-Machines/simfile-core/internal/simerrors"
)

// Resolve converts rows (sorted, strictly increasing GlobalPosition) into
// GlobalTimedRows under bpmSchedule, stopSchedule, and offset, following
// spec.md §4.G's algorithm exactly. bpmSchedule and stopSchedule must
// already be sorted by measure (notefield.ParseMeasureBPMPairs and
// ParseMeasureMeasurePairs do this); Resolve does not mutate its inputs.
func Resolve(
	rows []notefield.GlobalRow,
	bpmSchedule []notefield.MeasureBPMPair,
	stopSchedule []notefield.MeasureMeasurePair,
	offset rational.Time,
) ([]notefield.GlobalTimedRow, error) {
	if len(bpmSchedule) == 0 {
		return nil, simerrors.NewStructural("empty BPM schedule")
	}

	bpmQueue := append([]notefield.MeasureBPMPair(nil), bpmSchedule...)
	stopQueue := append([]notefield.MeasureMeasurePair(nil), stopSchedule...)

	// Step 1: take the first BPM segment as current. Per spec.md §4.G,
	// if it does not start at measure 0, it is still treated as
	// effective from 0 — the cursor simply starts at measure 0 with this
	// BPM regardless of the segment's recorded measure.
	currentBPM := bpmQueue[0].BPM
	bpmQueue = bpmQueue[1:]

	cursor := rational.NewMeasure(rational.Zero())
	elapsed := rational.ZeroTime()

	out := make([]notefield.GlobalTimedRow, len(rows))
	havePrev := false
	var prevPos rational.GlobalPosition

	for i, r := range rows {
		if havePrev && !prevPos.LessThan(r.Position) {
			return nil, simerrors.NewStructural("row positions are not strictly increasing at index %d", i)
		}
		havePrev = true
		prevPos = r.Position

		target := rational.NewMeasure(r.Position.R)

		// Step 3b: advance through any BPM segments strictly before the
		// target measure.
		for len(bpmQueue) > 0 && bpmQueue[0].Measure.LessThan(target) {
			next := bpmQueue[0]
			elapsed = elapsed.Add(measureSpanToTime(next.Measure.Sub(cursor), currentBPM))
			cursor = next.Measure
			currentBPM = next.BPM
			bpmQueue = bpmQueue[1:]
		}

		// Step 3c: accumulate the remaining span up to the target at the
		// (now current) BPM.
		elapsed = elapsed.Add(measureSpanToTime(target.Sub(cursor), currentBPM))
		cursor = target

		// Step 3d: apply any stops at or before the cursor. Stops do not
		// advance the measure cursor. A stop's duration (already
		// beat/4-converted to measures) contributes
		// duration * current_bpm.measures_per_second seconds — see
		// DESIGN.md's resolution of the stop-contribution formula.
		for len(stopQueue) > 0 && stopQueue[0].Measure.LessOrEqual(cursor) {
			stop := stopQueue[0]
			elapsed = elapsed.Add(measureSpanToTime(stop.Duration, currentBPM))
			stopQueue = stopQueue[1:]
		}

		out[i] = notefield.NewGlobalTimedRow(r, elapsed.Sub(offset))
	}

	return out, nil
}

func measureSpanToTime(span rational.Measure, bpm rational.BPM) rational.Time {
	return rational.NewTime(span.R.Mul(bpm.MeasuresPerSecond()))
}
