package transform

import (
	"github.com/Conceptual-Machines/simfile-core/internal/notefield"
	"github.com/Conceptual-Machines/simfile-core/internal/rational"
)

// DensityMap computes a discretized "fuzzy notes-per-second" curve: each
// judge-important row contributes a triangular kernel of half-width
// halfWidthMS, centered on the row's own millisecond timestamp, to every
// millisecond within the window (spec.md §4.H). Rows that are entirely
// JUDGE_NON_IMPORTANT (empty lanes, mines, fakes, hold/roll bodies, and
// HOLD_ROLL_END) do not contribute; lifts do.
func DensityMap(rows []notefield.GlobalTimedRow, halfWidthMS int64) map[int64]float64 {
	out := make(map[int64]float64)
	if halfWidthMS <= 0 {
		return out
	}

	for _, r := range rows {
		if r.Row.IsJudgeNonImportant() {
			continue
		}
		center := timeToMillis(r.Time)
		for d := -halfWidthMS; d <= halfWidthMS; d++ {
			weight := float64(halfWidthMS-abs64(d)) / float64(halfWidthMS)
			out[center+d] += weight
		}
	}
	return out
}

// timeToMillis discretizes t to its nearest millisecond as an exact
// integer, rounding the same way rational.Time.LimitedPrecision does.
func timeToMillis(t rational.Time) int64 {
	scaled := t.LimitedPrecision().R.Mul(rational.New(1000, 1))
	return scaled.Floor()
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
