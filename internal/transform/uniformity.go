package transform

import (
	"math"

	"github.com/Conceptual-Machines/simfile-core/internal/notefield"
)

// UniformityStat is the (mean, standard deviation) of the inter-occurrence
// time deltas, in seconds, for one distinct row pattern.
type UniformityStat struct {
	Mean   float64
	StdDev float64
	Count  int
}

// UniformityMap groups rows by their exact PureRow content (e.g. every
// occurrence of a particular jump pattern) and, for patterns occurring
// often enough to have at least 7 inter-occurrence deltas, records how
// uniformly spaced those occurrences are — a low standard deviation
// relative to the mean indicates a steady, predictable repetition
// (spec.md §4.H). Patterns with fewer than 7 deltas are omitted: a
// standard deviation computed over a handful of samples is not meaningful.
func UniformityMap(rows []notefield.GlobalTimedRow) map[string]UniformityStat {
	occurrences := make(map[string][]float64)
	for _, r := range rows {
		key := r.Row.String()
		occurrences[key] = append(occurrences[key], r.Time.LimitedPrecision().R.Float64())
	}

	out := make(map[string]UniformityStat)
	for key, times := range occurrences {
		if len(times) < 2 {
			continue
		}
		deltas := make([]float64, 0, len(times)-1)
		for i := 1; i < len(times); i++ {
			deltas = append(deltas, times[i]-times[i-1])
		}
		if len(deltas) < 7 {
			continue
		}
		out[key] = deltaStat(deltas)
	}
	return out
}

func deltaStat(deltas []float64) UniformityStat {
	var sum float64
	for _, d := range deltas {
		sum += d
	}
	mean := sum / float64(len(deltas))

	var variance float64
	for _, d := range deltas {
		diff := d - mean
		variance += diff * diff
	}
	variance /= float64(len(deltas) - 1)

	return UniformityStat{Mean: mean, StdDev: math.Sqrt(variance), Count: len(deltas)}
}
