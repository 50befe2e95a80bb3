package notefield

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Conceptual-Machines/simfile-core/internal/rational"
)

// MeasureBPMPair represents "from this measure onward, this BPM applies"
// (spec.md §3 — the BPMS schedule).
type MeasureBPMPair struct {
	Measure rational.Measure
	BPM     rational.BPM
}

// MeasureMeasurePair represents a stop: a pause at Measure lasting
// Duration measures (the textual duration is given in beats and
// converted with beat/4, spec.md §3/§6).
type MeasureMeasurePair struct {
	Measure  rational.Measure
	Duration rational.Measure
}

// MeasureValuePair is a generic freeform scripting pair (spec.md §3).
type MeasureValuePair struct {
	Measure rational.Measure
	Value   rational.Rational
}

// splitFragments splits a comma-separated "A=B" list into its fragments,
// skipping blank entries (an empty BPMS/STOPS value parses to no pairs).
func splitFragments(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func splitFragment(fragment string) (lhs, rhs string, err error) {
	a, b, ok := strings.Cut(fragment, "=")
	if !ok {
		return "", "", fmt.Errorf("notefield: malformed pair fragment %q (expected A=B)", fragment)
	}
	return strings.TrimSpace(a), strings.TrimSpace(b), nil
}

func parseBeatAsMeasure(s string) (rational.Measure, error) {
	r, err := rational.ParseDecimal(s)
	if err != nil {
		return rational.Measure{}, err
	}
	return rational.NewBeat(r).AsMeasure(), nil
}

// ParseMeasureBPMPairs parses a BPMS-shaped "beat=bpm,beat=bpm,..." list.
// The result is sorted by measure ascending; duplicate measures are kept
// (not deduplicated) per spec.md §4.D — the resolver treats the later
// entry as authoritative.
func ParseMeasureBPMPairs(s string) ([]MeasureBPMPair, error) {
	fragments := splitFragments(s)
	pairs := make([]MeasureBPMPair, 0, len(fragments))
	for _, f := range fragments {
		lhs, rhs, err := splitFragment(f)
		if err != nil {
			return nil, err
		}
		measure, err := parseBeatAsMeasure(lhs)
		if err != nil {
			return nil, fmt.Errorf("notefield: bpm fragment %q: %w", f, err)
		}
		bpmVal, err := rational.ParseDecimal(rhs)
		if err != nil {
			return nil, fmt.Errorf("notefield: bpm fragment %q: %w", f, err)
		}
		pairs = append(pairs, MeasureBPMPair{Measure: measure, BPM: rational.NewBPM(bpmVal)})
	}
	sortMeasureBPMPairs(pairs)
	return pairs, nil
}

// ParseMeasureMeasurePairs parses a STOPS-shaped "beat=beat,..." list;
// both sides are beats and both convert to measures (spec.md §6).
func ParseMeasureMeasurePairs(s string) ([]MeasureMeasurePair, error) {
	fragments := splitFragments(s)
	pairs := make([]MeasureMeasurePair, 0, len(fragments))
	for _, f := range fragments {
		lhs, rhs, err := splitFragment(f)
		if err != nil {
			return nil, err
		}
		measure, err := parseBeatAsMeasure(lhs)
		if err != nil {
			return nil, fmt.Errorf("notefield: stop fragment %q: %w", f, err)
		}
		duration, err := parseBeatAsMeasure(rhs)
		if err != nil {
			return nil, fmt.Errorf("notefield: stop fragment %q: %w", f, err)
		}
		pairs = append(pairs, MeasureMeasurePair{Measure: measure, Duration: duration})
	}
	sortMeasureMeasurePairs(pairs)
	return pairs, nil
}

// ParseMeasureValuePairs parses a generic "beat=value" freeform list; the
// value is a plain Rational, not beat-converted.
func ParseMeasureValuePairs(s string) ([]MeasureValuePair, error) {
	fragments := splitFragments(s)
	pairs := make([]MeasureValuePair, 0, len(fragments))
	for _, f := range fragments {
		lhs, rhs, err := splitFragment(f)
		if err != nil {
			return nil, err
		}
		measure, err := parseBeatAsMeasure(lhs)
		if err != nil {
			return nil, fmt.Errorf("notefield: value fragment %q: %w", f, err)
		}
		val, err := rational.ParseDecimal(rhs)
		if err != nil {
			return nil, fmt.Errorf("notefield: value fragment %q: %w", f, err)
		}
		pairs = append(pairs, MeasureValuePair{Measure: measure, Value: val})
	}
	sortMeasureValuePairs(pairs)
	return pairs, nil
}

func sortMeasureBPMPairs(pairs []MeasureBPMPair) {
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Measure.LessThan(pairs[j].Measure) })
}

func sortMeasureMeasurePairs(pairs []MeasureMeasurePair) {
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Measure.LessThan(pairs[j].Measure) })
}

func sortMeasureValuePairs(pairs []MeasureValuePair) {
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Measure.LessThan(pairs[j].Measure) })
}
