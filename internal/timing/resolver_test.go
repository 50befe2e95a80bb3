package timing

import (
	"testing"

	"github.com/Conceptual-Machines/simfile-core/internal/notefield"
	"github.com/Conceptual-Machines/simfile-core/internal/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRow(t *testing.T, s string) notefield.Row {
	t.Helper()
	r, err := notefield.ParseRow(s)
	require.NoError(t, err)
	return r
}

func mustGlobalRow(t *testing.T, s string, measure rational.Rational) notefield.GlobalRow {
	t.Helper()
	pos, err := rational.NewGlobalPosition(measure)
	require.NoError(t, err)
	return notefield.NewGlobalRow(mustRow(t, s), pos)
}

func bpmPair(measure, bpm int64) notefield.MeasureBPMPair {
	return notefield.MeasureBPMPair{
		Measure: rational.NewMeasure(rational.New(measure, 1)),
		BPM:     rational.NewBPM(rational.New(bpm, 1)),
	}
}

func TestResolveSingleBPMNoStops(t *testing.T) {
	rows := []notefield.GlobalRow{
		mustGlobalRow(t, "0000", rational.New(0, 1)),
		mustGlobalRow(t, "0000", rational.New(1, 4)),
		mustGlobalRow(t, "0000", rational.New(1, 2)),
		mustGlobalRow(t, "0000", rational.New(3, 4)),
	}

	out, err := Resolve(rows, []notefield.MeasureBPMPair{bpmPair(0, 120)}, nil, rational.ZeroTime())
	require.NoError(t, err)
	require.Len(t, out, 4)

	want := []rational.Rational{rational.New(0, 1), rational.New(1, 2), rational.New(1, 1), rational.New(3, 2)}
	for i, w := range want {
		assert.True(t, out[i].Time.R.Equal(w), "row %d: want %s got %s", i, w, out[i].Time.R)
	}
}

func TestResolveTwoBPMSegments(t *testing.T) {
	rows := []notefield.GlobalRow{
		mustGlobalRow(t, "0000", rational.New(0, 1)),
		mustGlobalRow(t, "0000", rational.New(1, 1)),
		mustGlobalRow(t, "0000", rational.New(2, 1)),
	}
	bpms := []notefield.MeasureBPMPair{bpmPair(0, 120), bpmPair(1, 60)}

	out, err := Resolve(rows, bpms, nil, rational.ZeroTime())
	require.NoError(t, err)

	want := []rational.Rational{rational.New(0, 1), rational.New(2, 1), rational.New(6, 1)}
	for i, w := range want {
		assert.True(t, out[i].Time.R.Equal(w), "row %d: want %s got %s", i, w, out[i].Time.R)
	}
}

func TestResolveSingleStop(t *testing.T) {
	rows := []notefield.GlobalRow{
		mustGlobalRow(t, "0000", rational.New(2, 1)),
	}
	bpms := []notefield.MeasureBPMPair{bpmPair(0, 120)}
	stops := []notefield.MeasureMeasurePair{
		{
			Measure:  rational.NewMeasure(rational.New(1, 4)), // beat 1 -> measure 0.25
			Duration: rational.NewMeasure(rational.New(1, 2)), // 2 beats -> measure 0.5
		},
	}

	out, err := Resolve(rows, bpms, stops, rational.ZeroTime())
	require.NoError(t, err)
	assert.True(t, out[0].Time.R.Equal(rational.New(5, 1)), "want 5s got %s", out[0].Time.R)
}

func TestResolveEmptyBPMScheduleIsStructuralError(t *testing.T) {
	_, err := Resolve(nil, nil, nil, rational.ZeroTime())
	assert.Error(t, err)
}

func TestResolveOffsetShiftsTime(t *testing.T) {
	rows := []notefield.GlobalRow{mustGlobalRow(t, "0000", rational.New(1, 4))}
	bpms := []notefield.MeasureBPMPair{bpmPair(0, 120)}

	offset := rational.NewTime(rational.New(1, 10))
	out, err := Resolve(rows, bpms, nil, offset)
	require.NoError(t, err)
	assert.True(t, out[0].Time.R.Equal(rational.New(1, 2).Sub(rational.New(1, 10))))
}

func TestResolveRejectsNonMonotonicPositions(t *testing.T) {
	rows := []notefield.GlobalRow{
		mustGlobalRow(t, "0000", rational.New(1, 1)),
		mustGlobalRow(t, "0000", rational.New(1, 1)),
	}
	bpms := []notefield.MeasureBPMPair{bpmPair(0, 120)}
	_, err := Resolve(rows, bpms, nil, rational.ZeroTime())
	assert.Error(t, err)
}

func TestResolveIgnoresBPMSegmentPastLastRow(t *testing.T) {
	rows := []notefield.GlobalRow{mustGlobalRow(t, "0000", rational.New(1, 1))}
	bpms := []notefield.MeasureBPMPair{bpmPair(0, 120), bpmPair(100, 999)}
	out, err := Resolve(rows, bpms, nil, rational.ZeroTime())
	require.NoError(t, err)
	assert.True(t, out[0].Time.R.Equal(rational.New(2, 1)))
}
