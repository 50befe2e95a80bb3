package rational

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBPMDerivedRates(t *testing.T) {
	bpm := NewBPM(New(120, 1))
	assert.True(t, bpm.MeasuresPerSecond().Equal(New(2, 1)))
	assert.True(t, bpm.RowsPerSecond().Equal(New(384, 1)))
}

func TestBeatAsMeasure(t *testing.T) {
	beat := NewBeat(New(1, 1))
	assert.True(t, beat.AsMeasure().R.Equal(New(1, 4)))
}

func TestLocalPositionValidation(t *testing.T) {
	_, err := NewLocalPosition(New(1, 1))
	assert.Error(t, err, "1 is not < 1")

	_, err = NewLocalPosition(New(-1, 4))
	assert.Error(t, err, "negative rejected")

	_, err = NewLocalPosition(New(1, 193))
	assert.Error(t, err, "denominator above 192 rejected")

	lp, err := NewLocalPosition(New(3, 4))
	require.NoError(t, err)
	assert.True(t, lp.R.Equal(New(3, 4)))
}

func TestGlobalPositionMeasureAndLocal(t *testing.T) {
	gp, err := NewGlobalPosition(New(11, 4)) // 2.75
	require.NoError(t, err)
	assert.Equal(t, int64(2), gp.Measure())
	assert.True(t, gp.Local().R.Equal(New(3, 4)))
}

func TestGlobalPositionRejectsNegative(t *testing.T) {
	_, err := NewGlobalPosition(New(-1, 4))
	assert.Error(t, err)
}

func TestTimeLimitedPrecision(t *testing.T) {
	tm := NewTime(New(1, 3)) // 0.333...
	rounded := tm.LimitedPrecision()
	assert.True(t, rounded.R.Equal(New(333, 1000)))
}

func TestTimeLimitedPrecisionRoundsHalfUp(t *testing.T) {
	tm := NewTime(New(12345, 10000)) // 1.2345s, exactly half a ms above 1.234
	rounded := tm.LimitedPrecision()
	assert.True(t, rounded.R.Equal(New(1235, 1000)))
}
