package notefield

import (
	"testing"

	"github.com/Conceptual-Machines/simfile-core/internal/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowsToGlobalDeltaRowsClosure(t *testing.T) {
	row, err := ParseRow("0000")
	require.NoError(t, err)

	var timed []GlobalTimedRow
	for i, seconds := range []int64{0, 1, 3, 6} {
		pos, err := rational.NewGlobalPosition(rational.New(int64(i), 1))
		require.NoError(t, err)
		global := NewGlobalRow(row, pos)
		timed = append(timed, NewGlobalTimedRow(global, rational.NewTime(rational.New(seconds, 1))))
	}

	deltas := RowsToGlobalDeltaRows(timed)
	require.Len(t, deltas, 4)

	want := []string{"1", "2", "3", "0"}
	for i, w := range want {
		assert.Equal(t, w, deltas[i].Delta.R.String(), "row %d", i)
	}

	// prefix sums of deltas recover times (up to times[0])
	running := timed[0].Time
	for i := 0; i < len(deltas)-1; i++ {
		running = running.Add(deltas[i].Delta)
		assert.True(t, running.Equal(timed[i+1].Time), "prefix sum mismatch at %d", i)
	}
}

func TestGlobalTimedRowTimeInvariantIgnoresTime(t *testing.T) {
	row, err := ParseRow("0000")
	require.NoError(t, err)
	pos, err := rational.NewGlobalPosition(rational.Zero())
	require.NoError(t, err)
	global := NewGlobalRow(row, pos)

	a := NewGlobalTimedRow(global, rational.NewTime(rational.New(1, 1)))
	b := NewGlobalTimedRow(global, rational.NewTime(rational.New(2, 1)))

	assert.True(t, a.TimeInvariant().Equal(b.TimeInvariant()))
	assert.False(t, a.TimeValue().Equal(b.TimeValue()))
}

func TestGlobalRowWithRowPreservesPosition(t *testing.T) {
	row, err := ParseRow("0000")
	require.NoError(t, err)
	pos, err := rational.NewGlobalPosition(rational.New(3, 4))
	require.NoError(t, err)
	g := NewGlobalRow(row, pos)

	replaced, err := ParseRow("1000")
	require.NoError(t, err)
	g2 := g.WithRow(replaced)

	assert.True(t, g2.Position.Equal(pos))
	assert.Equal(t, "1000", g2.RowValue().String())
}
