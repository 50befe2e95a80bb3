package notefield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRowRoundTrip(t *testing.T) {
	r, err := ParseRow("204M1F0L")
	require.NoError(t, err)
	assert.Equal(t, "204M1F0L", r.String())

	r2, err := ParseRow(r.String())
	require.NoError(t, err)
	assert.True(t, r.Equal(r2))
}

func TestParseRowRejectsInvalidChar(t *testing.T) {
	_, err := ParseRow("10X0")
	assert.Error(t, err)
}

func TestParseRowRejectsSynthesizedObjects(t *testing.T) {
	_, err := ParseRow("H000")
	assert.Error(t, err)
	_, err = ParseRow("R000")
	assert.Error(t, err)
}

func TestRowIsEmpty(t *testing.T) {
	empty, err := ParseRow("0000")
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	nonEmpty, err := ParseRow("0010")
	require.NoError(t, err)
	assert.False(t, nonEmpty.IsEmpty())
}

func TestRowIsDecorative(t *testing.T) {
	r, err := ParseRow("0MF0")
	require.NoError(t, err)
	assert.True(t, r.IsDecorative())

	r2, err := ParseRow("0M10")
	require.NoError(t, err)
	assert.False(t, r2.IsDecorative())
}

func TestRowFindLanes(t *testing.T) {
	r, err := ParseRow("1010")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, r.FindLanes(Tap))
}

func TestRowMirrorInvolution(t *testing.T) {
	r, err := ParseRow("10M0")
	require.NoError(t, err)
	assert.True(t, r.Mirror().Mirror().Equal(r))
	assert.Equal(t, "0M01", r.Mirror().String())
}

func TestRowReplaceObjects(t *testing.T) {
	r, err := ParseRow("1M0F")
	require.NoError(t, err)
	replaced := r.ReplaceObjects([]NoteObject{Mine, Fake}, EmptyLane)
	assert.Equal(t, "1000", replaced.String())
}

func TestRowSwitchLanes(t *testing.T) {
	r, err := ParseRow("10MF")
	require.NoError(t, err)
	switched := r.SwitchLanes([]int{3, 2, 1, 0})
	assert.Equal(t, "FM01", switched.String())
}

func TestRowSwitchLanesPanicsOnInvalidPermutation(t *testing.T) {
	r, err := ParseRow("1010")
	require.NoError(t, err)
	assert.Panics(t, func() { r.SwitchLanes([]int{0, 0, 1, 1}) })
}

func TestRowPermutationGroupContainsIdentity(t *testing.T) {
	r, err := ParseRow("10M")
	require.NoError(t, err)
	group := r.PermutationGroup()
	assert.Len(t, group, 6) // 3! = 6, all distinct

	found := false
	for _, p := range group {
		if p.Equal(r) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRowPermutationGroupDedupsSymmetric(t *testing.T) {
	r, err := ParseRow("0000")
	require.NoError(t, err)
	assert.Len(t, r.PermutationGroup(), 1)
}

func TestAllLanePermutationsCount(t *testing.T) {
	assert.Len(t, AllLanePermutations(4), 24)
}
