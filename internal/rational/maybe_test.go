package rational

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaybeExactEquality(t *testing.T) {
	a := Exact(New(1, 2))
	b := Exact(New(2, 4))
	c := Exact(New(1, 3))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestMaybeWildcardEqualsOnlyWildcard(t *testing.T) {
	w1 := Wildcard[Rational]()
	w2 := Wildcard[Rational]()
	exact := Exact(New(5, 1))

	assert.True(t, w1.Equal(w2))
	assert.False(t, w1.Equal(exact))
	assert.False(t, exact.Equal(w1))
}

func TestPositionTimeDeltaInvariantsCompareEqual(t *testing.T) {
	p1 := PositionInvariant()
	p2 := PositionInvariant()
	assert.True(t, p1.Equal(p2))

	t1 := TimeInvariant()
	t2 := TimeInvariant()
	assert.True(t, t1.Equal(t2))

	d1 := DeltaInvariant()
	d2 := DeltaInvariant()
	assert.True(t, d1.Equal(d2))
}

func TestValueUnwrapsExactOnly(t *testing.T) {
	exact := Exact(New(3, 1))
	v, ok := exact.Value()
	assert.True(t, ok)
	assert.True(t, v.Equal(New(3, 1)))

	wild := Wildcard[Rational]()
	_, ok = wild.Value()
	assert.False(t, ok)
}
