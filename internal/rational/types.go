package rational

import "fmt"

// MaxSnapDenominator is the largest denominator a LocalPosition or the
// fractional part of a GlobalPosition may carry (spec.md §3).
const MaxSnapDenominator = 192

// RowsPerMeasure is the native row resolution; BPM.RowsPerSecond derives
// rows_per_second from it.
const RowsPerMeasure = 192

// BeatsPerMeasure is fixed; the format has no time-signature changes
// (spec.md §1 Non-goals).
const BeatsPerMeasure = 4

// BPM is beats-per-minute, a Rational with the dimension pinned.
type BPM struct{ R Rational }

// NewBPM wraps a Rational as a BPM. The caller is responsible for the
// (beat=value) / (bpm) distinction; BPM never validates positivity here
// because STOPS and freeform scripting may reuse the same raw Rational
// machinery with different dimensions.
func NewBPM(r Rational) BPM { return BPM{R: r} }

// MeasuresPerSecond is 240/BPM (spec.md §3).
func (b BPM) MeasuresPerSecond() Rational {
	return New(240, 1).Div(b.R)
}

// RowsPerSecond is 192 * measures_per_second.
func (b BPM) RowsPerSecond() Rational {
	return New(RowsPerMeasure, 1).Mul(b.MeasuresPerSecond())
}

func (b BPM) Equal(other BPM) bool { return b.R.Equal(other.R) }
func (b BPM) String() string       { return b.R.String() }

// Beat is the format's native position unit: one quarter of a measure.
type Beat struct{ R Rational }

func NewBeat(r Rational) Beat { return Beat{R: r} }

// AsMeasure converts beat/4 (spec.md §3).
func (b Beat) AsMeasure() Measure {
	return Measure{R: b.R.Div(New(BeatsPerMeasure, 1))}
}

func (b Beat) Equal(other Beat) bool { return b.R.Equal(other.R) }
func (b Beat) String() string        { return b.R.String() }

// Measure is a musical-bar-scaled position, fixed at 4/4.
type Measure struct{ R Rational }

func NewMeasure(r Rational) Measure { return Measure{R: r} }

func (m Measure) Equal(other Measure) bool    { return m.R.Equal(other.R) }
func (m Measure) LessThan(other Measure) bool { return m.R.LessThan(other.R) }
func (m Measure) LessOrEqual(o Measure) bool  { return m.R.LessOrEqual(o.R) }
func (m Measure) Add(other Measure) Measure   { return Measure{R: m.R.Add(other.R)} }
func (m Measure) Sub(other Measure) Measure   { return Measure{R: m.R.Sub(other.R)} }
func (m Measure) String() string              { return m.R.String() }

// LocalPosition is a Rational in [0, 1) with denominator in [1, 192] — a
// row's offset within its measure (spec.md §3).
type LocalPosition struct{ R Rational }

// NewLocalPosition validates the [0,1) range and the snap-denominator
// ceiling before returning a LocalPosition.
func NewLocalPosition(r Rational) (LocalPosition, error) {
	if r.Sign() < 0 || !r.LessThan(New(1, 1)) {
		return LocalPosition{}, fmt.Errorf("rational: local position %s out of [0,1)", r)
	}
	if r.DenExceeds(MaxSnapDenominator) {
		return LocalPosition{}, fmt.Errorf("rational: local position %s denominator exceeds %d", r, MaxSnapDenominator)
	}
	return LocalPosition{R: r}, nil
}

func (l LocalPosition) Equal(other LocalPosition) bool { return l.R.Equal(other.R) }
func (l LocalPosition) String() string                 { return l.R.String() }

// GlobalPosition is a non-negative Rational in measures, with the
// fractional part's denominator bounded at 192 (spec.md §3).
type GlobalPosition struct{ R Rational }

// NewGlobalPosition validates non-negativity and the snap-denominator
// ceiling on the fractional part.
func NewGlobalPosition(r Rational) (GlobalPosition, error) {
	if r.Sign() < 0 {
		return GlobalPosition{}, fmt.Errorf("rational: global position %s is negative", r)
	}
	if r.Frac().DenExceeds(MaxSnapDenominator) {
		return GlobalPosition{}, fmt.Errorf("rational: global position %s fractional denominator exceeds %d", r, MaxSnapDenominator)
	}
	return GlobalPosition{R: r}, nil
}

// MustGlobalPosition panics on validation failure; used for positions
// derived arithmetically from already-validated inputs where failure
// indicates a bug, not bad input.
func MustGlobalPosition(r Rational) GlobalPosition {
	p, err := NewGlobalPosition(r)
	if err != nil {
		panic(err)
	}
	return p
}

// Measure returns floor(p) as a whole measure index.
func (g GlobalPosition) Measure() int64 { return g.R.Floor() }

// Local returns p - floor(p) as a LocalPosition.
func (g GlobalPosition) Local() LocalPosition {
	local, err := NewLocalPosition(g.R.Frac())
	if err != nil {
		// The fractional-denominator check in NewGlobalPosition already
		// guarantees this succeeds; a failure here is a library bug.
		panic(err)
	}
	return local
}

func (g GlobalPosition) Equal(other GlobalPosition) bool    { return g.R.Equal(other.R) }
func (g GlobalPosition) LessThan(other GlobalPosition) bool { return g.R.LessThan(other.R) }
func (g GlobalPosition) String() string                     { return g.R.String() }

// Time is exact seconds.
type Time struct{ R Rational }

func NewTime(r Rational) Time { return Time{R: r} }

// ZeroTime is 0 seconds.
func ZeroTime() Time { return Time{R: Zero()} }

func (t Time) Add(other Time) Time      { return Time{R: t.R.Add(other.R)} }
func (t Time) Sub(other Time) Time      { return Time{R: t.R.Sub(other.R)} }
func (t Time) Neg() Time                { return Time{R: t.R.Neg()} }
func (t Time) Equal(other Time) bool    { return t.R.Equal(other.R) }
func (t Time) LessThan(other Time) bool { return t.R.LessThan(other.R) }
func (t Time) LessOrEqual(o Time) bool  { return t.R.LessOrEqual(o.R) }
func (t Time) String() string           { return t.R.String() }

// LimitedPrecision rounds t to the nearest millisecond (1e-3 seconds),
// per spec.md §3, returning a new Time.
func (t Time) LimitedPrecision() Time {
	milli := New(1, 1000)
	scaled := t.R.Div(milli)
	rounded := roundToNearestInt(scaled)
	return Time{R: New(rounded, 1).Mul(milli)}
}

func roundToNearestInt(r Rational) int64 {
	floor := r.Floor()
	rem := r.Sub(New(floor, 1))
	half := New(1, 2)
	if rem.LessThan(half) {
		return floor
	}
	return floor + 1
}
