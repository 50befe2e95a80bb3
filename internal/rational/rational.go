// Package rational implements an exact-precision rational number type and
// the semantic subtypes (BPM, Measure, Beat, LocalPosition, GlobalPosition,
// Time) that every position and timing computation in this module relies
// on. Floats never enter the positioning/timing path.
package rational

import (
	"fmt"
	"math/big"
	"strings"
)

// Rational is an exact fraction backed by math/big.Rat, always held in
// lowest terms with a strictly positive denominator. A chart resolved
// across many distinct BPM/stop denominators accumulates a cross-multiplied
// denominator on every Add/Sub; int64 storage would silently wrap on
// overflow for a realistic multi-BPM-change chart, so the numerator and
// denominator are arbitrary-precision. The zero value is not a valid
// Rational; use Zero() or New.
type Rational struct {
	r *big.Rat
}

// Zero returns the rational 0/1.
func Zero() Rational { return Rational{r: new(big.Rat)} }

// New builds a canonical Rational from a numerator/denominator pair.
// Panics if den == 0, matching the teacher's fail-fast style for
// constructor invariants it cannot recover from.
func New(num, den int64) Rational {
	if den == 0 {
		panic("rational: zero denominator")
	}
	return Rational{r: new(big.Rat).SetFrac64(num, den)}
}

// newFromRat wraps an already-reduced *big.Rat. big.Rat.SetFrac and every
// arithmetic method always returns a normalized value (positive
// denominator, canceled gcd), so callers never need to re-reduce.
func newFromRat(r *big.Rat) Rational { return Rational{r: r} }

func (r Rational) rat() *big.Rat {
	if r.r == nil {
		return new(big.Rat)
	}
	return r.r
}

// Num returns the canonical numerator, truncated to int64. Every value
// this module actually constructs (beat/measure/row/BPM positions) fits
// comfortably in an int64; this accessor exists for display and tests, not
// for the arithmetic path, which stays on the arbitrary-precision big.Rat
// throughout.
func (r Rational) Num() int64 { return r.rat().Num().Int64() }

// Den returns the canonical denominator (always > 0), truncated to int64
// like Num. Use DenExceeds for a denominator-bound check that can't
// overflow.
func (r Rational) Den() int64 { return r.rat().Denom().Int64() }

// DenExceeds reports whether the denominator is strictly greater than n,
// comparing as arbitrary-precision integers so a denominator too large to
// fit in an int64 still reports true rather than wrapping.
func (r Rational) DenExceeds(n int64) bool {
	return r.rat().Denom().Cmp(big.NewInt(n)) > 0
}

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.rat().Sign() == 0 }

// Sign returns -1, 0, or 1.
func (r Rational) Sign() int { return r.rat().Sign() }

// Add returns r + other, exactly.
func (r Rational) Add(other Rational) Rational {
	return newFromRat(new(big.Rat).Add(r.rat(), other.rat()))
}

// Sub returns r - other, exactly.
func (r Rational) Sub(other Rational) Rational {
	return newFromRat(new(big.Rat).Sub(r.rat(), other.rat()))
}

// Mul returns r * other, exactly.
func (r Rational) Mul(other Rational) Rational {
	return newFromRat(new(big.Rat).Mul(r.rat(), other.rat()))
}

// Div returns r / other, exactly. Panics on division by zero.
func (r Rational) Div(other Rational) Rational {
	if other.IsZero() {
		panic("rational: division by zero")
	}
	return newFromRat(new(big.Rat).Quo(r.rat(), other.rat()))
}

// Neg returns -r.
func (r Rational) Neg() Rational { return newFromRat(new(big.Rat).Neg(r.rat())) }

// Cmp returns -1, 0, or 1 as r is less than, equal to, or greater than other.
func (r Rational) Cmp(other Rational) int { return r.rat().Cmp(other.rat()) }

// Equal reports whether r and other denote the same exact value.
func (r Rational) Equal(other Rational) bool { return r.Cmp(other) == 0 }

// LessThan reports r < other.
func (r Rational) LessThan(other Rational) bool { return r.Cmp(other) < 0 }

// LessOrEqual reports r <= other.
func (r Rational) LessOrEqual(other Rational) bool { return r.Cmp(other) <= 0 }

// Floor returns the greatest integer <= r.
func (r Rational) Floor() int64 {
	num, den := r.rat().Num(), r.rat().Denom()
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(num, den, m) // Euclidean division: m is always >= 0, matching floor division
	return q.Int64()
}

// FloorRational returns Floor as a whole-number Rational.
func (r Rational) FloorRational() Rational { return New(r.Floor(), 1) }

// Frac returns the fractional part r - Floor(r), always in [0, 1).
func (r Rational) Frac() Rational { return r.Sub(r.FloorRational()) }

// Float64 converts to a float64, for display or interop only; never used
// in the positioning/timing computation path.
func (r Rational) Float64() float64 {
	f, _ := r.rat().Float64()
	return f
}

// Hash returns a cheap, equality-consistent hash of the canonical form.
// Because big.Rat always stores values in lowest terms, equal rationals
// always render the same canonical string, so hashing the string keeps
// the "equal values hash equal" contract without re-implementing
// arbitrary-precision mixing by hand.
func (r Rational) Hash() uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	s := r.String()
	h := uint64(offset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}

// String renders the canonical "num/den" form, or the bare integer when
// den == 1.
func (r Rational) String() string { return r.rat().RatString() }

// ParseDecimal parses a signed decimal literal ("120", "-3.5", "0.125")
// into an exact Rational — no float round-trip. This is how BPM values,
// OFFSET, SAMPLESTART/SAMPLELENGTH, and beat fragments are read from
// simfile text.
func ParseDecimal(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rational{}, fmt.Errorf("rational: empty decimal literal")
	}

	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}
	if s == "" {
		return Rational{}, fmt.Errorf("rational: malformed decimal literal")
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}
	if !isDigits(intPart) || (hasFrac && fracPart != "" && !isDigits(fracPart)) {
		return Rational{}, fmt.Errorf("rational: malformed decimal literal %q", s)
	}

	whole, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		return Rational{}, fmt.Errorf("rational: malformed decimal literal %q", s)
	}

	den := big.NewInt(1)
	num := whole
	if hasFrac && fracPart != "" {
		fracVal, ok := new(big.Int).SetString(fracPart, 10)
		if !ok {
			return Rational{}, fmt.Errorf("rational: malformed decimal literal %q", s)
		}
		for range fracPart {
			den.Mul(den, big.NewInt(10))
		}
		num = new(big.Int).Mul(whole, den)
		num.Add(num, fracVal)
	}

	if neg {
		num.Neg(num)
	}
	return newFromRat(new(big.Rat).SetFrac(num, den)), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
