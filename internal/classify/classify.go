// Package classify implements row classification (spec.md §4.I, component
// I): tagging a width-4 PureRow with a bitflag set describing its tap,
// hold, and roll shape.
package classify

import (
	"github.com/Conceptual-Machines/simfile-core/internal/notefield"
	"github.com/Conceptual-Machines/simfile-core/internal/simerrors"
)

// Flags is a set of classification tags, combined with bitwise OR.
type Flags uint16

// None is the empty flag set.
const None Flags = 0

const (
	// Single marks exactly one tap.
	Single Flags = 1 << iota
	// OHTJump marks two taps occupying a one-hand-trill lane pair ({0,1}
	// or {2,3}).
	OHTJump
	// THTJump marks two taps occupying any other lane pair.
	THTJump
	// Hand marks three taps.
	Hand
	// Quad marks four taps.
	Quad
	// Hold marks exactly one open hold, or three or more (no HAND/QUAD
	// equivalent is defined for holds at width 4).
	Hold
	// OHTHold marks two open holds occupying a one-hand-trill lane pair.
	OHTHold
	// THTHold marks two open holds occupying any other lane pair.
	THTHold
	// Roll marks exactly one open roll, or three or more.
	Roll
	// OHTRoll marks two open rolls occupying a one-hand-trill lane pair.
	OHTRoll
	// THTRoll marks two open rolls occupying any other lane pair.
	THTRoll
	// Release marks the presence of at least one HOLD_ROLL_END.
	Release
)

// Width is the only row width classify supports.
const Width = 4

// Classify tags row with its flag set. row must have Width() == 4;
// every other width reports a structural error, since the one-hand-trill
// lane pairs {0,1}/{2,3} are only meaningful for a 4-lane field.
func Classify(row notefield.Row) (Flags, error) {
	if row.Width() != Width {
		return None, simerrors.NewStructural("classify: row width %d unsupported, only width %d is classifiable", row.Width(), Width)
	}

	flags := classifyCount(row.FindLanes(notefield.Tap), Single, OHTJump, THTJump, Hand, Quad)
	flags |= classifyCount(row.FindLanes(notefield.HoldStart), Hold, OHTHold, THTHold, Hold, Hold)
	flags |= classifyCount(row.FindLanes(notefield.RollStart), Roll, OHTRoll, THTRoll, Roll, Roll)

	if len(row.FindLanes(notefield.HoldRollEnd)) > 0 {
		flags |= Release
	}

	return flags, nil
}

// classifyCount picks the single/OHT/THT/hand/quad flag matching len(lanes),
// using isOneHandTrill to disambiguate the 2-lane case.
func classifyCount(lanes []int, single, oht, tht, hand, quad Flags) Flags {
	switch len(lanes) {
	case 0:
		return None
	case 1:
		return single
	case 2:
		if isOneHandTrill(lanes) {
			return oht
		}
		return tht
	case 3:
		return hand
	default: // 4 or more
		return quad
	}
}

// isOneHandTrill reports whether exactly two lanes occupy {0,1} or {2,3}.
func isOneHandTrill(lanes []int) bool {
	if len(lanes) != 2 {
		return false
	}
	a, b := lanes[0], lanes[1]
	if a > b {
		a, b = b, a
	}
	return (a == 0 && b == 1) || (a == 2 && b == 3)
}
