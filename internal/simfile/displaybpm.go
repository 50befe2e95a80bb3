package simfile

import "github.com/Conceptual-Machines/simfile-core/internal/rational"

// DisplayBPM models the DISPLAYBPM tag's tri-state value: a variable BPM
// song (rendered as "*" in-game), a single fixed value, or a lo:hi range
// (spec.md §4.F, supplemented per SPEC_FULL.md §4).
type DisplayBPM struct {
	variable bool
	lo, hi   rational.BPM
}

// NewDisplayBPMVariable builds the "*" variant.
func NewDisplayBPMVariable() DisplayBPM { return DisplayBPM{variable: true} }

// NewDisplayBPMSingle builds a fixed single-value display BPM.
func NewDisplayBPMSingle(v rational.BPM) DisplayBPM { return DisplayBPM{lo: v, hi: v} }

// NewDisplayBPMRange builds a lo:hi display BPM range.
func NewDisplayBPMRange(lo, hi rational.BPM) DisplayBPM { return DisplayBPM{lo: lo, hi: hi} }

// IsVariable reports the "*" case.
func (d DisplayBPM) IsVariable() bool { return d.variable }

// Range returns the (lo, hi) pair. For the variable case both are the
// zero BPM; callers should check IsVariable first.
func (d DisplayBPM) Range() (lo, hi rational.BPM) { return d.lo, d.hi }

// SynthesizeDisplayBPM computes (min(bpm), max(bpm)) across a chart's BPM
// schedule, used when the DISPLAYBPM tag is absent (spec.md §4.F).
func SynthesizeDisplayBPM(bpms []rational.BPM) DisplayBPM {
	if len(bpms) == 0 {
		return NewDisplayBPMVariable()
	}
	lo, hi := bpms[0], bpms[0]
	for _, b := range bpms[1:] {
		if b.R.LessThan(lo.R) {
			lo = b
		}
		if hi.R.LessThan(b.R) {
			hi = b
		}
	}
	return NewDisplayBPMRange(lo, hi)
}
