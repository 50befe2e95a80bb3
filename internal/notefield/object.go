// Package notefield implements the note-object/row data model (spec.md
// §3, components B–D): the enumerated lane contents, the fixed-width row
// built from them, the progressive positioned-row enrichment (local →
// global → timed → delta), and the sorted measure/value pair tables used
// for BPM and stop schedules.
package notefield

import "fmt"

// NoteObject is the content of one lane at one row.
type NoteObject int

const (
	// EmptyLane is an unoccupied lane ('0').
	EmptyLane NoteObject = iota
	// Tap is a single hit ('1').
	Tap
	// HoldStart begins a hold ('2').
	HoldStart
	// HoldRollEnd ends a hold or roll, unified per spec.md §9 Open
	// Question 1 (superseding any split HOLD_END/ROLL_END variant) ('3').
	HoldRollEnd
	// RollStart begins a roll ('4').
	RollStart
	// Mine is a penalty object ('M').
	Mine
	// Fake is ignored by judging ('F').
	Fake
	// Lift is judged on release ('L').
	Lift
	// HoldBody is synthesized by transform.SynthesizeHoldRollBodies; never parsed.
	HoldBody
	// RollBody is synthesized by transform.SynthesizeHoldRollBodies; never parsed.
	RollBody
)

// code maps each NoteObject to its one-character textual form.
var code = map[NoteObject]byte{
	EmptyLane:   '0',
	Tap:         '1',
	HoldStart:   '2',
	HoldRollEnd: '3',
	RollStart:   '4',
	Mine:        'M',
	Fake:        'F',
	Lift:        'L',
	HoldBody:    'H',
	RollBody:    'R',
}

// fromCode is the inverse of code, populated once at init.
var fromCode = func() map[byte]NoteObject {
	m := make(map[byte]NoteObject, len(code))
	for obj, c := range code {
		m[c] = obj
	}
	return m
}()

// Code returns the one-character textual form of o.
func (o NoteObject) Code() byte {
	c, ok := code[o]
	if !ok {
		return '?'
	}
	return c
}

func (o NoteObject) String() string { return string(o.Code()) }

// ParseNoteObject converts a single row character into a NoteObject.
// Only the characters a file may legally contain are accepted here
// ('0','1','2','3','4','M','F','L'); 'H' and 'R' are synthesized objects
// that a freshly-parsed chart must never contain (spec.md §3 invariant).
func ParseNoteObject(c byte) (NoteObject, error) {
	switch c {
	case '0', '1', '2', '3', '4', 'M', 'F', 'L':
		return fromCode[c], nil
	default:
		return 0, fmt.Errorf("notefield: %q is not a valid row character", c)
	}
}

// IsDecorative reports membership in DECORATIVE = {EMPTY, FAKE, MINE}.
func (o NoteObject) IsDecorative() bool {
	return o == EmptyLane || o == Fake || o == Mine
}

// IsLongBody reports membership in LONG_BODY = {HOLD_BODY, ROLL_BODY}.
func (o NoteObject) IsLongBody() bool {
	return o == HoldBody || o == RollBody
}

// IsLongEnd reports membership in LONG_ENDS = {HOLD_START, ROLL_START, HOLD_ROLL_END}.
func (o NoteObject) IsLongEnd() bool {
	return o == HoldStart || o == RollStart || o == HoldRollEnd
}

// IsJudgeNonImportant reports membership in
// JUDGE_NON_IMPORTANT = DECORATIVE ∪ LONG_BODY ∪ {HOLD_ROLL_END}.
func (o NoteObject) IsJudgeNonImportant() bool {
	return o.IsDecorative() || o.IsLongBody() || o == HoldRollEnd
}

// IsJudgeImportant is the complement used by the glossary's definition of
// a judge-important object (TAP, HOLD_START, ROLL_START, LIFT).
func (o NoteObject) IsJudgeImportant() bool {
	return o == Tap || o == HoldStart || o == RollStart || o == Lift
}
