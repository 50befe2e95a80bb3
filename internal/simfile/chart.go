package simfile

import (
	"github.com/Conceptual-Machines/simfile-core/internal/notefield"
	"github.com/Conceptual-Machines/simfile-core/internal/rational"
	"github.com/google/uuid"
)

// PureChart is one difficulty's notes before timing resolution —
// spec.md §3: step_artist?, diff_name, diff_value, note_field: [GlobalRow].
type PureChart struct {
	StepArtist string // empty if the simfile omits it
	DiffName   string
	DiffValue  int
	Notefield  []notefield.GlobalRow
}

// AugmentedChart is a PureChart whose note_field has been timed, plus the
// timing-schedule snapshot used to compute it (spec.md §3/§4.E). Each
// chart owns its own copy of the schedule it was resolved against; the
// Simfile owns the canonical schedule it was copied from.
type AugmentedChart struct {
	ID uuid.UUID // correlation id only, never used for equality/ordering

	StepArtist string
	DiffName   string
	DiffValue  int
	Notefield  []notefield.GlobalTimedRow

	BPMSegments  []notefield.MeasureBPMPair
	StopSegments []notefield.MeasureMeasurePair
	Offset       rational.Time
}

// NewAugmentedChart assembles an AugmentedChart from a resolved notefield
// plus the schedule snapshot it was resolved against.
func NewAugmentedChart(
	pure PureChart,
	timed []notefield.GlobalTimedRow,
	bpms []notefield.MeasureBPMPair,
	stops []notefield.MeasureMeasurePair,
	offset rational.Time,
) *AugmentedChart {
	return &AugmentedChart{
		ID:           uuid.New(),
		StepArtist:   pure.StepArtist,
		DiffName:     pure.DiffName,
		DiffValue:    pure.DiffValue,
		Notefield:    timed,
		BPMSegments:  bpms,
		StopSegments: stops,
		Offset:       offset,
	}
}
