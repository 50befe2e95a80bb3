package notefield

import "github.com/Conceptual-Machines/simfile-core/internal/rational"

// LocalRow is a PureRow plus its LocalPosition within a measure
// (spec.md §3/§4.C).
type LocalRow struct {
	Row      Row
	Position rational.LocalPosition
}

// NewLocalRow builds a LocalRow via the explicit with_position
// constructor style Design Notes §9 prescribes in place of subclassing.
func NewLocalRow(row Row, pos rational.LocalPosition) LocalRow {
	return LocalRow{Row: row, Position: pos}
}

// GlobalRow is a PureRow plus its chart-wide GlobalPosition.
type GlobalRow struct {
	Row      Row
	Position rational.GlobalPosition
}

// NewGlobalRow builds a GlobalRow.
func NewGlobalRow(row Row, pos rational.GlobalPosition) GlobalRow {
	return GlobalRow{Row: row, Position: pos}
}

// RowValue returns the underlying PureRow, satisfying transform's generic
// row-carrier constraint.
func (g GlobalRow) RowValue() Row { return g.Row }

// WithRow returns a copy of g with its row replaced by row, satisfying
// transform's generic row-carrier constraint.
func (g GlobalRow) WithRow(row Row) GlobalRow { return GlobalRow{Row: row, Position: g.Position} }

// PositionInvariant returns pos replaced with the position-comparison
// sentinel, for comparing two rows modulo position.
func (g GlobalRow) PositionInvariant() rational.Maybe[rational.GlobalPosition] {
	return rational.PositionInvariant()
}

// PositionValue returns the row's own position wrapped as an exact
// comparison value, the counterpart to PositionInvariant.
func (g GlobalRow) PositionValue() rational.Maybe[rational.GlobalPosition] {
	return rational.Exact(g.Position)
}

// GlobalTimedRow is a GlobalRow plus the resolved wall-clock Time it
// occurs at (spec.md §4.C — produced by the timing resolver, component G).
type GlobalTimedRow struct {
	Row      Row
	Position rational.GlobalPosition
	Time     rational.Time
}

// NewGlobalTimedRow builds a GlobalTimedRow from a GlobalRow plus Time —
// the explicit with_time constructor.
func NewGlobalTimedRow(row GlobalRow, t rational.Time) GlobalTimedRow {
	return GlobalTimedRow{Row: row.Row, Position: row.Position, Time: t}
}

// RowValue returns the underlying PureRow, satisfying transform's generic
// row-carrier constraint.
func (g GlobalTimedRow) RowValue() Row { return g.Row }

// WithRow returns a copy of g with its row replaced by row, satisfying
// transform's generic row-carrier constraint.
func (g GlobalTimedRow) WithRow(row Row) GlobalTimedRow {
	return GlobalTimedRow{Row: row, Position: g.Position, Time: g.Time}
}

// GlobalRow discards the Time field, recovering the untimed view.
func (g GlobalTimedRow) GlobalRow() GlobalRow {
	return GlobalRow{Row: g.Row, Position: g.Position}
}

// TimeValue returns the row's own time wrapped as an exact comparison
// value.
func (g GlobalTimedRow) TimeValue() rational.Maybe[rational.Time] {
	return rational.Exact(g.Time)
}

// TimeInvariant returns the time-comparison sentinel, for comparing two
// rows modulo time.
func (g GlobalTimedRow) TimeInvariant() rational.Maybe[rational.Time] {
	return rational.TimeInvariant()
}

// GlobalDeltaRow is a GlobalTimedRow plus the Time until the next row in
// its sequence (0 for the last row); spec.md §4.C.
type GlobalDeltaRow struct {
	Row      Row
	Position rational.GlobalPosition
	Time     rational.Time
	Delta    rational.Time
}

// NewGlobalDeltaRow builds a GlobalDeltaRow — the explicit with_delta
// constructor — from a timed row plus its delta to the next row.
func NewGlobalDeltaRow(row GlobalTimedRow, delta rational.Time) GlobalDeltaRow {
	return GlobalDeltaRow{Row: row.Row, Position: row.Position, Time: row.Time, Delta: delta}
}

// RowValue returns the underlying PureRow, satisfying transform's generic
// row-carrier constraint.
func (g GlobalDeltaRow) RowValue() Row { return g.Row }

// WithRow returns a copy of g with its row replaced by row, satisfying
// transform's generic row-carrier constraint.
func (g GlobalDeltaRow) WithRow(row Row) GlobalDeltaRow {
	return GlobalDeltaRow{Row: row, Position: g.Position, Time: g.Time, Delta: g.Delta}
}

// GlobalTimedRow discards the Delta field, recovering the timed-only view.
func (g GlobalDeltaRow) GlobalTimedRow() GlobalTimedRow {
	return GlobalTimedRow{Row: g.Row, Position: g.Position, Time: g.Time}
}

// DeltaValue returns the row's own delta wrapped as an exact comparison
// value.
func (g GlobalDeltaRow) DeltaValue() rational.Maybe[rational.Time] {
	return rational.Exact(g.Delta)
}

// DeltaInvariant returns the delta-comparison sentinel, for comparing two
// rows modulo delta.
func (g GlobalDeltaRow) DeltaInvariant() rational.Maybe[rational.Time] {
	return rational.DeltaInvariant()
}

// RowsToGlobalDeltaRows derives a DeltaNotefield from a TimedNotefield:
// row i's delta is rows[i+1].Time - rows[i].Time; the last row's delta is
// 0 (spec.md §4.H "Delta sequence").
func RowsToGlobalDeltaRows(rows []GlobalTimedRow) []GlobalDeltaRow {
	out := make([]GlobalDeltaRow, len(rows))
	for i, r := range rows {
		delta := rational.ZeroTime()
		if i < len(rows)-1 {
			delta = rows[i+1].Time.Sub(r.Time)
		}
		out[i] = NewGlobalDeltaRow(r, delta)
	}
	return out
}
