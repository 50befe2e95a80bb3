package parser

import (
	"strconv"
	"strings"

	"github.com/Conceptual-Machines/simfile-core/internal/notefield"
	"github.com/Conceptual-Machines/simfile-core/internal/rational"
	"github.com/Conceptual-Machines/simfile-core/internal/simerrors"
	"github.com/Conceptual-Machines/simfile-core/internal/simfile"
)

// parseNotesEntry transforms one NOTES tag's value into a PureChart.
// value has the shape "type:author:diff_name:diff_value:radar:measure_block".
func parseNotesEntry(value string, pos simerrors.Position) (simfile.PureChart, error) {
	fields := strings.SplitN(value, ":", 6)
	if len(fields) != 6 {
		return simfile.PureChart{}, simerrors.NewSyntax(pos, "NOTES requires 6 colon-separated fields, got %d", len(fields))
	}

	stepArtist := strings.TrimSpace(fields[1])
	diffName := strings.TrimSpace(fields[2])

	diffValueStr := strings.TrimSpace(fields[3])
	diffValue := 0
	if diffValueStr != "" {
		v, err := strconv.Atoi(diffValueStr)
		if err != nil {
			return simfile.PureChart{}, simerrors.NewLexical(pos, "NOTES difficulty value %q is not an integer", diffValueStr)
		}
		diffValue = v
	}

	rows, err := parseMeasureBlock(fields[5], pos)
	if err != nil {
		return simfile.PureChart{}, err
	}
	if err := checkLongNotesMatched(rows); err != nil {
		return simfile.PureChart{}, err
	}

	return simfile.PureChart{
		StepArtist: stepArtist,
		DiffName:   diffName,
		DiffValue:  diffValue,
		Notefield:  rows,
	}, nil
}

// parseMeasureBlock splits block on ',' into per-measure row groups, then
// each group's lines into rows, assigning each row a GlobalPosition of
// measure_index + row_index/rows_in_measure.
func parseMeasureBlock(block string, pos simerrors.Position) ([]notefield.GlobalRow, error) {
	var rows []notefield.GlobalRow
	var width int

	for measureIndex, measureChunk := range strings.Split(block, ",") {
		var lines []string
		for _, line := range strings.Split(measureChunk, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				lines = append(lines, line)
			}
		}

		n := len(lines)
		if n == 0 {
			return nil, simerrors.NewSyntax(pos, "measure %d has no rows", measureIndex)
		}

		for rowIndex, line := range lines {
			row, err := notefield.ParseRow(line)
			if err != nil {
				return nil, simerrors.NewLexical(pos, "measure %d row %d: %v", measureIndex, rowIndex, err)
			}
			if len(rows) == 0 {
				width = row.Width()
			} else if row.Width() != width {
				return nil, simerrors.NewStructural("row width changes within a chart: %d then %d", width, row.Width())
			}

			local := rational.New(int64(rowIndex), int64(n))
			global := rational.New(int64(measureIndex), 1).Add(local)
			gp, err := rational.NewGlobalPosition(global)
			if err != nil {
				return nil, simerrors.NewStructural("measure %d row %d: %v", measureIndex, rowIndex, err)
			}

			rows = append(rows, notefield.NewGlobalRow(row, gp))
		}
	}

	return rows, nil
}

// checkLongNotesMatched enforces spec.md §3's invariant: every
// HOLD_START/ROLL_START on a lane has a later HOLD_ROLL_END on the same
// lane before the chart ends.
func checkLongNotesMatched(rows []notefield.GlobalRow) error {
	open := make(map[int]bool)
	for _, r := range rows {
		for _, lane := range r.Row.FindLanes(notefield.HoldStart, notefield.RollStart) {
			open[lane] = true
		}
		for _, lane := range r.Row.FindLanes(notefield.HoldRollEnd) {
			if !open[lane] {
				return simerrors.NewStructural("unmatched HOLD_ROLL_END at lane %d", lane)
			}
			delete(open, lane)
		}
	}
	for lane := range open {
		return simerrors.NewStructural("unmatched HOLD_START/ROLL_START at lane %d", lane)
	}
	return nil
}
