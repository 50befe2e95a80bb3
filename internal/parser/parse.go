// Package parser parses simfile text into a Simfile using a Lark grammar
// run through grammar-school-go's Engine (spec.md §4.F, component F), the
// same parser-generator the teacher's arranger/drummer/reaper DSLs use,
// rather than a hand-rolled lexer.
package parser

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/Conceptual-Machines/grammar-school-go/gs"
	"github.com/Conceptual-Machines/simfile-core/internal/rational"
	"github.com/Conceptual-Machines/simfile-core/internal/simerrors"
	"github.com/Conceptual-Machines/simfile-core/internal/simfile"
	"github.com/Conceptual-Machines/simfile-core/internal/timing"
)

// ParseFile reads path and parses it, using path's containing directory
// as the Simfile's BaseDir for asset resolution — no process working
// directory is ever changed (Design Notes §9).
func ParseFile(path string) (*simfile.Simfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, simerrors.NewIO(path, err)
	}
	return ParseText(string(data), filepath.Dir(path))
}

// ParseText parses simfile source text directly, with baseDir supplied
// explicitly by the caller (e.g. when the text did not come from a file
// on disk).
func ParseText(text string, baseDir string) (*simfile.Simfile, error) {
	sf := simfile.New(baseDir)
	dp := &directiveParser{sf: sf, baseDir: baseDir, text: text}

	larkParser := gs.NewLarkParser()
	engine, err := gs.NewEngine(simfileGrammar(), dp, larkParser)
	if err != nil {
		return nil, simerrors.NewSyntax(simerrors.Position{}, "grammar: %v", err)
	}

	if execErr := engine.Execute(context.Background(), text); execErr != nil {
		if dp.err != nil {
			return nil, dp.err
		}
		return nil, simerrors.NewSyntax(simerrors.Position{}, "%v", execErr)
	}
	if dp.err != nil {
		return nil, dp.err
	}

	if !dp.bpmSet {
		return nil, simerrors.NewStructural("empty BPM schedule")
	}
	if !dp.displayBPMSet {
		bpms := make([]rational.BPM, len(sf.BPMSegments))
		for i, p := range sf.BPMSegments {
			bpms[i] = p.BPM
		}
		sf.DisplayBPM = simfile.SynthesizeDisplayBPM(bpms)
	}

	for _, tok := range dp.notesTokens {
		pure, err := parseNotesEntry(tok.Value, tok.Pos)
		if err != nil {
			return nil, err
		}
		timed, err := timing.Resolve(pure.Notefield, sf.BPMSegments, sf.StopSegments, sf.Offset)
		if err != nil {
			return nil, err
		}
		sf.Charts = append(sf.Charts, simfile.NewAugmentedChart(pure, timed, sf.BPMSegments, sf.StopSegments, sf.Offset))
	}

	return sf, nil
}

// parseDisplayBPM handles the "*" | decimal | "decimal:decimal" DISPLAYBPM
// shapes (spec.md §6).
func parseDisplayBPM(value string, pos simerrors.Position) (simfile.DisplayBPM, error) {
	v := strings.TrimSpace(value)
	if v == "*" {
		return simfile.NewDisplayBPMVariable(), nil
	}

	if lo, hi, ok := strings.Cut(v, ":"); ok {
		loR, err := rational.ParseDecimal(lo)
		if err != nil {
			return simfile.DisplayBPM{}, simerrors.NewLexical(pos, "DISPLAYBPM: %v", err)
		}
		hiR, err := rational.ParseDecimal(hi)
		if err != nil {
			return simfile.DisplayBPM{}, simerrors.NewLexical(pos, "DISPLAYBPM: %v", err)
		}
		return simfile.NewDisplayBPMRange(rational.NewBPM(loR), rational.NewBPM(hiR)), nil
	}

	single, err := rational.ParseDecimal(v)
	if err != nil {
		return simfile.DisplayBPM{}, simerrors.NewLexical(pos, "DISPLAYBPM: %v", err)
	}
	return simfile.NewDisplayBPMSingle(rational.NewBPM(single)), nil
}
