package parser

import (
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/grammar-school-go/gs"
	"github.com/Conceptual-Machines/simfile-core/internal/logger"
	"github.com/Conceptual-Machines/simfile-core/internal/notefield"
	"github.com/Conceptual-Machines/simfile-core/internal/rational"
	"github.com/Conceptual-Machines/simfile-core/internal/simerrors"
	"github.com/Conceptual-Machines/simfile-core/internal/simfile"
)

// token is one parsed "#TAG:VALUE;" directive, held only long enough to
// defer NOTES handling until the BPM schedule is known complete.
type token struct {
	Tag   string
	Value string
	Pos   simerrors.Position
}

// directiveParser is the gs.Engine receiver for simfile directive text.
// It plays the same role as ArrangerDSL/DrummerDSL/ReaperDSL do for
// their own grammars: one receiver method per dispatched rule, building
// up state on the receiver as the engine walks the parse. Unlike those
// DSLs, a directive's tag isn't known until parse time, so a single
// directive_call rule captures the whole "#TAG:VALUE;" span and Directive
// splits it, the same division of labor ArrangerDSLParser falls back to
// for array literals it can't get the engine to shred reliably.
type directiveParser struct {
	sf      *simfile.Simfile
	baseDir string
	text    string
	cursor  int

	notesTokens   []token
	bpmSet        bool
	displayBPMSet bool
	err           error
}

// Directive is dispatched once per directive_call match, in source
// order. gs.Engine maps a rule named "directive_call" to a receiver
// method named "Directive", the same PascalCase convention
// arpeggio_call/chord_call/pattern_call/track_call use in the DSL
// parsers this is grounded on.
func (d *directiveParser) Directive(args gs.Args) error {
	if d.err != nil {
		return d.err
	}

	raw := directiveText(args)
	if raw == "" {
		d.err = fmt.Errorf("parser: directive_call produced no text")
		return d.err
	}

	pos := d.locate(raw)

	body := strings.TrimSuffix(raw, ";")
	body = strings.TrimPrefix(body, "#")
	colonIdx := strings.IndexByte(body, ':')
	if colonIdx < 0 {
		d.err = simerrors.NewSyntax(pos, "unterminated tag: missing ':'")
		return d.err
	}
	tag := strings.ToUpper(strings.TrimSpace(body[:colonIdx]))
	value := body[colonIdx+1:]

	if err := d.dispatch(tag, value, pos); err != nil {
		d.err = err
		return err
	}
	return nil
}

// directiveText recovers the matched directive text from args. The
// grammar captures it as a single bare terminal (directive_call:
// DIRECTIVE), the same shape track_params's bare NUMBER alternative
// uses in magda_dsl_grammar.go, which the engine surfaces positionally
// under the empty key. The terminal-name and first-string-value
// fallbacks mirror Arpeggio()'s own layered extraction in
// arranger_dsl_parser.go, for the same reason: the engine's exact
// keying for a single anonymous capture isn't otherwise documented.
func directiveText(args gs.Args) string {
	if v, ok := args[""]; ok {
		switch v.Kind {
		case gs.ValueString:
			return v.Str
		case gs.ValueNumber:
			return fmt.Sprintf("%v", v.Num)
		}
	}
	if v, ok := args["DIRECTIVE"]; ok && v.Kind == gs.ValueString {
		return v.Str
	}
	for _, v := range args {
		if v.Kind == gs.ValueString && strings.HasPrefix(v.Str, "#") {
			return v.Str
		}
	}
	return ""
}

// locate finds raw's position in the source text, scanning forward from
// the last match so repeated directive bodies (e.g. two identical
// #TAG:VALUE; directives) still resolve to the correct occurrence.
func (d *directiveParser) locate(raw string) simerrors.Position {
	idx := strings.Index(d.text[d.cursor:], raw)
	if idx < 0 {
		return simerrors.Position{}
	}
	abs := d.cursor + idx
	line, col := 1, 1
	for _, r := range d.text[:abs] {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	d.cursor = abs + len(raw)
	return simerrors.Position{Line: line, Column: col}
}

// dispatch applies one directive's tag/value to the simfile under
// construction, deferring NOTES entries until the caller confirms the
// BPM schedule is present.
func (d *directiveParser) dispatch(tag, value string, pos simerrors.Position) error {
	switch tag {
	case "TITLE":
		d.sf.Title = strings.TrimSpace(value)
	case "SUBTITLE":
		d.sf.Subtitle = strings.TrimSpace(value)
	case "ARTIST":
		d.sf.Artist = strings.TrimSpace(value)
	case "GENRE":
		d.sf.Genre = strings.TrimSpace(value)
	case "CREDIT":
		d.sf.Credit = strings.TrimSpace(value)
	case "MUSIC":
		d.sf.MusicPath = strings.TrimSpace(value)
	case "BANNER":
		d.sf.BannerPath = strings.TrimSpace(value)
	case "BACKGROUND":
		d.sf.BackgroundPath = strings.TrimSpace(value)
	case "CDTITLE":
		d.sf.CDTitlePath = strings.TrimSpace(value)
	case "SAMPLESTART":
		v, err := rational.ParseDecimal(value)
		if err != nil {
			return simerrors.NewLexical(pos, "SAMPLESTART: %v", err)
		}
		d.sf.SampleStart = rational.NewTime(v)
	case "SAMPLELENGTH":
		v, err := rational.ParseDecimal(value)
		if err != nil {
			return simerrors.NewLexical(pos, "SAMPLELENGTH: %v", err)
		}
		d.sf.SampleLength = rational.NewTime(v)
	case "OFFSET":
		v, err := rational.ParseDecimal(value)
		if err != nil {
			return simerrors.NewLexical(pos, "OFFSET: %v", err)
		}
		d.sf.Offset = rational.NewTime(v)
	case "DISPLAYBPM":
		db, err := parseDisplayBPM(value, pos)
		if err != nil {
			return err
		}
		d.sf.DisplayBPM = db
		d.displayBPMSet = true
	case "BPMS":
		pairs, err := notefield.ParseMeasureBPMPairs(value)
		if err != nil {
			return simerrors.NewLexical(pos, "BPMS: %v", err)
		}
		d.sf.BPMSegments = pairs
		d.bpmSet = true
	case "STOPS":
		pairs, err := notefield.ParseMeasureMeasurePairs(value)
		if err != nil {
			return simerrors.NewLexical(pos, "STOPS: %v", err)
		}
		d.sf.StopSegments = pairs
	case "NOTES":
		d.notesTokens = append(d.notesTokens, token{Tag: tag, Value: value, Pos: pos})
	default:
		d.sf.SetMeta(tag, strings.TrimSpace(value))
		logger.LogParse(d.baseDir, logger.Fields{"unknown_tag": tag})
	}
	return nil
}
