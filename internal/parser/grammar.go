package parser

// simfileGrammar returns the Lark grammar for simfile directive text
// (spec.md §6). Every directive is `#TAG:VALUE;`, where VALUE may itself
// span multiple lines and carry its own colons and commas (the NOTES
// measure block relies on this) — so the grammar captures a whole
// directive as a single terminal and leaves TAG/VALUE splitting to the
// receiver, the same division of labor the JSFX grammar draws between a
// line-shaped terminal and the Go code that interprets it
// (internal/llm/jsfx_grammar.go's REST_OF_LINE).
func simfileGrammar() string {
	return `
// Simfile directive grammar - one rule, one receiver method.
// A file is a sequence of "#TAG:VALUE;" directives; VALUE is free-form
// and may contain newlines, colons, and commas (NOTES measure blocks).

start: directive_call*

directive_call: DIRECTIVE

DIRECTIVE: /#[^:]+:[^;]*;/

COMMENT: /\/\/[^\n]*/
%ignore COMMENT

WS: /[ \t\r\n]+/
%ignore WS
`
}
