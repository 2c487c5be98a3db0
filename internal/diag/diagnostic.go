// Package diag holds the diagnostic vocabulary shared by the lexer and
// parser: source spans, severities, stable codes, and the caret-annotated
// SyntaxError the parser raises on any failure.
package diag

import "fmt"

// Stage identifies which front-end phase produced a diagnostic.
type Stage string

const (
	StageLexer  Stage = "lexer"
	StageParser Stage = "parser"
)

// Severity captures how impactful a diagnostic is. The parser only ever
// raises SeverityError (spec: no recovery), but Severity is kept general
// so the Formatter can also render lexer-level notes during debugging.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic, independent of its
// (possibly reworded) Message.
type Code string

const (
	CodeUnexpectedToken      Code = "PARSER_UNEXPECTED_TOKEN"
	CodeUnterminatedString   Code = "LEXER_UNTERMINATED_STRING"
	CodeUnterminatedRegexp   Code = "LEXER_UNTERMINATED_REGEXP"
	CodeUnterminatedWordArr  Code = "LEXER_UNTERMINATED_WORD_ARRAY"
	CodeUnterminatedHeredoc  Code = "LEXER_UNTERMINATED_HEREDOC"
	CodeInvalidUnicodeEscape Code = "LEXER_INVALID_UNICODE_ESCAPE"
	CodeInvalidCharEscape    Code = "LEXER_INVALID_CHARACTER_ESCAPE"
	CodeInvalidCharacter     Code = "LEXER_INVALID_CHARACTER"
	CodeMalformedNumber      Code = "LEXER_MALFORMED_NUMBER"
	CodeInvalidLHS           Code = "PARSER_INVALID_LHS"
	CodeMalformedConstruct   Code = "PARSER_MALFORMED_CONSTRUCT"
)

// Span is an immutable (file, line, column) triple plus a byte-offset
// range, carried by every Token and Node. Line/Column are 1-based once
// they reach a diagnostic; the lexer tracks them 1-based internally too
// (see lexer.Span), so no conversion happens at this boundary.
type Span struct {
	Filename string
	Line     int
	Column   int
	Start    int
	End      int
}

// IsValid reports whether the span carries a real line number.
func (s Span) IsValid() bool { return s.Line > 0 }

// String renders "file:line:column".
func (s Span) String() string {
	file := s.Filename
	if file == "" {
		file = "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", file, s.Line, s.Column)
}

// SyntaxError is the single error surface the parser raises (spec §7).
// Its Error() rendering matches the canonical one-line-plus-excerpt format:
//
//	FILE#LINE: syntax error, unexpected <kind> '<lit>' (expected: '<thing>')
//	<source-line>
//	<spaces>^ here, expected '<thing>'
type SyntaxError struct {
	Code Code

	Span Span

	// Unexpected describes the offending token, e.g. `tIDENTIFIER 'foo'`.
	Unexpected string

	// Expected is the "expected: '<thing>'" phrase; empty when the
	// message is a generic "error" rather than an expectation mismatch.
	Expected string

	// Opener/Closer are set for unterminated-literal errors: Opener
	// names what was opened ("string", "regexp", "word array", a
	// heredoc tag, ...) and Closer names the delimiter the lexer/parser
	// was looking for.
	Opener string
	Closer string

	// SourceLine is the full text of the offending line, used to render
	// the caret excerpt. May be empty if the caller has no source text.
	SourceLine string
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("%s#%d: syntax error, unexpected %s", e.Span.Filename, e.Span.Line, e.Unexpected)
	if e.Opener != "" {
		msg = fmt.Sprintf("%s#%d: syntax error, unterminated %s (expected: '%s')",
			e.Span.Filename, e.Span.Line, e.Opener, e.Closer)
	} else if e.Expected != "" {
		msg += fmt.Sprintf(" (expected: '%s')", e.Expected)
	}

	if e.SourceLine == "" {
		return msg
	}

	col := e.Span.Column
	if col < 1 {
		col = 1
	}
	caret := make([]byte, col-1)
	for i := range caret {
		caret[i] = ' '
	}
	expected := e.Expected
	if e.Closer != "" {
		expected = e.Closer
	}
	return fmt.Sprintf("%s\n%s\n%s^ here, expected '%s'", msg, e.SourceLine, caret, expected)
}
