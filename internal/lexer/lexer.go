// Package lexer implements the hand-written, stateful scanner for the
// front end: a single rune cursor shared by the outer Lexer and whatever
// nested frame (interpolated string, regexp, word array, heredoc body) is
// currently active. See frame.go for the nested-frame state machine and
// heredoc.go / strings.go / wordarray.go for the delegating scanners.
package lexer

import (
	"strings"
)

// Lexer consumes source text and emits a finite sequence of Tokens. It
// owns a small stack of nested-literal frames (frame.go) and a queue of
// already-scanned tokens produced while eagerly resolving a heredoc body
// (heredoc.go); NextToken drains that queue before touching the cursor.
type Lexer struct {
	input    []rune
	pos      int
	ch       rune
	line     int
	column   int
	filename string

	atLineStart bool
	wsBefore    bool // whitespace (or start-of-line) precedes the token about to be read

	prev Token // most recent non-comment, non-trivia token emitted

	stack []frame

	buffered []Token // tokens produced ahead of the cursor (heredoc bodies)

	heredocResume *resumePoint // where to jump when the opener line's '\n' is reached

	// Heredoc opener bookkeeping (heredoc.go). A line can open more than
	// one heredoc (`foo(<<~A, <<~B)`); their bodies are scanned eagerly,
	// in order, chaining off one another via nextHeredocBodyAt, and each
	// body's tokens are queued in l.buffered right behind its HeredocBegin.
	// pendingHeredocBodies is spliced into l.buffered at the opener line's
	// newline; beginHeredoc leaves it empty.
	nextHeredocBodyAt       *resumePoint
	pendingHeredocBodies    []Token
	pendingHeredocSquiggly  bool
	pendingHeredocDash      bool
	pendingHeredocInterp    bool
}

// resumePoint records a cursor position to jump to; see heredoc.go.
type resumePoint struct {
	pos, line, column int
}

// New constructs a Lexer over the given source, attributing diagnostics to
// filename (may be empty).
func New(src, filename string) *Lexer {
	l := &Lexer{
		input:       []rune(src),
		pos:         -1,
		line:        1,
		column:      0,
		filename:    filename,
		atLineStart: true,
	}
	l.read()
	return l
}

// SetFilename updates the filename attributed to subsequently emitted spans.
func (l *Lexer) SetFilename(name string) { l.filename = name }

func (l *Lexer) read() {
	l.pos++
	prev := l.pos - 1
	n := len(l.input)

	if l.pos >= n {
		if prev >= 0 && prev < n && l.input[prev] == '\n' {
			l.line++
			l.column = 1
		} else if prev >= 0 {
			l.column++
		} else {
			l.column = 1
		}
		l.ch = 0
		return
	}

	l.ch = l.input[l.pos]
	if prev >= 0 && prev < n && l.input[prev] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

func (l *Lexer) peek() rune {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

func (l *Lexer) peekAt(offset int) rune {
	if l.pos+offset >= len(l.input) || l.pos+offset < 0 {
		return 0
	}
	return l.input[l.pos+offset]
}

func (l *Lexer) start() (line, column, pos int) { return l.line, l.column, l.pos }

func (l *Lexer) span(startLine, startColumn, startPos int) Span {
	return Span{Filename: l.filename, Line: startLine, Column: startColumn, Start: startPos, End: l.pos}
}

func (l *Lexer) makeToken(kind Kind, startLine, startColumn, startPos int, literal string) Token {
	tok := Token{
		Kind:               kind,
		Literal:            literal,
		WhitespacePrecedes: l.wsBefore,
		Span:               l.span(startLine, startColumn, startPos),
	}
	l.wsBefore = false
	if kind != Comment && kind != Doc {
		l.prev = tok
	}
	return tok
}

// Tokens returns the complete token vector for the input, applying the
// post-processing pass described in spec §4.1: comments are dropped, Doc
// comments accumulate onto the next class/def/module token, semicolons
// become Eol, and collapsible newlines are suppressed on both sides.
func (l *Lexer) Tokens() []Token {
	var pass1 []Token
	var pendingDoc strings.Builder
	havePendingDoc := false

	for {
		tok := l.NextToken()

		switch tok.Kind {
		case Comment:
			continue
		case Doc:
			if havePendingDoc {
				pendingDoc.WriteByte('\n')
			}
			pendingDoc.WriteString(tok.Literal)
			havePendingDoc = true
			continue
		case Semi:
			tok.Kind = Eol
		}

		if havePendingDoc && tok.Kind.CanHaveDoc() {
			tok.Doc = pendingDoc.String()
			havePendingDoc = false
			pendingDoc.Reset()
		} else if tok.Kind != Eol {
			havePendingDoc = false
			pendingDoc.Reset()
		}

		pass1 = append(pass1, tok)

		if tok.Kind == EOF {
			break
		}
		if isLexicalFailure(tok.Kind) {
			break
		}
	}

	out := make([]Token, 0, len(pass1))
	for i, tok := range pass1 {
		if tok.Kind == Eol {
			if len(out) > 0 && out[len(out)-1].Kind.CanPrecedeCollapsibleNewline() {
				continue
			}
			if i+1 < len(pass1) && pass1[i+1].Kind.CanFollowCollapsibleNewline() {
				continue
			}
		}
		out = append(out, tok)
	}
	return out
}

func isLexicalFailure(k Kind) bool {
	switch k {
	case Invalid, UnterminatedString, UnterminatedRegexp, UnterminatedWordArray,
		InvalidUnicodeEscape, InvalidCharacterEscape:
		return true
	default:
		return false
	}
}
