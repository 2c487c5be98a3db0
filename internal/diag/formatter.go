package diag

import (
	"fmt"
	"io"
	"strings"
)

// Formatter renders a SyntaxError with a small amount of extra context
// (one line before, one line after) around the caret excerpt that
// SyntaxError.Error already produces on its own. It is the richer,
// human-facing rendering used by the CLI driver; SyntaxError.Error stays
// the minimal canonical form other callers can match against.
type Formatter struct {
	// Source holds the full text of the file being diagnosed, keyed by
	// filename, so multi-file driver invocations can reuse one Formatter.
	Source map[string]string
}

// NewFormatter returns a Formatter with no preloaded sources.
func NewFormatter() *Formatter {
	return &Formatter{Source: make(map[string]string)}
}

// Format writes a caret-annotated rendering of err to w.
func (f *Formatter) Format(w io.Writer, err *SyntaxError) {
	fmt.Fprintf(w, "error[%s]: %s\n", err.Code, headline(err))
	fmt.Fprintf(w, "  --> %s\n", err.Span.String())

	src := f.Source[err.Span.Filename]
	lines := strings.Split(src, "\n")
	if err.Span.Line < 1 || err.Span.Line > len(lines) {
		if err.SourceLine != "" {
			f.printLine(w, err.Span.Line, err.SourceLine, err.Span.Column)
		}
		return
	}

	width := len(fmt.Sprintf("%d", err.Span.Line+1))
	fmt.Fprintf(w, " %s|\n", strings.Repeat(" ", width))
	if err.Span.Line > 1 {
		fmt.Fprintf(w, " %*d| %s\n", width, err.Span.Line-1, lines[err.Span.Line-2])
	}
	f.printLineNumbered(w, width, err.Span.Line, lines[err.Span.Line-1], err.Span.Column)
	if err.Span.Line < len(lines) {
		fmt.Fprintf(w, " %*d| %s\n", width, err.Span.Line+1, lines[err.Span.Line])
	}
}

func headline(err *SyntaxError) string {
	if err.Opener != "" {
		return fmt.Sprintf("unterminated %s, expected '%s'", err.Opener, err.Closer)
	}
	if err.Expected != "" {
		return fmt.Sprintf("unexpected %s, expected '%s'", err.Unexpected, err.Expected)
	}
	return fmt.Sprintf("unexpected %s", err.Unexpected)
}

func (f *Formatter) printLine(w io.Writer, line int, text string, column int) {
	f.printLineNumbered(w, len(fmt.Sprintf("%d", line)), line, text, column)
}

func (f *Formatter) printLineNumbered(w io.Writer, width, line int, text string, column int) {
	fmt.Fprintf(w, " %*d| %s\n", width, line, text)
	if column < 1 {
		column = 1
	}
	fmt.Fprintf(w, " %s| %s^\n", strings.Repeat(" ", width), strings.Repeat(" ", column-1))
}
