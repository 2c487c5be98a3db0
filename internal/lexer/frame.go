package lexer

// modeKind discriminates the nested-lexer frames pushed onto Lexer.stack.
// This is the explicit state-machine rendition of the "sub-lexer" concept
// from spec §4.1/§9: rather than heap-allocated lexer objects pointing at
// each other, a frame is a value pushed on entry to an interpolated
// literal and popped on its matching end.
type modeKind int

const (
	modeString    modeKind = iota // inside "...", '...', `...`, /.../, %q(), heredoc body, ...
	modeEvString                  // inside a #{ ... } embedded expression
	modeWordArray                 // inside %w[] / %W[] / %i[] / %I[]
)

// literalStyle records which literal family a modeString frame belongs to,
// since the closing token kind and escape rules differ per family.
type literalStyle int

const (
	styleString literalStyle = iota
	styleShell
	styleSymbol
	styleRegexp
)

// frame is one entry in the nested-lexer stack.
type frame struct {
	mode  modeKind
	style literalStyle

	open  rune // opening delimiter (equal to close for unpaired ones), 0 for heredocs
	close rune // delimiter (or matching close bracket) that ends the frame
	depth int  // nesting depth for paired delimiters, e.g. %q(a(b)c)

	interpolate bool // false for '...', %q(), <<'TAG', %w[]

	// modeEvString bookkeeping: track brace depth so a hash literal or
	// block inside #{ ... } doesn't prematurely close the interpolation.
	braceDepth int

	// modeWordArray bookkeeping.
	wordsAreSymbols bool

	emittedBegin bool // whether the *Begin token has already been returned

	// Heredoc body bookkeeping (heredoc.go): a heredoc frame is a
	// modeString frame whose close condition is "this physical line,
	// after optional dedent, equals heredocTag" rather than a close rune.
	isHeredoc         bool
	heredocTag        string
	heredocDedentMode bool // true for <<-TAG / <<~TAG: terminator may be indented
	heredocDedent     int  // <<~TAG only: leading columns stripped from each content line
}

func (l *Lexer) pushFrame(f frame) { l.stack = append(l.stack, f) }

func (l *Lexer) popFrame() {
	if len(l.stack) > 0 {
		l.stack = l.stack[:len(l.stack)-1]
	}
}

func (l *Lexer) topFrame() *frame {
	if len(l.stack) == 0 {
		return nil
	}
	return &l.stack[len(l.stack)-1]
}

func closingDelimiter(open rune) rune {
	switch open {
	case '(':
		return ')'
	case '[':
		return ']'
	case '{':
		return '}'
	case '<':
		return '>'
	default:
		return open
	}
}

func isPairedDelimiter(open rune) bool {
	switch open {
	case '(', '[', '{', '<':
		return true
	default:
		return false
	}
}
