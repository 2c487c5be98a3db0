package lexer

import "strings"

// openQuoted begins a quoted literal. A plain, non-interpolating string
// ('...', %q) is scanned to its end here and returned as one String token.
// Any other literal pushes a modeString frame and emits the *Begin
// boundary token. Subsequent calls
// to NextToken are routed to lexStringFrame until the matching close
// delimiter is found, at which point the frame is popped and a *End token
// is emitted (spec §4.1 "Interpolation handoff").
func (l *Lexer) openQuoted(startLine, startCol, startPos int, open rune, style literalStyle, interpolate bool) Token {
	l.read() // consume opening delimiter
	close := closingDelimiter(open)
	depth := 0
	if isPairedDelimiter(open) {
		depth = 1
	}
	l.pushFrame(frame{
		mode:        modeString,
		style:       style,
		open:        open,
		close:       close,
		depth:       depth,
		interpolate: interpolate,
	})
	if style == styleString && !interpolate {
		// '...' and %q(...) cannot interpolate, so the whole body is
		// returned as one String token instead of a Begin/content/End run.
		ws := l.wsBefore
		var buf strings.Builder
		for {
			tok := l.lexStringFrame(l.topFrame())
			switch tok.Kind {
			case StringContent:
				buf.WriteString(tok.Literal)
			case StringEnd:
				str := l.makeToken(String, startLine, startCol, startPos, buf.String())
				str.WhitespacePrecedes = ws
				return str
			default:
				return tok
			}
		}
	}
	return l.makeToken(beginKindFor(style), startLine, startCol, startPos, string(open))
}

func beginKindFor(style literalStyle) Kind {
	switch style {
	case styleShell:
		return ShellBegin
	case styleSymbol:
		return SymbolBegin
	case styleRegexp:
		return RegexpBegin
	default:
		return StringBegin
	}
}

func endKindFor(style literalStyle) Kind {
	switch style {
	case styleShell:
		return ShellEnd
	case styleSymbol:
		return SymbolEnd
	case styleRegexp:
		return RegexpEnd
	default:
		return StringEnd
	}
}

// lexStringFrame scans the body of a modeString frame: a run of literal
// content, an escape sequence, a #{ interpolation boundary, or the closing
// delimiter.
func (l *Lexer) lexStringFrame(top *frame) Token {
	if top.isHeredoc {
		return l.lexHeredocBody(top)
	}

	startLine, startCol, startPos := l.start()

	if l.ch == 0 {
		l.popFrame()
		tok := l.makeToken(UnterminatedString, startLine, startCol, startPos, "")
		return tok
	}

	if l.ch == top.close && top.depth <= 1 {
		// Closing delimiter at the outermost level. Nested openers and
		// closers of the same family, e.g. %q(a(b)c), are counted and
		// consumed as ordinary content by the loop below.
		l.read() // consume closing delimiter
		l.popFrame()
		if top.style == styleRegexp {
			return l.finishRegexpEnd(startLine, startCol, startPos)
		}
		return l.makeToken(endKindFor(top.style), startLine, startCol, startPos, string(top.close))
	}

	if top.interpolate && l.ch == '#' && l.peek() == '{' {
		l.read()
		l.read()
		l.pushFrame(frame{mode: modeEvString})
		return l.makeToken(EvaluateToStringBegin, startLine, startCol, startPos, "#{")
	}

	var buf strings.Builder
	for {
		if l.ch == 0 {
			break
		}
		if top.interpolate && l.ch == '#' && l.peek() == '{' {
			break
		}
		if isPairedDelimiter(top.open) && l.ch == top.open {
			buf.WriteRune(l.ch)
			top.depth++
			l.read()
			continue
		}
		if l.ch == top.close {
			if isPairedDelimiter(top.open) {
				if top.depth-1 <= 0 {
					break
				}
				top.depth--
				buf.WriteRune(l.ch)
				l.read()
				continue
			}
			break
		}
		if top.interpolate && l.ch == '\\' {
			decoded, invalid, invalidKind := l.decodeEscape(top.style)
			if invalid {
				tok := l.makeToken(invalidKind, startLine, startCol, startPos, buf.String())
				return tok
			}
			buf.WriteString(decoded)
			continue
		}
		if !top.interpolate && l.ch == '\\' && top.style == styleString {
			// Plain '...' only recognizes \\ and \' as escapes.
			if l.peek() == '\\' || l.peek() == top.close {
				l.read()
				buf.WriteRune(l.ch)
				l.read()
				continue
			}
		}
		buf.WriteRune(l.ch)
		l.read()
	}

	return l.makeToken(StringContent, startLine, startCol, startPos, buf.String())
}

// finishRegexpEnd reads trailing option letters and maps them to the
// bitmask spec §4.3 specifies: i->1, x->2, m->4, e|s|u->16, n->32.
func (l *Lexer) finishRegexpEnd(startLine, startCol, startPos int) Token {
	mask := 0
	start := l.pos
	for {
		switch l.ch {
		case 'i':
			mask |= 1
		case 'x':
			mask |= 2
		case 'm':
			mask |= 4
		case 'e', 's', 'u':
			mask |= 16
		case 'n':
			mask |= 32
		default:
			opts := string(l.input[start:l.pos])
			tok := l.makeToken(RegexpEnd, startLine, startCol, startPos, opts)
			tok.Fixnum = int64(mask)
			return tok
		}
		l.read()
	}
}

// decodeEscape decodes one backslash escape inside an interpolated
// literal. Unrecognized escapes keep the literal character, dropping the
// backslash, matching observed MRI behavior for double-quoted strings.
func (l *Lexer) decodeEscape(style literalStyle) (decoded string, invalid bool, kind Kind) {
	l.read() // consume backslash
	if style == styleRegexp || style == styleShell {
		// Regexp/shell bodies keep escapes raw; the embedded engine (out
		// of scope) interprets them later.
		ch := l.ch
		l.read()
		return "\\" + string(ch), false, 0
	}

	switch l.ch {
	case 'n':
		l.read()
		return "\n", false, 0
	case 't':
		l.read()
		return "\t", false, 0
	case 'r':
		l.read()
		return "\r", false, 0
	case 's':
		l.read()
		return " ", false, 0
	case '0':
		l.read()
		return "\x00", false, 0
	case 'a':
		l.read()
		return "\a", false, 0
	case 'b':
		l.read()
		return "\b", false, 0
	case 'e':
		l.read()
		return "\x1b", false, 0
	case 'f':
		l.read()
		return "\f", false, 0
	case 'v':
		l.read()
		return "\v", false, 0
	case '\\':
		l.read()
		return "\\", false, 0
	case '"', '\'', '#':
		ch := l.ch
		l.read()
		return string(ch), false, 0
	case 'x':
		l.read()
		hex := l.readHexDigits(1, 2)
		if hex == "" {
			return "", true, InvalidCharacterEscape
		}
		return decodeHexRune(hex), false, 0
	case 'u':
		l.read()
		if l.ch == '{' {
			l.read()
			hex := l.readHexDigits(1, 6)
			if hex == "" || l.ch != '}' {
				return "", true, InvalidUnicodeEscape
			}
			l.read()
			return decodeHexRune(hex), false, 0
		}
		hex := l.readHexDigits(4, 4)
		if hex == "" {
			return "", true, InvalidUnicodeEscape
		}
		return decodeHexRune(hex), false, 0
	case 0:
		return "", false, 0
	default:
		ch := l.ch
		l.read()
		return string(ch), false, 0
	}
}

func (l *Lexer) readHexDigits(min, max int) string {
	start := l.pos
	n := 0
	for n < max && isHexDigit(l.ch) {
		l.read()
		n++
	}
	if n < min {
		return ""
	}
	return string(l.input[start:l.pos])
}

func decodeHexRune(hex string) string {
	var v rune
	for _, c := range hex {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= c - '0'
		case c >= 'a' && c <= 'f':
			v |= c - 'a' + 10
		case c >= 'A' && c <= 'F':
			v |= c - 'A' + 10
		}
	}
	return string(v)
}
