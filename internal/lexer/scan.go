package lexer

// NextToken returns exactly one logical Token and advances the lexer. It
// first drains any tokens produced ahead of the cursor (heredoc bodies,
// scanned eagerly so they appear in the stream immediately after their
// opener per spec §4.3), then inspects the top nested-lexer frame, if any,
// and otherwise scans ordinary source.
func (l *Lexer) NextToken() Token {
	if len(l.buffered) > 0 {
		tok := l.buffered[0]
		l.buffered = l.buffered[1:]
		return tok
	}

	if top := l.topFrame(); top != nil && top.mode != modeEvString {
		switch top.mode {
		case modeString:
			return l.lexStringFrame(top)
		case modeWordArray:
			return l.lexWordArrayFrame(top)
		}
	}

	return l.lexNormal()
}

func (l *Lexer) skipInsignificant() (newline bool) {
	for {
		switch l.ch {
		case ' ', '\t', '\r':
			l.wsBefore = true
			l.read()
		case '\n':
			l.wsBefore = true
			l.resumeAfterHeredocsOrAdvance()
			return true
		case '\\':
			if l.peek() == '\n' {
				l.read()
				l.read()
				l.wsBefore = true
				continue
			}
			return false
		default:
			return false
		}
	}
}

// resumeAfterHeredocsOrAdvance consumes the newline character. If one or
// more heredocs were opened on the line just ended, their bodies were
// already scanned ahead (heredoc.go) and emitted right after their openers;
// the cursor jumps to the position recorded as heredocResume instead of simply
// stepping past '\n', since the characters between here and there are the
// heredoc bodies, already tokenized.
func (l *Lexer) resumeAfterHeredocsOrAdvance() {
	if l.heredocResume != nil {
		r := l.heredocResume
		l.pos, l.line, l.column = r.pos, r.line, r.column
		l.ch = 0
		if l.pos < len(l.input) {
			l.ch = l.input[l.pos]
		}
		l.heredocResume = nil
		l.nextHeredocBodyAt = nil
		if len(l.pendingHeredocBodies) > 0 {
			l.buffered = append(l.buffered, l.pendingHeredocBodies...)
			l.pendingHeredocBodies = nil
		}
		return
	}
	l.read()
}

func (l *Lexer) lexNormal() Token {
	atStart := l.atLineStart
	if l.skipInsignificant() {
		startLine, startCol, startPos := l.line-1, 1, l.pos
		_ = startCol
		l.atLineStart = true
		return l.makeToken(Eol, startLine, 1, startPos, "\n")
	}
	l.atLineStart = false

	if inEv := l.inEvString(); inEv {
		if tok, handled := l.lexEvStringBraces(); handled {
			return tok
		}
	}

	startLine, startCol, startPos := l.start()

	switch {
	case l.ch == 0:
		return l.makeToken(EOF, startLine, startCol, startPos, "")

	case l.ch == '#':
		return l.lexComment(startLine, startCol, startPos, atStart)

	case l.ch == '\n':
		// handled in skipInsignificant; unreachable in practice
		l.read()
		return l.makeToken(Eol, startLine, startCol, startPos, "\n")

	case l.ch == '_' || isLetter(l.ch):
		return l.lexIdentOrKeyword(startLine, startCol, startPos, atStart)

	case isDigit(l.ch):
		return l.lexNumber(startLine, startCol, startPos)

	case l.ch == '"':
		return l.openQuoted(startLine, startCol, startPos, '"', styleString, true)

	case l.ch == '\'':
		return l.openQuoted(startLine, startCol, startPos, '\'', styleString, false)

	case l.ch == '`':
		return l.openQuoted(startLine, startCol, startPos, '`', styleShell, true)

	case l.ch == ':':
		return l.lexColonOrSymbol(startLine, startCol, startPos)

	case l.ch == '@':
		return l.lexIVarOrCVar(startLine, startCol, startPos)

	case l.ch == '$':
		return l.lexGVar(startLine, startCol, startPos)

	case l.ch == '%':
		if tok, ok := l.tryPercentLiteral(startLine, startCol, startPos); ok {
			return tok
		}
		return l.lexOperatorChar(startLine, startCol, startPos)

	case l.ch == '/':
		if l.slashStartsRegexp() {
			return l.openQuoted(startLine, startCol, startPos, '/', styleRegexp, true)
		}
		return l.lexOperatorChar(startLine, startCol, startPos)

	case l.ch == '<':
		if l.peek() == '<' {
			if tag, ok := l.tryHeredocOpener(); ok {
				return l.beginHeredoc(startLine, startCol, startPos, tag)
			}
		}
		return l.lexOperatorChar(startLine, startCol, startPos)

	default:
		return l.lexOperatorChar(startLine, startCol, startPos)
	}
}

func (l *Lexer) lexComment(startLine, startCol, startPos int, atStart bool) Token {
	isDocComment := atStart || l.peek() == '#'
	for l.ch != '\n' && l.ch != 0 {
		l.read()
	}
	text := string(l.input[startPos:l.pos])
	if isDocComment {
		return l.makeToken(Doc, startLine, startCol, startPos, text)
	}
	return l.makeToken(Comment, startLine, startCol, startPos, text)
}

func (l *Lexer) lexIdentOrKeyword(startLine, startCol, startPos int, atStart bool) Token {
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.read()
	}
	// Method-name suffixes: foo?, foo!, foo= (setter) are part of the name.
	if l.ch == '?' || l.ch == '!' {
		l.read()
	} else if l.ch == '=' && l.peek() != '=' && l.peek() != '~' && l.peek() != '>' {
		// Only a defined-style setter name when immediately after `def` or `.`;
		// the parser, not the lexer, makes the call-vs-setter distinction, so
		// we leave '=' untouched here and let it lex as a separate Assign.
	}

	name := string(l.input[startPos:l.pos])

	if kw, ok := LookupIdent(name); ok {
		return l.makeToken(kw, startLine, startCol, startPos, name)
	}

	if isUpper(rune(name[0])) {
		return l.makeToken(Constant, startLine, startCol, startPos, name)
	}
	return l.makeToken(BareName, startLine, startCol, startPos, name)
}

func (l *Lexer) lexIVarOrCVar(startLine, startCol, startPos int) Token {
	l.read() // consume '@'
	kind := IVar
	if l.ch == '@' {
		l.read()
		kind = CVar
	}
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.read()
	}
	return l.makeToken(kind, startLine, startCol, startPos, string(l.input[startPos:l.pos]))
}

func (l *Lexer) lexGVar(startLine, startCol, startPos int) Token {
	l.read() // consume '$'
	switch {
	case isDigit(l.ch):
		for isDigit(l.ch) {
			l.read()
		}
		return l.makeToken(NthRef, startLine, startCol, startPos, string(l.input[startPos:l.pos]))
	case isSpecialGlobal(l.ch):
		l.read()
		return l.makeToken(BackRef, startLine, startCol, startPos, string(l.input[startPos:l.pos]))
	default:
		for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
			l.read()
		}
		return l.makeToken(GVar, startLine, startCol, startPos, string(l.input[startPos:l.pos]))
	}
}

func isSpecialGlobal(ch rune) bool {
	switch ch {
	case '~', '&', '\'', '`', '!', '@', '/', '\\', ',', ';', '.', '<', '>', '_', '*', '$', '?', ':', '"':
		return true
	default:
		return false
	}
}

func isLetter(ch rune) bool { return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch > 127 }
func isDigit(ch rune) bool  { return ch >= '0' && ch <= '9' }
func isUpper(ch rune) bool  { return ch >= 'A' && ch <= 'Z' }
func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
