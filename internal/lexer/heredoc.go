package lexer

import "strings"

// tryHeredocOpener recognizes "<<TAG", "<<-TAG", "<<~TAG" and their quoted
// forms ("TAG", 'TAG', `TAG`) immediately after "<<", restoring the cursor
// and reporting ok=false when what follows is an ordinary left-shift
// instead (spec §4.1's "<< disambiguation").
func (l *Lexer) tryHeredocOpener() (string, bool) {
	save := l.snapshot()
	wsBeforeOpener := l.wsBefore
	prevKind := l.prev.Kind

	l.read() // consume first '<'
	l.read() // consume second '<'

	squiggly, dash := false, false
	switch l.ch {
	case '~':
		squiggly = true
		l.read()
	case '-':
		dash = true
		l.read()
	}

	interpolate := true
	var tag string
	quoted := false

	switch l.ch {
	case '\'', '"', '`':
		quoted = true
		quote := l.ch
		interpolate = quote != '\''
		l.read()
		start := l.pos
		for l.ch != quote && l.ch != 0 && l.ch != '\n' {
			l.read()
		}
		tag = string(l.input[start:l.pos])
		if l.ch == quote {
			l.read()
		}
	default:
		if l.ch != '_' && !isLetter(l.ch) {
			l.restore(save)
			return "", false
		}
		start := l.pos
		for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
			l.read()
		}
		tag = string(l.input[start:l.pos])
	}

	if tag == "" {
		l.restore(save)
		return "", false
	}

	// "a<<B" directly after a value with no modifier/quoting and no
	// intervening space is ambiguous with left-shift; prefer left-shift
	// there, the way "a<<b" with a lowercase name would never be a tag.
	if !quoted && !squiggly && !dash && !wsBeforeOpener && isValueProducing(prevKind) {
		l.restore(save)
		return "", false
	}

	l.pendingHeredocSquiggly = squiggly
	l.pendingHeredocDash = dash
	l.pendingHeredocInterp = interpolate
	return tag, true
}

// beginHeredoc emits HeredocBegin and eagerly scans the heredoc's entire
// body (content, interpolation, and terminator) using a throwaway Lexer
// positioned at the start of the line following the opener. The body's
// content and StringEnd tokens are queued to follow HeredocBegin directly,
// as if the literal stood in place of the opener; the rest of the opener
// line is scanned after them, and at that line's newline the cursor skips
// the body (see resumeAfterHeredocsOrAdvance).
func (l *Lexer) beginHeredoc(startLine, startCol, startPos int, tag string) Token {
	squiggly := l.pendingHeredocSquiggly
	dash := l.pendingHeredocDash
	interpolate := l.pendingHeredocInterp

	var bodyPos, bodyLine int
	if l.nextHeredocBodyAt != nil {
		bodyPos, bodyLine = l.nextHeredocBodyAt.pos, l.nextHeredocBodyAt.line
	} else {
		bodyPos, bodyLine = l.scanToNextLineStart(l.pos, l.line)
	}

	dedent := 0
	if squiggly {
		dedent = l.findSquigglyDedent(bodyPos, tag)
	}

	temp := l.newSubLexer(bodyPos, bodyLine)
	temp.pushFrame(frame{
		mode:              modeString,
		style:             styleString,
		interpolate:       interpolate,
		isHeredoc:         true,
		heredocTag:        tag,
		heredocDedentMode: squiggly || dash,
		heredocDedent:     dedent,
	})

	var bodyTokens []Token
	for {
		tok := temp.NextToken()
		bodyTokens = append(bodyTokens, tok)
		if tok.Kind == StringEnd || tok.Kind == EOF || isLexicalFailure(tok.Kind) {
			break
		}
	}

	resume := &resumePoint{pos: temp.pos, line: temp.line, column: temp.column}
	l.nextHeredocBodyAt = resume
	l.heredocResume = resume
	l.buffered = append(l.buffered, bodyTokens...)

	return l.makeToken(HeredocBegin, startLine, startCol, startPos, tag)
}

// lexHeredocBody scans one token's worth of a heredoc body: the terminator
// line (ending the frame), a dedent skip followed by content, or an
// interpolation boundary. Reused verbatim from lexStringFrame's escape and
// #{ handling; only the close condition differs (spec §4.1 heredoc rules).
func (l *Lexer) lexHeredocBody(top *frame) Token {
	startLine, startCol, startPos := l.start()

	if l.ch == 0 {
		l.popFrame()
		return l.makeToken(UnterminatedString, startLine, startCol, startPos, "")
	}

	if l.column == 1 {
		if matched, consumed := l.matchHeredocTerminatorHere(top); matched {
			for i := 0; i < consumed; i++ {
				l.read()
			}
			l.popFrame()
			return l.makeToken(StringEnd, startLine, startCol, startPos, top.heredocTag)
		}
		for i := 0; i < top.heredocDedent && (l.ch == ' ' || l.ch == '\t'); i++ {
			l.read()
		}
		startLine, startCol, startPos = l.start()
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
		if top.interpolate && l.ch == '\\' {
			decoded, invalid, kind := l.decodeEscape(styleString)
			if invalid {
				return l.makeToken(kind, startLine, startCol, startPos, buf.String())
			}
			buf.WriteString(decoded)
			continue
		}
		if l.ch == '\n' {
			buf.WriteRune('\n')
			l.read()
			break
		}
		buf.WriteRune(l.ch)
		l.read()
	}

	return l.makeToken(StringContent, startLine, startCol, startPos, buf.String())
}

// matchHeredocTerminatorHere looks ahead (without consuming) to decide
// whether the current physical line is the heredoc's terminator.
func (l *Lexer) matchHeredocTerminatorHere(top *frame) (matched bool, consumedLen int) {
	i := l.pos
	j := i
	for j < len(l.input) && l.input[j] != '\n' {
		j++
	}
	line := string(l.input[i:j])
	trimmed := line
	if top.heredocDedentMode {
		trimmed = strings.TrimLeft(line, " \t")
	}
	if trimmed != top.heredocTag {
		return false, 0
	}
	consumed := j - i
	if j < len(l.input) {
		consumed++
	}
	return true, consumed
}

func (l *Lexer) scanToNextLineStart(fromPos, fromLine int) (pos, line int) {
	i := fromPos
	line = fromLine
	for i < len(l.input) && l.input[i] != '\n' {
		i++
	}
	if i < len(l.input) {
		i++
		line++
	}
	return i, line
}

// findSquigglyDedent computes the minimum leading whitespace shared by
// every non-blank content line of a <<~TAG heredoc, scanned ahead of
// tokenization since the dedent amount must be fixed before content
// scanning begins.
func (l *Lexer) findSquigglyDedent(bodyPos int, tag string) int {
	pos := bodyPos
	minIndent := -1
	for pos < len(l.input) {
		j := pos
		for j < len(l.input) && l.input[j] != '\n' {
			j++
		}
		line := string(l.input[pos:j])
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == tag {
			break
		}
		if strings.TrimSpace(line) != "" {
			indent := len(line) - len(trimmed)
			if minIndent == -1 || indent < minIndent {
				minIndent = indent
			}
		}
		if j >= len(l.input) {
			break
		}
		pos = j + 1
	}
	if minIndent < 0 {
		return 0
	}
	return minIndent
}

// newSubLexer creates a throwaway Lexer sharing the same input buffer,
// positioned at pos/line, used to eagerly scan a heredoc body ahead of
// the live cursor without disturbing it.
func (l *Lexer) newSubLexer(pos, line int) *Lexer {
	t := &Lexer{input: l.input, filename: l.filename, pos: pos, line: line, column: 1}
	if pos < len(l.input) {
		t.ch = l.input[pos]
	}
	return t
}
