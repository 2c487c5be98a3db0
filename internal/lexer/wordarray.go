package lexer

import "strings"

// beginWordArray opens a %w/%W/%i/%I literal: it pushes a modeWordArray
// frame and emits the WordsBegin/SymbolsBegin boundary token. Elements are
// separated by WordsSep and terminated by WordsEnd/SymbolsEnd (spec §4.1
// "array literal shorthand").
func (l *Lexer) beginWordArray(startLine, startCol, startPos int, open rune, symbols, interpolate bool) Token {
	l.read() // consume opening delimiter
	l.pushFrame(frame{
		mode:            modeWordArray,
		open:            open,
		close:           closingDelimiter(open),
		interpolate:     interpolate,
		wordsAreSymbols: symbols,
	})
	kind := WordsBegin
	if symbols {
		kind = SymbolsBegin
	}
	return l.makeToken(kind, startLine, startCol, startPos, string(open))
}

func isWordArraySpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

// lexWordArrayFrame scans one logical unit of a word-array frame: a run of
// separating whitespace, the closing delimiter, an interpolation boundary,
// or one element's worth of literal text. Non-interpolating arrays (%w,
// %i) emit each element as a single String/Symbol token; interpolating
// arrays (%W, %I) emit StringContent/EvaluateToStringBegin runs the same
// way an interpolated string body does, so the parser merges an element's
// pieces identically in both cases.
func (l *Lexer) lexWordArrayFrame(top *frame) Token {
	startLine, startCol, startPos := l.start()

	if l.ch == 0 {
		l.popFrame()
		return l.makeToken(UnterminatedWordArray, startLine, startCol, startPos, "")
	}

	if isWordArraySpace(l.ch) {
		for isWordArraySpace(l.ch) {
			l.read()
		}
		return l.makeToken(WordsSep, startLine, startCol, startPos, " ")
	}

	if l.ch == top.close {
		l.read()
		l.popFrame()
		kind := WordsEnd
		if top.wordsAreSymbols {
			kind = SymbolsEnd
		}
		return l.makeToken(kind, startLine, startCol, startPos, string(top.close))
	}

	if top.interpolate && l.ch == '#' && l.peek() == '{' {
		l.read()
		l.read()
		l.pushFrame(frame{mode: modeEvString})
		return l.makeToken(EvaluateToStringBegin, startLine, startCol, startPos, "#{")
	}

	var buf strings.Builder
	for {
		if l.ch == 0 || isWordArraySpace(l.ch) || l.ch == top.close {
			break
		}
		if top.interpolate && l.ch == '#' && l.peek() == '{' {
			break
		}
		if l.ch == '\\' && isWordArraySpace(l.peek()) {
			l.read()
			buf.WriteRune(l.ch)
			l.read()
			continue
		}
		buf.WriteRune(l.ch)
		l.read()
	}

	if top.interpolate {
		return l.makeToken(StringContent, startLine, startCol, startPos, buf.String())
	}
	if top.wordsAreSymbols {
		return l.makeToken(Symbol, startLine, startCol, startPos, buf.String())
	}
	return l.makeToken(String, startLine, startCol, startPos, buf.String())
}
