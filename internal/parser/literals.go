package parser

import (
	"github.com/natalie-lang/natalie-parser/internal/ast"
	"github.com/natalie-lang/natalie-parser/internal/lexer"
)

// parseArrayLiteral parses `[a, b, *c]`. Trailing `key: value` pairs are not
// meaningful inside a plain array literal, so elements are plain
// expressions only (splats included).
func (p *Parser) parseArrayLiteral() ast.Node {
	tok := p.parseTok()
	var elems []ast.Node
	p.skipEols()
	for !p.at(lexer.RBracket) {
		elems = append(elems, p.parseExpression(precAssign))
		p.skipEols()
		if !p.accept(lexer.Comma) {
			break
		}
		p.skipEols()
	}
	p.expect(lexer.RBracket)
	return ast.NewArray(tok, elems)
}

// parseHashLiteral parses `{k => v, k2: v2, **rest}`.
func (p *Parser) parseHashLiteral() ast.Node {
	tok := p.parseTok()
	var entries []ast.HashEntry
	p.skipEols()
	for !p.at(lexer.RBrace) {
		if p.at(lexer.StarStar) {
			starTok := p.parseTok()
			val := p.parseExpression(precAssign)
			entries = append(entries, ast.HashEntry{Key: ast.NewKeywordSplat(starTok, val)})
		} else if entry, isKw := p.tryParseKeywordEntry(); isKw {
			entries = append(entries, entry)
		} else {
			key := p.parseExpression(precAssign)
			p.expect(lexer.HashRocket)
			val := p.parseExpression(precAssign)
			entries = append(entries, ast.HashEntry{Key: key, Value: val})
		}
		p.skipEols()
		if !p.accept(lexer.Comma) {
			break
		}
		p.skipEols()
	}
	p.expect(lexer.RBrace)
	return ast.NewHash(tok, entries)
}

// parseWordArray parses `%w[a b c]` / `%W[a b c]` into a plain array of
// String literals, consuming the WordsSep boundary tokens the lexer emits
// between elements.
func (p *Parser) parseWordArray() ast.Node {
	tok := p.parseTok()
	var elems []ast.Node
	for !p.at(lexer.WordsEnd) {
		if p.accept(lexer.WordsSep) {
			continue
		}
		wtok := p.expect(lexer.String)
		elems = append(elems, ast.NewString(wtok, wtok.Literal))
	}
	p.expect(lexer.WordsEnd)
	return ast.NewArray(tok, elems)
}

// parseSymbolArray parses `%i[a b c]` / `%I[a b c]` into an array of Symbol
// literals.
func (p *Parser) parseSymbolArray() ast.Node {
	tok := p.parseTok()
	var elems []ast.Node
	for !p.at(lexer.SymbolsEnd) {
		if p.accept(lexer.WordsSep) {
			continue
		}
		wtok := p.expect(lexer.Symbol)
		elems = append(elems, ast.NewSymbol(wtok, wtok.Literal))
	}
	p.expect(lexer.SymbolsEnd)
	return ast.NewArray(tok, elems)
}

// parseInterpolatedParts consumes the common StringContent/
// EvaluateToStringBegin...End run shared by every interpolated literal
// kind, stopping at (and consuming) endKind.
func (p *Parser) parseInterpolatedParts(endKind lexer.Kind) []ast.Node {
	var parts []ast.Node
	for !p.at(endKind) {
		switch p.curTok.Kind {
		case lexer.StringContent:
			tok := p.parseTok()
			parts = append(parts, ast.NewString(tok, tok.Literal))
		case lexer.EvaluateToStringBegin:
			tok := p.parseTok()
			expr := p.parseStatementsUntil(lexer.EvaluateToStringEnd)
			p.expect(lexer.EvaluateToStringEnd)
			parts = append(parts, ast.NewEvaluateToString(tok, expr))
		default:
			p.fail("string content")
		}
	}
	p.expect(endKind)
	return parts
}

func onlyPlainString(parts []ast.Node) (*ast.String, bool) {
	if len(parts) != 1 {
		return nil, false
	}
	s, ok := parts[0].(*ast.String)
	return s, ok
}

func (p *Parser) parseInterpolatedString() ast.Node {
	tok := p.parseTok()
	parts := p.parseInterpolatedParts(lexer.StringEnd)
	if len(parts) == 0 {
		node := ast.NewString(tok, "")
		return p.maybeConcatAdjacentString(node)
	}
	if s, ok := onlyPlainString(parts); ok {
		return p.maybeConcatAdjacentString(s)
	}
	return ast.NewInterpolatedString(tok, parts)
}

func (p *Parser) parseInterpolatedSymbol() ast.Node {
	tok := p.parseTok()
	parts := p.parseInterpolatedParts(lexer.SymbolEnd)
	if s, ok := onlyPlainString(parts); ok {
		return ast.NewSymbol(s.Tok(), s.Value)
	}
	return ast.NewInterpolatedSymbol(tok, parts)
}

func (p *Parser) parseInterpolatedShell() ast.Node {
	tok := p.parseTok()
	parts := p.parseInterpolatedParts(lexer.ShellEnd)
	if s, ok := onlyPlainString(parts); ok {
		return ast.NewShell(s.Tok(), s.Value)
	}
	return ast.NewInterpolatedShell(tok, parts)
}

func (p *Parser) parseInterpolatedRegexp() ast.Node {
	tok := p.parseTok()
	var parts []ast.Node
	var optionsLiteral string
	for !p.at(lexer.RegexpEnd) {
		switch p.curTok.Kind {
		case lexer.StringContent:
			ptok := p.parseTok()
			parts = append(parts, ast.NewString(ptok, ptok.Literal))
		case lexer.EvaluateToStringBegin:
			etok := p.parseTok()
			expr := p.parseStatementsUntil(lexer.EvaluateToStringEnd)
			p.expect(lexer.EvaluateToStringEnd)
			parts = append(parts, ast.NewEvaluateToString(etok, expr))
		default:
			p.fail("regexp content")
		}
	}
	optionsLiteral = p.curTok.Literal
	p.expect(lexer.RegexpEnd)
	options := regexpOptionsFromLetters(optionsLiteral)
	if s, ok := onlyPlainString(parts); ok {
		return ast.NewRegexp(s.Tok(), s.Value, options)
	}
	return ast.NewInterpolatedRegexp(tok, parts, options)
}

// regexpOptionsFromLetters converts the trailing option letters the lexer
// reports on RegexpEnd into the reference grammar's option bitmask
// (spec §4.3: i=1, x=2, m=4, e|s|u=16, n=32).
func regexpOptionsFromLetters(letters string) int64 {
	var bits int64
	for _, r := range letters {
		switch r {
		case 'i':
			bits |= 1
		case 'x':
			bits |= 2
		case 'm':
			bits |= 4
		case 'e', 's', 'u':
			bits |= 16
		case 'n':
			bits |= 32
		}
	}
	return bits
}
