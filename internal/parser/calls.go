package parser

import (
	"github.com/natalie-lang/natalie-parser/internal/ast"
	"github.com/natalie-lang/natalie-parser/internal/lexer"
)

// canStartImplicitArgs reports whether curTok can begin a paren-less call's
// argument list, requiring at least one space before it (spec §4.3: `foo
// bar` is a call, `foo(bar)`/`foo (bar)` disambiguate via CanBeFirstArgOfImplicitCall
// plus the whitespace test the lexer already recorded).
func (p *Parser) canStartImplicitArgs() bool {
	if !p.curTok.WhitespacePrecedes {
		return false
	}
	if !p.curTok.Kind.CanBeFirstArgOfImplicitCall() {
		return false
	}
	// `foo -1` is a call with a negative argument; `foo - 1` is a binary
	// subtraction. Distinguish by requiring no space between the sign and
	// its operand for the unary reading.
	if p.curTok.Kind == lexer.Minus || p.curTok.Kind == lexer.Plus {
		return !p.peekTok.WhitespacePrecedes
	}
	if p.curTok.Kind == lexer.Star || p.curTok.Kind == lexer.StarStar || p.curTok.Kind == lexer.Amp {
		return !p.peekTok.WhitespacePrecedes
	}
	if p.curTok.Kind == lexer.LBracket {
		return true
	}
	return true
}

// parseParenArgsAndBlock parses a `(args)` list immediately following a
// call name (no space), then an optional trailing block.
func (p *Parser) parseParenArgsAndBlock() ([]ast.Node, *ast.Iter) {
	p.expect(lexer.LParen)
	args := p.parseCallArgList(lexer.RParen)
	p.expect(lexer.RParen)
	block := p.parseOptionalBlock()
	return args, block
}

// parseCallArgList parses a comma-separated argument list up to (but not
// consuming) closing. `name: value` keyword arguments collapse into one
// synthetic trailing Hash node (spec §4.3: a call's keyword arguments
// render as an implicit final hash argument); a `**expr` argument is parsed
// as an ordinary expression and stays a separate positional argument.
func (p *Parser) parseCallArgList(closing lexer.Kind) []ast.Node {
	var args []ast.Node
	var kwEntries []ast.HashEntry
	p.skipEols()
	if p.at(closing) {
		return args
	}
	for {
		p.skipEols()
		if entry, isKw := p.tryParseKeywordEntry(); isKw {
			kwEntries = append(kwEntries, entry)
		} else {
			args = append(args, p.parseExpression(precAssign))
		}
		p.skipEols()
		if !p.accept(lexer.Comma) {
			break
		}
	}
	p.skipEols()
	if len(kwEntries) > 0 {
		args = append(args, ast.NewHash(lexer.Token{}, kwEntries))
	}
	return args
}

// tryParseKeywordEntry recognizes the `name: value` call-argument shorthand
// by peeking for a following ':' with no intervening space.
func (p *Parser) tryParseKeywordEntry() (ast.HashEntry, bool) {
	if (p.at(lexer.BareName) || p.at(lexer.Constant)) && p.peekTok.Kind == lexer.Colon && !p.peekTok.WhitespacePrecedes {
		keyTok := p.parseTok()
		p.advance() // consume ':'
		val := p.parseExpression(precAssign)
		return ast.HashEntry{Key: ast.NewSymbolKey(keyTok, keyTok.Literal), Value: val}, true
	}
	return ast.HashEntry{}, false
}

// parseBareCallArgs parses a paren-less argument list: one or more
// comma-separated expressions with no closing delimiter, terminated by
// end-of-statement or a trailing block opener.
func (p *Parser) parseBareCallArgs() []ast.Node {
	var args []ast.Node
	var kwEntries []ast.HashEntry
	for {
		if entry, isKw := p.tryParseKeywordEntry(); isKw {
			kwEntries = append(kwEntries, entry)
		} else {
			args = append(args, p.parseExpression(precAssign))
		}
		if !p.accept(lexer.Comma) {
			break
		}
		p.skipEols()
	}
	if len(kwEntries) > 0 {
		args = append(args, ast.NewHash(lexer.Token{}, kwEntries))
	}
	return args
}

// parseOptionalBlock parses a trailing `{ ... }` or `do ... end` block, if
// present, returning nil otherwise.
func (p *Parser) parseOptionalBlock() *ast.Iter {
	if p.at(lexer.LBrace) {
		return p.parseBraceBlock()
	}
	if p.at(lexer.KwDo) {
		return p.parseDoBlock()
	}
	return nil
}

func (p *Parser) parseBraceBlock() *ast.Iter {
	p.advance() // consume '{'
	params := p.parseBlockParamsIfAny()
	outer := p.scope
	p.scope = outer.clone()
	for _, prm := range params {
		declareParamNames(p.scope, prm)
	}
	body := p.parseStatementsUntil(lexer.RBrace)
	p.expect(lexer.RBrace)
	p.scope = outer
	return ast.NewIter(lexer.Token{}, params, body)
}

func (p *Parser) parseDoBlock() *ast.Iter {
	p.advance() // consume 'do'
	p.skipEols()
	params := p.parseBlockParamsIfAny()
	outer := p.scope
	p.scope = outer.clone()
	for _, prm := range params {
		declareParamNames(p.scope, prm)
	}
	body := p.parseStatementsUntil(lexer.KwEnd)
	p.expect(lexer.KwEnd)
	p.scope = outer
	return ast.NewIter(lexer.Token{}, params, body)
}

func (p *Parser) parseBlockParamsIfAny() []ast.Node {
	if !p.at(lexer.Pipe) {
		return nil
	}
	p.advance()
	params := p.parseParamList(lexer.Pipe)
	p.expect(lexer.Pipe)
	return params
}

// parseCallOrAttr handles `recv.msg`, `recv.msg(args)`, `recv.msg arg`.
func (p *Parser) parseCallOrAttr(left ast.Node) ast.Node {
	return p.parseDottedCall(left, false)
}

func (p *Parser) parseSafeCallOrAttr(left ast.Node) ast.Node {
	return p.parseDottedCall(left, true)
}

func (p *Parser) parseDottedCall(left ast.Node, safe bool) ast.Node {
	tok := p.curTok
	p.advance() // consume '.', '&.' or '::'
	p.skipEols()
	var msg string
	switch {
	case p.at(lexer.BareName), p.at(lexer.Constant):
		msg = p.curTok.Literal
		p.advance()
	case p.curTok.Kind.IsOperator() || p.curTok.Kind.IsKeyword():
		msg = opLiteral(p.curTok)
		p.advance()
	case p.at(lexer.LParen):
		// `recv.(args)`, sugar for `recv.call(args)`.
		msg = "call"
	default:
		p.fail("method name")
	}

	var args []ast.Node
	var block *ast.Iter
	if p.at(lexer.LParen) && !p.curTok.WhitespacePrecedes {
		args, block = p.parseParenArgsAndBlock()
	} else if p.canStartImplicitArgs() {
		args = p.parseBareCallArgs()
		block = p.parseOptionalBlock()
	} else {
		block = p.parseOptionalBlock()
	}

	if safe {
		sc := ast.NewSafeCall(tok, left, msg, args)
		sc.Block = block
		return sc
	}
	call := ast.NewCall(tok, left, msg, args)
	call.Block = block
	return call
}

func (p *Parser) parseColon2Infix(left ast.Node) ast.Node {
	tok := p.curTok
	if p.peekTok.Kind == lexer.Constant {
		p.advance()
		name := p.curTok.Literal
		p.advance()
		if p.at(lexer.LParen) && !p.curTok.WhitespacePrecedes {
			args, block := p.parseParenArgsAndBlock()
			call := ast.NewCall(tok, left, name, args)
			call.Block = block
			return call
		}
		return ast.NewColon2(tok, left, name)
	}
	return p.parseDottedCall(left, false)
}

func (p *Parser) parseIndexInfix(left ast.Node) ast.Node {
	tok := p.curTok
	p.advance() // consume '['
	args := p.parseCallArgList(lexer.RBracket)
	p.expect(lexer.RBracket)
	return ast.NewCall(tok, left, "[]", args)
}

// parseBareCallWithParens covers `expr(args)` where expr is itself a call
// result used as a callable (e.g. `foo.bar()(args)` via `.call`), the
// general postfix-'(' case not already handled as part of a bareword/const
// lookup.
func (p *Parser) parseBareCallWithParens(left ast.Node) ast.Node {
	tok := p.curTok
	args, block := p.parseParenArgsAndBlock()
	call := ast.NewCall(tok, left, "call", args)
	call.Block = block
	return call
}

func (p *Parser) parseYield() ast.Node {
	tok := p.parseTok()
	var args []ast.Node
	if p.at(lexer.LParen) && !p.curTok.WhitespacePrecedes {
		p.advance()
		args = p.parseCallArgList(lexer.RParen)
		p.expect(lexer.RParen)
	} else if p.canStartImplicitArgs() {
		args = p.parseBareCallArgs()
	}
	return ast.NewYield(tok, args)
}

func (p *Parser) parseSuper() ast.Node {
	tok := p.parseTok()
	if p.at(lexer.LParen) && !p.curTok.WhitespacePrecedes {
		args, block := p.parseParenArgsAndBlock()
		sup := ast.NewSuper(tok, args)
		sup.Block = block
		return sup
	}
	if p.canStartImplicitArgs() {
		args := p.parseBareCallArgs()
		block := p.parseOptionalBlock()
		sup := ast.NewSuper(tok, args)
		sup.Block = block
		return sup
	}
	zs := ast.NewZSuper(tok)
	zs.Block = p.parseOptionalBlock()
	return zs
}
