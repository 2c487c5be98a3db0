package parser

import (
	"github.com/natalie-lang/natalie-parser/internal/ast"
	"github.com/natalie-lang/natalie-parser/internal/lexer"
)

// parseProgram is the parser's entry point: a Block of every top-level
// statement through EOF.
func (p *Parser) parseProgram() ast.Node {
	return p.parseStatementsUntil(lexer.EOF)
}

// statementTerminators are the token kinds that end a statement list
// without being consumed by it.
func (p *Parser) atStatementTerminator(closing lexer.Kind) bool {
	if p.at(closing) {
		return true
	}
	switch p.curTok.Kind {
	case lexer.EOF, lexer.KwEnd, lexer.KwElse, lexer.KwElsif, lexer.KwWhen, lexer.KwIn,
		lexer.KwRescue, lexer.KwEnsure, lexer.RBrace:
		return true
	default:
		return false
	}
}

// parseStatementsUntil parses statements until closing (exclusive) and
// wraps them in a Block (spec §6: "always returns a Block root").
func (p *Parser) parseStatementsUntil(closing lexer.Kind) ast.Node {
	start := p.curTok
	var stmts []ast.Node
	p.skipEols()
	for !p.atStatementTerminator(closing) {
		stmts = append(stmts, p.parseStatement())
		p.skipEols()
	}
	return ast.NewBlock(start, stmts)
}

// parseStatement parses one top-level statement, applying trailing
// modifier if/unless/while/until/rescue forms after the base expression
// (spec §4.3 "modifier forms bind the whole preceding statement").
func (p *Parser) parseStatement() ast.Node {
	expr := p.parseStatementExpr()
	for {
		switch p.curTok.Kind {
		case lexer.KwIf:
			tok := p.parseTok()
			cond := p.parseStatementExpr()
			expr = ast.NewIf(tok, cond, expr, nil)
		case lexer.KwUnless:
			tok := p.parseTok()
			cond := p.parseStatementExpr()
			expr = ast.NewIf(tok, cond, nil, expr)
		case lexer.KwWhile:
			tok := p.parseTok()
			cond := p.parseStatementExpr()
			expr = ast.NewWhile(tok, cond, expr, !isBeginBlock(expr))
		case lexer.KwUntil:
			tok := p.parseTok()
			cond := p.parseStatementExpr()
			expr = ast.NewUntil(tok, cond, expr, !isBeginBlock(expr))
		case lexer.KwRescue:
			tok := p.parseTok()
			fallback := p.parseStatementExpr()
			resc := ast.NewRescue(tok, nil, "", fallback)
			expr = ast.NewBeginRescue(tok, expr, []*ast.Rescue{resc}, nil, nil)
		default:
			return expr
		}
	}
}

func isBeginBlock(n ast.Node) bool {
	_, ok := n.(*ast.Begin)
	return ok
}

// parseStatementExpr parses a single expression-level statement: plain
// Pratt expression parsing, plus the multiple-assignment rewrite when a
// comma follows a would-be assignment target at the top of a statement.
func (p *Parser) parseStatementExpr() ast.Node {
	first := p.parseExpression(precLowest)
	if p.at(lexer.Comma) && isMasgnTarget(first) {
		return p.parseMultipleAssignmentFrom(first)
	}
	return first
}

func isMasgnTarget(n ast.Node) bool {
	switch n.(type) {
	case *ast.Identifier, *ast.Constant, *ast.Colon2, *ast.Splat:
		return true
	case *ast.Call:
		return n.(*ast.Call).Receiver != nil
	default:
		return false
	}
}

// parseMultipleAssignmentFrom continues parsing `a, b, *c = rhs` once the
// first target has already been parsed and a comma is seen.
func (p *Parser) parseMultipleAssignmentFrom(first ast.Node) ast.Node {
	tok := p.curTok
	targets := []ast.Node{p.toMasgnArg(first)}
	for p.accept(lexer.Comma) {
		if p.at(lexer.Star) {
			starTok := p.parseTok()
			var val ast.Node
			if !p.at(lexer.Assign) && !p.at(lexer.Comma) {
				val = p.parseExpression(precAssign)
			}
			targets = append(targets, ast.NewMultipleAssignmentArg(starTok, val, true))
			continue
		}
		target := p.parseExpression(precAssign)
		targets = append(targets, p.toMasgnArg(target))
	}
	p.expect(lexer.Assign)
	p.skipEols()
	value := p.parseMasgnValue()
	for _, t := range targets {
		if arg, ok := t.(*ast.MultipleAssignmentArg); ok {
			if ident, ok := arg.Target.(*ast.Identifier); ok && ident.AssignKind() == ast.KindLasgn {
				p.declareIfLocal(ident)
			}
		}
	}
	return ast.NewMultipleAssignment(tok, targets, value)
}

func (p *Parser) toMasgnArg(n ast.Node) ast.Node {
	if arg, ok := n.(*ast.MultipleAssignmentArg); ok {
		return arg
	}
	return ast.NewMultipleAssignmentArg(n.Tok(), n, false)
}

// parseMasgnValue parses the RHS of a multiple assignment, wrapping a
// single non-array value in ToArray and a lone splat in SplatValue (spec
// §4.3 "Multiple assignment").
func (p *Parser) parseMasgnValue() ast.Node {
	first := p.parseExpression(precAssign)
	if !p.at(lexer.Comma) {
		if splat, ok := first.(*ast.Splat); ok {
			return ast.NewSplatValue(splat.Tok(), splat)
		}
		switch first.(type) {
		case *ast.Array:
			return first
		default:
			return ast.NewToArray(first.Tok(), first)
		}
	}
	elems := []ast.Node{first}
	for p.accept(lexer.Comma) {
		elems = append(elems, p.parseExpression(precAssign))
	}
	return ast.NewArray(first.Tok(), elems)
}

func (p *Parser) parseIfExpr() ast.Node {
	tok := p.parseTok()
	cond := p.parseStatementExpr()
	p.acceptThen()
	thenBody := p.parseStatementsUntil(lexer.KwEnd)
	elseBody := p.parseElsifOrElseChain()
	p.expect(lexer.KwEnd)
	return ast.NewIf(tok, cond, thenBody, elseBody)
}

func (p *Parser) parseUnlessExpr() ast.Node {
	tok := p.parseTok()
	cond := p.parseStatementExpr()
	p.acceptThen()
	thenBody := p.parseStatementsUntil(lexer.KwEnd)
	var elseBody ast.Node
	if p.accept(lexer.KwElse) {
		elseBody = p.parseStatementsUntil(lexer.KwEnd)
	}
	p.expect(lexer.KwEnd)
	return ast.NewIf(tok, cond, elseBody, thenBody)
}

func (p *Parser) acceptThen() {
	p.skipEols()
	p.accept(lexer.KwThen)
	p.skipEols()
}

func (p *Parser) parseElsifOrElseChain() ast.Node {
	if p.at(lexer.KwElsif) {
		tok := p.parseTok()
		cond := p.parseStatementExpr()
		p.acceptThen()
		thenBody := p.parseStatementsUntil(lexer.KwEnd)
		elseBody := p.parseElsifOrElseChain()
		return ast.NewIf(tok, cond, thenBody, elseBody)
	}
	if p.accept(lexer.KwElse) {
		return p.parseStatementsUntil(lexer.KwEnd)
	}
	return nil
}

func (p *Parser) parseWhileExpr() ast.Node {
	tok := p.parseTok()
	cond := p.parseStatementExpr()
	p.acceptDo()
	body := p.parseStatementsUntil(lexer.KwEnd)
	p.expect(lexer.KwEnd)
	return ast.NewWhile(tok, cond, body, true)
}

func (p *Parser) parseUntilExpr() ast.Node {
	tok := p.parseTok()
	cond := p.parseStatementExpr()
	p.acceptDo()
	body := p.parseStatementsUntil(lexer.KwEnd)
	p.expect(lexer.KwEnd)
	return ast.NewUntil(tok, cond, body, true)
}

func (p *Parser) acceptDo() {
	p.skipEols()
	p.accept(lexer.KwDo)
	p.skipEols()
}

func (p *Parser) parseForExpr() ast.Node {
	tok := p.parseTok()
	varTarget := p.parseExpression(precAssign)
	p.expect(lexer.KwIn)
	iterable := p.parseStatementExpr()
	p.acceptDo()
	body := p.parseStatementsUntil(lexer.KwEnd)
	p.expect(lexer.KwEnd)
	return ast.NewFor(tok, varTarget, iterable, body)
}

func (p *Parser) parseCaseExpr() ast.Node {
	tok := p.parseTok()
	var subject ast.Node
	if !p.at(lexer.Eol) && !p.at(lexer.KwWhen) {
		subject = p.parseStatementExpr()
	}
	p.skipEols()
	if p.at(lexer.KwIn) {
		return p.parseCaseIn(tok, subject)
	}
	var whens []*ast.CaseWhen
	for p.at(lexer.KwWhen) {
		whenTok := p.parseTok()
		var values []ast.Node
		for {
			values = append(values, p.parseExpression(precAssign))
			if !p.accept(lexer.Comma) {
				break
			}
			p.skipEols()
		}
		p.acceptThen()
		body := p.parseStatementsUntil(lexer.KwEnd)
		whens = append(whens, ast.NewCaseWhen(whenTok, values, body))
	}
	var elseBody ast.Node
	if p.accept(lexer.KwElse) {
		elseBody = p.parseStatementsUntil(lexer.KwEnd)
	}
	p.expect(lexer.KwEnd)
	return ast.NewCaseWhenStmt(tok, subject, whens, elseBody)
}

func (p *Parser) parseCaseIn(tok lexer.Token, subject ast.Node) ast.Node {
	var ins []*ast.CaseIn
	for p.at(lexer.KwIn) {
		inTok := p.parseTok()
		pattern := p.parsePattern()
		var guard ast.Node
		guardIsUnless := false
		if p.accept(lexer.KwIf) {
			guard = p.parseStatementExpr()
		} else if p.accept(lexer.KwUnless) {
			guard = p.parseStatementExpr()
			guardIsUnless = true
		}
		p.acceptThen()
		body := p.parseStatementsUntil(lexer.KwEnd)
		ins = append(ins, ast.NewCaseIn(inTok, pattern, guard, guardIsUnless, body))
	}
	var elseBody ast.Node
	if p.accept(lexer.KwElse) {
		elseBody = p.parseStatementsUntil(lexer.KwEnd)
	}
	p.expect(lexer.KwEnd)
	return ast.NewCaseInStmt(tok, subject, ins, elseBody)
}

// parsePattern parses a `case/in` pattern. Array/hash patterns reuse the
// literal array/hash grammar; a bareword binds a fresh pattern-local
// variable instead of reading an existing one.
func (p *Parser) parsePattern() ast.Node {
	switch p.curTok.Kind {
	case lexer.LBracket:
		return p.parseArrayPattern()
	case lexer.LBrace:
		return p.parseHashPattern()
	case lexer.Caret:
		tok := p.parseTok()
		expr := p.parseExpression(precUnaryBang)
		return ast.NewPin(tok, expr)
	case lexer.BareName:
		tok := p.parseTok()
		p.scope.declare(tok.Literal)
		return ast.NewLocalIdentifier(tok, tok.Literal, true)
	default:
		return p.parseExpression(precRange)
	}
}

func (p *Parser) parseArrayPattern() ast.Node {
	tok := p.parseTok()
	var elems []ast.Node
	p.skipEols()
	for !p.at(lexer.RBracket) {
		if p.at(lexer.Star) {
			starTok := p.parseTok()
			var name string
			if p.at(lexer.BareName) {
				name = p.curTok.Literal
				p.scope.declare(name)
				p.advance()
			}
			elems = append(elems, ast.NewSplat(starTok, identOrNil(starTok, name)))
		} else {
			elems = append(elems, p.parsePattern())
		}
		p.skipEols()
		if !p.accept(lexer.Comma) {
			break
		}
		p.skipEols()
	}
	p.expect(lexer.RBracket)
	return ast.NewArrayPattern(tok, elems)
}

func identOrNil(tok lexer.Token, name string) ast.Node {
	if name == "" {
		return nil
	}
	return ast.NewLocalIdentifier(tok, name, true)
}

func (p *Parser) parseHashPattern() ast.Node {
	tok := p.parseTok()
	var entries []ast.HashEntry
	p.skipEols()
	for !p.at(lexer.RBrace) {
		if p.at(lexer.StarStar) {
			starTok := p.parseTok()
			name := ""
			if p.at(lexer.BareName) {
				name = p.curTok.Literal
				p.scope.declare(name)
				p.advance()
			} else if p.at(lexer.KwNil) {
				p.advance()
			}
			entries = append(entries, ast.HashEntry{Key: ast.NewKeywordRestPattern(starTok, name)})
		} else {
			keyTok := p.expect(lexer.BareName)
			p.expect(lexer.Colon)
			var val ast.Node
			if !p.at(lexer.Comma) && !p.at(lexer.RBrace) {
				val = p.parsePattern()
			} else {
				p.scope.declare(keyTok.Literal)
				val = ast.NewLocalIdentifier(keyTok, keyTok.Literal, true)
			}
			entries = append(entries, ast.HashEntry{Key: ast.NewSymbolKey(keyTok, keyTok.Literal), Value: val})
		}
		p.skipEols()
		if !p.accept(lexer.Comma) {
			break
		}
		p.skipEols()
	}
	p.expect(lexer.RBrace)
	return ast.NewHashPattern(tok, entries)
}

func (p *Parser) parseBeginExpr() ast.Node {
	tok := p.parseTok()
	body := p.parseStatementsUntil(lexer.KwEnd)
	rescues, elseBody, ensure := p.parseRescueClauses()
	p.expect(lexer.KwEnd)
	if rescues == nil && elseBody == nil && ensure == nil {
		return ast.NewBegin(tok, body)
	}
	return ast.NewBeginRescue(tok, body, rescues, elseBody, ensure)
}

func (p *Parser) parseRescueClauses() ([]*ast.Rescue, ast.Node, ast.Node) {
	var rescues []*ast.Rescue
	for p.at(lexer.KwRescue) {
		rescTok := p.parseTok()
		var classes []ast.Node
		varName := ""
		if !p.at(lexer.Eol) && !p.at(lexer.HashRocket) && !p.at(lexer.KwThen) {
			classes = append(classes, p.parseExpression(precAssign))
			for p.accept(lexer.Comma) {
				classes = append(classes, p.parseExpression(precAssign))
			}
		}
		if p.accept(lexer.HashRocket) {
			varName = p.expect(lexer.BareName).Literal
			p.scope.declare(varName)
		}
		p.acceptThen()
		body := p.parseStatementsUntil(lexer.KwEnd)
		rescues = append(rescues, ast.NewRescue(rescTok, classes, varName, body))
	}
	var elseBody ast.Node
	if p.accept(lexer.KwElse) {
		elseBody = p.parseStatementsUntil(lexer.KwEnd)
	}
	var ensure ast.Node
	if p.accept(lexer.KwEnsure) {
		ensure = p.parseStatementsUntil(lexer.KwEnd)
	}
	return rescues, elseBody, ensure
}

func (p *Parser) parseBreak() ast.Node {
	tok := p.parseTok()
	var val ast.Node
	if p.canStartImplicitArgs() {
		val = p.parseExpression(precAssign)
	}
	return ast.NewBreak(tok, val)
}

func (p *Parser) parseNext() ast.Node {
	tok := p.parseTok()
	var val ast.Node
	if p.canStartImplicitArgs() {
		val = p.parseExpression(precAssign)
	}
	return ast.NewNext(tok, val)
}

func (p *Parser) parseRedo() ast.Node  { return ast.NewRedo(p.parseTok()) }
func (p *Parser) parseRetry() ast.Node { return ast.NewRetry(p.parseTok()) }

func (p *Parser) parseReturn() ast.Node {
	tok := p.parseTok()
	if p.canStartImplicitArgs() {
		first := p.parseExpression(precAssign)
		if p.at(lexer.Comma) {
			elems := []ast.Node{first}
			for p.accept(lexer.Comma) {
				elems = append(elems, p.parseExpression(precAssign))
			}
			return ast.NewReturn(tok, ast.NewArray(tok, elems))
		}
		return ast.NewReturn(tok, first)
	}
	return ast.NewReturn(tok, nil)
}

func (p *Parser) parseAlias() ast.Node {
	tok := p.parseTok()
	newName := p.parseAliasName()
	oldName := p.parseAliasName()
	return ast.NewAlias(tok, newName, oldName)
}

func (p *Parser) parseAliasName() ast.Node {
	if p.at(lexer.GVar) {
		t := p.parseTok()
		return ast.NewSymbol(t, "$"+t.Literal)
	}
	if p.at(lexer.Symbol) {
		t := p.parseTok()
		return ast.NewSymbol(t, t.Literal)
	}
	t := p.curTok
	name := t.Literal
	if t.Kind.IsOperator() || t.Kind.IsKeyword() {
		name = opLiteral(t)
	}
	p.advance()
	return ast.NewSymbol(t, name)
}

func (p *Parser) parseUndef() ast.Node {
	tok := p.parseTok()
	names := []ast.Node{p.parseAliasName()}
	for p.accept(lexer.Comma) {
		names = append(names, p.parseAliasName())
	}
	return ast.NewUndef(tok, names)
}

func (p *Parser) parseBeginBlock() ast.Node {
	tok := p.parseTok()
	p.expect(lexer.LBrace)
	body := p.parseStatementsUntil(lexer.RBrace)
	p.expect(lexer.RBrace)
	return ast.NewBeginBlock(tok, body)
}

func (p *Parser) parseEndBlock() ast.Node {
	tok := p.parseTok()
	p.expect(lexer.LBrace)
	body := p.parseStatementsUntil(lexer.RBrace)
	p.expect(lexer.RBrace)
	return ast.NewEndBlock(tok, body)
}
