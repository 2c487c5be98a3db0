package parser

import (
	"github.com/natalie-lang/natalie-parser/internal/ast"
	"github.com/natalie-lang/natalie-parser/internal/lexer"
)

func (p *Parser) registerPrefixFns() {
	p.registerPrefix(lexer.Integer, p.parseIntegerLiteral)
	p.registerPrefix(lexer.Bignum, p.parseBignumLiteral)
	p.registerPrefix(lexer.Float, p.parseFloatLiteral)
	p.registerPrefix(lexer.Rational, p.parseRationalLiteral)
	p.registerPrefix(lexer.Symbol, p.parseSymbolLiteral)
	p.registerPrefix(lexer.SymbolBegin, p.parseInterpolatedSymbol)
	p.registerPrefix(lexer.String, p.parseStringLiteral)
	p.registerPrefix(lexer.StringBegin, p.parseInterpolatedString)
	p.registerPrefix(lexer.Regexp, p.parseRegexpLiteral)
	p.registerPrefix(lexer.RegexpBegin, p.parseInterpolatedRegexp)
	p.registerPrefix(lexer.Shell, p.parseShellLiteral)
	p.registerPrefix(lexer.ShellBegin, p.parseInterpolatedShell)
	p.registerPrefix(lexer.WordsBegin, p.parseWordArray)
	p.registerPrefix(lexer.SymbolsBegin, p.parseSymbolArray)
	p.registerPrefix(lexer.HeredocBegin, p.parseInterpolatedString)
	p.registerPrefix(lexer.BackRef, p.parseBackRef)
	p.registerPrefix(lexer.NthRef, p.parseNthRef)
	p.registerPrefix(lexer.EncodingConst, p.parseEncoding)
	p.registerPrefix(lexer.KwNil, p.parseNil)
	p.registerPrefix(lexer.KwTrue, p.parseTrue)
	p.registerPrefix(lexer.KwFalse, p.parseFalse)
	p.registerPrefix(lexer.KwSelf, p.parseSelf)
	p.registerPrefix(lexer.BareName, p.parseBareName)
	p.registerPrefix(lexer.Constant, p.parseConstant)
	p.registerPrefix(lexer.IVar, p.parseIVar)
	p.registerPrefix(lexer.CVar, p.parseCVar)
	p.registerPrefix(lexer.GVar, p.parseGVar)
	p.registerPrefix(lexer.Colon2, p.parseColon3)
	p.registerPrefix(lexer.LParen, p.parseGroupedExpr)
	p.registerPrefix(lexer.LBracket, p.parseArrayLiteral)
	p.registerPrefix(lexer.LBrace, p.parseHashLiteral)
	p.registerPrefix(lexer.Minus, p.parseUnary)
	p.registerPrefix(lexer.Plus, p.parseUnary)
	p.registerPrefix(lexer.Bang, p.parseUnary)
	p.registerPrefix(lexer.Tilde, p.parseUnary)
	p.registerPrefix(lexer.Amp, p.parseBlockPass)
	p.registerPrefix(lexer.Star, p.parseSplat)
	p.registerPrefix(lexer.StarStar, p.parseKeywordSplat)
	p.registerPrefix(lexer.StabbyArrow, p.parseStabbyProc)
	p.registerPrefix(lexer.Dot2, p.parseBeginlessRange)
	p.registerPrefix(lexer.Dot3, p.parseBeginlessRange)
	p.registerPrefix(lexer.KwNot, p.parseNotKeyword)
	p.registerPrefix(lexer.KwDefined, p.parseDefined)
	p.registerPrefix(lexer.KwYield, p.parseYield)
	p.registerPrefix(lexer.KwSuper, p.parseSuper)
	p.registerPrefix(lexer.KwIf, p.parseIfExpr)
	p.registerPrefix(lexer.KwUnless, p.parseUnlessExpr)
	p.registerPrefix(lexer.KwWhile, p.parseWhileExpr)
	p.registerPrefix(lexer.KwUntil, p.parseUntilExpr)
	p.registerPrefix(lexer.KwCase, p.parseCaseExpr)
	p.registerPrefix(lexer.KwFor, p.parseForExpr)
	p.registerPrefix(lexer.KwBegin, p.parseBeginExpr)
	p.registerPrefix(lexer.KwDef, p.parseDef)
	p.registerPrefix(lexer.KwClass, p.parseClassOrSclass)
	p.registerPrefix(lexer.KwModule, p.parseModule)
	p.registerPrefix(lexer.KwBreak, p.parseBreak)
	p.registerPrefix(lexer.KwNext, p.parseNext)
	p.registerPrefix(lexer.KwRedo, p.parseRedo)
	p.registerPrefix(lexer.KwRetry, p.parseRetry)
	p.registerPrefix(lexer.KwReturn, p.parseReturn)
	p.registerPrefix(lexer.KwAlias, p.parseAlias)
	p.registerPrefix(lexer.KwUndef, p.parseUndef)
	p.registerPrefix(lexer.KwBeginBlock, p.parseBeginBlock)
	p.registerPrefix(lexer.KwEndBlock, p.parseEndBlock)
	p.registerPrefix(lexer.KwLambda, p.parseLambdaKeyword)
}

func (p *Parser) registerInfixFns() {
	p.registerInfix(lexer.Plus, p.parseBinary)
	p.registerInfix(lexer.Minus, p.parseBinary)
	p.registerInfix(lexer.Star, p.parseBinary)
	p.registerInfix(lexer.Slash, p.parseBinary)
	p.registerInfix(lexer.Percent, p.parseBinary)
	p.registerInfix(lexer.StarStar, p.parseBinaryRightAssoc)
	p.registerInfix(lexer.Pipe, p.parseBinary)
	p.registerInfix(lexer.Amp, p.parseBinary)
	p.registerInfix(lexer.Caret, p.parseBinary)
	p.registerInfix(lexer.LShift, p.parseBinary)
	p.registerInfix(lexer.RShift, p.parseBinary)
	p.registerInfix(lexer.CmpEq, p.parseBinary)
	p.registerInfix(lexer.NotEq, p.parseBinary)
	p.registerInfix(lexer.CaseEq, p.parseBinary)
	p.registerInfix(lexer.Spaceship, p.parseBinary)
	p.registerInfix(lexer.Lt, p.parseBinary)
	p.registerInfix(lexer.Le, p.parseBinary)
	p.registerInfix(lexer.Gt, p.parseBinary)
	p.registerInfix(lexer.Ge, p.parseBinary)
	p.registerInfix(lexer.Match, p.parseMatchInfix)
	p.registerInfix(lexer.NotMatch, p.parseNotMatchInfix)
	p.registerInfix(lexer.Amp2, p.parseLogicalAnd)
	p.registerInfix(lexer.Pipe2, p.parseLogicalOr)
	p.registerInfix(lexer.KwAnd, p.parseLogicalAnd)
	p.registerInfix(lexer.KwOr, p.parseLogicalOr)
	p.registerInfix(lexer.Dot2, p.parseRangeInfix)
	p.registerInfix(lexer.Dot3, p.parseRangeInfix)
	p.registerInfix(lexer.Assign, p.parseAssignInfix)
	p.registerInfix(lexer.OpAssign, p.parseOpAssignInfix)
	p.registerInfix(lexer.Question, p.parseTernary)
	p.registerInfix(lexer.Dot, p.parseCallOrAttr)
	p.registerInfix(lexer.SafeNav, p.parseSafeCallOrAttr)
	p.registerInfix(lexer.Colon2, p.parseColon2Infix)
	p.registerInfix(lexer.LBracket, p.parseIndexInfix)
	p.registerInfix(lexer.LParen, p.parseBareCallWithParens)
}

// parseExpression is the Pratt loop: parse a prefix (nud), then keep
// folding in infix (led) operators whose precedence exceeds minPrec.
func (p *Parser) parseExpression(minPrec int) ast.Node {
	prefix, ok := p.prefixFns[p.curTok.Kind]
	if !ok {
		p.fail("expression")
	}
	left := prefix()

	for !p.at(lexer.Eol) && !p.atEof() && minPrec < p.curPrecedence() {
		infix, ok := p.infixFns[p.curTok.Kind]
		if !ok {
			break
		}
		left = infix(left)
	}
	return left
}

func (p *Parser) parseTok() lexer.Token {
	tok := p.curTok
	p.advance()
	return tok
}

func (p *Parser) parseIntegerLiteral() ast.Node {
	tok := p.parseTok()
	return ast.NewFixnum(tok, tok.Fixnum)
}

func (p *Parser) parseBignumLiteral() ast.Node {
	tok := p.parseTok()
	return ast.NewBignum(tok, tok.Literal)
}

func (p *Parser) parseFloatLiteral() ast.Node {
	tok := p.parseTok()
	return ast.NewFloat(tok, tok.Double)
}

func (p *Parser) parseRationalLiteral() ast.Node {
	tok := p.parseTok()
	return ast.NewRational(tok, tok.Literal)
}

func (p *Parser) parseSymbolLiteral() ast.Node {
	tok := p.parseTok()
	return ast.NewSymbol(tok, tok.Literal)
}

func (p *Parser) parseStringLiteral() ast.Node {
	tok := p.parseTok()
	node := ast.NewString(tok, tok.Literal)
	return p.maybeConcatAdjacentString(node)
}

// maybeConcatAdjacentString implements adjacent string-literal
// concatenation: a run of plain literals ("a" "b") becomes a single String
// node; a run that includes an interpolated literal is folded into one dstr.
func (p *Parser) maybeConcatAdjacentString(first ast.Node) ast.Node {
	if !p.at(lexer.String) && !p.at(lexer.StringBegin) {
		return first
	}
	parts := []ast.Node{first}
	for p.at(lexer.String) || p.at(lexer.StringBegin) {
		if p.at(lexer.String) {
			tok := p.parseTok()
			parts = append(parts, ast.NewString(tok, tok.Literal))
		} else {
			parts = append(parts, p.parseInterpolatedString())
		}
	}
	value, plain := "", true
	for _, part := range parts {
		s, ok := part.(*ast.String)
		if !ok {
			plain = false
			break
		}
		value += s.Value
	}
	if plain {
		return ast.NewString(first.Tok(), value)
	}
	return ast.NewInterpolatedString(first.Tok(), parts)
}

func (p *Parser) parseRegexpLiteral() ast.Node {
	tok := p.parseTok()
	return ast.NewRegexp(tok, tok.Literal, tok.Fixnum)
}

func (p *Parser) parseShellLiteral() ast.Node {
	tok := p.parseTok()
	return ast.NewShell(tok, tok.Literal)
}

func (p *Parser) parseBackRef() ast.Node {
	tok := p.parseTok()
	return ast.NewBackRef(tok, tok.Literal)
}

func (p *Parser) parseNthRef() ast.Node {
	tok := p.parseTok()
	return ast.NewNthRef(tok, tok.Fixnum)
}

func (p *Parser) parseEncoding() ast.Node {
	tok := p.parseTok()
	return ast.NewEncoding(tok)
}

func (p *Parser) parseNil() ast.Node   { return ast.NewNil(p.parseTok()) }
func (p *Parser) parseTrue() ast.Node  { return ast.NewTrue(p.parseTok()) }
func (p *Parser) parseFalse() ast.Node { return ast.NewFalse(p.parseTok()) }
func (p *Parser) parseSelf() ast.Node  { return ast.NewSelf(p.parseTok()) }

func (p *Parser) parseBareName() ast.Node {
	tok := p.parseTok()
	name := tok.Literal
	if p.scope.has(name) {
		return ast.NewLocalIdentifier(tok, name, true)
	}
	// A bareword not in scope is a call; collect an implicit argument
	// list if one follows (spec §4.3 implicit-call disambiguation).
	if p.at(lexer.LParen) && !p.curTok.WhitespacePrecedes {
		args, block := p.parseParenArgsAndBlock()
		call := ast.NewCall(tok, nil, name, args)
		call.Block = block
		return call
	}
	if p.canStartImplicitArgs() {
		args := p.parseBareCallArgs()
		block := p.parseOptionalBlock()
		call := ast.NewCall(tok, nil, name, args)
		call.Block = block
		return call
	}
	ident := ast.NewLocalIdentifier(tok, name, false)
	if block := p.parseOptionalBlock(); block != nil {
		call := ast.NewCall(tok, nil, name, nil)
		call.Block = block
		return call
	}
	return ident
}

func (p *Parser) parseConstant() ast.Node {
	tok := p.parseTok()
	if p.at(lexer.LParen) && !p.curTok.WhitespacePrecedes {
		args, block := p.parseParenArgsAndBlock()
		call := ast.NewCall(tok, nil, tok.Literal, args)
		call.Block = block
		return call
	}
	return ast.NewConstant(tok, tok.Literal)
}

func (p *Parser) parseIVar() ast.Node {
	tok := p.parseTok()
	return ast.NewIVarIdentifier(tok, tok.Literal)
}

func (p *Parser) parseCVar() ast.Node {
	tok := p.parseTok()
	return ast.NewCVarIdentifier(tok, tok.Literal)
}

func (p *Parser) parseGVar() ast.Node {
	tok := p.parseTok()
	return ast.NewGVarIdentifier(tok, tok.Literal)
}

func (p *Parser) parseColon3() ast.Node {
	tok := p.parseTok()
	name := p.expect(lexer.Constant)
	return ast.NewColon3(tok, name.Literal)
}

func (p *Parser) parseGroupedExpr() ast.Node {
	p.advance() // consume '('
	p.skipEols()
	if p.at(lexer.RParen) {
		tok := p.parseTok()
		return ast.NewNil(tok)
	}
	expr := p.parseStatementExpr()
	p.skipEols()
	p.expect(lexer.RParen)
	return expr
}

func (p *Parser) parseUnary() ast.Node {
	tok := p.parseTok()
	operand := p.parseExpression(precUnaryMinus)
	op := unaryOpName(tok.Kind)
	return ast.NewUnaryOp(tok, op, operand)
}

func unaryOpName(k lexer.Kind) string {
	switch k {
	case lexer.Minus:
		return "-@"
	case lexer.Plus:
		return "+@"
	case lexer.Bang:
		return "!"
	case lexer.Tilde:
		return "~"
	default:
		return ""
	}
}

func (p *Parser) parseNotKeyword() ast.Node {
	tok := p.parseTok()
	expr := p.parseExpression(precKeywordNot)
	return ast.NewNot(tok, expr)
}

func (p *Parser) parseDefined() ast.Node {
	tok := p.parseTok()
	hasParen := p.accept(lexer.LParen)
	expr := p.parseExpression(precUnaryBang)
	if hasParen {
		p.expect(lexer.RParen)
	}
	return ast.NewDefined(tok, expr)
}

func (p *Parser) parseBlockPass() ast.Node {
	tok := p.parseTok()
	if p.at(lexer.Comma) || p.at(lexer.RParen) {
		return ast.NewBlockPass(tok, nil)
	}
	val := p.parseExpression(precUnaryBang)
	return ast.NewBlockPass(tok, val)
}

func (p *Parser) parseSplat() ast.Node {
	tok := p.parseTok()
	if p.at(lexer.Comma) || p.at(lexer.RParen) || p.at(lexer.RBracket) || p.at(lexer.Assign) {
		return ast.NewSplat(tok, nil)
	}
	val := p.parseExpression(precUnaryBang)
	return ast.NewSplat(tok, val)
}

func (p *Parser) parseKeywordSplat() ast.Node {
	tok := p.parseTok()
	if p.at(lexer.KwNil) {
		p.advance()
		return ast.NewKeywordRestPattern(tok, "")
	}
	val := p.parseExpression(precUnaryBang)
	return ast.NewKeywordSplat(tok, val)
}

func (p *Parser) parseBeginlessRange() ast.Node {
	tok := p.parseTok()
	last := p.parseExpression(precRange)
	return ast.NewRange(tok, nil, last, tok.Kind == lexer.Dot3)
}

func (p *Parser) parseBinary(left ast.Node) ast.Node {
	return p.binaryOpInfix(left, false)
}

func (p *Parser) parseBinaryRightAssoc(left ast.Node) ast.Node {
	return p.binaryOpInfix(left, true)
}

func (p *Parser) binaryOpInfix(left ast.Node, rightAssoc bool) ast.Node {
	tok := p.curTok
	prec := p.curPrecedence()
	p.advance()
	nextMin := prec
	if rightAssoc {
		nextMin = prec - 1
	}
	right := p.parseExpression(nextMin)
	return ast.NewInfixOp(tok, left, opLiteral(tok), right)
}

func opLiteral(tok lexer.Token) string {
	if tok.Literal != "" {
		return tok.Literal
	}
	return tok.Kind.String()
}

func (p *Parser) parseMatchInfix(left ast.Node) ast.Node {
	tok := p.curTok
	p.advance()
	right := p.parseExpression(precEquality)
	if _, ok := left.(*ast.Regexp); ok {
		return ast.NewMatch2(tok, left, right)
	}
	if _, ok := right.(*ast.Regexp); ok {
		return ast.NewMatch3(tok, left, right)
	}
	return ast.NewMatch(tok, left, right)
}

func (p *Parser) parseNotMatchInfix(left ast.Node) ast.Node {
	tok := p.curTok
	p.advance()
	right := p.parseExpression(precEquality)
	var inner ast.Node
	switch {
	case isRegexpNode(left):
		inner = ast.NewMatch2(tok, left, right)
	case isRegexpNode(right):
		inner = ast.NewMatch3(tok, left, right)
	default:
		inner = ast.NewMatch(tok, left, right)
	}
	return ast.NewNotMatch(tok, inner)
}

func isRegexpNode(n ast.Node) bool {
	switch n.(type) {
	case *ast.Regexp, *ast.InterpolatedRegexp:
		return true
	default:
		return false
	}
}

func (p *Parser) parseLogicalAnd(left ast.Node) ast.Node {
	tok := p.curTok
	prec := p.curPrecedence()
	p.advance()
	right := p.parseExpression(prec)
	return ast.NewLogicalAnd(tok, left, right)
}

func (p *Parser) parseLogicalOr(left ast.Node) ast.Node {
	tok := p.curTok
	prec := p.curPrecedence()
	p.advance()
	right := p.parseExpression(prec)
	return ast.NewLogicalOr(tok, left, right)
}

func (p *Parser) parseRangeInfix(left ast.Node) ast.Node {
	tok := p.curTok
	excludeEnd := tok.Kind == lexer.Dot3
	p.advance()
	if p.endsRangeExpr() {
		return ast.NewRange(tok, left, nil, excludeEnd)
	}
	right := p.parseExpression(precRange)
	return ast.NewRange(tok, left, right, excludeEnd)
}

// endsRangeExpr reports whether curTok cannot start an expression,
// meaning an endless range (`a..`) ends here.
func (p *Parser) endsRangeExpr() bool {
	switch p.curTok.Kind {
	case lexer.Eol, lexer.EOF, lexer.RParen, lexer.RBracket, lexer.RBrace, lexer.Comma,
		lexer.KwThen, lexer.KwDo, lexer.KwEnd:
		return true
	default:
		return false
	}
}

func (p *Parser) parseTernary(left ast.Node) ast.Node {
	tok := p.curTok
	p.advance()
	p.skipEols()
	thenExpr := p.parseExpression(precTernary)
	p.skipEols()
	p.expect(lexer.Colon)
	p.skipEols()
	elseExpr := p.parseExpression(precTernary)
	return ast.NewIf(tok, left, thenExpr, elseExpr)
}

func (p *Parser) parseAssignInfix(left ast.Node) ast.Node {
	tok := p.curTok
	p.advance()
	p.skipEols()
	value := p.parseExpression(precAssign - 1)
	return p.buildAssignment(tok, left, value)
}

func (p *Parser) buildAssignment(tok lexer.Token, target, value ast.Node) ast.Node {
	// Only a bare local/call identifier target declares a local; ivar/cvar/
	// gvar targets have their own write-position AssignKind and must not
	// pollute the bareword scope.
	if ident, ok := target.(*ast.Identifier); ok && ident.AssignKind() == ast.KindLasgn {
		p.declareIfLocal(ident)
	}
	// `a[i] = v` / `a.m = v`: rewrite the receiver call into an assignment
	// call (`[]=` / `m=`) with value appended, the way a plain attrasgn
	// collapses into an ordinary call in this grammar's sexp output.
	if call, ok := target.(*ast.Call); ok && call.Receiver != nil && call.Block == nil {
		msg := call.Msg
		if msg != "[]" {
			msg += "="
		} else {
			msg = "[]="
		}
		args := append(append([]ast.Node{}, call.Args...), value)
		return ast.NewCall(tok, call.Receiver, msg, args)
	}
	return ast.NewAssignment(tok, target, value)
}

func (p *Parser) declareIfLocal(ident *ast.Identifier) {
	p.scope.declare(ident.Name)
}

func (p *Parser) parseOpAssignInfix(left ast.Node) ast.Node {
	tok := p.curTok
	op := tok.Literal
	p.advance()
	p.skipEols()
	value := p.parseExpression(precAssign - 1)

	if ident, ok := left.(*ast.Identifier); ok && ident.AssignKind() == ast.KindLasgn {
		p.declareIfLocal(ident)
	}

	switch op {
	case "&&":
		return ast.NewOpAssignAnd(tok, left, value)
	case "||":
		return ast.NewOpAssignOr(tok, left, value)
	}

	if call, ok := left.(*ast.Call); ok && call.Receiver != nil && call.Block == nil {
		if call.Msg == "[]" {
			return ast.NewOpAssign1(tok, call.Receiver, call.Args, op, value)
		}
		if len(call.Args) == 0 {
			return ast.NewOpAssign2(tok, call.Receiver, call.Msg, op, value)
		}
	}
	return ast.NewOpAssign(tok, left, op, value)
}

func (p *Parser) parseStabbyProc() ast.Node {
	tok := p.parseTok()
	var params []ast.Node
	if p.accept(lexer.LParen) {
		params = p.parseParamList(lexer.RParen)
		p.expect(lexer.RParen)
	} else if !p.at(lexer.LBrace) && !p.at(lexer.KwDo) {
		params = p.parseParamList(lexer.LBrace)
	}

	outer := p.scope
	p.scope = outer.clone()
	for _, prm := range params {
		declareParamNames(p.scope, prm)
	}

	var body ast.Node
	if p.accept(lexer.LBrace) {
		body = p.parseStatementsUntil(lexer.RBrace)
		p.expect(lexer.RBrace)
	} else {
		p.expect(lexer.KwDo)
		body = p.parseStatementsUntil(lexer.KwEnd)
		p.expect(lexer.KwEnd)
	}
	p.scope = outer

	return ast.NewStabbyProc(tok, params, body)
}

func (p *Parser) parseLambdaKeyword() ast.Node {
	tok := p.parseTok()
	block := p.parseOptionalBlock()
	call := ast.NewCall(tok, nil, "lambda", nil)
	call.Block = block
	return call
}

func declareParamNames(s *localScope, n ast.Node) {
	switch t := n.(type) {
	case *ast.Arg:
		s.declare(t.Name)
	case *ast.KeywordArg:
		if t.Name != "" {
			s.declare(t.Name)
		}
	case *ast.ShadowArg:
		s.declare(t.Name)
	case *ast.BlockArg:
		s.declare(t.Name)
	}
}
