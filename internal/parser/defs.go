package parser

import (
	"github.com/natalie-lang/natalie-parser/internal/ast"
	"github.com/natalie-lang/natalie-parser/internal/lexer"
)

// parseDef parses `def name(params); body; end`, `def self.name...end`, and
// `def recv.name...end`, the singleton-method (defs) forms distinguished by
// a receiver followed by '.' before the method name.
func (p *Parser) parseDef() ast.Node {
	tok := p.parseTok()

	var receiver ast.Node
	if p.peekTok.Kind == lexer.Dot && (p.at(lexer.KwSelf) || p.at(lexer.BareName) || p.at(lexer.Constant)) {
		switch {
		case p.at(lexer.KwSelf):
			receiver = p.parseSelf()
		case p.at(lexer.Constant):
			ctok := p.parseTok()
			receiver = ast.NewConstant(ctok, ctok.Literal)
		default:
			ctok := p.parseTok()
			receiver = ast.NewLocalIdentifier(ctok, ctok.Literal, p.scope.has(ctok.Literal))
		}
		p.expect(lexer.Dot)
	}

	name := p.parseMethodName()

	outer := p.scope
	p.scope = newLocalScope()

	var params []ast.Node
	if p.accept(lexer.LParen) {
		params = p.parseParamList(lexer.RParen)
		p.expect(lexer.RParen)
	} else if !p.at(lexer.Eol) && !p.at(lexer.Assign) {
		params = p.parseParamList(lexer.Eol)
	}
	for _, prm := range params {
		declareParamNames(p.scope, prm)
	}

	// Endless method: `def name(params) = expr`.
	if p.accept(lexer.Assign) {
		body := p.parseStatementExpr()
		p.scope = outer
		if receiver != nil {
			return ast.NewDefs(tok, receiver, name, params, body, "")
		}
		return ast.NewDef(tok, name, params, body, "")
	}

	body := p.parseStatementsUntil(lexer.KwEnd)
	rescues, elseBody, ensure := p.parseRescueClauses()
	p.expect(lexer.KwEnd)
	if rescues != nil || elseBody != nil || ensure != nil {
		body = ast.NewBeginRescue(tok, body, rescues, elseBody, ensure)
	}
	p.scope = outer

	doc := tok.Doc
	if receiver != nil {
		return ast.NewDefs(tok, receiver, name, params, body, doc)
	}
	return ast.NewDef(tok, name, params, body, doc)
}

// parseMethodName reads a method name in definition position: a plain
// bareword/constant, an operator symbol (`+`, `<=>`, ...), or the indexing
// names `[]`/`[]=`.
func (p *Parser) parseMethodName() string {
	if p.at(lexer.LBracket) {
		p.advance()
		p.expect(lexer.RBracket)
		if p.at(lexer.Assign) && !p.curTok.WhitespacePrecedes {
			p.advance()
			return "[]="
		}
		return "[]"
	}
	if p.curTok.Kind.IsOperator() || p.curTok.Kind.IsKeyword() {
		name := opLiteral(p.curTok)
		p.advance()
		return name
	}
	if p.at(lexer.BareName) || p.at(lexer.Constant) {
		name := p.curTok.Literal
		p.advance()
		return name
	}
	p.fail("method name")
	return ""
}

// parseParamList parses a comma-separated parameter list up to (but not
// consuming) closing; closing may be RParen, Pipe, or Eol for the
// parenthesized, block, and bare-def-params forms respectively.
func (p *Parser) parseParamList(closing lexer.Kind) []ast.Node {
	var params []ast.Node
	p.skipEols()
	if p.at(closing) {
		return params
	}
	for {
		if p.at(closing) {
			break
		}
		if closing == lexer.Pipe && p.at(lexer.Eol) {
			// `|x; shadow|` block-local shadow variables: the lexer folds
			// the ';' separator to Eol along with every other semicolon.
			p.advance()
			for {
				nameTok := p.expect(lexer.BareName)
				params = append(params, ast.NewShadowArg(nameTok, nameTok.Literal))
				if !p.accept(lexer.Comma) {
					break
				}
			}
			break
		}
		params = append(params, p.parseOneParam())
		if !p.accept(lexer.Comma) {
			break
		}
		p.skipEols()
	}
	return params
}

func (p *Parser) parseOneParam() ast.Node {
	switch p.curTok.Kind {
	case lexer.Dot3:
		return ast.NewForwardArgs(p.parseTok())
	case lexer.Star:
		tok := p.parseTok()
		name := ""
		if p.at(lexer.BareName) {
			name = p.curTok.Literal
			p.advance()
		}
		return ast.NewSplatArg(tok, name)
	case lexer.StarStar:
		tok := p.parseTok()
		name := ""
		if p.at(lexer.BareName) {
			name = p.curTok.Literal
			p.advance()
		} else if p.at(lexer.KwNil) {
			p.advance()
		}
		return ast.NewDoubleSplatArg(tok, name)
	case lexer.Amp:
		tok := p.parseTok()
		name := ""
		if p.at(lexer.BareName) {
			name = p.curTok.Literal
			p.advance()
		}
		return ast.NewBlockArg(tok, name)
	case lexer.LParen:
		// Destructured positional param `(a, b)`; modeled as a nested
		// required-arg group rendered the same way the grammar treats a
		// masgn-style parameter list.
		p.advance()
		inner := p.parseParamList(lexer.RParen)
		p.expect(lexer.RParen)
		return ast.NewArg(p.curTok, nestedParamName(inner))
	}

	nameTok := p.expect(lexer.BareName)
	if p.accept(lexer.Colon) {
		if p.at(lexer.Comma) || p.at(lexer.RParen) || p.at(lexer.Pipe) || p.at(lexer.Eol) || p.at(lexer.Semi) {
			return ast.NewKeywordArg(nameTok, nameTok.Literal, nil, true)
		}
		def := p.parseExpression(precAssign)
		return ast.NewKeywordArg(nameTok, nameTok.Literal, def, false)
	}
	if p.accept(lexer.Assign) {
		def := p.parseExpression(precAssign)
		return ast.NewOptionalArg(nameTok, nameTok.Literal, def)
	}
	return ast.NewArg(nameTok, nameTok.Literal)
}

func nestedParamName(params []ast.Node) string {
	if len(params) == 0 {
		return ""
	}
	if a, ok := params[0].(*ast.Arg); ok {
		return a.Name
	}
	return ""
}

// parseClassOrSclass parses `class Name < Super; ...; end` and the
// singleton-class form `class << expr; ...; end`.
func (p *Parser) parseClassOrSclass() ast.Node {
	tok := p.parseTok()
	if p.accept(lexer.LShift) {
		target := p.parseExpression(precLowest)
		p.skipEols()
		outer := p.scope
		p.scope = newLocalScope()
		body := p.parseStatementsUntil(lexer.KwEnd)
		p.expect(lexer.KwEnd)
		p.scope = outer
		return ast.NewSclass(tok, target, body)
	}

	name := p.parseConstantPath()
	var superclass ast.Node
	if p.accept(lexer.Lt) {
		superclass = p.parseExpression(precLowest)
	}
	p.skipEols()

	outer := p.scope
	p.scope = newLocalScope()
	body := p.parseStatementsUntil(lexer.KwEnd)
	p.expect(lexer.KwEnd)
	p.scope = outer

	return ast.NewClass(tok, name, superclass, body, tok.Doc)
}

func (p *Parser) parseModule() ast.Node {
	tok := p.parseTok()
	name := p.parseConstantPath()
	p.skipEols()

	outer := p.scope
	p.scope = newLocalScope()
	body := p.parseStatementsUntil(lexer.KwEnd)
	p.expect(lexer.KwEnd)
	p.scope = outer

	return ast.NewModule(tok, name, body, tok.Doc)
}

// parseConstantPath parses a class/module name, including `Scope::Name`
// qualification.
func (p *Parser) parseConstantPath() ast.Node {
	var node ast.Node
	if p.accept(lexer.Colon2) {
		tok := p.expect(lexer.Constant)
		node = ast.NewColon3(tok, tok.Literal)
	} else {
		tok := p.expect(lexer.Constant)
		node = ast.NewConstant(tok, tok.Literal)
	}
	for p.at(lexer.Colon2) {
		tok := p.parseTok()
		nameTok := p.expect(lexer.Constant)
		node = ast.NewColon2(tok, node, nameTok.Literal)
	}
	return node
}
