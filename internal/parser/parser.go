// Package parser implements a Pratt (top-down operator precedence) parser
// producing an internal/ast.Node tree from source text. Diagnostics are
// raised, not accumulated: the first syntax error aborts parsing via a
// single panic/recover boundary at Tree (spec: "raise, no recovery"),
// mirroring go/parser's bailout idiom rather than the teacher's
// accumulate-and-continue Errors() slice.
package parser

import (
	"strings"

	"github.com/natalie-lang/natalie-parser/internal/ast"
	"github.com/natalie-lang/natalie-parser/internal/diag"
	"github.com/natalie-lang/natalie-parser/internal/lexer"
)

type (
	prefixParseFn func() ast.Node
	infixParseFn  func(left ast.Node) ast.Node
)

// Option configures a Parser at construction time.
type Option func(*options)

type options struct {
	filename string
}

// WithFilename attributes every diagnostic and span produced by the
// parser to the given filename.
func WithFilename(name string) Option {
	return func(o *options) { o.filename = name }
}

const (
	precLowest = iota
	precKeywordOrAnd
	precKeywordNot
	precAssign
	precTernary
	precRange
	precLogicalOr
	precLogicalAnd
	precEquality
	precComparison
	precBitOr
	precBitAnd
	precShift
	precAdditive
	precMultiplicative
	precUnaryMinus
	precPow
	precUnaryBang
	precPostfix
)

var precedences = map[lexer.Kind]int{
	lexer.KwAnd: precKeywordOrAnd, lexer.KwOr: precKeywordOrAnd,
	lexer.Assign: precAssign, lexer.OpAssign: precAssign,
	lexer.Question: precTernary,
	lexer.Dot2:     precRange, lexer.Dot3: precRange,
	lexer.Pipe2: precLogicalOr, lexer.Amp2: precLogicalAnd,
	lexer.Spaceship: precEquality, lexer.CmpEq: precEquality, lexer.CaseEq: precEquality,
	lexer.NotEq: precEquality, lexer.Match: precEquality, lexer.NotMatch: precEquality,
	lexer.Lt: precComparison, lexer.Le: precComparison, lexer.Gt: precComparison, lexer.Ge: precComparison,
	lexer.Pipe: precBitOr, lexer.Caret: precBitOr,
	lexer.Amp:      precBitAnd,
	lexer.LShift:   precShift, lexer.RShift: precShift,
	lexer.Plus: precAdditive, lexer.Minus: precAdditive,
	lexer.Star: precMultiplicative, lexer.Slash: precMultiplicative, lexer.Percent: precMultiplicative,
	lexer.StarStar: precPow,
	lexer.Dot:       precPostfix, lexer.SafeNav: precPostfix, lexer.Colon2: precPostfix,
	lexer.LBracket: precPostfix, lexer.LParen: precPostfix,
}

// bailout is the sole panic payload Parser ever raises; recover only
// catches this type, letting any other panic (a real bug) propagate.
type bailout struct {
	err *diag.SyntaxError
}

// localScope is a threaded-by-value set of declared local variable names
// (spec: "copy-on-enter-block, fresh-on-enter-def/class/module"). It
// classifies a bareword occurrence as an lvar read vs. an implicit call.
type localScope struct {
	vars map[string]bool
}

func newLocalScope() *localScope { return &localScope{vars: map[string]bool{}} }

func (s *localScope) clone() *localScope {
	cp := make(map[string]bool, len(s.vars))
	for k, v := range s.vars {
		cp[k] = v
	}
	return &localScope{vars: cp}
}

func (s *localScope) declare(name string) { s.vars[name] = true }
func (s *localScope) has(name string) bool { return s.vars[name] }

// Parser consumes the lexer's post-processed token vector and builds an
// ast.Node tree. curTok/peekTok form its sole lookahead window, advanced
// only by advance().
type Parser struct {
	toks []lexer.Token
	pos  int

	curTok  lexer.Token
	peekTok lexer.Token

	filename string
	source   string

	prefixFns map[lexer.Kind]prefixParseFn
	infixFns  map[lexer.Kind]infixParseFn

	scope *localScope
}

// New returns a parser over src, ready to produce a Tree.
func New(src string, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	lx := lexer.New(src, cfg.filename)
	p := &Parser{
		toks:      lx.Tokens(),
		filename:  cfg.filename,
		source:    src,
		prefixFns: make(map[lexer.Kind]prefixParseFn),
		infixFns:  make(map[lexer.Kind]infixParseFn),
		scope:     newLocalScope(),
	}

	p.registerPrefixFns()
	p.registerInfixFns()

	p.advance()
	p.advance()

	return p
}

// Tree parses the whole input and returns its root Block, recovering any
// *diag.SyntaxError raised during the descent into a returned error.
func (p *Parser) Tree() (root ast.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			err = b.err
		}
	}()

	root = p.parseProgram()
	return root, nil
}

func (p *Parser) advance() {
	p.curTok = p.peekTok
	if p.pos < len(p.toks) {
		p.peekTok = p.toks[p.pos]
		p.pos++
	} else {
		p.peekTok = lexer.Token{Kind: lexer.EOF}
	}
}

func (p *Parser) at(k lexer.Kind) bool  { return p.curTok.Kind == k }
func (p *Parser) peekIs(k lexer.Kind) bool { return p.peekTok.Kind == k }

func (p *Parser) atEof() bool { return p.curTok.Kind == lexer.EOF }

// accept advances past curTok if it matches k, returning whether it did.
func (p *Parser) accept(k lexer.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// expect advances past curTok if it matches k, else raises a bailout.
func (p *Parser) expect(k lexer.Kind) lexer.Token {
	if !p.at(k) {
		p.fail(k.String())
	}
	tok := p.curTok
	p.advance()
	return tok
}

// skipEols consumes any run of Eol tokens (blank/blank-ish statement
// separators) sitting at curTok.
func (p *Parser) skipEols() {
	for p.at(lexer.Eol) {
		p.advance()
	}
}

func (p *Parser) sourceLine(span lexer.Span) string {
	if p.source == "" || span.Line <= 0 {
		return ""
	}
	lines := strings.Split(p.source, "\n")
	if span.Line-1 >= len(lines) {
		return ""
	}
	return lines[span.Line-1]
}

// fail raises the single diagnostic surface the parser ever produces.
func (p *Parser) fail(expected string) {
	tok := p.curTok
	unexpected := tok.Kind.String()
	if tok.Literal != "" {
		unexpected = tok.Kind.String() + " '" + tok.Literal + "'"
	}
	diagSpan := tok.Span.ToDiag()
	if p.filename != "" {
		diagSpan.Filename = p.filename
	}
	panic(bailout{err: &diag.SyntaxError{
		Code:       diag.CodeUnexpectedToken,
		Span:       diagSpan,
		Unexpected: unexpected,
		Expected:   expected,
		SourceLine: p.sourceLine(tok.Span),
	}})
}

func (p *Parser) failMalformed(msg string) {
	tok := p.curTok
	diagSpan := tok.Span.ToDiag()
	if p.filename != "" {
		diagSpan.Filename = p.filename
	}
	panic(bailout{err: &diag.SyntaxError{
		Code:       diag.CodeMalformedConstruct,
		Span:       diagSpan,
		Unexpected: msg,
		SourceLine: p.sourceLine(tok.Span),
	}})
}

func (p *Parser) registerPrefix(k lexer.Kind, fn prefixParseFn) { p.prefixFns[k] = fn }
func (p *Parser) registerInfix(k lexer.Kind, fn infixParseFn)   { p.infixFns[k] = fn }

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekTok.Kind]; ok {
		return pr
	}
	return precLowest
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curTok.Kind]; ok {
		return pr
	}
	return precLowest
}
