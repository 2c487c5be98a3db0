package ast

import "github.com/natalie-lang/natalie-parser/internal/lexer"

// EvaluateToString wraps an embedded `#{ expr }` expression inside an
// interpolated literal; it renders as (:evstr, node) per spec §6.
type EvaluateToString struct {
	base
	Expr Node
}

func NewEvaluateToString(tok lexer.Token, expr Node) *EvaluateToString {
	return &EvaluateToString{newBase(tok), expr}
}
func (n *EvaluateToString) Type() Kind { return KindEvstr }
func (n *EvaluateToString) Transform(c Creator) {
	c.SetType(KindEvstr)
	if n.Expr != nil {
		c.Append(n.Expr)
	}
}

// appendInterpolatedParts renders the shared dstr/dsym/dregx/dxstr part
// list: a leading plain-string fragment is appended bare (matching the
// reference grammar's append_string special case for part index 0), since
// the sexp's own type already marks it a string-ish literal; every other
// part (including any later plain-string fragment) renders through the
// normal Append/Transform path.
func appendInterpolatedParts(c Creator, parts []Node) {
	for i, p := range parts {
		if i == 0 {
			if s, ok := p.(*String); ok {
				c.AppendString(s.Value)
				continue
			}
		}
		c.Append(p)
	}
}

// InterpolatedString is a `dstr`: a sequence of parts, each either a plain
// string fragment or an EvaluateToString.
type InterpolatedString struct {
	base
	Parts []Node
}

func NewInterpolatedString(tok lexer.Token, parts []Node) *InterpolatedString {
	return &InterpolatedString{newBase(tok), parts}
}
func (n *InterpolatedString) Type() Kind       { return KindDstr }
func (n *InterpolatedString) IsCallable() bool { return true }
func (n *InterpolatedString) Transform(c Creator) {
	c.SetType(KindDstr)
	appendInterpolatedParts(c, n.Parts)
}

// InterpolatedSymbol is a `dsym`: an interpolated :"..." symbol.
type InterpolatedSymbol struct {
	base
	Parts []Node
}

func NewInterpolatedSymbol(tok lexer.Token, parts []Node) *InterpolatedSymbol {
	return &InterpolatedSymbol{newBase(tok), parts}
}
func (n *InterpolatedSymbol) Type() Kind { return KindDsym }
func (n *InterpolatedSymbol) Transform(c Creator) {
	c.SetType(KindDsym)
	appendInterpolatedParts(c, n.Parts)
}

// InterpolatedSymbolKey is the hash-literal-key analogue of
// InterpolatedSymbol, produced the same way SymbolKey is from String
// (spec §4.3).
type InterpolatedSymbolKey struct {
	base
	Parts []Node
}

func NewInterpolatedSymbolKey(tok lexer.Token, parts []Node) *InterpolatedSymbolKey {
	return &InterpolatedSymbolKey{newBase(tok), parts}
}
func (n *InterpolatedSymbolKey) Type() Kind      { return KindDsym }
func (n *InterpolatedSymbolKey) IsSymbolKey() bool { return true }
func (n *InterpolatedSymbolKey) Transform(c Creator) {
	c.SetType(KindDsym)
	appendInterpolatedParts(c, n.Parts)
}

// InterpolatedRegexp is a `dregx`: an interpolated /.../ regexp.
type InterpolatedRegexp struct {
	base
	Parts   []Node
	Options int64
}

func NewInterpolatedRegexp(tok lexer.Token, parts []Node, options int64) *InterpolatedRegexp {
	return &InterpolatedRegexp{newBase(tok), parts, options}
}
func (n *InterpolatedRegexp) Type() Kind { return KindDregx }
func (n *InterpolatedRegexp) Transform(c Creator) {
	c.SetType(KindDregx)
	appendInterpolatedParts(c, n.Parts)
	if n.Options != 0 {
		c.AppendInteger(n.Options)
	}
}

// InterpolatedShell is a `dxstr`: an interpolated shell/backtick literal.
type InterpolatedShell struct {
	base
	Parts []Node
}

func NewInterpolatedShell(tok lexer.Token, parts []Node) *InterpolatedShell {
	return &InterpolatedShell{newBase(tok), parts}
}
func (n *InterpolatedShell) Type() Kind { return KindDxstr }
func (n *InterpolatedShell) Transform(c Creator) {
	c.SetType(KindDxstr)
	appendInterpolatedParts(c, n.Parts)
}
