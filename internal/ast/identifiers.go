package ast

import "github.com/natalie-lang/natalie-parser/internal/lexer"

// identKind distinguishes which global/instance/class-scope variable an
// Identifier token denotes, decided by the lexer's token kind and carried
// through so Transform can pick lvar/ivar/cvar/gvar vs. lasgn/iasgn/... at
// render time based on the Creator's threaded assignment bit (spec §4.4).
type identKind int

const (
	identLocalOrCall identKind = iota
	identIVar
	identCVar
	identGVar
)

// Identifier is a bareword, @ivar, @@cvar, or $gvar occurrence. IsLvar
// records whether, at the moment this token was read, its spelling was
// present in the current local-set (spec glossary "lvar"); when false and
// the identifier is a bareword, it denotes a zero-argument method call
// rather than a variable read.
type Identifier struct {
	base
	Name   string
	kind   identKind
	IsLvar bool
}

func NewLocalIdentifier(tok lexer.Token, name string, isLvar bool) *Identifier {
	return &Identifier{newBase(tok), name, identLocalOrCall, isLvar}
}
func NewIVarIdentifier(tok lexer.Token, name string) *Identifier {
	return &Identifier{newBase(tok), name, identIVar, true}
}
func NewCVarIdentifier(tok lexer.Token, name string) *Identifier {
	return &Identifier{newBase(tok), name, identCVar, true}
}
func NewGVarIdentifier(tok lexer.Token, name string) *Identifier {
	return &Identifier{newBase(tok), name, identGVar, true}
}

func (n *Identifier) Type() Kind {
	switch n.kind {
	case identIVar:
		return KindIvar
	case identCVar:
		return KindCvar
	case identGVar:
		return KindGvar
	default:
		if n.IsLvar {
			return KindLvar
		}
		return KindCall
	}
}

func (n *Identifier) IsCallable() bool   { return true }
func (n *Identifier) IsAssignable() bool { return true }

// Transform renders a read occurrence, or, when the Creator's assignment
// bit is set (e.g. a `for` loop variable), the bare write form such as
// (:lasgn, :x). Assignment and MultipleAssignmentArg render their targets
// through writeKindOf/appendTargetName instead of this Transform.
func (n *Identifier) Transform(c Creator) {
	if c.Assignment() {
		c.SetType(n.AssignKind())
		c.AppendSymbol(n.Name)
		return
	}
	switch n.kind {
	case identIVar:
		c.SetType(KindIvar)
		c.AppendSymbol(n.Name)
	case identCVar:
		c.SetType(KindCvar)
		c.AppendSymbol(n.Name)
	case identGVar:
		c.SetType(KindGvar)
		c.AppendSymbol(n.Name)
	default:
		if n.IsLvar {
			c.SetType(KindLvar)
			c.AppendSymbol(n.Name)
		} else {
			c.SetType(KindCall)
			c.AppendNil()
			c.AppendSymbol(n.Name)
		}
	}
}

// AssignKind returns the write-position sexp tag for this identifier's
// scope (lasgn/iasgn/cvdecl/gasgn), used by Assignment.Transform.
func (n *Identifier) AssignKind() Kind {
	switch n.kind {
	case identIVar:
		return KindIasgn
	case identCVar:
		return KindCvdecl
	case identGVar:
		return KindGasgn
	default:
		return KindLasgn
	}
}

// Constant is an Uppercase-leading bareword, e.g. `Foo`.
type Constant struct {
	base
	Name string
}

func NewConstant(tok lexer.Token, name string) *Constant { return &Constant{newBase(tok), name} }
func (n *Constant) Type() Kind                            { return KindConst }
func (n *Constant) IsCallable() bool                       { return true }
func (n *Constant) IsAssignable() bool                     { return true }
func (n *Constant) Transform(c Creator) {
	c.SetType(KindConst)
	c.AppendSymbol(n.Name)
}

// Colon2 is `Scope::Name`, a constant or call qualified by an explicit
// receiver (`expr::Name`).
type Colon2 struct {
	base
	Receiver Node
	Name     string
}

func NewColon2(tok lexer.Token, receiver Node, name string) *Colon2 {
	return &Colon2{newBase(tok), receiver, name}
}
func (n *Colon2) Type() Kind       { return KindColon2 }
func (n *Colon2) IsCallable() bool { return true }
func (n *Colon2) Transform(c Creator) {
	c.SetType(KindColon2)
	if n.Receiver != nil {
		c.Append(n.Receiver)
	}
	c.AppendSymbol(n.Name)
}

// Colon3 is `::Name`, a top-level-scoped constant reference.
type Colon3 struct {
	base
	Name string
}

func NewColon3(tok lexer.Token, name string) *Colon3 { return &Colon3{newBase(tok), name} }
func (n *Colon3) Type() Kind                          { return KindColon3 }
func (n *Colon3) Transform(c Creator) {
	c.SetType(KindColon3)
	c.AppendSymbol(n.Name)
}

// ForwardArgs is the `...` parameter/argument forwarding marker.
type ForwardArgs struct{ base }

func NewForwardArgs(tok lexer.Token) *ForwardArgs { return &ForwardArgs{newBase(tok)} }
func (n *ForwardArgs) Type() Kind                  { return KindForwardArgs }
func (n *ForwardArgs) Transform(c Creator) {
	c.SetType(KindForwardArgs)
}
