package ast

import "github.com/natalie-lang/natalie-parser/internal/lexer"

// Call is a method call `recv.msg(args)` / `msg(args)` / `msg arg` (no
// parens). Receiver is nil for a bare call. The sexp shape is always
// (:call, recv, :msg, args...) regardless of parenthesization.
type Call struct {
	base
	Receiver Node // nil for an implicit-self call
	Msg      string
	Args     []Node
	Block    *Iter // non-nil when a do/{ } block is attached (spec §4.3)
}

func NewCall(tok lexer.Token, receiver Node, msg string, args []Node) *Call {
	return &Call{base: newBase(tok), Receiver: receiver, Msg: msg, Args: args}
}
func (n *Call) Type() Kind          { return KindCall }
func (n *Call) IsCallable() bool    { return true }
func (n *Call) CanAcceptABlock() bool { return true }
func (n *Call) Transform(c Creator) {
	inner := func(cr Creator) {
		cr.SetType(KindCall)
		if n.Receiver != nil {
			cr.Append(n.Receiver)
		} else {
			cr.AppendNil()
		}
		cr.AppendSymbol(n.Msg)
		for _, a := range n.Args {
			cr.Append(a)
		}
	}
	if n.Block != nil {
		c.SetType(KindIter)
		c.AppendSexp(inner)
		n.Block.appendSpec(c)
		return
	}
	inner(c)
}

// SafeCall is `recv&.msg(args)`.
type SafeCall struct {
	base
	Receiver Node
	Msg      string
	Args     []Node
	Block    *Iter
}

func NewSafeCall(tok lexer.Token, receiver Node, msg string, args []Node) *SafeCall {
	return &SafeCall{base: newBase(tok), Receiver: receiver, Msg: msg, Args: args}
}
func (n *SafeCall) Type() Kind          { return KindSafeCall }
func (n *SafeCall) IsCallable() bool    { return true }
func (n *SafeCall) CanAcceptABlock() bool { return true }
func (n *SafeCall) Transform(c Creator) {
	inner := func(cr Creator) {
		cr.SetType(KindSafeCall)
		cr.Append(n.Receiver)
		cr.AppendSymbol(n.Msg)
		for _, a := range n.Args {
			cr.Append(a)
		}
	}
	if n.Block != nil {
		c.SetType(KindIter)
		c.AppendSexp(inner)
		n.Block.appendSpec(c)
		return
	}
	inner(c)
}

// Super is `super(args)` with an explicit argument list; ZSuper (the
// bare `super` form forwarding the caller's own arguments) is a distinct
// node since MRI's grammar distinguishes `super` from `super()`.
type Super struct {
	base
	Args  []Node
	Block *Iter
}

func NewSuper(tok lexer.Token, args []Node) *Super { return &Super{base: newBase(tok), Args: args} }
func (n *Super) Type() Kind                        { return KindSuper }
func (n *Super) CanAcceptABlock() bool             { return true }
func (n *Super) Transform(c Creator) {
	inner := func(cr Creator) {
		cr.SetType(KindSuper)
		for _, a := range n.Args {
			cr.Append(a)
		}
	}
	if n.Block != nil {
		c.SetType(KindIter)
		c.AppendSexp(inner)
		n.Block.appendSpec(c)
		return
	}
	inner(c)
}

// ZSuper is the bare `super` keyword with no argument list.
type ZSuper struct {
	base
	Block *Iter
}

func NewZSuper(tok lexer.Token) *ZSuper { return &ZSuper{base: newBase(tok)} }
func (n *ZSuper) Type() Kind            { return KindZsuper }
func (n *ZSuper) CanAcceptABlock() bool { return true }
func (n *ZSuper) Transform(c Creator) {
	inner := func(cr Creator) { cr.SetType(KindZsuper) }
	if n.Block != nil {
		c.SetType(KindIter)
		c.AppendSexp(inner)
		n.Block.appendSpec(c)
		return
	}
	inner(c)
}

// Yield is `yield(args)` / `yield args` / bare `yield`.
type Yield struct {
	base
	Args []Node
}

func NewYield(tok lexer.Token, args []Node) *Yield { return &Yield{newBase(tok), args} }
func (n *Yield) Type() Kind                        { return KindYield }
func (n *Yield) Transform(c Creator) {
	c.SetType(KindYield)
	for _, a := range n.Args {
		c.Append(a)
	}
}

// BlockPass is `&expr` passed as a call's trailing argument.
type BlockPass struct {
	base
	Value Node // nil for the bare forwarding `&` shorthand
}

func NewBlockPass(tok lexer.Token, value Node) *BlockPass { return &BlockPass{newBase(tok), value} }
func (n *BlockPass) Type() Kind                           { return KindBlockPass }
func (n *BlockPass) Transform(c Creator) {
	c.SetType(KindBlockPass)
	if n.Value != nil {
		c.Append(n.Value)
	}
}

// InfixOp is a binary operator call rendered in call form: `a + b` =>
// (:call, a, :+, b). Ranges, &&/||, and =~/!~ have their own node types
// since their sexp shapes differ (dot2/dot3, and/or, match2/match3).
type InfixOp struct {
	base
	Left  Node
	Op    string
	Right Node
}

func NewInfixOp(tok lexer.Token, left Node, op string, right Node) *InfixOp {
	return &InfixOp{newBase(tok), left, op, right}
}
func (n *InfixOp) Type() Kind       { return KindCall }
func (n *InfixOp) IsCallable() bool { return true }
func (n *InfixOp) Transform(c Creator) {
	c.SetType(KindCall)
	c.Append(n.Left)
	c.AppendSymbol(n.Op)
	c.Append(n.Right)
}

// UnaryOp is a unary operator call: `-a`, `+a`, `~a` => (:call, a, :-@, ).
type UnaryOp struct {
	base
	Op      string // already carries the @-suffixed method name, e.g. "-@"
	Operand Node
}

func NewUnaryOp(tok lexer.Token, op string, operand Node) *UnaryOp {
	return &UnaryOp{newBase(tok), op, operand}
}
func (n *UnaryOp) Type() Kind       { return KindCall }
func (n *UnaryOp) IsCallable() bool { return true }
func (n *UnaryOp) Transform(c Creator) {
	c.SetType(KindCall)
	c.Append(n.Operand)
	c.AppendSymbol(n.Op)
}

// Match is `a =~ b` where neither side is a regexp literal receiver,
// rendered as plain `match` per the reference grammar's fallback case
// (Match2/Match3 handle the literal-receiver forms with known operand
// order).
type Match struct {
	base
	Left  Node
	Right Node
}

func NewMatch(tok lexer.Token, left, right Node) *Match { return &Match{newBase(tok), left, right} }
func (n *Match) Type() Kind                             { return KindMatch }
func (n *Match) Transform(c Creator) {
	c.SetType(KindMatch)
	c.Append(n.Left)
	c.Append(n.Right)
}

// Match2 is `/regexp/ =~ other`: the regexp literal is the left operand.
type Match2 struct {
	base
	Regexp Node
	Target Node
}

func NewMatch2(tok lexer.Token, regexp, target Node) *Match2 {
	return &Match2{newBase(tok), regexp, target}
}
func (n *Match2) Type() Kind { return KindMatch2 }
func (n *Match2) Transform(c Creator) {
	c.SetType(KindMatch2)
	c.Append(n.Regexp)
	c.Append(n.Target)
}

// Match3 is `other =~ /regexp/`: the regexp literal is the right operand.
type Match3 struct {
	base
	Target Node
	Regexp Node
}

func NewMatch3(tok lexer.Token, target, regexp Node) *Match3 {
	return &Match3{newBase(tok), target, regexp}
}
func (n *Match3) Type() Kind { return KindMatch3 }
func (n *Match3) Transform(c Creator) {
	c.SetType(KindMatch3)
	c.Append(n.Target)
	c.Append(n.Regexp)
}

// NotMatch is `a !~ b`, always rendered as `not` wrapping a `match`-family
// node (there is no direct not_match sexp tag in the reference grammar).
type NotMatch struct {
	base
	Inner Node // the underlying Match/Match2/Match3
}

func NewNotMatch(tok lexer.Token, inner Node) *NotMatch { return &NotMatch{newBase(tok), inner} }
func (n *NotMatch) Type() Kind                          { return KindNot }
func (n *NotMatch) Transform(c Creator) {
	c.SetType(KindNot)
	c.Append(n.Inner)
}

// Defined is `defined?(expr)`.
type Defined struct {
	base
	Expr Node
}

func NewDefined(tok lexer.Token, expr Node) *Defined { return &Defined{newBase(tok), expr} }
func (n *Defined) Type() Kind                        { return KindDefined }
func (n *Defined) Transform(c Creator) {
	c.SetType(KindDefined)
	c.Append(n.Expr)
}

// Not is `!expr` / `not expr`.
type Not struct {
	base
	Expr Node
}

func NewNot(tok lexer.Token, expr Node) *Not { return &Not{newBase(tok), expr} }
func (n *Not) Type() Kind                   { return KindNot }
func (n *Not) Transform(c Creator) {
	c.SetType(KindNot)
	c.Append(n.Expr)
}
