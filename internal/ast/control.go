package ast

import "github.com/natalie-lang/natalie-parser/internal/lexer"

// If is `if cond; then_body; else else_body; end` and its `unless`
// counterpart (the parser swaps Then/Else and negates Cond's role for
// `unless`, so a single node covers both), plus the ternary `cond ? a : b`
// form (spec §6: "ternaries" render identically to `if`).
type If struct {
	base
	Cond Node
	Then Node
	Else Node
}

func NewIf(tok lexer.Token, cond, then, els Node) *If { return &If{newBase(tok), cond, then, els} }
func (n *If) Type() Kind                               { return KindIf }
func (n *If) Transform(c Creator) {
	c.SetType(KindIf)
	c.Append(n.Cond)
	if n.Then != nil {
		c.Append(n.Then)
	} else {
		c.AppendNil()
	}
	if n.Else != nil {
		c.Append(n.Else)
	} else {
		c.AppendNil()
	}
}

// While is `while cond; body; end`, including the `begin...end while cond`
// post-condition form (Pre=false means test-before-body is this node's
// Pre flag suppressed — see spec §6 "(:while|:until, cond, body, pre?)").
type While struct {
	base
	Cond Node
	Body Node
	Pre  bool // true for the ordinary pre-test form, false for do-while
}

func NewWhile(tok lexer.Token, cond, body Node, pre bool) *While {
	return &While{newBase(tok), cond, body, pre}
}
func (n *While) Type() Kind { return KindWhile }
func (n *While) Transform(c Creator) {
	c.SetType(KindWhile)
	c.Append(n.Cond)
	if n.Body != nil {
		c.Append(n.Body)
	} else {
		c.AppendNil()
	}
	if n.Pre {
		c.AppendTrue()
	} else {
		c.AppendFalse()
	}
}

// Until is the `until`-keyword dual of While.
type Until struct {
	base
	Cond Node
	Body Node
	Pre  bool
}

func NewUntil(tok lexer.Token, cond, body Node, pre bool) *Until {
	return &Until{newBase(tok), cond, body, pre}
}
func (n *Until) Type() Kind { return KindUntil }
func (n *Until) Transform(c Creator) {
	c.SetType(KindUntil)
	c.Append(n.Cond)
	if n.Body != nil {
		c.Append(n.Body)
	} else {
		c.AppendNil()
	}
	if n.Pre {
		c.AppendTrue()
	} else {
		c.AppendFalse()
	}
}

// For is `for x in iterable; body; end`.
type For struct {
	base
	Var      Node // the loop variable target, e.g. an Identifier or MultipleAssignmentArg list
	Iterable Node
	Body     Node
}

func NewFor(tok lexer.Token, v, iterable, body Node) *For { return &For{newBase(tok), v, iterable, body} }
func (n *For) Type() Kind                                 { return KindFor }
func (n *For) Transform(c Creator) {
	c.SetType(KindFor)
	c.Append(n.Iterable)
	if n.Var != nil {
		c.WithAssignment(true, func() { c.Append(n.Var) })
	} else {
		c.AppendNil()
	}
	if n.Body != nil {
		c.Append(n.Body)
	}
}

// CaseWhen is one `when a, b then body` clause of a `case/when`.
type CaseWhen struct {
	base
	Values []Node
	Body   Node
}

func NewCaseWhen(tok lexer.Token, values []Node, body Node) *CaseWhen {
	return &CaseWhen{newBase(tok), values, body}
}
func (n *CaseWhen) Type() Kind { return KindWhen }
func (n *CaseWhen) Transform(c Creator) {
	c.SetType(KindWhen)
	c.AppendSexp(func(cr Creator) {
		cr.SetType(KindArray)
		for _, v := range n.Values {
			cr.Append(v)
		}
	})
	if n.Body != nil {
		c.Append(n.Body)
	}
}

// CaseIn is one `in pattern [if guard] then body` clause of a `case/in`
// pattern match.
type CaseIn struct {
	base
	Pattern Node
	Guard   Node // nil when there is no `if`/`unless` guard
	GuardIsUnless bool
	Body    Node
}

func NewCaseIn(tok lexer.Token, pattern, guard Node, guardIsUnless bool, body Node) *CaseIn {
	return &CaseIn{newBase(tok), pattern, guard, guardIsUnless, body}
}
func (n *CaseIn) Type() Kind { return KindIn }
func (n *CaseIn) Transform(c Creator) {
	c.SetType(KindIn)
	c.Append(n.Pattern)
	if n.Guard != nil {
		c.AppendSexp(func(cr Creator) {
			tag := KindIf
			cr.SetType(tag)
			cr.Append(n.Guard)
			cr.AppendTrue()
			cr.AppendFalse()
		})
	}
	if n.Body != nil {
		c.Append(n.Body)
	} else {
		c.AppendNil()
	}
}

// Case is `case subject; when/in ...; else; end`. Subject is nil for the
// subjectless `case; when cond1; ...; end` form. When and In are mutually
// exclusive (spec §4.3).
type Case struct {
	base
	Subject Node
	Whens   []*CaseWhen
	Ins     []*CaseIn
	Else    Node
}

func NewCaseWhenStmt(tok lexer.Token, subject Node, whens []*CaseWhen, els Node) *Case {
	return &Case{base: newBase(tok), Subject: subject, Whens: whens, Else: els}
}
func NewCaseInStmt(tok lexer.Token, subject Node, ins []*CaseIn, els Node) *Case {
	return &Case{base: newBase(tok), Subject: subject, Ins: ins, Else: els}
}
func (n *Case) Type() Kind { return KindCase }
func (n *Case) Transform(c Creator) {
	c.SetType(KindCase)
	if n.Subject != nil {
		c.Append(n.Subject)
	} else {
		c.AppendNil()
	}
	for _, w := range n.Whens {
		c.Append(w)
	}
	for _, i := range n.Ins {
		c.Append(i)
	}
	if n.Else != nil {
		c.Append(n.Else)
	} else {
		c.AppendNil()
	}
}

// Break is `break [value]`.
type Break struct {
	base
	Value Node
}

func NewBreak(tok lexer.Token, value Node) *Break { return &Break{newBase(tok), value} }
func (n *Break) Type() Kind                       { return KindBreak }
func (n *Break) Transform(c Creator) {
	c.SetType(KindBreak)
	if n.Value != nil {
		c.Append(n.Value)
	}
}

// Next is `next [value]`.
type Next struct {
	base
	Value Node
}

func NewNext(tok lexer.Token, value Node) *Next { return &Next{newBase(tok), value} }
func (n *Next) Type() Kind                      { return KindNext }
func (n *Next) Transform(c Creator) {
	c.SetType(KindNext)
	if n.Value != nil {
		c.Append(n.Value)
	}
}

// Redo is the bare `redo` keyword.
type Redo struct{ base }

func NewRedo(tok lexer.Token) *Redo { return &Redo{newBase(tok)} }
func (n *Redo) Type() Kind          { return KindRedo }
func (n *Redo) Transform(c Creator) { c.SetType(KindRedo) }

// Retry is the bare `retry` keyword.
type Retry struct{ base }

func NewRetry(tok lexer.Token) *Retry { return &Retry{newBase(tok)} }
func (n *Retry) Type() Kind           { return KindRetry }
func (n *Retry) Transform(c Creator)  { c.SetType(KindRetry) }

// Return is `return [value]`.
type Return struct {
	base
	Value Node
}

func NewReturn(tok lexer.Token, value Node) *Return { return &Return{newBase(tok), value} }
func (n *Return) Type() Kind                        { return KindReturn }
func (n *Return) Transform(c Creator) {
	c.SetType(KindReturn)
	if n.Value != nil {
		c.Append(n.Value)
	}
}

// LogicalAnd is `a && b` / `a and b`.
type LogicalAnd struct {
	base
	Left  Node
	Right Node
}

func NewLogicalAnd(tok lexer.Token, left, right Node) *LogicalAnd {
	return &LogicalAnd{newBase(tok), left, right}
}
func (n *LogicalAnd) Type() Kind { return KindAnd }
func (n *LogicalAnd) Transform(c Creator) {
	c.SetType(KindAnd)
	c.Append(n.Left)
	c.Append(n.Right)
}

// LogicalOr is `a || b` / `a or b`.
type LogicalOr struct {
	base
	Left  Node
	Right Node
}

func NewLogicalOr(tok lexer.Token, left, right Node) *LogicalOr {
	return &LogicalOr{newBase(tok), left, right}
}
func (n *LogicalOr) Type() Kind { return KindOr }
func (n *LogicalOr) Transform(c Creator) {
	c.SetType(KindOr)
	c.Append(n.Left)
	c.Append(n.Right)
}

// Pin is `^name` / `^(expr)` inside a `case/in` pattern, pinning a value
// already bound outside the pattern rather than binding a fresh one.
type Pin struct {
	base
	Expr Node
}

func NewPin(tok lexer.Token, expr Node) *Pin { return &Pin{newBase(tok), expr} }
func (n *Pin) Type() Kind                    { return KindLvar }
func (n *Pin) Transform(c Creator) {
	c.Append(n.Expr)
}
