package ast

import "github.com/natalie-lang/natalie-parser/internal/lexer"

// Assignment is `target = value` where target is a plain identifier,
// ivar, cvar, gvar, or constant. Its sexp tag depends on the target's
// scope (lasgn/iasgn/cvdecl/gasgn/cdecl/casgn), chosen by writeKindOf;
// appendTargetName then appends the target's name with the Creator's
// assignment bit set.
type Assignment struct {
	base
	Target Node
	Value  Node
}

func NewAssignment(tok lexer.Token, target, value Node) *Assignment {
	return &Assignment{newBase(tok), target, value}
}
func (n *Assignment) Type() Kind { return writeKindOf(n.Target) }
func (n *Assignment) Transform(c Creator) {
	c.SetType(writeKindOf(n.Target))
	c.WithAssignment(true, func() {
		appendTargetName(c, n.Target)
	})
	if n.Value != nil {
		c.Append(n.Value)
	}
}

// writeKindOf answers the write-position sexp tag for an assignment
// target, mirroring Identifier.AssignKind but also covering Constant
// (cdecl for a bare constant, casgn for Colon2-qualified).
func writeKindOf(target Node) Kind {
	switch t := target.(type) {
	case *Identifier:
		return t.AssignKind()
	case *Constant:
		return KindCdecl
	case *Colon2:
		return KindCasgn
	default:
		return KindLasgn
	}
}

func appendTargetName(c Creator, target Node) {
	switch t := target.(type) {
	case *Identifier:
		c.AppendSymbol(t.Name)
	case *Constant:
		c.AppendSymbol(t.Name)
	case *Colon2:
		if t.Receiver != nil {
			c.WithAssignment(false, func() { c.Append(t.Receiver) })
		}
		c.AppendSymbol(t.Name)
	default:
		c.Append(target)
	}
}

// MultipleAssignmentArg is one LHS slot of a MultipleAssignment: a plain
// target, a nested parenthesized destructure (another MultipleAssignment
// used purely as an LHS grouping), or a splat (`*rest`).
type MultipleAssignmentArg struct {
	base
	Target Node
	Splat  bool
}

func NewMultipleAssignmentArg(tok lexer.Token, target Node, splat bool) *MultipleAssignmentArg {
	return &MultipleAssignmentArg{newBase(tok), target, splat}
}
func (n *MultipleAssignmentArg) Type() Kind { return KindMultipleAsgnArg }
func (n *MultipleAssignmentArg) Transform(c Creator) {
	if n.Splat {
		c.SetType(KindSplat)
		if n.Target != nil {
			c.WithAssignment(true, func() { appendWriteNode(c, n.Target) })
		}
		return
	}
	c.SetType(writeKindOf(n.Target))
	c.WithAssignment(true, func() { appendTargetName(c, n.Target) })
}

func appendWriteNode(c Creator, target Node) {
	if _, ok := target.(*MultipleAssignment); ok {
		c.Append(target)
		return
	}
	c.SetType(writeKindOf(target))
	appendTargetName(c, target)
}

// MultipleAssignment is `a, b, *c = expr` / `a, b = *expr` (spec §4.3):
// rendered (:masgn, (:array, targets...), rhs).
type MultipleAssignment struct {
	base
	Targets []Node // MultipleAssignmentArg or nested MultipleAssignment
	Value   Node   // already wrapped (Array/ToArray/SplatValue) by the parser
}

func NewMultipleAssignment(tok lexer.Token, targets []Node, value Node) *MultipleAssignment {
	return &MultipleAssignment{newBase(tok), targets, value}
}
func (n *MultipleAssignment) Type() Kind { return KindMasgn }
func (n *MultipleAssignment) Transform(c Creator) {
	c.SetType(KindMasgn)
	c.AppendSexp(func(cr Creator) {
		cr.SetType(KindArray)
		for _, t := range n.Targets {
			cr.Append(t)
		}
	})
	if n.Value != nil {
		c.Append(n.Value)
	}
}

// OpAssign is `x += y` for a plain assignable target, rendered
// Assignment(x, Call(x, "+", y)) per spec §4.3.
type OpAssign struct {
	base
	Target Node
	Op     string
	Value  Node
}

func NewOpAssign(tok lexer.Token, target Node, op string, value Node) *OpAssign {
	return &OpAssign{newBase(tok), target, op, value}
}
func (n *OpAssign) Type() Kind { return writeKindOf(n.Target) }
func (n *OpAssign) Transform(c Creator) {
	c.SetType(writeKindOf(n.Target))
	c.WithAssignment(true, func() { appendTargetName(c, n.Target) })
	c.AppendSexp(func(cr Creator) {
		cr.SetType(KindCall)
		cr.WithAssignment(false, func() { cr.Append(n.Target) })
		cr.AppendSymbol(n.Op)
		cr.Append(n.Value)
	})
}

// OpAssignAnd is `x &&= y`.
type OpAssignAnd struct {
	base
	Target Node
	Value  Node
}

func NewOpAssignAnd(tok lexer.Token, target, value Node) *OpAssignAnd {
	return &OpAssignAnd{newBase(tok), target, value}
}
func (n *OpAssignAnd) Type() Kind { return KindOpAsgnAnd }
func (n *OpAssignAnd) Transform(c Creator) {
	c.SetType(KindOpAsgnAnd)
	c.Append(n.Target)
	c.AppendSexp(func(cr Creator) {
		cr.SetType(writeKindOf(n.Target))
		cr.WithAssignment(true, func() { appendTargetName(cr, n.Target) })
		cr.Append(n.Value)
	})
}

// OpAssignOr is `x ||= y`.
type OpAssignOr struct {
	base
	Target Node
	Value  Node
}

func NewOpAssignOr(tok lexer.Token, target, value Node) *OpAssignOr {
	return &OpAssignOr{newBase(tok), target, value}
}
func (n *OpAssignOr) Type() Kind { return KindOpAsgnOr }
func (n *OpAssignOr) Transform(c Creator) {
	c.SetType(KindOpAsgnOr)
	c.Append(n.Target)
	c.AppendSexp(func(cr Creator) {
		cr.SetType(writeKindOf(n.Target))
		cr.WithAssignment(true, func() { appendTargetName(cr, n.Target) })
		cr.Append(n.Value)
	})
}

// OpAssignAccessor is `a[i] += v` (`op_asgn1`) or `a.m += v` (`op_asgn2`),
// spec §4.3's two indexed/attribute-accessor op-assign forms. Index is
// non-nil for the op_asgn1 (indexing) form; Msg is non-empty for the
// op_asgn2 (attribute) form. Exactly one of the two is populated.
type OpAssignAccessor struct {
	base
	Receiver Node
	Index    []Node // op_asgn1: `a[i, j] += v`
	Msg      string // op_asgn2: `a.m += v`
	Op       string
	Value    Node
}

func NewOpAssign1(tok lexer.Token, receiver Node, index []Node, op string, value Node) *OpAssignAccessor {
	return &OpAssignAccessor{base: newBase(tok), Receiver: receiver, Index: index, Op: op, Value: value}
}

func NewOpAssign2(tok lexer.Token, receiver Node, msg, op string, value Node) *OpAssignAccessor {
	return &OpAssignAccessor{base: newBase(tok), Receiver: receiver, Msg: msg, Op: op, Value: value}
}

func (n *OpAssignAccessor) Type() Kind {
	if n.Msg != "" {
		return KindOpAsgn2
	}
	return KindOpAsgn1
}

func (n *OpAssignAccessor) Transform(c Creator) {
	if n.Msg != "" {
		c.SetType(KindOpAsgn2)
		c.Append(n.Receiver)
		c.AppendSymbol(n.Msg + "=")
		c.AppendSymbol(n.Op)
		c.Append(n.Value)
		return
	}
	c.SetType(KindOpAsgn1)
	c.Append(n.Receiver)
	c.AppendSexp(func(cr Creator) {
		cr.SetType(KindArgs)
		for _, idx := range n.Index {
			cr.Append(idx)
		}
	})
	c.AppendSymbol(n.Op)
	c.Append(n.Value)
}
