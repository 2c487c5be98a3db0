package ast

import "github.com/natalie-lang/natalie-parser/internal/lexer"

// Array is an array literal `[a, b, *c]`.
type Array struct {
	base
	Elements []Node
}

func NewArray(tok lexer.Token, elements []Node) *Array { return &Array{newBase(tok), elements} }
func (n *Array) Type() Kind                            { return KindArray }
func (n *Array) IsCallable() bool                       { return true }
func (n *Array) Transform(c Creator) {
	c.SetType(KindArray)
	for _, e := range n.Elements {
		c.Append(e)
	}
}

// ArrayPattern is a `case/in` array pattern `[a, *rest]`. Per spec §9's
// Open Question, the leading nil filler (meaning unknown in the source
// this spec was distilled from) is preserved verbatim.
type ArrayPattern struct {
	base
	Elements []Node
}

func NewArrayPattern(tok lexer.Token, elements []Node) *ArrayPattern {
	return &ArrayPattern{newBase(tok), elements}
}
func (n *ArrayPattern) Type() Kind { return KindArrayPat }
func (n *ArrayPattern) Transform(c Creator) {
	c.SetType(KindArrayPat)
	c.AppendNilSexp()
	for _, e := range n.Elements {
		c.Append(e)
	}
}

// HashEntry is one key/value pair of a Hash or HashPattern.
type HashEntry struct {
	Key   Node
	Value Node
}

// Hash is a hash literal `{k => v, k2: v2}`.
type Hash struct {
	base
	Entries []HashEntry
}

func NewHash(tok lexer.Token, entries []HashEntry) *Hash { return &Hash{newBase(tok), entries} }
func (n *Hash) Type() Kind                               { return KindHash }
func (n *Hash) IsCallable() bool                          { return true }
func (n *Hash) Transform(c Creator) {
	c.SetType(KindHash)
	for _, e := range n.Entries {
		c.Append(e.Key)
		if e.Value != nil { // nil for a `**expr` entry
			c.Append(e.Value)
		}
	}
}

// HashPattern is a `case/in` hash pattern `{k:, **rest}`.
type HashPattern struct {
	base
	Entries []HashEntry
}

func NewHashPattern(tok lexer.Token, entries []HashEntry) *HashPattern {
	return &HashPattern{newBase(tok), entries}
}
func (n *HashPattern) Type() Kind { return KindHashPat }
func (n *HashPattern) Transform(c Creator) {
	c.SetType(KindHashPat)
	c.AppendNilSexp()
	for _, e := range n.Entries {
		c.Append(e.Key)
		if e.Value != nil { // nil for a `**rest` entry
			c.Append(e.Value)
		}
	}
}

// KeywordSplat is `**expr` used inside a hash literal or call argument list.
type KeywordSplat struct {
	base
	Value Node
}

func NewKeywordSplat(tok lexer.Token, value Node) *KeywordSplat {
	return &KeywordSplat{newBase(tok), value}
}
func (n *KeywordSplat) Type() Kind { return KindKwsplat }
func (n *KeywordSplat) Transform(c Creator) {
	c.SetType(KindKwsplat)
	if n.Value != nil {
		c.Append(n.Value)
	}
}

// KeywordRestPattern is `**rest` / `**nil` inside a hash pattern.
type KeywordRestPattern struct {
	base
	Name string // empty for the bare **nil form
}

func NewKeywordRestPattern(tok lexer.Token, name string) *KeywordRestPattern {
	return &KeywordRestPattern{newBase(tok), name}
}
func (n *KeywordRestPattern) Type() Kind { return KindKwrestArgPat }
func (n *KeywordRestPattern) Transform(c Creator) {
	c.SetType(KindKwrestArgPat)
	if n.Name != "" {
		c.AppendSymbol(n.Name)
	}
}

// Splat is `*expr` in an argument list, array literal, or array pattern.
type Splat struct {
	base
	Value Node // nil for the bare `*` rest marker
}

func NewSplat(tok lexer.Token, value Node) *Splat { return &Splat{newBase(tok), value} }
func (n *Splat) Type() Kind                       { return KindSplat }
func (n *Splat) Transform(c Creator) {
	c.SetType(KindSplat)
	if n.Value != nil {
		c.Append(n.Value)
	}
}

// SplatValue wraps a multiple-assignment RHS that is a lone splat,
// `a, b = *expr` (spec §4.3 "Multiple assignment"): it renders as
// (:svalue, (:splat, expr)), not a bare value.
type SplatValue struct {
	base
	Value Node
}

func NewSplatValue(tok lexer.Token, value Node) *SplatValue {
	return &SplatValue{newBase(tok), value}
}
func (n *SplatValue) Type() Kind { return KindSvalue }
func (n *SplatValue) Transform(c Creator) {
	c.SetType(KindSvalue)
	if n.Value != nil {
		c.Append(n.Value)
	}
}

// ToArray wraps a single-target multiple-assignment RHS that is not
// itself an array or splat, surfacing array semantics on destructure
// (spec §4.3: "wrapped in ToArray for the single-target case").
type ToArray struct {
	base
	Value Node
}

func NewToArray(tok lexer.Token, value Node) *ToArray { return &ToArray{newBase(tok), value} }
func (n *ToArray) Type() Kind                         { return KindToAry }
func (n *ToArray) Transform(c Creator) {
	c.SetType(KindToAry)
	if n.Value != nil {
		c.Append(n.Value)
	}
}

// Range is `a..b` / `a...b`. Its Transform collapses to a `lit` range
// value when both endpoints are integer literals (spec §4.3) and
// otherwise renders as `dot2`/`dot3` with First/Last as children. First
// or Last may be nil for beginless/endless ranges.
type Range struct {
	base
	First      Node
	Last       Node
	ExcludeEnd bool
}

func NewRange(tok lexer.Token, first, last Node, excludeEnd bool) *Range {
	return &Range{newBase(tok), first, last, excludeEnd}
}
func (n *Range) Type() Kind {
	if n.ExcludeEnd {
		return KindDot3
	}
	return KindDot2
}
func (n *Range) Transform(c Creator) {
	first, firstIsInt := n.First.(*Fixnum)
	last, lastIsInt := n.Last.(*Fixnum)
	if firstIsInt && lastIsInt {
		c.SetType(KindLit)
		c.AppendRange(first.Value, last.Value, n.ExcludeEnd)
		return
	}
	c.SetType(n.Type())
	if n.First != nil {
		c.Append(n.First)
	} else {
		c.AppendNil()
	}
	if n.Last != nil {
		c.Append(n.Last)
	} else {
		c.AppendNil()
	}
}
