package ast

import "github.com/natalie-lang/natalie-parser/internal/lexer"

// Block is a sequence of statements, the parser's top-level root and the
// body of any construct that holds more than one statement (spec §6:
// "always returns a Block root, possibly with a single child"). A
// single-statement Block renders that statement directly rather than
// wrapping it, matching the reference grammar's collapsing behavior.
type Block struct {
	base
	Stmts []Node
}

func NewBlock(tok lexer.Token, stmts []Node) *Block { return &Block{newBase(tok), stmts} }
func (n *Block) Type() Kind                          { return KindBlock }
func (n *Block) Transform(c Creator) {
	if len(n.Stmts) == 1 {
		n.Stmts[0].Transform(c)
		return
	}
	c.SetType(KindBlock)
	for _, s := range n.Stmts {
		c.Append(s)
	}
}

// Rescue is one `rescue Class1, Class2 => name; body` clause.
type Rescue struct {
	base
	Classes []Node
	VarName string // empty when there is no `=> name` binding
	Body    Node
}

func NewRescue(tok lexer.Token, classes []Node, varName string, body Node) *Rescue {
	return &Rescue{newBase(tok), classes, varName, body}
}
func (n *Rescue) Type() Kind { return KindResbody }
func (n *Rescue) Transform(c Creator) {
	c.SetType(KindResbody)
	c.AppendSexp(func(cr Creator) {
		cr.SetType(KindArray)
		for _, cl := range n.Classes {
			cr.Append(cl)
		}
		if n.VarName != "" {
			cr.AppendSexp(func(inner Creator) {
				inner.SetType(KindLasgn)
				inner.AppendSymbol(n.VarName)
				inner.AppendSexp(func(g Creator) { g.SetType(KindGvar); g.AppendSymbol("$!") })
			})
		}
	})
	if n.Body != nil {
		c.Append(n.Body)
	}
}

// BeginRescue is `begin; body; rescue ...; else ...; ensure ...; end`, and
// also the trailing-modifier form (`expr rescue fallback`). Else/Ensure
// are nil when absent.
type BeginRescue struct {
	base
	Body     Node
	Rescues  []*Rescue
	ElseBody Node
	Ensure   Node
}

func NewBeginRescue(tok lexer.Token, body Node, rescues []*Rescue, elseBody, ensure Node) *BeginRescue {
	return &BeginRescue{newBase(tok), body, rescues, elseBody, ensure}
}
func (n *BeginRescue) Type() Kind { return KindRescue }
func (n *BeginRescue) Transform(c Creator) {
	build := func(cr Creator) {
		cr.SetType(KindRescue)
		if n.Body != nil {
			cr.Append(n.Body)
		} else {
			cr.AppendNil()
		}
		for _, r := range n.Rescues {
			cr.Append(r)
		}
		if n.ElseBody != nil {
			cr.Append(n.ElseBody)
		}
	}
	if n.Ensure != nil {
		c.SetType(KindEnsure)
		c.AppendSexp(build)
		c.Append(n.Ensure)
		return
	}
	build(c)
}

// Begin is a bare `begin; body; end` block with no rescue/ensure clauses
// attached (used for grouping and for the retry-able loop body).
type Begin struct {
	base
	Body Node
}

func NewBegin(tok lexer.Token, body Node) *Begin { return &Begin{newBase(tok), body} }
func (n *Begin) Type() Kind                      { return KindBegin }
func (n *Begin) Transform(c Creator) {
	c.SetType(KindBegin)
	if n.Body != nil {
		c.Append(n.Body)
	}
}

// BeginBlock is `BEGIN { body }`.
type BeginBlock struct {
	base
	Body Node
}

func NewBeginBlock(tok lexer.Token, body Node) *BeginBlock { return &BeginBlock{newBase(tok), body} }
func (n *BeginBlock) Type() Kind                            { return KindBeginBlock }
func (n *BeginBlock) Transform(c Creator) {
	c.SetType(KindBeginBlock)
	if n.Body != nil {
		c.Append(n.Body)
	}
}

// EndBlock is `END { body }`.
type EndBlock struct {
	base
	Body Node
}

func NewEndBlock(tok lexer.Token, body Node) *EndBlock { return &EndBlock{newBase(tok), body} }
func (n *EndBlock) Type() Kind                          { return KindEndBlock }
func (n *EndBlock) Transform(c Creator) {
	c.SetType(KindEndBlock)
	if n.Body != nil {
		c.Append(n.Body)
	}
}

// Sclass is `class << expr; body; end`, opening the singleton class of expr.
type Sclass struct {
	base
	Target Node
	Body   Node
}

func NewSclass(tok lexer.Token, target, body Node) *Sclass { return &Sclass{newBase(tok), target, body} }
func (n *Sclass) Type() Kind                                { return KindSclass }
func (n *Sclass) Transform(c Creator) {
	c.SetType(KindSclass)
	c.Append(n.Target)
	if n.Body != nil {
		c.Append(n.Body)
	}
}

// Class is `class Name < Superclass; body; end`. Doc holds an attached
// documentation comment (spec §4.1's Doc-attachment pass).
type Class struct {
	base
	Name       Node // Constant or Colon2/Colon3
	Superclass Node // nil when absent
	Body       Node
	Doc        string
}

func NewClass(tok lexer.Token, name, superclass, body Node, doc string) *Class {
	return &Class{newBase(tok), name, superclass, body, doc}
}
func (n *Class) Type() Kind { return KindClass }
func (n *Class) Transform(c Creator) {
	c.SetType(KindClass)
	if n.Doc != "" {
		c.SetComments(n.Doc)
	}
	c.AppendSymbol(nameOf(n.Name))
	if n.Superclass != nil {
		c.Append(n.Superclass)
	} else {
		c.AppendNil()
	}
	if n.Body != nil {
		c.Append(n.Body)
	}
}

func nameOf(n Node) string {
	switch t := n.(type) {
	case *Constant:
		return t.Name
	case *Colon2:
		return t.Name
	case *Colon3:
		return t.Name
	default:
		return ""
	}
}

// Module is `module Name; body; end`.
type Module struct {
	base
	Name Node
	Body Node
	Doc  string
}

func NewModule(tok lexer.Token, name, body Node, doc string) *Module {
	return &Module{newBase(tok), name, body, doc}
}
func (n *Module) Type() Kind { return KindModule }
func (n *Module) Transform(c Creator) {
	c.SetType(KindModule)
	if n.Doc != "" {
		c.SetComments(n.Doc)
	}
	c.AppendSymbol(nameOf(n.Name))
	if n.Body != nil {
		c.Append(n.Body)
	}
}

// Arg is a required positional parameter.
type Arg struct {
	base
	Name string
}

func NewArg(tok lexer.Token, name string) *Arg { return &Arg{newBase(tok), name} }
func (n *Arg) Type() Kind                       { return KindArg }
func (n *Arg) Transform(c Creator) {
	c.SetType(KindArg)
	c.AppendSymbol(n.Name)
}

// KeywordArg is a `name:` or `name: default` keyword parameter, and also
// covers optional-positional (`name = default`) and splat/double-splat
// (`*name`, `**name`) parameters via Kind.
type KeywordArg struct {
	base
	Name     string
	Default  Node // nil for a required keyword param
	Required bool // true for bare `name:` with no default
	Splat    bool
	DoubleSplat bool
}

func NewKeywordArg(tok lexer.Token, name string, def Node, required bool) *KeywordArg {
	return &KeywordArg{base: newBase(tok), Name: name, Default: def, Required: required}
}
func NewOptionalArg(tok lexer.Token, name string, def Node) *KeywordArg {
	return &KeywordArg{base: newBase(tok), Name: name, Default: def}
}
func NewSplatArg(tok lexer.Token, name string) *KeywordArg {
	return &KeywordArg{base: newBase(tok), Name: name, Splat: true}
}
func NewDoubleSplatArg(tok lexer.Token, name string) *KeywordArg {
	return &KeywordArg{base: newBase(tok), Name: name, DoubleSplat: true}
}

func (n *KeywordArg) Type() Kind {
	switch {
	case n.Splat:
		return KindSplat
	case n.DoubleSplat:
		return KindKwsplat
	case n.Default != nil && n.Required == false && n.Default != nil:
		return KindArg
	default:
		return KindArg
	}
}

func (n *KeywordArg) Transform(c Creator) {
	switch {
	case n.Splat:
		c.SetType(KindSplat)
		if n.Name != "" {
			c.AppendSymbol(n.Name)
		}
	case n.DoubleSplat:
		c.SetType(KindKwsplat)
		if n.Name != "" {
			c.AppendSymbol(n.Name)
		}
	case n.Default != nil:
		c.SetType(KindArg)
		c.AppendSymbol(n.Name)
		c.Append(n.Default)
	default:
		c.SetType(KindArg)
		c.AppendSymbol(n.Name)
	}
}

// BlockArg is a `&blk` parameter capturing the passed block as a Proc.
type BlockArg struct {
	base
	Name string
}

func NewBlockArg(tok lexer.Token, name string) *BlockArg { return &BlockArg{newBase(tok), name} }
func (n *BlockArg) Type() Kind                            { return KindBlockArg }
func (n *BlockArg) Transform(c Creator) {
	c.SetType(KindBlockArg)
	c.AppendSymbol(n.Name)
}

// ShadowArg is a block-local shadow variable `|x; shadow|` — declared in
// the parameter list to explicitly exclude it from closing over an outer
// local of the same name.
type ShadowArg struct {
	base
	Name string
}

func NewShadowArg(tok lexer.Token, name string) *ShadowArg { return &ShadowArg{newBase(tok), name} }
func (n *ShadowArg) Type() Kind                             { return KindShadow }
func (n *ShadowArg) Transform(c Creator) {
	c.SetType(KindShadow)
	c.AppendSymbol(n.Name)
}

// Def is `def name(params); body; end` / `def self.name(params); body; end`.
// Receiver is non-nil for the singleton-method (`defs`) form.
type Def struct {
	base
	Receiver Node // nil for an ordinary instance-method def
	Name     string
	Params   []Node
	Body     Node
	Doc      string
}

func NewDef(tok lexer.Token, name string, params []Node, body Node, doc string) *Def {
	return &Def{base: newBase(tok), Name: name, Params: params, Body: body, Doc: doc}
}
func NewDefs(tok lexer.Token, receiver Node, name string, params []Node, body Node, doc string) *Def {
	return &Def{base: newBase(tok), Receiver: receiver, Name: name, Params: params, Body: body, Doc: doc}
}

func (n *Def) Type() Kind {
	if n.Receiver != nil {
		return KindDefs
	}
	return KindDefn
}

func (n *Def) Transform(c Creator) {
	if n.Receiver != nil {
		c.SetType(KindDefs)
		if n.Doc != "" {
			c.SetComments(n.Doc)
		}
		c.Append(n.Receiver)
		c.AppendSymbol(n.Name)
		n.appendArgsAndBody(c)
		return
	}
	c.SetType(KindDefn)
	if n.Doc != "" {
		c.SetComments(n.Doc)
	}
	c.AppendSymbol(n.Name)
	n.appendArgsAndBody(c)
}

func (n *Def) appendArgsAndBody(c Creator) {
	c.AppendSexp(func(cr Creator) {
		cr.SetType(KindArgs)
		for _, p := range n.Params {
			cr.Append(p)
		}
	})
	if n.Body != nil {
		c.Append(n.Body)
	}
}

// Iter wraps a block attached to a Call/Super/ZSuper: (:iter, call,
// args-spec, body) where args-spec is 0 for no args or (:args, entries...)
// (spec §6). The invocation this block attaches to holds it in its Block
// field; appendSpec is invoked by that invocation's own Transform once it
// has appended itself, completing the outer (:iter, ...) tuple.
type Iter struct {
	base
	Params []Node
	Body   Node
}

func NewIter(tok lexer.Token, params []Node, body Node) *Iter { return &Iter{newBase(tok), params, body} }
func (n *Iter) Type() Kind                                     { return KindIter }

// Transform is unused directly; Iter only ever appears attached to a
// Call/Super/ZSuper node, which drives rendering via appendSpec.
func (n *Iter) Transform(c Creator) {}

func (n *Iter) appendSpec(c Creator) {
	if len(n.Params) == 0 {
		c.AppendInteger(0)
	} else {
		c.AppendSexp(func(cr Creator) {
			cr.SetType(KindArgs)
			for _, p := range n.Params {
				cr.Append(p)
			}
		})
	}
	if n.Body != nil {
		c.Append(n.Body)
	}
}

// StabbyProc is `->(params) { body }` / `->params { body }`.
type StabbyProc struct {
	base
	Params []Node
	Body   Node
}

func NewStabbyProc(tok lexer.Token, params []Node, body Node) *StabbyProc {
	return &StabbyProc{newBase(tok), params, body}
}
func (n *StabbyProc) Type() Kind { return KindIter }
func (n *StabbyProc) Transform(c Creator) {
	c.SetType(KindIter)
	c.AppendSexp(func(cr Creator) {
		cr.SetType(KindCall)
		cr.AppendNil()
		cr.AppendSymbol("lambda")
	})
	if len(n.Params) == 0 {
		c.AppendInteger(0)
	} else {
		c.AppendSexp(func(cr Creator) {
			cr.SetType(KindArgs)
			for _, p := range n.Params {
				cr.Append(p)
			}
		})
	}
	if n.Body != nil {
		c.Append(n.Body)
	}
}

// Alias is `alias new_name old_name`.
type Alias struct {
	base
	NewName Node // Symbol/InterpolatedSymbol/bareword-wrapped-as-Symbol
	OldName Node
}

func NewAlias(tok lexer.Token, newName, oldName Node) *Alias { return &Alias{newBase(tok), newName, oldName} }
func (n *Alias) Type() Kind                                   { return KindAlias }
func (n *Alias) Transform(c Creator) {
	c.SetType(KindAlias)
	c.Append(n.NewName)
	c.Append(n.OldName)
}

// Valias is `alias $new $old` for globals.
type Valias struct {
	base
	NewName string
	OldName string
}

func NewValias(tok lexer.Token, newName, oldName string) *Valias { return &Valias{newBase(tok), newName, oldName} }
func (n *Valias) Type() Kind                                      { return KindValias }
func (n *Valias) Transform(c Creator) {
	c.SetType(KindValias)
	c.AppendSymbol(n.NewName)
	c.AppendSymbol(n.OldName)
}

// Undef is `undef name1, name2`.
type Undef struct {
	base
	Names []Node
}

func NewUndef(tok lexer.Token, names []Node) *Undef { return &Undef{newBase(tok), names} }
func (n *Undef) Type() Kind                          { return KindUndef }
func (n *Undef) Transform(c Creator) {
	c.SetType(KindUndef)
	for _, name := range n.Names {
		c.Append(name)
	}
}
