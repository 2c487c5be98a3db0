package creator

import "github.com/natalie-lang/natalie-parser/internal/ast"

// Host builds a Go-native Sexp tree from a Node, for programmatic
// consumption (cmd/natalie-parse's "sexp" subcommand JSON-encodes it).
type Host struct {
	node       *Sexp
	assignment *bool // shared across the whole tree via WithAssignment
}

// NewHost returns a fresh Creator rooted at an empty Sexp.
func NewHost() *Host {
	flag := false
	return &Host{node: &Sexp{}, assignment: &flag}
}

// Result returns the built tree. Call once after a single top-level
// Node.Transform(h) call.
func (h *Host) Result() *Sexp { return h.node }

func (h *Host) SetType(kind ast.Kind)     { h.node.Type = string(kind) }
func (h *Host) SetComments(text string)   { h.node.Comments = text }

func (h *Host) child() *Host {
	return &Host{node: &Sexp{}, assignment: h.assignment}
}

func (h *Host) Append(n ast.Node) {
	sub := h.child()
	n.Transform(sub)
	h.node.Children = append(h.node.Children, sub.node)
}

func (h *Host) AppendArray(n ast.Node) {
	h.Append(n)
}

func (h *Host) AppendSymbol(name string) {
	h.node.Children = append(h.node.Children, Symbol(name))
}

func (h *Host) AppendString(s string) {
	h.node.Children = append(h.node.Children, s)
}

func (h *Host) AppendRegexp(pattern string, options int64) {
	h.node.Children = append(h.node.Children, RegexpLiteral{Pattern: pattern, Options: options})
}

func (h *Host) AppendInteger(i int64) {
	h.node.Children = append(h.node.Children, i)
}

func (h *Host) AppendBignum(text string) {
	h.node.Children = append(h.node.Children, Bignum(text))
}

func (h *Host) AppendFloat(f float64) {
	h.node.Children = append(h.node.Children, f)
}

func (h *Host) AppendRange(first, last int64, excludeEnd bool) {
	op := ".."
	if excludeEnd {
		op = "..."
	}
	h.node.Children = append(h.node.Children, first, RangeOp(op), last)
}

func (h *Host) AppendTrue()  { h.node.Children = append(h.node.Children, true) }
func (h *Host) AppendFalse() { h.node.Children = append(h.node.Children, false) }
func (h *Host) AppendNil()   { h.node.Children = append(h.node.Children, nil) }

func (h *Host) AppendNilSexp() {
	h.AppendSexp(func(cr ast.Creator) { cr.SetType(ast.KindNilSexp) })
}

func (h *Host) AppendSexp(fn func(ast.Creator)) {
	sub := h.child()
	fn(sub)
	h.node.Children = append(h.node.Children, sub.node)
}

func (h *Host) Wrap(kind ast.Kind) {
	old := h.node
	h.node = &Sexp{Type: string(kind), Children: []any{old}}
}

func (h *Host) MakeRationalNumber(text string) {
	h.node.Children = append(h.node.Children, Rational(text))
}

func (h *Host) MakeComplexNumber(text string) {
	h.node.Children = append(h.node.Children, Complex(text))
}

func (h *Host) Assignment() bool { return *h.assignment }

func (h *Host) WithAssignment(flag bool, fn func()) {
	prev := *h.assignment
	*h.assignment = flag
	fn()
	*h.assignment = prev
}
