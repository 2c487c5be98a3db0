package creator

import "github.com/natalie-lang/natalie-parser/internal/ast"

// Debug renders a Node straight to its canonical S-expression text,
// matching the reference grammar's debug/pp output. It delegates the
// actual tree construction to Host and formats the result in PrettyPrint().
type Debug struct {
	host *Host
}

// NewDebug returns a fresh Creator rooted at an empty sexp.
func NewDebug() *Debug { return &Debug{host: NewHost()} }

// PrettyPrint returns the canonical S-expression text for the tree built
// so far, e.g. `(:lasgn, :x, (:lit, 1))`.
func (d *Debug) PrettyPrint() string { return d.host.Result().String() }

func (d *Debug) SetType(kind ast.Kind)   { d.host.SetType(kind) }
func (d *Debug) SetComments(text string) { d.host.SetComments(text) }
func (d *Debug) Append(n ast.Node)       { d.host.Append(n) }
func (d *Debug) AppendArray(n ast.Node)  { d.host.AppendArray(n) }
func (d *Debug) AppendSymbol(name string) { d.host.AppendSymbol(name) }
func (d *Debug) AppendString(s string)   { d.host.AppendString(s) }
func (d *Debug) AppendRegexp(pattern string, options int64) {
	d.host.AppendRegexp(pattern, options)
}
func (d *Debug) AppendInteger(i int64)   { d.host.AppendInteger(i) }
func (d *Debug) AppendBignum(text string) { d.host.AppendBignum(text) }
func (d *Debug) AppendFloat(f float64)   { d.host.AppendFloat(f) }
func (d *Debug) AppendRange(first, last int64, excludeEnd bool) {
	d.host.AppendRange(first, last, excludeEnd)
}
func (d *Debug) AppendTrue()    { d.host.AppendTrue() }
func (d *Debug) AppendFalse()   { d.host.AppendFalse() }
func (d *Debug) AppendNil()     { d.host.AppendNil() }
func (d *Debug) AppendNilSexp() { d.host.AppendNilSexp() }
func (d *Debug) AppendSexp(fn func(ast.Creator)) {
	// fn is written against ast.Creator; host.AppendSexp already satisfies
	// that contract by passing a *Host (also a valid ast.Creator) to fn.
	d.host.AppendSexp(fn)
}
func (d *Debug) Wrap(kind ast.Kind) { d.host.Wrap(kind) }
func (d *Debug) MakeRationalNumber(text string) { d.host.MakeRationalNumber(text) }
func (d *Debug) MakeComplexNumber(text string)  { d.host.MakeComplexNumber(text) }
func (d *Debug) Assignment() bool               { return d.host.Assignment() }
func (d *Debug) WithAssignment(flag bool, fn func()) { d.host.WithAssignment(flag, fn) }

// Render is a convenience wrapper: Render(n) == building a fresh Debug,
// calling n.Transform on it, and returning PrettyPrint().
func Render(n ast.Node) string {
	d := NewDebug()
	n.Transform(d)
	return d.PrettyPrint()
}

// RenderHost is Render's Host-tree analogue, used when callers want the
// structured value rather than its text form (e.g. to re-encode as JSON).
func RenderHost(n ast.Node) *Sexp {
	h := NewHost()
	n.Transform(h)
	return h.Result()
}
