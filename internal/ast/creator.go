package ast

// Creator is the visitor vocabulary Node.Transform drives (spec §4.4). The
// AST never builds output directly; every variant's Transform calls back
// into Creator so the same tree can render as debug text (internal/creator
// Debug) or host-native values (internal/creator Host) without the AST
// knowing which.
//
// A single logical sexp is built by one SetType call followed by zero or
// more Append*/Wrap calls; AppendSexp opens a nested sexp with a fresh
// sub-Creator supplied to the callback, mirroring the reference
// implementation's "fn is invoked with a fresh sub-Creator" contract.
type Creator interface {
	// SetType tags the sexp currently under construction with kind.
	SetType(kind Kind)
	// SetComments attaches accumulated doc-comment text (class/def/module).
	SetComments(text string)

	// Append recurses into n by calling n.Transform(c).
	Append(n Node)
	// AppendArray recurses into an Array node, forcing its non-pattern
	// ("array", elems...) rendering even if Transform would otherwise
	// choose a pattern form.
	AppendArray(n Node)

	AppendSymbol(name string)
	AppendString(s string)
	AppendRegexp(pattern string, options int64)
	AppendInteger(i int64)
	AppendBignum(text string)
	AppendFloat(f float64)
	// AppendRange appends the flattened three-atom form of a numeric-literal
	// range (first, the ".."/"..." marker, last) used when both endpoints of
	// a Range collapse into a single `lit` value (spec §4.3).
	AppendRange(first, last int64, excludeEnd bool)

	AppendTrue()
	AppendFalse()
	AppendNil()
	AppendNilSexp()

	// AppendSexp opens a nested sexp, invoking fn with a fresh Creator
	// scoped to it, then appends the built result as a child.
	AppendSexp(fn func(Creator))
	// Wrap re-tags the sexp built so far as kind, making it the first
	// child of a new outer sexp of that kind.
	Wrap(kind Kind)

	MakeRationalNumber(text string)
	MakeComplexNumber(text string)

	// Assignment reports the currently threaded write-position bit.
	Assignment() bool
	// WithAssignment runs fn with the write-position bit set to flag,
	// restoring the prior value on return.
	WithAssignment(flag bool, fn func())
}
