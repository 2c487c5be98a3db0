// Package creator provides the two Creator implementations driven by
// ast.Node.Transform: Debug, which renders the classic `(:type, child,
// ...)` S-expression text, and Host, which builds a lightweight Go-native
// value tree (Sexp) suitable for JSON encoding or programmatic inspection.
package creator

import (
	"fmt"
	"strconv"
	"strings"
)

// Sexp is the Go-native value a Node tree transforms into: a tagged node
// with an ordered list of children, each either a nested *Sexp or one of
// the atom types below (Symbol, string, int64, float64, bool, nil).
type Sexp struct {
	Type     string
	Comments string
	Children []any
}

// Symbol is a bare Ruby symbol rendered without quotes, e.g. :foo.
type Symbol string

// Bignum carries an integer literal too large for int64, preserved as text.
type Bignum string

// Rational carries a rational-literal's source text verbatim.
type Rational string

// Complex carries a complex-literal's source text verbatim.
type Complex string

// RegexpLiteral is a (pattern, options) pair rendered as one atom,
// /pattern/, followed by (opts=N) when the options are non-zero.
type RegexpLiteral struct {
	Pattern string
	Options int64
}

// RangeOp is the bare ".."/"..." marker between a collapsed range literal's
// endpoints; it renders unquoted, unlike an ordinary string atom.
type RangeOp string

func (s *Sexp) String() string {
	var b strings.Builder
	writeSexp(&b, s)
	return b.String()
}

func writeSexp(b *strings.Builder, s *Sexp) {
	b.WriteString("(:")
	b.WriteString(s.Type)
	for _, child := range s.Children {
		b.WriteString(", ")
		writeAtom(b, child)
	}
	b.WriteString(")")
}

func writeAtom(b *strings.Builder, v any) {
	switch t := v.(type) {
	case nil:
		b.WriteString("nil")
	case *Sexp:
		writeSexp(b, t)
	case Symbol:
		b.WriteString(":")
		b.WriteString(string(t))
	case string:
		b.WriteString(strconv.Quote(t))
	case Bignum:
		b.WriteString(string(t))
	case RangeOp:
		b.WriteString(string(t))
	case Rational:
		fmt.Fprintf(b, "(%sr)", string(t))
	case Complex:
		fmt.Fprintf(b, "(%si)", string(t))
	case RegexpLiteral:
		fmt.Fprintf(b, "/%s/", t.Pattern)
		if t.Options != 0 {
			fmt.Fprintf(b, "(opts=%d)", t.Options)
		}
	case int64:
		b.WriteString(strconv.FormatInt(t, 10))
	case float64:
		b.WriteString(strconv.FormatFloat(t, 'g', -1, 64))
	case bool:
		if t {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	default:
		fmt.Fprintf(b, "%v", t)
	}
}
