package ast_test

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/natalie-lang/natalie-parser/internal/ast"
	"github.com/natalie-lang/natalie-parser/internal/creator"
	"github.com/natalie-lang/natalie-parser/internal/lexer"
)

func zeroTok() lexer.Token { return lexer.Token{} }

func TestFixnumTransformsToLitSexp(t *testing.T) {
	n := ast.NewFixnum(zeroTok(), 7)

	got := creator.RenderHost(n)
	want := &creator.Sexp{Type: "lit", Children: []any{int64(7)}}

	if diff := deep.Equal(got, want); diff != nil {
		for _, d := range diff {
			t.Error(d)
		}
	}
}

func TestInfixOpTransformsToCallSexp(t *testing.T) {
	left := ast.NewFixnum(zeroTok(), 1)
	right := ast.NewFixnum(zeroTok(), 2)
	n := ast.NewInfixOp(zeroTok(), left, "+", right)

	got := creator.RenderHost(n)
	want := &creator.Sexp{
		Type: "call",
		Children: []any{
			&creator.Sexp{Type: "lit", Children: []any{int64(1)}},
			creator.Symbol("+"),
			&creator.Sexp{Type: "lit", Children: []any{int64(2)}},
		},
	}

	if diff := deep.Equal(got, want); diff != nil {
		for _, d := range diff {
			t.Error(d)
		}
	}
}

func TestArrayTransformsToArraySexp(t *testing.T) {
	n := ast.NewArray(zeroTok(), []ast.Node{
		ast.NewFixnum(zeroTok(), 1),
		ast.NewFixnum(zeroTok(), 2),
	})

	got := creator.RenderHost(n)
	want := &creator.Sexp{
		Type: "array",
		Children: []any{
			&creator.Sexp{Type: "lit", Children: []any{int64(1)}},
			&creator.Sexp{Type: "lit", Children: []any{int64(2)}},
		},
	}

	if diff := deep.Equal(got, want); diff != nil {
		for _, d := range diff {
			t.Error(d)
		}
	}
}

func TestIfWithNoElseAppendsNil(t *testing.T) {
	cond := ast.NewTrue(zeroTok())
	then := ast.NewFixnum(zeroTok(), 1)
	n := ast.NewIf(zeroTok(), cond, then, nil)

	got := creator.RenderHost(n)
	want := &creator.Sexp{
		Type: "if",
		Children: []any{
			&creator.Sexp{Type: "true", Children: []any{true}},
			&creator.Sexp{Type: "lit", Children: []any{int64(1)}},
			nil,
		},
	}

	if diff := deep.Equal(got, want); diff != nil {
		for _, d := range diff {
			t.Error(d)
		}
	}
}

func TestBlockWithSingleStatementCollapses(t *testing.T) {
	stmt := ast.NewFixnum(zeroTok(), 1)
	n := ast.NewBlock(zeroTok(), []ast.Node{stmt})

	got := creator.RenderHost(n)
	want := &creator.Sexp{Type: "lit", Children: []any{int64(1)}}

	if diff := deep.Equal(got, want); diff != nil {
		for _, d := range diff {
			t.Error(d)
		}
	}
}

func TestRangeWithIntegerEndpointsCollapsesToLit(t *testing.T) {
	n := ast.NewRange(zeroTok(), ast.NewFixnum(zeroTok(), 1), ast.NewFixnum(zeroTok(), 5), false)

	got := creator.RenderHost(n)
	want := &creator.Sexp{
		Type:     "lit",
		Children: []any{int64(1), creator.RangeOp(".."), int64(5)},
	}

	if diff := deep.Equal(got, want); diff != nil {
		for _, d := range diff {
			t.Error(d)
		}
	}
}

func TestRangeWithNonIntegerEndpointRendersAsDot2(t *testing.T) {
	first := ast.NewFixnum(zeroTok(), 1)
	last := ast.NewLocalIdentifier(zeroTok(), "x", false)
	n := ast.NewRange(zeroTok(), first, last, false)

	got := creator.RenderHost(n)
	want := &creator.Sexp{
		Type: "dot2",
		Children: []any{
			&creator.Sexp{Type: "lit", Children: []any{int64(1)}},
			&creator.Sexp{Type: "call", Children: []any{nil, creator.Symbol("x")}},
		},
	}

	if diff := deep.Equal(got, want); diff != nil {
		for _, d := range diff {
			t.Error(d)
		}
	}
}

func TestInterpolatedStringLeadingStringPartIsBare(t *testing.T) {
	parts := []ast.Node{
		ast.NewString(zeroTok(), "x"),
		ast.NewEvaluateToString(zeroTok(), ast.NewLocalIdentifier(zeroTok(), "y", false)),
		ast.NewString(zeroTok(), "z"),
	}
	n := ast.NewInterpolatedString(zeroTok(), parts)

	got := creator.RenderHost(n)
	want := &creator.Sexp{
		Type: "dstr",
		Children: []any{
			"x",
			&creator.Sexp{
				Type: "evstr",
				Children: []any{
					&creator.Sexp{Type: "call", Children: []any{nil, creator.Symbol("y")}},
				},
			},
			&creator.Sexp{Type: "str", Children: []any{"z"}},
		},
	}

	if diff := deep.Equal(got, want); diff != nil {
		for _, d := range diff {
			t.Error(d)
		}
	}
}

func TestBlockWithMultipleStatementsWraps(t *testing.T) {
	n := ast.NewBlock(zeroTok(), []ast.Node{
		ast.NewFixnum(zeroTok(), 1),
		ast.NewFixnum(zeroTok(), 2),
	})

	got := creator.RenderHost(n)
	want := &creator.Sexp{
		Type: "block",
		Children: []any{
			&creator.Sexp{Type: "lit", Children: []any{int64(1)}},
			&creator.Sexp{Type: "lit", Children: []any{int64(2)}},
		},
	}

	if diff := deep.Equal(got, want); diff != nil {
		for _, d := range diff {
			t.Error(d)
		}
	}
}
