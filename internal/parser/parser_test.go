package parser_test

import (
	"testing"

	"github.com/natalie-lang/natalie-parser/internal/creator"
	"github.com/natalie-lang/natalie-parser/internal/parser"
)

func parseSexp(t *testing.T, src string) string {
	t.Helper()
	root, err := parser.New(src).Tree()
	if err != nil {
		t.Fatalf("unexpected parse error for %q: %v", src, err)
	}
	return creator.Render(root)
}

func TestParseIntegerLiteral(t *testing.T) {
	got := parseSexp(t, "42\n")
	want := `(:lit, 42)`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestParseStringLiteral(t *testing.T) {
	got := parseSexp(t, "'hello'\n")
	want := `(:str, "hello")`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestParseBinaryOp(t *testing.T) {
	got := parseSexp(t, "1 + 2\n")
	want := `(:call, (:lit, 1), :+, (:lit, 2))`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestParseOperatorPrecedence(t *testing.T) {
	got := parseSexp(t, "1 + 2 * 3\n")
	want := `(:call, (:lit, 1), :+, (:call, (:lit, 2), :*, (:lit, 3)))`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestParseBarewordIsCallWhenNotLocal(t *testing.T) {
	got := parseSexp(t, "foo\n")
	want := `(:call, nil, :foo)`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestParseBarewordIsLvarAfterAssignment(t *testing.T) {
	got := parseSexp(t, "x = 1\nx\n")
	want := `(:block, (:lasgn, :x, (:lit, 1)), (:lvar, :x))`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestParseIfExpression(t *testing.T) {
	got := parseSexp(t, "if x\n  1\nelse\n  2\nend\n")
	want := `(:if, (:call, nil, :x), (:lit, 1), (:lit, 2))`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestParseStatementModifierIf(t *testing.T) {
	got := parseSexp(t, "1 if x\n")
	want := `(:if, (:call, nil, :x), (:lit, 1), nil)`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestParseMethodCallWithArgs(t *testing.T) {
	got := parseSexp(t, "foo(1, 2)\n")
	want := `(:call, nil, :foo, (:lit, 1), (:lit, 2))`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestParseArrayLiteral(t *testing.T) {
	got := parseSexp(t, "[1, 2, 3]\n")
	want := `(:array, (:lit, 1), (:lit, 2), (:lit, 3))`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestParseSyntaxErrorIsRaised(t *testing.T) {
	_, err := parser.New("def\n").Tree()
	if err == nil {
		t.Fatalf("expected a syntax error for a malformed def")
	}
}

func TestParseWhileLoop(t *testing.T) {
	got := parseSexp(t, "while x\n  1\nend\n")
	want := `(:while, (:call, nil, :x), (:lit, 1), true)`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestParseRangeWithIntegerEndpointsCollapsesToLit(t *testing.T) {
	got := parseSexp(t, "1..5\n")
	want := `(:lit, 1, .., 5)`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestParseExcludeEndRangeWithIntegerEndpointsCollapsesToLit(t *testing.T) {
	got := parseSexp(t, "1...5\n")
	want := `(:lit, 1, ..., 5)`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestParseRangeWithNonIntegerEndpointDoesNotCollapse(t *testing.T) {
	got := parseSexp(t, "1..x\n")
	want := `(:dot2, (:lit, 1), (:call, nil, :x))`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestParseInterpolatedStringLeadingPartIsBare(t *testing.T) {
	got := parseSexp(t, "\"x#{y}z\"\n")
	want := `(:dstr, "x", (:evstr, (:call, nil, :y)), (:str, "z"))`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestParseMultipleAssignment(t *testing.T) {
	got := parseSexp(t, "a, b = 1, 2\n")
	want := `(:masgn, (:array, (:lasgn, :a), (:lasgn, :b)), (:array, (:lit, 1), (:lit, 2)))`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

// A trailing do...end block binds to the nearest preceding bareword that
// can still accept one, which for an implicit-call argument is the
// argument itself rather than the call it belongs to.
func TestParseDoBlockBindsToInnermostBareword(t *testing.T) {
	got := parseSexp(t, "foo bar do\n  1\nend\n")
	want := `(:call, nil, :foo, (:iter, (:call, nil, :bar), 0, (:lit, 1)))`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestParseCaseIn(t *testing.T) {
	got := parseSexp(t, "case x\nin 1\n  2\nend\n")
	want := `(:case, (:call, nil, :x), (:in, (:lit, 1), (:lit, 2)), nil)`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}
