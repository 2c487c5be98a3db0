package lexer

import "testing"

func TestTokensBasicAssignment(t *testing.T) {
	input := "x = 10\n"

	expected := []Kind{
		BareName, Assign, Integer, Eol, EOF,
	}

	lx := New(input, "test.rb")
	toks := lx.Tokens()

	var kinds []Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}

	if len(kinds) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(kinds), kinds)
	}
	for i, k := range expected {
		if kinds[i] != k {
			t.Fatalf("token %d: expected %s, got %s", i, k, kinds[i])
		}
	}
}

func TestTokensCommentsDropped(t *testing.T) {
	input := "x = 1 # comment\ny = 2\n"

	lx := New(input, "test.rb")
	for _, tok := range lx.Tokens() {
		if tok.Kind == Comment {
			t.Fatalf("expected comments to be dropped from Tokens(), found one")
		}
	}
}

func TestTokensSemicolonFoldsToEol(t *testing.T) {
	input := "x = 1; y = 2\n"

	lx := New(input, "test.rb")
	for _, tok := range lx.Tokens() {
		if tok.Kind == Semi {
			t.Fatalf("expected every Semi token to fold to Eol")
		}
	}
}

func TestTokensDocCommentAttachedToDef(t *testing.T) {
	input := "# returns one\ndef one\n  1\nend\n"

	lx := New(input, "test.rb")
	var found bool
	for _, tok := range lx.Tokens() {
		if tok.Kind == KwDef {
			found = true
			if tok.Doc == "" {
				t.Fatalf("expected KwDef token to carry the preceding comment as Doc")
			}
		}
	}
	if !found {
		t.Fatalf("expected a KwDef token in the stream")
	}
}

func TestTokensStringLiteral(t *testing.T) {
	input := `'hello'` + "\n"

	lx := New(input, "test.rb")
	toks := lx.Tokens()
	if len(toks) < 1 || toks[0].Kind != String {
		t.Fatalf("expected first token to be a String, got %v", toks)
	}
	if toks[0].Literal != "hello" {
		t.Fatalf("expected literal %q, got %q", "hello", toks[0].Literal)
	}
}

func TestTokensIntegerLiteral(t *testing.T) {
	input := "42\n"

	lx := New(input, "test.rb")
	toks := lx.Tokens()
	if len(toks) < 1 || toks[0].Kind != Integer {
		t.Fatalf("expected first token to be an Integer, got %v", toks)
	}
	if toks[0].Fixnum != 42 {
		t.Fatalf("expected Fixnum 42, got %d", toks[0].Fixnum)
	}
}
