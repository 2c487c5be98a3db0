package lexer

import "github.com/natalie-lang/natalie-parser/internal/diag"

// Span mirrors diag.Span; the lexer keeps its own copy (the way the
// teacher's lexer.Span predates and is converted into diag.Span) so this
// package has no import-time dependency on the parser's error plumbing,
// only on diag for the conversion helper below.
type Span struct {
	Filename string
	Line     int // 1-based
	Column   int // 1-based
	Start    int // rune index
	End      int // exclusive rune index
}

// ToDiag converts a lexer Span into the shared diagnostic Span.
func (s Span) ToDiag() diag.Span {
	return diag.Span{Filename: s.Filename, Line: s.Line, Column: s.Column, Start: s.Start, End: s.End}
}

// Kind enumerates every token kind the lexer can emit. The full predicate
// truth-tables below (IsOperator, CanPrecedeCollapsibleNewline, ...) are
// part of the parser/lexer contract: they decide whether "foo bar" is a
// call with an argument, whether a newline folds, and whether a line-
// leading literal starts a statement.
type Kind uint8

const (
	EOF Kind = iota
	Invalid
	InvalidUnicodeEscape
	InvalidCharacterEscape
	UnterminatedString
	UnterminatedRegexp
	UnterminatedWordArray
	Eol
	Comment
	Doc

	// Plain literals.
	BareName   // lowercase-leading identifier: local var read or no-arg call
	Constant   // Uppercase-leading identifier
	IVar       // @name
	CVar       // @@name
	GVar       // $name
	BackRef    // $&, $', $`, $~, $!
	NthRef     // $1, $2, ...
	Integer    // fits in a native int
	Bignum     // textual form retained, value exceeds native width
	Float
	Rational
	Symbol         // :name / :+ / :[]= (non-interpolated)
	String         // single-quoted / %q-style, no interpolation
	Regexp         // non-interpolated regexp (rare: %r with no escapes needing eval)
	Shell          // non-interpolated shell literal
	EncodingConst  // __ENCODING__

	// Interpolation / nested-lexer boundary tokens.
	StringBegin
	StringContent
	StringEnd
	SymbolBegin
	SymbolEnd
	RegexpBegin
	RegexpEnd // Literal carries trailing option letters, e.g. "im"
	ShellBegin
	ShellEnd
	EvaluateToStringBegin
	EvaluateToStringEnd
	WordsBegin // %w[ / %W[
	WordsSep   // whitespace boundary between word-array elements
	WordsEnd
	SymbolsBegin // %i[ / %I[
	SymbolsEnd
	HeredocBegin // Literal carries the heredoc tag

	// Operators & punctuation.
	Plus
	Minus
	Star
	StarStar
	Slash
	Percent
	Amp
	Amp2
	Pipe
	Pipe2
	Caret
	Tilde
	Bang
	Lt
	Gt
	Le
	Ge
	CmpEq
	NotEq
	CaseEq
	Spaceship
	Match
	NotMatch
	LShift
	RShift
	Assign
	OpAssign // Literal carries the base op, e.g. "+" for "+="
	HashRocket
	SafeNav // &.
	Dot
	Dot2
	Dot3
	Colon2
	Colon
	Comma
	Semi
	Question
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace
	StabbyArrow // -> (opens a stabby proc parameter list)

	// Keywords.
	KwDef
	KwEnd
	KwIf
	KwElsif
	KwElse
	KwUnless
	KwThen
	KwWhile
	KwUntil
	KwFor
	KwIn
	KwDo
	KwCase
	KwWhen
	KwBreak
	KwNext
	KwRedo
	KwRetry
	KwReturn
	KwClass
	KwModule
	KwSelf
	KwBegin
	KwRescue
	KwEnsure
	KwYield
	KwSuper
	KwNil
	KwTrue
	KwFalse
	KwAnd
	KwOr
	KwNot
	KwDefined
	KwAlias
	KwUndef
	KwBeginBlock // BEGIN
	KwEndBlock   // END
	KwLambda     // lambda keyword (bare, not ->)
)

var kindNames = map[Kind]string{
	EOF: "EOF", Invalid: "tINVALID", InvalidUnicodeEscape: "tINVALID_UNICODE_ESCAPE",
	InvalidCharacterEscape: "tINVALID_CHAR_ESCAPE", UnterminatedString: "tUNTERMINATED_STRING",
	UnterminatedRegexp: "tUNTERMINATED_REGEXP", UnterminatedWordArray: "tUNTERMINATED_WORDARRAY",
	Eol: "tNEWLINE", Comment: "tCOMMENT", Doc: "tDOC",
	BareName: "tIDENTIFIER", Constant: "tCONSTANT", IVar: "tIVAR", CVar: "tCVAR", GVar: "tGVAR",
	BackRef: "tBACK_REF", NthRef: "tNTH_REF", Integer: "tINTEGER", Bignum: "tBIGNUM",
	Float: "tFLOAT", Rational: "tRATIONAL", Symbol: "tSYMBOL", String: "tSTRING",
	Regexp: "tREGEXP", Shell: "tXSTRING", EncodingConst: "tENCODING",
	StringBegin: "tSTRING_BEGIN", StringContent: "tSTRING_CONTENT", StringEnd: "tSTRING_END",
	SymbolBegin: "tSYMBOL_BEGIN", SymbolEnd: "tSYMBOL_END",
	RegexpBegin: "tREGEXP_BEGIN", RegexpEnd: "tREGEXP_END",
	ShellBegin: "tXSTRING_BEGIN", ShellEnd: "tXSTRING_END",
	EvaluateToStringBegin: "tEVSTRING_BEGIN", EvaluateToStringEnd: "tEVSTRING_END",
	WordsBegin: "tWORDS_BEGIN", WordsSep: "tWORDS_SEP", WordsEnd: "tWORDS_END",
	SymbolsBegin: "tSYMBOLS_BEGIN", SymbolsEnd: "tSYMBOLS_END",
	HeredocBegin: "tHEREDOC_BEGIN",
	Plus:         "'+'", Minus: "'-'", Star: "'*'", StarStar: "'**'", Slash: "'/'", Percent: "'%'",
	Amp: "'&'", Amp2: "'&&'", Pipe: "'|'", Pipe2: "'||'", Caret: "'^'", Tilde: "'~'", Bang: "'!'",
	Lt: "'<'", Gt: "'>'", Le: "'<='", Ge: "'>='", CmpEq: "'=='", NotEq: "'!='", CaseEq: "'==='",
	Spaceship: "'<=>'", Match: "'=~'", NotMatch: "'!~'", LShift: "'<<'", RShift: "'>>'",
	Assign: "'='", OpAssign: "tOP_ASGN", HashRocket: "'=>'", SafeNav: "'&.'",
	Dot: "'.'", Dot2: "'..'", Dot3: "'...'", Colon2: "'::'", Colon: "':'", Comma: "','", Semi: "';'",
	Question: "'?'", LParen: "'('", RParen: "')'", LBracket: "'['", RBracket: "']'",
	LBrace: "'{'", RBrace: "'}'", StabbyArrow: "'->'",
	KwDef: "'def'", KwEnd: "'end'", KwIf: "'if'", KwElsif: "'elsif'", KwElse: "'else'",
	KwUnless: "'unless'", KwThen: "'then'", KwWhile: "'while'", KwUntil: "'until'",
	KwFor: "'for'", KwIn: "'in'", KwDo: "'do'", KwCase: "'case'", KwWhen: "'when'",
	KwBreak: "'break'", KwNext: "'next'", KwRedo: "'redo'", KwRetry: "'retry'", KwReturn: "'return'",
	KwClass: "'class'", KwModule: "'module'", KwSelf: "'self'", KwBegin: "'begin'",
	KwRescue: "'rescue'", KwEnsure: "'ensure'", KwYield: "'yield'", KwSuper: "'super'",
	KwNil: "'nil'", KwTrue: "'true'", KwFalse: "'false'", KwAnd: "'and'", KwOr: "'or'",
	KwNot: "'not'", KwDefined: "'defined?'", KwAlias: "'alias'", KwUndef: "'undef'",
	KwBeginBlock: "'BEGIN'", KwEndBlock: "'END'", KwLambda: "'lambda'",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "tUNKNOWN"
}

var keywords = map[string]Kind{
	"def": KwDef, "end": KwEnd, "if": KwIf, "elsif": KwElsif, "else": KwElse,
	"unless": KwUnless, "then": KwThen, "while": KwWhile, "until": KwUntil,
	"for": KwFor, "in": KwIn, "do": KwDo, "case": KwCase, "when": KwWhen,
	"break": KwBreak, "next": KwNext, "redo": KwRedo, "retry": KwRetry, "return": KwReturn,
	"class": KwClass, "module": KwModule, "self": KwSelf, "begin": KwBegin,
	"rescue": KwRescue, "ensure": KwEnsure, "yield": KwYield, "super": KwSuper,
	"nil": KwNil, "true": KwTrue, "false": KwFalse, "and": KwAnd, "or": KwOr,
	"not": KwNot, "defined?": KwDefined, "alias": KwAlias, "undef": KwUndef,
	"BEGIN": KwBeginBlock, "END": KwEndBlock, "lambda": KwLambda,
	"__ENCODING__": EncodingConst,
}

// LookupIdent classifies a bareword as a keyword, __ENCODING__, or a plain
// identifier (BareName/Constant is decided by the caller based on case).
func LookupIdent(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// Token is a tagged value: a Kind, an optional literal payload, its source
// location, and whether whitespace precedes it (used by the lexer and
// parser to disambiguate `/`, `<<`, `[`, and unary vs. binary operators).
type Token struct {
	Kind               Kind
	Literal            string // identifiers, string/number text, comment/doc text, op-assign base op
	Fixnum             int64
	Double             float64
	Doc                string // attached documentation comment (class/def/module only)
	WhitespacePrecedes bool
	Span               Span
}

// IsOperator reports whether the token is a binary/unary operator symbol.
func (k Kind) IsOperator() bool {
	switch k {
	case Plus, Minus, Star, StarStar, Slash, Percent, Amp, Amp2, Pipe, Pipe2, Caret, Tilde, Bang,
		Lt, Gt, Le, Ge, CmpEq, NotEq, CaseEq, Spaceship, Match, NotMatch, LShift, RShift,
		Assign, OpAssign, HashRocket, SafeNav, Dot, Dot2, Dot3, Colon2:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KwDef && k <= KwLambda
}

// IsAssignable reports whether a token of this kind can stand on the
// left-hand side of a plain assignment, once parsed into a node.
func (k Kind) IsAssignable() bool {
	switch k {
	case BareName, Constant, IVar, CVar, GVar:
		return true
	default:
		return false
	}
}

// CanPrecedeCollapsibleNewline reports whether a trailing newline after
// this token kind should be suppressed (folded) rather than terminate a
// statement: operators, commas, '.', '::', opening brackets, '=>', '?', ':'.
func (k Kind) CanPrecedeCollapsibleNewline() bool {
	switch k {
	case Comma, Dot, Colon2, LParen, LBracket, LBrace, HashRocket, Question, Colon,
		Plus, Minus, Star, StarStar, Slash, Percent, Amp, Amp2, Pipe, Pipe2, Caret,
		Lt, Gt, Le, Ge, CmpEq, NotEq, CaseEq, Spaceship, Match, NotMatch, LShift, RShift,
		Assign, OpAssign, Dot2, Dot3, SafeNav,
		KwAnd, KwOr, KwNot:
		return true
	default:
		return false
	}
}

// CanFollowCollapsibleNewline reports whether a leading newline before this
// token kind should be suppressed: '.', '&.', closing brackets, ternary ':'.
func (k Kind) CanFollowCollapsibleNewline() bool {
	switch k {
	case Dot, SafeNav, RParen, RBracket, RBrace, Colon, KwThen, KwDo:
		return true
	default:
		return false
	}
}

// CanBeFirstArgOfImplicitCall reports whether a token of this kind can
// begin the argument list of a parenthesis-less method call, i.e.
// `foo bar` parses bar as an argument rather than `foo` standing alone.
func (k Kind) CanBeFirstArgOfImplicitCall() bool {
	switch k {
	case BareName, Constant, IVar, CVar, GVar, BackRef, NthRef, Integer, Bignum, Float, Rational,
		Symbol, String, StringBegin, SymbolBegin, Regexp, RegexpBegin, Shell, ShellBegin,
		WordsBegin, SymbolsBegin, HeredocBegin, KwNil, KwTrue, KwFalse, KwSelf, KwYield, KwSuper,
		KwDefined, KwNot, LBracket, Colon, Minus, Bang, Tilde, Amp, Star, StarStar, StabbyArrow,
		LParen:
		return true
	default:
		return false
	}
}

// CanHaveDoc reports whether this token kind is a valid attachment point
// for an accumulated Doc comment.
func (k Kind) CanHaveDoc() bool {
	switch k {
	case KwDef, KwClass, KwModule:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether the token carries a numeric payload.
func (k Kind) IsNumeric() bool {
	switch k {
	case Integer, Bignum, Float, Rational:
		return true
	default:
		return false
	}
}
