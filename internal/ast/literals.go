package ast

import "github.com/natalie-lang/natalie-parser/internal/lexer"

// Nil is the `nil` keyword literal, rendered (:nil, nil) like True/False.
type Nil struct{ base }

func NewNil(tok lexer.Token) *Nil { return &Nil{newBase(tok)} }
func (n *Nil) Type() Kind         { return KindNil }
func (n *Nil) Transform(c Creator) {
	c.SetType(KindNil)
	c.AppendNil()
}

// NilSexp is the literal `nil` used as a filler element, as opposed to a
// syntactic nil keyword occurrence; spec §9 preserves this distinction
// verbatim in array_pat/hash_pat output rather than collapsing it into Nil.
type NilSexp struct{ base }

func NewNilSexp(tok lexer.Token) *NilSexp { return &NilSexp{newBase(tok)} }
func (n *NilSexp) Type() Kind             { return KindNilSexp }
func (n *NilSexp) Transform(c Creator) {
	c.SetType(KindNilSexp)
	c.AppendNilSexp()
}

// True is the `true` literal.
type True struct{ base }

func NewTrue(tok lexer.Token) *True { return &True{newBase(tok)} }
func (n *True) Type() Kind          { return KindTrue }
func (n *True) Transform(c Creator) {
	c.SetType(KindTrue)
	c.AppendTrue()
}

// False is the `false` literal.
type False struct{ base }

func NewFalse(tok lexer.Token) *False { return &False{newBase(tok)} }
func (n *False) Type() Kind           { return KindFalse }
func (n *False) Transform(c Creator) {
	c.SetType(KindFalse)
	c.AppendFalse()
}

// Self is the `self` keyword.
type Self struct{ base }

func NewSelf(tok lexer.Token) *Self { return &Self{newBase(tok)} }
func (n *Self) Type() Kind          { return KindSelf }
func (n *Self) IsCallable() bool    { return true }
func (n *Self) Transform(c Creator) {
	c.SetType(KindSelf)
}

// Fixnum is a native-width integer literal.
type Fixnum struct {
	base
	Value int64
}

func NewFixnum(tok lexer.Token, value int64) *Fixnum { return &Fixnum{newBase(tok), value} }
func (n *Fixnum) Type() Kind                         { return KindLit }
func (n *Fixnum) IsNumeric() bool                    { return true }
func (n *Fixnum) Transform(c Creator) {
	c.SetType(KindLit)
	c.AppendInteger(n.Value)
}

// Bignum is an integer literal whose magnitude exceeds the platform
// "small integer" ceiling; the textual form is retained since the value
// cannot be represented in a native width (spec §4.1).
type Bignum struct {
	base
	Text string
}

func NewBignum(tok lexer.Token, text string) *Bignum { return &Bignum{newBase(tok), text} }
func (n *Bignum) Type() Kind                         { return KindLit }
func (n *Bignum) IsNumeric() bool                    { return true }
func (n *Bignum) Transform(c Creator) {
	c.SetType(KindLit)
	c.AppendBignum(n.Text)
}

// Float is a floating-point literal.
type Float struct {
	base
	Value float64
}

func NewFloat(tok lexer.Token, value float64) *Float { return &Float{newBase(tok), value} }
func (n *Float) Type() Kind                          { return KindLit }
func (n *Float) IsNumeric() bool                     { return true }
func (n *Float) Transform(c Creator) {
	c.SetType(KindLit)
	c.AppendFloat(n.Value)
}

// Rational is a rational-suffixed numeric literal (`1r`, `1.5r`). Per
// spec §9's Open Question, only the observed text is carried; broader
// rational semantics are not inferred.
type Rational struct {
	base
	Text string
}

func NewRational(tok lexer.Token, text string) *Rational { return &Rational{newBase(tok), text} }
func (n *Rational) Type() Kind                           { return KindLit }
func (n *Rational) IsNumeric() bool                      { return true }
func (n *Rational) Transform(c Creator) {
	c.SetType(KindLit)
	c.MakeRationalNumber(n.Text)
}

// String is a non-interpolated string literal ('...', %q(...), plain
// adjacent-concatenation result).
type String struct {
	base
	Value string
}

func NewString(tok lexer.Token, value string) *String { return &String{newBase(tok), value} }
func (n *String) Type() Kind                          { return KindStr }
func (n *String) IsCallable() bool                    { return true }
func (n *String) Transform(c Creator) {
	c.SetType(KindStr)
	c.AppendString(n.Value)
}

// Symbol is a non-interpolated symbol literal, including operator-name
// symbols (:+, :[]=) and :"..." with no embedded expressions.
type Symbol struct {
	base
	Name string
}

func NewSymbol(tok lexer.Token, name string) *Symbol { return &Symbol{newBase(tok), name} }
func (n *Symbol) Type() Kind                         { return KindLit }
func (n *Symbol) Transform(c Creator) {
	c.SetType(KindLit)
	c.AppendSymbol(n.Name)
}

// SymbolKey is a String immediately followed by a non-whitespace ':' in
// hash-literal-key position (spec §4.3 "String/Symbol-key disambiguation").
type SymbolKey struct {
	base
	Name string
}

func NewSymbolKey(tok lexer.Token, name string) *SymbolKey { return &SymbolKey{newBase(tok), name} }
func (n *SymbolKey) Type() Kind                            { return KindLit }
func (n *SymbolKey) IsSymbolKey() bool                     { return true }
func (n *SymbolKey) Transform(c Creator) {
	c.SetType(KindLit)
	c.AppendSymbol(n.Name)
}

// Regexp is a non-interpolated regexp literal with its option bitmask
// (spec §4.3: i=1, x=2, m=4, e|s|u=16, n=32).
type Regexp struct {
	base
	Pattern string
	Options int64
}

func NewRegexp(tok lexer.Token, pattern string, options int64) *Regexp {
	return &Regexp{newBase(tok), pattern, options}
}
func (n *Regexp) Type() Kind { return KindLit }
func (n *Regexp) Transform(c Creator) {
	c.SetType(KindLit)
	c.AppendRegexp(n.Pattern, n.Options)
}

// Shell is a non-interpolated shell (backtick/`%x()`) literal.
type Shell struct {
	base
	Value string
}

func NewShell(tok lexer.Token, value string) *Shell { return &Shell{newBase(tok), value} }
func (n *Shell) Type() Kind                         { return KindXstr }
func (n *Shell) Transform(c Creator) {
	c.SetType(KindXstr)
	c.AppendString(n.Value)
}

// BackRef is a special global referring to the last match ($&, $', $`, $~, $!).
type BackRef struct {
	base
	Name string
}

func NewBackRef(tok lexer.Token, name string) *BackRef { return &BackRef{newBase(tok), name} }
func (n *BackRef) Type() Kind                          { return KindBackRef }
func (n *BackRef) Transform(c Creator) {
	c.SetType(KindBackRef)
	c.AppendSymbol(n.Name)
}

// NthRef is a numbered match-group global ($1, $2, ...).
type NthRef struct {
	base
	Number int64
}

func NewNthRef(tok lexer.Token, number int64) *NthRef { return &NthRef{newBase(tok), number} }
func (n *NthRef) Type() Kind                          { return KindNthRef }
func (n *NthRef) Transform(c Creator) {
	c.SetType(KindNthRef)
	c.AppendInteger(n.Number)
}

// Encoding is the `__ENCODING__` literal.
type Encoding struct{ base }

func NewEncoding(tok lexer.Token) *Encoding { return &Encoding{newBase(tok)} }
func (n *Encoding) Type() Kind              { return KindEncoding }
func (n *Encoding) Transform(c Creator) {
	c.SetType(KindEncoding)
}
