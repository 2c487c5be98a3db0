// Package ast defines the closed node sum produced by the parser (spec
// §3 "Node"): roughly eighty variants grouped into literals, interpolated
// literals, collections, identifiers, calls, assignment forms, control
// flow, and structural (def/class/module/block) forms. Every variant
// carries its originating lexer.Token for diagnostics and implements
// Transform(Creator), the sole way a Node is turned into output (§4.4).
package ast

import "github.com/natalie-lang/natalie-parser/internal/lexer"

// Kind discriminates Node variants. Values are the stable sexp tag names
// from spec §6 ("lit", "call", "if", "defn", ...) so Creator
// implementations can use Kind directly as SetType's argument for the
// common case.
type Kind string

const (
	KindNil             Kind = "nil"
	KindNilSexp         Kind = "nil"
	KindTrue            Kind = "true"
	KindFalse           Kind = "false"
	KindSelf            Kind = "self"
	KindLit             Kind = "lit"
	KindStr             Kind = "str"
	KindXstr            Kind = "xstr"
	KindDstr            Kind = "dstr"
	KindDsym            Kind = "dsym"
	KindDregx           Kind = "dregx"
	KindDxstr           Kind = "dxstr"
	KindEvstr           Kind = "evstr"
	KindArray           Kind = "array"
	KindArrayPat        Kind = "array_pat"
	KindHash            Kind = "hash"
	KindHashPat         Kind = "hash_pat"
	KindKwsplat         Kind = "kwsplat"
	KindKwrestArgPat    Kind = "kwrest_arg_pat"
	KindSplat           Kind = "splat"
	KindSvalue          Kind = "svalue"
	KindToAry           Kind = "to_ary"
	KindDot2            Kind = "dot2"
	KindDot3            Kind = "dot3"
	KindLvar            Kind = "lvar"
	KindIvar            Kind = "ivar"
	KindCvar            Kind = "cvar"
	KindGvar            Kind = "gvar"
	KindConst           Kind = "const"
	KindColon2          Kind = "colon2"
	KindColon3          Kind = "colon3"
	KindForwardArgs     Kind = "forward_args"
	KindCall            Kind = "call"
	KindSafeCall        Kind = "safe_call"
	KindSuper           Kind = "super"
	KindZsuper          Kind = "zsuper"
	KindYield           Kind = "yield"
	KindBlockPass       Kind = "block_pass"
	KindMatch2          Kind = "match2"
	KindMatch3          Kind = "match3"
	KindMatch           Kind = "match"
	KindDefined         Kind = "defined"
	KindNot             Kind = "not"
	KindLasgn           Kind = "lasgn"
	KindIasgn           Kind = "iasgn"
	KindCvdecl          Kind = "cvdecl"
	KindGasgn           Kind = "gasgn"
	KindCdecl           Kind = "cdecl"
	KindCasgn           Kind = "casgn"
	KindMasgn           Kind = "masgn"
	KindOpAsgnAnd       Kind = "op_asgn_and"
	KindOpAsgnOr        Kind = "op_asgn_or"
	KindOpAsgn1         Kind = "op_asgn1"
	KindOpAsgn2         Kind = "op_asgn2"
	KindIf              Kind = "if"
	KindWhile           Kind = "while"
	KindUntil           Kind = "until"
	KindFor             Kind = "for"
	KindCase            Kind = "case"
	KindWhen            Kind = "when"
	KindCaseIn          Kind = "case"
	KindIn              Kind = "in"
	KindBreak           Kind = "break"
	KindNext            Kind = "next"
	KindRedo            Kind = "redo"
	KindRetry           Kind = "retry"
	KindReturn          Kind = "return"
	KindAnd             Kind = "and"
	KindOr              Kind = "or"
	KindBlock           Kind = "block"
	KindBegin           Kind = "begin"
	KindRescue          Kind = "rescue"
	KindResbody         Kind = "resbody"
	KindEnsure          Kind = "ensure"
	KindBeginBlock      Kind = "preexe"
	KindEndBlock        Kind = "postexe"
	KindSclass          Kind = "sclass"
	KindClass           Kind = "class"
	KindModule          Kind = "module"
	KindDefn            Kind = "defn"
	KindDefs            Kind = "defs"
	KindIter            Kind = "iter"
	KindArgs            Kind = "args"
	KindArg             Kind = "arg"
	KindBlockArg        Kind = "block_arg"
	KindShadow          Kind = "shadow"
	KindAlias           Kind = "alias"
	KindValias          Kind = "valias"
	KindUndef           Kind = "undef"
	KindBackRef         Kind = "back_ref"
	KindNthRef          Kind = "nth_ref"
	KindEncoding        Kind = "__ENCODING__"
	KindMultipleAsgnArg Kind = "masgn_arg"
)

// Node is the closed AST sum (spec §3). Every variant exposes its
// discriminant, its originating token for diagnostics, and the single
// Transform method that drives a Creator.
type Node interface {
	Type() Kind
	Tok() lexer.Token
	Transform(c Creator)

	// IsCallable reports whether the node can stand as a Call's
	// receiver/argument (used by the parser for argument classification).
	IsCallable() bool
	// IsAssignable reports whether the node can be an assignment target.
	IsAssignable() bool
	// IsNumeric reports whether the node is a literal number.
	IsNumeric() bool
	// IsSymbolKey reports whether the node can serve as a hash literal's
	// implicit-colon key (SymbolKey/InterpolatedSymbolKey).
	IsSymbolKey() bool
	// CanAcceptABlock reports whether the node is an invocation that can
	// carry an attached do/{ block (Call, SafeCall, Super, ZSuper).
	CanAcceptABlock() bool
}

// base is embedded by every Node variant; it carries the originating
// token and implements the default (false/non-numeric/non-assignable)
// predicate answers so each variant only overrides what differs.
type base struct {
	tok lexer.Token
}

func (b base) Tok() lexer.Token      { return b.tok }
func (b base) IsCallable() bool      { return false }
func (b base) IsAssignable() bool    { return false }
func (b base) IsNumeric() bool       { return false }
func (b base) IsSymbolKey() bool     { return false }
func (b base) CanAcceptABlock() bool { return false }

func newBase(tok lexer.Token) base { return base{tok: tok} }
