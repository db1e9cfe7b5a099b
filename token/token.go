package token

import "fmt"

// Kind identifies what a Token represents.
type Kind uint8

const (
	// None is the end-of-stream sentinel. Never emitted to callers of Lex.
	None Kind = iota
	// Skip marks a lexer-internal "ignore me" signal. Never emitted to callers.
	Skip

	// Structural
	Newline
	Indent
	Dedent
	BrOpen
	BrClose
	Comma
	Semicolon
	Sharp

	// Literals
	String
	Character
	Number

	// Names
	Identifier
	IDExpl
	Member

	// Operators: raw and refined
	Operator
	OpExpl
	OpInit     // :=
	OpFn       // =>
	OpMove     // !
	OpDots     // ...
	OpExchange // =
	OpRef      // &
	OpDot      // .
	OpEither   // |
	OpPair     // :

	// Keywords
	KwUnderscore
	KwAnd
	KwAs
	KwBy
	KwClass
	KwConst
	KwElse
	KwFn
	KwFor
	KwImpl
	KwIn
	KwIs
	KwMatch
	KwModule
	KwMut
	KwNot
	KwOr
	KwOut
	KwPriv
	KwPrp
	KwPub
	KwReturn
	KwThen
	KwTrait
	KwType
	KwUse
	KwWith
	KwWhen
	KwWhile
	KwYield

	// Compound (produced by adjacency fusion)
	Unit
	NotIn

	// Errors
	Error
	ErrorUnclosedString
	ErrorNameUnclosedString
	ErrorStandaloneQuo
	ErrorBadInt
)

var kindNames = map[Kind]string{
	None: "none", Skip: "skip",
	Newline: "newline", Indent: "indent", Dedent: "dedent",
	BrOpen: "br_open", BrClose: "br_close", Comma: "comma", Semicolon: "semicolon", Sharp: "sharp",
	String: "string", Character: "character", Number: "number",
	Identifier: "identifier", IDExpl: "id_expl", Member: "member",
	Operator: "operator_", OpExpl: "op_expl",
	OpInit: "op_init", OpFn: "op_fn", OpMove: "op_move", OpDots: "op_dots",
	OpExchange: "op_exchange", OpRef: "op_ref", OpDot: "op_dot", OpEither: "op_either", OpPair: "op_pair",
	KwUnderscore: "kw__", KwAnd: "kw_and", KwAs: "kw_as", KwBy: "kw_by", KwClass: "kw_class",
	KwConst: "kw_const", KwElse: "kw_else", KwFn: "kw_fn", KwFor: "kw_for", KwImpl: "kw_impl",
	KwIn: "kw_in", KwIs: "kw_is", KwMatch: "kw_match", KwModule: "kw_module", KwMut: "kw_mut",
	KwNot: "kw_not", KwOr: "kw_or", KwOut: "kw_out", KwPriv: "kw_priv", KwPrp: "kw_prp",
	KwPub: "kw_pub", KwReturn: "kw_return", KwThen: "kw_then", KwTrait: "kw_trait", KwType: "kw_type",
	KwUse: "kw_use", KwWith: "kw_with", KwWhen: "kw_when", KwWhile: "kw_while", KwYield: "kw_yield",
	Unit: "unit", NotIn: "not_in",
	Error: "error", ErrorUnclosedString: "error_unclosed_string",
	ErrorNameUnclosedString: "error_name_unclosed_string",
	ErrorStandaloneQuo:      "error_standalone_quo",
	ErrorBadInt:             "error_bad_int",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsError reports whether k is one of the error_* kinds.
func (k Kind) IsError() bool {
	switch k {
	case Error, ErrorUnclosedString, ErrorNameUnclosedString, ErrorStandaloneQuo, ErrorBadInt:
		return true
	default:
		return false
	}
}

// Token is an immutable lexical unit produced by the lexer pipeline.
type Token struct {
	Kind Kind
	Prec Prec
	// Text is the exact source slice this token was read from.
	Text string
	// Offset is the byte offset of Text within the source buffer; together
	// with len(Text) it lets callers test adjacency without comparing
	// pointers: a.Offset+len(a.Text) == b.Offset.
	Offset int
	// Line and Column are 0-based; Column counts Unicode scalars.
	Line   int
	Column int
	// Prefix/Postfix are byte lengths of prefix/suffix bracketing within
	// Text (e.g. the "0x" prefix on a hex number, or a string's quote run).
	Prefix  int
	Postfix int
	// Shift is the decimal exponent for numbers, or the quote-run length
	// for explicit-quoted names/operators.
	Shift int64
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Text, t.Line, t.Column)
}

// EndOffset returns the byte offset one past Text, for adjacency tests.
func (t Token) EndOffset() int {
	return t.Offset + len(t.Text)
}

// Adjacent reports whether next starts exactly where t ends, with no
// interleaved whitespace or comments.
func (t Token) Adjacent(next Token) bool {
	return t.EndOffset() == next.Offset
}

// NoneToken is the end-of-stream sentinel.
var NoneToken = Token{Kind: None}

// SkipToken is the lexer-internal "ignore me" signal.
var SkipToken = Token{Kind: Skip}
