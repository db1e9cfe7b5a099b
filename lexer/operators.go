package lexer

import "github.com/rulang/ru/token"

type operatorEntry struct {
	kind token.Kind
	prec token.Prec
}

// operatorKeywords maps exact operator_ spellings to refined operator
// kinds and precedences. Anything not listed here stays a plain
// operator_ token, to be classified later by the precedence classifier.
var operatorKeywords = map[string]operatorEntry{
	":=":  {token.OpInit, token.Other},
	"=>":  {token.OpFn, token.Other},
	"!":   {token.OpMove, token.Intern},
	"...": {token.OpDots, token.Intern},
	"=":   {token.OpExchange, token.Exchange},
	"&":   {token.OpRef, token.Intern},
	".":   {token.OpDot, token.Intern},
	"|":   {token.OpEither, token.Either},
	":":   {token.OpPair, token.Pair},
}

// Operators is B4: exact-text operator_ spellings are promoted to their
// refined kind.
func Operators(in Seq) Seq {
	return func(yield func(token.Token) bool) {
		in(func(t token.Token) bool {
			if t.Kind == token.Operator {
				if op, ok := operatorKeywords[t.Text]; ok {
					t.Kind = op.kind
					t.Prec = op.prec
				}
			}
			return yield(t)
		})
	}
}
