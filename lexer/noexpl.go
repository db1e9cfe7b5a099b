package lexer

import "github.com/rulang/ru/token"

// NoExpl is B6: explicit-quote normalization. Having survived keyword
// and operator-keyword matching unreclassified, id_expl and op_expl
// tokens now collapse into ordinary identifier/operator_ tokens.
func NoExpl(in Seq) Seq {
	return func(yield func(token.Token) bool) {
		in(func(t token.Token) bool {
			switch t.Kind {
			case token.IDExpl:
				t.Kind = token.Identifier
			case token.OpExpl:
				t.Kind = token.Operator
			}
			return yield(t)
		})
	}
}
