package lexer

import "github.com/rulang/ru/token"

var invokeLeftPrecs = map[token.Prec]bool{
	token.Close:  true,
	token.Intern: true,
	token.Unary:  true,
}

// Invoke is Component E: juxtaposed tokens are promoted to
// invocation/tight-bind shape using source adjacency.
func Invoke(in Seq) Seq {
	return func(yield func(token.Token) bool) {
		var prev token.Token
		havePrev := false

		in(func(t token.Token) bool {
			if havePrev && prev.Kind != token.OpDot && invokeLeftPrecs[prev.Prec] && prev.Adjacent(t) {
				switch t.Prec {
				case token.Open:
					t.Prec = token.InvOpen
				case token.Intern:
					t.Prec = token.Unary
				}
			}
			prev = t
			havePrev = true
			return yield(t)
		})
	}
}
