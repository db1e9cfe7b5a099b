package lexer

import "github.com/rulang/ru/token"

// DotAtRight is B2: a 2-character operator_ token ending in a single
// '.' (the other character is not itself a dot, so "..' and "..." are
// left alone) splits into its body and a trailing op_dot token.
func DotAtRight(in Seq) Seq {
	return func(yield func(token.Token) bool) {
		in(func(t token.Token) bool {
			if t.Kind == token.Operator && len(t.Text) == 2 && t.Text[1] == '.' && t.Text[0] != '.' {
				body := t
				body.Text = t.Text[:1]
				dot := t
				dot.Kind = token.OpDot
				dot.Prec = token.Intern
				dot.Text = t.Text[1:]
				dot.Offset = t.Offset + 1
				dot.Column = t.Column + 1
				if !yield(body) {
					return false
				}
				return yield(dot)
			}
			return yield(t)
		})
	}
}

// DotAtLeft is B3: a 2-character operator_ token starting with a single
// '.' splits into a leading op_dot token and its body.
func DotAtLeft(in Seq) Seq {
	return func(yield func(token.Token) bool) {
		in(func(t token.Token) bool {
			if t.Kind == token.Operator && len(t.Text) == 2 && t.Text[0] == '.' && t.Text[1] != '.' {
				dot := t
				dot.Kind = token.OpDot
				dot.Prec = token.Intern
				dot.Text = t.Text[:1]
				body := t
				body.Text = t.Text[1:]
				body.Offset = t.Offset + 1
				body.Column = t.Column + 1
				if !yield(dot) {
					return false
				}
				return yield(body)
			}
			return yield(t)
		})
	}
}
