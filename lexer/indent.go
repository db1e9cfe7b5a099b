package lexer

import "github.com/rulang/ru/token"

// blockOpeners is the set of precedences after which a deeper newline
// is read as opening a block, rather than being passed through as an
// ordinary newline.
var blockOpeners = map[token.Prec]bool{
	token.Open:     true,
	token.InvOpen:  true,
	token.And:      true,
	token.Or:       true,
	token.While:    true,
	token.Exchange: true,
	token.Other:    true,
}

// Indents is Component D: a stateful stage converting newline tokens
// into indent/dedent/newline using a stack of indent widths.
func Indents(in Seq) Seq {
	return func(yield func(token.Token) bool) {
		stack := []int{0}
		prevPrec := token.Intern

		in(func(t token.Token) bool {
			if t.Kind != token.Newline {
				prevPrec = t.Prec
				return yield(t)
			}

			w := len(t.Text)
			top := stack[len(stack)-1]

			switch {
			case w > top:
				if blockOpeners[prevPrec] {
					stack = append(stack, w)
					indent := t
					indent.Kind = token.Indent
					indent.Prec = token.Open
					return yield(indent)
				}
				return yield(t)

			case w < top:
				for len(stack) > 1 && stack[len(stack)-1] > w {
					stack = stack[:len(stack)-1]
					dedent := t
					dedent.Kind = token.Dedent
					dedent.Prec = token.Close
					if !yield(dedent) {
						return false
					}
				}
				if stack[len(stack)-1] == w {
					return yield(t)
				}
				return true

			default:
				return yield(t)
			}
		})
	}
}
