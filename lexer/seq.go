package lexer

import (
	"iter"

	"github.com/rulang/ru/token"
)

// Seq is a lazy stream of tokens, pulled one at a time. Every stage in
// this package is a func(Seq) Seq, or a producer of one.
type Seq = iter.Seq[token.Token]

// collect drains a Seq into a slice. The stages themselves never call
// it; the package's tests use it to inspect a stage's output.
func collect(seq Seq) []token.Token {
	var out []token.Token
	seq(func(t token.Token) bool {
		out = append(out, t)
		return true
	})
	return out
}

// fromSlice replays a slice as a Seq.
func fromSlice(toks []token.Token) Seq {
	return func(yield func(token.Token) bool) {
		for _, t := range toks {
			if !yield(t) {
				return
			}
		}
	}
}
