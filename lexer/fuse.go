package lexer

import "github.com/rulang/ru/token"

// Fuse is B5's generic adjacency combinator: whenever two consecutive,
// source-adjacent tokens have kinds (leftKind, rightKind), they are
// replaced by one token of resultKind, with concatenated text, the
// left's position, and prefix set to the left token's text length.
// Needs exactly one token of lookahead, held in pending.
func Fuse(leftKind, rightKind, resultKind token.Kind) func(Seq) Seq {
	return func(in Seq) Seq {
		return func(yield func(token.Token) bool) {
			var pending token.Token
			havePending := false

			flush := func() bool {
				if !havePending {
					return true
				}
				havePending = false
				return yield(pending)
			}

			in(func(t token.Token) bool {
				if havePending && pending.Kind == leftKind && t.Kind == rightKind && pending.Adjacent(t) {
					fused := pending
					fused.Kind = resultKind
					fused.Text = pending.Text + t.Text
					fused.Prefix = len(pending.Text)
					havePending = false
					return yield(fused)
				}
				if !flush() {
					return false
				}
				pending = t
				havePending = true
				return true
			})
			flush()
		}
	}
}

// FuseNotIn is the one concrete instance B5 is used for: "!" immediately
// followed by "in" becomes a single not_in token.
func FuseNotIn(in Seq) Seq {
	return Fuse(token.OpMove, token.KwIn, token.NotIn)(in)
}
