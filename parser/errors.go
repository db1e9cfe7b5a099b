package parser

import (
	"fmt"

	"github.com/rulang/ru/token"
)

// Error records a single point where the parser could not continue: the
// offending token, and the precedence/kind alternatives it expected
// there.
type Error struct {
	Token    token.Token
	Message  string
	Expected []string
}

func (e Error) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("%d:%d: %s, got %s", e.Token.Line, e.Token.Column, e.Message, e.Token)
	}
	return fmt.Sprintf("%d:%d: %s, got %s (expected one of %v)", e.Token.Line, e.Token.Column, e.Message, e.Token, e.Expected)
}
