// Package debug provides detailed, pointer-free dumps of tokens and
// expressions for use in tests and REPL-style debugging.
package debug

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/rulang/ru/ast"
	"github.com/rulang/ru/token"
)

var cfg = &spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	ContinueOnMethod:        false,
}

// Dump returns a detailed, multi-line representation of an expression
// tree, including every field the compact String form elides.
func Dump(expr *ast.Expression) string {
	return cfg.Sdump(expr)
}

// Print writes a detailed representation of an expression tree to
// stdout.
func Print(expr *ast.Expression) {
	cfg.Dump(expr)
}

// DumpTokens returns a detailed representation of a token slice.
func DumpTokens(toks []token.Token) string {
	return cfg.Sdump(toks)
}
