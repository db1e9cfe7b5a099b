// Package ru provides a lexer and precedence-climbing expression parser
// for the Ru language: indentation-significant, with a rich operator
// taxonomy whose precedence is derived from character content rather
// than a fixed operator table.
//
// Example usage:
//
//	package main
//
//	import (
//		"fmt"
//		"github.com/rulang/ru"
//	)
//
//	func main() {
//		expr, errs := ru.Parse("a + b * c")
//		fmt.Println(expr.String(), errs)
//	}
package ru

import (
	"iter"

	"github.com/rulang/ru/ast"
	"github.com/rulang/ru/lexer"
	"github.com/rulang/ru/parser"
	"github.com/rulang/ru/token"
)

// Lex turns source text into a lazy stream of tokens.
func Lex(text string) iter.Seq[token.Token] {
	return lexer.Lex(text)
}

// Parse lexes and parses the given input, returning the resulting
// Expression together with any errors recorded along the way.
func Parse(text string) (*ast.Expression, []parser.Error) {
	return parser.Parse(Lex(text))
}

// Version is this module's release version.
const Version = "0.1.0"
