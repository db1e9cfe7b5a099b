package parser

import (
	"iter"

	"github.com/rulang/ru/ast"
	"github.com/rulang/ru/token"
)

// Interceptor wraps the primary-expression rule: it is handed the
// default behavior as next and may run before or after it, or replace
// it outright. This is the extension point for grammar plugins, the
// way a lexer stage is the extension point for token pipeline plugins.
type Interceptor func(p *Parser, next func() *ast.Expression) *ast.Expression

// Builder assembles a Parser with an optional primary-expression
// interceptor chain installed on top of the fixed precedence table.
type Builder struct {
	interceptors []Interceptor
}

// NewBuilder returns a Builder with no extra interceptors.
func NewBuilder() *Builder {
	return &Builder{}
}

// UsePrimaryInterceptor registers an interceptor around parsePrimary.
// Interceptors run outermost-registered-first.
func (b *Builder) UsePrimaryInterceptor(it Interceptor) *Builder {
	b.interceptors = append(b.interceptors, it)
	return b
}

// Build materializes seq and returns a Parser with this Builder's
// interceptor chain installed.
func (b *Builder) Build(seq iter.Seq[token.Token]) *Parser {
	p := New(seq)
	for i := len(b.interceptors) - 1; i >= 0; i-- {
		it := b.interceptors[i]
		inner := p.primary
		p.primary = func() *ast.Expression { return it(p, inner) }
	}
	return p
}

// Parse runs this Builder's Parser to completion.
func (b *Builder) Parse(seq iter.Seq[token.Token]) (*ast.Expression, []Error) {
	p := b.Build(seq)
	expr := p.parseProgram()
	return expr, p.errors
}
