package lexer

import "github.com/rulang/ru/token"

type keywordEntry struct {
	kind token.Kind
	prec token.Prec
}

// keywords maps identifier spellings to their refined kind and
// precedence. Spellings not present here stay plain identifiers.
var keywords = map[string]keywordEntry{
	"_":      {token.KwUnderscore, token.Intern},
	"in":     {token.KwIn, token.Cmp},
	"out":    {token.KwOut, token.Intern},
	"mut":    {token.KwMut, token.Intern},
	"const":  {token.KwConst, token.Intern},
	"return": {token.KwReturn, token.While},
	"yield":  {token.KwYield, token.While},
	"type":   {token.KwType, token.While},
	"trait":  {token.KwTrait, token.While},
	"class":  {token.KwClass, token.While},
	"fn":     {token.KwFn, token.While},
	"module": {token.KwModule, token.While},
	"impl":   {token.KwImpl, token.Intern},
	"use":    {token.KwUse, token.Intern},
	"with":   {token.KwWith, token.Intern},
	"when":   {token.KwWhen, token.Intern},
	"as":     {token.KwAs, token.Intern},
	"not":    {token.KwNot, token.Not},
	"then":   {token.KwThen, token.And},
	"else":   {token.KwElse, token.Or},
	"and":    {token.KwAnd, token.And},
	"or":     {token.KwOr, token.Or},
	"for":    {token.KwFor, token.And},
	"while":  {token.KwWhile, token.While},
	"priv":   {token.KwPriv, token.Intern},
	"pub":    {token.KwPub, token.Intern},
	"match":  {token.KwMatch, token.And},
	"is":     {token.KwIs, token.Tree},
	"by":     {token.KwBy, token.Tree},
	"prp":    {token.KwPrp, token.Tree},
}

// Keywords is B1: identifiers whose text matches the keyword table are
// reclassified with the table's kind and precedence; everything else
// passes through unchanged.
func Keywords(in Seq) Seq {
	return func(yield func(token.Token) bool) {
		in(func(t token.Token) bool {
			if t.Kind == token.Identifier {
				if kw, ok := keywords[t.Text]; ok {
					t.Kind = kw.kind
					t.Prec = kw.prec
				}
			}
			return yield(t)
		})
	}
}
