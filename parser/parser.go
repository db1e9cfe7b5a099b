package parser

import (
	"iter"

	"github.com/rulang/ru/ast"
	"github.com/rulang/ru/token"
)

// shape distinguishes how a precedence level combines its operands.
type shape int

const (
	shapeBinary shape = iota
	shapePrefix
)

type level struct {
	prec  token.Prec
	shape shape
}

// levels is the precedence table, tightest to loosest. The main
// numeric bands (pow..pipe) are ordinary binary operators; the soft
// keyword bands above them (not_, while_) are prefix, and and_/or_/
// exchange are binary — a grammar the source left unfinished for these
// bands, completed here per the keyword semantics the lexer already
// assigns (see DESIGN.md).
var levels = []level{
	{token.Pow, shapeBinary},
	{token.Mul, shapeBinary},
	{token.Add, shapeBinary},
	{token.Shift, shapeBinary},
	{token.Bitnot, shapeBinary},
	{token.Bitand, shapeBinary},
	{token.Bitxor, shapeBinary},
	{token.Bitor, shapeBinary},
	{token.Range, shapeBinary},
	{token.Cmp, shapeBinary}, // non-associative: see parseBinaryLevel
	{token.Bidirect, shapeBinary},
	{token.Front, shapeBinary},
	{token.Back, shapeBinary},
	{token.Either, shapeBinary},
	{token.Pair, shapeBinary},
	{token.Init, shapeBinary},
	{token.CommaP, shapeBinary},
	{token.Pipe, shapeBinary},
	{token.Not, shapePrefix},
	{token.And, shapeBinary},
	{token.Or, shapeBinary},
	{token.Exchange, shapeBinary},
	{token.While, shapePrefix},
}

// separatorKinds are the token kinds that close an expression without
// belonging to it: plain newlines, indent/dedent block markers, and
// semicolons. The top-level sequence rule consumes these between
// expressions.
var separatorKinds = map[token.Kind]bool{
	token.Newline:   true,
	token.Indent:    true,
	token.Dedent:    true,
	token.Semicolon: true,
}

// Parser holds the token sequence materialized into a slice and reads
// it with one token of lookahead; the position only ever moves forward.
type Parser struct {
	tokens []token.Token
	pos    int
	errors []Error

	// primary is the primary-expression rule parseLevel bottoms out at.
	// It defaults to p.parsePrimary; Builder rebinds it to install an
	// interceptor chain.
	primary func() *ast.Expression
}

// New materializes seq and returns a Parser over it.
func New(seq iter.Seq[token.Token]) *Parser {
	p := &Parser{}
	seq(func(t token.Token) bool {
		p.tokens = append(p.tokens, t)
		return true
	})
	p.primary = p.parsePrimary
	return p
}

// Parse consumes the full token sequence and returns the resulting
// Expression (a Multiple if the input held more than one statement)
// together with any errors recorded along the way.
func Parse(seq iter.Seq[token.Token]) (*ast.Expression, []Error) {
	p := New(seq)
	expr := p.parseProgram()
	return expr, p.errors
}

func (p *Parser) peek() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Kind: token.None, Prec: token.SemiP}
	}
	return p.tokens[p.pos]
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens) || p.peek().Kind == token.None
}

func (p *Parser) advance() token.Token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *Parser) addError(tok token.Token, msg string, expected ...string) {
	p.errors = append(p.errors, Error{Token: tok, Message: msg, Expected: expected})
}

// parseProgram implements the top-level rule: one expression followed
// by any number of statement separators, repeated to the end of input.
func (p *Parser) parseProgram() *ast.Expression {
	var list []*ast.Expression
	for !p.atEnd() {
		if separatorKinds[p.peek().Kind] {
			p.advance()
			continue
		}
		expr := p.parseLevel(len(levels) - 1)
		list = append(list, expr)
	}
	switch len(list) {
	case 0:
		return ast.NewMultiple(nil)
	case 1:
		return list[0]
	default:
		return ast.NewMultiple(list)
	}
}

// parseLevel parses level i of the precedence table and below,
// bottoming out at parsePrimary once levels are exhausted.
func (p *Parser) parseLevel(i int) *ast.Expression {
	if i < 0 {
		return p.primary()
	}
	lvl := levels[i]
	if lvl.shape == shapePrefix {
		return p.parsePrefixLevel(i, lvl)
	}
	return p.parseBinaryLevel(i, lvl)
}

func (p *Parser) parsePrefixLevel(i int, lvl level) *ast.Expression {
	if p.peek().Prec == lvl.prec {
		opTok := p.advance()
		child := p.parseLevel(i) // right-associative: allow stacked prefixes
		return ast.NewLeft(ast.Operator{Token: opTok}, child)
	}
	return p.parseLevel(i - 1)
}

func (p *Parser) parseBinaryLevel(i int, lvl level) *ast.Expression {
	left := p.parseLevel(i - 1)
	for p.peek().Prec == lvl.prec {
		opTok := p.advance()

		// cmp is non-associative: build at most one comparison node: the
		// right operand never recurses back into this level, so a
		// second cmp-precedence token is left for the caller to choke
		// on rather than silently folded into a chain.
		if lvl.prec == token.Cmp {
			right := p.parseLevel(i - 1)
			return ast.NewBinary(left, ast.Operator{Token: opTok}, right)
		}

		rightAssoc := lvl.prec.Associativity() == token.AssocRight
		var right *ast.Expression
		if rightAssoc {
			right = p.parseLevel(i)
		} else {
			right = p.parseLevel(i - 1)
		}
		left = ast.NewBinary(left, ast.Operator{Token: opTok}, right)
		if rightAssoc {
			// the recursive call already folded the rest of the chain.
			break
		}
	}
	return left
}

// atomKinds are token kinds that stand alone as a simple atom.
var atomKinds = map[token.Kind]bool{
	token.Identifier: true,
	token.Number:     true,
	token.String:     true,
	token.Character:  true,
	token.Member:     true,
	token.Unit:       true,
	token.NotIn:      true,
	token.OpRef:      true,
	token.OpDots:     true,
	token.Sharp:      true,
}

func (p *Parser) parsePrimary() *ast.Expression {
	tok := p.peek()

	if tok.Prec == token.Open || tok.Prec == token.InvOpen {
		return p.parsePostfix(p.parseBraced())
	}

	if atomKinds[tok.Kind] || tok.Kind.IsError() || isKeywordAtom(tok.Kind) {
		p.advance()
		return p.parsePostfix(ast.NewSimple(tok))
	}

	p.addError(tok, "expected an expression", "identifier", "number", "string", "(")
	if !p.atEnd() {
		p.advance()
	}
	return ast.NewSimple(tok)
}

func isKeywordAtom(k token.Kind) bool {
	switch k {
	case token.KwUnderscore, token.KwIn, token.KwOut, token.KwMut, token.KwConst,
		token.KwImpl, token.KwUse, token.KwWith, token.KwWhen, token.KwAs,
		token.KwPriv, token.KwPub, token.KwIs, token.KwBy, token.KwPrp:
		return true
	default:
		return false
	}
}

// parsePostfix chains invocation ("E ( E )") and tight-bind application
// ("E E") onto an already-parsed operand.
func (p *Parser) parsePostfix(left *ast.Expression) *ast.Expression {
	for {
		switch p.peek().Prec {
		case token.InvOpen:
			braced := p.parseBraced()
			left = ast.NewRightBraced(left, braced.Open, braced.Mid, braced.Close)
		case token.Unary:
			right := p.primary()
			left = ast.NewApply(left, right)
		default:
			return left
		}
	}
}

// parseBraced parses an opener, an inner expression (absent for an
// empty group), and a matching closer.
func (p *Parser) parseBraced() *ast.Expression {
	open := p.advance()
	if p.peek().Prec == token.Close {
		close := p.advance()
		return ast.NewBraced(open, nil, close)
	}
	mid := p.parseLevel(len(levels) - 1)
	if p.peek().Prec == token.Close {
		close := p.advance()
		return ast.NewBraced(open, mid, close)
	}
	p.addError(p.peek(), "unclosed group", ")")
	return ast.NewBraced(open, mid, token.Token{Kind: token.BrClose, Prec: token.Close})
}
