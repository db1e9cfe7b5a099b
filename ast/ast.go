package ast

import (
	"fmt"
	"strings"

	"github.com/rulang/ru/token"
)

// Kind discriminates the shape a Expression holds.
type Kind int

const (
	// Simple is a lone token: an atom. Uses Token.
	Simple Kind = iota
	// Right is a postfix shape, "E op". Uses Child, Op.
	Right
	// Left is a prefix shape, "op E". Uses Op, Child.
	Left
	// Apply is juxtaposition/application, "E E". Uses Left, Right.
	Apply
	// Binary is "E op E". Uses Left, Op, Right.
	Binary
	// Braced is "( E )". Uses Open, Mid, Close.
	Braced
	// LeftBraced is "( E ) E", a call-like shape with the invocation on
	// the left. Uses Open, Mid, Close, Right.
	LeftBraced
	// RightBraced is "E ( E )", an ordinary invocation. Uses Left, Open,
	// Mid, Close.
	RightBraced
	// Ternary is "E ( E ) E". Uses Left, Open, Mid, Close, Right.
	Ternary
	// Multiple is a sequence of expressions, e.g. a block or a
	// statement list. Uses List.
	Multiple
)

func (k Kind) String() string {
	switch k {
	case Simple:
		return "simple"
	case Right:
		return "right"
	case Left:
		return "left"
	case Apply:
		return "apply"
	case Binary:
		return "binary"
	case Braced:
		return "braced"
	case LeftBraced:
		return "left_braced"
	case RightBraced:
		return "right_braced"
	case Ternary:
		return "ternary"
	case Multiple:
		return "multiple"
	default:
		return "kind(?)"
	}
}

// Operator carries an operator token plus, where the grammar inherited
// one during contextual reclassification, the left operand the
// operator was originally attached to.
type Operator struct {
	Left  *Expression
	Token token.Token
}

// Expression is the tagged-union AST node. Only the fields relevant to
// Kind are populated; every pointer field is an exclusively-owned
// child, never shared with another node.
type Expression struct {
	Kind Kind

	Token token.Token // Simple

	Op    Operator    // Right, Left, Binary
	Child *Expression // Right, Left

	Left  *Expression // Apply, Binary, RightBraced, Ternary
	Right *Expression // Apply, Binary, LeftBraced, Ternary

	Open  token.Token // Braced, LeftBraced, RightBraced, Ternary
	Mid   *Expression // Braced, LeftBraced, RightBraced, Ternary
	Close token.Token // Braced, LeftBraced, RightBraced, Ternary

	List []*Expression // Multiple
}

// NewSimple builds an atom node.
func NewSimple(tok token.Token) *Expression {
	return &Expression{Kind: Simple, Token: tok}
}

// NewRight builds a postfix node.
func NewRight(child *Expression, op Operator) *Expression {
	return &Expression{Kind: Right, Child: child, Op: op}
}

// NewLeft builds a prefix node.
func NewLeft(op Operator, child *Expression) *Expression {
	return &Expression{Kind: Left, Op: op, Child: child}
}

// NewApply builds a juxtaposition node.
func NewApply(left, right *Expression) *Expression {
	return &Expression{Kind: Apply, Left: left, Right: right}
}

// NewBinary builds a binary-operator node.
func NewBinary(left *Expression, op Operator, right *Expression) *Expression {
	return &Expression{Kind: Binary, Left: left, Op: op, Right: right}
}

// NewBraced builds a "( E )" node. mid may be nil for an empty group.
func NewBraced(open token.Token, mid *Expression, close token.Token) *Expression {
	return &Expression{Kind: Braced, Open: open, Mid: mid, Close: close}
}

// NewLeftBraced builds a "( E ) E" node.
func NewLeftBraced(open token.Token, mid *Expression, close token.Token, right *Expression) *Expression {
	return &Expression{Kind: LeftBraced, Open: open, Mid: mid, Close: close, Right: right}
}

// NewRightBraced builds an "E ( E )" invocation node.
func NewRightBraced(left *Expression, open token.Token, mid *Expression, close token.Token) *Expression {
	return &Expression{Kind: RightBraced, Left: left, Open: open, Mid: mid, Close: close}
}

// NewTernary builds an "E ( E ) E" node.
func NewTernary(left *Expression, open token.Token, mid *Expression, close token.Token, right *Expression) *Expression {
	return &Expression{Kind: Ternary, Left: left, Open: open, Mid: mid, Close: close, Right: right}
}

// NewMultiple builds a sequence node.
func NewMultiple(list []*Expression) *Expression {
	return &Expression{Kind: Multiple, List: list}
}

// String renders a compact, parenthesized form for debugging and tests.
func (e *Expression) String() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case Simple:
		return e.Token.Text
	case Right:
		return fmt.Sprintf("(%s %s)", e.Child, e.Op.Token.Text)
	case Left:
		return fmt.Sprintf("(%s %s)", e.Op.Token.Text, e.Child)
	case Apply:
		return fmt.Sprintf("(%s %s)", e.Left, e.Right)
	case Binary:
		return fmt.Sprintf("(%s %s %s)", e.Op.Token.Text, e.Left, e.Right)
	case Braced:
		return fmt.Sprintf("%s%s%s", e.Open.Text, e.Mid, e.Close.Text)
	case LeftBraced:
		return fmt.Sprintf("(%s%s%s %s)", e.Open.Text, e.Mid, e.Close.Text, e.Right)
	case RightBraced:
		return fmt.Sprintf("(%s %s%s%s)", e.Left, e.Open.Text, e.Mid, e.Close.Text)
	case Ternary:
		return fmt.Sprintf("(%s %s%s%s %s)", e.Left, e.Open.Text, e.Mid, e.Close.Text, e.Right)
	case Multiple:
		parts := make([]string, len(e.List))
		for i, c := range e.List {
			parts[i] = c.String()
		}
		return "{" + strings.Join(parts, "; ") + "}"
	default:
		return "?"
	}
}
