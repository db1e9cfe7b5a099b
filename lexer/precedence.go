package lexer

import "github.com/rulang/ru/token"

var singleMap = map[byte]token.Prec{
	'!': token.Cmp,
	'=': token.Exchange,
	'<': token.Back,
	'>': token.Front,
	'|': token.Pipe,
	'[': token.Open,
	'{': token.Open,
	']': token.Close,
	'}': token.Close,
	'*': token.Mul,
	'/': token.Mul,
	'%': token.Mul,
	'+': token.Add,
	'-': token.Add,
}

var doubleMap = map[byte]token.Prec{
	'=': token.Cmp,
	'<': token.Shift,
	'>': token.Shift,
	'*': token.Pow,
	'~': token.Bitnot,
	'&': token.Bitand,
	'^': token.Bitxor,
	'|': token.Bitor,
	'.': token.Range,
}

// classify implements Component C: it assigns a precedence to an
// operator_ token from its text alone, by walking its characters.
func classify(text string) token.Prec {
	switch text {
	case "<", ">", "<=", ">=":
		return token.Cmp
	}

	var isOpen, isClose, isFront, isBack bool
	unaryMax := token.Intern
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case '[', '{':
			isOpen = true
		case ']', '}':
			isClose = true
		case '>':
			isFront = true
		case '<':
			isBack = true
		}
		if p, ok := singleMap[c]; ok && p > unaryMax {
			unaryMax = p
		}
	}

	binaryMax := token.Intern
	for i := 0; i+1 < len(text); i++ {
		if text[i] == text[i+1] {
			if p, ok := doubleMap[text[i]]; ok && p > binaryMax {
				binaryMax = p
			}
		}
	}
	if text == "<>" {
		binaryMax = token.Cmp
	}

	switch {
	case isOpen && isClose:
		return token.Intern
	case isOpen != isClose:
		return unaryMax
	case unaryMax == token.Pipe && binaryMax != token.Bitor:
		return unaryMax
	case unaryMax == token.Exchange && binaryMax != token.Cmp && binaryMax != token.Range:
		return unaryMax
	case binaryMax != token.Intern:
		return binaryMax
	case isFront && isBack:
		return token.Bidirect
	default:
		return unaryMax
	}
}

// Precedence is Component C: it assigns precedences to bare operator_
// tokens by character content. Every other token passes through
// unchanged — the source this is grounded on silently dropped
// non-operator tokens here, which this implementation does not repeat.
func Precedence(in Seq) Seq {
	return func(yield func(token.Token) bool) {
		in(func(t token.Token) bool {
			if t.Kind == token.Operator {
				t.Prec = classify(t.Text)
			}
			return yield(t)
		})
	}
}
