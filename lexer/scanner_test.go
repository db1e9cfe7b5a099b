package lexer

import (
	"testing"

	"github.com/rulang/ru/token"
)

// Every Raw() stream brackets its content with a bootstrap newline token
// and a trailing EOF newline token, so a single meaningful token always
// shows up at index 1 of 3.

func kinds(src string) []token.Kind {
	var out []token.Kind
	for t := range Raw(src) {
		out = append(out, t.Kind)
	}
	return out
}

func texts(src string) []string {
	var out []string
	for t := range Raw(src) {
		out = append(out, t.Text)
	}
	return out
}

func newlineTexts(src string) []string {
	var out []string
	for _, tok := range collect(Raw(src)) {
		if tok.Kind == token.Newline {
			out = append(out, tok.Text)
		}
	}
	return out
}

func TestRawSymbols(t *testing.T) {
	got := kinds("(),;#")
	want := []token.Kind{token.Newline, token.BrOpen, token.BrClose, token.Comma, token.Semicolon, token.Sharp, token.Newline}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRawLineComment(t *testing.T) {
	got := texts("a ##comment\nb")
	want := []string{"", "a", "", "b", ""}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRawIdentifier(t *testing.T) {
	toks := collect(Raw("foo_bar"))
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3: %v", len(toks), toks)
	}
	if toks[1].Kind != token.Identifier || toks[1].Text != "foo_bar" {
		t.Errorf("got %v, want identifier(foo_bar)", toks[1])
	}
}

func TestRawString(t *testing.T) {
	// Token text includes the delimiting quote run itself.
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty double", `""`, `""`},
		{"simple", `"hi"`, `"hi"`},
		{"triple", `"""abc"""`, `"""abc"""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := collect(Raw(tt.src))
			if len(toks) != 3 {
				t.Fatalf("got %d tokens (%v), want 3", len(toks), toks)
			}
			if toks[1].Kind != token.String {
				t.Errorf("got kind %v, want string", toks[1].Kind)
			}
			if toks[1].Text != tt.want {
				t.Errorf("got text %q, want %q", toks[1].Text, tt.want)
			}
		})
	}
}

func TestRawStringQuoteRunRollover(t *testing.T) {
	// The run of four quotes after "abc" closes the 3-quote string using
	// its first three; the leftover quote reopens a 1-quote string that
	// closes on the first quote of the final 3-quote run, leaving a
	// 2-quote run behind as an empty string.
	got := texts(`"""abc""""iu"""`)
	want := []string{"", `"""abc"""`, `"iu"`, `""`, ""}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRawUnclosedString(t *testing.T) {
	toks := collect(Raw(`"abc`))
	if len(toks) != 3 {
		t.Fatalf("got %d tokens: %v", len(toks), toks)
	}
	if toks[1].Kind != token.ErrorUnclosedString {
		t.Errorf("got %v, want error_unclosed_string", toks[1].Kind)
	}
}

func TestRawNumber(t *testing.T) {
	tests := []struct {
		src    string
		text   string
		prefix int
		shift  int64
	}{
		{"123", "123", 0, 0},
		{"22_222_", "22_222_", 0, 0},
		{"0.", "0.", 0, 0},
		{"0x.3dp+0", "0x.3dp+0", 2, 0},
		{"0.0e-5", "0.0e-5", 0, -5},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := collect(Raw(tt.src))
			if len(toks) != 3 || toks[1].Kind != token.Number {
				t.Fatalf("got %v, want a single number token", toks)
			}
			got := toks[1]
			if got.Text != tt.text {
				t.Errorf("text = %q, want %q", got.Text, tt.text)
			}
			if got.Prefix != tt.prefix {
				t.Errorf("prefix = %d, want %d", got.Prefix, tt.prefix)
			}
			if got.Shift != tt.shift {
				t.Errorf("shift = %d, want %d", got.Shift, tt.shift)
			}
		})
	}
}

func TestRawNumberBareExponentMarker(t *testing.T) {
	// "0.0e" followed by a non-digit sign keeps the marker as text but
	// records no shift, leaving "-x" as separate subsequent tokens.
	got := texts("0.0e-x")
	want := []string{"", "0.0e", "-", "x", ""}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRawCharacterLiteral(t *testing.T) {
	toks := collect(Raw(`'1'`))
	if len(toks) != 3 || toks[1].Kind != token.Character || toks[1].Text != "1" {
		t.Fatalf("got %v, want a single character(1) token", toks)
	}
}

func TestRawExplicitQuotedIdentifier(t *testing.T) {
	// A multi-character quoted body starting with a letter reads as an
	// explicitly-quoted identifier, escaping keyword reclassification.
	toks := collect(Raw(`'foo'`))
	if len(toks) != 3 || toks[1].Kind != token.IDExpl || toks[1].Text != "foo" {
		t.Fatalf("got %v, want a single id_expl(foo) token", toks)
	}
}

func TestRawExplicitQuotedOperator(t *testing.T) {
	// A multi-character quoted body that isn't identifier-shaped (it has
	// non-alnum characters, even though it starts with a letter) reads as
	// an explicitly-quoted operator.
	toks := collect(Raw(`'a+-'`))
	if len(toks) != 3 || toks[1].Kind != token.OpExpl || toks[1].Text != "a+-" {
		t.Fatalf("got %v, want a single op_expl(a+-) token", toks)
	}
}

func TestRawExplicitQuotedIdentifierAllDigits(t *testing.T) {
	// A multi-character quoted body made entirely of digits is still
	// identifier-shaped, so it reads as id_expl rather than op_expl.
	toks := collect(Raw(`'123'`))
	if len(toks) != 3 || toks[1].Kind != token.IDExpl || toks[1].Text != "123" {
		t.Fatalf("got %v, want a single id_expl(123) token", toks)
	}
}

func TestRawStandaloneQuote(t *testing.T) {
	toks := collect(Raw(`' `))
	if len(toks) != 3 || toks[1].Kind != token.ErrorStandaloneQuo {
		t.Fatalf("got %v, want a single error_standalone_quo token", toks)
	}
}

func TestRawOperatorRun(t *testing.T) {
	toks := collect(Raw("<<<"))
	if len(toks) != 3 || toks[1].Kind != token.Operator || toks[1].Text != "<<<" {
		t.Fatalf("got %v, want a single operator_(<<<) token", toks)
	}
}

func TestRawIndentRun(t *testing.T) {
	got := newlineTexts("a\n   b")
	want := []string{"", "   ", ""}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRawBlankLineAbsorption(t *testing.T) {
	// A blank line (here, one holding only spaces) between "a" and the
	// indented "b" must not be reported as its own newline: only the
	// final, deeper indent counts.
	got := newlineTexts("a\n  \n   b")
	want := []string{"", "   ", ""}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
