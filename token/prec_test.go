package token

import "testing"

func TestPrecAssociativity(t *testing.T) {
	tests := []struct {
		name string
		p    Prec
		want Assoc
	}{
		{"mul is left", Mul, AssocLeft},
		{"add is left", Add, AssocLeft},
		{"pow is right", Pow, AssocRight},
		{"cmp is right-bit", Cmp, AssocRight},
		{"exchange is right", Exchange, AssocRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Associativity(); got != tt.want {
				t.Errorf("Associativity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrecUnarySide(t *testing.T) {
	if got := Unary.UnarySide(); got != SideRight {
		t.Errorf("Unary.UnarySide() = %v, want SideRight", got)
	}
	if got := Mul.UnarySide(); got != SideLeft {
		t.Errorf("Mul.UnarySide() = %v, want SideLeft", got)
	}
}

func TestPrecOrdering(t *testing.T) {
	// The numeric bands should appear in strictly increasing order,
	// tightest to loosest, matching the source table.
	ordered := []Prec{
		Intern, Unary, Pow, Mul, Add, Shift, Bitnot, Bitand, Bitxor, Bitor,
		Range, Cmp, Bidirect, Front, Back, Either, Pair, Init, CommaP, Pipe,
		Not, And, Or, Exchange, While, SemiP,
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("expected %v < %v at index %d", ordered[i-1], ordered[i], i)
		}
	}
}

func TestPrecString(t *testing.T) {
	if got := Cmp.String(); got != "cmp" {
		t.Errorf("Cmp.String() = %q, want %q", got, "cmp")
	}
	if got := Open.String(); got != "open" {
		t.Errorf("Open.String() = %q, want %q", got, "open")
	}
}
