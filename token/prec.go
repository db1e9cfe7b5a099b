package token

// Prec is a precedence band. Most values pack a numeric level together
// with an associativity bit and a unary-side bit, mirroring the source
// language's own bit-packed encoding (number<<2 | assoc<<1 | unarySide).
// A handful of bracket-like/syntactic-marker bands (Open, Close, InvOpen,
// Tree, Other) sit outside that numeric ordering.
type Prec uint8

// Assoc is an operator's associativity.
type Assoc bool

const (
	AssocLeft  Assoc = false
	AssocRight Assoc = true
)

// Side is the side on which a unary operator of a given precedence
// attaches to its operand.
type Side bool

const (
	SideLeft  Side = false
	SideRight Side = true
)

func precedence(level int, assoc Assoc, side Side) Prec {
	v := level << 2
	if assoc {
		v |= 0b10
	}
	if side {
		v |= 0b01
	}
	return Prec(v)
}

// Associativity reports p's associativity bit.
func (p Prec) Associativity() Assoc {
	return Assoc(p&0b10 != 0)
}

// UnarySide reports the side on which a unary operator at p attaches.
func (p Prec) UnarySide() Side {
	return Side(p&0b01 != 0)
}

// Numeric precedence bands, ordered from tightest (Unary) to loosest
// (Semicolon). Unary marks a token with no whitespace to its left
// (tight-bind); Intern is the default band for an ordinary operand.
const (
	Unary  = Prec(1<<2 | 0<<1 | 1) // left assoc, attaches on the right
	Intern = Prec(0)               // default

	Pow      = Prec(3<<2 | 1<<1 | 1)
	Mul      = Prec(4<<2 | 0<<1 | 0)
	Add      = Prec(5<<2 | 0<<1 | 0)
	Shift    = Prec(6<<2 | 0<<1 | 1)
	Bitnot   = Prec(7<<2 | 0<<1 | 0)
	Bitand   = Prec(8<<2 | 0<<1 | 0)
	Bitxor   = Prec(9<<2 | 0<<1 | 0)
	Bitor    = Prec(10<<2 | 0<<1 | 0)
	Range    = Prec(11<<2 | 0<<1 | 1)
	Cmp      = Prec(12<<2 | 1<<1 | 0)
	Bidirect = Prec(13<<2 | 0<<1 | 1)
	Front    = Prec(14<<2 | 1<<1 | 0)
	Back     = Prec(15<<2 | 0<<1 | 1)
	Either   = Prec(16<<2 | 1<<1 | 0)
	Pair     = Prec(17<<2 | 1<<1 | 0)
	Init     = Prec(18<<2 | 0<<1 | 1)
	CommaP   = Prec(19<<2 | 0<<1 | 1)
	Pipe     = Prec(20<<2 | 0<<1 | 1)
	Not      = Prec(21<<2 | 1<<1 | 0)
	And      = Prec(22<<2 | 1<<1 | 0)
	Or       = Prec(23<<2 | 1<<1 | 0)
	Exchange = Prec(24<<2 | 1<<1 | 0)
	While    = Prec(25<<2 | 1<<1 | 0)
	SemiP    = Prec(26<<2 | 0<<1 | 1)
)

// Non-numeric bands: bracket-like and syntactic-marker roles that sit
// outside the ordered table above.
const (
	InvOpen = Prec(0xFF) // a call-brace: "(" immediately following a value
	Open    = Prec(0xFE) // a grouping "(" "[" "{"
	Close   = Prec(0xFD) // ")" "]" "}"
	Tree    = Prec(0xFC) // "is"/"by"/"prp" block markers
	Other   = Prec(0xFB) // "#" "=>" and other opaque separators
)

var precNames = map[Prec]string{
	Unary: "unary", Intern: "intern",
	Pow: "pow", Mul: "mul", Add: "add", Shift: "shift",
	Bitnot: "bitnot_", Bitand: "bitand_", Bitxor: "bitxor_", Bitor: "bitor_",
	Range: "range", Cmp: "cmp", Bidirect: "bidirect", Front: "front", Back: "back",
	Either: "either", Pair: "pair", Init: "init", CommaP: "comma", Pipe: "pipe",
	Not: "not_", And: "and_", Or: "or_", Exchange: "exchange", While: "while_", SemiP: "semicolon",
	InvOpen: "inv_open", Open: "open", Close: "close", Tree: "tree", Other: "other",
}

func (p Prec) String() string {
	if name, ok := precNames[p]; ok {
		return name
	}
	return "prec(?)"
}
