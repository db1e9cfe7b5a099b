/*
Package token defines the token types and structures produced by the Ru
lexer and consumed by the Ru parser.

A Token is an immutable value: a Kind, a Prec (precedence band), the exact
source slice it was read from, its position, and a handful of auxiliary
fields (Prefix/Postfix/Shift) that the scanner fills in for literals whose
shape needs them (e.g. the "0x" prefix on a hex number, or the exponent
in "1e10").

# Precedence

Prec is not just an ordering: each value packs a numeric level together
with an associativity bit and a unary-side bit, recovered with
Prec.Associativity and Prec.UnarySide. The parser's precedence table
walks these bits to decide rule shapes; see the parser package.
*/
package token
