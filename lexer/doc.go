/*
Package lexer turns Ru source text into a stream of token.Token values.

The pipeline is a chain of lazy stream transforms, each a function from
an iter.Seq[token.Token] to another iter.Seq[token.Token]:

	raw scanner -> keyword classification -> dot-splitting ->
	operator-keyword classification -> adjacency fusion ->
	precedence classification -> indentation resolution ->
	explicit-quote normalization -> invocation inference

Lex composes the whole chain. Each stage is independently testable and
restartable up to the underlying source, since range-over-func iterators
are pulled one token at a time with no shared mutable state beyond what
a single stage owns (e.g. the indentation stage's width stack).

Use Builder to splice an extra stage into the chain, the way one would
register a plugin on the parser.
*/
package lexer
