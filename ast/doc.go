/*
Package ast defines the expression tree the parser builds.

Expression is a tagged union rather than an interface hierarchy: a
single struct with a Kind discriminant and a fixed set of optional
fields, read according to Kind. This keeps traversal a plain switch
over Kind instead of a visitor or type-switch over implementations,
and keeps ownership a tree — every child is an exclusively-owned
pointer, never shared.
*/
package ast
