// Package token classifies the lines and literals of a DCL document.
//
// DCL is line oriented: every line is one of a blank, a comment, a section
// opener ("name {"), a section closer ("}"), a list opener ("name [s" or
// "name [i"), a list closer ("s]" or "i]"), a list item ("- v") or a value
// assignment ("key: value").  [Classify] decides which, independent of the
// surrounding lines; keeping track of open sections and lists is left to
// package parse.
//
// Literals on the right hand side of an assignment are classified by
// [ClassifyLiteral] in a fixed order: quoted string, boolean, integer,
// float, and finally plain string.
//
// # Escapes
//
// The only escape DCL knows is \uXXXX.  [Unescape] decodes it and [Quote]
// produces a double quoted literal which decodes back to the same string.
package token
