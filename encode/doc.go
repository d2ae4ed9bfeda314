// Package encode renders DCL trees.
//
// The line builders ([ValueLine], [Header], [Footer]) produce exactly the
// text a selective save writes for one line.  [Encode] writes a whole
// document, [Dump] the flat debug view and [Export] converts a tree to JSON,
// YAML or TOML.
//
// Indentation is four spaces per level: a section header sits at the depth
// of its dotted key, its values one level deeper.
package encode
