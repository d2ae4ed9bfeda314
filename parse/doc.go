// Package parse turns DCL text into an [ir.Tree].
//
// Parsing never fails on a malformed line: the line is skipped and reported
// as a [Diagnostic] through the [Diagnostics] option.  [Strict] turns the
// first diagnostic into an error instead.
//
// Right hand sides and list members have "${dotted.key}" references
// expanded against the values parsed so far, then \uXXXX escapes decoded,
// before the literal is classified.
package parse
