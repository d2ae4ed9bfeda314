// Package ir provides the in-memory representation of DCL documents.
//
// # Overview
//
// A document is a tree of sections. The implicit root section has an empty
// path; every other section is addressed by its dotted key, for example
// "server.tls". Sections hold an ordered set of values, and each value is a
// tagged union of the scalar and list kinds DCL supports.
//
// Unlike a plain decoded configuration, the IR keeps source positions. Every
// Value carries the 1-based line it occupies in the backing file and every
// Section carries the lines of its opening and closing braces. Those line
// numbers are what allows a document to be patched line by line instead of
// being re-serialized.
//
// # Kinds
//
// The Kind field indicates which payload field of a Value is meaningful:
//
//   - StringKind: String
//   - BoolKind: Bool
//   - IntKind: Int
//   - FloatKind: Float
//   - StringListKind: Strings
//   - IntListKind: Ints
//
// # Creating Values
//
//	v := ir.FromString("hello")
//	n := ir.FromInt(42)
//	l := ir.FromStrings([]string{"a", "b"})
//
// Values built this way are not positioned (Line is 0) until they are placed
// in a Tree.
//
// # Paths
//
// Section keys are modelled as Path, an ordered slice of segments. Dotted
// strings only exist at the format boundary: ParsePath and Path.String.
//
// # Dirty Tracking
//
// A Value is Dirty when its rendered line no longer matches the file, either
// because its payload changed or because it moved. A Section tracks its
// header and footer separately since an insertion inside a section moves only
// its closing brace.
package ir
