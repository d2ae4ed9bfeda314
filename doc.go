// Package dcl loads, edits and saves DCL configuration files.
//
// A [Document] is parsed once.  [Document.Set] updates values in memory and,
// when a key is new, renumbers every line below the insertion point so that
// the in-memory line numbers always match where content will land on disk.
// [Document.Save] then rewrites only the lines that changed, leaving every
// other line of the file byte for byte as it was.
//
// # Files
//
// [Open] resolves a file inside a working directory and creates it from the
// bundled template on first use.  By default a save is written next to the
// source as "name.updated.dcl"; use [InPlace] or [WithSaveTarget] to change
// that.
//
// # Limitations
//
// The rewrite model patches single lines.  Lists are never rewritten, nor
// turned into scalars or back.  Lines the parser does not track (comments,
// blank lines, list members) are not moved by an insertion, so a key
// inserted above one writes over it.  Use [Document.Preview] to see the
// result of a save before writing it.
//
// A Document is not safe for concurrent use.
package dcl
