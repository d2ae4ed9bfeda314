// Package libdiff computes line diffs between two renderings of a DCL
// document, such as a file before and after a pending save.
//
// # Usage
//
//	lines := libdiff.Lines(before, after)
//	if libdiff.Changed(lines) {
//		libdiff.Write(os.Stdout, lines, libdiff.Context(2))
//	}
package libdiff
