// Package console implements the interactive calculator loop.
//
// Each input line is one of: "quit" or "exit", which end the loop; a
// command starting with "."; or an arithmetic expression for package eval.
// Commands are split like shell words and act on the document the console
// was given:
//
//	.get key          print a value
//	.set key value    assign a value, classified like a DCL right hand side
//	.save             write pending changes
//	.diff             show pending changes
//	.dump             print the document
//	.help             list commands
package console
