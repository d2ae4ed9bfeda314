// Package format names the document formats a DCL tree can be written as.
package format
