// Package workdir locates DCL files inside a working directory and creates
// them from a template on first use.
package workdir
