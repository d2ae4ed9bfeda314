package dcl

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.dcl
var templates embed.FS

// DefaultTemplate holds the files [Open] creates when they are missing,
// by base name.  It provides "config.dcl".
var DefaultTemplate fs.FS = mustSub(templates, "templates")

func mustSub(f fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(f, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
