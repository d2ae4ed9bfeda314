package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Any   bool
	Parse bool
	Set   bool
	Save  bool
	Watch bool
}

var d *debug

func init() {
	d = &debug{}
	d.Any = boolEnv("DCL_DEBUG")
	d.Parse = boolEnv("DCL_DEBUG_PARSE")
	d.Set = boolEnv("DCL_DEBUG_SET")
	d.Save = boolEnv("DCL_DEBUG_SAVE")
	d.Watch = boolEnv("DCL_DEBUG_WATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Any || d.Parse
}
func Set() bool {
	return d.Any || d.Set
}
func Save() bool {
	return d.Any || d.Save
}
func Watch() bool {
	return d.Any || d.Watch
}
