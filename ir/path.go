package ir

import (
	"slices"
	"strings"
)

// Path is the ordered list of segments naming a section.  The root section
// has the empty path.
type Path []string

// ParsePath splits a dotted key into segments.  The empty string is the root
// path.
func ParsePath(key string) Path {
	if key == "" {
		return nil
	}
	return Path(strings.Split(key, "."))
}

func (p Path) String() string {
	return strings.Join(p, ".")
}

func (p Path) IsRoot() bool {
	return len(p) == 0
}

// Parent returns p without its last segment; the parent of a top level path
// is the root.
func (p Path) Parent() Path {
	if len(p) <= 1 {
		return nil
	}
	return slices.Clone(p[:len(p)-1])
}

// Base returns the last segment, "" for the root.
func (p Path) Base() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

func (p Path) Child(name string) Path {
	res := make(Path, len(p), len(p)+1)
	copy(res, p)
	return append(res, name)
}

// Depth is the number of dots in the dotted form of p.
func (p Path) Depth() int {
	return max(len(p)-1, 0)
}

func (p Path) Equal(o Path) bool {
	return slices.Equal(p, o)
}

// SplitKey splits a dotted value key into the path of the section holding it
// and the value's local name.
func SplitKey(key string) (Path, string) {
	i := strings.LastIndexByte(key, '.')
	if i < 0 {
		return nil, key
	}
	return ParsePath(key[:i]), key[i+1:]
}
