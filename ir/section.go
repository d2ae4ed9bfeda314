package ir

import (
	"iter"
	"slices"
)

type Section struct {
	Path Path
	// Local is the name as written on the opening line, which may itself
	// contain dots.  Empty means the last path segment.
	Local string

	// Start and End are the lines of the opening "name {" and the closing
	// "}".  Both are 0 for the root.
	Start int
	End   int

	HeaderDirty bool
	FooterDirty bool

	keys   []string
	values map[string]*Value
	tail   *Value
}

func NewSection(p Path, start int) *Section {
	return &Section{
		Path:   p,
		Start:  start,
		values: map[string]*Value{},
	}
}

func (s *Section) Key() string {
	return s.Path.String()
}

func (s *Section) Name() string {
	if s.Local != "" {
		return s.Local
	}
	return s.Path.Base()
}

func (s *Section) IsRoot() bool {
	return s.Path.IsRoot()
}

func (s *Section) Depth() int {
	return s.Path.Depth()
}

func (s *Section) Dirty() bool {
	return s.HeaderDirty || s.FooterDirty
}

func (s *Section) Len() int {
	return len(s.keys)
}

func (s *Section) Get(key string) (*Value, bool) {
	if key == "" {
		return nil, false
	}
	v, ok := s.values[key]
	return v, ok
}

// Put inserts v under key.  An existing key keeps its position and has its
// value replaced.
func (s *Section) Put(key string, v *Value) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = v
	if s.tail == nil || v.Last() >= s.tail.Last() {
		s.tail = v
	}
}

// Tail returns the value occupying the last line of the section, nil if the
// section holds no values.
func (s *Section) Tail() *Value {
	return s.tail
}

func (s *Section) Keys() []string {
	return slices.Clone(s.keys)
}

// All iterates the values of s in insertion order.
func (s *Section) All() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		for _, k := range s.keys {
			if !yield(k, s.values[k]) {
				return
			}
		}
	}
}
