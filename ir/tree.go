package ir

import "iter"

// Tree is a parsed document: the root section plus a flat index of every
// named section by dotted key.
type Tree struct {
	Root *Section
	// Lines is the number of lines the document occupies.
	Lines int

	order []*Section
	index map[string]*Section
}

func NewTree() *Tree {
	return &Tree{
		Root:  NewSection(nil, 0),
		index: map[string]*Section{},
	}
}

// Add indexes s.  Adding a key twice keeps the first section.
func (t *Tree) Add(s *Section) *Section {
	key := s.Key()
	if prev, ok := t.index[key]; ok {
		return prev
	}
	t.index[key] = s
	t.order = append(t.order, s)
	return s
}

// Section returns the named section; the empty key names no section.
func (t *Tree) Section(key string) (*Section, bool) {
	if key == "" {
		return nil, false
	}
	s, ok := t.index[key]
	return s, ok
}

// SectionAt is Section for a Path; the empty path is the root.
func (t *Tree) SectionAt(p Path) (*Section, bool) {
	if p.IsRoot() {
		return t.Root, true
	}
	return t.Section(p.String())
}

// Parent returns the parent of s as named by its dotted key, the root if that
// section does not exist.
func (t *Tree) Parent(s *Section) *Section {
	if s.IsRoot() {
		return nil
	}
	if p, ok := t.SectionAt(s.Path.Parent()); ok {
		return p
	}
	return t.Root
}

// Sections returns the named sections in the order they first appeared.
func (t *Tree) Sections() []*Section {
	res := make([]*Section, len(t.order))
	copy(res, t.order)
	return res
}

// Lookup resolves a dotted value key: the part after the last dot is looked up
// in the section named by the part before it, falling back to the full key
// in the root.
func (t *Tree) Lookup(key string) (*Value, bool) {
	if key == "" {
		return nil, false
	}
	p, name := SplitKey(key)
	if !p.IsRoot() {
		if s, ok := t.SectionAt(p); ok {
			if v, ok := s.Get(name); ok {
				return v, true
			}
		}
	}
	return t.Root.Get(key)
}

// Values iterates every value of the document, root first, then sections in
// index order.
func (t *Tree) Values() iter.Seq2[*Section, *Value] {
	return func(yield func(*Section, *Value) bool) {
		for _, s := range append([]*Section{t.Root}, t.order...) {
			for _, v := range s.All() {
				if !yield(s, v) {
					return
				}
			}
		}
	}
}
