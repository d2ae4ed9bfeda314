package dcl

import (
	"fmt"

	"github.com/matthewpi/dcl/debug"
	"github.com/matthewpi/dcl/ir"
	"go.uber.org/zap"
)

// Set assigns v to the value at key.  An existing value is updated in place
// and may change kind.  A new key is appended to the section named by its
// dotted prefix, the root if there is none, and every line from the
// insertion point down moves one line further.  Sections are never created.
//
// v must be a string, bool, integer, float, []string, []int, []int64 or
// *ir.Value.  New keys take scalars only, and a list stays a list.
func (d *Document) Set(key string, v any) error {
	if existing, ok := d.tree.Lookup(key); ok {
		return d.assign(key, existing, v)
	}
	p, name := ir.SplitKey(key)
	if name == "" {
		return fmt.Errorf("%w: %q", ErrBadKey, key)
	}
	sec, ok := d.tree.SectionAt(p)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoSection, p)
	}
	return d.insert(sec, name, v)
}

// SetIn is Set addressed by section path and local name, for names which
// themselves contain dots.
func (d *Document) SetIn(p ir.Path, name string, v any) error {
	if name == "" {
		return fmt.Errorf("%w: empty name in %q", ErrBadKey, p)
	}
	sec, ok := d.tree.SectionAt(p)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoSection, p)
	}
	if existing, ok := sec.Get(name); ok {
		return d.assign(name, existing, v)
	}
	return d.insert(sec, name, v)
}

func (d *Document) assign(key string, existing *ir.Value, v any) error {
	nv, err := ir.FromAny(v)
	if err != nil {
		return err
	}
	if err := checkShape(key, existing, nv); err != nil {
		return err
	}
	if err := existing.Assign(nv); err != nil {
		return err
	}
	if debug.Set() {
		d.log.Debug("set", zap.String("key", key), debug.Value("value", existing))
	}
	return nil
}

// checkShape refuses turning a list into a scalar or back, since a save
// rewrites a single line and the list body would stay behind.
func checkShape(key string, cur, nv *ir.Value) error {
	if cur.Kind.IsList() == nv.Kind.IsList() {
		return nil
	}
	return fmt.Errorf("%w: cannot change %q from %s to %s", ir.ErrUnsupportedType, key, cur.Kind, nv.Kind)
}

func (d *Document) insert(sec *ir.Section, name string, v any) error {
	nv, err := ir.FromAny(v)
	if err != nil {
		return err
	}
	if nv.Kind.IsList() {
		return fmt.Errorf("%w: cannot insert %s %q as a new key", ir.ErrUnsupportedType, nv.Kind, name)
	}
	line := insertionLine(sec)
	d.renumber(line)
	nv.Line = line
	nv.Dirty = true
	sec.Put(name, nv)
	d.tree.Lines++
	if debug.Set() {
		d.log.Debug("insert", zap.String("section", sec.Key()), zap.String("key", name), debug.Value("value", nv))
	}
	return nil
}

// insertionLine is the line after the section's last value, the line after
// its opening brace if it has none, or the first line for an empty root.
func insertionLine(sec *ir.Section) int {
	if tail := sec.Tail(); tail != nil {
		return tail.Last() + 1
	}
	if sec.IsRoot() {
		return 1
	}
	return sec.Start + 1
}

// renumber moves everything on or below line down by one.  What moves is
// collected before anything is changed.
func (d *Document) renumber(line int) {
	var (
		values   []*ir.Value
		ends     []*ir.Value
		sections []*ir.Section
		footers  []*ir.Section
	)
	for _, v := range d.tree.Values() {
		switch {
		case v.Line >= line:
			values = append(values, v)
		case v.End >= line:
			ends = append(ends, v)
		}
	}
	for _, s := range d.tree.Sections() {
		switch {
		case s.Start >= line:
			sections = append(sections, s)
		case s.End >= line:
			footers = append(footers, s)
		}
	}

	for _, v := range values {
		v.Line++
		if v.End != 0 {
			v.End++
		}
		v.Dirty = true
	}
	for _, v := range ends {
		v.End++
	}
	for _, s := range sections {
		s.Start++
		s.HeaderDirty = true
		if s.End != 0 {
			s.End++
			s.FooterDirty = true
		}
	}
	for _, s := range footers {
		s.End++
		s.FooterDirty = true
	}
	if debug.Set() {
		d.log.Debug("renumber",
			zap.Int("line", line),
			zap.Int("values", len(values)),
			zap.Int("sections", len(sections)),
			zap.Int("footers", len(footers)))
	}
}
