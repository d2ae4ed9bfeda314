package dcl

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/matthewpi/dcl/debug"
	"github.com/matthewpi/dcl/encode"
	"github.com/matthewpi/dcl/ir"
	"github.com/matthewpi/dcl/libdiff"
	"github.com/matthewpi/dcl/token"
	"github.com/matthewpi/dcl/workdir"
	"go.uber.org/zap"
)

// Patch returns the replacement text of every line a save would write, by
// 1-based line number.  It changes nothing.
func (d *Document) Patch() map[int]string {
	res := map[int]string{}
	addValues := func(s *ir.Section) {
		for k, v := range s.All() {
			if !v.Dirty {
				continue
			}
			if ln, ok := encode.ValueLine(s, k, v); ok {
				res[v.Line] = ln
			}
		}
	}
	addValues(d.tree.Root)
	var blanks []int
	for _, s := range d.tree.Sections() {
		if s.HeaderDirty {
			res[s.Start] = encode.Header(s)
			if s.Start > 1 {
				blanks = append(blanks, s.Start-1)
			}
		}
		if s.FooterDirty && s.End > 0 {
			res[s.End] = encode.Footer(s)
		}
		addValues(s)
	}
	// the separator above a moved header never overwrites written content
	for _, ln := range blanks {
		if _, ok := res[ln]; !ok {
			res[ln] = ""
		}
	}
	return res
}

// Preview returns the lines of the file a save would read and the lines it
// would write.
func (d *Document) Preview() (before, after []string, err error) {
	txt, err := d.readBase()
	if err != nil {
		return nil, nil, err
	}
	return txt.Lines, applyPatch(txt.Lines, d.Patch()), nil
}

// Diff writes what a save would change as a unified diff.  It writes
// nothing when the document is clean.
func (d *Document) Diff(w io.Writer, opts ...libdiff.WriteOption) error {
	before, after, err := d.Preview()
	if err != nil {
		return err
	}
	return libdiff.Write(w, libdiff.Lines(before, after), opts...)
}

// Save writes the changed lines to the save target.  Nothing is written when
// nothing changed.  Dirty flags are cleared only once the write succeeded,
// after which the target is what the next save starts from.
func (d *Document) Save() error {
	repl := d.Patch()
	if len(repl) == 0 {
		d.clean()
		return nil
	}
	if d.target == "" {
		return ErrNoTarget
	}
	txt, err := d.readBase()
	if err != nil {
		return err
	}
	out := &token.Text{
		Lines:    applyPatch(txt.Lines, repl),
		Ends:     txt.Ends,
		EOL:      txt.EOL,
		FinalEOL: txt.FinalEOL || len(txt.Lines) == 0,
	}
	if err := workdir.WriteFile(d.target, out.Bytes()); err != nil {
		return fmt.Errorf("save %s: %w", d.target, err)
	}
	if debug.Save() {
		d.log.Debug("saved",
			zap.String("base", d.base),
			zap.String("target", d.target),
			zap.Ints("lines", slices.Sorted(maps.Keys(repl))))
	}
	d.base = d.target
	d.text = out
	d.clean()
	return nil
}

func (d *Document) readBase() (*token.Text, error) {
	if d.base == "" {
		return d.text, nil
	}
	data, err := os.ReadFile(d.base)
	if err != nil {
		return nil, err
	}
	return token.SplitLines(data), nil
}

func (d *Document) clean() {
	for _, v := range d.tree.Values() {
		v.Dirty = false
	}
	for _, s := range d.tree.Sections() {
		s.HeaderDirty = false
		s.FooterDirty = false
	}
}

// applyPatch overwrites lines by number, padding with empty lines past the
// end.
func applyPatch(lines []string, repl map[int]string) []string {
	res := slices.Clone(lines)
	for _, n := range slices.Sorted(maps.Keys(repl)) {
		if n < 1 {
			continue
		}
		for len(res) < n {
			res = append(res, "")
		}
		res[n-1] = repl[n]
	}
	return res
}
