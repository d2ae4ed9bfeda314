package dcl

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/matthewpi/dcl/encode"
	"github.com/matthewpi/dcl/ir"
	"github.com/tidwall/gjson"
)

// JSON returns the document as a JSON object, sections as nested objects.
func (d *Document) JSON() ([]byte, error) {
	return encode.JSON(d.tree)
}

// ApplyPatch applies a JSON patch to the JSON view of the document and
// replays the changed leaves through Set.  An object is a merge patch
// (RFC 7386), an array a JSON Patch (RFC 6902).  Removing keys and changing
// the kind of a section are refused, and nothing is changed unless the
// whole patch can be replayed.
func (d *Document) ApplyPatch(patch []byte) error {
	doc, err := d.JSON()
	if err != nil {
		return err
	}
	var out []byte
	switch trimmed := bytes.TrimSpace(patch); {
	case len(trimmed) > 0 && trimmed[0] == '[':
		ops, err := jsonpatch.DecodePatch(trimmed)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrPatch, err)
		}
		if out, err = ops.Apply(doc); err != nil {
			return fmt.Errorf("%w: %w", ErrPatch, err)
		}
	case len(trimmed) > 0 && trimmed[0] == '{':
		if out, err = jsonpatch.MergePatch(doc, trimmed); err != nil {
			return fmt.Errorf("%w: %w", ErrPatch, err)
		}
	default:
		return fmt.Errorf("%w: expected a JSON object or array", ErrPatch)
	}
	if !gjson.ValidBytes(out) {
		return fmt.Errorf("%w: patch produced invalid JSON", ErrPatch)
	}
	changes, err := d.patchChanges(gjson.ParseBytes(doc), gjson.ParseBytes(out))
	if err != nil {
		return err
	}
	for _, c := range changes {
		if err := d.SetIn(c.path, c.name, c.value); err != nil {
			return err
		}
	}
	return nil
}

type change struct {
	path  ir.Path
	name  string
	value any
}

// patchChanges lists the leaves of to that differ from from, checked
// against the document before anything is applied.
func (d *Document) patchChanges(from, to gjson.Result) ([]change, error) {
	var res []change
	if err := missing(from, to, nil); err != nil {
		return nil, err
	}
	err := walk(to, nil, func(p ir.Path, name string, leaf gjson.Result) error {
		v, err := fromJSON(leaf)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrPatch, p.Child(name), err)
		}
		sec, ok := d.tree.SectionAt(p)
		if !ok {
			return fmt.Errorf("%w: %q", ErrNoSection, p)
		}
		if cur, ok := sec.Get(name); ok {
			nv, err := ir.FromAny(v)
			if err != nil {
				return err
			}
			if cur.Equal(nv) {
				return nil
			}
			if err := checkShape(p.Child(name).String(), cur, nv); err != nil {
				return err
			}
		} else if _, isList := v.([]string); isList {
			return fmt.Errorf("%w: cannot insert list %q", ir.ErrUnsupportedType, p.Child(name))
		} else if _, isList := v.([]int64); isList {
			return fmt.Errorf("%w: cannot insert list %q", ir.ErrUnsupportedType, p.Child(name))
		}
		res = append(res, change{path: p, name: name, value: v})
		return nil
	})
	return res, err
}

func walk(obj gjson.Result, p ir.Path, fn func(ir.Path, string, gjson.Result) error) error {
	var err error
	obj.ForEach(func(k, v gjson.Result) bool {
		if v.IsObject() {
			err = walk(v, p.Child(k.String()), fn)
		} else {
			err = fn(p, k.String(), v)
		}
		return err == nil
	})
	return err
}

// missing fails on any key of from that is absent from to, or that turned
// from a section into a value or back.
func missing(from, to gjson.Result, p ir.Path) error {
	var err error
	from.ForEach(func(k, v gjson.Result) bool {
		key := k.String()
		other := to.Get(gjson.Escape(key))
		switch {
		case !other.Exists():
			err = fmt.Errorf("%w: cannot remove %q", ErrPatch, p.Child(key))
		case v.IsObject() != other.IsObject():
			err = fmt.Errorf("%w: %q changes between section and value", ErrPatch, p.Child(key))
		case v.IsObject():
			err = missing(v, other, p.Child(key))
		}
		return err == nil
	})
	return err
}

func fromJSON(r gjson.Result) (any, error) {
	switch r.Type {
	case gjson.String:
		return r.Str, nil
	case gjson.True:
		return true, nil
	case gjson.False:
		return false, nil
	case gjson.Number:
		return number(r.Raw)
	case gjson.Null:
		return nil, fmt.Errorf("null has no DCL form")
	}
	if !r.IsArray() {
		return nil, fmt.Errorf("unsupported JSON %s", r.Raw)
	}
	var (
		strs []string
		ints []int64
		err  error
	)
	r.ForEach(func(_, item gjson.Result) bool {
		switch item.Type {
		case gjson.String:
			strs = append(strs, item.Str)
		case gjson.Number:
			var n any
			if n, err = number(item.Raw); err == nil {
				i, ok := n.(int64)
				if !ok {
					err = fmt.Errorf("list member %s is not an integer", item.Raw)
				}
				ints = append(ints, i)
			}
		default:
			err = fmt.Errorf("list member %s is neither a string nor an integer", item.Raw)
		}
		return err == nil
	})
	switch {
	case err != nil:
		return nil, err
	case strs != nil && ints != nil:
		return nil, fmt.Errorf("mixed list %s", r.Raw)
	case ints != nil:
		return ints, nil
	}
	if strs == nil {
		strs = []string{}
	}
	return strs, nil
}

func number(raw string) (any, error) {
	if !strings.ContainsAny(raw, ".eE") {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n, nil
		}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return f, nil
}
