package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"github.com/matthewpi/dcl/format"
	"github.com/matthewpi/dcl/ir"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Export writes t in format f.  Sections become nested objects keyed by path
// segment; a section replaces a scalar of the same name.
func Export(t *ir.Tree, w io.Writer, f format.Format, opts ...EncodeOption) error {
	switch f {
	case format.DCLFormat:
		return Encode(t, w, opts...)
	case format.JSONFormat:
		d, err := JSON(t)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case format.YAMLFormat:
		d, err := yaml.Marshal(nest(t).mapSlice())
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case format.TOMLFormat:
		return toml.NewEncoder(w).Encode(nest(t).mapAny())
	}
	return fmt.Errorf("%w: %d", format.ErrBadFormat, f)
}

// JSON returns t as an indented JSON object.
func JSON(t *ir.Tree) ([]byte, error) {
	d, err := nest(t).json([]byte("{}"), "")
	if err != nil {
		return nil, err
	}
	pretty := strings.TrimRight(gjson.GetBytes(d, "@pretty").Raw, "\n")
	return []byte(pretty + "\n"), nil
}

// JSONPath is the sjson/gjson path of the value at key inside section p.
func JSONPath(p ir.Path, key string) string {
	res := ""
	for _, seg := range p {
		res = joinPath(res, seg)
	}
	return joinPath(res, key)
}

func joinPath(prefix, seg string) string {
	// ':' keeps numeric segments from being read as array indexes
	seg = ":" + gjson.Escape(seg)
	if prefix == "" {
		return seg
	}
	return prefix + "." + seg
}

type node struct {
	keys []string
	vals map[string]any
}

func newNode() *node {
	return &node{vals: map[string]any{}}
}

func (n *node) put(k string, v any) {
	if _, ok := n.vals[k]; !ok {
		n.keys = append(n.keys, k)
	}
	n.vals[k] = v
}

func (n *node) child(k string) *node {
	if c, ok := n.vals[k].(*node); ok {
		return c
	}
	c := newNode()
	n.put(k, c)
	return c
}

func nest(t *ir.Tree) *node {
	root := newNode()
	for k, v := range t.Root.All() {
		root.put(k, v)
	}
	for _, s := range t.Sections() {
		n := root
		for _, seg := range s.Path {
			n = n.child(seg)
		}
		for k, v := range s.All() {
			if _, ok := n.vals[k].(*node); ok {
				continue
			}
			n.put(k, v)
		}
	}
	return root
}

func (n *node) json(d []byte, prefix string) ([]byte, error) {
	var err error
	for _, k := range n.keys {
		path := joinPath(prefix, k)
		switch x := n.vals[k].(type) {
		case *node:
			if d, err = sjson.SetRawBytes(d, path, []byte("{}")); err != nil {
				return nil, err
			}
			if d, err = x.json(d, path); err != nil {
				return nil, err
			}
		case *ir.Value:
			if x.Kind == ir.FloatKind {
				d, err = sjson.SetRawBytes(d, path, []byte(ir.FormatFloat(x.Float)))
			} else {
				d, err = sjson.SetBytes(d, path, x.Any())
			}
			if err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}

func (n *node) mapSlice() yaml.MapSlice {
	res := make(yaml.MapSlice, 0, len(n.keys))
	for _, k := range n.keys {
		switch x := n.vals[k].(type) {
		case *node:
			res = append(res, yaml.MapItem{Key: k, Value: x.mapSlice()})
		case *ir.Value:
			res = append(res, yaml.MapItem{Key: k, Value: x.Any()})
		}
	}
	return res
}

func (n *node) mapAny() map[string]any {
	res := make(map[string]any, len(n.keys))
	for _, k := range n.keys {
		switch x := n.vals[k].(type) {
		case *node:
			res[k] = x.mapAny()
		case *ir.Value:
			res[k] = x.Any()
		}
	}
	return res
}
