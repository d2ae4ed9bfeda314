package dcl

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matthewpi/dcl/ir"
	"github.com/tidwall/gjson"
)

func TestJSON(t *testing.T) {
	d := mustLoad(t, setSample)
	j, err := d.JSON()
	if err != nil {
		t.Fatal(err)
	}
	if got := gjson.GetBytes(j, "second.inner.z").Int(); got != 3 {
		t.Errorf("second.inner.z = %d in %s", got, j)
	}
}

func TestApplyMergePatch(t *testing.T) {
	d := mustLoad(t, setSample)
	err := d.ApplyPatch([]byte(`{"a": 1, "first": {"x": 5, "new": "n"}, "second": {"inner": {"z": 2.5}}}`))
	if err != nil {
		t.Fatal(err)
	}
	if x, _ := d.GetInt("first.x"); x != 5 {
		t.Errorf("first.x = %d", x)
	}
	if s, _ := d.GetString("first.new"); s != "n" {
		t.Errorf("first.new = %q", s)
	}
	if f, _ := d.GetFloat("second.inner.z"); f != 2.5 {
		t.Errorf("second.inner.z = %v", f)
	}
	a, _ := d.GetValue("a")
	if a.Dirty {
		t.Error("unchanged value marked dirty")
	}
}

func TestApplyJSONPatch(t *testing.T) {
	d := mustLoad(t, setSample)
	err := d.ApplyPatch([]byte(`[
		{"op": "replace", "path": "/second/w", "value": "four"},
		{"op": "add", "path": "/tags", "value": "t"}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := d.GetString("second.w"); s != "four" {
		t.Errorf("second.w = %q", s)
	}
	v, ok := d.GetValue("tags")
	if !ok || v.Line != 2 {
		t.Errorf("tags = %+v", v)
	}
}

func TestApplyPatchRefused(t *testing.T) {
	tests := []struct {
		name  string
		patch string
		err   error
	}{
		{"remove", `[{"op": "remove", "path": "/a"}]`, ErrPatch},
		{"null", `{"a": null}`, ErrPatch},
		{"section to value", `{"first": 1}`, ErrPatch},
		{"value to section", `{"a": 1, "first": {"x": {"y": 1}}}`, ErrPatch},
		{"new section", `{"a": 2, "third": {"k": 1}}`, ErrNoSection},
		{"new list", `{"a": 2, "l": [1, 2]}`, ir.ErrUnsupportedType},
		{"scalar to list", `{"a": 2, "first": {"x": [1, 2]}}`, ir.ErrUnsupportedType},
		{"mixed list", `{"a": 2, "first": {"x": [1, "a"]}}`, ErrPatch},
		{"bad json", `{"a": `, ErrPatch},
		{"scalar", `3`, ErrPatch},
		{"failed test op", `[{"op": "test", "path": "/a", "value": 9}]`, ErrPatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mustLoad(t, setSample)
			before := lineMap(d)
			err := d.ApplyPatch([]byte(tt.patch))
			if !errors.Is(err, tt.err) {
				t.Fatalf("err = %v, want %v", err, tt.err)
			}
			if d.Dirty() {
				t.Errorf("patch left changes: %v", d.Patch())
			}
			if diff := cmp.Diff(before, lineMap(d)); diff != "" {
				t.Errorf("lines moved:\n%s", diff)
			}
		})
	}
}
