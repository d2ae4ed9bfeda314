package ir

import (
	"errors"
	"math"
	"testing"
)

func TestAssignReplacesKind(t *testing.T) {
	v := FromString("x").AtLine(3)
	if err := v.Assign(42); err != nil {
		t.Fatal(err)
	}
	if v.Kind != IntKind || v.Int != 42 {
		t.Errorf("got %s %d", v.Kind, v.Int)
	}
	if !v.Dirty {
		t.Error("expected dirty after Assign")
	}
	if v.Line != 3 {
		t.Errorf("Assign moved the value to line %d", v.Line)
	}
	if _, ok := v.AsString(); ok {
		t.Error("AsString on an integer should be absent")
	}
}

func TestAssignUnsupported(t *testing.T) {
	tests := []any{
		struct{}{},
		map[string]string{},
		uint64(math.MaxUint64),
		math.NaN(),
		math.Inf(1),
		(*Value)(nil),
	}
	for _, in := range tests {
		v := FromString("keep")
		err := v.Assign(in)
		if !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("Assign(%#v) err = %v", in, err)
		}
		if v.Kind != StringKind || v.String != "keep" || v.Dirty {
			t.Errorf("Assign(%#v) mutated the value: %+v", in, v)
		}
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		v    *Value
		want string
	}{
		{FromString("hello"), "hello"},
		{FromBool(true), "true"},
		{FromInt(-7), "-7"},
		{FromFloat(4.2), "4.2"},
		{FromFloat(3), "3.0"},
		{FromFloat(1e22), "1e+22"},
		{FromStrings([]string{"a", "b"}), "[a, b]"},
		{FromInts([]int64{1, 2, 3}), "[1, 2, 3]"},
		{FromStrings(nil), "[]"},
	}
	for _, tt := range tests {
		if got := tt.v.Text(); got != tt.want {
			t.Errorf("%s Text() = %q, want %q", tt.v.Kind, got, tt.want)
		}
	}
}

func TestAccessorsCopyLists(t *testing.T) {
	v := FromStrings([]string{"a"})
	got, ok := v.AsStrings()
	if !ok {
		t.Fatal("expected string list")
	}
	got[0] = "z"
	if v.Strings[0] != "a" {
		t.Error("AsStrings returned the backing slice")
	}
	if _, ok := v.AsInts(); ok {
		t.Error("AsInts on a string list should be absent")
	}
}

func TestFromAny(t *testing.T) {
	tests := []struct {
		in   any
		kind Kind
	}{
		{"s", StringKind},
		{false, BoolKind},
		{int8(1), IntKind},
		{uint32(1), IntKind},
		{float32(1.5), FloatKind},
		{[]int{1, 2}, IntListKind},
		{[]string{"a"}, StringListKind},
		{FromInt(1), IntKind},
	}
	for _, tt := range tests {
		v, err := FromAny(tt.in)
		if err != nil {
			t.Errorf("FromAny(%#v): %v", tt.in, err)
			continue
		}
		if v.Kind != tt.kind {
			t.Errorf("FromAny(%#v) kind = %s, want %s", tt.in, v.Kind, tt.kind)
		}
		if v.Dirty {
			t.Errorf("FromAny(%#v) is dirty", tt.in)
		}
	}
}
