package ir

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

type Value struct {
	Kind Kind

	String  string
	Bool    bool
	Int     int64
	Float   float64
	Strings []string
	Ints    []int64

	// Line is the 1-based source line, 0 if the value was never positioned.
	Line int
	// End is the closing line of a list value, 0 for scalars.
	End   int
	Dirty bool
}

func FromString(v string) *Value {
	return &Value{Kind: StringKind, String: v}
}

func FromBool(v bool) *Value {
	return &Value{Kind: BoolKind, Bool: v}
}

func FromInt(v int64) *Value {
	return &Value{Kind: IntKind, Int: v}
}

func FromFloat(f float64) *Value {
	return &Value{Kind: FloatKind, Float: f}
}

func FromStrings(vs []string) *Value {
	return &Value{Kind: StringListKind, Strings: slices.Clone(vs)}
}

func FromInts(vs []int64) *Value {
	return &Value{Kind: IntListKind, Ints: slices.Clone(vs)}
}

// FromAny builds an unpositioned value from a Go value.
func FromAny(v any) (*Value, error) {
	res := &Value{}
	if err := res.set(v); err != nil {
		return nil, err
	}
	return res, nil
}

func (v *Value) AtLine(line int) *Value {
	v.Line = line
	return v
}

// Assign replaces the payload and kind of v and marks it dirty.  On error v is
// left untouched.
func (v *Value) Assign(x any) error {
	tmp := &Value{}
	if err := tmp.set(x); err != nil {
		return err
	}
	v.setPayload(tmp)
	v.Dirty = true
	return nil
}

func (v *Value) setPayload(src *Value) {
	v.Kind = src.Kind
	v.String = src.String
	v.Bool = src.Bool
	v.Int = src.Int
	v.Float = src.Float
	v.Strings = src.Strings
	v.Ints = src.Ints
}

func (v *Value) set(x any) error {
	switch t := x.(type) {
	case string:
		v.Kind, v.String = StringKind, t
	case bool:
		v.Kind, v.Bool = BoolKind, t
	case int:
		v.Kind, v.Int = IntKind, int64(t)
	case int8:
		v.Kind, v.Int = IntKind, int64(t)
	case int16:
		v.Kind, v.Int = IntKind, int64(t)
	case int32:
		v.Kind, v.Int = IntKind, int64(t)
	case int64:
		v.Kind, v.Int = IntKind, t
	case uint:
		return v.setUint(uint64(t))
	case uint8:
		return v.setUint(uint64(t))
	case uint16:
		return v.setUint(uint64(t))
	case uint32:
		return v.setUint(uint64(t))
	case uint64:
		return v.setUint(t)
	case float32:
		return v.setFloat(float64(t))
	case float64:
		return v.setFloat(t)
	case []string:
		v.Kind, v.Strings = StringListKind, slices.Clone(t)
	case []int64:
		v.Kind, v.Ints = IntListKind, slices.Clone(t)
	case []int:
		ints := make([]int64, len(t))
		for i, n := range t {
			ints[i] = int64(n)
		}
		v.Kind, v.Ints = IntListKind, ints
	case *Value:
		if t == nil {
			return fmt.Errorf("%w: nil *ir.Value", ErrUnsupportedType)
		}
		c := t.Clone()
		v.setPayload(c)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, x)
	}
	return nil
}

func (v *Value) setUint(u uint64) error {
	if u > math.MaxInt64 {
		return fmt.Errorf("%w: %d overflows int64", ErrUnsupportedType, u)
	}
	v.Kind, v.Int = IntKind, int64(u)
	return nil
}

func (v *Value) setFloat(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %v has no base-10 form", ErrUnsupportedType, f)
	}
	v.Kind, v.Float = FloatKind, f
	return nil
}

func (v *Value) Clone() *Value {
	res := *v
	res.Strings = slices.Clone(v.Strings)
	res.Ints = slices.Clone(v.Ints)
	return &res
}

// Last returns the last line occupied by v.
func (v *Value) Last() int {
	return max(v.Line, v.End)
}

func (v *Value) AsString() (string, bool) {
	if v == nil || v.Kind != StringKind {
		return "", false
	}
	return v.String, true
}

func (v *Value) AsBool() (bool, bool) {
	if v == nil || v.Kind != BoolKind {
		return false, false
	}
	return v.Bool, true
}

func (v *Value) AsInt() (int64, bool) {
	if v == nil || v.Kind != IntKind {
		return 0, false
	}
	return v.Int, true
}

func (v *Value) AsFloat() (float64, bool) {
	if v == nil || v.Kind != FloatKind {
		return 0, false
	}
	return v.Float, true
}

func (v *Value) AsStrings() ([]string, bool) {
	if v == nil || v.Kind != StringListKind {
		return nil, false
	}
	return slices.Clone(v.Strings), true
}

func (v *Value) AsInts() ([]int64, bool) {
	if v == nil || v.Kind != IntListKind {
		return nil, false
	}
	return slices.Clone(v.Ints), true
}

// Any returns the payload as a plain Go value.
func (v *Value) Any() any {
	switch v.Kind {
	case StringKind:
		return v.String
	case BoolKind:
		return v.Bool
	case IntKind:
		return v.Int
	case FloatKind:
		return v.Float
	case StringListKind:
		return slices.Clone(v.Strings)
	case IntListKind:
		return slices.Clone(v.Ints)
	}
	return nil
}

// Text returns the textual form of v as used by interpolation and the debug
// dump: strings are unquoted and lists are rendered as "[a, b]".
func (v *Value) Text() string {
	switch v.Kind {
	case StringKind:
		return v.String
	case BoolKind:
		return strconv.FormatBool(v.Bool)
	case IntKind:
		return strconv.FormatInt(v.Int, 10)
	case FloatKind:
		return FormatFloat(v.Float)
	case StringListKind:
		return "[" + strings.Join(v.Strings, ", ") + "]"
	case IntListKind:
		parts := make([]string, len(v.Ints))
		for i, n := range v.Ints {
			parts[i] = strconv.FormatInt(n, 10)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return ""
}

func (v *Value) Equal(o *Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case StringKind:
		return v.String == o.String
	case BoolKind:
		return v.Bool == o.Bool
	case IntKind:
		return v.Int == o.Int
	case FloatKind:
		return v.Float == o.Float
	case StringListKind:
		return slices.Equal(v.Strings, o.Strings)
	case IntListKind:
		return slices.Equal(v.Ints, o.Ints)
	}
	return false
}

// FormatFloat renders f so that it parses back as a double and never as an
// integer: the result always carries a decimal point or an exponent.
func FormatFloat(f float64) string {
	abs := math.Abs(f)
	verb := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		verb = 'e'
	}
	s := strconv.FormatFloat(f, verb, -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
