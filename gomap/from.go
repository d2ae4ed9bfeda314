package gomap

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/matthewpi/dcl/ir"
)

// Unmarshaler is implemented by types decoding a single DCL value
// themselves.
type Unmarshaler interface {
	UnmarshalDCL(*ir.Value) error
}

var unmarshalerType = reflect.TypeFor[Unmarshaler]()

// FromTree fills the struct v points to from the root of t.
func FromTree(t *ir.Tree, v any) error {
	return FromSection(t, nil, v)
}

// FromSection fills the struct v points to from the section at p.
func FromSection(t *ir.Tree, p ir.Path, v any) error {
	val := reflect.ValueOf(v)
	if v == nil || val.Kind() != reflect.Pointer || val.IsNil() || val.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w, got %T", ErrDestination, v)
	}
	sec, ok := t.SectionAt(p)
	if !ok {
		return &UnmarshalError{Key: p.String(), Message: "no such section"}
	}
	return fromSection(t, sec, val.Elem())
}

func fieldName(f reflect.StructField) (string, bool) {
	tag, ok := f.Tag.Lookup("dcl")
	if !ok {
		return f.Name, true
	}
	name, _, _ := strings.Cut(tag, ",")
	switch name {
	case "-":
		return "", false
	case "":
		return f.Name, true
	}
	return name, true
}

func isSection(ty reflect.Type) bool {
	if ty.Kind() == reflect.Pointer {
		ty = ty.Elem()
	}
	return ty.Kind() == reflect.Struct && !reflect.PointerTo(ty).Implements(unmarshalerType)
}

func fromSection(t *ir.Tree, sec *ir.Section, val reflect.Value) error {
	ty := val.Type()
	for i := range ty.NumField() {
		f := ty.Field(i)
		if !f.IsExported() {
			continue
		}
		name, ok := fieldName(f)
		if !ok {
			continue
		}
		fv := val.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			if err := fromSection(t, sec, fv); err != nil {
				return err
			}
			continue
		}
		if isSection(f.Type) {
			child, ok := t.SectionAt(sec.Path.Child(name))
			if !ok {
				continue
			}
			if f.Type.Kind() == reflect.Pointer {
				if fv.IsNil() {
					fv.Set(reflect.New(f.Type.Elem()))
				}
				fv = fv.Elem()
			}
			if err := fromSection(t, child, fv); err != nil {
				return err
			}
			continue
		}
		v, ok := sec.Get(name)
		if !ok {
			continue
		}
		if err := fromValue(v, fv, sec.Path.Child(name).String()); err != nil {
			return err
		}
	}
	return nil
}

func fromValue(v *ir.Value, fv reflect.Value, key string) error {
	if fv.CanAddr() && fv.Addr().Type().Implements(unmarshalerType) {
		if err := fv.Addr().Interface().(Unmarshaler).UnmarshalDCL(v.Clone()); err != nil {
			return &UnmarshalError{Key: key, Message: err.Error(), Err: err}
		}
		return nil
	}
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}
		fv = fv.Elem()
	}
	mismatch := func() error {
		return &UnmarshalError{Key: key, Message: fmt.Sprintf("cannot fill %s from %s", fv.Type(), v.Kind)}
	}
	switch fv.Kind() {
	case reflect.String:
		if v.Kind != ir.StringKind {
			return mismatch()
		}
		fv.SetString(v.String)
	case reflect.Bool:
		if v.Kind != ir.BoolKind {
			return mismatch()
		}
		fv.SetBool(v.Bool)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Kind != ir.IntKind {
			return mismatch()
		}
		if fv.OverflowInt(v.Int) {
			return &UnmarshalError{Key: key, Message: fmt.Sprintf("value %d overflows %s", v.Int, fv.Type())}
		}
		fv.SetInt(v.Int)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Kind != ir.IntKind {
			return mismatch()
		}
		if v.Int < 0 || fv.OverflowUint(uint64(v.Int)) {
			return &UnmarshalError{Key: key, Message: fmt.Sprintf("value %d overflows %s", v.Int, fv.Type())}
		}
		fv.SetUint(uint64(v.Int))
	case reflect.Float32, reflect.Float64:
		var f float64
		switch v.Kind {
		case ir.FloatKind:
			f = v.Float
		case ir.IntKind:
			f = float64(v.Int)
		default:
			return mismatch()
		}
		if fv.Kind() == reflect.Float32 && math.Abs(f) > math.MaxFloat32 {
			return &UnmarshalError{Key: key, Message: fmt.Sprintf("value %v overflows float32", f)}
		}
		fv.SetFloat(f)
	case reflect.Slice:
		return fromList(v, fv, key, mismatch)
	case reflect.Interface:
		if fv.NumMethod() != 0 {
			return mismatch()
		}
		fv.Set(reflect.ValueOf(v.Any()))
	default:
		return mismatch()
	}
	return nil
}

func fromList(v *ir.Value, fv reflect.Value, key string, mismatch func() error) error {
	el := fv.Type().Elem()
	switch {
	case el.Kind() == reflect.String && v.Kind == ir.StringListKind:
		res := reflect.MakeSlice(fv.Type(), len(v.Strings), len(v.Strings))
		for i, s := range v.Strings {
			res.Index(i).SetString(s)
		}
		fv.Set(res)
	case el.Kind() >= reflect.Int && el.Kind() <= reflect.Int64 && v.Kind == ir.IntListKind:
		res := reflect.MakeSlice(fv.Type(), len(v.Ints), len(v.Ints))
		for i, n := range v.Ints {
			if res.Index(i).OverflowInt(n) {
				return &UnmarshalError{Key: fmt.Sprintf("%s[%d]", key, i), Message: fmt.Sprintf("value %d overflows %s", n, el)}
			}
			res.Index(i).SetInt(n)
		}
		fv.Set(res)
	default:
		return mismatch()
	}
	return nil
}
