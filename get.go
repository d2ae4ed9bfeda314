package dcl

import (
	"github.com/matthewpi/dcl/gomap"
	"github.com/matthewpi/dcl/ir"
)

// Scalar lists the Go types a DCL value is read as.
type Scalar interface {
	string | bool | int64 | float64 | []string | []int64
}

// Get returns the value at key as a T.  A missing key and a value of another
// type both report false.
func Get[T Scalar](d *Document, key string) (T, bool) {
	var zero T
	v, ok := d.tree.Lookup(key)
	if !ok {
		return zero, false
	}
	x, ok := v.Any().(T)
	if !ok {
		return zero, false
	}
	return x, true
}

func (d *Document) GetString(key string) (string, bool) {
	return Get[string](d, key)
}

func (d *Document) GetBool(key string) (bool, bool) {
	return Get[bool](d, key)
}

func (d *Document) GetInt(key string) (int64, bool) {
	return Get[int64](d, key)
}

func (d *Document) GetFloat(key string) (float64, bool) {
	return Get[float64](d, key)
}

func (d *Document) GetStringList(key string) ([]string, bool) {
	return Get[[]string](d, key)
}

func (d *Document) GetIntList(key string) ([]int64, bool) {
	return Get[[]int64](d, key)
}

// GetValue returns the value at key whatever its kind.
func (d *Document) GetValue(key string) (*ir.Value, bool) {
	return d.tree.Lookup(key)
}

func (d *Document) GetSection(key string) (*ir.Section, bool) {
	return d.tree.Section(key)
}

// Decode fills the struct v points to, see package gomap.
func (d *Document) Decode(v any) error {
	return gomap.FromTree(d.tree, v)
}
