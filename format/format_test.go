package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %v, %v", f, got, err)
		}
		if f.Suffix() != "."+f.String() {
			t.Errorf("%s suffix %q", f, f.Suffix())
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("err = %v", err)
	}
	var f Format
	if err := f.UnmarshalText([]byte("yml")); err != nil || f != YAMLFormat {
		t.Errorf("UnmarshalText(yml) = %v, %v", f, err)
	}
}
