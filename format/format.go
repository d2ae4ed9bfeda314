package format

import (
	"errors"
	"fmt"
	"slices"
)

type Format int

const (
	DCLFormat Format = iota
	JSONFormat
	YAMLFormat
	TOMLFormat
)

var ErrBadFormat = errors.New("bad format")

type info struct {
	name    string
	aliases []string
}

// indexed by Format
var formats = []info{
	{name: "dcl", aliases: []string{"d"}},
	{name: "json", aliases: []string{"j"}},
	{name: "yaml", aliases: []string{"y", "yml"}},
	{name: "toml", aliases: []string{"t"}},
}

// ParseFormat accepts a format name or one of its short aliases.
func ParseFormat(v string) (Format, error) {
	for i, fi := range formats {
		if v == fi.name || slices.Contains(fi.aliases, v) {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) valid() bool {
	return f >= 0 && int(f) < len(formats)
}

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formats[f].name
}

func (f Format) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(formats[f].name), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Suffix is the file extension, dot included, "" for an unknown format.
func (f Format) Suffix() string {
	if !f.valid() {
		return ""
	}
	return "." + formats[f].name
}

func AllFormats() []Format {
	res := make([]Format, len(formats))
	for i := range formats {
		res[i] = Format(i)
	}
	return res
}
