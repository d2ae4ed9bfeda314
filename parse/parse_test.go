package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matthewpi/dcl/ir"
)

func mustParse(t *testing.T, src string, opts ...ParseOption) *ir.Tree {
	t.Helper()
	tree, err := Parse([]byte(src), opts...)
	if err != nil {
		t.Fatal(err)
	}
	return tree
}

func TestTypePrecedence(t *testing.T) {
	src := strings.Join([]string{
		`a: "42"`,
		`b: true`,
		`c: 42`,
		`d: 4.2`,
		`e: hello world`,
		`f: "true"`,
		`g: TRUE`,
		`h: 1e3`,
	}, "\n")
	tree := mustParse(t, src)
	tests := []struct {
		key  string
		kind ir.Kind
		text string
	}{
		{"a", ir.StringKind, "42"},
		{"b", ir.BoolKind, "true"},
		{"c", ir.IntKind, "42"},
		{"d", ir.FloatKind, "4.2"},
		{"e", ir.StringKind, "hello world"},
		{"f", ir.StringKind, "true"},
		{"g", ir.StringKind, "TRUE"},
		{"h", ir.FloatKind, "1000.0"},
	}
	for i, tt := range tests {
		v, ok := tree.Lookup(tt.key)
		if !ok {
			t.Errorf("%s missing", tt.key)
			continue
		}
		if v.Kind != tt.kind || v.Text() != tt.text {
			t.Errorf("%s = %s %q, want %s %q", tt.key, v.Kind, v.Text(), tt.kind, tt.text)
		}
		if v.Line != i+1 {
			t.Errorf("%s on line %d, want %d", tt.key, v.Line, i+1)
		}
	}
}

func TestSections(t *testing.T) {
	src := `top: 1

server {
    host: "localhost"
    tls {
        cert: /etc/cert
    }
    port: 80
}

db {
    tls {
        cert: other
    }
}
`
	tree := mustParse(t, src)
	type span struct {
		Key        string
		Start, End int
		Keys       []string
	}
	var got []span
	for _, s := range tree.Sections() {
		got = append(got, span{s.Key(), s.Start, s.End, s.Keys()})
	}
	want := []span{
		{"server", 3, 9, []string{"host", "port"}},
		{"server.tls", 5, 7, []string{"cert"}},
		{"db", 11, 15, nil},
		{"db.tls", 12, 14, []string{"cert"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sections (-want +got):\n%s", diff)
	}
	if tree.Lines != 15 {
		t.Errorf("lines = %d", tree.Lines)
	}
	a, _ := tree.Lookup("server.tls.cert")
	b, _ := tree.Lookup("db.tls.cert")
	if a.String != "/etc/cert" || b.String != "other" {
		t.Errorf("got %q and %q", a.String, b.String)
	}
	if s, _ := tree.Section("server.tls"); s.Name() != "tls" || s.Depth() != 1 {
		t.Errorf("server.tls name %q depth %d", s.Name(), s.Depth())
	}
}

func TestReopenedSectionIsShared(t *testing.T) {
	tree := mustParse(t, "a {\n    x: 1\n}\na {\n    y: 2\n}\n")
	if n := len(tree.Sections()); n != 1 {
		t.Fatalf("%d sections", n)
	}
	s, _ := tree.Section("a")
	if diff := cmp.Diff([]string{"x", "y"}, s.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if s.Start != 1 {
		t.Errorf("start moved to %d", s.Start)
	}
}

// A closing brace returns to the section whose brace is open, not to the
// dotted parent of the section it closes.
func TestCloseFollowsBraces(t *testing.T) {
	tree := mustParse(t, "a {\n}\na.b {\n    x: 1\n}\ny: 2\n")
	if _, ok := tree.Root.Get("y"); !ok {
		t.Errorf("y not in root, root keys %v", tree.Root.Keys())
	}
	a, _ := tree.Section("a")
	if a.Len() != 0 || a.End != 2 {
		t.Errorf("a has %v, end %d", a.Keys(), a.End)
	}
	ab, ok := tree.Section("a.b")
	if !ok || ab.Start != 3 || ab.End != 5 {
		t.Fatalf("a.b = %+v, %v", ab, ok)
	}
	if tree.Parent(ab) != a {
		t.Errorf("a.b parent is %q", tree.Parent(ab).Key())
	}
}

func TestReassignOverwrites(t *testing.T) {
	tree := mustParse(t, "a: 1\nb: 2\na: x\n")
	if diff := cmp.Diff([]string{"a", "b"}, tree.Root.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	v, _ := tree.Lookup("a")
	if v.Kind != ir.StringKind || v.Line != 3 {
		t.Errorf("a = %s on %d", v.Kind, v.Line)
	}
	if tree.Root.Tail() != v {
		t.Error("tail should be the value on the last line")
	}
}

func TestLists(t *testing.T) {
	src := `names [s
    - alice
    - "bob smith"

    // comment
s]
ports [i
    - 80
    - http
    - 443
i]
after: 1
`
	var diags []Diagnostic
	tree := mustParse(t, src, Diagnostics(&diags))
	names, _ := tree.Lookup("names")
	if diff := cmp.Diff([]string{"alice", "bob smith"}, names.Strings); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
	if names.Line != 1 || names.End != 6 {
		t.Errorf("names span %d-%d", names.Line, names.End)
	}
	ports, _ := tree.Lookup("ports")
	if diff := cmp.Diff([]int64{80, 443}, ports.Ints); diff != "" {
		t.Errorf("ports (-want +got):\n%s", diff)
	}
	if ports.Line != 7 || ports.End != 11 {
		t.Errorf("ports span %d-%d", ports.Line, ports.End)
	}
	if len(diags) != 1 || diags[0].Line != 9 {
		t.Errorf("diagnostics: %+v", diags)
	}
	if tail := tree.Root.Tail(); tail.Line != 12 {
		t.Errorf("tail on line %d", tail.Line)
	}
}

func TestUnclosedList(t *testing.T) {
	var diags []Diagnostic
	tree := mustParse(t, "l [s\n- a\nx: 1\n", Diagnostics(&diags))
	l, ok := tree.Lookup("l")
	if !ok || len(l.Strings) != 1 || l.End != 2 {
		t.Errorf("list = %+v", l)
	}
	if x, ok := tree.Lookup("x"); !ok || x.Int != 1 {
		t.Error("line after an unclosed list should still be parsed")
	}
	if len(diags) != 1 || diags[0].Line != 1 {
		t.Errorf("diagnostics: %+v", diags)
	}
}

func TestInterpolation(t *testing.T) {
	src := `host: example.com
port: 8080
server {
    url: "http://${host}:${port}/"
    missing: a${nope}b
    count: ${port}
}
`
	tree := mustParse(t, src)
	tests := []struct {
		key  string
		kind ir.Kind
		text string
	}{
		{"server.url", ir.StringKind, "http://example.com:8080/"},
		{"server.missing", ir.StringKind, "ab"},
		{"server.count", ir.IntKind, "8080"},
	}
	for _, tt := range tests {
		v, _ := tree.Lookup(tt.key)
		if v.Kind != tt.kind || v.Text() != tt.text {
			t.Errorf("%s = %s %q", tt.key, v.Kind, v.Text())
		}
	}

	tree = mustParse(t, src, NoInterpolate())
	if v, _ := tree.Lookup("server.count"); v.String != "${port}" {
		t.Errorf("NoInterpolate expanded to %q", v.Text())
	}
}

func TestUnicodeEscapes(t *testing.T) {
	tree := mustParse(t, `a: caf\u00e9
b: "\u0041\u0042"
c: \u0034\u0032
d: "\u005cu0041"
`)
	tests := []struct {
		key  string
		kind ir.Kind
		text string
	}{
		{"a", ir.StringKind, "caf\u00e9"},
		{"b", ir.StringKind, "AB"},
		{"c", ir.IntKind, "42"},
		{"d", ir.StringKind, `\u0041`},
	}
	for _, tt := range tests {
		v, _ := tree.Lookup(tt.key)
		if v.Kind != tt.kind || v.Text() != tt.text {
			t.Errorf("%s = %s %q", tt.key, v.Kind, v.Text())
		}
	}
}

func TestDiagnostics(t *testing.T) {
	src := `ok: 1
bad:1
}
s]
just words
x {
`
	var diags []Diagnostic
	tree := mustParse(t, src, Diagnostics(&diags))
	var lines []int
	for _, d := range diags {
		lines = append(lines, d.Line)
	}
	if diff := cmp.Diff([]int{2, 3, 4, 5, 6}, lines); diff != "" {
		t.Errorf("diagnostic lines (-want +got):\n%s", diff)
	}
	if v, ok := tree.Lookup("ok"); !ok || v.Int != 1 {
		t.Error("good line lost")
	}
	if tree.Root.Len() != 1 {
		t.Errorf("malformed lines produced values: %v", tree.Root.Keys())
	}
}

func TestStrict(t *testing.T) {
	_, err := Parse([]byte("a: 1\nb:2\n"), Strict())
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v", err)
	}
	var d *Diagnostic
	if !errors.As(err, &d) || d.Line != 2 {
		t.Errorf("diagnostic = %+v", d)
	}
	if _, err := Parse([]byte("a: 1\n"), Strict()); err != nil {
		t.Error(err)
	}
}

func TestCRLF(t *testing.T) {
	tree := mustParse(t, "a {\r\n    b: 1\r\n}\r\n")
	s, ok := tree.Section("a")
	if !ok || s.End != 3 {
		t.Fatalf("section = %+v", s)
	}
	if v, _ := tree.Lookup("a.b"); v.Int != 1 {
		t.Errorf("a.b = %v", v.Text())
	}
}

func TestInterpolate(t *testing.T) {
	lookup := func(k string) (*ir.Value, bool) {
		if k == "x" {
			return ir.FromString("${x}"), true
		}
		return nil, false
	}
	got, unresolved := Interpolate("a${x}b${y}c${", lookup)
	if got != "a${x}bc${" {
		t.Errorf("got %q", got)
	}
	if diff := cmp.Diff([]string{"y"}, unresolved); diff != "" {
		t.Errorf("unresolved (-want +got):\n%s", diff)
	}
}
