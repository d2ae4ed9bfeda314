package workdir

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"config.dcl", true},
		{"CONFIG.DCL", true},
		{"dir/x.dcl", true},
		{".dcl", false},
		{"config.yaml", false},
		{"config", false},
		{"config.dcl.bak", false},
	}
	for _, tt := range tests {
		if got := Valid(tt.name); got != tt.want {
			t.Errorf("Valid(%q) = %v", tt.name, got)
		}
	}
}

func TestResolveStaysInRoot(t *testing.T) {
	root := t.TempDir()
	d := &Dir{Root: root}
	p, err := d.Resolve("../../etc/x.dcl")
	if err != nil {
		t.Fatal(err)
	}
	if p != filepath.Join(root, "etc", "x.dcl") {
		t.Errorf("got %s", p)
	}
	if _, err := d.Resolve("x.txt"); !errors.Is(err, ErrInvalidFile) {
		t.Errorf("err = %v", err)
	}
}

func TestEnsure(t *testing.T) {
	root := t.TempDir()
	d := &Dir{
		Root:     root,
		Template: fstest.MapFS{"config.dcl": {Data: []byte("a: 1\n")}},
	}
	p, created, err := d.Ensure("sub/config.dcl")
	if err != nil {
		t.Fatal(err)
	}
	if !created {
		t.Error("expected the file to be created")
	}
	data, err := os.ReadFile(p)
	if err != nil || string(data) != "a: 1\n" {
		t.Fatalf("read %q, %v", data, err)
	}
	if err := os.WriteFile(p, []byte("a: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, created, err = d.Ensure("sub/config.dcl"); err != nil || created {
		t.Errorf("second Ensure created=%v err=%v", created, err)
	}
	if data, _ := os.ReadFile(p); string(data) != "a: 2\n" {
		t.Error("existing file overwritten")
	}
	if _, _, err := d.Ensure("other.dcl"); !errors.Is(err, ErrTemplate) {
		t.Errorf("err = %v", err)
	}
}

func TestSibling(t *testing.T) {
	if got := Sibling("/x/config.dcl"); got != "/x/config.updated.dcl" {
		t.Errorf("got %s", got)
	}
}

func TestWriteFileKeepsMode(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a.dcl")
	if err := os.WriteFile(p, []byte("old"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(p, []byte("new")); err != nil {
		t.Fatal(err)
	}
	st, err := os.Stat(p)
	if err != nil {
		t.Fatal(err)
	}
	if st.Mode().Perm() != 0600 {
		t.Errorf("mode %v", st.Mode())
	}
	entries, _ := os.ReadDir(filepath.Dir(p))
	if len(entries) != 1 {
		t.Errorf("temporary file left behind: %v", entries)
	}
}
