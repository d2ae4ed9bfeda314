package workdir

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
)

const Ext = ".dcl"

var (
	ErrInvalidFile = errors.New("invalid dcl file")
	ErrTemplate    = errors.New("template not found")
)

// Dir is a working directory holding DCL files.
type Dir struct {
	Root string
	// Template supplies the initial content of missing files, looked up by
	// base name.  Nil means missing files are an error.
	Template fs.FS
}

// Valid reports whether name carries the .dcl extension, in any case, after
// a non-empty base.
func Valid(name string) bool {
	base := filepath.Base(name)
	i := strings.LastIndexByte(base, '.')
	return i > 0 && strings.EqualFold(base[i:], Ext)
}

// Resolve returns the path of name inside d.Root.  Paths escaping the root
// are clamped to it.
func (d *Dir) Resolve(name string) (string, error) {
	if !Valid(name) {
		return "", fmt.Errorf("%w: %q needs the %s extension", ErrInvalidFile, name, Ext)
	}
	root := d.Root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		root = wd
	}
	return securejoin.SecureJoin(root, name)
}

// Ensure resolves name and makes sure the file exists, creating its directory
// and copying the template when it does not.  It reports whether the file was
// created.
func (d *Dir) Ensure(name string) (string, bool, error) {
	path, err := d.Resolve(name)
	if err != nil {
		return "", false, err
	}
	st, err := os.Stat(path)
	if err == nil {
		if st.IsDir() {
			return "", false, fmt.Errorf("%w: %s is a directory", ErrInvalidFile, path)
		}
		return path, false, nil
	}
	if !os.IsNotExist(err) {
		return "", false, err
	}
	if d.Template == nil {
		return "", false, fmt.Errorf("%w: no template for %s", ErrTemplate, name)
	}
	if err := mkdir(filepath.Dir(path)); err != nil {
		return "", false, err
	}
	data, err := fs.ReadFile(d.Template, filepath.Base(path))
	if err != nil {
		return "", false, fmt.Errorf("%w: %s: %w", ErrTemplate, filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", false, err
	}
	return path, true, nil
}

func mkdir(dir string) error {
	st, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return os.MkdirAll(dir, 0755)
		}
		return err
	}
	if !st.IsDir() {
		return fmt.Errorf("%w: %s exists but is not a directory", ErrInvalidFile, dir)
	}
	return nil
}

// Sibling derives the default save target of path: "name.dcl" becomes
// "name.updated.dcl" in the same directory.
func Sibling(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".updated" + ext
}

// WriteFile replaces path with data through a temporary file in the same
// directory, keeping the mode of the file it replaces.
func WriteFile(path string, data []byte) error {
	mode := fs.FileMode(0644)
	if st, err := os.Stat(path); err == nil {
		mode = st.Mode().Perm()
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
