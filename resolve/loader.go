// Package resolve merges the modules imported by a Bril program into a
// single function namespace.
package resolve

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
)

// ErrNotFound is reported by loaders when the named module does not
// exist.
var ErrNotFound = errors.New("module not found")

// Loader fetches the text-format source of a named module. A missing
// module is reported by wrapping ErrNotFound.
type Loader interface {
	Load(name string) ([]byte, error)
}

// ModuleLoadError reports an import whose module could not be loaded.
// It is fatal to the resolution: no partial result is produced.
type ModuleLoadError struct {
	Name string
	Err  error
}

// Error implements the error interface.
func (e *ModuleLoadError) Error() string {
	return fmt.Sprintf("failed to load module %s: %v", e.Name, e.Err)
}

// Unwrap returns the underlying loader error.
func (e *ModuleLoadError) Unwrap() error {
	return e.Err
}

// FSLoader reads modules from <name>.bril files under a root directory.
type FSLoader struct {
	fs   afero.Fs
	root string
}

// NewFSLoader creates a loader over the given filesystem and root
// directory. A nil fs means the OS filesystem; an empty root means the
// current working directory.
func NewFSLoader(fs afero.Fs, root string) *FSLoader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if root == "" {
		root = "."
	}
	return &FSLoader{fs: fs, root: root}
}

// Load implements Loader.
func (l *FSLoader) Load(name string) ([]byte, error) {
	path := filepath.Join(l.root, name+".bril")
	data, err := afero.ReadFile(l.fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrapf(ErrNotFound, "%s", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return data, nil
}
