// File: propread/loader.go
package propread

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Loader locates and reads a named configuration resource. It is the
// injected collaborator behind Bind's single blocking load.
type Loader interface {
	Load(name string) ([]byte, error)
}

// FileLoader reads resources from the filesystem. Each search path is
// tried in order before the name itself is used as a path.
type FileLoader struct {
	Paths []string
}

// Load implements Loader. A resource present in no candidate location
// fails with ErrResourceNotFound wrapped with the name.
func (l FileLoader) Load(name string) ([]byte, error) {
	candidates := make([]string, 0, len(l.Paths)+1)
	for _, dir := range l.Paths {
		candidates = append(candidates, filepath.Join(dir, name))
	}
	candidates = append(candidates, name)

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read resource '%s': %w", path, err)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, name)
}

// FSLoader reads resources from an fs.FS, typically an embed.FS bundling
// configuration files into the binary.
type FSLoader struct {
	FS fs.FS
}

// Load implements Loader.
func (l FSLoader) Load(name string) ([]byte, error) {
	data, err := fs.ReadFile(l.FS, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, name)
		}
		return nil, fmt.Errorf("failed to read resource '%s': %w", name, err)
	}
	return data, nil
}
