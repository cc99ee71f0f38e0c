// Package fs provides filesystem adapters: source reads, include resolution, globbing and hashing.
package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/rbuild/internal/core/ports"
)

var _ ports.SourceFS = (*OSFS)(nil)

// OSFS implements ports.SourceFS on the host filesystem.
type OSFS struct{}

// NewOSFS creates an OSFS.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// ReadFile reads the whole file.
func (o *OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path) //nolint:gosec // paths come from the project description
}

// Stat returns file info for path, following symlinks.
func (o *OSFS) Stat(path string) (iofs.FileInfo, error) {
	return os.Stat(path)
}

// MapFS adapts an fs.FS rooted at Root to ports.SourceFS.
type MapFS struct {
	FS   iofs.FS
	Root string
}

var _ ports.SourceFS = (*MapFS)(nil)

// NewMapFS creates a MapFS serving absolute paths under root from fsys.
func NewMapFS(root string, fsys iofs.FS) *MapFS {
	return &MapFS{FS: fsys, Root: root}
}

// ReadFile reads the file at the absolute path.
func (m *MapFS) ReadFile(path string) ([]byte, error) {
	rel, err := m.rel(path)
	if err != nil {
		return nil, err
	}
	return iofs.ReadFile(m.FS, rel)
}

// Stat returns file info for the absolute path.
func (m *MapFS) Stat(path string) (iofs.FileInfo, error) {
	rel, err := m.rel(path)
	if err != nil {
		return nil, err
	}
	return iofs.Stat(m.FS, rel)
}

func (m *MapFS) rel(path string) (string, error) {
	rel, err := filepath.Rel(m.Root, path)
	if err != nil || !filepath.IsLocal(rel) {
		return "", &iofs.PathError{Op: "open", Path: path, Err: iofs.ErrNotExist}
	}
	return filepath.ToSlash(rel), nil
}
