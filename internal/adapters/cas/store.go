// Package cas persists dependency fragments and include scan results under the .rbuild directory.
package cas

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/rbuild/internal/core/domain"
	"go.trai.ch/rbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FragmentStore = (*FragmentStore)(nil)

// FragmentStore writes one fragment file per module source file.
// A fragment is only rewritten when its digest changes, so generators can rely on its mtime.
type FragmentStore struct {
	root   string
	hasher ports.Hasher
}

// NewFragmentStore creates a FragmentStore rooted at the default deps directory.
func NewFragmentStore(hasher ports.Hasher) *FragmentStore {
	return NewFragmentStoreAt(domain.DefaultDepsPath("."), hasher)
}

// NewFragmentStoreAt creates a FragmentStore rooted at root. Directories are created on first write.
func NewFragmentStoreAt(root string, hasher ports.Hasher) *FragmentStore {
	return &FragmentStore{root: filepath.Clean(root), hasher: hasher}
}

// Put stores text as the fragment of file in module.
func (s *FragmentStore) Put(module, file, text string) (bool, error) {
	path := s.path(module, file)
	data := []byte(text + "\n")

	existing, err := s.hasher.HashFile(path)
	if err == nil && existing == s.hasher.HashBytes(data) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to create fragment directory"), "module", module)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to write fragment"), "path", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to replace fragment"), "path", path)
	}
	return true, nil
}

// Get returns the stored fragment of file in module.
func (s *FragmentStore) Get(module, file string) (string, bool, error) {
	data, err := os.ReadFile(s.path(module, file))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, zerr.Wrap(err, "failed to read fragment")
	}
	return strings.TrimSuffix(string(data), "\n"), true, nil
}

// path names the fragment after the file's base name plus a digest of its full path.
func (s *FragmentStore) path(module, file string) string {
	name := fmt.Sprintf("%s-%016x%s", filepath.Base(file), s.hasher.HashBytes([]byte(file)), domain.FragmentExt)
	return filepath.Join(s.root, filepath.Base(module), name)
}
