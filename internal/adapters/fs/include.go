package fs

import (
	"path/filepath"
	"strings"

	"go.trai.ch/rbuild/internal/core/domain"
	"go.trai.ch/rbuild/internal/core/ports"
)

var _ ports.PathResolver = (*IncludeResolver)(nil)

// IncludeResolver resolves include references against search directories.
type IncludeResolver struct {
	fs ports.SourceFS
}

// NewIncludeResolver creates an IncludeResolver that checks candidate files through fsys.
func NewIncludeResolver(fsys ports.SourceFS) *IncludeResolver {
	return &IncludeResolver{fs: fsys}
}

// Resolve searches includingDir (quoted references only), then searchDirs in order.
// The first regular file found wins. The result is absolute and cleaned.
func (r *IncludeResolver) Resolve(includingDir string, ref domain.IncludeRef, searchDirs []string) (string, bool) {
	name := filepath.FromSlash(strings.ReplaceAll(ref.Name, `\`, "/"))
	if name == "" {
		return "", false
	}
	if filepath.IsAbs(name) {
		return r.find(name)
	}
	if ref.Quoted {
		if p, ok := r.find(filepath.Join(includingDir, name)); ok {
			return p, true
		}
	}
	for _, dir := range searchDirs {
		if p, ok := r.find(filepath.Join(dir, name)); ok {
			return p, true
		}
	}
	return "", false
}

func (r *IncludeResolver) find(path string) (string, bool) {
	info, err := r.fs.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs, true
	}
	return filepath.Clean(path), true
}
