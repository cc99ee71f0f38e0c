package fs

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/rbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileExpander = (*Globber)(nil)

// Globber expands module file declarations that contain glob patterns.
type Globber struct{}

// NewGlobber creates a Globber.
func NewGlobber() *Globber {
	return &Globber{}
}

// Expand resolves each pattern relative to root. Patterns without glob metacharacters are kept
// as written even if the file does not exist, so a missing source stays visible to the engine.
// Matches of one pattern are sorted; duplicates across patterns are dropped.
func (g *Globber) Expand(patterns []string, root string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	for _, pattern := range patterns {
		path := pattern
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, pattern)
		}

		if !strings.ContainsAny(pattern, "*?[") {
			if !seen[path] {
				seen[path] = true
				result = append(result, path)
			}
			continue
		}

		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "pattern", pattern)
		}
		if len(matches) == 0 {
			return nil, zerr.With(zerr.New("pattern matched no files"), "pattern", pattern)
		}
		slices.Sort(matches)
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				result = append(result, match)
			}
		}
	}
	return result, nil
}
