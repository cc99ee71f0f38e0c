package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rbuild/internal/adapters/fs"
)

func TestGlobber_Expand(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"b.c", "a.c", "readme.txt"} {
		writeFile(t, filepath.Join(root, "src", name), "")
	}

	g := fs.NewGlobber()
	got, err := g.Expand([]string{"src/main.c", "src/*.c", "src/a.c"}, root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "src", "main.c"),
		filepath.Join(root, "src", "a.c"),
		filepath.Join(root, "src", "b.c"),
	}, got)
}

func TestGlobber_Expand_Errors(t *testing.T) {
	root := t.TempDir()
	g := fs.NewGlobber()

	_, err := g.Expand([]string{"["}, root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to glob path")

	_, err = g.Expand([]string{"*.nonexistent"}, root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pattern matched no files")
}
