package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rbuild/internal/adapters/cas"
	"go.trai.ch/rbuild/internal/core/domain"
	"go.trai.ch/rbuild/internal/core/ports"
)

func key(scanner, path string, mtime time.Time, size int64) ports.ScanKey {
	return ports.ScanKey{Scanner: scanner, Path: path, Stamp: ports.FileStamp{ModTime: mtime, Size: size}}
}

func TestScanCache_RoundTripThroughDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "scan.json.zst")
	now := time.Unix(1700000000, 0)
	refs := []domain.IncludeRef{{Name: "a.h", Quoted: true}, {Name: "stdio.h"}}

	c := cas.NewScanCacheAt(path)
	c.Put(key("lexical", "/src/main.c", now, 42), refs)
	require.NoError(t, c.Flush())

	reloaded := cas.NewScanCacheAt(path)
	got, ok := reloaded.Get(key("lexical", "/src/main.c", now, 42))
	require.True(t, ok)
	assert.Equal(t, refs, got)
}

func TestScanCache_StampMismatchMisses(t *testing.T) {
	c := cas.NewScanCacheAt(filepath.Join(t.TempDir(), "scan.json.zst"))
	now := time.Unix(1700000000, 0)
	c.Put(key("lexical", "/src/main.c", now, 42), []domain.IncludeRef{{Name: "a.h", Quoted: true}})

	_, ok := c.Get(key("lexical", "/src/main.c", now.Add(time.Second), 42))
	assert.False(t, ok)
	_, ok = c.Get(key("lexical", "/src/main.c", now, 43))
	assert.False(t, ok)
	_, ok = c.Get(key("syntax", "/src/main.c", now, 42))
	assert.False(t, ok, "entries are per scanner")
}

func TestScanCache_CorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.json.zst")
	require.NoError(t, os.WriteFile(path, []byte("not zstd"), 0o600))

	c := cas.NewScanCacheAt(path)
	assert.Equal(t, 0, c.Len())

	require.NoError(t, c.Flush())
	assert.Equal(t, 0, cas.NewScanCacheAt(path).Len())
}

func TestScanCache_FlushWithoutChangesWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.json.zst")
	c := cas.NewScanCacheAt(path)

	require.NoError(t, c.Flush())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
