package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"
	"go.trai.ch/rbuild/internal/core/domain"
	"go.trai.ch/rbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ScanCache = (*ScanCache)(nil)

type scanEntry struct {
	Scanner string              `json:"scanner"`
	Path    string              `json:"path"`
	ModTime int64               `json:"mtime"`
	Size    int64               `json:"size"`
	Refs    []domain.IncludeRef `json:"refs"`
}

// ScanCache stores include scan results in a zstd-compressed JSON file.
// Entries are keyed by scanner and path and are only valid for the recorded mtime and size.
type ScanCache struct {
	path    string
	mu      sync.Mutex
	loaded  bool
	dirty   bool
	entries map[string]scanEntry
}

// NewScanCache creates a ScanCache at the default location.
func NewScanCache() *ScanCache {
	return NewScanCacheAt(domain.DefaultScanCachePath("."))
}

// NewScanCacheAt creates a ScanCache backed by the file at path. The file is read on first use.
func NewScanCacheAt(path string) *ScanCache {
	return &ScanCache{
		path:    filepath.Clean(path),
		entries: make(map[string]scanEntry),
	}
}

func cacheKey(scanner, path string) string {
	return scanner + "\x00" + path
}

// Get returns the references recorded for key if the file version matches.
func (c *ScanCache) Get(key ports.ScanKey) ([]domain.IncludeRef, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()

	e, ok := c.entries[cacheKey(key.Scanner, key.Path)]
	if !ok || e.ModTime != key.Stamp.ModTime.UnixNano() || e.Size != key.Stamp.Size {
		return nil, false
	}
	return e.Refs, true
}

// Put records refs for key.
func (c *ScanCache) Put(key ports.ScanKey, refs []domain.IncludeRef) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()

	c.entries[cacheKey(key.Scanner, key.Path)] = scanEntry{
		Scanner: key.Scanner,
		Path:    key.Path,
		ModTime: key.Stamp.ModTime.UnixNano(),
		Size:    key.Stamp.Size,
		Refs:    refs,
	}
	c.dirty = true
}

// Flush writes the cache if anything changed since it was loaded.
func (c *ScanCache) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.dirty {
		return nil
	}

	list := make([]scanEntry, 0, len(c.entries))
	for _, e := range c.entries {
		list = append(list, e)
	}
	data, err := json.Marshal(list)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal scan cache")
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return zerr.Wrap(err, "failed to create zstd encoder")
	}
	compressed := enc.EncodeAll(data, nil)
	_ = enc.Close()

	if err := os.MkdirAll(filepath.Dir(c.path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create directory for scan cache")
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, compressed, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write scan cache"), "path", c.path)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace scan cache"), "path", c.path)
	}
	c.dirty = false
	return nil
}

// load reads the cache file once. A missing or unreadable file leaves the cache empty.
func (c *ScanCache) load() {
	if c.loaded {
		return
	}
	c.loaded = true

	//nolint:gosec // Path is cleaned and provided by trusted caller
	compressed, err := os.ReadFile(c.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.dirty = true
		}
		return
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return
	}
	defer dec.Close()

	data, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		c.dirty = true
		return
	}
	var list []scanEntry
	if err := json.Unmarshal(data, &list); err != nil {
		c.dirty = true
		return
	}
	for _, e := range list {
		c.entries[cacheKey(e.Scanner, e.Path)] = e
	}
}

// Len returns the number of entries.
func (c *ScanCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()
	return len(c.entries)
}
