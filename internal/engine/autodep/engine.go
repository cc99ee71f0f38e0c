// Package autodep discovers the files each module transitively includes and decides
// whether the module's output is older than the youngest of them.
package autodep

import (
	"fmt"
	"io/fs"
	"iter"
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/rbuild/internal/core/domain"
	"go.trai.ch/rbuild/internal/core/ports"
)

// Engine builds the include graph of a project and answers staleness queries.
// It is single threaded. One Engine serves one Process call.
type Engine struct {
	fs        ports.SourceFS
	scanner   ports.IncludeScanner
	resolver  ports.PathResolver
	logger    ports.Logger
	scanCache ports.ScanCache

	project *domain.Project
	nodes   *Cache
	guard   *Guard
	roots   map[string][]domain.NodeID
	stats   Stats
}

// Stats counts the work done by a run.
type Stats struct {
	// Scanned is the number of files read and scanned.
	Scanned int
	// CacheHits is the number of files whose includes came from the scan cache.
	CacheHits int
	// Unresolved is the number of include references that matched no file.
	Unresolved int
	// Declared is the number of explicitly declared files that scanning never reached.
	Declared int
	// MaxDepth is the longest include chain seen while scanning.
	MaxDepth int
}

// Option configures an Engine.
type Option func(*Engine)

// WithScanCache reuses scan results from earlier runs.
func WithScanCache(c ports.ScanCache) Option {
	return func(e *Engine) {
		e.scanCache = c
	}
}

// New creates an Engine.
func New(
	fsys ports.SourceFS,
	scanner ports.IncludeScanner,
	resolver ports.PathResolver,
	logger ports.Logger,
	opts ...Option,
) *Engine {
	e := &Engine{
		fs:       fsys,
		scanner:  scanner,
		resolver: resolver,
		logger:   logger,
		nodes:    NewCache(),
		guard:    NewGuard(),
		roots:    make(map[string][]domain.NodeID),
		project:  &domain.Project{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Process seeds one root per declared file of every module and builds the include graph.
func (e *Engine) Process(project *domain.Project) {
	e.project = project
	for i := range project.Modules {
		e.processModule(&project.Modules[i])
	}
	if e.scanCache != nil {
		if err := e.scanCache.Flush(); err != nil {
			e.logger.Warn(fmt.Sprintf("failed to persist scan cache: %v", err))
		}
	}
}

func (e *Engine) processModule(m *domain.Module) {
	for _, f := range m.Files {
		var id domain.NodeID
		if f.NonAutomatic {
			id = e.declare(f.Name)
		} else {
			id = e.RetrieveOrParse(m, f.Name, domain.NoNode)
		}
		if !slices.Contains(e.roots[m.Name], id) {
			e.roots[m.Name] = append(e.roots[m.Name], id)
		}
	}
}

// declare records an explicitly declared file without scanning it.
func (e *Engine) declare(filename string) domain.NodeID {
	id, existed := e.nodes.Insert(e.normalize(filename))
	if existed {
		return id
	}
	n := e.nodes.Node(id)
	n.NonAutomatic = true
	n.State = domain.NodeParsed
	n.LastWrite = e.stat(n.Path)
	return id
}

// RetrieveOrParse returns the node for filename, scanning it on first sight.
// A known node is linked to parent and returned without a rescan.
func (e *Engine) RetrieveOrParse(m *domain.Module, filename string, parent domain.NodeID) domain.NodeID {
	id, existed := e.nodes.Insert(e.normalize(filename))
	e.nodes.Link(parent, id)

	n := e.nodes.Node(id)
	if existed && !n.NonAutomatic {
		return id
	}
	if n.NonAutomatic {
		// Reached by scanning: the file becomes an ordinary automatic dependency.
		n.NonAutomatic = false
	}
	e.parse(m, id)
	return id
}

func (e *Engine) parse(m *domain.Module, id domain.NodeID) {
	if !e.guard.Enter(id) {
		return
	}
	defer e.guard.Leave(id)
	e.stats.MaxDepth = max(e.stats.MaxDepth, e.guard.Depth())

	n := e.nodes.Node(id)
	n.State = domain.NodeScanning
	path, dir := n.Path, n.Dir()

	info, err := e.fs.Stat(path)
	if err != nil {
		e.logger.Warn(fmt.Sprintf("cannot stat %s, treating it as older than everything: %v", path, err))
		info = nil
	} else {
		n.LastWrite = info.ModTime()
	}

	searchDirs := e.searchDirs(m)
	for ref := range e.includes(path, info) {
		childPath, ok := e.resolver.Resolve(dir, ref, searchDirs)
		if !ok {
			e.stats.Unresolved++
			continue
		}
		childPath = e.normalize(childPath)
		if child, known := e.nodes.Lookup(childPath); known && e.guard.Contains(child) {
			e.nodes.Link(id, child)
			continue
		}
		e.RetrieveOrParse(m, childPath, id)
	}

	e.nodes.Node(id).State = domain.NodeParsed
}

// includes returns the include references of path. A read failure yields nothing.
func (e *Engine) includes(path string, info fs.FileInfo) iter.Seq[domain.IncludeRef] {
	var key ports.ScanKey
	cacheable := e.scanCache != nil && info != nil
	if cacheable {
		key = ports.ScanKey{Scanner: e.scanner.Name(), Path: path, Stamp: ports.StampOf(info)}
		if refs, ok := e.scanCache.Get(key); ok {
			e.stats.CacheHits++
			return slices.Values(refs)
		}
	}

	content, err := e.fs.ReadFile(path)
	if err != nil {
		e.logger.Warn(fmt.Sprintf("cannot read %s, it contributes no dependencies: %v", path, err))
		return func(func(domain.IncludeRef) bool) {}
	}
	e.stats.Scanned++

	if !cacheable {
		return e.scanner.Scan(content)
	}
	refs := slices.Collect(e.scanner.Scan(content))
	e.scanCache.Put(key, refs)
	return slices.Values(refs)
}

func (e *Engine) searchDirs(m *domain.Module) []string {
	dirs := make([]string, 0, len(m.IncludeDirs)+len(e.project.IncludeDirs))
	for _, d := range m.IncludeDirs {
		dirs = append(dirs, e.normalize(d))
	}
	for _, d := range e.project.IncludeDirs {
		dirs = append(dirs, e.normalize(d))
	}
	return dirs
}

func (e *Engine) normalize(path string) string {
	path = filepath.FromSlash(path)
	if e.project.BaseDir != "" {
		return e.project.Abs(path)
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

func (e *Engine) stat(path string) time.Time {
	info, err := e.fs.Stat(path)
	if err != nil {
		e.logger.Warn(fmt.Sprintf("cannot stat %s, treating it as older than everything: %v", path, err))
		return time.Time{}
	}
	return info.ModTime()
}

// Roots returns the root nodes seeded for a module.
func (e *Engine) Roots(module string) []domain.NodeID {
	return slices.Clone(e.roots[module])
}

// Node returns a copy of the node with the given id.
func (e *Engine) Node(id domain.NodeID) domain.SourceNode {
	return *e.nodes.Node(id)
}

// Lookup returns the node for path, if it was seen.
func (e *Engine) Lookup(path string) (domain.NodeID, bool) {
	return e.nodes.Lookup(e.normalize(path))
}

// Len returns the number of distinct files in the graph.
func (e *Engine) Len() int {
	return e.nodes.Len()
}

// Stats returns counters for the work done so far.
func (e *Engine) Stats() Stats {
	stats := e.stats
	for n := range e.nodes.All() {
		if n.NonAutomatic {
			stats.Declared++
		}
	}
	return stats
}
