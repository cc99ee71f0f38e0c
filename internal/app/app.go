// Package app implements the application layer for rbuild.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"slices"

	"go.trai.ch/rbuild/internal/core/domain"
	"go.trai.ch/rbuild/internal/core/ports"
	"go.trai.ch/rbuild/internal/engine/autodep"
	"go.trai.ch/rbuild/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader    ports.ProjectLoader
	fs        ports.SourceFS
	scanners  ports.ScannerSet
	resolver  ports.PathResolver
	scanCache ports.ScanCache
	store     ports.FragmentStore
	telemetry ports.Telemetry
	scheduler *scheduler.Scheduler
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ProjectLoader,
	fsys ports.SourceFS,
	scanners ports.ScannerSet,
	resolver ports.PathResolver,
	scanCache ports.ScanCache,
	store ports.FragmentStore,
	telemetry ports.Telemetry,
	sched *scheduler.Scheduler,
	logger ports.Logger,
) *App {
	return &App{
		loader:    loader,
		fs:        fsys,
		scanners:  scanners,
		resolver:  resolver,
		scanCache: scanCache,
		store:     store,
		telemetry: telemetry,
		scheduler: sched,
		logger:    logger,
	}
}

// Options are shared by every command.
type Options struct {
	// Project is the project file or a directory to search from. It defaults to ".".
	Project string
	// NoCache disables the persistent scan cache.
	NoCache bool
}

// CheckOptions configures Check.
type CheckOptions struct {
	Options
	// Module restricts the check to one module.
	Module string
	// File checks a single declared file of Module.
	File string
}

// DepsOptions configures Deps.
type DepsOptions struct {
	Options
	// Module restricts the output to one module.
	Module string
	// Write stores each fragment in the fragment store.
	Write bool
	// Verify compares each fragment with the stored one without writing.
	Verify bool
}

// RebuildOptions configures Rebuild.
type RebuildOptions struct {
	Options
	// Jobs is the maximum number of commands run at once. Zero means one per CPU.
	Jobs int
}

// FileDeps is the dependency fragment of one declared file.
type FileDeps struct {
	Module string
	// File is the declared file, relative to the project base directory when inside it.
	File string
	// Text is the space separated list of every file it transitively includes.
	Text string
	// Changed is set by Deps with Write when the stored fragment was rewritten,
	// and with Verify when the stored fragment is missing or differs.
	Changed bool
}

// analyze loads the project and builds its include graph.
func (a *App) analyze(opts Options) (*domain.Project, *autodep.Engine, error) {
	path := opts.Project
	if path == "" {
		path = "."
	}
	project, err := a.loader.Load(path)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load project")
	}

	scanner, err := a.scanners.Scanner(project.Scanner)
	if err != nil {
		return nil, nil, err
	}

	var engineOpts []autodep.Option
	if !opts.NoCache && a.scanCache != nil {
		engineOpts = append(engineOpts, autodep.WithScanCache(a.scanCache))
	}
	engine := autodep.New(a.fs, scanner, a.resolver, a.logger, engineOpts...)
	engine.Process(project)

	stats := engine.Stats()
	a.logger.Info(fmt.Sprintf("%d files (%d declared only), %d scanned, %d from cache, %d unresolved includes, depth %d",
		engine.Len(), stats.Declared, stats.Scanned, stats.CacheHits, stats.Unresolved, stats.MaxDepth))
	return project, engine, nil
}

// Check returns the staleness verdicts of the project's modules.
func (a *App) Check(ctx context.Context, opts CheckOptions) ([]domain.Verdict, error) {
	project, engine, err := a.analyze(opts.Options)
	if err != nil {
		return nil, err
	}

	var verdicts []domain.Verdict
	switch {
	case opts.File != "":
		if opts.Module == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrModuleNotFound, "file check needs a module"), "file", opts.File)
		}
		v, err := engine.CheckFile(opts.Module, project.Abs(opts.File))
		if err != nil {
			return nil, err
		}
		verdicts = []domain.Verdict{v}
	case opts.Module != "":
		if _, ok := project.Module(opts.Module); !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrModuleNotFound, "failed to select module"), "module", opts.Module)
		}
		for _, v := range engine.CheckAutomaticDependencies() {
			if v.Module == opts.Module {
				verdicts = append(verdicts, v)
			}
		}
	default:
		verdicts = engine.CheckAutomaticDependencies()
	}

	for _, v := range verdicts {
		_, vertex := a.telemetry.Record(ctx, v.Module, ports.WithGroup("check"))
		if !v.Stale {
			vertex.Cached()
			continue
		}
		vertex.Log(domain.LogLevelInfo, v.Reason())
		vertex.Complete(nil)
	}
	return verdicts, nil
}

// Deps returns the dependency fragment of every declared file in project order,
// with each module's primary file first.
func (a *App) Deps(_ context.Context, opts DepsOptions) ([]FileDeps, error) {
	project, engine, err := a.analyze(opts.Options)
	if err != nil {
		return nil, err
	}
	if opts.Module != "" {
		if _, ok := project.Module(opts.Module); !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrModuleNotFound, "failed to select module"), "module", opts.Module)
		}
	}

	var out []FileDeps
	for i := range project.Modules {
		m := &project.Modules[i]
		if opts.Module != "" && m.Name != opts.Module {
			continue
		}
		for _, id := range primaryFirst(project, m, engine) {
			node := engine.Node(id)
			fd := FileDeps{
				Module: m.Name,
				File:   relative(project.BaseDir, node.Path),
				Text:   engine.DependencyText(id),
			}
			switch {
			case opts.Write:
				changed, err := a.store.Put(m.Name, node.Path, fd.Text)
				if err != nil {
					return nil, zerr.With(err, "module", m.Name)
				}
				fd.Changed = changed
			case opts.Verify:
				stored, found, err := a.store.Get(m.Name, node.Path)
				if err != nil {
					return nil, zerr.With(err, "module", m.Name)
				}
				fd.Changed = !found || stored != fd.Text
			}
			out = append(out, fd)
		}
	}
	return out, nil
}

// primaryFirst returns the module's roots with its primary file moved to the front.
func primaryFirst(project *domain.Project, m *domain.Module, engine *autodep.Engine) []domain.NodeID {
	roots := engine.Roots(m.Name)
	f, ok := m.PrimaryFile()
	if !ok {
		return roots
	}
	id, ok := engine.Lookup(project.Abs(f.Name))
	if !ok {
		return roots
	}
	i := slices.Index(roots, id)
	if i <= 0 {
		return roots
	}
	return append([]domain.NodeID{id}, slices.Delete(slices.Clone(roots), i, i+1)...)
}

// Rebuild checks the project and runs the command of every stale module and its dependents.
func (a *App) Rebuild(ctx context.Context, opts RebuildOptions) ([]domain.Verdict, error) {
	project, engine, err := a.analyze(opts.Options)
	if err != nil {
		return nil, err
	}
	verdicts := engine.CheckAutomaticDependencies()

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if err := a.scheduler.Run(ctx, project, verdicts, jobs); err != nil {
		return verdicts, err
	}
	return verdicts, nil
}

// Statuses returns the per-module outcome of the last rebuild.
func (a *App) Statuses() map[string]domain.VertexStatus {
	return a.scheduler.Statuses()
}

func relative(base, path string) string {
	if base == "" {
		return path
	}
	if rel, err := filepath.Rel(base, path); err == nil && filepath.IsLocal(rel) {
		return rel
	}
	return path
}
