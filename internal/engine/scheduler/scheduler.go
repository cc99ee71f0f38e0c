// Package scheduler runs the rebuild commands of stale modules in explicit dependency order.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.trai.ch/rbuild/internal/core/domain"
	"go.trai.ch/rbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Scheduler executes module commands. A module runs when its verdict is stale or when
// one of its explicit dependencies was rebuilt in the same run. Modules whose
// dependencies failed are skipped.
type Scheduler struct {
	executor  ports.Executor
	telemetry ports.Telemetry
	logger    ports.Logger

	mu           sync.RWMutex
	moduleStatus map[string]domain.VertexStatus
}

// NewScheduler creates a new Scheduler.
func NewScheduler(executor ports.Executor, telemetry ports.Telemetry, logger ports.Logger) *Scheduler {
	return &Scheduler{
		executor:     executor,
		telemetry:    telemetry,
		logger:       logger,
		moduleStatus: make(map[string]domain.VertexStatus),
	}
}

func (s *Scheduler) updateStatus(name string, status domain.VertexStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moduleStatus[name] = status
}

func (s *Scheduler) getStatus(name string) domain.VertexStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moduleStatus[name]
}

// Statuses returns a copy of the status of every module seen by the last run.
func (s *Scheduler) Statuses() map[string]domain.VertexStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]domain.VertexStatus, len(s.moduleStatus))
	for k, v := range s.moduleStatus {
		out[k] = v
	}
	return out
}

// Run rebuilds the project with at most parallelism commands in flight.
// It returns domain.ErrRebuildFailed joined with every command error if any module failed.
func (s *Scheduler) Run(ctx context.Context, project *domain.Project, verdicts []domain.Verdict, parallelism int) error {
	if parallelism < 1 {
		parallelism = 1
	}
	if _, err := project.Graph(); err != nil {
		return err
	}

	state := s.newRunState(ctx, project, verdicts, parallelism)
	var g errgroup.Group

	for !state.isDone() {
		state.schedule(&g)
		if state.active == 0 {
			// Nothing in flight: either everything is settled or ctx was cancelled.
			break
		}
		state.handleResult(<-state.resultsCh)
	}
	_ = g.Wait()

	// Modules never reached because ctx was cancelled end up skipped.
	for i := range project.Modules {
		name := project.Modules[i].Name
		if !s.getStatus(name).IsTerminal() {
			s.updateStatus(name, domain.VertexStatusSkipped)
		}
	}

	if ctx.Err() != nil {
		state.errs = errors.Join(state.errs, ctx.Err())
	}
	if state.failed {
		return errors.Join(domain.ErrRebuildFailed, state.errs)
	}
	return state.errs
}

type result struct {
	module string
	err    error
}

type runState struct {
	s           *Scheduler
	ctx         context.Context
	project     *domain.Project
	stale       map[string]bool
	inDegree    map[string]int
	dependents  map[string][]string
	ready       []string
	active      int
	parallelism int
	resultsCh   chan result
	errs        error
	failed      bool
}

func (s *Scheduler) newRunState(
	ctx context.Context,
	project *domain.Project,
	verdicts []domain.Verdict,
	parallelism int,
) *runState {
	state := &runState{
		s:           s,
		ctx:         ctx,
		project:     project,
		stale:       make(map[string]bool, len(verdicts)),
		inDegree:    make(map[string]int, len(project.Modules)),
		dependents:  make(map[string][]string),
		parallelism: parallelism,
		resultsCh:   make(chan result, parallelism),
	}
	for _, v := range verdicts {
		state.stale[v.Module] = v.Stale
	}

	s.mu.Lock()
	s.moduleStatus = make(map[string]domain.VertexStatus, len(project.Modules))
	s.mu.Unlock()

	for i := range project.Modules {
		m := &project.Modules[i]
		s.updateStatus(m.Name, domain.VertexStatusPending)
		state.inDegree[m.Name] = len(m.Dependencies)
		for _, dep := range m.Dependencies {
			state.dependents[dep] = append(state.dependents[dep], m.Name)
		}
		if len(m.Dependencies) == 0 {
			state.ready = append(state.ready, m.Name)
		}
	}
	return state
}

func (state *runState) isDone() bool {
	return state.active == 0 && len(state.ready) == 0
}

// schedule starts ready modules until the parallelism limit is reached.
// Modules that need no command are settled without a goroutine.
func (state *runState) schedule(g *errgroup.Group) {
	for len(state.ready) > 0 && state.active < state.parallelism && state.ctx.Err() == nil {
		name := state.ready[0]
		state.ready = state.ready[1:]
		m, _ := state.project.Module(name)

		if status, settled := state.settle(m); settled {
			state.finish(name, status)
			continue
		}

		state.active++
		state.s.updateStatus(name, domain.VertexStatusRunning)
		dir := state.project.Abs(m.Path)
		g.Go(func() error {
			state.resultsCh <- result{module: name, err: state.run(m, dir)}
			return nil
		})
	}
}

// settle decides the outcome of a module that does not need to run its command.
func (state *runState) settle(m *domain.Module) (domain.VertexStatus, bool) {
	rebuiltDep := false
	for _, dep := range m.Dependencies {
		switch state.s.getStatus(dep) {
		case domain.VertexStatusFailed:
			state.s.logger.Warn(fmt.Sprintf("skipping %s: dependency %s failed", m.Name, dep))
			return domain.VertexStatusSkipped, true
		case domain.VertexStatusSkipped:
			if state.blocked(dep) {
				state.s.logger.Warn(fmt.Sprintf("skipping %s: dependency %s was not built", m.Name, dep))
				return domain.VertexStatusSkipped, true
			}
		case domain.VertexStatusCompleted:
			rebuiltDep = true
		}
	}

	if !state.stale[m.Name] && !rebuiltDep {
		_, v := state.s.telemetry.Record(state.ctx, m.Name, ports.WithGroup("rebuild"))
		v.Cached()
		return domain.VertexStatusCached, true
	}
	if len(m.Command) == 0 {
		state.s.logger.Warn(fmt.Sprintf("module %s is stale but has no command", m.Name))
		return domain.VertexStatusSkipped, true
	}
	return "", false
}

// blocked reports whether a skipped module was skipped because something below it failed.
func (state *runState) blocked(name string) bool {
	m, ok := state.project.Module(name)
	if !ok {
		return false
	}
	for _, dep := range m.Dependencies {
		switch state.s.getStatus(dep) {
		case domain.VertexStatusFailed:
			return true
		case domain.VertexStatusSkipped:
			if state.blocked(dep) {
				return true
			}
		}
	}
	return false
}

func (state *runState) run(m *domain.Module, dir string) error {
	ctx, v := state.s.telemetry.Record(state.ctx, m.Name, ports.WithGroup("rebuild"))
	err := state.s.executor.Execute(ctx, m, dir)
	v.Complete(err)
	return err
}

func (state *runState) handleResult(res result) {
	state.active--
	status := domain.VertexStatusCompleted
	if res.err != nil {
		state.failed = true
		wrapped := zerr.With(zerr.Wrap(res.err, "module rebuild failed"), "module", res.module)
		state.errs = errors.Join(state.errs, wrapped)
		status = domain.VertexStatusFailed
	}
	state.finish(res.module, status)
}

// finish records a terminal status and releases dependents whose dependencies are all settled.
func (state *runState) finish(name string, status domain.VertexStatus) {
	state.s.updateStatus(name, status)
	for _, dependent := range state.dependents[name] {
		state.inDegree[dependent]--
		if state.inDegree[dependent] == 0 {
			state.ready = append(state.ready, dependent)
		}
	}
}
