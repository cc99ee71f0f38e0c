package autodep

import (
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/rbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

type stamp struct {
	at   time.Time
	file domain.NodeID
}

func (s stamp) later(o stamp) stamp {
	if o.at.After(s.at) {
		return o
	}
	return s
}

// propagation computes youngest transitive timestamps with a depth-first walk.
// Nodes of one include cycle share their result, which is memoized once the cycle is closed.
type propagation struct {
	nodes   *Cache
	guard   *Guard
	index   map[domain.NodeID]int
	low     map[domain.NodeID]int
	best    map[domain.NodeID]stamp
	stack   []domain.NodeID
	counter int
}

// Youngest returns the youngest transitive timestamp of a node and the node that produced it.
// A file whose stat failed counts as the zero time, so it never hides staleness.
func (e *Engine) Youngest(id domain.NodeID) (time.Time, domain.NodeID) {
	if n := e.nodes.Node(id); n.Memoized {
		return n.Youngest, n.YoungestFile
	}
	p := &propagation{
		nodes: e.nodes,
		guard: NewGuard(),
		index: make(map[domain.NodeID]int),
		low:   make(map[domain.NodeID]int),
		best:  make(map[domain.NodeID]stamp),
	}
	p.visit(id)
	n := e.nodes.Node(id)
	return n.Youngest, n.YoungestFile
}

func (p *propagation) visit(id domain.NodeID) {
	p.index[id] = p.counter
	p.low[id] = p.counter
	p.counter++
	p.stack = append(p.stack, id)
	p.guard.Enter(id)

	n := p.nodes.Node(id)
	best := stamp{at: n.LastWrite, file: id}
	for _, child := range n.Children {
		c := p.nodes.Node(child)
		switch {
		case c.Memoized:
			best = best.later(stamp{at: c.Youngest, file: c.YoungestFile})
		case p.guard.Contains(child):
			// Open ancestor: its own contribution is folded in when the cycle closes.
			p.low[id] = min(p.low[id], p.index[child])
		default:
			p.visit(child)
			p.low[id] = min(p.low[id], p.low[child])
			best = best.later(p.best[child])
		}
	}
	p.best[id] = best

	if p.low[id] != p.index[id] {
		return
	}

	var members []domain.NodeID
	for {
		top := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
		p.guard.Leave(top)
		members = append(members, top)
		best = best.later(p.best[top])
		if top == id {
			break
		}
	}
	for _, m := range members {
		node := p.nodes.Node(m)
		node.Youngest = best.at
		node.YoungestFile = best.file
		node.Memoized = true
	}
}

// CheckAutomaticDependencies returns one verdict per module, in project order.
func (e *Engine) CheckAutomaticDependencies() []domain.Verdict {
	verdicts := make([]domain.Verdict, 0, len(e.project.Modules))
	for i := range e.project.Modules {
		m := &e.project.Modules[i]
		verdicts = append(verdicts, e.verdict(m, "", e.roots[m.Name]))
	}
	return verdicts
}

// CheckFile returns the verdict for one declared file of a module.
func (e *Engine) CheckFile(module, file string) (domain.Verdict, error) {
	m, ok := e.project.Module(module)
	if !ok {
		return domain.Verdict{}, zerr.With(zerr.Wrap(domain.ErrModuleNotFound, "failed to check file"), "module", module)
	}
	path := e.normalize(file)
	for _, f := range m.Files {
		if e.normalize(f.Name) != path {
			continue
		}
		id, ok := e.nodes.Lookup(path)
		if !ok {
			break
		}
		return e.verdict(m, e.display(path), []domain.NodeID{id}), nil
	}
	return domain.Verdict{}, zerr.With(zerr.With(zerr.Wrap(domain.ErrFileNotDeclared, "failed to check file"), "module", module), "file", file)
}

func (e *Engine) verdict(m *domain.Module, file string, roots []domain.NodeID) domain.Verdict {
	v := domain.Verdict{
		Module: m.Name,
		File:   file,
		Output: m.OutputPath(),
	}

	youngest := stamp{file: domain.NoNode}
	root := domain.NoNode
	for _, r := range roots {
		at, from := e.Youngest(r)
		if root == domain.NoNode || at.After(youngest.at) {
			youngest, root = stamp{at: at, file: from}, r
		}
	}
	v.Youngest = youngest.at
	if youngest.file != domain.NoNode {
		v.YoungestFile = e.display(e.nodes.Node(youngest.file).Path)
		for _, id := range e.Chain(root, youngest.file) {
			v.Chain = append(v.Chain, e.display(e.nodes.Node(id).Path))
		}
	}

	info, err := e.fs.Stat(e.normalize(v.Output))
	if err != nil {
		v.Stale = true
		return v
	}
	v.OutputTime = info.ModTime()
	v.Stale = v.OutputTime.Before(v.Youngest)
	return v
}

// Chain returns the shortest include path from one node to another, both included.
// It is empty when to is not reachable.
func (e *Engine) Chain(from, to domain.NodeID) []domain.NodeID {
	prev := map[domain.NodeID]domain.NodeID{from: domain.NoNode}
	queue := []domain.NodeID{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			var chain []domain.NodeID
			for id := to; id != domain.NoNode; id = prev[id] {
				chain = append(chain, id)
			}
			slices.Reverse(chain)
			return chain
		}
		for _, child := range e.nodes.Node(cur).Children {
			if _, seen := prev[child]; !seen {
				prev[child] = cur
				queue = append(queue, child)
			}
		}
	}
	return nil
}

func (e *Engine) display(path string) string {
	if e.project.BaseDir == "" {
		return path
	}
	if rel, err := filepath.Rel(e.project.BaseDir, path); err == nil && filepath.IsLocal(rel) {
		return rel
	}
	return path
}
