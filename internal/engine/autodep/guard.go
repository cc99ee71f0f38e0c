package autodep

import "go.trai.ch/rbuild/internal/core/domain"

// Guard tracks the nodes on the current traversal stack.
// Construction and timestamp propagation each use one so neither descends into an open chain.
type Guard struct {
	on map[domain.NodeID]struct{}
}

// NewGuard creates an empty Guard.
func NewGuard() *Guard {
	return &Guard{on: make(map[domain.NodeID]struct{})}
}

// Enter pushes id. It returns false if id is already on the stack.
func (g *Guard) Enter(id domain.NodeID) bool {
	if _, ok := g.on[id]; ok {
		return false
	}
	g.on[id] = struct{}{}
	return true
}

// Leave pops id.
func (g *Guard) Leave(id domain.NodeID) {
	delete(g.on, id)
}

// Contains reports whether id is on the stack.
func (g *Guard) Contains(id domain.NodeID) bool {
	_, ok := g.on[id]
	return ok
}

// Depth returns the number of nodes on the stack.
func (g *Guard) Depth() int {
	return len(g.on)
}
