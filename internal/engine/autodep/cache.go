package autodep

import (
	"iter"

	"go.trai.ch/rbuild/internal/core/domain"
)

// Cache owns every SourceNode of a run. Nodes are addressed by NodeID and never removed.
type Cache struct {
	nodes []domain.SourceNode
	index map[string]domain.NodeID
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{index: make(map[string]domain.NodeID)}
}

// Lookup returns the node for a normalized absolute path.
func (c *Cache) Lookup(path string) (domain.NodeID, bool) {
	id, ok := c.index[path]
	return id, ok
}

// Insert returns the node for path, allocating it if needed.
// existed is false when the node was created by this call.
func (c *Cache) Insert(path string) (id domain.NodeID, existed bool) {
	if id, ok := c.index[path]; ok {
		return id, true
	}
	id = domain.NodeID(len(c.nodes))
	c.nodes = append(c.nodes, domain.SourceNode{
		ID:           id,
		Path:         path,
		YoungestFile: domain.NoNode,
	})
	c.index[path] = id
	return id, false
}

// Node returns the node with the given id.
// The pointer is invalidated by the next Insert.
func (c *Cache) Node(id domain.NodeID) *domain.SourceNode {
	return &c.nodes[id]
}

// Link records that parent includes child. Repeated links are ignored.
func (c *Cache) Link(parent, child domain.NodeID) {
	if parent == domain.NoNode {
		return
	}
	if c.nodes[child].IsIncludedFrom(parent) {
		return
	}
	c.nodes[child].Parents = append(c.nodes[child].Parents, parent)
	c.nodes[parent].Children = append(c.nodes[parent].Children, child)
}

// Len returns the number of nodes.
func (c *Cache) Len() int {
	return len(c.nodes)
}

// All yields every node in allocation order.
func (c *Cache) All() iter.Seq[*domain.SourceNode] {
	return func(yield func(*domain.SourceNode) bool) {
		for i := range c.nodes {
			if !yield(&c.nodes[i]) {
				return
			}
		}
	}
}
