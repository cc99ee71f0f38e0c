package autodep

import (
	"slices"
	"strings"

	"go.trai.ch/rbuild/internal/core/domain"
)

// Dependencies returns the sorted paths of every file id transitively includes, excluding id itself.
func (e *Engine) Dependencies(id domain.NodeID) []string {
	seen := map[domain.NodeID]bool{id: true}
	stack := slices.Clone(e.nodes.Node(id).Children)
	var paths []string
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[cur] {
			continue
		}
		seen[cur] = true
		n := e.nodes.Node(cur)
		paths = append(paths, n.Path)
		stack = append(stack, n.Children...)
	}
	slices.Sort(paths)
	return paths
}

// DependencyText renders Dependencies as a space separated fragment.
func (e *Engine) DependencyText(id domain.NodeID) string {
	return strings.Join(e.Dependencies(id), " ")
}
