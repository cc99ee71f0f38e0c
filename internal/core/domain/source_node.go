package domain

import (
	"path/filepath"
	"slices"
	"time"
)

// NodeID indexes a SourceNode inside the dependency cache.
type NodeID int

// NoNode is the parent passed for root nodes.
const NoNode NodeID = -1

// NodeState is the lifecycle position of a SourceNode.
type NodeState uint8

const (
	// NodeUnseen is the state of a node that has been allocated but not yet scanned.
	NodeUnseen NodeState = iota
	// NodeScanning marks a node whose includes are being resolved. It is on the ancestor stack.
	NodeScanning
	// NodeParsed marks a node whose timestamp and children are known.
	NodeParsed
)

// IncludeRef is one include directive found in a file.
type IncludeRef struct {
	// Name is the text between the delimiters.
	Name string
	// Quoted is true for "name" and false for <name>.
	Quoted bool
}

// SourceNode is one distinct file on disk, identified by its normalized absolute path.
type SourceNode struct {
	ID   NodeID
	Path string
	// LastWrite is the file's mtime at scan time. It is the zero time when stat failed.
	LastWrite time.Time
	// Youngest is the memoized youngest transitive timestamp, valid once Memoized is set.
	Youngest time.Time
	// YoungestFile is the node that produced Youngest.
	YoungestFile NodeID
	Memoized     bool
	// NonAutomatic marks a file declared explicitly rather than discovered by scanning.
	NonAutomatic bool
	State        NodeState
	Children     []NodeID
	Parents      []NodeID
}

// Dir returns the directory component of the node's path.
func (n SourceNode) Dir() string {
	return filepath.Dir(n.Path)
}

// Base returns the filename component of the node's path.
func (n SourceNode) Base() string {
	return filepath.Base(n.Path)
}

// IsIncludedFrom reports whether parent is recorded as a direct includer of n.
func (n SourceNode) IsIncludedFrom(parent NodeID) bool {
	return slices.Contains(n.Parents, parent)
}

// IsParentOf reports whether n directly includes child.
func (n SourceNode) IsParentOf(child NodeID) bool {
	return slices.Contains(n.Children, child)
}
