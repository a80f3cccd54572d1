package conftree

import (
	"fmt"
	"slices"

	"aconf/internal/source"
)

// Tree is one directive tree: an arena of nodes plus the sentinel root. It is
// owned by the parse session that created it and dropped as a single unit,
// which keeps the parent back-references free of ownership cycles.
type Tree struct {
	nodes *Arena[Node]
	root  NodeID
}

// New creates a tree holding only the sentinel root node.
func New() *Tree {
	t := &Tree{nodes: NewArena[Node](64)}
	t.root = NodeID(t.nodes.Allocate(Node{
		name: RootName,
		Line: source.NoLine,
	}))
	return t
}

// Root returns the sentinel root node ID.
func (t *Tree) Root() NodeID { return t.root }

// Get resolves id to its node; nil for None. The pointer stays valid until
// the next allocation mutates the arena, so do not hold it across NewChild.
func (t *Tree) Get(id NodeID) *Node {
	return t.nodes.Get(uint32(id))
}

// Len returns the number of nodes ever allocated, root included.
func (t *Tree) Len() int {
	return int(t.nodes.Len())
}

// NewChild appends a fresh node named name under parent and returns its ID.
func (t *Tree) NewChild(parent NodeID, name string) NodeID {
	if t.Get(parent) == nil {
		panic(fmt.Errorf("conftree: NewChild of unknown parent %d", parent))
	}
	id := NodeID(t.nodes.Allocate(Node{
		parent: parent,
		Line:   source.NoLine,
	}))
	n := t.Get(id)
	n.SetName(name)
	t.Get(parent).children = append(t.Get(parent).children, id)
	return id
}

// RemoveSubtree detaches id (and transitively all of its descendants) from
// the tree. The arena keeps the storage; detached IDs must not be used again.
func (t *Tree) RemoveSubtree(id NodeID) {
	n := t.Get(id)
	if n == nil || id == t.root {
		return
	}
	p := t.Get(n.parent)
	if i := slices.Index(p.children, id); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	n.parent = None
}

// Walk visits start and its descendants in pre-order document order.
// Returning false from fn stops the walk.
func (t *Tree) Walk(start NodeID, fn func(NodeID, *Node) bool) {
	if t.Get(start) == nil {
		return
	}
	t.walk(start, fn)
}

func (t *Tree) walk(id NodeID, fn func(NodeID, *Node) bool) bool {
	if !fn(id, t.Get(id)) {
		return false
	}
	// Re-fetch and copy: fn may grow or mutate the arena under us.
	children := slices.Clone(t.Get(id).Children())
	for _, c := range children {
		if !t.walk(c, fn) {
			return false
		}
	}
	return true
}
