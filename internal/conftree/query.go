package conftree

import (
	"fmt"
	"strings"
)

// nameSet builds a lowercase lookup set from the query names.
func nameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[strings.ToLower(n)] = struct{}{}
	}
	return set
}

// FindEverywhere collects every node under start (inclusive, pre-order
// document order) whose name matches one of names, case-insensitively.
// Pass the root to search the whole tree.
func (t *Tree) FindEverywhere(start NodeID, names ...string) []NodeID {
	set := nameSet(names)
	var out []NodeID
	t.Walk(start, func(id NodeID, n *Node) bool {
		if _, ok := set[n.Name()]; ok {
			out = append(out, id)
		}
		return true
	})
	return out
}

// CountEverywhere is FindEverywhere in count-only mode.
func (t *Tree) CountEverywhere(start NodeID, names ...string) int {
	set := nameSet(names)
	count := 0
	t.Walk(start, func(_ NodeID, n *Node) bool {
		if _, ok := set[n.Name()]; ok {
			count++
		}
		return true
	})
	return count
}

// FindAmongSiblings matches only among the direct children of start's parent;
// for the root (which has no parent) it searches the root's own children.
func (t *Tree) FindAmongSiblings(start NodeID, names ...string) []NodeID {
	n := t.Get(start)
	if n == nil {
		return nil
	}
	scope := start
	if n.Parent() != None {
		scope = n.Parent()
	}
	set := nameSet(names)
	var out []NodeID
	for _, c := range t.Get(scope).Children() {
		if _, ok := set[t.Get(c).Name()]; ok {
			out = append(out, c)
		}
	}
	return out
}

// FindAncestorSiblings walks upward from node's parent to the root; at each
// level it appends the matching children of that ancestor's parent, so the
// result is ordered innermost to outermost. node must not be the root.
func (t *Tree) FindAncestorSiblings(node NodeID, names ...string) ([]NodeID, error) {
	n := t.Get(node)
	if n == nil {
		return nil, fmt.Errorf("conftree: unknown node %d", node)
	}
	if n.Parent() == None {
		return nil, fmt.Errorf("conftree: FindAncestorSiblings needs a non-root node")
	}
	set := nameSet(names)
	var out []NodeID
	for anc := n.Parent(); anc != None; anc = t.Get(anc).Parent() {
		for _, c := range t.Get(anc).Children() {
			if _, ok := set[t.Get(c).Name()]; ok {
				out = append(out, c)
			}
		}
	}
	return out, nil
}
