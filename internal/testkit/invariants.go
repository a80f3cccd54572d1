package testkit

import (
	"fmt"
	"strings"

	"aconf/internal/conftree"
)

// CheckTreeInvariants runs a minimal set of structural invariants on a tree:
// 1) the root is named "root", has no parent and an unset line number
// 2) every child's parent back-reference points at the node listing it
// 3) every non-root name is lowercase and non-empty
// 4) value string and element sequence are defined together or not at all
func CheckTreeInvariants(t *conftree.Tree) error {
	if t == nil {
		return fmt.Errorf("nil tree")
	}
	root := t.Get(t.Root())
	if root == nil {
		return fmt.Errorf("root node not found")
	}
	if root.Name() != conftree.RootName {
		return fmt.Errorf("root named %q, want %q", root.Name(), conftree.RootName)
	}
	if root.Parent() != conftree.None {
		return fmt.Errorf("root has a parent: %d", root.Parent())
	}

	var check func(id conftree.NodeID) error
	check = func(id conftree.NodeID) error {
		n := t.Get(id)
		if n == nil {
			return fmt.Errorf("dangling node id %d", id)
		}
		if id != t.Root() {
			if n.Name() == "" {
				return fmt.Errorf("node %d has empty name", id)
			}
			if n.Name() != strings.ToLower(n.Name()) {
				return fmt.Errorf("node %d name %q not lowercase", id, n.Name())
			}
		}

		_, strOK := n.Value()
		_, elemsOK := n.ValueElems()
		if strOK != elemsOK {
			return fmt.Errorf("node %d: value string/elements defined inconsistently", id)
		}
		_, strOK = n.OrigValue()
		_, elemsOK = n.OrigValueElems()
		if strOK != elemsOK {
			return fmt.Errorf("node %d: orig string/elements defined inconsistently", id)
		}

		for _, c := range n.Children() {
			child := t.Get(c)
			if child == nil {
				return fmt.Errorf("node %d lists dangling child %d", id, c)
			}
			if child.Parent() != id {
				return fmt.Errorf("child %d of node %d points back at %d", c, id, child.Parent())
			}
			if err := check(c); err != nil {
				return err
			}
		}
		return nil
	}
	return check(t.Root())
}
