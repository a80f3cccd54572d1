package conftree

import "aconf/internal/paths"

// Path predicates reuse the classification tables of internal/paths against
// the node's live or snapshot value; they never rewrite anything.

// IsPath reports whether the node's first value element denotes a path.
func (n *Node) IsPath() bool {
	return paths.TakesPathValue(n.name, n.FirstValueElem())
}

// IsAbsPath reports whether the node's first value element is an absolute path.
func (n *Node) IsAbsPath() bool {
	return n.IsPath() && paths.IsAbs(n.FirstValueElem())
}

// IsRelPath reports whether the node's first value element is a relative path
// subject to server-root anchoring.
func (n *Node) IsRelPath() bool {
	return paths.TakesRelPathValue(n.name, n.FirstValueElem())
}

// IsOrigPath is IsPath against the pre-transform snapshot.
func (n *Node) IsOrigPath() bool {
	return paths.TakesPathValue(n.name, n.FirstOrigValueElem())
}

// IsOrigAbsPath is IsAbsPath against the pre-transform snapshot.
func (n *Node) IsOrigAbsPath() bool {
	return n.IsOrigPath() && paths.IsAbs(n.FirstOrigValueElem())
}

// IsOrigRelPath is IsRelPath against the pre-transform snapshot.
func (n *Node) IsOrigRelPath() bool {
	return paths.TakesRelPathValue(n.name, n.FirstOrigValueElem())
}
