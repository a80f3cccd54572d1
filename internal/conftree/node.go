package conftree

import (
	"strings"

	"aconf/internal/source"
)

// NodeID addresses a node inside its tree's arena. 0 means "no node".
type NodeID uint32

// None is the absent-node sentinel.
const None NodeID = 0

// RootName is the reserved name of the sentinel root node.
const RootName = "root"

// Node is one directive or context of the configuration tree. The zero value
// is not usable; nodes are created through Tree.
type Node struct {
	name string // lowercase, non-empty once assigned

	// Live value and the pre-transform snapshot. Each is either fully
	// defined (string plus elements) or nil; the parser never reads orig,
	// it exists for caller bookkeeping.
	val  *Value
	orig *Value

	// Where the node's text occurred. This can differ from the file the
	// load started with, because of inclusion.
	FileID   source.FileID
	Filename string
	Line     int32 // 1-based logical line, source.NoLine before assignment

	parent   NodeID
	children []NodeID
}

// Name returns the lowercased directive or context name.
func (n *Node) Name() string { return n.name }

// SetName lowercases and stores name.
func (n *Node) SetName(name string) {
	n.name = strings.ToLower(name)
}

// Value returns the raw string form, with ok=false when undefined.
func (n *Node) Value() (string, bool) {
	if n.val == nil {
		return "", false
	}
	return n.val.String(), true
}

// ValueElems returns the element sequence, with ok=false when undefined.
func (n *Node) ValueElems() ([]string, bool) {
	if n.val == nil {
		return nil, false
	}
	return n.val.Elems(), true
}

// SetValue defines the value from its raw string form; the element sequence
// is derived by tokenizing.
func (n *Node) SetValue(raw string) {
	n.val = NewValue(raw)
}

// SetValueElems defines the value from its element sequence; the string form
// is derived by formatting. The slice is adopted, not copied.
func (n *Node) SetValueElems(elems []string) {
	n.val = ValueFromElems(elems)
}

// ClearValue makes the value undefined (distinct from empty).
func (n *Node) ClearValue() {
	n.val = nil
}

// OrigValue returns the snapshot string form, with ok=false when undefined.
func (n *Node) OrigValue() (string, bool) {
	if n.orig == nil {
		return "", false
	}
	return n.orig.String(), true
}

// OrigValueElems returns the snapshot elements, with ok=false when undefined.
func (n *Node) OrigValueElems() ([]string, bool) {
	if n.orig == nil {
		return nil, false
	}
	return n.orig.Elems(), true
}

// SetOrigValue defines the snapshot from its raw string form.
func (n *Node) SetOrigValue(raw string) {
	n.orig = NewValue(raw)
}

// SetOrigValueElems defines the snapshot from its element sequence.
func (n *Node) SetOrigValueElems(elems []string) {
	n.orig = ValueFromElems(elems)
}

// ClearOrigValue makes the snapshot undefined.
func (n *Node) ClearOrigValue() {
	n.orig = nil
}

// Parent returns the enclosing context, None for the root.
func (n *Node) Parent() NodeID { return n.parent }

// Children returns the ordered child IDs (document order). READONLY.
func (n *Node) Children() []NodeID { return n.children }

// Pos returns the node's position for diagnostics.
func (n *Node) Pos() source.Pos {
	return source.Pos{File: n.FileID, Line: n.Line}
}

// FirstValueElem returns the first value element, "" when the value is
// undefined or empty.
func (n *Node) FirstValueElem() string {
	if n.val == nil {
		return ""
	}
	return n.val.First()
}

// FirstOrigValueElem returns the first snapshot element, "" when undefined or
// empty.
func (n *Node) FirstOrigValueElem() string {
	if n.orig == nil {
		return ""
	}
	return n.orig.First()
}

// SetFirstValueElem replaces the first value element and regenerates the
// string form. No-op when the value is undefined.
func (n *Node) SetFirstValueElem(elem string) {
	if n.val == nil {
		return
	}
	n.val.SetFirst(elem)
}
