package parser

import (
	"path/filepath"

	"aconf/internal/conftree"
	"aconf/internal/paths"
)

// resolvePath rewrites the first value element of a freshly parsed directive
// per the classification tables: record ServerRoot, run the pre hook, anchor
// a relative path at the server root, run the post hook, write the element
// back. Directives that are not path-classified are left untouched.
func (s *Session) resolvePath(n *conftree.Node) {
	name := n.Name()
	kind, classified := paths.TakesPath[name]
	if !classified {
		return
	}
	elem := n.FirstValueElem()
	if elem == "" || paths.IsNullDevice(elem) {
		return
	}

	// A top-level ServerRoot is recorded verbatim; no transform applies.
	if name == "serverroot" && s.cursor == s.tree.Root() {
		s.serverRoot = elem
		return
	}

	if !paths.Eval(kind, elem) {
		return
	}

	if s.opts.PreTransformPath != nil {
		elem = s.opts.PreTransformPath(s, name, elem)
	}
	if s.serverRoot != "" && paths.TakesRelPathValue(name, elem) {
		elem = s.serverRoot + string(filepath.Separator) + elem
	}
	if s.opts.PostTransformPath != nil {
		elem = s.opts.PostTransformPath(s, name, elem)
	}

	n.SetFirstValueElem(elem)
}
