// Package parser drives the directive-tree construction: it assembles logical
// lines, matches context tags, resolves classified paths against the server
// root, and follows inclusion directives recursively.
package parser

import (
	"aconf/internal/conftree"
	"aconf/internal/diag"
	"aconf/internal/source"
)

// TransformPathFunc rewrites a candidate path of a classified directive.
// It receives the session, the lowercased directive name and the candidate,
// and returns the replacement.
type TransformPathFunc func(s *Session, directive, candidate string) string

// Options configures a Session. The struct is copied at construction and
// immutable afterwards.
type Options struct {
	// PreTransformPath runs before server-root anchoring, PostTransformPath
	// after. Nil means identity.
	PreTransformPath  TransformPathFunc
	PostTransformPath TransformPathFunc

	// Reporter receives structural warnings; nil drops them.
	Reporter diag.Reporter

	// WarnUnclosed emits a warning for every context still open when a
	// top-level Load finishes. Off by default so that configurations split
	// across several Load calls stay warning-free.
	WarnUnclosed bool
}

// Session owns one directive tree and the state needed to keep building it
// across multiple Load calls: the cursor survives between calls, so a context
// opened by one file can be closed by a later one.
type Session struct {
	fs     *source.FileSet
	tree   *conftree.Tree
	cursor conftree.NodeID

	// serverRoot is recorded from a top-level ServerRoot directive and
	// empty until then.
	serverRoot string

	opts Options

	// loading tracks the canonical paths on the active include stack of
	// the current top-level Load, to refuse include cycles.
	loading map[string]struct{}
}

// New creates an empty session.
func New(opts Options) *Session {
	tree := conftree.New()
	return &Session{
		fs:     source.NewFileSet(),
		tree:   tree,
		cursor: tree.Root(),
		opts:   opts,
	}
}

// Tree returns the session's directive tree.
func (s *Session) Tree() *conftree.Tree { return s.tree }

// Root returns the root node ID.
func (s *Session) Root() conftree.NodeID { return s.tree.Root() }

// Cursor returns the node currently accepting new children.
func (s *Session) Cursor() conftree.NodeID { return s.cursor }

// ServerRoot returns the recorded server root, "" if none was seen.
func (s *Session) ServerRoot() string { return s.serverRoot }

// SetServerRoot overrides the recorded server root.
func (s *Session) SetServerRoot(root string) { s.serverRoot = root }

// FileSet returns the files touched by this session, for diagnostics display.
func (s *Session) FileSet() *source.FileSet { return s.fs }

func (s *Session) report(code diag.Code, sev diag.Severity, pos source.Pos, msg string, notes []diag.Note) {
	if s.opts.Reporter != nil {
		s.opts.Reporter.Report(code, sev, pos, msg, notes)
	}
}
