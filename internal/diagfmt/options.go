package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	// ShowSource prints the physical source line a diagnostic points at.
	ShowSource bool
	ShowNotes  bool
}

// TreeOpts configures the directive-tree dump.
type TreeOpts struct {
	Color bool
	// Width truncates long lines; 0 means unlimited.
	Width int
	// ShowPos appends filename:line to every node.
	ShowPos bool
}
