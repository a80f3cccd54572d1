package diagfmt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"aconf/internal/conftree"
)

var (
	nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	posStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Tree writes an indented dump of the subtree under start, one node per
// line, in document order.
func Tree(w io.Writer, t *conftree.Tree, start conftree.NodeID, opts TreeOpts) {
	n := t.Get(start)
	if n == nil {
		return
	}
	fmt.Fprintln(w, limit(label(n, opts), opts.Width))
	children := t.Get(start).Children()
	for i, c := range children {
		dumpNode(w, t, c, "", i == len(children)-1, opts)
	}
}

func dumpNode(w io.Writer, t *conftree.Tree, id conftree.NodeID, prefix string, last bool, opts TreeOpts) {
	branch, nested := "├── ", "│   "
	if last {
		branch, nested = "└── ", "    "
	}
	fmt.Fprintln(w, limit(prefix+branch+label(t.Get(id), opts), opts.Width))

	children := t.Get(id).Children()
	for i, c := range children {
		dumpNode(w, t, c, prefix+nested, i == len(children)-1, opts)
	}
}

func label(n *conftree.Node, opts TreeOpts) string {
	name := n.Name()
	if opts.Color {
		name = nameStyle.Render(name)
	}
	out := name
	if v, ok := n.Value(); ok && v != "" {
		out += " " + v
	}
	if opts.ShowPos && n.Filename != "" {
		pos := fmt.Sprintf("  (%s:%d)", n.Filename, n.Line)
		if opts.Color {
			pos = posStyle.Render(pos)
		}
		out += pos
	}
	return out
}

func limit(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
