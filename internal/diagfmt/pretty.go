package diagfmt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"aconf/internal/diag"
	"aconf/internal/source"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func sevStyle(sev diag.Severity) lipgloss.Style {
	switch sev {
	case diag.SevError:
		return errorStyle
	case diag.SevWarning:
		return warningStyle
	default:
		return infoStyle
	}
}

// Pretty renders every diagnostic of the bag in a human-readable form:
//
//	<path>:<line>: <SEV> <Code>: <message>
//
// followed, when enabled, by the source line and the notes. Callers that want
// deterministic output should bag.Sort() first.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			formatPos(fs, d.Primary),
			styled(opts.Color, sevStyle(d.Severity), d.Severity.String()),
			d.Code.String(),
			d.Message)

		if opts.ShowSource {
			if line := sourceLine(fs, d.Primary); line != "" {
				fmt.Fprintf(w, "    %s\n", line)
			}
		}
		if opts.ShowNotes {
			for _, n := range d.Notes {
				fmt.Fprintf(w, "  %s %s: %s\n",
					styled(opts.Color, noteStyle, "note:"),
					formatPos(fs, n.Pos), n.Msg)
			}
		}
	}
}

func formatPos(fs *source.FileSet, pos source.Pos) string {
	path := "<input>"
	if fs != nil {
		if p := fs.Path(pos.File); p != "" {
			path = p
		}
	}
	if pos.Line == source.NoLine {
		return path
	}
	return fmt.Sprintf("%s:%d", path, pos.Line)
}

func sourceLine(fs *source.FileSet, pos source.Pos) string {
	if fs == nil || pos.Line <= 0 {
		return ""
	}
	f := fs.Get(pos.File)
	if f == nil {
		return ""
	}
	return f.Line(int(pos.Line))
}

func styled(enabled bool, style lipgloss.Style, s string) string {
	if !enabled {
		return s
	}
	return style.Render(s)
}
