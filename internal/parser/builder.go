package parser

import (
	"fmt"
	"os"
	"strings"

	"aconf/internal/conftree"
	"aconf/internal/diag"
	"aconf/internal/lexer"
	"aconf/internal/source"
)

// includeLike marks the directives whose value pulls in further files.
var includeLike = map[string]bool{
	"include":        true,
	"accessconfig":   true,
	"resourceconfig": true,
}

// handleLine consumes one assembled logical line from f: an end tag moves the
// cursor up, a start tag opens a new context, anything else becomes a plain
// directive (possibly triggering path resolution and recursive inclusion).
func (s *Session) handleLine(f *source.File, ln lexer.Line) {
	pos := source.Pos{File: f.ID, Line: ln.Num}

	if name, ok := lexer.ParseEndTag(ln.Text); ok {
		s.closeContext(strings.ToLower(name), pos)
		return
	}

	if name, args, ok := lexer.ParseStartTag(ln.Text); ok {
		id := s.tree.NewChild(s.cursor, name)
		n := s.tree.Get(id)
		n.FileID, n.Filename, n.Line = f.ID, f.Path, ln.Num
		n.SetValue(args)
		n.SetOrigValue(args)
		s.cursor = id
		return
	}

	name, raw, hasValue := splitDirective(ln.Text)
	id := s.tree.NewChild(s.cursor, name)
	n := s.tree.Get(id)
	n.FileID, n.Filename, n.Line = f.ID, f.Path, ln.Num
	if hasValue {
		n.SetValue(raw)
		n.SetOrigValue(raw)
		s.resolvePath(n)
	}

	if includeLike[n.Name()] {
		target := n.FirstValueElem()
		// Inclusion happens at the current cursor; nothing new is opened.
		// A target that does not exist is skipped, not diagnosed.
		if target != "" {
			if _, err := os.Stat(target); err == nil {
				s.load(target, false)
			}
		}
	}
}

// closeContext applies the end-tag rules: unmatched and mismatched tags are
// warned about and dropped, leaving the cursor where it was.
func (s *Session) closeContext(closing string, pos source.Pos) {
	cur := s.tree.Get(s.cursor)
	if cur.Parent() == conftree.None {
		s.report(diag.CfgUnmatchedEndTag, diag.SevWarning, pos,
			fmt.Sprintf("end tag </%s> without an open context", closing), nil)
		return
	}
	if cur.Name() != closing {
		s.report(diag.CfgMismatchedEndTag, diag.SevWarning, pos,
			fmt.Sprintf("end tag </%s> does not match open context <%s>", closing, cur.Name()),
			[]diag.Note{{Pos: cur.Pos(), Msg: fmt.Sprintf("context <%s> opened here", cur.Name())}})
		return
	}
	s.cursor = cur.Parent()
}

// splitDirective splits a plain directive line into its name and raw value.
// The value keeps its internal whitespace; hasValue is false when the line is
// a bare name with no separator after it.
func splitDirective(text string) (name, raw string, hasValue bool) {
	i := strings.IndexAny(text, " \t")
	if i < 0 {
		return text, "", false
	}
	return text[:i], strings.TrimLeft(text[i:], " \t"), true
}
