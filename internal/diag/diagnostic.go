package diag

import (
	"aconf/internal/source"
)

// Note carries secondary context for a diagnostic, e.g. "context opened here".
type Note struct {
	Pos source.Pos
	Msg string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Pos
	Notes    []Note
}

// WithNote returns a copy of d with an extra note appended.
func (d Diagnostic) WithNote(pos source.Pos, msg string) Diagnostic {
	notes := make([]Note, 0, len(d.Notes)+1)
	notes = append(notes, d.Notes...)
	notes = append(notes, Note{Pos: pos, Msg: msg})
	d.Notes = notes
	return d
}
