package source

import "fmt"

// NoLine is the sentinel line number for positions not yet assigned.
const NoLine int32 = -1

// Pos identifies a logical line inside a file of a FileSet.
type Pos struct {
	File FileID
	Line int32 // 1-based, NoLine if unset
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.File, p.Line)
}

// Before reports whether p sorts before q (by file, then line).
func (p Pos) Before(q Pos) bool {
	if p.File != q.File {
		return p.File < q.File
	}
	return p.Line < q.Line
}
