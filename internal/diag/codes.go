package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Structural: context tag matching.
	CfgUnmatchedEndTag  Code = 1001
	CfgMismatchedEndTag Code = 1002
	CfgUnclosedContext  Code = 1003

	// Inclusion.
	CfgIncludeSkipped Code = 2001
	CfgIncludeCycle   Code = 2002

	// Resources.
	CfgCloseFailed Code = 3001
)

var codeNames = map[Code]string{
	UnknownCode:         "Unknown",
	CfgUnmatchedEndTag:  "CfgUnmatchedEndTag",
	CfgMismatchedEndTag: "CfgMismatchedEndTag",
	CfgUnclosedContext:  "CfgUnclosedContext",
	CfgIncludeSkipped:   "CfgIncludeSkipped",
	CfgIncludeCycle:     "CfgIncludeCycle",
	CfgCloseFailed:      "CfgCloseFailed",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", uint16(c))
}
