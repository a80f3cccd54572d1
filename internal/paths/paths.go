// Package paths classifies directive values as filesystem paths and decides
// when relative values get anchored at the server root.
//
// Classification is data, not code: two exported tables keyed by lowercased
// directive name map to a predicate kind, and a single Eval function
// interprets the kind. Callers may extend the tables before parsing.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// PredicateKind selects how a directive's first value element is tested
// before being treated as a path.
type PredicateKind uint8

const (
	// NotNullDevice: any value except the platform null device is a path.
	NotNullDevice PredicateKind = iota + 1
	// NotNullDeviceOrPipe additionally rejects piped-command values ("| cmd").
	NotNullDeviceOrPipe
	// NotNullDeviceOrPipeOrSyslog additionally rejects syslog targets.
	NotNullDeviceOrPipeOrSyslog
)

// TakesPath maps directives whose first value element may denote a path.
// Directives absent from the table are never path-classified.
var TakesPath = map[string]PredicateKind{
	"accessconfig":     NotNullDevice,
	"agentlog":         NotNullDeviceOrPipe,
	"authdbmgroupfile": NotNullDevice,
	"authdbmuserfile":  NotNullDevice,
	"authgroupfile":    NotNullDevice,
	"authuserfile":     NotNullDevice,
	"cacheroot":        NotNullDevice,
	"cookielog":        NotNullDeviceOrPipe,
	"coredumpdirectory": NotNullDevice,
	"customlog":        NotNullDeviceOrPipe,
	"documentroot":     NotNullDevice,
	"errorlog":         NotNullDeviceOrPipeOrSyslog,
	"include":          NotNullDevice,
	"loadfile":         NotNullDevice,
	"loadmodule":       NotNullDevice,
	"lockfile":         NotNullDevice,
	"mimemagicfile":    NotNullDevice,
	"mmapfile":         NotNullDevice,
	"pidfile":          NotNullDevice,
	"refererlog":       NotNullDeviceOrPipe,
	"resourceconfig":   NotNullDevice,
	"rewritelock":      NotNullDevice,
	"rewritelog":       NotNullDeviceOrPipe,
	"scoreboardfile":   NotNullDevice,
	"scriptlog":        NotNullDeviceOrPipe,
	"serverroot":       NotNullDevice,
	"transferlog":      NotNullDeviceOrPipe,
	"typesconfig":      NotNullDevice,
}

// TakesRelPath flags the path directives whose relative values are rewritten
// against the server root. Path directives absent here are treated as already
// resolved and left untouched even when relative.
var TakesRelPath = map[string]PredicateKind{
	"accessconfig":   NotNullDevice,
	"authgroupfile":  NotNullDevice,
	"authuserfile":   NotNullDevice,
	"cookielog":      NotNullDeviceOrPipe,
	"customlog":      NotNullDeviceOrPipe,
	"errorlog":       NotNullDeviceOrPipeOrSyslog,
	"include":        NotNullDevice,
	"loadfile":       NotNullDevice,
	"loadmodule":     NotNullDevice,
	"lockfile":       NotNullDevice,
	"mimemagicfile":  NotNullDevice,
	"pidfile":        NotNullDevice,
	"refererlog":     NotNullDeviceOrPipe,
	"resourceconfig": NotNullDevice,
	"rewritelock":    NotNullDevice,
	"rewritelog":     NotNullDeviceOrPipe,
	"scoreboardfile": NotNullDevice,
	"scriptlog":      NotNullDeviceOrPipe,
	"transferlog":    NotNullDeviceOrPipe,
	"typesconfig":    NotNullDevice,
}

// IsNullDevice reports whether elem names the platform's discard device.
func IsNullDevice(elem string) bool {
	return elem == os.DevNull
}

// IsPiped reports whether elem is a piped-command target.
func IsPiped(elem string) bool {
	return strings.HasPrefix(elem, "|")
}

// IsSyslog reports whether elem is a syslog target ("syslog" or "syslog:facility").
func IsSyslog(elem string) bool {
	return elem == "syslog" || strings.HasPrefix(elem, "syslog:")
}

// Eval interprets kind against elem. The null-device exclusion applies to
// every kind. Unknown kinds never match.
func Eval(kind PredicateKind, elem string) bool {
	if IsNullDevice(elem) {
		return false
	}
	switch kind {
	case NotNullDevice:
		return true
	case NotNullDeviceOrPipe:
		return !IsPiped(elem)
	case NotNullDeviceOrPipeOrSyslog:
		return !IsPiped(elem) && !IsSyslog(elem)
	}
	return false
}

// IsAbs reports whether elem is platform-absolute (leading separator, or a
// drive-letter prefix where the platform has those).
func IsAbs(elem string) bool {
	return filepath.IsAbs(elem)
}

// TakesPathValue reports whether the directive name with first element elem
// denotes a path: name classified, elem defined and non-empty, and the
// predicate passing.
func TakesPathValue(name, elem string) bool {
	kind, ok := TakesPath[strings.ToLower(name)]
	if !ok || elem == "" {
		return false
	}
	return Eval(kind, elem)
}

// TakesRelPathValue is TakesPathValue against the relative-path table, true
// only for values that are not already absolute.
func TakesRelPathValue(name, elem string) bool {
	kind, ok := TakesRelPath[strings.ToLower(name)]
	if !ok || elem == "" {
		return false
	}
	return Eval(kind, elem) && !IsAbs(elem)
}
