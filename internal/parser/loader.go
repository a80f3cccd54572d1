package parser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"aconf/internal/diag"
	"aconf/internal/lexer"
	"aconf/internal/source"
)

// Load parses the file or directory at path into the session's tree,
// appending at the current cursor. Only the entry the caller named here can
// fail the call; anything going wrong further down an include chain is
// reported and swallowed.
func (s *Session) Load(path string) error {
	s.loading = make(map[string]struct{})
	defer func() { s.loading = nil }()

	err := s.load(path, true)
	s.warnUnclosed()
	return err
}

// LoadBytes parses in-memory content as if it were a file named name,
// appending at the current cursor like Load does.
func (s *Session) LoadBytes(name string, content []byte) error {
	s.loading = make(map[string]struct{})
	defer func() { s.loading = nil }()

	id := s.fs.AddVirtual(name, content)
	s.parseFile(s.fs.Get(id))
	s.warnUnclosed()
	return nil
}

func (s *Session) warnUnclosed() {
	if !s.opts.WarnUnclosed {
		return
	}
	for id := s.cursor; id != s.tree.Root(); id = s.tree.Get(id).Parent() {
		n := s.tree.Get(id)
		s.report(diag.CfgUnclosedContext, diag.SevWarning, n.Pos(),
			fmt.Sprintf("context <%s> still open at end of load", n.Name()), nil)
	}
}

// load is the recursive entry shared by Load and inclusion directives.
func (s *Session) load(path string, top bool) error {
	canon := canonicalize(path)
	if _, active := s.loading[canon]; active {
		s.report(diag.CfgIncludeCycle, diag.SevWarning, source.Pos{Line: source.NoLine},
			fmt.Sprintf("refusing to re-enter %s: include cycle", path), nil)
		return nil
	}
	s.loading[canon] = struct{}{}
	defer delete(s.loading, canon)

	fi, err := os.Stat(path)
	if err != nil {
		if top {
			return fmt.Errorf("load %s: %w", path, err)
		}
		s.report(diag.CfgIncludeSkipped, diag.SevInfo, source.Pos{Line: source.NoLine},
			fmt.Sprintf("skipping included %s: %v", path, err), nil)
		return nil
	}

	if fi.IsDir() {
		return s.loadDir(path, top)
	}
	return s.loadFile(path, top)
}

// loadDir recurses into every entry of the directory in lexicographic order,
// so the resulting document order is deterministic.
func (s *Session) loadDir(path string, top bool) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		if top {
			return fmt.Errorf("load %s: %w", path, err)
		}
		s.report(diag.CfgIncludeSkipped, diag.SevInfo, source.Pos{Line: source.NoLine},
			fmt.Sprintf("skipping included %s: %v", path, err), nil)
		return nil
	}
	// os.ReadDir sorts by name and never returns "." or "..".
	for _, e := range entries {
		if err := s.load(filepath.Join(path, e.Name()), false); err != nil {
			return err
		}
	}
	return nil
}

// loadFile opens the file, runs every logical line through the tree builder
// and closes it on all paths. A close failure is diagnosed, never fatal.
func (s *Session) loadFile(path string, top bool) error {
	// #nosec G304 -- path comes from the caller or an Include directive
	f, err := os.Open(path)
	if err != nil {
		if top {
			return fmt.Errorf("load %s: %w", path, err)
		}
		s.report(diag.CfgIncludeSkipped, diag.SevInfo, source.Pos{Line: source.NoLine},
			fmt.Sprintf("skipping included %s: %v", path, err), nil)
		return nil
	}

	content, readErr := io.ReadAll(f)
	if closeErr := f.Close(); closeErr != nil {
		s.report(diag.CfgCloseFailed, diag.SevWarning, source.Pos{Line: source.NoLine},
			fmt.Sprintf("closing %s: %v", path, closeErr), nil)
	}
	if readErr != nil {
		if top {
			return fmt.Errorf("load %s: %w", path, readErr)
		}
		s.report(diag.CfgIncludeSkipped, diag.SevInfo, source.Pos{Line: source.NoLine},
			fmt.Sprintf("skipping included %s: %v", path, readErr), nil)
		return nil
	}

	id := s.fs.AddDisk(path, content)
	s.parseFile(s.fs.Get(id))
	return nil
}

// parseFile drives every logical line of file through the tree builder.
func (s *Session) parseFile(file *source.File) {
	sc := lexer.NewLineScanner(file)
	for ln, ok := sc.Next(); ok; ln, ok = sc.Next() {
		s.handleLine(file, ln)
	}
}

// canonicalize resolves symlinks where possible so that cycles reached via
// different spellings of the same path are still caught.
func canonicalize(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
