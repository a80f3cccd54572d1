// Package rules loads path-rewrite rule manifests (TOML) and compiles them
// into the parser's pre/post transform hooks, so path rewriting is usable
// from the CLI without writing Go code.
package rules

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"aconf/internal/parser"
)

// Rule rewrites one path prefix. An empty Directive applies to every
// classified directive.
type Rule struct {
	Directive string `toml:"directive"`
	Prefix    string `toml:"prefix"`
	Replace   string `toml:"replace"`
}

// File is a parsed rule manifest: [[pre]] rules run before server-root
// anchoring, [[post]] rules after. Within a stage the first matching rule
// wins.
type File struct {
	Pre  []Rule `toml:"pre"`
	Post []Rule `toml:"post"`
}

// ErrEmptyPrefix indicates a rule without a prefix to match.
var ErrEmptyPrefix = errors.New("rule has empty prefix")

// Load parses and validates a rule manifest.
func Load(path string) (*File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	for i, r := range append(append([]Rule{}, f.Pre...), f.Post...) {
		if r.Prefix == "" {
			return nil, fmt.Errorf("%s: rule %d: %w", path, i+1, ErrEmptyPrefix)
		}
	}
	return &f, nil
}

// compile turns a rule list into a transform hook; nil when the list is empty.
func compile(rs []Rule) parser.TransformPathFunc {
	if len(rs) == 0 {
		return nil
	}
	return func(_ *parser.Session, directive, candidate string) string {
		for _, r := range rs {
			if r.Directive != "" && !strings.EqualFold(r.Directive, directive) {
				continue
			}
			if strings.HasPrefix(candidate, r.Prefix) {
				return r.Replace + candidate[len(r.Prefix):]
			}
		}
		return candidate
	}
}

// Apply returns a copy of opts with the manifest's hooks filled in. Hooks
// already present in opts are kept and the manifest stage is chained after
// them.
func (f *File) Apply(opts parser.Options) parser.Options {
	opts.PreTransformPath = chain(opts.PreTransformPath, compile(f.Pre))
	opts.PostTransformPath = chain(opts.PostTransformPath, compile(f.Post))
	return opts
}

func chain(a, b parser.TransformPathFunc) parser.TransformPathFunc {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(s *parser.Session, directive, candidate string) string {
		return b(s, directive, a(s, directive, candidate))
	}
}
