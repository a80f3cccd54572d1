// Package driver wires the parsing layers together for the CLI: it builds
// sessions, applies rule manifests, collects diagnostics into bags and fans
// out over independent targets.
package driver

import (
	"aconf/internal/diag"
	"aconf/internal/parser"
	"aconf/internal/rules"
)

// Options configures a driver run.
type Options struct {
	// MaxDiagnostics bounds the bag; 0 falls back to a sane default.
	MaxDiagnostics int
	// WarnUnclosed diagnoses contexts still open at end of load.
	WarnUnclosed bool
	// RulesFile optionally names a TOML path-rewrite manifest.
	RulesFile string
}

const defaultMaxDiagnostics = 100

// Result is the outcome of parsing one target. Session and Bag are always
// set; Err records a top-level load failure (the partial tree survives it).
type Result struct {
	Target  string
	Session *parser.Session
	Bag     *diag.Bag
	Err     error
}

// Parse loads one file or directory target into a fresh session.
func Parse(target string, opts Options) (*Result, error) {
	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = defaultMaxDiagnostics
	}
	bag := diag.NewBag(maxDiag)

	popts := parser.Options{
		Reporter:     &diag.BagReporter{Bag: bag},
		WarnUnclosed: opts.WarnUnclosed,
	}
	if opts.RulesFile != "" {
		rf, err := rules.Load(opts.RulesFile)
		if err != nil {
			return nil, err
		}
		popts = rf.Apply(popts)
	}

	s := parser.New(popts)
	res := &Result{Target: target, Session: s, Bag: bag}
	res.Err = s.Load(target)
	return res, nil
}
