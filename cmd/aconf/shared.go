package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aconf/internal/diagfmt"
	"aconf/internal/driver"
)

// driverOptions assembles driver.Options from the persistent flags.
func driverOptions(cmd *cobra.Command) (driver.Options, error) {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	rulesFile, err := cmd.Root().PersistentFlags().GetString("rules")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get rules flag: %w", err)
	}
	warnUnclosed, err := cmd.Root().PersistentFlags().GetBool("warn-unclosed")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get warn-unclosed flag: %w", err)
	}
	return driver.Options{
		MaxDiagnostics: maxDiagnostics,
		RulesFile:      rulesFile,
		WarnUnclosed:   warnUnclosed,
	}, nil
}

// reportDiagnostics renders a result's bag to stderr.
func reportDiagnostics(cmd *cobra.Command, res *driver.Result) {
	if res.Bag.Len() == 0 {
		return
	}
	res.Bag.Sort()
	diagfmt.Pretty(os.Stderr, res.Bag, res.Session.FileSet(), diagfmt.PrettyOpts{
		Color:      useColor(cmd, os.Stderr),
		ShowSource: true,
		ShowNotes:  true,
	})
}

// parseTarget runs the driver on one target and prints its diagnostics.
func parseTarget(cmd *cobra.Command, target string) (*driver.Result, error) {
	opts, err := driverOptions(cmd)
	if err != nil {
		return nil, err
	}
	res, err := driver.Parse(target, opts)
	if err != nil {
		return nil, err
	}
	reportDiagnostics(cmd, res)
	if res.Err != nil {
		return nil, res.Err
	}
	return res, nil
}
