package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aconf/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <conf|directory>...",
	Short: "Parse configurations and report diagnostics",
	Long:  `Check parses each target into its own directive tree and prints every structural warning it finds`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("summary", false, "print a per-target node count")
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}
	summary, err := cmd.Flags().GetBool("summary")
	if err != nil {
		return fmt.Errorf("failed to get summary flag: %w", err)
	}

	results, err := driver.ParseMany(context.Background(), args, opts)
	if err != nil {
		return err
	}

	var failed error
	for _, res := range results {
		reportDiagnostics(cmd, res)
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.Target, res.Err)
			failed = errors.New("one or more targets failed to load")
			continue
		}
		if summary {
			fmt.Fprintf(os.Stdout, "%s: %d directives, %d warnings\n",
				res.Target, res.Session.Tree().Len()-1, res.Bag.Len())
		}
	}
	return failed
}
