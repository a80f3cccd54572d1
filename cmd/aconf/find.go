package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aconf/internal/conftree"
)

var findCmd = &cobra.Command{
	Use:   "find [flags] <conf|directory> <directive>...",
	Short: "Parse a configuration and list matching directives",
	Long:  `Find parses the target and prints every directive whose name matches one of the given names, in document order`,
	Args:  cobra.MinimumNArgs(2),
	RunE:  runFind,
}

func init() {
	findCmd.Flags().String("scope", "everywhere", "search scope (everywhere|siblings)")
	findCmd.Flags().Bool("count", false, "print only the number of matches")
}

func runFind(cmd *cobra.Command, args []string) error {
	scope, err := cmd.Flags().GetString("scope")
	if err != nil {
		return fmt.Errorf("failed to get scope flag: %w", err)
	}
	countOnly, err := cmd.Flags().GetBool("count")
	if err != nil {
		return fmt.Errorf("failed to get count flag: %w", err)
	}

	res, err := parseTarget(cmd, args[0])
	if err != nil {
		return err
	}
	tree := res.Session.Tree()
	names := args[1:]

	var matches []conftree.NodeID
	switch scope {
	case "everywhere":
		if countOnly {
			fmt.Fprintln(os.Stdout, tree.CountEverywhere(tree.Root(), names...))
			return nil
		}
		matches = tree.FindEverywhere(tree.Root(), names...)
	case "siblings":
		matches = tree.FindAmongSiblings(tree.Root(), names...)
		if countOnly {
			fmt.Fprintln(os.Stdout, len(matches))
			return nil
		}
	default:
		return fmt.Errorf("unknown scope: %s", scope)
	}

	for _, id := range matches {
		n := tree.Get(id)
		value, _ := n.Value()
		fmt.Fprintf(os.Stdout, "%s:%d: %s %s\n", n.Filename, n.Line, n.Name(), value)
	}
	return nil
}
