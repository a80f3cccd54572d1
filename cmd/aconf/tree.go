package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aconf/internal/diagfmt"
)

var treeCmd = &cobra.Command{
	Use:   "tree [flags] <conf|directory>",
	Short: "Parse a configuration and dump its directive tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runTree,
}

func init() {
	treeCmd.Flags().Int("width", 0, "truncate lines to this display width (0=unlimited)")
	treeCmd.Flags().Bool("pos", false, "show filename:line for every node")
}

func runTree(cmd *cobra.Command, args []string) error {
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return fmt.Errorf("failed to get width flag: %w", err)
	}
	showPos, err := cmd.Flags().GetBool("pos")
	if err != nil {
		return fmt.Errorf("failed to get pos flag: %w", err)
	}

	res, err := parseTarget(cmd, args[0])
	if err != nil {
		return err
	}

	tree := res.Session.Tree()
	diagfmt.Tree(os.Stdout, tree, tree.Root(), diagfmt.TreeOpts{
		Color:   useColor(cmd, os.Stdout),
		Width:   width,
		ShowPos: showPos,
	})
	return nil
}
