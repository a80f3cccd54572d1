package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aconf/internal/diagfmt"
	"aconf/internal/snapshot"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Save or load a parsed configuration tree",
}

var snapshotWriteCmd = &cobra.Command{
	Use:   "write [flags] <conf|directory> <out.mp>",
	Short: "Parse a configuration and write its tree as a msgpack snapshot",
	Args:  cobra.ExactArgs(2),
	RunE:  runSnapshotWrite,
}

var snapshotReadCmd = &cobra.Command{
	Use:   "read [flags] <in.mp>",
	Short: "Load a snapshot and dump the restored tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotRead,
}

func init() {
	snapshotCmd.AddCommand(snapshotWriteCmd)
	snapshotCmd.AddCommand(snapshotReadCmd)
}

func runSnapshotWrite(cmd *cobra.Command, args []string) error {
	res, err := parseTarget(cmd, args[0])
	if err != nil {
		return err
	}
	s := res.Session
	if err := snapshot.Write(args[1], s.Tree(), s.ServerRoot()); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

func runSnapshotRead(cmd *cobra.Command, args []string) error {
	tree, serverRoot, err := snapshot.Read(args[0])
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}
	if serverRoot != "" {
		fmt.Fprintf(os.Stdout, "# ServerRoot %s\n", serverRoot)
	}
	diagfmt.Tree(os.Stdout, tree, tree.Root(), diagfmt.TreeOpts{
		Color: useColor(cmd, os.Stdout),
	})
	return nil
}
