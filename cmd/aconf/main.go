package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"aconf/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "aconf",
	Short: "Apache-style configuration tree tool",
	Long:  `aconf parses Apache-httpd-style configuration files into a directive tree and answers queries over it`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("rules", "", "TOML path-rewrite rule manifest")
	rootCmd.PersistentFlags().Bool("warn-unclosed", true, "warn about contexts still open at end of load")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color tri-state against the stream's TTY status.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
