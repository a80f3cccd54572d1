package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"aconf/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	switch format {
	case "pretty":
		printVersionPretty(os.Stdout)
		return nil
	case "json":
		return json.NewEncoder(os.Stdout).Encode(versionPayload{
			Tool:      "aconf",
			Version:   version.Version,
			GitCommit: version.GitCommit,
			BuildDate: version.BuildDate,
		})
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func printVersionPretty(w io.Writer) {
	fmt.Fprintf(w, "aconf %s\n", version.Version)
	if version.GitCommit != "" {
		fmt.Fprintf(w, "  commit: %s\n", version.GitCommit)
	}
	if version.BuildDate != "" {
		fmt.Fprintf(w, "  built:  %s\n", version.BuildDate)
	}
}
