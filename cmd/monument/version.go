package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// version/commit/date are set via ldflags at build time; they default to
// "dev"/"unknown" for a plain `go build`.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// buildInfo is the structured form of version/commit/date for --json.
type buildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

func versionString() string {
	return fmt.Sprintf("monument %s (commit: %s, built: %s, go: %s)", version, commit, date, runtime.Version())
}

func newVersionCmd() *cobra.Command {
	var jsonOutput bool
	var shortOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if shortOutput {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), version)
				return err
			}
			if jsonOutput {
				info := buildInfo{
					Version: version, Commit: commit, Date: date,
					GoVersion: runtime.Version(), OS: runtime.GOOS, Arch: runtime.GOARCH,
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), versionString())
			return err
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version info as JSON")
	cmd.Flags().BoolVar(&shortOutput, "short", false, "Output only the version number")
	return cmd
}
