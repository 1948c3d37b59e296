package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var loggingCleanup func()

// NewRootCmd builds the monument command tree. loader supplies the real
// query-file parsing this module itself stays out of (spec.md §1); pass
// nil to fall back to a stub that rejects every load with ErrNoQueryLoader.
func NewRootCmd(loader QueryLoader) *cobra.Command {
	if loader == nil {
		loader = stubQueryLoader{}
	}

	var logLevel, logFile string

	cmd := &cobra.Command{
		Use:     "monument",
		Short:   "Search for change-ringing compositions",
		Version: version,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			logger, cleanup, err := setupLogging(loggingConfig{
				Level:         logLevel,
				FilePath:      logFile,
				WriteToStderr: true,
			})
			if err != nil {
				return err
			}
			loggingCleanup = cleanup
			slog.SetDefault(logger)
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if loggingCleanup != nil {
				loggingCleanup()
				loggingCleanup = nil
			}
			return nil
		},
	}
	cmd.SetVersionTemplate("monument version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Mirror logging to this file in addition to stderr")

	cmd.AddCommand(newSearchCmd(loader))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command against the stub loader. A caller wanting
// a real query format wires NewRootCmd(loader).Execute() directly instead
// of calling this from its own main.
func Execute() error {
	return NewRootCmd(nil).Execute()
}
