// Command paneswitch inspects view descriptors and replays navigation sequences
// against them.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/paneswitch/pkg/paneswitch"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		logLevel string
		logPath  string
	)

	root := &cobra.Command{
		Use:           "paneswitch",
		Short:         "Inspect view descriptors and replay navigation",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			paneswitch.Init(paneswitch.Options{
				LogPath:  logPath,
				LogLevel: logLevel,
				Debug:    logLevel == "debug",
			})
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			paneswitch.Close()
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "error", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logPath, "log-path", "", "also write logs to this file")

	root.AddCommand(newCheckCmd(), newWalkCmd())
	return root
}
