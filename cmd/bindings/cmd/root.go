// Package cmd implements the bindings CLI commands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/go-drift/bindings/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "bindings",
	Short: "Two-way data binding toolkit for retained node trees",
	Long: `bindings synchronizes application data with mutable node state in a
retained tree: data changes are pushed into nodes, node-side edits are
queued and folded back into data on the next frame.

The CLI runs the bundled demos headlessly and serves a live inspector.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(*cobra.Command, []string) {
		errors.SetHandler(&errors.LogHandler{Verbose: verbose})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log stack traces with reported errors")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
