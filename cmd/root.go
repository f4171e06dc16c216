package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dbgvis",
	Short: "Live telemetry visualizer for instrumented Go programs",
	Long: `dbgvis aggregates scalars, graph samples and structure snapshots
published by any number of goroutines and renders them live in the
terminal. Updates are fire-and-forget; a single render goroutine owns
the tree.`,
	// SilenceUsage prevents printing the usage block for errors we
	// already report ourselves.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "dbgvis version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newDemoCmd())
}
