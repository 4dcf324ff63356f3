// Package commands implements the bufreader command line.
package commands

import (
	configcmd "github.com/marmos91/bufreader/cmd/bufreader/commands/config"
	"github.com/spf13/cobra"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bufreader",
		Short: "Decode binary buffers field by field",
		Long: `bufreader reads a file (or stdin) with a sequential cursor and prints
each decoded value with the offsets it was read from.

Use "bufreader [command] --help" for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default: $XDG_CONFIG_HOME/bufreader/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (DEBUG|INFO|WARN|ERROR)")

	rootCmd.AddCommand(newReadCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(configcmd.NewCmd())

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	return rootCmd
}

// Execute runs the command line. Called by main.main().
func Execute() error {
	return NewRootCmd().Execute()
}
