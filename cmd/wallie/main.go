// Wallie is the terminal edition of the Wallie sign-up flow.
//
// It shows the sign-up form with its calling code picker, fed by a remote
// country directory, and offers direct commands for inspecting that
// directory and the local configuration.
//
// Usage:
//
//	wallie [command] [flags]
//
// Running without arguments launches the sign-up screen.
// See 'wallie --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wallie/wallie/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// errReported marks failures whose details were already printed
var errReported = errors.New("error reported")

var rootCmd = &cobra.Command{
	Use:   "wallie",
	Short: "Wallie sign-up in the terminal",
	Long: `Wallie brings the sign-up screen to the terminal.

The screen collects a full name, a phone number with its international
calling code, and a password. Calling codes come from a remote country
directory fetched when the screen opens.

If no command is specified, the sign-up screen will launch automatically.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the sign-up screen when no subcommand provided
		return runSignUp(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "wallie %s\n", version.Full())
	},
}
