// Command peggen is the command-line entry point named as an out-of-scope
// external collaborator in spec.md §1: it has no hard engineering of its
// own, only wiring around the Build/Parse façade in the root peggen
// package. Grounded on cli/main.go's cobra root-command shape.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var noColor bool

func main() {
	root := &cobra.Command{
		Use:           "peggen",
		Short:         "Build and run PEG-style parsers from a grammar notation",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored diagnostic output")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		noColor = !shouldUseColor()
	}

	root.AddCommand(newBuildCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newWatchCmd())
	root.AddCommand(newManifestCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s%s\n", colorize("Error: ", colorRed), err)
		os.Exit(1)
	}
}
