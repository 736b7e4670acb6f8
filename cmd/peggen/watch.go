package main

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/aledsdavies/peggen"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <grammar-file>",
		Short: "Rebuild the grammar every time the file changes on disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grammarPath := args[0]

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("starting watcher: %w", err)
			}
			defer watcher.Close()

			if err := watcher.Add(grammarPath); err != nil {
				return fmt.Errorf("watching %s: %w", grammarPath, err)
			}

			rebuild(cmd, grammarPath)

			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
						rebuild(cmd, grammarPath)
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", colorize("watch error:", colorRed), err)
				}
			}
		},
	}
	return cmd
}

// rebuild recompiles grammarPath and prints either a success summary or
// the build diagnostic; it never stops the watch loop on a bad build,
// since the whole point of watch is to recover once the file is fixed.
func rebuild(cmd *cobra.Command, grammarPath string) {
	source, err := os.ReadFile(grammarPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s reading %s: %v\n", colorize("error:", colorRed), grammarPath, err)
		return
	}

	p, err := peggen.Build(string(source))
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s\n%v\n", colorize("build failed:", colorRed), err)
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d rules, start rule %q\n",
		colorize("rebuilt", colorGreen), grammarPath, len(p.RuleNames()), p.StartRule())
}
