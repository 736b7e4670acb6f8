package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/peggen"
	"github.com/aledsdavies/peggen/regexcache"
)

func newBuildCmd() *cobra.Command {
	var cacheDir string

	cmd := &cobra.Command{
		Use:   "build <grammar-file>",
		Short: "Compile a grammar file, reporting the first error if it doesn't build",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grammarPath := args[0]
			source, err := readGrammarFile(grammarPath)
			if err != nil {
				return err
			}

			digest := regexcache.Digest([]byte(source))
			if cacheDir != "" {
				if cached, ok := readDigestCache(cacheDir, grammarPath); ok && cached == digest {
					fmt.Fprintln(cmd.OutOrStdout(), "up to date (cached build)")
					return nil
				}
			}

			p, err := peggen.Build(source)
			if err != nil {
				return fmt.Errorf("building %s:\n%w", grammarPath, err)
			}

			if cacheDir != "" {
				if err := writeDigestCache(cacheDir, grammarPath, digest); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", colorize("warning:", colorYellow), err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "built %s: %d rules, start rule %q\n",
				grammarPath, len(p.RuleNames()), p.StartRule())
			return nil
		},
	}

	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "Directory to store build-cache digests in, skipping rebuilds of an unchanged grammar")
	return cmd
}
