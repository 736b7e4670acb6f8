package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/peggen"
	"github.com/aledsdavies/peggen/config"
)

// newManifestCmd builds every grammar a peggen.yaml project manifest
// lists, applying each entry's startRule override (if any) after the
// single-grammar build. One bad grammar does not stop the rest: the
// command reports every failure and exits non-zero only if at least one
// entry failed, the same "keep going, summarize at the end" shape
// cli/main.go's batch subcommands use.
func newManifestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest <peggen.yaml>",
		Short: "Build every grammar a project manifest lists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifestPath := args[0]
			m, err := config.Load(manifestPath)
			if err != nil {
				return err
			}

			dir := filepath.Dir(manifestPath)
			failed := 0
			for _, entry := range m.Grammars {
				grammarPath := entry.Path
				if !filepath.IsAbs(grammarPath) {
					grammarPath = filepath.Join(dir, grammarPath)
				}
				if err := buildManifestEntry(cmd, grammarPath, entry.StartRule); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %v\n", colorize("failed:", colorRed), grammarPath, err)
					failed++
					continue
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d grammars failed to build", failed, len(m.Grammars))
			}
			return nil
		},
	}
	return cmd
}

func buildManifestEntry(cmd *cobra.Command, grammarPath, startRule string) error {
	source, err := readGrammarFile(grammarPath)
	if err != nil {
		return err
	}

	p, err := peggen.Build(source)
	if err != nil {
		return err
	}

	if startRule != "" {
		p, err = p.WithStartRule(startRule)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d rules, start rule %q\n",
		colorize("built", colorGreen), grammarPath, len(p.RuleNames()), p.StartRule())
	return nil
}
