package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/peggen"
	"github.com/aledsdavies/peggen/engine"
	"github.com/aledsdavies/peggen/serialize"
)

func newParseCmd() *cobra.Command {
	var timing bool
	var format string

	cmd := &cobra.Command{
		Use:   "parse <grammar-file> <input-file>",
		Short: "Run a parser built from a grammar file against an input file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			grammarPath, inputPath := args[0], args[1]

			if format != "tree" && format != "cbor" {
				return fmt.Errorf("unknown --format %q, want \"tree\" or \"cbor\"", format)
			}

			grammarSrc, err := readGrammarFile(grammarPath)
			if err != nil {
				return err
			}
			input, err := readGrammarFile(inputPath)
			if err != nil {
				return err
			}

			p, err := peggen.Build(grammarSrc)
			if err != nil {
				return fmt.Errorf("building %s:\n%w", grammarPath, err)
			}

			var opts []engine.Option
			if timing {
				opts = append(opts, engine.WithTelemetryTiming())
			}

			root, tel, err := p.ParseWithTelemetry(input, opts...)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), colorize(err.Error(), colorRed))
				return fmt.Errorf("parse failed")
			}

			switch format {
			case "cbor":
				data, err := serialize.Marshal(root)
				if err != nil {
					return fmt.Errorf("encoding tree: %w", err)
				}
				if _, err := cmd.OutOrStdout().Write(data); err != nil {
					return fmt.Errorf("writing cbor tree: %w", err)
				}
			default:
				printTree(cmd.OutOrStdout(), root, input)
			}

			if tel != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s rule evals=%d atomic attempts=%d duration=%s\n",
					colorize("timing:", colorCyan), tel.RuleEvals, tel.AtomicAttempts, tel.Duration)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&timing, "timing", false, "Print rule-eval/atomic-attempt counters and wall time to stderr")
	cmd.Flags().StringVar(&format, "format", "tree", `Output format: "tree" (box-drawing render) or "cbor" (canonical CBOR bytes, see the serialize package)`)
	return cmd
}
