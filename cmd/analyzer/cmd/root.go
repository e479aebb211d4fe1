package cmd

import (
	"log/slog"

	"github.com/DjordjeVuckovic/faroese-analyzer/internal/report"
	"github.com/spf13/cobra"
)

type options struct {
	format  string
	verbose bool
}

func (o *options) outputFormat() report.Format {
	return report.Format(o.format)
}

// NewRootCmd builds the analyzer command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "analyzer",
		Short: "Lexer and grammar checker for Faroese sentences",
		Long: `analyzer tokenizes sentences of a small Faroese vocabulary and checks them.

Vocabulary:
  subjects  Eg, Tú, Hann
  verbs     eri, ert, er
  objects   heima, skúla
  numbers, "=" and the operators + - * /

A sentence is valid when it is exactly Subject Verb Object ("Eg er heima").
With semantics enabled, Subject = Number ("Eg = 5") is accepted as well and
recorded in the symbol table.

With --format json, check and run print one document:
{"results": [...], "errors": [...], "symbols": {...}}.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetLogLoggerLevel(level)

			_, err := report.ParseFormat(opts.format)
			return err
		},
	}

	root.PersistentFlags().StringVarP(&opts.format, "format", "f", string(report.FormatText), "Output format: text, table or json")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	root.AddCommand(
		newCheckCmd(opts),
		newRunCmd(opts),
		newSuiteCmd(opts),
	)

	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
