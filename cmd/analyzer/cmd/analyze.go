package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/DjordjeVuckovic/faroese-analyzer/internal/analysis"
	"github.com/DjordjeVuckovic/faroese-analyzer/internal/apperr"
	"github.com/DjordjeVuckovic/faroese-analyzer/internal/report"
	"github.com/DjordjeVuckovic/faroese-analyzer/internal/symbols"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check [sentence...]",
		Short: "Check sentences against the grammar",
		Long: `Check tokenizes each sentence and validates it against Subject Verb Object.
Every argument is one sentence. Without arguments, sentences are read from
stdin, one per line.`,
		Example: `  analyzer check "Eg er heima"
  echo "Tú ert skúla" | analyzer check -f table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return analyzeAll(cmd, opts, args, analysis.ModeGrammar, false)
		},
	}
}

func newRunCmd(opts *options) *cobra.Command {
	var showSymbols bool

	c := &cobra.Command{
		Use:   "run [sentence...]",
		Short: "Check grammar and semantics, recording assignments",
		Long: `Run checks each sentence against the grammar and the semantic rules.
Assignments such as "Eg = 5" are recorded in a symbol table shared by all
sentences of the invocation; the table is printed at the end.`,
		Example: `  analyzer run "Eg = 5" "Eg = 9" "Hann er heima"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return analyzeAll(cmd, opts, args, analysis.ModeFull, showSymbols)
		},
	}
	c.Flags().BoolVar(&showSymbols, "symbols", true, "Print the symbol table after the last sentence")

	return c
}

func analyzeAll(cmd *cobra.Command, opts *options, args []string, mode analysis.Mode, showSymbols bool) error {
	sentences := args
	if len(sentences) == 0 {
		var err error
		sentences, err = readSentences(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	svc := analysis.NewService(symbols.NewMemoryTable())
	if opts.outputFormat() == report.FormatJSON {
		return analyzeJSON(cmd, svc, sentences, mode, showSymbols)
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	for i, sentence := range sentences {
		if i > 0 {
			fmt.Fprintln(out)
		}

		res, err := svc.Analyze(ctx, sentence, mode)
		var ve *apperr.ValidationError
		if errors.As(err, &ve) {
			fmt.Fprintf(out, "⚠️ Error: %s\n", ve.Message)
			continue
		}
		if err != nil {
			return err
		}

		if err := report.WriteResult(out, res, opts.outputFormat()); err != nil {
			return err
		}
	}

	if !showSymbols {
		return nil
	}

	entries, err := svc.Symbols(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	return report.WriteSymbols(out, entries, opts.outputFormat())
}

// analyzeJSON writes every result of the invocation as one JSON document.
func analyzeJSON(cmd *cobra.Command, svc *analysis.Service, sentences []string, mode analysis.Mode, showSymbols bool) error {
	ctx := cmd.Context()
	batch := report.Batch{Results: make([]*analysis.Result, 0, len(sentences))}

	for _, sentence := range sentences {
		res, err := svc.Analyze(ctx, sentence, mode)
		var ve *apperr.ValidationError
		if errors.As(err, &ve) {
			batch.Errors = append(batch.Errors, ve.Message)
			continue
		}
		if err != nil {
			return err
		}
		batch.Results = append(batch.Results, res)
	}

	if showSymbols {
		entries, err := svc.Symbols(ctx)
		if err != nil {
			return err
		}
		batch.Symbols = entries
	}

	return report.WriteBatchJSON(cmd.OutOrStdout(), batch)
}

func readSentences(r io.Reader) ([]string, error) {
	var sentences []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sentences = append(sentences, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read sentences: %w", err)
	}

	return sentences, nil
}
