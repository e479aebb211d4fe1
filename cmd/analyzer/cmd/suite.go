package cmd

import (
	"fmt"

	"github.com/DjordjeVuckovic/faroese-analyzer/internal/analysis"
	"github.com/DjordjeVuckovic/faroese-analyzer/internal/report"
	"github.com/DjordjeVuckovic/faroese-analyzer/internal/suite"
	"github.com/DjordjeVuckovic/faroese-analyzer/internal/symbols"
	"github.com/spf13/cobra"
)

func newSuiteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "suite <file.yaml>",
		Short:   "Run a YAML suite of sentences with expected verdicts",
		Example: `  analyzer suite internal/suite/testdata/basic.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := suite.LoadFromFile(args[0])
			if err != nil {
				return err
			}

			svc := analysis.NewService(symbols.NewMemoryTable())
			rpt, err := suite.Run(cmd.Context(), s, svc)
			if err != nil {
				return err
			}

			if err := report.WriteSuite(cmd.OutOrStdout(), rpt, opts.outputFormat()); err != nil {
				return err
			}

			if !rpt.OK() {
				return fmt.Errorf("suite %q failed: %d of %d cases", rpt.Name, rpt.Failed, len(rpt.Cases))
			}
			return nil
		},
	}
}
