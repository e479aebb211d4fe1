package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/DjordjeVuckovic/faroese-analyzer/internal/suite"
)

// WriteSuite renders a suite run: one row per case plus a summary line.
func WriteSuite(w io.Writer, rpt *suite.Report, format Format) error {
	if format == FormatJSON {
		return writeJSON(w, rpt)
	}

	table := newTable(w, []string{"CASE", "RESULT", "DETAILS"})
	for _, c := range rpt.Cases {
		status := "PASS"
		if !c.Passed {
			status = "FAIL"
		}
		table.Append([]string{c.Name, status, strings.Join(c.Mismatches, "; ")})
	}
	table.Render()

	_, err := fmt.Fprintf(w, "\n=== %s: %d passed, %d failed ===\n", rpt.Name, rpt.Passed, rpt.Failed)
	return err
}
