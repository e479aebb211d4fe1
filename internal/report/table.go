package report

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/DjordjeVuckovic/faroese-analyzer/internal/analysis"
	"github.com/olekukonko/tablewriter"
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	return table
}

func writeTokenTable(w io.Writer, res *analysis.Result) {
	table := newTable(w, []string{"#", "KIND", "TEXT"})
	for i, tok := range res.Tokens {
		table.Append([]string{strconv.Itoa(i), tok.Kind.String(), tok.Text})
	}
	table.Render()
}

// WriteSymbols renders the symbol table sorted by name.
func WriteSymbols(w io.Writer, entries map[string]string, format Format) error {
	if format == FormatJSON {
		return writeJSON(w, map[string]any{"symbols": entries})
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	slices.Sort(names)

	if format == FormatTable {
		table := newTable(w, []string{"NAME", "VALUE"})
		for _, name := range names {
			table.Append([]string{name, entries[name]})
		}
		table.Render()
		return nil
	}

	if _, err := fmt.Fprintf(w, "📋 Symbols (%d):\n", len(entries)); err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%s = %s\n", name, entries[name]); err != nil {
			return err
		}
	}
	return nil
}
