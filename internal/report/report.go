package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/DjordjeVuckovic/faroese-analyzer/internal/analysis"
	"github.com/DjordjeVuckovic/faroese-analyzer/internal/grammar"
)

type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatTable, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q, expected one of %v", s, []Format{FormatText, FormatTable, FormatJSON})
	}
}

// WriteResult renders one analysis result in the given format.
func WriteResult(w io.Writer, res *analysis.Result, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, res)
	case FormatTable:
		writeTokenTable(w, res)
		_, err := io.WriteString(w, verdictLines(res))
		return err
	default:
		_, err := io.WriteString(w, Text(res))
		return err
	}
}

// Text renders res as a token listing followed by the verdict lines.
func Text(res *analysis.Result) string {
	var b strings.Builder
	b.WriteString("🔍 Tokens:\n")
	for _, tok := range res.Tokens {
		b.WriteString(tok.String())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(verdictLines(res))
	return b.String()
}

func verdictLines(res *analysis.Result) string {
	var b strings.Builder
	b.WriteString(verdictLine("grammar", res.Grammar))
	if res.Semantics != nil {
		b.WriteString(verdictLine("semantics", *res.Semantics))
	}
	return b.String()
}

func verdictLine(check string, v grammar.Verdict) string {
	if v.Valid {
		return fmt.Sprintf("✅ %s: %s\n", check, v.Message)
	}
	return fmt.Sprintf("❌ %s: %s (%s)\n", check, v.Message, v.Failure)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Batch is the outcome of analyzing several sentences in one invocation.
type Batch struct {
	Results []*analysis.Result
	// Errors holds the messages of rejected inputs, such as blank sentences.
	Errors []string
	// Symbols is nil when the symbol table is not part of the output.
	Symbols map[string]string
}

// WriteBatchJSON renders b as a single JSON document:
// {"results": [...], "errors": [...], "symbols": {...}}.
func WriteBatchJSON(w io.Writer, b Batch) error {
	results := b.Results
	if results == nil {
		results = []*analysis.Result{}
	}

	doc := map[string]any{"results": results}
	if len(b.Errors) > 0 {
		doc["errors"] = b.Errors
	}
	if b.Symbols != nil {
		doc["symbols"] = b.Symbols
	}
	return writeJSON(w, doc)
}
