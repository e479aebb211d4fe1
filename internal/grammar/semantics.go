package grammar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/faroese-analyzer/internal/lexer"
	"github.com/DjordjeVuckovic/faroese-analyzer/internal/symbols"
)

const (
	msgNoTokens      = "there are no tokens to analyze"
	msgSentenceSense = "the sentence makes sense"
	msgSemantic      = "the structure has no valid meaning"
	msgSymbolTable   = "the symbol table is unavailable"
)

// CheckSemantics accepts a Subject Verb Object sentence, or a Subject = Number
// assignment which is recorded in table under the subject's text.
// Failures of table are logged and reported as an invalid verdict.
func CheckSemantics(ctx context.Context, tokens []lexer.Token, table symbols.Table) Verdict {
	if len(tokens) == 0 {
		return invalid(FailureNoTokens, msgNoTokens)
	}

	if hasShape(tokens, lexer.Subject, lexer.Verb, lexer.Object) {
		return valid(msgSentenceSense)
	}

	if hasShape(tokens, lexer.Subject, lexer.Assignment, lexer.Number) {
		name, value := tokens[0].Text, tokens[2].Text
		if err := table.Assign(ctx, name, value); err != nil {
			slog.Error("Failed to record assignment", "name", name, "value", value, "error", err)
			return invalid(FailureSymbolTable, msgSymbolTable)
		}
		return valid(fmt.Sprintf("variable assigned: %s = %s", name, value))
	}

	return invalid(FailureSemantic, msgSemantic)
}
