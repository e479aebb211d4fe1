package analysis

import (
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/faroese-analyzer/internal/grammar"
	"github.com/DjordjeVuckovic/faroese-analyzer/internal/lexer"
	"github.com/google/uuid"
)

type Mode string

const (
	// ModeGrammar runs only the grammar check.
	ModeGrammar Mode = "grammar"
	// ModeFull runs the grammar and the semantic check.
	ModeFull Mode = "full"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeGrammar, ModeFull:
		return Mode(s), nil
	case "":
		return ModeGrammar, nil
	default:
		return "", fmt.Errorf("unknown analysis mode %q, expected one of %v", s, []Mode{ModeGrammar, ModeFull})
	}
}

// Result is the outcome of analyzing one sentence. Semantics is nil unless the
// sentence was analyzed in ModeFull.
type Result struct {
	ID         uuid.UUID        `json:"id"`
	Input      string           `json:"input"`
	Mode       Mode             `json:"mode"`
	Tokens     []lexer.Token    `json:"tokens"`
	Grammar    grammar.Verdict  `json:"grammar"`
	Semantics  *grammar.Verdict `json:"semantics,omitempty"`
	AnalyzedAt time.Time        `json:"analyzedAt"`
}

// Valid reports the verdict of the strongest check that ran.
func (r *Result) Valid() bool {
	if r.Semantics != nil {
		return r.Semantics.Valid
	}
	return r.Grammar.Valid
}
