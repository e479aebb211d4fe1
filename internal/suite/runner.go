package suite

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/DjordjeVuckovic/faroese-analyzer/internal/analysis"
	"github.com/DjordjeVuckovic/faroese-analyzer/internal/apperr"
)

type CaseResult struct {
	Name       string           `json:"name"`
	Result     *analysis.Result `json:"result,omitempty"`
	Passed     bool             `json:"passed"`
	Mismatches []string         `json:"mismatches,omitempty"`
}

type Report struct {
	Name   string       `json:"name"`
	Cases  []CaseResult `json:"cases"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
}

func (r *Report) OK() bool {
	return r.Failed == 0
}

// Run analyzes every case in order with semantics enabled, so assignments in
// earlier cases are visible to later ones.
func Run(ctx context.Context, s *Suite, svc *analysis.Service) (*Report, error) {
	rpt := &Report{Name: s.Name, Cases: make([]CaseResult, 0, len(s.Cases))}

	for _, c := range s.Cases {
		cr, err := runCase(ctx, c, svc)
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", c.Name, err)
		}
		if cr.Passed {
			rpt.Passed++
		} else {
			rpt.Failed++
			slog.Debug("Suite case failed", "case", c.Name, "mismatches", cr.Mismatches)
		}
		rpt.Cases = append(rpt.Cases, cr)
	}

	slog.Info("Suite finished", "suite", s.Name, "passed", rpt.Passed, "failed", rpt.Failed)
	return rpt, nil
}

func runCase(ctx context.Context, c Case, svc *analysis.Service) (CaseResult, error) {
	cr := CaseResult{Name: c.Name}

	res, err := svc.Analyze(ctx, c.Text, analysis.ModeFull)
	switch {
	case err != nil && apperr.IsValidation(err):
		if !c.Rejected {
			cr.Mismatches = append(cr.Mismatches, fmt.Sprintf("input rejected: %v", err))
		}
	case err != nil:
		return cr, err
	default:
		cr.Result = res
		if c.Rejected {
			cr.Mismatches = append(cr.Mismatches, "expected input to be rejected")
		}
		cr.Mismatches = append(cr.Mismatches, compare(c, res)...)
	}

	for _, name := range sortedKeys(c.Symbols) {
		want := c.Symbols[name]
		got, err := svc.Symbol(ctx, name)
		if err != nil {
			cr.Mismatches = append(cr.Mismatches, fmt.Sprintf("symbol %s: expected %s, %v", name, want, err))
			continue
		}
		if got != want {
			cr.Mismatches = append(cr.Mismatches, fmt.Sprintf("symbol %s: expected %s, got %s", name, want, got))
		}
	}

	cr.Passed = len(cr.Mismatches) == 0
	return cr, nil
}

func compare(c Case, res *analysis.Result) []string {
	var mismatches []string

	if c.Grammar != nil && *c.Grammar != res.Grammar.Valid {
		mismatches = append(mismatches, fmt.Sprintf("grammar: expected %t, got %t (%s)", *c.Grammar, res.Grammar.Valid, res.Grammar.Message))
	}
	if c.Semantics != nil && res.Semantics != nil && *c.Semantics != res.Semantics.Valid {
		mismatches = append(mismatches, fmt.Sprintf("semantics: expected %t, got %t (%s)", *c.Semantics, res.Semantics.Valid, res.Semantics.Message))
	}
	if c.Tokens != nil && !slices.Equal(c.Tokens, res.Tokens) {
		mismatches = append(mismatches, fmt.Sprintf("tokens: expected %v, got %v", c.Tokens, res.Tokens))
	}

	return mismatches
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
