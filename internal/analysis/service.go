package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/faroese-analyzer/internal/apperr"
	"github.com/DjordjeVuckovic/faroese-analyzer/internal/grammar"
	"github.com/DjordjeVuckovic/faroese-analyzer/internal/lexer"
	"github.com/DjordjeVuckovic/faroese-analyzer/internal/symbols"
	"github.com/google/uuid"
)

const ErrMsgNoSentence = "no sentence entered"

type Service struct {
	tokenizer lexer.Tokenizer
	table     symbols.Table
	now       func() time.Time
}

type Option func(*Service)

func WithTokenizer(t lexer.Tokenizer) Option {
	return func(s *Service) {
		s.tokenizer = t
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a Service whose semantic checks record assignments in table.
func NewService(table symbols.Table, opts ...Option) *Service {
	s := &Service{
		tokenizer: lexer.NewFixedTokenizer(),
		table:     table,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze tokenizes text and checks it. Blank text is rejected with a
// validation error before the analyzer runs; every other input produces a
// Result, valid or not.
func (s *Service) Analyze(ctx context.Context, text string, mode Mode) (*Result, error) {
	input := strings.TrimSpace(text)
	if input == "" {
		return nil, apperr.NewValidation(ErrMsgNoSentence)
	}
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, apperr.NewValidationWrap("invalid mode", err)
	}
	if mode == "" {
		mode = ModeGrammar
	}

	tokens := s.tokenizer.Tokenize(input)
	res := &Result{
		ID:         uuid.New(),
		Input:      input,
		Mode:       mode,
		Tokens:     tokens,
		Grammar:    grammar.CheckGrammar(tokens),
		AnalyzedAt: s.now(),
	}

	if mode == ModeFull {
		v := grammar.CheckSemantics(ctx, tokens, s.table)
		res.Semantics = &v
	}

	slog.Info("Sentence analyzed",
		"id", res.ID,
		"mode", mode,
		"tokens", len(tokens),
		"grammar", res.Grammar.Valid,
		"valid", res.Valid(),
	)

	return res, nil
}

func (s *Service) Symbols(ctx context.Context) (map[string]string, error) {
	entries, err := s.table.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read symbol table: %w", err)
	}
	return entries, nil
}

// Symbol returns the value assigned to name. name is normalized the same way
// sentences are, so decomposed and precomposed spellings find the same entry.
func (s *Service) Symbol(ctx context.Context, name string) (string, error) {
	name = lexer.Normalize(name)
	value, ok, err := s.table.Lookup(ctx, name)
	if err != nil {
		return "", fmt.Errorf("failed to look up symbol: %w", err)
	}
	if !ok {
		return "", apperr.NewNotFound("symbol", name)
	}
	return value, nil
}
