package grammar

import (
	"context"
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/faroese-analyzer/internal/lexer"
	"github.com/DjordjeVuckovic/faroese-analyzer/internal/symbols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingTable struct {
	*symbols.MemoryTable
}

func (failingTable) Assign(context.Context, string, string) error {
	return errors.New("connection refused")
}

func snapshot(t *testing.T, table symbols.Table) map[string]string {
	t.Helper()
	snap, err := table.Snapshot(context.Background())
	require.NoError(t, err)
	return snap
}

func TestCheckSemantics(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		valid    bool
		failure  Failure
		message  string
		expected map[string]string
	}{
		{
			name:     "sentence",
			input:    "Eg er heima",
			valid:    true,
			message:  msgSentenceSense,
			expected: map[string]string{},
		},
		{
			name:     "second person sentence",
			input:    "Tú ert skúla",
			valid:    true,
			message:  msgSentenceSense,
			expected: map[string]string{},
		},
		{
			name:     "assignment",
			input:    "Eg = 5",
			valid:    true,
			message:  "variable assigned: Eg = 5",
			expected: map[string]string{"Eg": "5"},
		},
		{
			name:     "no tokens",
			input:    "",
			failure:  FailureNoTokens,
			message:  msgNoTokens,
			expected: map[string]string{},
		},
		{
			name:     "unrecognized only",
			input:    "hello world",
			failure:  FailureNoTokens,
			message:  msgNoTokens,
			expected: map[string]string{},
		},
		{
			name:     "assignment of a subject",
			input:    "Eg = Hann",
			failure:  FailureSemantic,
			message:  msgSemantic,
			expected: map[string]string{},
		},
		{
			name:     "expression is not evaluated",
			input:    "Eg = 5 + 3",
			failure:  FailureSemantic,
			message:  msgSemantic,
			expected: map[string]string{},
		},
		{
			name:     "sentence with trailing token",
			input:    "Eg er heima 5",
			failure:  FailureSemantic,
			message:  msgSemantic,
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := symbols.NewMemoryTable()

			v := CheckSemantics(context.Background(), lexer.Tokenize(tt.input), table)

			assert.Equal(t, tt.valid, v.Valid)
			assert.Equal(t, tt.failure, v.Failure)
			assert.Equal(t, tt.message, v.Message)
			assert.Equal(t, tt.expected, snapshot(t, table))
		})
	}
}

func TestCheckSemantics_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	table := symbols.NewMemoryTable()

	require.True(t, CheckSemantics(ctx, lexer.Tokenize("Eg = 5"), table).Valid)
	require.True(t, CheckSemantics(ctx, lexer.Tokenize("Hann = 1"), table).Valid)
	require.True(t, CheckSemantics(ctx, lexer.Tokenize("Eg = 9"), table).Valid)

	assert.Equal(t, map[string]string{"Eg": "9", "Hann": "1"}, snapshot(t, table))
}

func TestCheckSemantics_RepeatedAssignmentIsIdempotentOnState(t *testing.T) {
	ctx := context.Background()
	table := symbols.NewMemoryTable()
	tokens := lexer.Tokenize("Tú = 12")

	first := CheckSemantics(ctx, tokens, table)
	afterFirst := snapshot(t, table)
	second := CheckSemantics(ctx, tokens, table)

	assert.Equal(t, first, second)
	assert.Equal(t, afterFirst, snapshot(t, table))
	assert.Equal(t, map[string]string{"Tú": "12"}, afterFirst)
}

func TestCheckSemantics_AcceptsWhatGrammarRejects(t *testing.T) {
	tokens := lexer.Tokenize("Eg = 5")

	assert.False(t, CheckGrammar(tokens).Valid)
	assert.True(t, CheckSemantics(context.Background(), tokens, symbols.NewMemoryTable()).Valid)
}

func TestCheckSemantics_TableFailure(t *testing.T) {
	v := CheckSemantics(context.Background(), lexer.Tokenize("Eg = 5"), failingTable{symbols.NewMemoryTable()})

	assert.False(t, v.Valid)
	assert.Equal(t, FailureSymbolTable, v.Failure)
	assert.Equal(t, msgSymbolTable, v.Message)
}
