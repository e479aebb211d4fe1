package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestCheck_ValidSentence(t *testing.T) {
	out, err := execute(t, "", "check", "Eg er heima")
	require.NoError(t, err)

	assert.Contains(t, out, "🔍 Tokens:")
	assert.Contains(t, out, "Subject: Eg")
	assert.Contains(t, out, "Verb: er")
	assert.Contains(t, out, "Object: heima")
	assert.Contains(t, out, "✅ grammar: the sentence follows the grammar")
	assert.NotContains(t, out, "semantics")
	assert.NotContains(t, out, "📋 Symbols")
}

func TestCheck_InvalidSentence(t *testing.T) {
	out, err := execute(t, "", "check", "er Eg heima")
	require.NoError(t, err)

	assert.Contains(t, out, "❌ grammar: the sentence must start with a subject (missing_subject)")
}

func TestCheck_BlankSentence(t *testing.T) {
	out, err := execute(t, "", "check", "   ")
	require.NoError(t, err)

	assert.Contains(t, out, "⚠️ Error: no sentence entered")
	assert.NotContains(t, out, "🔍 Tokens:")
}

func TestCheck_ReadsStdin(t *testing.T) {
	out, err := execute(t, "Eg er heima\n\nTú ert skúla\n", "check")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "✅ grammar"))
	assert.Contains(t, out, "Subject: Tú")
}

func TestCheck_TableFormat(t *testing.T) {
	out, err := execute(t, "", "check", "--format", "table", "Hann er skúla")
	require.NoError(t, err)

	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "skúla")
}

func TestCheck_UnknownFormat(t *testing.T) {
	_, err := execute(t, "", "check", "--format", "xml", "Eg er heima")
	require.Error(t, err)
}

func TestRun_SharesSymbolTable(t *testing.T) {
	out, err := execute(t, "", "run", "Eg = 5", "Eg = 9", "Hann = 2")
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(out, "✅ semantics"))
	assert.Contains(t, out, "📋 Symbols (2):\nEg = 9\nHann = 2\n")
}

func TestRun_NoSymbols(t *testing.T) {
	out, err := execute(t, "", "run", "--symbols=false", "Eg = 5")
	require.NoError(t, err)

	assert.NotContains(t, out, "📋 Symbols")
}

func TestRun_SemanticFailure(t *testing.T) {
	out, err := execute(t, "", "run", "Eg + 5")
	require.NoError(t, err)

	assert.Contains(t, out, "❌ semantics: the structure has no valid meaning (semantic)")
	assert.Contains(t, out, "📋 Symbols (0):")
}

func TestRun_JSONWithoutSymbols(t *testing.T) {
	out, err := execute(t, "", "run", "-f", "json", "--symbols=false", "Tú = 3")
	require.NoError(t, err)

	var got struct {
		Results []struct {
			Input string `json:"input"`
			Mode  string `json:"mode"`
		} `json:"results"`
		Symbols map[string]string `json:"symbols"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Results, 1)
	assert.Equal(t, "Tú = 3", got.Results[0].Input)
	assert.Equal(t, "full", got.Results[0].Mode)
	assert.Nil(t, got.Symbols)
}

func TestRun_JSONIsOneDocument(t *testing.T) {
	out, err := execute(t, "", "run", "-f", "json", "Eg = 5", "Eg er heima", " ")
	require.NoError(t, err)

	var got struct {
		Results []map[string]any  `json:"results"`
		Errors  []string          `json:"errors"`
		Symbols map[string]string `json:"symbols"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Results, 2)
	assert.Equal(t, []string{"no sentence entered"}, got.Errors)
	assert.Equal(t, map[string]string{"Eg": "5"}, got.Symbols)
}

func TestCheck_JSONOmitsSymbols(t *testing.T) {
	out, err := execute(t, "", "check", "-f", "json", "Eg er heima", "Tú ert skúla")
	require.NoError(t, err)

	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Contains(t, got, "results")
	assert.NotContains(t, got, "symbols")
	assert.NotContains(t, got, "errors")
}

func TestSuite_Passing(t *testing.T) {
	out, err := execute(t, "", "suite", "testdata/passing.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "=== passing: 2 passed, 0 failed ===")
}

func TestSuite_Failing(t *testing.T) {
	out, err := execute(t, "", "suite", "testdata/failing.yaml")
	require.Error(t, err)

	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "=== failing: 0 passed, 1 failed ===")
}

func TestSuite_MissingFile(t *testing.T) {
	_, err := execute(t, "", "suite", "testdata/nope.yaml")
	require.Error(t, err)
}

func TestSuite_RequiresOneArg(t *testing.T) {
	_, err := execute(t, "", "suite")
	require.Error(t, err)
}
