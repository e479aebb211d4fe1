package suite

import "github.com/DjordjeVuckovic/faroese-analyzer/internal/lexer"

// Suite is a list of sentences analyzed in order against one symbol table.
type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Cases       []Case `yaml:"cases"`
}

// Case describes one sentence and what the analyzer should say about it.
// Nil expectations are not checked.
type Case struct {
	Name      string            `yaml:"name"`
	Text      string            `yaml:"text"`
	Rejected  bool              `yaml:"rejected"`
	Grammar   *bool             `yaml:"grammar"`
	Semantics *bool             `yaml:"semantics"`
	Tokens    []lexer.Token     `yaml:"tokens"`
	Symbols   map[string]string `yaml:"symbols"`
}
