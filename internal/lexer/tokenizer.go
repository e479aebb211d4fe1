package lexer

// Tokenizer interface defines the method for tokenizing input strings.
type Tokenizer interface {
	Tokenize(input string) []Token
}

var defaultTokenizer = NewFixedTokenizer()

// Tokenize splits input with the fixed vocabulary rules.
func Tokenize(input string) []Token {
	return defaultTokenizer.Tokenize(input)
}
