package lexer

import (
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// FixedTokenizer scans input against the fixed vocabulary. Characters that no
// rule matches are skipped.
type FixedTokenizer struct{}

func NewFixedTokenizer() *FixedTokenizer {
	return &FixedTokenizer{}
}

// Tokenize returns the tokens of input in left-to-right order. Input is
// normalized to NFC first, so token text is a substring of the normalized input.
func (t *FixedTokenizer) Tokenize(input string) []Token {
	input = Normalize(input)
	tokens := make([]Token, 0)

	pos := 0
	for pos < len(input) {
		n := matchAt(input, pos)
		if n == 0 {
			_, size := utf8.DecodeRuneInString(input[pos:])
			pos += size
			continue
		}
		text := input[pos : pos+n]
		tokens = append(tokens, Token{Kind: Classify(text), Text: text})
		pos += n
	}

	return tokens
}

// Normalize returns s in the Unicode form token text is produced in (NFC).
// Names looked up against token text must go through it.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

func matchAt(input string, pos int) int {
	for _, match := range rules {
		if n := match(input, pos); n > 0 {
			return n
		}
	}
	return 0
}

// Classify maps a matched substring to its kind. Anything outside the
// vocabulary that is not all digits is Unknown.
func Classify(text string) Kind {
	switch {
	case slices.Contains(subjects, text):
		return Subject
	case slices.Contains(verbs, text):
		return Verb
	case slices.Contains(objects, text):
		return Object
	case text == "=":
		return Assignment
	case len(text) == 1 && strings.Contains(operators, text):
		return MathOperator
	case isNumber(text):
		return Number
	default:
		return Unknown
	}
}

func isNumber(text string) bool {
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		if !isASCIIDigit(text[i]) {
			return false
		}
	}
	return true
}
