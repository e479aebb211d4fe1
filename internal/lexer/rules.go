package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	subjects  = []string{"Eg", "Tú", "Hann"}
	verbs     = []string{"eri", "ert", "er"}
	objects   = []string{"heima", "skúla"}
	operators = "+-*/"
)

// matcher reports the byte length of the match starting at pos, or 0.
type matcher func(input string, pos int) int

// rules are tried in order at every position; the first one that matches wins.
var rules = []matcher{
	keywords(subjects),
	keywords(verbs),
	keywords(objects),
	digits,
	single("="),
	single(operators),
}

// keywords matches one of words as a whole word. Alternatives are tried in
// order, so a longer word that fails the trailing boundary falls back to a
// shorter one.
func keywords(words []string) matcher {
	return func(input string, pos int) int {
		if !boundaryBefore(input, pos) {
			return 0
		}
		rest := input[pos:]
		for _, w := range words {
			if strings.HasPrefix(rest, w) && boundaryAfter(input, pos+len(w)) {
				return len(w)
			}
		}
		return 0
	}
}

func digits(input string, pos int) int {
	n := 0
	for pos+n < len(input) && isASCIIDigit(input[pos+n]) {
		n++
	}
	return n
}

func single(chars string) matcher {
	return func(input string, pos int) int {
		if strings.IndexByte(chars, input[pos]) >= 0 {
			return 1
		}
		return 0
	}
}

func boundaryBefore(input string, pos int) bool {
	if pos == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(input[:pos])
	return !isWordRune(r)
}

func boundaryAfter(input string, end int) bool {
	if end >= len(input) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(input[end:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
