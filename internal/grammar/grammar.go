package grammar

import (
	"github.com/DjordjeVuckovic/faroese-analyzer/internal/lexer"
)

const sentenceLength = 3

const (
	msgSentenceValid  = "the sentence follows the grammar"
	msgTooShort       = "the sentence is too short"
	msgTooLong        = "the sentence is too long"
	msgMissingSubject = "the sentence must start with a subject"
	msgMissingVerb    = "the second word must be a verb"
	msgMissingObject  = "the third word must be a valid object"
)

// CheckGrammar accepts exactly Subject Verb Object. It has no side effects.
//
// Constraints are checked in order and the first one that fails is reported:
// fewer than three tokens (FailureTooShort), then the kinds at positions one,
// two and three (FailureMissingSubject, FailureMissingVerb, FailureMissingObject).
// FailureTooLong is only reported once all three positions pass, so trailing
// tokens never hide a wrong word at the front.
func CheckGrammar(tokens []lexer.Token) Verdict {
	if len(tokens) < sentenceLength {
		return invalid(FailureTooShort, msgTooShort)
	}
	if tokens[0].Kind != lexer.Subject {
		return invalid(FailureMissingSubject, msgMissingSubject)
	}
	if tokens[1].Kind != lexer.Verb {
		return invalid(FailureMissingVerb, msgMissingVerb)
	}
	if tokens[2].Kind != lexer.Object {
		return invalid(FailureMissingObject, msgMissingObject)
	}
	if len(tokens) > sentenceLength {
		return invalid(FailureTooLong, msgTooLong)
	}
	return valid(msgSentenceValid)
}

func hasShape(tokens []lexer.Token, kinds ...lexer.Kind) bool {
	if len(tokens) != len(kinds) {
		return false
	}
	for i, k := range kinds {
		if tokens[i].Kind != k {
			return false
		}
	}
	return true
}
