package grammar

// Failure identifies which rule rejected a token sequence.
type Failure string

const (
	FailureNone           Failure = ""
	FailureTooShort       Failure = "too_short"
	FailureTooLong        Failure = "too_long"
	FailureMissingSubject Failure = "missing_subject"
	FailureMissingVerb    Failure = "missing_verb"
	FailureMissingObject  Failure = "missing_object"
	FailureNoTokens       Failure = "no_tokens"
	FailureSemantic       Failure = "semantic"
	FailureSymbolTable    Failure = "symbol_table"
)

// Verdict is the outcome of a check. Invalid input is never an error, it only
// produces an invalid verdict with a diagnostic message.
type Verdict struct {
	Valid   bool    `json:"valid" yaml:"valid"`
	Failure Failure `json:"failure,omitempty" yaml:"failure,omitempty"`
	Message string  `json:"message" yaml:"message"`
}

func valid(msg string) Verdict {
	return Verdict{Valid: true, Message: msg}
}

func invalid(f Failure, msg string) Verdict {
	return Verdict{Valid: false, Failure: f, Message: msg}
}
