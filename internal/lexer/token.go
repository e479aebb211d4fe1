package lexer

import "fmt"

type Kind int

const (
	Unknown Kind = iota
	Subject
	Verb
	Object
	Assignment
	MathOperator
	Number
)

func (k Kind) String() string {
	switch k {
	case Subject:
		return "Subject"
	case Verb:
		return "Verb"
	case Object:
		return "Object"
	case Assignment:
		return "Assignment"
	case MathOperator:
		return "MathOperator"
	case Number:
		return "Number"
	default:
		return "Unknown"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, ok := ParseKind(string(text))
	if !ok {
		return fmt.Errorf("unknown token kind %q", string(text))
	}
	*k = parsed
	return nil
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for _, k := range []Kind{Unknown, Subject, Verb, Object, Assignment, MathOperator, Number} {
		if k.String() == s {
			return k, true
		}
	}
	return Unknown, false
}

// Token represents a classified fragment of the input with its kind and literal text.
// Text is the matched substring of the NFC-normalized input (see Normalize), so for
// decomposed input it differs byte-wise from the raw text the caller passed in.
type Token struct {
	Kind Kind   `json:"kind" yaml:"kind"`
	Text string `json:"text" yaml:"text"`
}

func (t Token) String() string {
	return t.Kind.String() + ": " + t.Text
}
