package tokens

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

type Token struct {
	Kind     Kind   `json:"kind"`
	Value    string `json:"value"`
	Location *Range `json:"location,omitempty"`
	Length   int    `json:"length"`
}

// FromKind returns a token with only the kind set.
func FromKind(kind Kind) Token {
	return Token{
		Kind: kind,
	}
}

// New returns a token carrying value and its location.
// Length is the number of characters in value.
func New(kind Kind, value string, location Range) Token {
	return Token{
		Kind:     kind,
		Value:    value,
		Location: &location,
		Length:   utf8.RuneCountInString(value),
	}
}

func (t Token) Valid() bool {
	return t.Kind != Invalid
}

func (t Token) Is(kinds ...Kind) bool {
	return slices.Contains(kinds, t.Kind)
}

// Range returns the location, or the zero Range if none was recorded.
func (t Token) Range() Range {
	if t.Location == nil {
		return Range{}
	}
	return *t.Location
}

func (t Token) Equal(other Token) bool {
	return t.Kind == other.Kind &&
		t.Value == other.Value &&
		t.Range() == other.Range() &&
		t.Length == other.Length
}

func (t Token) String() string {
	start := t.Range().Start
	return fmt.Sprintf("<Token %s@%d:%d -> %s>", t.Kind, start.Line, start.Character, t.Value)
}
