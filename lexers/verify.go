package lexers

import (
	"fmt"
	"unicode/utf8"

	"github.com/reusee/mangrove/tokens"
)

func before(a, b tokens.Position) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Character <= b.Character
}

// verify checks the invariants of a lexed token sequence.
func verify(mode PositionMode, toks []tokens.Token) error {
	var last tokens.Position
	for i, token := range toks {
		if n := utf8.RuneCountInString(token.Value); n != token.Length {
			return fmt.Errorf("token %d %v: length %d, value has %d characters", i, token, token.Length, n)
		}
		if token.Location == nil {
			return fmt.Errorf("token %d %v: no location", i, token)
		}
		if mode != LineColumn {
			continue
		}
		rng := *token.Location
		if !before(rng.Start, rng.End) {
			return fmt.Errorf("token %d %v: range %v ends before start", i, token, rng)
		}
		if !before(last, rng.Start) {
			return fmt.Errorf("token %d %v: starts before previous end %v", i, token, last)
		}
		last = rng.End
	}
	return nil
}
