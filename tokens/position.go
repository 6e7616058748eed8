package tokens

import "fmt"

// Position is a zero based location in source text.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Character)
}

// Range is the span of a token. The zero Range means the span was not computed.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

func (r Range) IsZero() bool {
	return r == Range{}
}

func (r Range) String() string {
	return r.Start.String() + "-" + r.End.String()
}
