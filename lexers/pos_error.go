package lexers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reusee/mangrove/tokens"
)

// PosError is an error at a position of a source.
type PosError struct {
	Err    error
	Pos    tokens.Position
	Source *Source
}

func (p PosError) Error() string {
	if p.Source == nil {
		return p.Err.Error()
	}

	var sb strings.Builder
	// positions are zero based, humans count from one
	fmt.Fprintf(&sb, "%s at %s:%d:%d\n", p.Err.Error(), p.Source.Name, p.Pos.Line+1, p.Pos.Character+1)

	lines := p.Source.Lines
	idx := p.Pos.Line
	if idx >= 0 && idx < len(lines) {
		line := lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")

		for i, r := range []rune(line) {
			if i >= p.Pos.Character {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(strings.Repeat(" ", runeWidth(r)))
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, source *Source, pos tokens.Position) error {
	if err == nil {
		return nil
	}
	var posErr PosError
	if errors.As(err, &posErr) {
		return err
	}
	return PosError{
		Err:    err,
		Pos:    pos,
		Source: source,
	}
}

// Check returns one PosError for each invalid token, joined.
// Tokens must be lexed with LineColumn positions.
func Check(source *Source, toks []tokens.Token) error {
	var errs []error
	for _, token := range toks {
		if token.Valid() {
			continue
		}
		errs = append(errs, WithPos(
			fmt.Errorf("%w: %q", ErrInvalidToken, token.Value),
			source,
			token.Range().Start,
		))
	}
	return errors.Join(errs...)
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
