package lexers

import "errors"

var (
	ErrEmptySource      = errors.New("empty source")
	ErrBadUnicodeEscape = errors.New("bad unicode escape")
	ErrInvalidToken     = errors.New("invalid token")

	errUnterminated = errors.New("unterminated")
)
