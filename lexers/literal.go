package lexers

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/reusee/mangrove/recognizers"
	"github.com/reusee/mangrove/tokens"
)

type escapeKind uint8

const (
	literalChar escapeKind = iota
	escapedChar
)

// escape is one decoded character of a quoted literal
type escape struct {
	kind escapeKind
	r    rune
}

func (e escape) is(kind escapeKind, pred func(rune) bool) bool {
	return e.kind == kind && pred(e.r)
}

var escapes = map[rune]rune{
	'\\': '\\',
	'b':  '\b',
	'r':  '\r',
	'n':  '\n',
	't':  '\t',
	'v':  '\v',
	'f':  '\f',
	'a':  '\a',
}

// readEscaped consumes one character, or one escape sequence, at the cursor.
func (l *Lexer) readEscaped() (escape, error) {
	r := l.cur.current
	l.cur.advance()
	if r != '\\' {
		return escape{kind: literalChar, r: r}, nil
	}
	if l.cur.eof {
		return escape{}, errUnterminated
	}
	r = l.cur.current
	l.cur.advance()
	if decoded, ok := escapes[r]; ok {
		return escape{kind: escapedChar, r: decoded}, nil
	}
	if r == 'u' || r == 'U' {
		return l.readCodePoint()
	}
	return escape{kind: escapedChar, r: r}, nil
}

func (l *Lexer) readCodePoint() (escape, error) {
	start := l.cur.mark()
	l.cur.advanceWhile(recognizers.IsHex)
	digits := l.cur.slice(start)
	if digits == "" {
		return escape{}, ErrBadUnicodeEscape
	}
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return escape{}, errors.Join(ErrBadUnicodeEscape, err)
	}
	r := rune(n)
	if !utf8.ValidRune(r) {
		return escape{}, ErrBadUnicodeEscape
	}
	return escape{kind: escapedChar, r: r}, nil
}

type quoted struct {
	quote     func(rune) bool
	kind      tokens.Kind
	emptyKind tokens.Kind
	// escaped characters not allowed in the literal
	forbidden func(rune) bool
}

var (
	stringLiteral = quoted{
		quote:     recognizers.IsDoubleQuote,
		kind:      tokens.StringLit,
		emptyKind: tokens.StringLit,
		forbidden: recognizers.IsSingleQuote,
	}

	charLiteral = quoted{
		quote:     recognizers.IsSingleQuote,
		kind:      tokens.CharLit,
		emptyKind: tokens.Invalid,
		forbidden: func(r rune) bool {
			return recognizers.IsDoubleQuote(r) || r == '/'
		},
	}
)

func (l *Lexer) readString() tokens.Token {
	return l.readQuoted(stringLiteral)
}

func (l *Lexer) readChar() tokens.Token {
	return l.readQuoted(charLiteral)
}

func (l *Lexer) readQuoted(lit quoted) tokens.Token {
	start := l.cur.mark()

	if next, ok := l.cur.peek(); ok && lit.quote(next) {
		l.cur.advance()
		l.cur.advance()
		return tokens.New(lit.emptyKind, "", l.cur.rangeFrom(start))
	}

	l.cur.advance()
	var buf strings.Builder
	invalid := false
	for {
		if l.cur.eof {
			// unterminated
			return tokens.New(tokens.Invalid, buf.String(), l.cur.rangeFrom(start))
		}
		c, err := l.readEscaped()
		if errors.Is(err, errUnterminated) {
			return tokens.New(tokens.Invalid, buf.String(), l.cur.rangeFrom(start))
		} else if err != nil {
			invalid = true
			continue
		}
		if c.is(literalChar, lit.quote) {
			break
		}
		if c.is(escapedChar, lit.forbidden) {
			invalid = true
		}
		buf.WriteRune(c.r)
	}

	kind := lit.kind
	if invalid {
		kind = tokens.Invalid
	}
	return tokens.New(kind, buf.String(), l.cur.rangeFrom(start))
}
