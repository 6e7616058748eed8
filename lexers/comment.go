package lexers

import (
	"github.com/reusee/mangrove/recognizers"
	"github.com/reusee/mangrove/tokens"
)

func notNewline(r rune) bool {
	return !recognizers.IsNewline(r)
}

// readLineComment is entered with the cursor on the last character of the
// comment marker, '#' or the second '/' of '//'.
// The value excludes the marker and the newline.
func (l *Lexer) readLineComment(start mark) tokens.Token {
	l.cur.advance()
	body := l.cur.mark()
	l.cur.advanceWhile(notNewline)
	return tokens.New(tokens.Comment, l.cur.slice(body), l.cur.rangeFrom(start))
}

// readBlockComment is entered with the cursor on the '*' of '/*'.
func (l *Lexer) readBlockComment(start mark) tokens.Token {
	l.cur.advance()
	body := l.cur.mark()
	for {
		if l.cur.eof {
			return tokens.New(tokens.Invalid, l.cur.slice(body), l.cur.rangeFrom(start))
		}
		if l.cur.at('*') && l.cur.peekIs('/') {
			value := l.cur.slice(body)
			l.cur.advance()
			l.cur.advance()
			return tokens.New(tokens.Comment, value, l.cur.rangeFrom(start))
		}
		l.cur.advance()
	}
}
