package lexers

import (
	"github.com/reusee/mangrove/recognizers"
	"github.com/reusee/mangrove/tokens"
)

func (l *Lexer) readNumber() tokens.Token {
	start := l.cur.mark()
	if l.cur.at('0') {
		l.cur.advance()
		switch {
		case l.cur.eof:
		case recognizers.IsBeginBin(l.cur.current):
			return l.readBased(start, recognizers.IsBin, tokens.BinLit)
		case recognizers.IsBeginOct(l.cur.current):
			return l.readBased(start, recognizers.IsOct, tokens.OctLit)
		case recognizers.IsBeginHex(l.cur.current):
			return l.readBased(start, recognizers.IsHex, tokens.HexLit)
		}
	}
	l.cur.advanceWhile(recognizers.IsDigit)
	return l.fromMark(start, tokens.IntLit)
}

// readBased is entered with the cursor on the base letter.
// The value holds the digits only.
func (l *Lexer) readBased(start mark, isDigit func(rune) bool, kind tokens.Kind) tokens.Token {
	l.cur.advance()
	digits := l.cur.mark()
	l.cur.advanceWhile(isDigit)
	if digits.offset == l.cur.offset {
		return l.fromMark(start, tokens.Invalid)
	}
	return tokens.New(kind, l.cur.slice(digits), l.cur.rangeFrom(start))
}
