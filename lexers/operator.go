package lexers

import "github.com/reusee/mangrove/tokens"

func (l *Lexer) readEllipsis() tokens.Token {
	start := l.cur.mark()
	l.cur.advance()
	if l.cur.at('.') && l.cur.peekIs('.') {
		l.cur.advance()
		l.cur.advance()
		return l.fromMark(start, tokens.Ellipsis)
	}
	return l.fromMark(start, tokens.Dot)
}

func (l *Lexer) readDiv() tokens.Token {
	start := l.cur.mark()
	l.cur.advance()
	switch {
	case l.cur.at('*'):
		return l.readBlockComment(start)
	case l.cur.at('/'):
		return l.readLineComment(start)
	case l.cur.at('='):
		l.cur.advance()
		return l.fromMark(start, tokens.AssignOp)
	}
	return l.fromMark(start, tokens.MulOp)
}

func (l *Lexer) readMul() tokens.Token {
	start := l.cur.mark()
	l.cur.advance()
	if l.cur.at('=') {
		l.cur.advance()
		return l.fromMark(start, tokens.AssignOp)
	}
	return l.fromMark(start, tokens.MulOp)
}

func (l *Lexer) readAdd() tokens.Token {
	lead := l.cur.current
	start := l.cur.mark()
	l.cur.advance()
	switch {
	case l.cur.at('='):
		l.cur.advance()
		return l.fromMark(start, tokens.AssignOp)
	case lead == '-' && l.cur.at('>'):
		l.cur.advance()
		return l.fromMark(start, tokens.Arrow)
	case l.cur.at(lead):
		return l.doubled(start, tokens.IncOp)
	}
	return l.fromMark(start, tokens.AddOp)
}

func (l *Lexer) readBoolean() tokens.Token {
	lead := l.cur.current
	start := l.cur.mark()
	l.cur.advance()
	switch {
	case l.cur.at('='):
		l.cur.advance()
		return l.fromMark(start, tokens.AssignOp)
	case l.cur.at(lead):
		return l.doubled(start, tokens.LogicOp)
	}
	return l.fromMark(start, tokens.BitOp)
}

// doubled is entered with the cursor on the second character of a doubled operator.
func (l *Lexer) doubled(start mark, kind tokens.Kind) tokens.Token {
	l.cur.advance()
	token := l.fromMark(start, kind)
	if l.options.DoubledOverAdvance {
		l.cur.advance()
	}
	return token
}

func (l *Lexer) readBitwise() tokens.Token {
	start := l.cur.mark()
	l.cur.advance()
	if l.cur.at('=') {
		l.cur.advance()
		return l.fromMark(start, tokens.AssignOp)
	}
	return l.fromMark(start, tokens.BitOp)
}

func (l *Lexer) readRelation() tokens.Token {
	lead := l.cur.current
	start := l.cur.mark()
	l.cur.advance()
	switch {
	case l.cur.at('='):
		l.cur.advance()
		return l.fromMark(start, tokens.RelOp)
	case l.cur.at(lead):
		if l.cur.peekIs('=') {
			l.cur.advance()
			l.cur.advance()
			return l.fromMark(start, tokens.AssignOp)
		}
		l.cur.advance()
		return l.fromMark(start, tokens.ShiftOp)
	}
	return l.fromMark(start, tokens.RelOp)
}

func (l *Lexer) readEquality() tokens.Token {
	lead := l.cur.current
	start := l.cur.mark()
	l.cur.advance()
	switch {
	case l.cur.at('='):
		l.cur.advance()
		return l.fromMark(start, tokens.EquOp)
	case lead == '=':
		return l.fromMark(start, tokens.AssignOp)
	}
	return l.fromMark(start, tokens.Invert)
}
