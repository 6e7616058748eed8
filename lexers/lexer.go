package lexers

import (
	"iter"
	"slices"

	"github.com/reusee/mangrove/recognizers"
	"github.com/reusee/mangrove/tokens"
)

type Lexer struct {
	cur     cursor
	options Options
}

func New(src string, options ...Option) (*Lexer, error) {
	if src == "" {
		return nil, ErrEmptySource
	}
	var opts Options
	for _, fn := range options {
		fn(&opts)
	}
	return &Lexer{
		cur:     newCursor([]rune(src), opts.Positions),
		options: opts,
	}, nil
}

// Tokenize lexes src to the end, excluding the EOF token.
func Tokenize(src string, options ...Option) ([]tokens.Token, error) {
	l, err := New(src, options...)
	if err != nil {
		return nil, err
	}
	return slices.Collect(l.All()), nil
}

// NextToken returns the next token.
// Once input is exhausted it returns the EOF token on every call.
func (l *Lexer) NextToken() tokens.Token {
	if l.cur.eof {
		return tokens.FromKind(tokens.EOF)
	}
	token := l.readToken()
	if !token.Valid() && l.options.Logger != nil {
		l.options.Logger.Debug("invalid token",
			"value", token.Value,
			"range", token.Range().String(),
		)
	}
	return token
}

// All yields tokens until EOF.
func (l *Lexer) All() iter.Seq[tokens.Token] {
	return func(yield func(tokens.Token) bool) {
		for {
			token := l.NextToken()
			if token.Kind == tokens.EOF {
				return
			}
			if !yield(token) {
				return
			}
		}
	}
}

// Offset returns the number of characters consumed.
func (l *Lexer) Offset() int {
	return l.cur.offset
}

// Position returns the position of the cursor.
func (l *Lexer) Position() tokens.Position {
	return l.cur.pos
}

func (l *Lexer) readToken() tokens.Token {
	switch l.cur.current {
	case ' ', '\t':
		return l.readWhitespace()
	case '#':
		return l.readLineComment(l.cur.mark())
	case '\r', '\n':
		return l.single(tokens.Newline)
	case '.':
		return l.readEllipsis()
	case ';':
		return l.single(tokens.Semi)
	case '{':
		return l.single(tokens.LeftBrace)
	case '}':
		return l.single(tokens.RightBrace)
	case '(':
		return l.single(tokens.LeftParen)
	case ')':
		return l.single(tokens.RightParen)
	case '[':
		return l.single(tokens.LeftSquare)
	case ']':
		return l.single(tokens.RightSquare)
	case ',':
		return l.single(tokens.Comma)
	case ':':
		return l.single(tokens.Colon)
	case '"':
		return l.readString()
	case '\'':
		return l.readChar()
	case '~':
		return l.single(tokens.Invert)
	case '/':
		return l.readDiv()
	case '*', '%':
		return l.readMul()
	case '+', '-':
		return l.readAdd()
	case '&', '|':
		return l.readBoolean()
	case '^':
		return l.readBitwise()
	case '<', '>':
		return l.readRelation()
	case '!', '=':
		return l.readEquality()
	}
	return l.readExtended()
}

// single consumes one character as a token of kind.
func (l *Lexer) single(kind tokens.Kind) tokens.Token {
	start := l.cur.mark()
	l.cur.advance()
	return l.fromMark(start, kind)
}

func (l *Lexer) fromMark(start mark, kind tokens.Kind) tokens.Token {
	return tokens.New(kind, l.cur.slice(start), l.cur.rangeFrom(start))
}

func (l *Lexer) readWhitespace() tokens.Token {
	start := l.cur.mark()
	l.cur.advanceWhile(recognizers.IsBlank)
	return l.fromMark(start, tokens.Whitespace)
}

func (l *Lexer) readExtended() tokens.Token {
	c := l.cur.current
	switch {
	case recognizers.IsIdentStart(c):
		return l.readIdent()
	case recognizers.IsDigit(c):
		return l.readNumber()
	}
	// consume it so the next call makes progress
	return l.single(tokens.Invalid)
}

func (l *Lexer) readIdent() tokens.Token {
	start := l.cur.mark()
	l.cur.advanceWhile(recognizers.IsIdentPart)
	kind, value, _ := recognizers.Classify(l.cur.slice(start))
	return tokens.New(kind, value, l.cur.rangeFrom(start))
}
