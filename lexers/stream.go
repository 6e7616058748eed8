package lexers

import "github.com/reusee/mangrove/tokens"

// TokenSource is anything producing tokens, ending with an endless run of EOF.
type TokenSource interface {
	NextToken() tokens.Token
}

var _ TokenSource = new(Lexer)

// Stream gives one token of lookahead over a TokenSource.
type Stream struct {
	source  TokenSource
	current *tokens.Token
}

func NewStream(source TokenSource) *Stream {
	return &Stream{
		source: source,
	}
}

func (s *Stream) Current() tokens.Token {
	if s.current == nil {
		token := s.source.NextToken()
		s.current = &token
	}
	return *s.current
}

// Consume drops the current token, reading it first if not yet read.
func (s *Stream) Consume() {
	if s.current == nil {
		s.source.NextToken()
	}
	s.current = nil
}

type SliceSource struct {
	tokens []tokens.Token
	idx    int
}

var _ TokenSource = new(SliceSource)

func NewSliceSource(toks []tokens.Token) *SliceSource {
	return &SliceSource{
		tokens: toks,
	}
}

func (s *SliceSource) NextToken() tokens.Token {
	if s.idx >= len(s.tokens) {
		return tokens.FromKind(tokens.EOF)
	}
	token := s.tokens[s.idx]
	s.idx++
	return token
}

type triviaFilter struct {
	source TokenSource
}

// SkipTrivia drops whitespace, comment and newline tokens.
func SkipTrivia(source TokenSource) TokenSource {
	return triviaFilter{
		source: source,
	}
}

func (t triviaFilter) NextToken() tokens.Token {
	for {
		token := t.source.NextToken()
		if !token.Kind.IsTrivia() {
			return token
		}
	}
}
