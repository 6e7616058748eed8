package lexers

import "github.com/reusee/mangrove/tokens"

type cursor struct {
	buf     []rune
	current rune
	offset  int
	pos     tokens.Position
	eof     bool
	mode    PositionMode
}

func newCursor(src []rune, mode PositionMode) cursor {
	return cursor{
		buf:     src,
		current: src[0],
		mode:    mode,
	}
}

// peek returns the character after the current one.
func (c *cursor) peek() (rune, bool) {
	if c.offset+1 >= len(c.buf) {
		return 0, false
	}
	return c.buf[c.offset+1], true
}

// advance consumes the current character.
// It returns false when no character is left to read.
func (c *cursor) advance() bool {
	if c.eof {
		return false
	}
	if c.mode != Legacy || c.offset+1 < len(c.buf) {
		// legacy positions stop at the last character
		c.move(c.current)
	}
	c.offset++
	if c.offset >= len(c.buf) {
		c.eof = true
		c.current = 0
		return false
	}
	c.current = c.buf[c.offset]
	return true
}

func (c *cursor) move(consumed rune) {
	if c.mode == Legacy {
		c.pos.Line++
		return
	}
	switch consumed {
	case '\n':
		c.newLine()
	case '\r':
		if next, ok := c.peek(); ok && next == '\n' {
			c.pos.Character++
		} else {
			c.newLine()
		}
	default:
		c.pos.Character++
	}
}

func (c *cursor) newLine() {
	c.pos.Line++
	c.pos.Character = 0
}

func (c *cursor) advanceWhile(pred func(rune) bool) {
	for !c.eof && pred(c.current) {
		c.advance()
	}
}

// at reports whether the current character is r.
func (c *cursor) at(r rune) bool {
	return !c.eof && c.current == r
}

// peekIs reports whether the next character is r.
func (c *cursor) peekIs(r rune) bool {
	next, ok := c.peek()
	return ok && next == r
}

type mark struct {
	offset int
	pos    tokens.Position
}

func (c *cursor) mark() mark {
	return mark{
		offset: c.offset,
		pos:    c.pos,
	}
}

func (c *cursor) slice(m mark) string {
	return string(c.buf[m.offset:c.offset])
}

func (c *cursor) rangeFrom(m mark) tokens.Range {
	return tokens.Range{
		Start: m.pos,
		End:   c.pos,
	}
}
