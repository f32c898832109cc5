package scanner

import "unicode/utf8"

// EOF is the lookahead value reported at the end of input.
const EOF rune = -1

// Mark is a snapshot of a cursor's state. Restoring a Mark undoes every
// advance, skip and end commit made after it was taken.
type Mark struct {
	Pos   int // next character to be read
	Start int // start of the pending token
	End   int // committed exclusive end of the pending token
}

/*
 * Cursor is the host-supplied view over the input.
 *
 * Advance consumes the lookahead into the pending token; Skip consumes it
 * without including it, which moves the pending token's start (only valid
 * before the first Advance). MarkEnd freezes the current position as the
 * pending token's exclusive end; characters read after the last MarkEnd are
 * lookahead only and never become part of a committed span.
 *
 * Reset must accept any Mark whose offsets lie within the input, not only
 * ones previously returned by Mark; Scan uses it to reposition the cursor at
 * a committed end.
 */
type Cursor interface {
	Lookahead() rune
	Advance()
	Skip()
	MarkEnd()
	Offset() int
	TokenEnd() int
	Mark() Mark
	Reset(Mark)
}

// StringCursor is a Cursor over an in-memory UTF-8 string. All offsets are
// byte offsets into the source.
type StringCursor struct {
	src   string
	pos   int
	start int
	end   int
}

// NewStringCursor returns a cursor over src positioned at offset.
func NewStringCursor(src string, offset int) *StringCursor {
	c := &StringCursor{src: src}
	c.Seek(offset)
	return c
}

// Seek starts a fresh pending token at offset (clamped to the input).
func (c *StringCursor) Seek(offset int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(c.src) {
		offset = len(c.src)
	}
	c.pos, c.start, c.end = offset, offset, offset
}

// Source returns the underlying text.
func (c *StringCursor) Source() string { return c.src }

// Lookahead returns the character at the current position, or EOF.
func (c *StringCursor) Lookahead() rune {
	if c.pos >= len(c.src) {
		return EOF
	}
	if b := c.src[c.pos]; b < utf8.RuneSelf {
		return rune(b)
	}
	r, _ := utf8.DecodeRuneInString(c.src[c.pos:])
	return r
}

// Advance consumes the lookahead character into the pending token.
func (c *StringCursor) Advance() {
	if c.pos >= len(c.src) {
		return
	}
	_, size := utf8.DecodeRuneInString(c.src[c.pos:])
	c.pos += size
}

// Skip consumes the lookahead character and excludes it from the token.
func (c *StringCursor) Skip() {
	c.Advance()
	c.start = c.pos
	c.end = c.pos
}

// MarkEnd commits the current position as the token's exclusive end.
func (c *StringCursor) MarkEnd() { c.end = c.pos }

// Offset returns the byte offset of the lookahead character.
func (c *StringCursor) Offset() int { return c.pos }

// TokenStart returns the start of the pending token.
func (c *StringCursor) TokenStart() int { return c.start }

// TokenEnd returns the last committed end boundary.
func (c *StringCursor) TokenEnd() int { return c.end }

// Mark snapshots the cursor.
func (c *StringCursor) Mark() Mark {
	return Mark{Pos: c.pos, Start: c.start, End: c.end}
}

// Reset restores a snapshot taken with Mark.
func (c *StringCursor) Reset(m Mark) {
	c.pos, c.start, c.end = m.Pos, m.Start, m.End
}
