package text

import "fmt"

// Cursor is a byte position within a Source. The zero Cursor is invalid;
// obtain one from Source.Cursor. A Cursor is a small value: copying it
// snapshots the position, so lookahead is a plain assignment.
//
// Movement methods report success. Once a cursor moves past the end of the
// text it is invalid terminally; all movement on an invalid cursor fails and
// Byte returns 0. Callers must check Valid (or the returned bool) before
// reading.
type Cursor struct {
	src   *Source
	off   int
	line  int
	col   int
	valid bool
}

// Valid reports whether the cursor addresses a byte of the text.
func (c *Cursor) Valid() bool { return c.valid }

// Off returns the byte offset of the cursor.
func (c *Cursor) Off() int { return c.off }

// LineIdx returns the 0-based line index.
func (c *Cursor) LineIdx() int { return c.line }

// Col returns the 0-based column (byte offset within the line).
func (c *Cursor) Col() int { return c.col }

// Byte returns the byte under the cursor, 0 when invalid.
func (c *Cursor) Byte() byte {
	if !c.valid {
		return 0
	}
	return c.src.text[c.off]
}

// Advance moves one byte forward, crossing line boundaries. Past the last
// byte the cursor invalidates and Advance reports false.
func (c *Cursor) Advance() bool {
	if !c.valid {
		return false
	}
	if c.col+1 < c.src.lines[c.line].Len {
		c.col++
		c.off++
		return true
	}
	if c.line+1 < len(c.src.lines) {
		c.line++
		c.off = c.src.lines[c.line].Off
		c.col = 0
		return true
	}
	c.valid = false
	return false
}

// AdvanceN applies Advance n times, stopping early on failure.
func (c *Cursor) AdvanceN(n int) bool {
	for i := 0; i < n; i++ {
		if !c.Advance() {
			return false
		}
	}
	return true
}

// AdvanceInLine moves one byte forward but never past the last byte of the
// current line. On failure the cursor does not move.
func (c *Cursor) AdvanceInLine() bool {
	if !c.valid {
		return false
	}
	if c.col+1 >= c.src.lines[c.line].Len {
		return false
	}
	c.col++
	c.off++
	return true
}

// AdvanceInLineN moves n bytes forward within the current line, all or
// nothing.
func (c *Cursor) AdvanceInLineN(n int) bool {
	if !c.valid {
		return false
	}
	if c.col+n >= c.src.lines[c.line].Len {
		return false
	}
	c.col += n
	c.off += n
	return true
}

// AtLineEnd reports whether the cursor is on the last byte of its line
// (the final break byte for terminated lines).
func (c *Cursor) AtLineEnd() bool {
	return c.valid && c.col+1 == c.src.lines[c.line].Len
}

// ToLineStart moves to the first byte of the current line.
func (c *Cursor) ToLineStart() bool {
	if !c.valid {
		return false
	}
	c.off -= c.col
	c.col = 0
	return true
}

// ToLineEnd moves to the last byte of the current line, breaks included.
func (c *Cursor) ToLineEnd() bool {
	if !c.valid {
		return false
	}
	ln := c.src.lines[c.line]
	c.off = ln.Off + ln.Len - 1
	c.col = ln.Len - 1
	return true
}

// ToContentEnd moves to the last byte of the current line excluding the
// line break. On a line with no content it moves to the line start.
func (c *Cursor) ToContentEnd() bool {
	if !c.valid {
		return false
	}
	ln := c.src.lines[c.line]
	col := ln.TextLen - 1
	if col < 0 {
		col = 0
	}
	c.off = ln.Off + col
	c.col = col
	return true
}

// ToNextLine moves to the first byte of the next line. On the last line the
// cursor invalidates and ToNextLine reports false.
func (c *Cursor) ToNextLine() bool {
	if !c.valid {
		return false
	}
	if c.line+1 >= len(c.src.lines) {
		c.valid = false
		return false
	}
	c.line++
	c.off = c.src.lines[c.line].Off
	c.col = 0
	return true
}

// String renders the position as "line:<line>:<col>", 1-based.
func (c Cursor) String() string {
	return fmt.Sprintf("line:%d:%d", c.line+1, c.col+1)
}
