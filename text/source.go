// Package text provides a line-indexed view over a piece of source text and
// a byte cursor that tracks line/column positions for diagnostics. It is the
// substrate the json and ini parsers run on.
package text

import "strings"

// Line describes one physical line of a Source.
type Line struct {
	Off     int // offset of the first byte of the line
	Len     int // byte length including the line break
	TextLen int // byte length excluding the line break
}

// Source is a read-only piece of text with a pre-computed line table.
// "\n", "\r" and "\r\n" each count as a single line break, and the break
// bytes belong to the line they terminate.
type Source struct {
	text  string
	lines []Line
}

// NewSource splits s into lines. The text is not copied.
func NewSource(s string) *Source {
	src := &Source{text: s}
	off := 0
	n, textLen := 0, 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		n++
		switch c {
		case '\n':
			src.pushLine(&off, &n, &textLen)
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
				n++
			}
			src.pushLine(&off, &n, &textLen)
		default:
			textLen++
		}
	}
	if n > 0 {
		src.pushLine(&off, &n, &textLen)
	}
	return src
}

func (s *Source) pushLine(off, n, textLen *int) {
	s.lines = append(s.lines, Line{Off: *off, Len: *n, TextLen: *textLen})
	*off += *n
	*n, *textLen = 0, 0
}

// Text returns the underlying text.
func (s *Source) Text() string { return s.text }

// Len returns the byte length of the text.
func (s *Source) Len() int { return len(s.text) }

// NumLines returns the number of lines.
func (s *Source) NumLines() int { return len(s.lines) }

// LineAt returns the i-th line of the table.
func (s *Source) LineAt(i int) Line { return s.lines[i] }

// Cursor returns a cursor at the first byte of the text. The cursor is
// invalid when the text is empty.
func (s *Source) Cursor() Cursor {
	return Cursor{src: s, valid: len(s.text) > 0}
}

// Slice returns the text between from (inclusive) and to (exclusive).
// An invalid to cursor means "end of text"; an invalid from yields "".
func (s *Source) Slice(from, to Cursor) string {
	if !from.valid {
		return ""
	}
	if !to.valid {
		return s.text[from.off:]
	}
	return s.text[from.off:to.off]
}

// SliceLen returns up to n bytes of text starting at from.
func (s *Source) SliceLen(from Cursor, n int) string {
	if !from.valid {
		return ""
	}
	end := from.off + n
	if end > len(s.text) {
		end = len(s.text)
	}
	return s.text[from.off:end]
}

// Excerpt renders the neighborhood of c as two display lines: the line
// content (line breaks blanked out) and a caret marking the cursor column.
// maxPrefix and maxSuffix bound how many bytes around the cursor are shown.
// The result is nil for an invalid cursor.
func (s *Source) Excerpt(c Cursor, maxPrefix, maxSuffix int) []string {
	if !c.valid || c.src != s {
		return nil
	}
	ln := s.lines[c.line]
	prefix := c.col
	if prefix > maxPrefix {
		prefix = maxPrefix
	}
	suffix := 0
	if ln.TextLen > c.col+1 {
		suffix = ln.TextLen - (c.col + 1)
	}
	if suffix > maxSuffix {
		suffix = maxSuffix
	}
	raw := s.text[c.off-prefix : c.off+suffix+1]
	blanked := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return ' '
		}
		return r
	}, raw)
	return []string{
		" | " + blanked,
		" | " + strings.Repeat(" ", prefix) + "^",
	}
}
