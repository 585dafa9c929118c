// Package ini parses and serializes value trees in a line-oriented INI
// dialect: optional global entries, [section] headers one level deep,
// ';'/'#' comments, and headers/keys/values that are either quoted (JSON
// string escapes, single line) or unquoted (surrounding whitespace
// trimmed).
package ini

import (
	"strings"

	c2p "github.com/c2p-dev/go-c2p"
	"github.com/c2p-dev/go-c2p/json"
	"github.com/c2p-dev/go-c2p/text"
	"github.com/c2p-dev/go-c2p/vtree"
)

const excerptBound = 80

// Parse reads an INI document into a tree of at most two object levels.
// Values carry no type tags, so every value is a String scalar; readers
// that want typed values coerce through json.ParseScalar. Errors go to
// lg.Error as "line:l:c: reason" plus a caret excerpt, the result then
// being an Empty tree. An empty input is itself an error; an input with
// nothing but comments and blank lines yields an Empty tree without error.
func Parse(input string, lg c2p.Logger) *vtree.Tree {
	lg = c2p.Or(lg)
	if input == "" {
		lg.Error("cannot parse an empty document")
		return vtree.New()
	}
	src := text.NewSource(input)
	p := &parser{src: src, cur: src.Cursor(), lg: lg}
	tree := vtree.New()
	section := tree
	for {
		if p.skipInLine() {
			if p.cur.Byte() == '[' {
				name, ok := p.parseHeader()
				if !ok {
					return vtree.New()
				}
				section = tree.Sub(name).CoerceObject()
			} else {
				key, val, ok := p.parseEntry()
				if !ok {
					return vtree.New()
				}
				section.Put(key, vtree.FromString(val))
			}
		}
		if !p.cur.ToNextLine() {
			break
		}
	}
	return tree
}

type parser struct {
	src *text.Source
	cur text.Cursor
	lg  c2p.Logger
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\v', '\f', '\r', '\n':
		return true
	}
	return false
}

// skipInLine advances over whitespace and comments without leaving the
// current line and reports whether any content remains on it.
func (p *parser) skipInLine() bool {
	for p.cur.Valid() {
		c := p.cur.Byte()
		if c == ';' || c == '#' {
			p.cur.ToLineEnd()
			return false
		}
		if !isSpace(c) {
			return true
		}
		if !p.cur.AdvanceInLine() {
			return false
		}
	}
	return false
}

// parseHeader reads "[name]" with the cursor on '['.
func (p *parser) parseHeader() (string, bool) {
	open := p.cur
	if !p.cur.AdvanceInLine() || !p.skipInLine() {
		p.errAt(open, "unterminated section header")
		return "", false
	}
	var name string
	if p.cur.Byte() == '"' {
		q := p.cur
		s, err := json.ReadQuoted(p.src, &p.cur)
		if err != nil {
			p.errAt(q, err.Error())
			return "", false
		}
		if !p.cur.Valid() || p.cur.LineIdx() != q.LineIdx() {
			p.errAt(open, "missing ']' in section header")
			return "", false
		}
		name = s
	} else {
		s, ok := p.scanUnquoted(']')
		if !ok {
			p.errAt(open, "missing ']' in section header")
			return "", false
		}
		if s == "" {
			p.errAt(open, "section name is empty (quote it if intended)")
			return "", false
		}
		name = s
	}
	if !p.skipInLine() || p.cur.Byte() != ']' {
		p.errAt(open, "missing ']' in section header")
		return "", false
	}
	if p.cur.AdvanceInLine() && p.skipInLine() {
		p.errAt(p.cur, "unexpected characters after section header")
		return "", false
	}
	return name, true
}

// parseEntry reads "key=value" with the cursor on the first byte of the
// key.
func (p *parser) parseEntry() (key, val string, ok bool) {
	lineStart := p.cur
	if p.cur.Byte() == '"' {
		q := p.cur
		s, err := json.ReadQuoted(p.src, &p.cur)
		if err != nil {
			p.errAt(q, err.Error())
			return "", "", false
		}
		if !p.cur.Valid() || p.cur.LineIdx() != q.LineIdx() ||
			!p.skipInLine() || p.cur.Byte() != '=' {
			p.errAt(lineStart, "missing '=' after key")
			return "", "", false
		}
		key = s
	} else {
		s, found := p.scanUnquoted('=')
		if !found {
			p.errAt(lineStart, "missing '=' after key")
			return "", "", false
		}
		if s == "" {
			p.errAt(lineStart, "key is empty (quote it if intended)")
			return "", "", false
		}
		key = s
	}
	// cursor on '='; a line ending here, or holding only whitespace and
	// comments past this point, carries the empty value
	if !p.cur.AdvanceInLine() || !p.skipInLine() {
		return key, "", true
	}
	if p.cur.Byte() == '"' {
		q := p.cur
		s, err := json.ReadQuoted(p.src, &p.cur)
		if err != nil {
			p.errAt(q, err.Error())
			return "", "", false
		}
		return key, s, true
	}
	return key, p.scanUnquotedValue(), true
}

// scanUnquoted reads up to term on the current line, trimming surrounding
// whitespace, and leaves the cursor on term. Reports false when the line
// ends first.
func (p *parser) scanUnquoted(term byte) (string, bool) {
	start := p.cur.Off()
	end := start
	for {
		c := p.cur.Byte()
		if c == term {
			return p.src.Text()[start:end], true
		}
		if !isSpace(c) {
			end = p.cur.Off() + 1
		}
		if !p.cur.AdvanceInLine() {
			return "", false
		}
	}
}

// scanUnquotedValue reads to the end of line or a comment, trimming
// trailing whitespace.
func (p *parser) scanUnquotedValue() string {
	start := p.cur.Off()
	end := start
	for {
		c := p.cur.Byte()
		if c == ';' || c == '#' {
			break
		}
		if !isSpace(c) {
			end = p.cur.Off() + 1
		}
		if !p.cur.AdvanceInLine() {
			break
		}
	}
	return p.src.Text()[start:end]
}

func (p *parser) errAt(c text.Cursor, msg string) {
	if !c.Valid() {
		p.lg.Error(msg + " at end of input")
		return
	}
	parts := append([]string{c.String() + ": " + msg}, p.src.Excerpt(c, excerptBound, excerptBound)...)
	p.lg.Error(strings.Join(parts, "\n"))
}
