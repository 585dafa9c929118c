// Package json parses and serializes value trees in a JSON dialect:
// trailing commas in arrays and objects, a leading '+' on numbers,
// //-comments, and \UXXXXXXXX string escapes on top of RFC 8259.
package json

import (
	"fmt"
	"strings"

	c2p "github.com/c2p-dev/go-c2p"
	"github.com/c2p-dev/go-c2p/text"
	"github.com/c2p-dev/go-c2p/vtree"
)

// MaxDepth bounds array/object nesting so hostile input degrades into a
// normal parse error instead of exhausting the stack.
const MaxDepth = 1000

// excerptBound limits how much line context positional diagnostics carry.
const excerptBound = 80

// Parse reads one JSON value. Errors go to lg.Error as "line:l:c: reason"
// followed by a caret excerpt, and the result is an Empty tree; parsing
// stops at the first error. Content after a complete value only produces a
// warning. An empty input is itself an error.
func Parse(input string, lg c2p.Logger) *vtree.Tree {
	lg = c2p.Or(lg)
	if input == "" {
		lg.Error("cannot parse an empty document")
		return vtree.New()
	}
	src := text.NewSource(input)
	p := &parser{src: src, cur: src.Cursor(), lg: lg}
	tree := vtree.New()
	if !p.parseValue(tree) {
		return vtree.New()
	}
	p.skipSpace()
	if p.cur.Valid() {
		p.warnAt(p.cur, "content after the document value is ignored")
	}
	return tree
}

type parser struct {
	src   *text.Source
	cur   text.Cursor
	lg    c2p.Logger
	depth int
}

// skipSpace moves past whitespace and //-comments.
func (p *parser) skipSpace() {
	for p.cur.Valid() {
		switch c := p.cur.Byte(); c {
		case ' ', '\t', '\r', '\n':
			p.cur.Advance()
		case '/':
			ahead := p.cur
			if !ahead.AdvanceInLine() || ahead.Byte() != '/' {
				return
			}
			if !p.cur.ToNextLine() {
				return
			}
		default:
			return
		}
	}
}

func (p *parser) parseValue(dst *vtree.Tree) bool {
	p.skipSpace()
	if !p.cur.Valid() {
		p.errAt(p.cur, "expected a value")
		return false
	}
	switch c := p.cur.Byte(); {
	case c == '{':
		return p.parseObject(dst)
	case c == '[':
		return p.parseArray(dst)
	case c == '"':
		s, ok := p.parseString()
		if !ok {
			return false
		}
		dst.CoerceValue().SetString(s)
		return true
	case c == 't':
		return p.parseKeyword("true", vtree.BoolScalar(true), dst)
	case c == 'f':
		return p.parseKeyword("false", vtree.BoolScalar(false), dst)
	case c == 'n':
		return p.parseKeyword("null", vtree.NoneScalar(), dst)
	case c == '+' || c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber(dst)
	default:
		p.errAt(p.cur, fmt.Sprintf("unexpected character %q", c))
		return false
	}
}

func (p *parser) parseObject(dst *vtree.Tree) bool {
	if p.depth >= MaxDepth {
		p.errAt(p.cur, fmt.Sprintf("nesting exceeds %d levels", MaxDepth))
		return false
	}
	p.depth++
	defer func() { p.depth-- }()

	open := p.cur
	p.cur.Advance() // '{'
	dst.CoerceObject()
	for {
		p.skipSpace()
		if !p.cur.Valid() {
			p.errAt(open, "unterminated object")
			return false
		}
		if p.cur.Byte() == '}' {
			p.cur.Advance()
			return true
		}
		if p.cur.Byte() != '"' {
			p.errAt(p.cur, "expected an object key")
			return false
		}
		key, ok := p.parseString()
		if !ok {
			return false
		}
		p.skipSpace()
		if !p.cur.Valid() || p.cur.Byte() != ':' {
			p.errAt(p.cur, "expected ':' after object key")
			return false
		}
		p.cur.Advance()
		if !p.parseValue(dst.Sub(key)) {
			return false
		}
		p.skipSpace()
		if !p.cur.Valid() {
			p.errAt(open, "unterminated object")
			return false
		}
		switch p.cur.Byte() {
		case ',':
			p.cur.Advance()
		case '}':
			p.cur.Advance()
			return true
		default:
			p.errAt(p.cur, "expected ',' or '}' in object")
			return false
		}
	}
}

func (p *parser) parseArray(dst *vtree.Tree) bool {
	if p.depth >= MaxDepth {
		p.errAt(p.cur, fmt.Sprintf("nesting exceeds %d levels", MaxDepth))
		return false
	}
	p.depth++
	defer func() { p.depth-- }()

	open := p.cur
	p.cur.Advance() // '['
	dst.CoerceArray()
	for {
		p.skipSpace()
		if !p.cur.Valid() {
			p.errAt(open, "unterminated array")
			return false
		}
		if p.cur.Byte() == ']' {
			p.cur.Advance()
			return true
		}
		elem := vtree.New()
		if !p.parseValue(elem) {
			return false
		}
		dst.Append(elem)
		p.skipSpace()
		if !p.cur.Valid() {
			p.errAt(open, "unterminated array")
			return false
		}
		switch p.cur.Byte() {
		case ',':
			p.cur.Advance()
		case ']':
			p.cur.Advance()
			return true
		default:
			p.errAt(p.cur, "expected ',' or ']' in array")
			return false
		}
	}
}

func (p *parser) parseString() (string, bool) {
	open := p.cur
	s, err := ReadQuoted(p.src, &p.cur)
	if err != nil {
		p.errAt(open, err.Error())
		return "", false
	}
	return s, true
}

func (p *parser) parseKeyword(word string, sc vtree.Scalar, dst *vtree.Tree) bool {
	if p.src.SliceLen(p.cur, len(word)) != word {
		p.errAt(p.cur, fmt.Sprintf("invalid literal, expected %q", word))
		return false
	}
	p.cur.AdvanceN(len(word))
	*dst.CoerceValue() = sc
	return true
}

func (p *parser) parseNumber(dst *vtree.Tree) bool {
	start := p.cur
	for p.cur.Valid() && isNumberByte(p.cur.Byte()) {
		p.cur.Advance()
	}
	tok := p.src.Slice(start, p.cur)
	f, ok := parseNumberLiteral(tok)
	if !ok {
		p.errAt(start, fmt.Sprintf("malformed number %q", tok))
		return false
	}
	dst.CoerceValue().SetNumber(f)
	return true
}

func isNumberByte(c byte) bool {
	return c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.' || c == 'e' || c == 'E'
}

func (p *parser) errAt(c text.Cursor, msg string) {
	p.lg.Error(p.posMsg(c, msg))
}

func (p *parser) warnAt(c text.Cursor, msg string) {
	p.lg.Warning(p.posMsg(c, msg))
}

func (p *parser) posMsg(c text.Cursor, msg string) string {
	if !c.Valid() {
		return msg + " at end of input"
	}
	parts := append([]string{c.String() + ": " + msg}, p.src.Excerpt(c, excerptBound, excerptBound)...)
	return strings.Join(parts, "\n")
}
