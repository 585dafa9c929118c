package json

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/c2p-dev/go-c2p/text"
)

// ReadQuoted scans a quoted string with cur on the opening '"' and leaves
// cur just past the closing quote. Strings never span lines. Escapes:
// \" \\ \/ \b \f \n \r \t, \uXXXX (4 hex digits) and \UXXXXXXXX (8 hex
// digits), each escape mapping independently to UTF-8 bytes. Errors carry
// no position; callers report one against the opening quote.
//
// The ini package shares this scanner for its quoted headers, keys and
// values.
func ReadQuoted(src *text.Source, cur *text.Cursor) (string, error) {
	if !cur.AdvanceInLine() {
		return "", ErrUnterminated
	}
	var b strings.Builder
	for {
		switch c := cur.Byte(); c {
		case '"':
			cur.Advance() // past the closing quote, may hit end of text
			return b.String(), nil
		case '\\':
			if !cur.AdvanceInLine() {
				return "", ErrUnterminated
			}
			if err := appendEscape(src, cur, &b); err != nil {
				return "", err
			}
		default:
			b.WriteByte(c)
		}
		if !cur.AdvanceInLine() {
			return "", ErrUnterminated
		}
	}
}

// appendEscape decodes the escape whose introducing byte is under cur,
// leaving cur on the last byte consumed.
func appendEscape(src *text.Source, cur *text.Cursor, b *strings.Builder) error {
	switch c := cur.Byte(); c {
	case '"', '\\', '/':
		b.WriteByte(c)
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'u':
		return appendHexEscape(src, cur, b, 4)
	case 'U':
		return appendHexEscape(src, cur, b, 8)
	default:
		return fmt.Errorf("%w character %q", ErrBadEscape, c)
	}
	return nil
}

func appendHexEscape(src *text.Source, cur *text.Cursor, b *strings.Builder, n int) error {
	start := cur.Off() // the 'u' or 'U'
	if !cur.AdvanceInLineN(n) {
		return fmt.Errorf("%w: %d hex digits required", ErrBadEscape, n)
	}
	digits := src.Text()[start+1 : start+1+n]
	cp, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return fmt.Errorf("%w: bad hex digits %q", ErrBadEscape, digits)
	}
	b.WriteString(text.EncodeCodePoint(uint32(cp)))
	return nil
}
