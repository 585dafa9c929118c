package json

import (
	"fmt"
	"strconv"
	"strings"

	c2p "github.com/c2p-dev/go-c2p"
	"github.com/c2p-dev/go-c2p/text"
	"github.com/c2p-dev/go-c2p/vtree"
)

// ParseScalar coerces a raw token (a command-line argument, an INI value)
// into a scalar of the requested kind. Failures are reported through lg.
//
//	KindNone:   null, none (case-insensitive)
//	KindBool:   true, yes, on, 1 / false, no, off, 0 (case-insensitive)
//	KindNumber: the JSON number grammar with an optional leading '+'
//	KindString: the token with the string escape set decoded
func ParseScalar(kind vtree.Kind, raw string, lg c2p.Logger) (vtree.Scalar, bool) {
	lg = c2p.Or(lg)
	switch kind {
	case vtree.KindNone:
		switch strings.ToLower(raw) {
		case "null", "none":
			return vtree.NoneScalar(), true
		}
	case vtree.KindBool:
		switch strings.ToLower(raw) {
		case "true", "yes", "on", "1":
			return vtree.BoolScalar(true), true
		case "false", "no", "off", "0":
			return vtree.BoolScalar(false), true
		}
	case vtree.KindNumber:
		if f, ok := parseNumberLiteral(raw); ok {
			return vtree.NumberScalar(f), true
		}
	case vtree.KindString:
		if s, ok := unescape(raw); ok {
			return vtree.StringScalar(s), true
		}
	}
	lg.Error(fmt.Sprintf("cannot read %q as %s", raw, kind))
	return vtree.Scalar{}, false
}

// parseNumberLiteral accepts sign? int frac? exp? with no leading zeros on
// the integer part, the whole token consumed.
func parseNumberLiteral(s string) (float64, bool) {
	i, n := 0, len(s)
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}
	switch {
	case i < n && s[i] == '0':
		i++
	case i < n && s[i] >= '1' && s[i] <= '9':
		for i < n && isDigit(s[i]) {
			i++
		}
	default:
		return 0, false
	}
	if i < n && s[i] == '.' {
		i++
		if i >= n || !isDigit(s[i]) {
			return 0, false
		}
		for i < n && isDigit(s[i]) {
			i++
		}
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if i >= n || !isDigit(s[i]) {
			return 0, false
		}
		for i < n && isDigit(s[i]) {
			i++
		}
	}
	if i != n {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// unescape decodes the string escape set over a plain token.
func unescape(raw string) (string, bool) {
	if !strings.Contains(raw, `\`) {
		return raw, true
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(raw) {
			return "", false
		}
		switch raw[i] {
		case '"', '\\', '/':
			b.WriteByte(raw[i])
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
		case 'u', 'U':
			digits := 4
			if raw[i] == 'U' {
				digits = 8
			}
			if i+digits >= len(raw) {
				return "", false
			}
			cp, err := strconv.ParseUint(raw[i+1:i+1+digits], 16, 32)
			if err != nil {
				return "", false
			}
			b.WriteString(text.EncodeCodePoint(uint32(cp)))
			i += digits
		default:
			return "", false
		}
	}
	return b.String(), true
}
