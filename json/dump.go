package json

import (
	"fmt"
	"strings"

	"github.com/c2p-dev/go-c2p/vtree"
)

// Dump serializes t. Empty input yields "", Empty array elements and object
// members are omitted, object members come out key-sorted. In pretty mode
// every element/member sits on its own line indented by indentStep spaces
// per level and keys are followed by ": "; compact mode emits no whitespace
// at all.
func Dump(t *vtree.Tree, pretty bool, indentStep int) string {
	if t == nil || t.IsEmpty() {
		return ""
	}
	var b strings.Builder
	writeTree(&b, t, pretty, 0, indentStep)
	return b.String()
}

func writeTree(b *strings.Builder, t *vtree.Tree, pretty bool, indent, step int) {
	switch t.State() {
	case vtree.Value:
		sc, _ := t.Value()
		writeScalar(b, *sc)
	case vtree.Array:
		all, _ := t.Array()
		var kept []*vtree.Tree
		for _, e := range all {
			if !e.IsEmpty() {
				kept = append(kept, e)
			}
		}
		if len(kept) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteByte('[')
		for i, e := range kept {
			if i > 0 {
				b.WriteByte(',')
			}
			if pretty {
				b.WriteByte('\n')
				writeIndent(b, indent+step)
			}
			writeTree(b, e, pretty, indent+step, step)
		}
		if pretty {
			b.WriteByte('\n')
			writeIndent(b, indent)
		}
		b.WriteByte(']')
	case vtree.Object:
		members, _ := t.Object()
		var kept []string
		for _, k := range t.Keys() {
			if !members[k].IsEmpty() {
				kept = append(kept, k)
			}
		}
		if len(kept) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteByte('{')
		for i, k := range kept {
			if i > 0 {
				b.WriteByte(',')
			}
			if pretty {
				b.WriteByte('\n')
				writeIndent(b, indent+step)
			}
			b.WriteString(Quote(k))
			if pretty {
				b.WriteString(": ")
			} else {
				b.WriteByte(':')
			}
			writeTree(b, members[k], pretty, indent+step, step)
		}
		if pretty {
			b.WriteByte('\n')
			writeIndent(b, indent)
		}
		b.WriteByte('}')
	}
}

func writeScalar(b *strings.Builder, sc vtree.Scalar) {
	if sc.IsString() {
		b.WriteString(Quote(sc.String()))
		return
	}
	b.WriteString(sc.String())
}

func writeIndent(b *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		b.WriteByte(' ')
	}
}

// Quote renders s as a quoted JSON string. Quotes, backslashes and the
// short escapes are escaped, remaining control bytes become \u00XX, and
// everything else (UTF-8 included) passes through raw.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
