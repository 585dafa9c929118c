package ini

import (
	"strings"

	"github.com/c2p-dev/go-c2p/json"
	"github.com/c2p-dev/go-c2p/vtree"
)

// Dump serializes a tree that fits the INI shape: an object whose members
// are scalars (global entries) or objects of scalars (sections). Global
// entries come first, each section follows after a blank line, everything
// key-sorted. Empty members are omitted. The result is "" when the tree is
// not an object or contains arrays or nesting beyond one section level.
//
// Scalars serialize by their string form; booleans, numbers and null
// therefore come back as strings on re-parse. Headers, keys and values are
// quoted automatically when the unquoted form would not survive a
// re-parse.
func Dump(t *vtree.Tree) string {
	if t == nil {
		return ""
	}
	obj, ok := t.Object()
	if !ok {
		return ""
	}
	var b strings.Builder
	var sections []string
	for _, k := range t.Keys() {
		child := obj[k]
		switch child.State() {
		case vtree.Empty:
		case vtree.Value:
			sc, _ := child.Value()
			writeEntry(&b, k, *sc)
		case vtree.Object:
			sections = append(sections, k)
		default:
			return "" // arrays have no INI form
		}
	}
	for _, name := range sections {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('[')
		b.WriteString(quoteToken(name, "]"))
		b.WriteString("]\n")
		sec := obj[name]
		members, _ := sec.Object()
		for _, k := range sec.Keys() {
			child := members[k]
			if child.IsEmpty() {
				continue
			}
			sc, ok := child.Value()
			if !ok {
				return "" // nested sections/arrays have no INI form
			}
			writeEntry(&b, k, *sc)
		}
	}
	return b.String()
}

func writeEntry(b *strings.Builder, key string, sc vtree.Scalar) {
	b.WriteString(quoteKey(key))
	b.WriteByte('=')
	if sc.IsString() {
		b.WriteString(quoteToken(sc.String(), ""))
	} else {
		b.WriteString(sc.String())
	}
	b.WriteByte('\n')
}

func quoteKey(key string) string {
	if len(key) > 0 && key[0] == '[' {
		// would read back as a section header
		return json.Quote(key)
	}
	return quoteToken(key, "=")
}

// quoteToken renders s unquoted when a re-parse would return it verbatim,
// quoted otherwise. extra lists context-specific terminator bytes.
func quoteToken(s, extra string) string {
	if needsQuote(s, extra) {
		return json.Quote(s)
	}
	return s
}

func needsQuote(s, extra string) bool {
	if s == "" {
		return true
	}
	if isSpace(s[0]) || isSpace(s[len(s)-1]) {
		return true
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 || c == '"' || c == '\\' || c == ';' || c == '#' {
			return true
		}
		if strings.IndexByte(extra, c) >= 0 {
			return true
		}
	}
	return false
}
