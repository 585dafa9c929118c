package vtree

import (
	"fmt"
	"strconv"
	"strings"
)

// Seg is one step of a lookup path: either an object key or an array index.
type Seg struct {
	key   string
	idx   int
	isKey bool
}

// Key returns a segment selecting an object member.
func Key(k string) Seg { return Seg{key: k, isKey: true} }

// Index returns a segment selecting an array element.
func Index(i int) Seg { return Seg{idx: i} }

func (g Seg) String() string {
	if g.isKey {
		return "." + g.key
	}
	return "[" + strconv.Itoa(g.idx) + "]"
}

// At walks segs from t and returns the addressed subtree, or nil when any
// step misses (wrong state, missing key, index out of range).
func (t *Tree) At(segs ...Seg) *Tree {
	cur := t
	for _, g := range segs {
		if cur == nil {
			return nil
		}
		if g.isKey {
			if cur.state != Object {
				return nil
			}
			cur = cur.obj[g.key]
		} else {
			if cur.state != Array || g.idx < 0 || g.idx >= len(cur.arr) {
				return nil
			}
			cur = cur.arr[g.idx]
		}
	}
	return cur
}

// StringAt returns the string value at segs, failing unless the subtree is
// a String scalar.
func (t *Tree) StringAt(segs ...Seg) (string, bool) {
	sc, ok := t.scalarAt(KindString, segs)
	if !ok {
		return "", false
	}
	return sc.String(), true
}

// NumberAt returns the numeric value at segs, failing unless the subtree is
// a Number scalar.
func (t *Tree) NumberAt(segs ...Seg) (float64, bool) {
	sc, ok := t.scalarAt(KindNumber, segs)
	if !ok {
		return 0, false
	}
	return sc.Number(), true
}

// BoolAt returns the boolean value at segs, failing unless the subtree is a
// Bool scalar.
func (t *Tree) BoolAt(segs ...Seg) (bool, bool) {
	sc, ok := t.scalarAt(KindBool, segs)
	if !ok {
		return false, false
	}
	return sc.Bool(), true
}

// NoneAt reports whether the subtree at segs is the None scalar.
func (t *Tree) NoneAt(segs ...Seg) bool {
	_, ok := t.scalarAt(KindNone, segs)
	return ok
}

func (t *Tree) scalarAt(kind Kind, segs []Seg) (*Scalar, bool) {
	sub := t.At(segs...)
	if sub == nil {
		return nil, false
	}
	sc, ok := sub.Value()
	if !ok || sc.Kind() != kind {
		return nil, false
	}
	return sc, true
}

// ParsePath parses a textual lookup path into segments. Paths start with
// '$' (the root) followed by ".field" or "['quoted field']" member steps
// and "[i]" index steps:
//
//	$.servers[0].host
//	$['weird.key'].port
//
// Quoted fields use single quotes with \' and \\ escapes.
func ParsePath(path string) ([]Seg, error) {
	if path == "" || path[0] != '$' {
		return nil, fmt.Errorf("path %q: must start with '$'", path)
	}
	var segs []Seg
	i := 1
	for i < len(path) {
		switch path[i] {
		case '.':
			i++
			if i >= len(path) {
				return nil, fmt.Errorf("path %q: trailing '.'", path)
			}
			j := i
			for j < len(path) && path[j] != '.' && path[j] != '[' {
				j++
			}
			if j == i {
				return nil, fmt.Errorf("path %q: empty field at offset %d", path, i)
			}
			segs = append(segs, Key(path[i:j]))
			i = j
		case '[':
			i++
			if i < len(path) && path[i] == '\'' {
				field, rest, err := parseQuotedField(path, i)
				if err != nil {
					return nil, fmt.Errorf("path %q: %w", path, err)
				}
				segs = append(segs, Key(field))
				i = rest
			} else {
				j := strings.IndexByte(path[i:], ']')
				if j < 0 {
					return nil, fmt.Errorf("path %q: missing ']'", path)
				}
				idx, err := strconv.Atoi(path[i : i+j])
				if err != nil || idx < 0 {
					return nil, fmt.Errorf("path %q: bad index %q", path, path[i:i+j])
				}
				segs = append(segs, Index(idx))
				i += j + 1
			}
		default:
			return nil, fmt.Errorf("path %q: unexpected character %q at offset %d", path, path[i], i)
		}
	}
	return segs, nil
}

// parseQuotedField decodes '...'] starting at the opening quote and returns
// the field plus the offset just past the closing bracket.
func parseQuotedField(path string, i int) (string, int, error) {
	i++ // opening quote
	var b strings.Builder
	for i < len(path) {
		switch path[i] {
		case '\\':
			if i+1 >= len(path) {
				return "", 0, fmt.Errorf("unterminated escape at offset %d", i)
			}
			i++
			b.WriteByte(path[i])
			i++
		case '\'':
			i++
			if i >= len(path) || path[i] != ']' {
				return "", 0, fmt.Errorf("expected ']' after quoted field at offset %d", i)
			}
			return b.String(), i + 1, nil
		default:
			b.WriteByte(path[i])
			i++
		}
	}
	return "", 0, fmt.Errorf("unterminated quoted field at offset %d", i)
}
