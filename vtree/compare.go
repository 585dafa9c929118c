package vtree

import (
	"cmp"
	"strings"
)

// Compare imposes a total order over trees: Empty < Value < Array < Object,
// with None < Bool < Number < String among scalars, false < true,
// numeric order for numbers, byte order for strings, lexicographic
// elementwise order for arrays, and key-then-value order over sorted keys
// for objects. nil sorts before everything.
func Compare(a, b *Tree) int {
	if a == nil || b == nil {
		return boolsCompare(a != nil, b != nil)
	}
	if d := cmp.Compare(a.state, b.state); d != 0 {
		return d
	}
	switch a.state {
	case Empty:
		return 0
	case Value:
		return compareScalars(a.scalar, b.scalar)
	case Array:
		for i := 0; i < min(len(a.arr), len(b.arr)); i++ {
			if d := Compare(a.arr[i], b.arr[i]); d != 0 {
				return d
			}
		}
		return cmp.Compare(len(a.arr), len(b.arr))
	default:
		ak, bk := a.Keys(), b.Keys()
		for i := 0; i < min(len(ak), len(bk)); i++ {
			if d := strings.Compare(ak[i], bk[i]); d != 0 {
				return d
			}
			if d := Compare(a.obj[ak[i]], b.obj[bk[i]]); d != 0 {
				return d
			}
		}
		return cmp.Compare(len(ak), len(bk))
	}
}

func compareScalars(a, b Scalar) int {
	if d := cmp.Compare(a.kind, b.kind); d != 0 {
		return d
	}
	switch a.kind {
	case KindNone:
		return 0
	case KindBool:
		return boolsCompare(a.boolVal, b.boolVal)
	case KindNumber:
		return cmp.Compare(a.numVal, b.numVal)
	default:
		return strings.Compare(a.strVal, b.strVal)
	}
}

func boolsCompare(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}

// Equal reports structural equality of two trees.
func Equal(a, b *Tree) bool { return Compare(a, b) == 0 }
