// Package vtree implements the recursive value tree the codecs read and
// write: a node is empty, a scalar value, an array of subtrees or a
// string-keyed object of subtrees.
//
// Mutation goes through the coercions (CoerceValue, CoerceArray,
// CoerceObject, Sub, Put, Append), which switch the node to the requested
// state and discard what was stored under any other state. Inspection goes
// through the non-mutating views (Value, Array, Object, Keys, At), which
// fail on a state mismatch instead of converting.
package vtree

import (
	"slices"
)

// State says which storage of a Tree is live.
type State int

const (
	Empty State = iota
	Value
	Array
	Object
)

func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Value:
		return "Value"
	case Array:
		return "Array"
	case Object:
		return "Object"
	}
	return "State(?)"
}

// Tree is one node of a value tree. The zero value is an Empty node.
type Tree struct {
	state  State
	scalar Scalar
	arr    []*Tree
	obj    map[string]*Tree
}

// New returns an Empty node.
func New() *Tree { return &Tree{} }

// FromScalar returns a Value node holding sc.
func FromScalar(sc Scalar) *Tree { return &Tree{state: Value, scalar: sc} }

func FromBool(v bool) *Tree      { return FromScalar(BoolScalar(v)) }
func FromNumber(v float64) *Tree { return FromScalar(NumberScalar(v)) }
func FromString(v string) *Tree  { return FromScalar(StringScalar(v)) }

// Null returns a Value node holding the None scalar.
func Null() *Tree { return FromScalar(NoneScalar()) }

// FromStrings returns an Array node of string values.
func FromStrings(ss []string) *Tree {
	t := New().CoerceArray()
	for _, s := range ss {
		t.Append(FromString(s))
	}
	return t
}

// FromSlice returns an Array node over children. The children are not
// copied.
func FromSlice(children []*Tree) *Tree {
	t := New().CoerceArray()
	return t.Append(children...)
}

// FromMap returns an Object node over m. The subtrees are not copied.
func FromMap(m map[string]*Tree) *Tree {
	t := New().CoerceObject()
	for k, v := range m {
		t.Put(k, v)
	}
	return t
}

func (t *Tree) State() State   { return t.state }
func (t *Tree) IsEmpty() bool  { return t.state == Empty }
func (t *Tree) IsValue() bool  { return t.state == Value }
func (t *Tree) IsArray() bool  { return t.state == Array }
func (t *Tree) IsObject() bool { return t.state == Object }

// Clear resets the node to Empty, discarding all content.
func (t *Tree) Clear() { *t = Tree{} }

func (t *Tree) become(s State) {
	if t.state != s {
		*t = Tree{state: s}
	}
}

// CoerceValue switches the node to the Value state (discarding non-Value
// content) and returns the scalar for in-place mutation.
func (t *Tree) CoerceValue() *Scalar {
	t.become(Value)
	return &t.scalar
}

// CoerceArray switches the node to the Array state, keeping existing
// elements when it already is one. Returns t for chaining.
func (t *Tree) CoerceArray() *Tree {
	t.become(Array)
	return t
}

// CoerceObject switches the node to the Object state, keeping existing
// members when it already is one. Returns t for chaining.
func (t *Tree) CoerceObject() *Tree {
	t.become(Object)
	if t.obj == nil {
		t.obj = map[string]*Tree{}
	}
	return t
}

// Append coerces to Array and appends children. Returns t.
func (t *Tree) Append(children ...*Tree) *Tree {
	t.become(Array)
	t.arr = append(t.arr, children...)
	return t
}

// Sub coerces to Object and returns the subtree under key, creating an
// Empty one when missing.
func (t *Tree) Sub(key string) *Tree {
	t.CoerceObject()
	child, ok := t.obj[key]
	if !ok {
		child = New()
		t.obj[key] = child
	}
	return child
}

// Put coerces to Object and stores child under key, replacing any previous
// subtree. Returns t.
func (t *Tree) Put(key string, child *Tree) *Tree {
	t.CoerceObject()
	t.obj[key] = child
	return t
}

// Delete removes the member under key from an Object node.
func (t *Tree) Delete(key string) {
	if t.state == Object {
		delete(t.obj, key)
	}
}

// Len returns the element count for Array nodes, the member count for
// Object nodes, and 0 otherwise.
func (t *Tree) Len() int {
	switch t.state {
	case Array:
		return len(t.arr)
	case Object:
		return len(t.obj)
	}
	return 0
}

// Value returns the scalar when the node is a Value, without converting.
func (t *Tree) Value() (*Scalar, bool) {
	if t.state != Value {
		return nil, false
	}
	return &t.scalar, true
}

// Array returns the elements when the node is an Array, without converting.
// The slice is the node's own storage.
func (t *Tree) Array() ([]*Tree, bool) {
	if t.state != Array {
		return nil, false
	}
	return t.arr, true
}

// Object returns the members when the node is an Object, without
// converting. The map is the node's own storage.
func (t *Tree) Object() (map[string]*Tree, bool) {
	if t.state != Object {
		return nil, false
	}
	return t.obj, true
}

// Keys returns the sorted member keys of an Object node, nil otherwise.
// All iteration over objects in this module goes through Keys.
func (t *Tree) Keys() []string {
	if t.state != Object {
		return nil
	}
	keys := make([]string, 0, len(t.obj))
	for k := range t.obj {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Clone returns a deep copy of t. Clone(nil) is nil.
func (t *Tree) Clone() *Tree {
	if t == nil {
		return nil
	}
	out := &Tree{state: t.state, scalar: t.scalar}
	switch t.state {
	case Array:
		out.arr = make([]*Tree, len(t.arr))
		for i, c := range t.arr {
			out.arr[i] = c.Clone()
		}
	case Object:
		out.obj = make(map[string]*Tree, len(t.obj))
		for k, c := range t.obj {
			out.obj[k] = c.Clone()
		}
	}
	return out
}
