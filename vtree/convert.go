package vtree

import "fmt"

// ToAny converts a tree to plain Go values: nil for Empty and None, bool,
// float64, string, []any, and map[string]any (built in key order). It is
// the bridge to YAML marshaling and expression environments.
func ToAny(t *Tree) any {
	if t == nil {
		return nil
	}
	switch t.state {
	case Value:
		switch t.scalar.kind {
		case KindNone:
			return nil
		case KindBool:
			return t.scalar.boolVal
		case KindNumber:
			return t.scalar.numVal
		default:
			return t.scalar.strVal
		}
	case Array:
		out := make([]any, 0, len(t.arr))
		for _, c := range t.arr {
			out = append(out, ToAny(c))
		}
		return out
	case Object:
		out := make(map[string]any, len(t.obj))
		for _, k := range t.Keys() {
			out[k] = ToAny(t.obj[k])
		}
		return out
	}
	return nil
}

// FromAny converts plain Go values (as produced by YAML or JSON
// unmarshaling into any) to a tree. All numeric types collapse to float64.
func FromAny(v any) (*Tree, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case float64:
		return FromNumber(x), nil
	case float32:
		return FromNumber(float64(x)), nil
	case int:
		return FromNumber(float64(x)), nil
	case int8:
		return FromNumber(float64(x)), nil
	case int16:
		return FromNumber(float64(x)), nil
	case int32:
		return FromNumber(float64(x)), nil
	case int64:
		return FromNumber(float64(x)), nil
	case uint:
		return FromNumber(float64(x)), nil
	case uint8:
		return FromNumber(float64(x)), nil
	case uint16:
		return FromNumber(float64(x)), nil
	case uint32:
		return FromNumber(float64(x)), nil
	case uint64:
		return FromNumber(float64(x)), nil
	case []any:
		t := New().CoerceArray()
		for i, e := range x {
			child, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			t.Append(child)
		}
		return t, nil
	case map[string]any:
		t := New().CoerceObject()
		for k, e := range x {
			child, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("member %q: %w", k, err)
			}
			t.Put(k, child)
		}
		return t, nil
	case map[any]any:
		t := New().CoerceObject()
		for k, e := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string object key %v (%T)", k, k)
			}
			child, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("member %q: %w", ks, err)
			}
			t.Put(ks, child)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("cannot convert %T into a value tree", v)
	}
}
