package vtree

import "strconv"

// Kind tags the payload of a Scalar.
type Kind int

const (
	KindNone Kind = iota
	KindBool
	KindNumber
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindBool:
		return "Bool"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Scalar is a tagged leaf value: nothing, a bool, a float64 or a string.
// Exactly one payload is meaningful at a time; the setters keep it that way.
// The zero Scalar is None.
type Scalar struct {
	kind    Kind
	boolVal bool
	numVal  float64
	strVal  string
}

func NoneScalar() Scalar            { return Scalar{} }
func BoolScalar(v bool) Scalar      { return Scalar{kind: KindBool, boolVal: v} }
func NumberScalar(v float64) Scalar { return Scalar{kind: KindNumber, numVal: v} }
func StringScalar(v string) Scalar  { return Scalar{kind: KindString, strVal: v} }

func (s Scalar) Kind() Kind     { return s.kind }
func (s Scalar) IsNone() bool   { return s.kind == KindNone }
func (s Scalar) IsBool() bool   { return s.kind == KindBool }
func (s Scalar) IsNumber() bool { return s.kind == KindNumber }
func (s Scalar) IsString() bool { return s.kind == KindString }

// Bool returns the bool payload, false unless KindBool.
func (s Scalar) Bool() bool { return s.kind == KindBool && s.boolVal }

// Number returns the numeric payload, 0 unless KindNumber.
func (s Scalar) Number() float64 {
	if s.kind != KindNumber {
		return 0
	}
	return s.numVal
}

// String returns the string payload for KindString. For the other kinds it
// returns a readable form: "null", "true"/"false", or the shortest
// round-tripping decimal for numbers.
func (s Scalar) String() string {
	switch s.kind {
	case KindNone:
		return "null"
	case KindBool:
		return strconv.FormatBool(s.boolVal)
	case KindNumber:
		return strconv.FormatFloat(s.numVal, 'g', -1, 64)
	default:
		return s.strVal
	}
}

func (s *Scalar) SetNone() { *s = Scalar{} }

func (s *Scalar) SetBool(v bool) { *s = Scalar{kind: KindBool, boolVal: v} }

func (s *Scalar) SetNumber(v float64) { *s = Scalar{kind: KindNumber, numVal: v} }

func (s *Scalar) SetString(v string) { *s = Scalar{kind: KindString, strVal: v} }

// Equal reports whether both scalars hold the same kind and payload.
func (s Scalar) Equal(o Scalar) bool { return s == o }
