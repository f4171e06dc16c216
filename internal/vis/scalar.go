package vis

import (
	"fmt"
	"strconv"
)

// ValueKind identifies which member of the ScalarValue union is set.
type ValueKind int

const (
	KindUnset ValueKind = iota
	KindInt
	KindFloat
	KindBool
	KindText
)

// String makes ValueKind satisfy the fmt.Stringer interface.
func (k ValueKind) String() string {
	switch k {
	case KindUnset:
		return "Unset"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindBool:
		return "Bool"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// ScalarValue is a closed tagged union over the four scalar types a tab can
// display: int64, float64, bool and text. The zero value is unset, which is
// how group nodes in a structure tree carry no value. Writes to the same key
// are last-write-wins; there is no merging across kinds.
type ScalarValue struct {
	kind ValueKind
	i    int64
	f    float64
	b    bool
	s    string
}

// Int returns a ScalarValue holding an integer.
func Int(v int64) ScalarValue { return ScalarValue{kind: KindInt, i: v} }

// Float returns a ScalarValue holding a float.
func Float(v float64) ScalarValue { return ScalarValue{kind: KindFloat, f: v} }

// Bool returns a ScalarValue holding a bool.
func Bool(v bool) ScalarValue { return ScalarValue{kind: KindBool, b: v} }

// Text returns a ScalarValue holding a string.
func Text(v string) ScalarValue { return ScalarValue{kind: KindText, s: v} }

// Kind reports which union member is set.
func (v ScalarValue) Kind() ValueKind { return v.kind }

// IsSet reports whether the value holds any member at all.
func (v ScalarValue) IsSet() bool { return v.kind != KindUnset }

// Int returns the integer member, if set.
func (v ScalarValue) Int() (int64, bool) {
	return v.i, v.kind == KindInt
}

// Float returns the float member, if set.
func (v ScalarValue) Float() (float64, bool) {
	return v.f, v.kind == KindFloat
}

// Bool returns the bool member, if set.
func (v ScalarValue) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Text returns the text member, if set.
func (v ScalarValue) Text() (string, bool) {
	return v.s, v.kind == KindText
}

// String renders the value for display. Floats use three decimals, matching
// the plot and structure row formatting everywhere in the UI.
func (v ScalarValue) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return fmt.Sprintf("%.3f", v.f)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindText:
		return v.s
	default:
		return ""
	}
}
