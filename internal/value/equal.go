package value

import (
	"strings"
)

// Equal reports whether a and b are equal.
//
// Numbers follow IEEE 754 (NaN is never equal to itself). Records compare
// structurally and ignore their declared type name; sum variants compare
// nominally. Values of different kinds are never equal.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case nil, Nil:
		return isNil(b)
	case Bool:
		b, ok := b.(Bool)
		return ok && a == b
	case Number:
		b, ok := b.(Number)
		return ok && a == b
	case String:
		b, ok := b.(String)
		return ok && a == b
	case List:
		b, ok := b.(List)
		return ok && equalSlices(a, b)
	case Record:
		b, ok := b.(Record)
		return ok && equalFields(a.fields, b.fields)
	case Color:
		b, ok := b.(Color)
		return ok && a == b
	case Result:
		b, ok := b.(Result)
		return ok && a.err == b.err && Equal(a.Inner(), b.Inner())
	case Variant:
		b, ok := b.(Variant)
		return ok && a.TypeName == b.TypeName && a.Name == b.Name && equalSlices(a.Fields, b.Fields)
	case Function:
		b, ok := b.(Function)
		return ok && a.function == b.function
	}
	return false
}

func isNil(v Value) bool {
	switch v.(type) {
	case nil, Nil:
		return true
	}
	return false
}

func equalSlices(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalFields(a, b map[string]Value) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !Equal(av, bv) {
			return false
		}
	}
	return true
}

// Compare orders two values of the same comparable kind. Numbers compare
// numerically, strings byte-wise and booleans with false < true. The second
// result is false when the pair has no order, including when either number is
// NaN.
func Compare(a, b Value) (int, bool) {
	switch a := a.(type) {
	case Number:
		b, ok := b.(Number)
		if !ok || a != a || b != b {
			return 0, false
		}
		switch {
		case a < b:
			return -1, true
		case a > b:
			return 1, true
		}
		return 0, true
	case String:
		b, ok := b.(String)
		if !ok {
			return 0, false
		}
		return strings.Compare(string(a), string(b)), true
	case Bool:
		b, ok := b.(Bool)
		if !ok {
			return 0, false
		}
		switch {
		case a == b:
			return 0, true
		case !bool(a):
			return -1, true
		}
		return 1, true
	}
	return 0, false
}
