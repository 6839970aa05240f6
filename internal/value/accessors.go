package value

func AsNumber(v Value) (float64, bool) {
	n, ok := v.(Number)
	return float64(n), ok
}

func AsString(v Value) (string, bool) {
	s, ok := v.(String)
	return string(s), ok
}

func AsBool(v Value) (bool, bool) {
	b, ok := v.(Bool)
	return bool(b), ok
}

func AsList(v Value) ([]Value, bool) {
	l, ok := v.(List)
	return l, ok
}

func AsRecord(v Value) (Record, bool) {
	r, ok := v.(Record)
	return r, ok
}

func AsColor(v Value) (Color, bool) {
	c, ok := v.(Color)
	return c, ok
}

func AsResult(v Value) (Result, bool) {
	r, ok := v.(Result)
	return r, ok
}

// AsVariant returns the declaring type, variant name and positional fields.
func AsVariant(v Value) (typeName, name string, fields []Value, ok bool) {
	sv, ok := v.(Variant)
	if !ok {
		return "", "", nil, false
	}
	return sv.TypeName, sv.Name, sv.Fields, true
}

func AsFunction(v Value) (Function, bool) {
	f, ok := v.(Function)
	return f, ok
}

func IsNil(v Value) bool {
	return isNil(v)
}
