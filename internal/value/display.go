package value

import (
	"math"
	"strconv"
	"strings"
)

// String implements fmt.Stringer.
func (Nil) String() string {
	return "nil"
}

// String implements fmt.Stringer.
func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

// String implements fmt.Stringer.
func (n Number) String() string {
	return formatNumber(float64(n))
}

// String implements fmt.Stringer.
func (s String) String() string {
	return string(s)
}

// String implements fmt.Stringer.
func (l List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, item := range l {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeNested(&sb, item)
	}
	sb.WriteByte(']')
	return sb.String()
}

// String implements fmt.Stringer.
func (r Record) String() string {
	var sb strings.Builder
	sb.WriteString(r.typeName)
	sb.WriteByte('{')
	i := 0
	r.Each(func(key string, v Value) bool {
		if i > 0 {
			sb.WriteString(", ")
		}
		i++
		sb.WriteString(key)
		sb.WriteString(": ")
		writeNested(&sb, v)
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return "color(" + formatNumber(c.R) + ", " + formatNumber(c.G) + ", " +
		formatNumber(c.B) + ", " + formatNumber(c.A) + ")"
}

// String implements fmt.Stringer.
func (r Result) String() string {
	if r.err {
		return "Err(" + Display(r.inner) + ")"
	}
	return "Ok(" + Display(r.inner) + ")"
}

// String implements fmt.Stringer.
func (v Variant) String() string {
	if len(v.Fields) == 0 {
		return v.Name
	}
	var sb strings.Builder
	sb.WriteString(v.Name)
	sb.WriteByte('(')
	for i, f := range v.Fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(Display(f))
	}
	sb.WriteByte(')')
	return sb.String()
}

// String implements fmt.Stringer.
func (f Function) String() string {
	if name := f.Name(); name != "" {
		return "<function " + name + ">"
	}
	return "<function>"
}

// GoString implements fmt.GoStringer.
func (s String) GoString() string {
	return `"` + string(s) + `"`
}

// Display renders v like v.String() but accepts a nil Value as Nil.
func Display(v Value) string {
	if v == nil {
		return NilValue.String()
	}
	return v.String()
}

// Strings inside lists and records are quoted.
func writeNested(sb *strings.Builder, v Value) {
	if s, ok := v.(String); ok {
		sb.WriteString(s.GoString())
		return
	}
	sb.WriteString(Display(v))
}

// Integral values print without a decimal point.
func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	case n == 0:
		return "0"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
