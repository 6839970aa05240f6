package value_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leonardinius/pepl/internal/value"
)

func rec(kv ...any) map[string]value.Value {
	fields := make(map[string]value.Value, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		fields[kv[i].(string)] = kv[i+1].(value.Value)
	}
	return fields
}

func TestEqual(t *testing.T) {
	t.Parallel()

	fn := value.NewFunction("f", func([]value.Value) (value.Value, error) { return value.NilValue, nil })
	nan := value.Number(math.NaN())

	testcases := []struct {
		name     string
		a, b     value.Value
		expected bool
	}{
		{name: `nil nil`, a: value.NilValue, b: value.NilValue, expected: true},
		{name: `nil go nil`, a: nil, b: value.NilValue, expected: true},
		{name: `bool`, a: value.TrueValue, b: value.Bool(true), expected: true},
		{name: `bool differs`, a: value.TrueValue, b: value.FalseValue, expected: false},
		{name: `number`, a: value.Number(1.5), b: value.Number(1.5), expected: true},
		{name: `zero signs`, a: value.Number(0), b: value.Number(math.Copysign(0, -1)), expected: true},
		{name: `nan`, a: nan, b: nan, expected: false},
		{name: `string`, a: value.String("a"), b: value.String("a"), expected: true},
		{name: `kinds differ`, a: value.Number(0), b: value.String("0"), expected: false},
		{name: `nil vs false`, a: value.NilValue, b: value.FalseValue, expected: false},
		{name: `list`, a: value.List{value.Number(1), value.String("x")}, b: value.List{value.Number(1), value.String("x")}, expected: true},
		{name: `list length`, a: value.List{value.Number(1)}, b: value.List{}, expected: false},
		{name: `list with nan`, a: value.List{nan}, b: value.List{nan}, expected: false},
		{
			name:     `record structural`,
			a:        value.NewRecord(rec("a", value.Number(1), "b", value.TrueValue)),
			b:        value.NewRecord(rec("b", value.TrueValue, "a", value.Number(1))),
			expected: true,
		},
		{
			name:     `record ignores type name`,
			a:        value.NewNamedRecord("Point", rec("x", value.Number(1))),
			b:        value.NewRecord(rec("x", value.Number(1))),
			expected: true,
		},
		{
			name:     `record missing key`,
			a:        value.NewRecord(rec("a", value.Number(1))),
			b:        value.NewRecord(rec("b", value.Number(1))),
			expected: false,
		},
		{name: `color`, a: value.NewColor(1, 0, 0, 1), b: value.NewColor(1, 0, 0, 1), expected: true},
		{name: `color vs record`, a: value.NewColor(1, 0, 0, 1), b: value.NewRecord(rec("r", value.Number(1))), expected: false},
		{name: `ok`, a: value.Ok(value.Number(1)), b: value.Ok(value.Number(1)), expected: true},
		{name: `ok vs err`, a: value.Ok(value.Number(1)), b: value.Err(value.Number(1)), expected: false},
		{name: `variant`, a: value.NewVariant("Shape", "Circle", value.Number(5)), b: value.NewVariant("Shape", "Circle", value.Number(5)), expected: true},
		{name: `variant other type`, a: value.UnitVariant("A", "X"), b: value.UnitVariant("B", "X"), expected: false},
		{name: `variant other name`, a: value.UnitVariant("A", "X"), b: value.UnitVariant("A", "Y"), expected: false},
		{name: `function identity`, a: fn, b: fn, expected: true},
		{
			name:     `function distinct`,
			a:        fn,
			b:        value.NewFunction("f", func([]value.Value) (value.Value, error) { return value.NilValue, nil }),
			expected: false,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, value.Equal(tc.a, tc.b))
			assert.Equal(t, tc.expected, value.Equal(tc.b, tc.a))
		})
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		a, b     value.Value
		expected int
		ok       bool
	}{
		{name: `numbers lt`, a: value.Number(1), b: value.Number(2), expected: -1, ok: true},
		{name: `numbers eq`, a: value.Number(2), b: value.Number(2), expected: 0, ok: true},
		{name: `numbers gt`, a: value.Number(3), b: value.Number(2), expected: 1, ok: true},
		{name: `nan`, a: value.Number(math.NaN()), b: value.Number(2), ok: false},
		{name: `strings`, a: value.String("a"), b: value.String("b"), expected: -1, ok: true},
		{name: `bools`, a: value.FalseValue, b: value.TrueValue, expected: -1, ok: true},
		{name: `bools gt`, a: value.TrueValue, b: value.FalseValue, expected: 1, ok: true},
		{name: `bools eq`, a: value.FalseValue, b: value.FalseValue, expected: 0, ok: true},
		{name: `mixed`, a: value.Number(1), b: value.String("1"), ok: false},
		{name: `lists`, a: value.List{}, b: value.List{}, ok: false},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := value.Compare(tc.a, tc.b)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestTruthy(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		v        value.Value
		expected bool
	}{
		{name: `nil`, v: value.NilValue, expected: false},
		{name: `false`, v: value.FalseValue, expected: false},
		{name: `true`, v: value.TrueValue, expected: true},
		{name: `zero`, v: value.Number(0), expected: false},
		{name: `non zero`, v: value.Number(-1), expected: true},
		{name: `empty string`, v: value.EmptyStringValue, expected: false},
		{name: `string`, v: value.String("0"), expected: true},
		{name: `empty list`, v: value.List{}, expected: true},
		{name: `empty record`, v: value.NewRecord(nil), expected: true},
		{name: `err`, v: value.Err(value.NilValue), expected: true},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, value.Truthy(tc.v))
		})
	}
}

func TestTypeName(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		v        value.Value
		expected string
		declared bool
	}{
		{v: value.NilValue, expected: "nil"},
		{v: value.TrueValue, expected: "bool"},
		{v: value.Number(1), expected: "number"},
		{v: value.String(""), expected: "string"},
		{v: value.List{}, expected: "list"},
		{v: value.NewRecord(nil), expected: "record"},
		{v: value.NewNamedRecord("User", nil), expected: "User", declared: true},
		{v: value.NewColor(0, 0, 0, 1), expected: "color"},
		{v: value.Ok(value.NilValue), expected: "result"},
		{v: value.UnitVariant("Shape", "Dot"), expected: "Shape", declared: true},
		{v: value.NewFunction("", nil), expected: "function"},
	}

	for _, tc := range testcases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, value.TypeName(tc.v))
			name, ok := value.DeclaredTypeName(tc.v)
			assert.Equal(t, tc.declared, ok)
			if ok {
				assert.Equal(t, tc.expected, name)
			}
		})
	}
}

func TestDisplay(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		v        value.Value
		expected string
	}{
		{name: `nil`, v: value.NilValue, expected: `nil`},
		{name: `bool`, v: value.TrueValue, expected: `true`},
		{name: `integer`, v: value.Number(42), expected: `42`},
		{name: `negative zero`, v: value.Number(math.Copysign(0, -1)), expected: `0`},
		{name: `fraction`, v: value.Number(3.14), expected: `3.14`},
		{name: `large integer`, v: value.Number(1e21), expected: `1000000000000000000000`},
		{name: `nan`, v: value.Number(math.NaN()), expected: `NaN`},
		{name: `inf`, v: value.Number(math.Inf(1)), expected: `inf`},
		{name: `string raw`, v: value.String("hi"), expected: `hi`},
		{name: `list quotes strings`, v: value.List{value.Number(1), value.String("a")}, expected: `[1, "a"]`},
		{name: `empty list`, v: value.List{}, expected: `[]`},
		{
			name:     `record sorted`,
			v:        value.NewRecord(rec("b", value.String("x"), "a", value.Number(1))),
			expected: `{a: 1, b: "x"}`,
		},
		{name: `named record`, v: value.NewNamedRecord("P", rec("x", value.Number(1))), expected: `P{x: 1}`},
		{name: `color`, v: value.NewColor(1, 0.5, 0, 1), expected: `color(1, 0.5, 0, 1)`},
		{name: `ok`, v: value.Ok(value.String("v")), expected: `Ok(v)`},
		{name: `err`, v: value.Err(value.String("boom")), expected: `Err(boom)`},
		{name: `unit variant`, v: value.UnitVariant("Shape", "Dot"), expected: `Dot`},
		{name: `variant`, v: value.NewVariant("Shape", "Rect", value.Number(2), value.Number(3)), expected: `Rect(2, 3)`},
		{name: `named function`, v: value.NewFunction("add", nil), expected: `<function add>`},
		{name: `anonymous function`, v: value.NewFunction("", nil), expected: `<function>`},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.v.String())
		})
	}
}

func TestRecordIsImmutable(t *testing.T) {
	t.Parallel()

	fields := rec("a", value.Number(1))
	r := value.NewNamedRecord("T", fields)
	fields["a"] = value.Number(2)

	v, _ := r.Get("a")
	assert.Equal(t, value.Number(1), v)

	updated := r.With("b", value.TrueValue)
	assert.False(t, r.Has("b"))
	assert.True(t, updated.Has("b"))
	assert.Equal(t, "T", updated.TypeName())
	assert.Equal(t, []string{"a", "b"}, updated.Keys())

	copied := updated.Fields()
	copied["a"] = value.Number(3)
	v, _ = updated.Get("a")
	assert.Equal(t, value.Number(1), v)
}

func TestResult(t *testing.T) {
	t.Parallel()

	ok := value.Ok(nil)
	assert.True(t, ok.IsOk())
	assert.Equal(t, value.NilValue, ok.Inner())

	err := value.Err(value.String("e"))
	assert.True(t, err.IsErr())
	assert.False(t, err.IsOk())
}

func TestFunctionCall(t *testing.T) {
	t.Parallel()

	double := value.NewFunction("double", func(args []value.Value) (value.Value, error) {
		n, _ := value.AsNumber(args[0])
		return value.Number(n * 2), nil
	})

	got, err := double.Call([]value.Value{value.Number(21)})
	assert.NoError(t, err)
	assert.Equal(t, value.Number(42), got)
	assert.Equal(t, "double", double.Name())
}

func TestVariantIsImmutable(t *testing.T) {
	t.Parallel()

	fields := []value.Value{value.Number(1), value.Number(2)}
	v := value.NewVariant("Shape", "Rect", fields...)
	fields[0] = value.Number(99)

	assert.Equal(t, value.Number(1), v.Fields[0])
	assert.True(t, value.Equal(value.NewVariant("Shape", "Rect", value.Number(1), value.Number(2)), v))
}

func TestDisplayNil(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "nil", value.Display(nil))
	assert.Equal(t, "42", value.Display(value.Number(42)))
	assert.Equal(t, "Ok(nil)", value.Ok(nil).String())
}
