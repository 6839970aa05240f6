package stdlib

import (
	"math"

	"github.com/leonardinius/pepl/internal/module"
	"github.com/leonardinius/pepl/internal/peplerrors"
	"github.com/leonardinius/pepl/internal/value"
)

// NewMath builds the math module. PI and E are exposed as zero-argument calls.
func NewMath() module.Module {
	return module.NewTable("math", map[string]module.Function{
		"abs":      unary("math.abs", math.Abs),
		"floor":    unary("math.floor", math.Floor),
		"ceil":     unary("math.ceil", math.Ceil),
		"round":    unary("math.round", roundHalfUp),
		"min":      {Arity: module.Exactly(2), Fn: pick("math.min", -1)},
		"max":      {Arity: module.Exactly(2), Fn: pick("math.max", 1)},
		"pow":      binary("math.pow", math.Pow),
		"round_to": {Arity: module.Exactly(2), Fn: roundTo},
		"clamp":    {Arity: module.Exactly(3), Fn: clamp},
		"sqrt":     {Arity: module.Exactly(1), Fn: sqrt},
		"PI":       constant(math.Pi),
		"E":        constant(math.E),
	})
}

func unary(name string, fn func(float64) float64) module.Function {
	return module.Function{Arity: module.Exactly(1), Fn: func(args []value.Value) (value.Value, error) {
		a, err := module.NumberArg(name, args, 1)
		if err != nil {
			return nil, err
		}
		return finite(name, fn(a))
	}}
}

func binary(name string, fn func(float64, float64) float64) module.Function {
	return module.Function{Arity: module.Exactly(2), Fn: func(args []value.Value) (value.Value, error) {
		a, b, err := twoNumbers(name, args)
		if err != nil {
			return nil, err
		}
		return finite(name, fn(a, b))
	}}
}

// pick returns the argument that orders first (want -1) or last (want 1).
func pick(name string, want int) module.Func {
	return func(args []value.Value) (value.Value, error) {
		if _, _, err := twoNumbers(name, args); err != nil {
			return nil, err
		}
		c, ok := value.Compare(args[0], args[1])
		if !ok {
			return nil, peplerrors.NewRuntimeErrorf("%s: arguments are not ordered", name)
		}
		if c == want || c == 0 {
			return args[0], nil
		}
		return args[1], nil
	}
}

func constant(n float64) module.Function {
	return module.Function{Arity: module.Exactly(0), Fn: func([]value.Value) (value.Value, error) {
		return value.Number(n), nil
	}}
}

func twoNumbers(name string, args []value.Value) (float64, float64, error) {
	a, err := module.NumberArg(name, args, 1)
	if err != nil {
		return 0, 0, err
	}
	b, err := module.NumberArg(name, args, 2)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// finite traps results that must not enter the value model.
func finite(name string, n float64) (value.Value, error) {
	switch {
	case math.IsNaN(n):
		return nil, peplerrors.NewRuntimeErrorf("%s: operation would produce NaN", name)
	case math.IsInf(n, 0):
		return nil, peplerrors.NewRuntimeErrorf("%s: operation would produce infinity", name)
	}
	return value.Number(n), nil
}

// 0.5 rounds up: 2.5 -> 3, -0.5 -> 0, -1.5 -> -1.
func roundHalfUp(a float64) float64 {
	return math.Floor(a + 0.5)
}

func roundTo(args []value.Value) (value.Value, error) {
	a, decimals, err := twoNumbers("math.round_to", args)
	if err != nil {
		return nil, err
	}
	if decimals < 0 || decimals != math.Trunc(decimals) {
		return nil, peplerrors.NewRuntimeError("math.round_to: decimals must be a non-negative integer")
	}

	factor := math.Pow(10, decimals)
	return finite("math.round_to", roundHalfUp(a*factor)/factor)
}

func clamp(args []value.Value) (value.Value, error) {
	v, lo, err := twoNumbers("math.clamp", args)
	if err != nil {
		return nil, err
	}
	hi, err := module.NumberArg("math.clamp", args, 3)
	if err != nil {
		return nil, err
	}
	if lo > hi {
		return nil, peplerrors.NewRuntimeError("math.clamp: min must be <= max")
	}
	return value.Number(math.Max(lo, math.Min(v, hi))), nil
}

func sqrt(args []value.Value) (value.Value, error) {
	a, err := module.NumberArg("math.sqrt", args, 1)
	if err != nil {
		return nil, err
	}
	if a < 0 {
		return nil, peplerrors.NewRuntimeError("math.sqrt: cannot take square root of negative number")
	}
	return value.Number(math.Sqrt(a)), nil
}
