package stdlib

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/leonardinius/pepl/internal/module"
	"github.com/leonardinius/pepl/internal/value"
)

// NewConvert builds the convert module. Fallible conversions answer with an
// Ok/Err result value instead of an error.
func NewConvert() module.Module {
	return module.NewTable("convert", map[string]module.Function{
		"to_string":   {Arity: module.Exactly(1), Fn: toString},
		"to_number":   {Arity: module.Exactly(1), Fn: toNumber},
		"parse_int":   {Arity: module.Exactly(1), Fn: parseInt},
		"parse_float": {Arity: module.Exactly(1), Fn: parseFloat},
		"to_bool":     {Arity: module.Exactly(1), Fn: toBool},
	})
}

func toString(args []value.Value) (value.Value, error) {
	return value.String(value.Display(args[0])), nil
}

func toNumber(args []value.Value) (value.Value, error) {
	switch v := args[0].(type) {
	case value.Number:
		return value.Ok(v), nil
	case value.Bool:
		if v {
			return value.Ok(value.Number(1)), nil
		}
		return value.Ok(value.Number(0)), nil
	case value.String:
		if n, ok := parseFinite(string(v)); ok {
			return value.Ok(value.Number(n)), nil
		}
		return value.Err(value.String(fmt.Sprintf("cannot convert '%s' to number", v))), nil
	}
	return value.Err(value.String(fmt.Sprintf("cannot convert %s to number", value.TypeName(args[0])))), nil
}

func parseInt(args []value.Value) (value.Value, error) {
	s, err := module.StringArg("convert.parse_int", args, 1)
	if err != nil {
		return nil, err
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return value.Err(value.String(fmt.Sprintf("cannot parse '%s' as integer", s))), nil
	}
	return value.Ok(value.Number(n)), nil
}

func parseFloat(args []value.Value) (value.Value, error) {
	s, err := module.StringArg("convert.parse_float", args, 1)
	if err != nil {
		return nil, err
	}
	n, ok := parseFinite(s)
	if !ok {
		return value.Err(value.String(fmt.Sprintf("cannot parse '%s' as float", s))), nil
	}
	return value.Ok(value.Number(n)), nil
}

func toBool(args []value.Value) (value.Value, error) {
	return value.Bool(value.Truthy(args[0])), nil
}

// "NaN" and "inf" parse in Go but must not become numbers.
func parseFinite(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
