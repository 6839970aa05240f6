package module

import (
	"github.com/leonardinius/pepl/internal/peplerrors"
	"github.com/leonardinius/pepl/internal/value"
)

// The Arg helpers read args[pos-1] and report a TypeMismatch at the 1-based
// position when it has the wrong kind. Callers check the arity first.

func StringArg(function string, args []value.Value, pos int) (string, error) {
	s, ok := value.AsString(args[pos-1])
	if !ok {
		return "", mismatch(function, args, pos, value.StringType)
	}
	return s, nil
}

func NumberArg(function string, args []value.Value, pos int) (float64, error) {
	n, ok := value.AsNumber(args[pos-1])
	if !ok {
		return 0, mismatch(function, args, pos, value.NumberType)
	}
	return n, nil
}

func BoolArg(function string, args []value.Value, pos int) (bool, error) {
	b, ok := value.AsBool(args[pos-1])
	if !ok {
		return false, mismatch(function, args, pos, value.BoolType)
	}
	return b, nil
}

func RecordArg(function string, args []value.Value, pos int) (value.Record, error) {
	r, ok := value.AsRecord(args[pos-1])
	if !ok {
		return value.Record{}, mismatch(function, args, pos, value.RecordType)
	}
	return r, nil
}

// OptionalStringArg reads an optional trailing string argument.
func OptionalStringArg(function string, args []value.Value, pos int) (string, bool, error) {
	if len(args) < pos {
		return "", false, nil
	}
	s, err := StringArg(function, args, pos)
	return s, err == nil, err
}

func mismatch(function string, args []value.Value, pos int, expected value.Type) error {
	return peplerrors.NewTypeMismatch(function, pos, expected.String(), value.TypeName(args[pos-1]))
}
