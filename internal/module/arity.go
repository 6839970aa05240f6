package module

import (
	"strconv"
)

// VarArgs as Arity.Max means no upper bound.
const VarArgs = -1

type Arity struct {
	Min int
	Max int
}

func Exactly(n int) Arity {
	return Arity{Min: n, Max: n}
}

func Between(lo, hi int) Arity {
	return Arity{Min: lo, Max: hi}
}

func AtLeast(n int) Arity {
	return Arity{Min: n, Max: VarArgs}
}

func (a Arity) IsVarArgs() bool {
	return a.Max == VarArgs
}

func (a Arity) Accepts(n int) bool {
	return n >= a.Min && (a.IsVarArgs() || n <= a.Max)
}

func (a Arity) String() string {
	switch {
	case a.IsVarArgs():
		return strconv.Itoa(a.Min) + "+"
	case a.Min == a.Max:
		return strconv.Itoa(a.Min)
	}
	return strconv.Itoa(a.Min) + ".." + strconv.Itoa(a.Max)
}
