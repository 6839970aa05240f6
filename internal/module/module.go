package module

import (
	"github.com/leonardinius/pepl/internal/value"
)

// Module is implemented by every stdlib module, pure or capability.
type Module interface {
	// Name is the guest-visible module identifier, e.g. "math" or "http".
	Name() string

	// HasFunction reports whether Call knows the function.
	HasFunction(function string) bool

	// Call dispatches to the named function.
	//
	// It returns an UnknownFunction error when HasFunction is false and
	// WrongArgCount / TypeMismatch errors for invalid arguments. Otherwise a pure
	// module returns the computed value and a capability module returns a
	// CapabilityCall error carrying the arguments for the host.
	Call(function string, args []value.Value) (value.Value, error)
}
