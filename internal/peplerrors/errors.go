package peplerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/pepl/internal/value"
)

var (
	ErrWrongArgCount   = errors.New("wrong argument count")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrAssertionFailed = errors.New("assertion failed")
	ErrUnknownFunction = errors.New("unknown function")
	ErrRuntime         = errors.New("runtime error")
	ErrCapabilityCall  = errors.New("capability call")
)

type WrongArgCountError struct {
	Function string
	Expected int
	Got      int
}

func NewWrongArgCount(function string, expected, got int) error {
	return &WrongArgCountError{Function: function, Expected: expected, Got: got}
}

// Error implements error.
func (e *WrongArgCountError) Error() string {
	return fmt.Sprintf("%s: expected %d argument(s), got %d", e.Function, e.Expected, e.Got)
}

func (e *WrongArgCountError) Unwrap() error {
	return ErrWrongArgCount
}

// TypeMismatchError reports an argument of the wrong kind. Position is 1-based.
type TypeMismatchError struct {
	Function string
	Position int
	Expected string
	Got      string
}

func NewTypeMismatch(function string, position int, expected, got string) error {
	return &TypeMismatchError{Function: function, Position: position, Expected: expected, Got: got}
}

// Error implements error.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: argument %d expected %s, got %s", e.Function, e.Position, e.Expected, e.Got)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

type AssertionFailedError struct {
	Message string
}

func NewAssertionFailed(message string) error {
	return &AssertionFailedError{Message: message}
}

// Error implements error.
func (e *AssertionFailedError) Error() string {
	return "Assertion failed: " + e.Message
}

func (e *AssertionFailedError) Unwrap() error {
	return ErrAssertionFailed
}

type UnknownFunctionError struct {
	Module   string
	Function string
}

func NewUnknownFunction(module, function string) error {
	return &UnknownFunctionError{Module: module, Function: function}
}

// Error implements error.
func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("Unknown function: %s.%s", e.Module, e.Function)
}

func (e *UnknownFunctionError) Unwrap() error {
	return ErrUnknownFunction
}

// RuntimeError covers domain failures found during evaluation, such as a
// result that would be NaN or an index out of range.
type RuntimeError struct {
	Message string
}

func NewRuntimeError(message string) error {
	return &RuntimeError{Message: message}
}

func NewRuntimeErrorf(format string, args ...any) error {
	return &RuntimeError{Message: fmt.Sprintf(format, args...)}
}

// Error implements error.
func (e *RuntimeError) Error() string {
	return e.Message
}

func (e *RuntimeError) Unwrap() error {
	return ErrRuntime
}

// CapabilityCall is not a failure. It is returned through the error channel
// to say that the call is valid but must be executed by the host using
// (CapID, FnID). Args is the caller's argument list, unmodified.
type CapabilityCall struct {
	Module   string
	Function string
	CapID    uint32
	FnID     uint32
	Args     []value.Value
}

func NewCapabilityCall(module, function string, capID, fnID uint32, args []value.Value) error {
	return &CapabilityCall{Module: module, Function: function, CapID: capID, FnID: fnID, Args: args}
}

// Error implements error.
func (c *CapabilityCall) Error() string {
	return fmt.Sprintf("%s.%s: capability call requires host (cap_id=%d, fn_id=%d)",
		c.Module, c.Function, c.CapID, c.FnID)
}

func (c *CapabilityCall) Unwrap() error {
	return ErrCapabilityCall
}

// AsCapabilityCall extracts the delegation payload from err, if any.
func AsCapabilityCall(err error) (*CapabilityCall, bool) {
	var call *CapabilityCall
	if errors.As(err, &call) {
		return call, true
	}
	return nil, false
}

// IsDelegation reports whether err asks the caller to forward the call to the host.
func IsDelegation(err error) bool {
	return errors.Is(err, ErrCapabilityCall)
}

var (
	_ error           = (*WrongArgCountError)(nil)
	_ unwrapInterface = (*WrongArgCountError)(nil)
	_ error           = (*TypeMismatchError)(nil)
	_ unwrapInterface = (*TypeMismatchError)(nil)
	_ error           = (*AssertionFailedError)(nil)
	_ unwrapInterface = (*AssertionFailedError)(nil)
	_ error           = (*UnknownFunctionError)(nil)
	_ unwrapInterface = (*UnknownFunctionError)(nil)
	_ error           = (*RuntimeError)(nil)
	_ unwrapInterface = (*RuntimeError)(nil)
	_ error           = (*CapabilityCall)(nil)
	_ unwrapInterface = (*CapabilityCall)(nil)
)
