package value

// Result wraps exactly one Ok or Err value.
type Result struct {
	err   bool
	inner Value
}

func Ok(v Value) Result {
	return Result{inner: orNil(v)}
}

func Err(v Value) Result {
	return Result{err: true, inner: orNil(v)}
}

// Type implements Value.
func (Result) Type() Type {
	return ResultType
}

func (r Result) IsOk() bool {
	return !r.err
}

func (r Result) IsErr() bool {
	return r.err
}

// Inner returns the wrapped value regardless of variant.
func (r Result) Inner() Value {
	return orNil(r.inner)
}

func orNil(v Value) Value {
	if v == nil {
		return NilValue
	}
	return v
}
