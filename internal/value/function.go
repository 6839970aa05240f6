package value

// Fn is the host or evaluator side of a Function value.
type Fn func(args []Value) (Value, error)

type function struct {
	name string
	fn   Fn
}

// Function is an opaque callable. It is only ever equal to itself.
type Function struct {
	*function
}

func NewFunction(name string, fn Fn) Function {
	return Function{&function{name: name, fn: fn}}
}

// Type implements Value.
func (Function) Type() Type {
	return FunctionType
}

func (f Function) Name() string {
	if f.function == nil {
		return ""
	}
	return f.name
}

func (f Function) Call(args []Value) (Value, error) {
	if f.function == nil || f.fn == nil {
		return NilValue, nil
	}
	return f.fn(args)
}
