package module

import (
	"fmt"

	"github.com/leonardinius/pepl/internal/peplerrors"
	"github.com/leonardinius/pepl/internal/value"
)

// Func implements one module function. The argument count has already been
// checked against the declared Arity.
type Func func(args []value.Value) (value.Value, error)

type Function struct {
	Arity Arity
	Fn    Func
}

// Table is a Module backed by a static function table.
type Table struct {
	name      string
	functions map[string]Function
}

func NewTable(name string, functions map[string]Function) *Table {
	return &Table{name: name, functions: functions}
}

// Name implements Module.
func (t *Table) Name() string {
	return t.name
}

// HasFunction implements Module.
func (t *Table) HasFunction(function string) bool {
	_, ok := t.functions[function]
	return ok
}

// Call implements Module.
func (t *Table) Call(function string, args []value.Value) (value.Value, error) {
	f, ok := t.functions[function]
	if !ok {
		return nil, peplerrors.NewUnknownFunction(t.name, function)
	}
	if !f.Arity.Accepts(len(args)) {
		return nil, peplerrors.NewWrongArgCount(t.Qualify(function), f.Arity.Min, len(args))
	}
	return f.Fn(args)
}

// Functions returns the function names in sorted order.
func (t *Table) Functions() []string {
	return value.SortedKeys(t.functions)
}

// Qualify returns the "module.function" name used in error messages.
func (t *Table) Qualify(function string) string {
	return t.name + "." + function
}

// String implements fmt.Stringer.
func (t *Table) String() string {
	return fmt.Sprintf("<module:%s/%d>", t.name, len(t.functions))
}

var (
	_ Module       = (*Table)(nil)
	_ fmt.Stringer = (*Table)(nil)
)
