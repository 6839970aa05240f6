package stdlib

import (
	"github.com/leonardinius/pepl/internal/capability"
	"github.com/leonardinius/pepl/internal/module"
	"github.com/leonardinius/pepl/internal/peplerrors"
	"github.com/leonardinius/pepl/internal/value"
)

// delegated builds a capability function. After the arity check and the
// string checks at the given 1-based positions it always answers with a
// CapabilityCall carrying args unchanged.
func delegated(mod, fn string, arity module.Arity, stringArgs ...int) module.Function {
	capID, fnID, ok := capability.ResolveIDs(mod, fn)
	if !ok {
		panic("stdlib: no capability id for " + mod + "." + fn)
	}
	qualified := mod + "." + fn

	return module.Function{Arity: arity, Fn: func(args []value.Value) (value.Value, error) {
		for _, pos := range stringArgs {
			if _, err := module.StringArg(qualified, args, pos); err != nil {
				return nil, err
			}
		}
		return nil, peplerrors.NewCapabilityCall(mod, fn, capID, fnID, args)
	}}
}
