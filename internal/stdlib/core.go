package stdlib

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"

	"github.com/leonardinius/pepl/internal/module"
	"github.com/leonardinius/pepl/internal/peplerrors"
	"github.com/leonardinius/pepl/internal/value"
)

type core struct {
	*module.Table
	log          logrus.FieldLogger
	capabilities map[string]bool
}

// NewCore builds the core module: log, assert, type_of and capability.
func NewCore(log logrus.FieldLogger, capabilities map[string]bool) module.Module {
	c := &core{log: log, capabilities: maps.Clone(capabilities)}
	c.Table = module.NewTable("core", map[string]module.Function{
		"log":        {Arity: module.Exactly(1), Fn: c.logValue},
		"assert":     {Arity: module.Between(1, 2), Fn: c.assert},
		"type_of":    {Arity: module.Exactly(1), Fn: c.typeOf},
		"capability": {Arity: module.Exactly(1), Fn: c.capability},
	})
	return c
}

func (c *core) logValue(args []value.Value) (value.Value, error) {
	c.log.WithFields(logrus.Fields{
		"module": "core",
		"type":   value.TypeName(args[0]),
	}).Debug(value.Display(args[0]))
	return value.NilValue, nil
}

func (c *core) assert(args []value.Value) (value.Value, error) {
	cond, err := module.BoolArg("core.assert", args, 1)
	if err != nil {
		return nil, err
	}
	message, ok, err := module.OptionalStringArg("core.assert", args, 2)
	if err != nil {
		return nil, err
	}

	if !cond {
		if !ok {
			message = "assertion failed"
		}
		return nil, peplerrors.NewAssertionFailed(message)
	}
	return value.NilValue, nil
}

func (c *core) typeOf(args []value.Value) (value.Value, error) {
	return value.String(value.TypeName(args[0])), nil
}

func (c *core) capability(args []value.Value) (value.Value, error) {
	name, err := module.StringArg("core.capability", args, 1)
	if err != nil {
		return nil, err
	}
	return value.Bool(c.capabilities[name]), nil
}
