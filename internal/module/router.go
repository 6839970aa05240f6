package module

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/leonardinius/pepl/internal/capability"
	"github.com/leonardinius/pepl/internal/peplerrors"
	"github.com/leonardinius/pepl/internal/value"
)

// Router looks modules up by name. It is built once and read-only afterwards.
type Router struct {
	modules map[string]Module
	log     logrus.FieldLogger
}

type RouterOption func(*Router)

func WithRouterLogger(log logrus.FieldLogger) RouterOption {
	return func(r *Router) {
		r.log = log
	}
}

// NewRouter panics when two modules share a name.
func NewRouter(modules []Module, options ...RouterOption) *Router {
	r := &Router{modules: make(map[string]Module, len(modules))}
	for _, m := range modules {
		if _, dup := r.modules[m.Name()]; dup {
			panic("module: duplicate module " + m.Name())
		}
		r.modules[m.Name()] = m
	}

	for _, opt := range options {
		opt(r)
	}
	if r.log == nil {
		r.log = discardLogger()
	}

	return r
}

func (r *Router) Module(name string) (Module, bool) {
	m, ok := r.modules[name]
	return m, ok
}

// Names returns the registered module names in sorted order.
func (r *Router) Names() []string {
	return value.SortedKeys(r.modules)
}

// Call dispatches module.function(args). Unknown modules are reported as
// UnknownFunction. Capability modules answer with a CapabilityCall error.
func (r *Router) Call(module, function string, args []value.Value) (value.Value, error) {
	log := r.log.WithFields(logrus.Fields{"module": module, "function": function, "args": len(args)})

	m, ok := r.modules[module]
	if !ok {
		log.Debug("unknown module")
		return nil, peplerrors.NewUnknownFunction(module, function)
	}

	v, err := m.Call(function, args)
	if call, ok := peplerrors.AsCapabilityCall(err); ok {
		log.WithFields(logrus.Fields{"cap_id": call.CapID, "fn_id": call.FnID}).Debug("delegating to host")
		return nil, err
	}
	if err != nil {
		log.WithError(err).Debug("call failed")
		return nil, err
	}

	log.Debug("call")
	return v, nil
}

// IsCapability reports whether calls to the module are delegated to the host.
func (r *Router) IsCapability(module string) bool {
	_, ok := r.modules[module]
	return ok && capability.IsCapabilityModule(module)
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
