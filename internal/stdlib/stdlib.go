// Package stdlib contains the standard modules: the pure core, math,
// convert, record and json modules, and the host-delegated http, storage,
// location and notifications modules.
package stdlib

import (
	"github.com/leonardinius/pepl/internal/module"
)

// Modules builds every standard module.
func Modules(options ...Option) []module.Module {
	return buildModules(newStdlibOpts(options...))
}

// NewRouter builds a router over the standard modules.
func NewRouter(options ...Option) *module.Router {
	opts := newStdlibOpts(options...)
	return module.NewRouter(buildModules(opts), module.WithRouterLogger(opts.logger))
}

func buildModules(opts *stdlibOpts) []module.Module {
	modules := []module.Module{
		NewCore(opts.logger, opts.capabilities),
		NewMath(),
		NewConvert(),
		NewRecord(),
		NewJSON(),
		NewHTTP(),
		NewStorage(),
		NewLocation(),
		NewNotifications(),
	}

	return append(modules, opts.extra...)
}
