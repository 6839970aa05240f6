package stdlib

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/leonardinius/pepl/internal/module"
)

type stdlibOpts struct {
	logger       logrus.FieldLogger
	capabilities map[string]bool
	extra        []module.Module
}

type Option func(*stdlibOpts)

// WithLogger sets the sink for core.log and router diagnostics.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(opts *stdlibOpts) {
		opts.logger = logger
	}
}

// WithCapabilities lists the optional capabilities core.capability reports
// as available.
func WithCapabilities(names ...string) Option {
	return func(opts *stdlibOpts) {
		for _, name := range names {
			opts.capabilities[name] = true
		}
	}
}

// WithModules registers additional modules next to the standard ones.
func WithModules(modules ...module.Module) Option {
	return func(opts *stdlibOpts) {
		opts.extra = append(opts.extra, modules...)
	}
}

func newStdlibOpts(options ...Option) *stdlibOpts {
	opts := &stdlibOpts{capabilities: make(map[string]bool)}
	for _, opt := range options {
		opt(opts)
	}

	if opts.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.logger = l
	}

	return opts
}
