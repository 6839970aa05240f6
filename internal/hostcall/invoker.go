package hostcall

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/leonardinius/pepl/internal/module"
	"github.com/leonardinius/pepl/internal/peplerrors"
	"github.com/leonardinius/pepl/internal/value"
)

// Host performs capability effects on behalf of the guest.
type Host interface {
	Dispatch(ctx context.Context, req Request) (Response, error)
}

type HostFunc func(ctx context.Context, req Request) (Response, error)

// Dispatch implements Host.
func (f HostFunc) Dispatch(ctx context.Context, req Request) (Response, error) {
	return f(ctx, req)
}

type invokerOpts struct {
	newID func() string
	log   logrus.FieldLogger
}

type Option func(*invokerOpts)

// WithIDGenerator replaces uuid.NewString as the request id source.
func WithIDGenerator(newID func() string) Option {
	return func(opts *invokerOpts) {
		opts.newID = newID
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(opts *invokerOpts) {
		opts.log = log
	}
}

// Invoker resolves the three possible outcomes of a module call: a computed
// value, a failure, or a delegation that is forwarded to the Host.
type Invoker struct {
	router *module.Router
	host   Host
	opts   invokerOpts
}

func NewInvoker(router *module.Router, host Host, options ...Option) *Invoker {
	opts := invokerOpts{newID: uuid.NewString}
	for _, opt := range options {
		opt(&opts)
	}
	if opts.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.log = l
	}

	return &Invoker{router: router, host: host, opts: opts}
}

// Invoke calls module.function(args). Delegated calls return the host's Ok
// or Err result value.
func (i *Invoker) Invoke(ctx context.Context, mod, fn string, args []value.Value) (value.Value, error) {
	v, err := i.router.Call(mod, fn, args)
	call, ok := peplerrors.AsCapabilityCall(err)
	if !ok {
		return v, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := NewRequest(i.opts.newID(), call)
	log := i.opts.log.WithFields(logrus.Fields{
		"id":     req.ID,
		"cap_id": req.CapID,
		"fn_id":  req.FnID,
	})
	log.Debug("host request")

	resp, err := i.host.Dispatch(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: host dispatch: %w", call.Module, call.Function, err)
	}
	if resp.ID != req.ID {
		return nil, fmt.Errorf("%w: sent %s, got %s", ErrResponseMismatch, req.ID, resp.ID)
	}

	log.WithField("ok", resp.Result.IsOk()).Debug("host response")
	return resp.Result, nil
}
