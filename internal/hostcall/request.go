// Package hostcall carries capability calls across the guest/host boundary.
// A CapabilityCall becomes a Request envelope, the host answers with a
// Response, and both travel as JSON text produced by jsoncodec.
package hostcall

import (
	"errors"
	"fmt"
	"math"

	"github.com/leonardinius/pepl/internal/jsoncodec"
	"github.com/leonardinius/pepl/internal/peplerrors"
	"github.com/leonardinius/pepl/internal/value"
)

var (
	ErrMalformedRequest  = errors.New("malformed host request")
	ErrMalformedResponse = errors.New("malformed host response")
	ErrResponseMismatch  = errors.New("host response does not match request")
)

type Request struct {
	ID       string
	Module   string
	Function string
	CapID    uint32
	FnID     uint32
	Args     []value.Value
}

func NewRequest(id string, call *peplerrors.CapabilityCall) Request {
	return Request{
		ID:       id,
		Module:   call.Module,
		Function: call.Function,
		CapID:    call.CapID,
		FnID:     call.FnID,
		Args:     call.Args,
	}
}

func (r Request) record() value.Record {
	return value.NewRecord(map[string]value.Value{
		"id":       value.String(r.ID),
		"module":   value.String(r.Module),
		"function": value.String(r.Function),
		"cap_id":   value.Number(r.CapID),
		"fn_id":    value.Number(r.FnID),
		"args":     value.List(r.Args),
	})
}

// MarshalJSON implements json.Marshaler.
func (r Request) MarshalJSON() ([]byte, error) {
	return []byte(jsoncodec.Stringify(r.record())), nil
}

// DecodeRequest parses a request envelope. Argument values lose declared
// record names on the way, like every other JSON round trip.
func DecodeRequest(data []byte) (Request, error) {
	v, err := jsoncodec.Parse(string(data))
	if err != nil {
		return Request{}, fmt.Errorf("%w: %w", ErrMalformedRequest, err)
	}
	obj, ok := value.AsRecord(v)
	if !ok {
		return Request{}, fmt.Errorf("%w: expected object, got %s", ErrMalformedRequest, value.TypeName(v))
	}

	var req Request
	fields := envelopeReader{obj: obj, kind: ErrMalformedRequest}
	req.ID = fields.stringField("id")
	req.Module = fields.stringField("module")
	req.Function = fields.stringField("function")
	req.CapID = fields.idField("cap_id")
	req.FnID = fields.idField("fn_id")
	req.Args = fields.listField("args")

	return req, fields.err
}

// envelopeReader collects the first field error while reading an envelope.
type envelopeReader struct {
	obj  value.Record
	kind error
	err  error
}

func (e *envelopeReader) field(key string, want value.Type) value.Value {
	if e.err != nil {
		return nil
	}
	v, ok := e.obj.Get(key)
	if !ok {
		e.err = fmt.Errorf("%w: missing %q", e.kind, key)
		return nil
	}
	if v.Type() != want {
		e.err = fmt.Errorf("%w: %q must be %s, got %s", e.kind, key, want, value.TypeName(v))
		return nil
	}
	return v
}

func (e *envelopeReader) stringField(key string) string {
	s, _ := value.AsString(e.field(key, value.StringType))
	return s
}

func (e *envelopeReader) idField(key string) uint32 {
	n, ok := value.AsNumber(e.field(key, value.NumberType))
	if !ok {
		return 0
	}
	if n < 0 || n > math.MaxUint32 || n != math.Trunc(n) {
		e.err = fmt.Errorf("%w: %q is not a valid id: %v", e.kind, key, n)
		return 0
	}
	return uint32(n)
}

func (e *envelopeReader) listField(key string) []value.Value {
	l, _ := value.AsList(e.field(key, value.ListType))
	return l
}
