package hostcall

import (
	"fmt"

	"github.com/leonardinius/pepl/internal/jsoncodec"
	"github.com/leonardinius/pepl/internal/value"
)

// Response is the host's answer to a Request. Result is always an Ok or Err
// result value.
type Response struct {
	ID     string
	Result value.Result
}

// MarshalJSON implements json.Marshaler.
func (r Response) MarshalJSON() ([]byte, error) {
	key := "ok"
	if r.Result.IsErr() {
		key = "err"
	}
	obj := value.NewRecord(map[string]value.Value{
		"id": value.String(r.ID),
		key:  r.Result.Inner(),
	})
	return []byte(jsoncodec.Stringify(obj)), nil
}

// DecodeResponse parses {"id": ..., "ok": ...} or {"id": ..., "err": ...}.
// The payload comes from outside the sandbox, so it goes through the
// depth-bounded parser.
func DecodeResponse(data []byte) (Response, error) {
	v, err := jsoncodec.Parse(string(data))
	if err != nil {
		return Response{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	obj, ok := value.AsRecord(v)
	if !ok {
		return Response{}, fmt.Errorf("%w: expected object, got %s", ErrMalformedResponse, value.TypeName(v))
	}

	fields := envelopeReader{obj: obj, kind: ErrMalformedResponse}
	resp := Response{ID: fields.stringField("id")}
	if fields.err != nil {
		return Response{}, fields.err
	}

	okValue, hasOk := obj.Get("ok")
	errValue, hasErr := obj.Get("err")
	switch {
	case hasOk && hasErr:
		return Response{}, fmt.Errorf("%w: both \"ok\" and \"err\" present", ErrMalformedResponse)
	case hasOk:
		resp.Result = value.Ok(okValue)
	case hasErr:
		resp.Result = value.Err(errValue)
	default:
		return Response{}, fmt.Errorf("%w: missing \"ok\" or \"err\"", ErrMalformedResponse)
	}

	return resp, nil
}
