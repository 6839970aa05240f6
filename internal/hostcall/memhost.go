package hostcall

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/leonardinius/pepl/internal/capability"
	"github.com/leonardinius/pepl/internal/value"
)

// Notification is a message accepted by MemoryHost's notifications.send.
type Notification struct {
	Title string
	Body  string
}

// MemoryHost serves capability requests in-process. Storage lives in a map,
// location is fixed, notifications are recorded and http is refused.
// Every request and response is round-tripped through its JSON envelope.
type MemoryHost struct {
	mu       sync.Mutex
	store    map[string]string
	sent     []Notification
	lat, lon float64
}

func NewMemoryHost() *MemoryHost {
	return &MemoryHost{store: make(map[string]string)}
}

// SetLocation changes the coordinates returned by location.current.
func (h *MemoryHost) SetLocation(lat, lon float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lat, h.lon = lat, lon
}

// Notifications returns the messages sent so far.
func (h *MemoryHost) Notifications() []Notification {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Notification(nil), h.sent...)
}

// Dispatch implements Host.
func (h *MemoryHost) Dispatch(ctx context.Context, req Request) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}

	data, err := json.Marshal(req)
	if err != nil {
		return Response{}, err
	}
	decoded, err := DecodeRequest(data)
	if err != nil {
		return Response{}, err
	}

	mod, fn, ok := capability.Lookup(decoded.CapID, decoded.FnID)
	if !ok {
		return Response{}, fmt.Errorf("%w: unknown capability %d/%d", ErrMalformedRequest, decoded.CapID, decoded.FnID)
	}

	resp := Response{ID: decoded.ID, Result: h.serve(mod, fn, decoded.Args)}
	data, err = json.Marshal(resp)
	if err != nil {
		return Response{}, err
	}
	return DecodeResponse(data)
}

func (h *MemoryHost) serve(mod, fn string, args []value.Value) value.Result {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch mod {
	case "storage":
		return h.storage(fn, args)
	case "location":
		return value.Ok(value.NewRecord(map[string]value.Value{
			"lat": value.Number(h.lat),
			"lon": value.Number(h.lon),
		}))
	case "notifications":
		h.sent = append(h.sent, Notification{Title: stringAt(args, 0), Body: stringAt(args, 1)})
		return value.Ok(value.NilValue)
	case "http":
		return value.Err(value.String("http disabled"))
	}
	return value.Err(value.String("unsupported capability " + mod))
}

func (h *MemoryHost) storage(fn string, args []value.Value) value.Result {
	switch fn {
	case "get":
		v, ok := h.store[stringAt(args, 0)]
		if !ok {
			return value.Err(value.String("not found"))
		}
		return value.Ok(value.String(v))
	case "set":
		h.store[stringAt(args, 0)] = stringAt(args, 1)
		return value.Ok(value.NilValue)
	case "delete":
		delete(h.store, stringAt(args, 0))
		return value.Ok(value.NilValue)
	case "keys":
		keys := value.SortedKeys(h.store)
		list := make(value.List, len(keys))
		for i, k := range keys {
			list[i] = value.String(k)
		}
		return value.Ok(list)
	}
	return value.Err(value.String("unsupported storage function " + fn))
}

func stringAt(args []value.Value, i int) string {
	if i >= len(args) {
		return ""
	}
	s, _ := value.AsString(args[i])
	return s
}

var _ Host = (*MemoryHost)(nil)
