// Package jsoncodec converts between values and JSON text. It is the entry
// point for data coming back from the host, so parsing is depth-bounded.
package jsoncodec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/leonardinius/pepl/internal/value"
)

// MaxDepth is the deepest container nesting Parse accepts.
const MaxDepth = 32

// FunctionPlaceholder is written in place of values that cannot be serialized.
const FunctionPlaceholder = "<function>"

var (
	ErrSyntax        = errors.New("JSON parse error")
	ErrDepthExceeded = fmt.Errorf("JSON nesting exceeds maximum depth of %d", MaxDepth)
)

// Parse decodes JSON text. Arrays become lists and objects become anonymous
// records. Malformed input, trailing data and nesting deeper than MaxDepth
// are reported as errors.
func Parse(text string) (value.Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	v, err := parseValue(dec, 0)
	if err != nil {
		return nil, err
	}

	return v, expectEOF(dec)
}

// ParseValues decodes a comma-separated sequence of JSON values, such as a
// call's argument list. The sequence itself does not count towards MaxDepth.
func ParseValues(text string) ([]value.Value, error) {
	dec := json.NewDecoder(strings.NewReader("[" + text + "]"))
	dec.UseNumber()

	if _, err := dec.Token(); err != nil {
		return nil, syntaxError(err)
	}
	v, err := parseArray(dec, 0)
	if err != nil {
		return nil, err
	}
	if err := expectEOF(dec); err != nil {
		return nil, err
	}

	return v.(value.List), nil
}

func expectEOF(dec *json.Decoder) error {
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return syntaxError(err)
		}
		return fmt.Errorf("%w: unexpected %v after top-level value", ErrSyntax, tok)
	}
	return nil
}

func parseValue(dec *json.Decoder, depth int) (value.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, syntaxError(err)
	}

	switch tok := tok.(type) {
	case nil:
		return value.NilValue, nil
	case bool:
		return value.Bool(tok), nil
	case string:
		return value.String(tok), nil
	case json.Number:
		n, err := tok.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %s out of range", ErrSyntax, tok)
		}
		return value.Number(n), nil
	case json.Delim:
		switch tok {
		case '[':
			return parseArray(dec, depth+1)
		case '{':
			return parseObject(dec, depth+1)
		}
	}

	return nil, fmt.Errorf("%w: unexpected %v", ErrSyntax, tok)
}

func parseArray(dec *json.Decoder, depth int) (value.Value, error) {
	if depth > MaxDepth {
		return nil, ErrDepthExceeded
	}

	items := value.List{}
	for dec.More() {
		item, err := parseValue(dec, depth)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, closeContainer(dec)
}

func parseObject(dec *json.Decoder, depth int) (value.Value, error) {
	if depth > MaxDepth {
		return nil, ErrDepthExceeded
	}

	fields := make(map[string]value.Value)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, syntaxError(err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key must be a string, got %v", ErrSyntax, tok)
		}

		field, err := parseValue(dec, depth)
		if err != nil {
			return nil, err
		}
		fields[key] = field
	}

	if err := closeContainer(dec); err != nil {
		return nil, err
	}
	return value.NewRecord(fields), nil
}

func closeContainer(dec *json.Decoder) error {
	if _, err := dec.Token(); err != nil {
		return syntaxError(err)
	}
	return nil
}

func syntaxError(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected end of input", ErrSyntax)
	}
	return fmt.Errorf("%w: %v", ErrSyntax, err)
}

// Stringify encodes v as compact JSON. It never fails: colors become
// {"r","g","b","a"} objects, results {"ok": v} or {"err": v}, sum variants
// {"_type", "_variant", "_fields"}, functions a placeholder string and
// non-finite numbers null. Object keys are written in sorted order.
func Stringify(v value.Value) string {
	var buf bytes.Buffer
	writeValue(&buf, v)
	return buf.String()
}

func writeValue(buf *bytes.Buffer, v value.Value) {
	switch v := v.(type) {
	case nil, value.Nil:
		buf.WriteString("null")
	case value.Bool:
		if v {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case value.Number:
		writeNumber(buf, float64(v))
	case value.String:
		writeString(buf, string(v))
	case value.List:
		writeList(buf, v)
	case value.Record:
		writeObject(buf, v.Keys(), func(key string) value.Value {
			field, _ := v.Get(key)
			return field
		})
	case value.Color:
		components := map[string]value.Value{
			"r": value.Number(v.R),
			"g": value.Number(v.G),
			"b": value.Number(v.B),
			"a": value.Number(v.A),
		}
		writeMap(buf, components)
	case value.Result:
		key := "ok"
		if v.IsErr() {
			key = "err"
		}
		writeMap(buf, map[string]value.Value{key: v.Inner()})
	case value.Variant:
		obj := map[string]value.Value{
			"_type":    value.String(v.TypeName),
			"_variant": value.String(v.Name),
		}
		if len(v.Fields) > 0 {
			obj["_fields"] = value.List(v.Fields)
		}
		writeMap(buf, obj)
	default:
		writeString(buf, FunctionPlaceholder)
	}
}

func writeList(buf *bytes.Buffer, items []value.Value) {
	buf.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeValue(buf, item)
	}
	buf.WriteByte(']')
}

func writeMap(buf *bytes.Buffer, m map[string]value.Value) {
	writeObject(buf, value.SortedKeys(m), func(key string) value.Value {
		return m[key]
	})
}

func writeObject(buf *bytes.Buffer, keys []string, field func(string) value.Value) {
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeString(buf, key)
		buf.WriteByte(':')
		writeValue(buf, field(key))
	}
	buf.WriteByte('}')
}

func writeNumber(buf *bytes.Buffer, n float64) {
	// json.Marshal refuses NaN and Inf.
	out, err := json.Marshal(n)
	if err != nil {
		buf.WriteString("null")
		return
	}
	buf.Write(out)
}

func writeString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
}
