package stdlib

import (
	"github.com/leonardinius/pepl/internal/module"
	"github.com/leonardinius/pepl/internal/value"
)

// NewRecord builds the record module. Keys and values come back in key order.
func NewRecord() module.Module {
	return module.NewTable("record", map[string]module.Function{
		"get":    {Arity: module.Exactly(2), Fn: recordGet},
		"set":    {Arity: module.Exactly(3), Fn: recordSet},
		"has":    {Arity: module.Exactly(2), Fn: recordHas},
		"keys":   {Arity: module.Exactly(1), Fn: recordKeys},
		"values": {Arity: module.Exactly(1), Fn: recordValues},
	})
}

func recordAndKey(name string, args []value.Value) (value.Record, string, error) {
	r, err := module.RecordArg(name, args, 1)
	if err != nil {
		return value.Record{}, "", err
	}
	key, err := module.StringArg(name, args, 2)
	if err != nil {
		return value.Record{}, "", err
	}
	return r, key, nil
}

func recordGet(args []value.Value) (value.Value, error) {
	r, key, err := recordAndKey("record.get", args)
	if err != nil {
		return nil, err
	}
	if v, ok := r.Get(key); ok {
		return v, nil
	}
	return value.NilValue, nil
}

func recordSet(args []value.Value) (value.Value, error) {
	r, key, err := recordAndKey("record.set", args)
	if err != nil {
		return nil, err
	}
	return r.With(key, args[2]), nil
}

func recordHas(args []value.Value) (value.Value, error) {
	r, key, err := recordAndKey("record.has", args)
	if err != nil {
		return nil, err
	}
	return value.Bool(r.Has(key)), nil
}

func recordKeys(args []value.Value) (value.Value, error) {
	r, err := module.RecordArg("record.keys", args, 1)
	if err != nil {
		return nil, err
	}
	keys := make(value.List, 0, r.Len())
	for _, k := range r.Keys() {
		keys = append(keys, value.String(k))
	}
	return keys, nil
}

func recordValues(args []value.Value) (value.Value, error) {
	r, err := module.RecordArg("record.values", args, 1)
	if err != nil {
		return nil, err
	}
	return value.List(r.Values()), nil
}
