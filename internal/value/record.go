package value

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Record is a set of named fields with an optional declared type name.
// Fields are always visited in lexicographic key order.
type Record struct {
	typeName string
	fields   map[string]Value
}

// NewRecord creates an anonymous record. The map is copied.
func NewRecord(fields map[string]Value) Record {
	return Record{fields: maps.Clone(fields)}
}

// NewNamedRecord creates a record declared with a type name, e.g. `type Todo = {...}`.
func NewNamedRecord(typeName string, fields map[string]Value) Record {
	return Record{typeName: typeName, fields: maps.Clone(fields)}
}

// Type implements Value.
func (Record) Type() Type {
	return RecordType
}

func (r Record) TypeName() string {
	return r.typeName
}

func (r Record) Len() int {
	return len(r.fields)
}

func (r Record) Get(key string) (Value, bool) {
	v, ok := r.fields[key]
	return v, ok
}

func (r Record) Has(key string) bool {
	_, ok := r.fields[key]
	return ok
}

// Keys returns the field names in lexicographic order.
func (r Record) Keys() []string {
	return SortedKeys(r.fields)
}

// Values returns the field values in key order.
func (r Record) Values() []Value {
	values := make([]Value, 0, len(r.fields))
	for _, k := range r.Keys() {
		values = append(values, r.fields[k])
	}
	return values
}

// Each calls fn for every field in key order until fn returns false.
func (r Record) Each(fn func(key string, v Value) bool) {
	for _, k := range r.Keys() {
		if !fn(k, r.fields[k]) {
			return
		}
	}
}

// Fields returns a copy of the field map.
func (r Record) Fields() map[string]Value {
	return maps.Clone(r.fields)
}

// With returns a new record with key set to v. The type name is preserved.
func (r Record) With(key string, v Value) Record {
	fields := make(map[string]Value, len(r.fields)+1)
	maps.Copy(fields, r.fields)
	fields[key] = v
	return Record{typeName: r.typeName, fields: fields}
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
