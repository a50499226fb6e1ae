package sqlb

import (
	"bytes"
	"encoding/json"
)

// Optional is a partial-update field that tells an absent JSON key apart
// from an explicit null. Set is true once the key was present; Value is nil
// when that key was null.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some is a field set to v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null is a field explicitly cleared.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON only runs for keys present in the document, null included.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// Underlying returns the wrapped value, or nil when the field is absent or
// null. The validator checks struct tags against it.
func (o Optional[T]) Underlying() any {
	if o.Value == nil {
		return nil
	}
	return *o.Value
}

// Assign appends field to out when it was set. A null becomes a nil value,
// which binds as SQL NULL.
func (o Optional[T]) Assign(out []Assignment, field string) []Assignment {
	if !o.Set {
		return out
	}
	return append(out, Assignment{Field: field, Value: o.Underlying()})
}
