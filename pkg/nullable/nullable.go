// Package nullable distinguishes a JSON field that was omitted from one sent as null.
package nullable

import (
	"bytes"
	"encoding/json"
)

// Value records whether a field was present in the payload and, if so, its value.
// A present null leaves Ptr nil with Set true.
type Value[T any] struct {
	Set bool
	Ptr *T
}

// Of returns a present, non-null value
func Of[T any](v T) Value[T] {
	return Value[T]{Set: true, Ptr: &v}
}

// Null returns a present null value
func Null[T any]() Value[T] {
	return Value[T]{Set: true}
}

// IsNull reports whether the field was sent as null
func (v Value[T]) IsNull() bool {
	return v.Set && v.Ptr == nil
}

// UnmarshalJSON is only invoked for keys present in the payload
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		v.Ptr = nil
		return nil
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	v.Ptr = &out
	return nil
}

// MarshalJSON writes the value or null
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if v.Ptr == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*v.Ptr)
}
