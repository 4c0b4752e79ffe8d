package models

import (
	"bytes"
	"encoding/json"
)

// Field is one member of a request payload. It remembers whether the key was
// sent at all, whether it was null and whether its JSON type matched T, so
// that "not provided" and "cleared" stay distinct.
type Field[T any] struct {
	Set     bool
	Null    bool
	Invalid bool
	Value   T
}

var jsonNull = []byte("null")

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	*f = Field[T]{Set: true}

	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		f.Null = true
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		f.Invalid = true
		return nil
	}

	f.Value = v

	return nil
}

// Ptr returns the value as a pointer, nil when the field is missing, null or
// of the wrong type.
func (f Field[T]) Ptr() *T {
	if !f.Set || f.Null || f.Invalid {
		return nil
	}
	v := f.Value
	return &v
}

// Some returns a field that was sent with value v.
func Some[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Null returns a field that was sent as JSON null.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// BookingPayload is the body accepted by create and update. Its members are
// the allow-list of fields a client may write; any other key is dropped while
// decoding. Tickets is decoded as a float so that non-integral numbers reach
// validation instead of failing the decode.
type BookingPayload struct {
	Name         Field[string]  `json:"name"`
	Email        Field[string]  `json:"email"`
	Phone        Field[string]  `json:"phone"`
	Organization Field[string]  `json:"organization"`
	Tickets      Field[float64] `json:"tickets"`
	Notes        Field[string]  `json:"notes"`
}
