package patch

import (
	"bytes"
	"encoding/json"
)

// Field is a JSON field that distinguishes an absent key from an explicit
// null from a real value. Partial-update payloads rely on that distinction:
// absent means "leave alone", null means "clear", a value means "set".
// The zero value reads as absent.
type Field[T any] struct {
	Present bool
	Valid   bool // false when the key carried an explicit null
	Value   T
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(data, &f.Value); err != nil {
		return err
	}
	f.Valid = true
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Set builds a present field carrying a value.
func Set[T any](value T) Field[T] {
	return Field[T]{Present: true, Valid: true, Value: value}
}

// Null builds a present field carrying an explicit null.
func Null[T any]() Field[T] {
	return Field[T]{Present: true}
}
