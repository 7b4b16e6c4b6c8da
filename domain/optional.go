package domain

import "encoding/json"

// Optional carries a field that distinguishes three states on the wire:
// absent (Present == false), explicit null (Present && !Valid), and a real
// value (Present && Valid). Partial updates rely on this to tell "not
// supplied" apart from "set to empty".
type Optional[T any] struct {
	Present bool
	Valid   bool
	Value   T
}

// Some wraps a concrete value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Present: true, Valid: true, Value: v}
}

// Null marks a field as explicitly cleared.
func Null[T any]() Optional[T] {
	return Optional[T]{Present: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Valid = false
		var zero T
		o.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Present || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
