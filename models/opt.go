package models

import (
	"database/sql/driver"
	"encoding/json"
	"strconv"
	"time"
)

// Opt holds one extracted value, or the missing-value marker when Valid is false.
type Opt[T any] struct {
	V     T
	Valid bool
}

// Some wraps an extracted value
func Some[T any](v T) Opt[T] {
	return Opt[T]{V: v, Valid: true}
}

// None returns the missing-value marker
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Get returns the value and whether it is present
func (o Opt[T]) Get() (T, bool) {
	return o.V, o.Valid
}

// OrElse returns the value, or def when missing
func (o Opt[T]) OrElse(def T) T {
	if !o.Valid {
		return def
	}
	return o.V
}

// String renders the value for a CSV cell. Missing values render empty.
func (o Opt[T]) String() string {
	if !o.Valid {
		return ""
	}
	switch v := any(o.V).(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// Value implements driver.Valuer so missing fields are stored as NULL
// and list fields as JSON text.
func (o Opt[T]) Value() (driver.Value, error) {
	if !o.Valid {
		return nil, nil
	}
	switch v := any(o.V).(type) {
	case string, float64, int64, bool, time.Time:
		return v, nil
	case int:
		return int64(v), nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return string(b), nil
	}
}

func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.V)
}

func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Opt[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
