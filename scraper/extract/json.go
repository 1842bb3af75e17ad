package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Lookup walks raw along path. String steps index objects, int steps index arrays.
func Lookup(raw json.RawMessage, path ...any) (json.RawMessage, error) {
	cur := raw
	for i, step := range path {
		switch key := step.(type) {
		case string:
			var obj map[string]json.RawMessage
			if err := json.Unmarshal(cur, &obj); err != nil {
				return nil, fmt.Errorf("%s: not an object: %w", pathString(path[:i+1]), err)
			}
			next, ok := obj[key]
			if !ok {
				return nil, fmt.Errorf("%w: key %s", ErrMissing, pathString(path[:i+1]))
			}
			cur = next
		case int:
			var arr []json.RawMessage
			if err := json.Unmarshal(cur, &arr); err != nil {
				return nil, fmt.Errorf("%s: not an array: %w", pathString(path[:i+1]), err)
			}
			if key < 0 || key >= len(arr) {
				return nil, fmt.Errorf("%w: index %s (len %d)", ErrMissing, pathString(path[:i+1]), len(arr))
			}
			cur = arr[key]
		default:
			return nil, fmt.Errorf("invalid path step %v (%T)", step, step)
		}
	}
	if isNull(cur) {
		return nil, fmt.Errorf("%w: null at %s", ErrMissing, pathString(path))
	}
	return cur, nil
}

// Decode looks up path and unmarshals the value into T
func Decode[T any](raw json.RawMessage, path ...any) (T, error) {
	var v T
	found, err := Lookup(raw, path...)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(found, &v); err != nil {
		return v, fmt.Errorf("%s: %w", pathString(path), err)
	}
	return v, nil
}

// Number accepts either a JSON number or a numeric string at path
func Number(raw json.RawMessage, path ...any) (float64, error) {
	found, err := Lookup(raw, path...)
	if err != nil {
		return 0, err
	}
	var f float64
	if err := json.Unmarshal(found, &f); err == nil {
		return f, nil
	}
	var s string
	if err := json.Unmarshal(found, &s); err != nil {
		return 0, fmt.Errorf("%s: not a number: %s", pathString(path), string(found))
	}
	return ParseDecimal(s)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func pathString(path []any) string {
	var b strings.Builder
	for _, step := range path {
		switch key := step.(type) {
		case int:
			fmt.Fprintf(&b, "[%d]", key)
		default:
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			fmt.Fprint(&b, key)
		}
	}
	return b.String()
}
