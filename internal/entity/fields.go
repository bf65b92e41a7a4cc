package entity

import (
	"encoding/json"
	"strconv"
)

// Fields is a loosely typed mapping of named values, as supplied by callers
// or as returned by the factoring API.
type Fields map[string]any

// String returns the first of keys holding a string or a number.
func (f Fields) String(keys ...string) string {
	for _, key := range keys {
		switch v := f[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case json.Number:
			return v.String()
		case int:
			return strconv.Itoa(v)
		case int64:
			return strconv.FormatInt(v, 10)
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}

	return ""
}

// Clone returns a shallow copy of f that is never nil.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}

	return out
}
