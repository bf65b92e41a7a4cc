package schema

import (
	"encoding/json"
	"math"
	"reflect"
	"time"

	"github.com/shopspring/decimal"
)

// Type is a named predicate over raw values.
type Type struct {
	Name  string
	Match func(v any) bool
}

var (
	String = Type{Name: "string", Match: func(v any) bool {
		_, ok := v.(string)
		return ok
	}}

	// Integer accepts integral numbers and strings holding one.
	Integer = Type{Name: "int", Match: func(v any) bool {
		d, ok := AsDecimal(v)
		return ok && d.IsInteger()
	}}

	// Numeric accepts any number and strings holding one.
	Numeric = Type{Name: "numeric", Match: func(v any) bool {
		_, ok := AsDecimal(v)
		return ok
	}}

	// DateTime accepts time values and RFC 3339 strings.
	DateTime = Type{Name: "datetime", Match: func(v any) bool {
		_, ok := AsTime(v)
		return ok
	}}

	Object = Type{Name: "object", Match: func(v any) bool {
		_, ok := v.(map[string]any)
		return ok
	}}

	// List accepts any slice except byte slices.
	List = Type{Name: "list", Match: func(v any) bool {
		_, ok := Elements(v)
		return ok
	}}
)

// AsDecimal converts Go numbers, json.Number and numeric strings.
func AsDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int8:
		return decimal.NewFromInt(int64(n)), true
	case int16:
		return decimal.NewFromInt(int64(n)), true
	case int32:
		return decimal.NewFromInt32(n), true
	case int64:
		return decimal.NewFromInt(n), true
	case uint:
		return decimal.NewFromUint64(uint64(n)), true
	case uint8:
		return decimal.NewFromUint64(uint64(n)), true
	case uint16:
		return decimal.NewFromUint64(uint64(n)), true
	case uint32:
		return decimal.NewFromUint64(uint64(n)), true
	case uint64:
		return decimal.NewFromUint64(n), true
	case float32:
		return fromFloat(float64(n))
	case float64:
		return fromFloat(n)
	case decimal.Decimal:
		return n, true
	case json.Number:
		return fromString(n.String())
	case string:
		return fromString(n)
	}

	return decimal.Decimal{}, false
}

func fromFloat(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, false
	}

	return decimal.NewFromFloat(f), true
}

func fromString(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Decimal{}, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}

	return d, true
}

// AsTime converts time.Time, *time.Time and RFC 3339 strings.
func AsTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}

		return *t, true
	case string:
		parsed, err := time.Parse(time.RFC3339, t)
		if err != nil {
			return time.Time{}, false
		}

		return parsed, true
	}

	return time.Time{}, false
}

// Elements returns the items of any slice or array except byte slices.
func Elements(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}

	if _, ok := v.([]byte); ok {
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}

	return items, true
}
