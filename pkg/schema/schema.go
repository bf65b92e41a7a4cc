// Package schema resolves loosely typed input mappings against a declared set
// of fields. A field lists the value types it accepts, an optional validation
// predicate and an optional normalizer. Fields are resolved in declaration
// order, so a normalizer can read fields declared before it.
package schema

import (
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strings"
)

// Error describes the first field that failed resolution.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Resolved holds the already resolved fields while resolution is in progress.
type Resolved map[string]any

type Field struct {
	Name     string
	Required bool
	// Types lists the accepted value types. An empty list accepts anything.
	Types []Type
	// Validate runs only on values that matched one of Types.
	Validate func(v any) error
	// Normalize runs only on values that passed Validate.
	Normalize func(r Resolved, v any) (any, error)
}

type Schema struct {
	fields []Field
	index  map[string]struct{}
}

// New builds a schema. Field names must be unique.
func New(fields ...Field) *Schema {
	s := &Schema{
		fields: fields,
		index:  make(map[string]struct{}, len(fields)),
	}

	for _, f := range fields {
		if _, ok := s.index[f.Name]; ok {
			panic(fmt.Sprintf("schema: duplicate field %q", f.Name))
		}

		s.index[f.Name] = struct{}{}
	}

	return s
}

// Names returns field names in declaration order.
func (s *Schema) Names() []string {
	names := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		names = append(names, f.Name)
	}

	return names
}

// Resolve checks input against the schema and returns a new mapping of
// normalized values. A nil value is treated as absent. Absent optional fields
// are left out of the result. The input is never modified.
func (s *Schema) Resolve(input map[string]any) (map[string]any, error) {
	unknown := make([]string, 0)

	for name := range input {
		if _, ok := s.index[name]; !ok {
			unknown = append(unknown, name)
		}
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &Error{Field: unknown[0], Reason: "unknown field"}
	}

	out := make(map[string]any, len(s.fields))

	for _, f := range s.fields {
		v, ok := input[f.Name]
		if !ok || isNil(v) {
			if f.Required {
				return nil, &Error{Field: f.Name, Reason: "required field is missing"}
			}

			continue
		}

		if !f.accepts(v) {
			return nil, &Error{Field: f.Name, Reason: fmt.Sprintf("expected %s, got %T", f.typeNames(), v)}
		}

		if f.Validate != nil {
			if err := f.Validate(v); err != nil {
				return nil, &Error{Field: f.Name, Reason: err.Error()}
			}
		}

		if f.Normalize != nil {
			normalized, err := f.Normalize(Resolved(out), v)
			if err != nil {
				return nil, &Error{Field: f.Name, Reason: err.Error()}
			}

			v = normalized
		}

		out[f.Name] = v
	}

	return out, nil
}

func (f Field) accepts(v any) bool {
	if len(f.Types) == 0 {
		return true
	}

	return slices.ContainsFunc(f.Types, func(t Type) bool { return t.Match(v) })
}

func (f Field) typeNames() string {
	names := make([]string, 0, len(f.Types))
	for _, t := range f.Types {
		names = append(names, t.Name)
	}

	return strings.Join(names, " or ")
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() { //nolint:exhaustive
	case reflect.Pointer, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}

	return false
}
