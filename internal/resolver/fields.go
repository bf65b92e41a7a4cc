package resolver

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/samandr77/microservices/factoring/internal/entity"
	"github.com/samandr77/microservices/factoring/pkg/schema"
)

var (
	validate    = validator.New(validator.WithRequiredStructEnabled())
	countryCode = regexp.MustCompile(`^[a-zA-Z]{2}$`)
)

var (
	identifierTypeType = schema.Type{Name: "identifier type", Match: func(v any) bool {
		_, ok := v.(entity.IdentifierType)
		return ok
	}}

	fileType = schema.Type{Name: "file", Match: func(v any) bool {
		switch f := v.(type) {
		case entity.File:
			return true
		case *entity.File:
			return f != nil
		case map[string]any:
			return true
		}

		return false
	}}
)

func stringField(name string, required bool) schema.Field {
	return schema.Field{Name: name, Required: required, Types: []schema.Type{schema.String}}
}

func emailField(name string, required bool) schema.Field {
	return schema.Field{
		Name:     name,
		Required: required,
		Types:    []schema.Type{schema.String},
		Validate: func(v any) error {
			if err := validate.Var(v, "email"); err != nil {
				return errors.New("invalid email address")
			}

			return nil
		},
	}
}

func countryField(name string) schema.Field {
	return schema.Field{
		Name:  name,
		Types: []schema.Type{schema.String},
		Validate: func(v any) error {
			if !countryCode.MatchString(v.(string)) {
				return errors.New("expected a two-letter country code")
			}

			return nil
		},
		Normalize: func(_ schema.Resolved, v any) (any, error) {
			return strings.ToUpper(v.(string)), nil
		},
	}
}

func dateTimeField(name string, required bool) schema.Field {
	return schema.Field{
		Name:     name,
		Required: required,
		Types:    []schema.Type{schema.DateTime},
		Normalize: func(_ schema.Resolved, v any) (any, error) {
			t, _ := schema.AsTime(v)
			return t.Format(time.RFC3339), nil
		},
	}
}

// amountField holds an amount in minor currency units. Zero is accepted only
// when allowZero is set.
func amountField(name string, allowZero bool) schema.Field {
	return schema.Field{
		Name:     name,
		Required: true,
		Types:    []schema.Type{schema.Integer},
		Validate: func(v any) error {
			d, _ := schema.AsDecimal(v)

			switch {
			case d.IsNegative():
				return errors.New("amount must not be negative")
			case d.IsZero() && !allowZero:
				return errors.New("amount must be greater than zero")
			}

			return nil
		},
		Normalize: func(_ schema.Resolved, v any) (any, error) {
			d, _ := schema.AsDecimal(v)
			return d.String(), nil
		},
	}
}

func identifierTypeField(name string, required bool) schema.Field {
	return schema.Field{
		Name:     name,
		Required: required,
		Types:    []schema.Type{schema.String, identifierTypeType},
		Validate: func(v any) error {
			_, err := entity.ParseIdentifierType(asString(v))
			return err
		},
		Normalize: func(_ schema.Resolved, v any) (any, error) {
			return entity.ParseIdentifierType(asString(v))
		},
	}
}

// identifierField must be declared after the identifierType field it reads.
func identifierField(name, typeField string, required bool) schema.Field {
	return schema.Field{
		Name:     name,
		Required: required,
		Types:    []schema.Type{schema.String, schema.Numeric},
		Normalize: func(r schema.Resolved, v any) (any, error) {
			s := asString(v)
			if r[typeField] == entity.IdentifierTypeSIREN {
				s = stripSpaces(s)
			}

			return s, nil
		},
	}
}

func ibanField(name string, required bool) schema.Field {
	return schema.Field{
		Name:     name,
		Required: required,
		Types:    []schema.Type{schema.String},
		Normalize: func(_ schema.Resolved, v any) (any, error) {
			return strings.ToUpper(stripSpaces(v.(string))), nil
		},
	}
}

// numberOrStringField accepts strings and numbers and always yields a string.
func numberOrStringField(name string, required bool) schema.Field {
	return schema.Field{
		Name:     name,
		Required: required,
		Types:    []schema.Type{schema.String, schema.Numeric},
		Normalize: func(_ schema.Resolved, v any) (any, error) {
			return asString(v), nil
		},
	}
}

func fileField(name, defaultName string, required bool) schema.Field {
	return schema.Field{
		Name:     name,
		Required: required,
		Types:    []schema.Type{fileType},
		Validate: func(v any) error {
			_, err := toFile(v, defaultName)
			return err
		},
		Normalize: func(_ schema.Resolved, v any) (any, error) {
			return toFile(v, defaultName)
		},
	}
}

// fileListField yields []entity.File named <prefix>_<index> unless a name is given.
func fileListField(name, prefix string) schema.Field {
	return schema.Field{
		Name:     name,
		Types:    []schema.Type{schema.List},
		Validate: func(v any) error {
			_, err := toFiles(v, prefix)
			return err
		},
		Normalize: func(_ schema.Resolved, v any) (any, error) {
			return toFiles(v, prefix)
		},
	}
}

func toFiles(v any, prefix string) ([]entity.File, error) {
	items, _ := schema.Elements(v)
	files := make([]entity.File, 0, len(items))

	for i, item := range items {
		if !fileType.Match(item) {
			return nil, fmt.Errorf("item %d: expected file, got %T", i, item)
		}

		f, err := toFile(item, fmt.Sprintf("%s_%d", prefix, i))
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		files = append(files, f)
	}

	return files, nil
}

func toFile(v any, defaultName string) (entity.File, error) {
	var (
		f           entity.File
		contentType string
	)

	switch d := v.(type) {
	case entity.File:
		f, contentType = d, d.ContentType.String()
	case *entity.File:
		f, contentType = *d, d.ContentType.String()
	case map[string]any:
		for key := range d {
			switch key {
			case "content", "contentType", "fileName":
			default:
				return entity.File{}, fmt.Errorf("unknown file option %q", key)
			}
		}

		switch c := d["content"].(type) {
		case []byte:
			f.Content = c
		case string:
			f.Content = []byte(c)
		case nil:
		default:
			return entity.File{}, fmt.Errorf("file content must be bytes or string, got %T", c)
		}

		var ok bool

		if contentType, ok = d["contentType"].(string); !ok && d["contentType"] != nil {
			return entity.File{}, fmt.Errorf("file content type must be a string, got %T", d["contentType"])
		}

		if f.FileName, ok = d["fileName"].(string); !ok && d["fileName"] != nil {
			return entity.File{}, fmt.Errorf("file name must be a string, got %T", d["fileName"])
		}
	}

	if len(f.Content) == 0 {
		return entity.File{}, errors.New("file content is missing")
	}

	if contentType == "" {
		return entity.File{}, errors.New("file content type is missing")
	}

	ct, err := entity.ParseContentType(contentType)
	if err != nil {
		return entity.File{}, fmt.Errorf("file content type %q is not one of jpeg, png, pdf", contentType)
	}

	f.ContentType = ct

	if f.FileName == "" {
		f.FileName = defaultName
	}

	return f, nil
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	}

	d, _ := schema.AsDecimal(v)

	return d.String()
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}
