// Package resolver turns caller input for sellers and invoices into
// normalized fields and multipart payloads named the way the factoring API
// expects them.
package resolver

import (
	"errors"
	"fmt"

	"github.com/samandr77/microservices/factoring/internal/entity"
	"github.com/samandr77/microservices/factoring/pkg/formdata"
	"github.com/samandr77/microservices/factoring/pkg/schema"
)

// wireName maps a caller-facing field to the name sent to the remote API.
type wireName struct {
	field string
	wire  string
}

type resolver struct {
	schema  *schema.Schema
	mapping []wireName
}

func (r resolver) normalize(input entity.Fields) (entity.Fields, error) {
	out, err := r.schema.Resolve(input)
	if err != nil {
		var schemaErr *schema.Error
		if errors.As(err, &schemaErr) {
			return nil, &entity.ValidationError{Field: schemaErr.Field, Reason: schemaErr.Reason}
		}

		return nil, fmt.Errorf("resolve fields: %w", err)
	}

	return out, nil
}

// payload renames normalized fields and drops null and empty entries.
func (r resolver) payload(fields entity.Fields) formdata.Value {
	members := make([]formdata.Member, 0, len(r.mapping))
	for _, m := range r.mapping {
		members = append(members, formdata.Field(m.wire, toValue(fields[m.field])))
	}

	return formdata.Prune(formdata.Object(members...))
}

func (r resolver) build(input entity.Fields) (formdata.Value, error) {
	fields, err := r.normalize(input)
	if err != nil {
		return formdata.Value{}, err
	}

	return r.payload(fields), nil
}

func toValue(v any) formdata.Value {
	switch t := v.(type) {
	case nil:
		return formdata.Null()
	case string:
		return formdata.Scalar(t)
	case entity.File:
		return formdata.Attachment(toAttachment(t))
	case []entity.File:
		items := make([]formdata.Value, 0, len(t))
		for _, f := range t {
			items = append(items, formdata.Attachment(toAttachment(f)))
		}

		return formdata.List(items...)
	default:
		return formdata.Scalar(asString(t))
	}
}

func toAttachment(f entity.File) formdata.File {
	return formdata.File{
		Name:        f.FileName,
		ContentType: f.ContentType.String(),
		Content:     f.Content,
	}
}
