package dimpl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samandr77/microservices/factoring/internal/entity"
)

// parseRemoteError translates a non-2xx answer. The message is the body's
// "title", or "message" when there is no title, or the raw body when it is
// not a JSON object. Field errors are kept in body order.
func parseRemoteError(statusCode int, body []byte) *entity.RemoteRequestError {
	e := &entity.RemoteRequestError{StatusCode: statusCode}

	var data map[string]json.RawMessage
	if err := json.Unmarshal(body, &data); err != nil || data == nil {
		e.Message = string(body)
		return e
	}

	e.Message = firstString(data, "title", "message")

	if raw, ok := data["errors"]; ok {
		e.Fields = parseFieldErrors(raw)
	}

	return e
}

func firstString(data map[string]json.RawMessage, keys ...string) string {
	for _, key := range keys {
		var s string
		if err := json.Unmarshal(data[key], &s); err == nil && s != "" {
			return s
		}
	}

	return ""
}

// parseFieldErrors reads an object of field => message entries token by token
// to preserve their order. A message given as a list is joined with ", ".
func parseFieldErrors(raw json.RawMessage) []entity.FieldError {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil
	}

	var fields []entity.FieldError

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return fields
		}

		key, ok := tok.(string)
		if !ok {
			return fields
		}

		var v any
		if err = dec.Decode(&v); err != nil {
			return fields
		}

		fields = append(fields, entity.FieldError{Field: key, Message: fieldMessage(v)})
	}

	return fields
}

func fieldMessage(v any) string {
	switch m := v.(type) {
	case string:
		return m
	case []any:
		parts := make([]string, 0, len(m))
		for _, item := range m {
			parts = append(parts, fieldMessage(item))
		}

		return strings.Join(parts, ", ")
	case nil:
		return ""
	default:
		return fmt.Sprint(m)
	}
}
