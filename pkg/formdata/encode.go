package formdata

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Encode writes an object as multipart/form-data and returns the body with its
// content type. List items are repeated under the same name, nested object
// members are named parent[child]. Null values are skipped.
func Encode(v Value) ([]byte, string, error) {
	if v.kind != KindObject {
		return nil, "", errors.New("encode form data: top level value must be an object")
	}

	var buf bytes.Buffer

	mw := multipart.NewWriter(&buf)

	for _, m := range v.members {
		if err := writeValue(mw, m.Name, m.Value); err != nil {
			return nil, "", err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}

	return buf.Bytes(), mw.FormDataContentType(), nil
}

func writeValue(mw *multipart.Writer, name string, v Value) error {
	switch v.kind {
	case KindNull:
		return nil
	case KindScalar:
		if err := mw.WriteField(name, v.scalar); err != nil {
			return fmt.Errorf("write field %s: %w", name, err)
		}
	case KindFile:
		return writeFile(mw, name, v.file)
	case KindList:
		for _, item := range v.items {
			if err := writeValue(mw, name, item); err != nil {
				return err
			}
		}
	case KindObject:
		for _, m := range v.members {
			if err := writeValue(mw, name+"["+m.Name+"]", m.Value); err != nil {
				return err
			}
		}
	}

	return nil
}

func writeFile(mw *multipart.Writer, name string, f File) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, quoteEscaper.Replace(name), quoteEscaper.Replace(f.Name)))

	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create part %s: %w", name, err)
	}

	if _, err = part.Write(f.Content); err != nil {
		return fmt.Errorf("write part %s: %w", name, err)
	}

	return nil
}
