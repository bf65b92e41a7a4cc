package entity

import (
	"fmt"
	"strings"
)

type ContentType string

const (
	ContentTypeJPEG ContentType = "image/jpeg"
	ContentTypePNG  ContentType = "image/png"
	ContentTypePDF  ContentType = "application/pdf"
)

func (c ContentType) String() string {
	return string(c)
}

func (c ContentType) IsValid() bool {
	switch c {
	case ContentTypeJPEG, ContentTypePNG, ContentTypePDF:
		return true
	}

	return false
}

func ParseContentType(s string) (ContentType, error) {
	c := ContentType(strings.ToLower(s))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: unsupported content type %q", ErrInvalidArgument, s)
	}

	return c, nil
}

// File is an attachment uploaded as a multipart part.
type File struct {
	Content     []byte
	ContentType ContentType
	FileName    string
}
