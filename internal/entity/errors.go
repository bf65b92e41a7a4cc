package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrValidation       = errors.New("validation failed")
	ErrRemoteRequest    = errors.New("remote request failed")
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// ValidationError reports the first input field that failed resolution.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return e.Field + " => " + e.Message
}

// RemoteRequestError is a non-2xx answer of the factoring API.
// Fields keep the order in which the remote body listed them.
type RemoteRequestError struct {
	StatusCode int
	Message    string
	Fields     []FieldError
}

func (e *RemoteRequestError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		fields = append(fields, f.String())
	}

	return fmt.Sprintf("Error %d : %s (%s)", e.StatusCode, e.Message, strings.Join(fields, " | "))
}

func (e *RemoteRequestError) Is(target error) bool {
	return target == ErrRemoteRequest
}
