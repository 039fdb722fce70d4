package calc

import (
	"errors"
	"fmt"
)

var (
	ErrKeyNotFound          = errors.New("configuration key not found")
	ErrMissingSelection     = errors.New("missing required selection")
	ErrDegenerateProjection = errors.New("cannot estimate ROI for this configuration")
	ErrInvalidInput         = errors.New("invalid input")
)

// Error carries the request field that caused a calculation to fail.
type Error struct {
	Err   error
	Field string
	Key   string
}

func (e *Error) Error() string {
	switch {
	case e.Key != "":
		return fmt.Sprintf("%s: %s %q", e.Err, e.Field, e.Key)
	case e.Field != "":
		return fmt.Sprintf("%s: %s", e.Err, e.Field)
	default:
		return e.Err.Error()
	}
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(field, key string) error {
	return &Error{Err: ErrKeyNotFound, Field: field, Key: key}
}

func MissingSelection(field string) error {
	return &Error{Err: ErrMissingSelection, Field: field}
}

func Degenerate(field, key string) error {
	return &Error{Err: ErrDegenerateProjection, Field: field, Key: key}
}

func Invalid(field string) error {
	return &Error{Err: ErrInvalidInput, Field: field}
}

// FieldOf returns the request field named by err, if any.
func FieldOf(err error) string {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Field
	}
	return ""
}
