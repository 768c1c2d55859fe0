package binary

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat is returned when a filename does not follow the
	// <name>[.<mode>].<os><compiler><release> convention.
	ErrInvalidFormat = errors.New("invalid binary filename")

	// ErrInvalidValue is returned when a descriptor field is outside its
	// closed set of values.
	ErrInvalidValue = errors.New("invalid binary field value")

	// ErrUnsupportedOS is returned when the host OS has no suite token.
	ErrUnsupportedOS = errors.New("unsupported operating system")
)

// InvalidFormatError carries the rejected filename.
type InvalidFormatError struct {
	Filename string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidFormat, e.Filename)
}

func (e *InvalidFormatError) Unwrap() error {
	return ErrInvalidFormat
}

// InvalidValueError reports which field was rejected and why.
type InvalidValueError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidValueError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

func (e *InvalidValueError) Unwrap() error {
	return ErrInvalidValue
}
