package materialize

import (
	"errors"
	"fmt"
)

// UnsupportedTypeError is returned when a rule cannot handle the source type or the destination representation.
// Callers are expected to either pick another rule or surface a type mismatch.
type UnsupportedTypeError struct {
	message string
}

func NewUnsupportedTypeError(format string, args ...any) UnsupportedTypeError {
	return UnsupportedTypeError{message: fmt.Sprintf(format, args...)}
}

func (u UnsupportedTypeError) Error() string {
	return u.message
}

func IsUnsupportedTypeError(err error) bool {
	return errors.As(err, &UnsupportedTypeError{})
}

// OutOfRangeError is returned when a converter window does not fit in the source array or the destination vector.
type OutOfRangeError struct {
	message string
}

func NewOutOfRangeError(format string, args ...any) OutOfRangeError {
	return OutOfRangeError{message: fmt.Sprintf(format, args...)}
}

func (o OutOfRangeError) Error() string {
	return o.message
}

func IsOutOfRangeError(err error) bool {
	return errors.As(err, &OutOfRangeError{})
}
