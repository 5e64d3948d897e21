package errs

import (
	"errors"
	"fmt"
)

// Error kinds. Match with errors.Is against these sentinels.
var (
	// ErrInvalidConfiguration is structurally inconsistent static data:
	// non-bijective maps, out-of-range indices, min > max bound pairs
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrMalformedInput is an input line that cannot be parsed into the expected shape
	ErrMalformedInput = errors.New("malformed input")

	// ErrUninitializedState is a week-scoped query made before the week context is set
	ErrUninitializedState = errors.New("uninitialized state")

	// ErrOutOfRange is an attempt to move the week index beyond the configured horizon
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidArgument is a bad argument to a pure helper (e.g. an unknown day name)
	ErrInvalidArgument = errors.New("invalid argument")
)

// Error carries an error kind together with where it happened
type Error struct {
	Kind   error
	Source string // file, section or operation the error relates to
	Msg    string
}

func (e *Error) Error() string {
	if e.Source != "" {
		return e.Kind.Error() + ": " + e.Source + ": " + e.Msg
	}
	return e.Kind.Error() + ": " + e.Msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// New creates an Error of the given kind with a formatted message
func New(kind error, source string, format string, args ...any) *Error {
	return &Error{
		Kind:   kind,
		Source: source,
		Msg:    fmt.Sprintf(format, args...),
	}
}

// InvalidConfiguration is shorthand for New(ErrInvalidConfiguration, ...)
func InvalidConfiguration(source string, format string, args ...any) *Error {
	return New(ErrInvalidConfiguration, source, format, args...)
}

// MalformedInput is shorthand for New(ErrMalformedInput, ...)
func MalformedInput(source string, format string, args ...any) *Error {
	return New(ErrMalformedInput, source, format, args...)
}

// KindOf returns the kind sentinel of err, or nil if err is not a kinded error
func KindOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return nil
}
