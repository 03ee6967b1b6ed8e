package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failure for reporting purposes.
type Kind int

const (
	// KindParse means the bundle's serialized form is not well-formed. The
	// error message carries a location marker for user display.
	KindParse Kind = iota

	// KindUser is a recognized, expected failure caused by user input:
	// schema violations, unknown targets, deliberate build failures.
	KindUser

	// KindInternal is everything else and is treated as a defect in kbdgen
	// itself rather than a user mistake.
	KindInternal
)

// String implements fmt.Stringer for log output.
func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindUser:
		return "user"
	case KindInternal:
		return "internal"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a classified failure. It is the only error type that crosses the
// dispatch boundary; anything untagged arriving there is promoted to
// KindInternal by the caller.
type Error struct {
	Kind Kind

	// Location is set for parse errors only: a file path, optionally with
	// the line marker already embedded in the underlying message.
	Location string

	Message string

	// Err is the wrapped cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var parts []string
	if e.Location != "" {
		parts = append(parts, e.Location)
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// User builds a KindUser error from a format string.
func User(format string, args ...any) *Error {
	return &Error{Kind: KindUser, Message: fmt.Sprintf(format, args...)}
}

// Internal builds a KindInternal error from a format string.
func Internal(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

// Parse builds a KindParse error. location identifies the offending input;
// err holds the underlying decoder failure with its line marker.
func Parse(location string, err error) *Error {
	return &Error{Kind: KindParse, Location: location, Err: err}
}

// Wrap tags an existing error with a kind, keeping it available for
// errors.Is / errors.As through Unwrap.
func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from a classified error. The second return is
// false when err carries no classification.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
