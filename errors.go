package p8z

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Error is the interface for every error kind returned by this package. Kinds
// can be compared with [errors.Is] no matter how many times they've been
// extended with WithMessage or Wrap.
type Error interface {
	error
	WithMessage(message string) Error
	Wrap(err error) Error
}

type baseP8zError string

const rootError = baseP8zError("")

// ErrCompressionFailed is returned when the compression backend reports
// anything other than success. It's fatal to the whole pipeline.
var ErrCompressionFailed = rootError.WithMessage("Compression failed")

// ErrInvalidArguments is returned when the command line doesn't match one of
// the recognized forms.
var ErrInvalidArguments = rootError.WithMessage("Invalid arguments")

// ErrMalformedLiteral is returned by [Decode] when the literal can't be parsed
// or contains text the packer could never have produced.
var ErrMalformedLiteral = rootError.WithMessage("Malformed literal")

// ErrCorruptPayload is returned by [Decode] when the unpacked bytes aren't a
// valid raw DEFLATE stream.
var ErrCorruptPayload = rootError.WithMessage("Corrupt payload")

func (e baseP8zError) Error() string {
	return string(e)
}

func (e baseP8zError) WithMessage(message string) Error {
	return customError{
		message:       message,
		originalError: e,
	}
}

func (e baseP8zError) Wrap(err error) Error {
	return customError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type customError struct {
	message       string
	originalError error
}

// Error returns the kind's message, followed by any detail or cause that was
// attached to it.
func (e customError) Error() string {
	return e.message
}

func (e customError) WithMessage(message string) Error {
	return customError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customError) Wrap(err error) Error {
	return customError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customError) Unwrap() error {
	return e.originalError
}
